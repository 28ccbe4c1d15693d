package roles

import "github.com/xeipuuv/gojsonschema"

const roleSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "Role",
	"type": "object",
	"required": ["name"],
	"properties": {
		"pKey": {
			"type": "string"
		},
		"name": {
			"type": "string",
			"pattern": "^[A-Za-z0-9_-]{1,64}$"
		},
		"description": {
			"type": "string",
			"maxLength": 255
		},
		"immutable": {
			"type": "boolean"
		},
		"grants": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {
						"type": "string",
						"minLength": 1
					},
					"description": {
						"type": "string"
					}
				}
			}
		},
		"version": {
			"type": "integer",
			"minimum": 0
		}
	}
}`

// RoleSchemaLoader returns a loader for the JSON schema every Role submitted
// to the stub must satisfy.
func RoleSchemaLoader() gojsonschema.JSONLoader {
	return gojsonschema.NewStringLoader(roleSchema)
}
