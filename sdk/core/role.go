package core

import "encoding/json"

// Role represents a named grouping of permissions in the warehouse
// management system. The client treats it as an opaque payload: it is sent
// to and received from the backend as is and never validated client-side.
// Members the backend sends that do not map onto a typed field, including
// known members of an unexpected JSON type, are kept in Extra and written
// back out when the Role is marshaled.
type Role struct {
	// PKey is the persistent key the backend assigns to a stored Role.
	PKey string `json:"pKey,omitempty"`
	// Name uniquely identifies the Role.
	Name string `json:"name"`
	// Description is a free-form, human-readable description.
	Description string `json:"description,omitempty"`
	// Immutable indicates the backend refuses to modify or delete the Role.
	Immutable bool `json:"immutable,omitempty"`
	// Grants are the permissions conferred by the Role.
	Grants []Grant `json:"grants,omitempty"`
	// Version is used by the backend for optimistic locking. Callers saving a
	// Role must send back the Version they last received.
	Version int64 `json:"version,omitempty"`
	// Extra holds the raw JSON of members not captured by the fields above.
	Extra map[string]json.RawMessage `json:"-"`
}

// MarshalJSON writes the typed fields over whatever Extra holds.
func (r Role) MarshalJSON() ([]byte, error) {
	fields := withExtra(r.Extra)
	if _, ok := r.Extra["name"]; r.Name != "" || !ok {
		fields["name"] = r.Name
	}
	if r.PKey != "" {
		fields["pKey"] = r.PKey
	}
	if r.Description != "" {
		fields["description"] = r.Description
	}
	if r.Immutable {
		fields["immutable"] = r.Immutable
	}
	if len(r.Grants) > 0 {
		fields["grants"] = r.Grants
	}
	if r.Version != 0 {
		fields["version"] = r.Version
	}
	return json.Marshal(fields)
}

// UnmarshalJSON decodes a JSON object into the Role without ever failing on
// the type of an individual member.
func (r *Role) UnmarshalJSON(data []byte) error {
	role := Role{}
	extra, err := decodeMembers(
		data,
		map[string]func(json.RawMessage) error{
			"pKey": func(v json.RawMessage) error {
				return json.Unmarshal(v, &role.PKey)
			},
			"name": func(v json.RawMessage) error {
				return json.Unmarshal(v, &role.Name)
			},
			"description": func(v json.RawMessage) error {
				return json.Unmarshal(v, &role.Description)
			},
			"immutable": func(v json.RawMessage) error {
				return json.Unmarshal(v, &role.Immutable)
			},
			"grants": func(v json.RawMessage) error {
				grants := []Grant{}
				if err := json.Unmarshal(v, &grants); err != nil {
					return err
				}
				role.Grants = grants
				return nil
			},
			"version": func(v json.RawMessage) error {
				return json.Unmarshal(v, &role.Version)
			},
		},
	)
	if err != nil {
		return err
	}
	role.Extra = extra
	*r = role
	return nil
}

// Grant is a single permission conferred by a Role. Like Role, it keeps
// members it has no field for in Extra.
type Grant struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description,omitempty"`
	Extra       map[string]json.RawMessage `json:"-"`
}

// MarshalJSON writes the typed fields over whatever Extra holds.
func (g Grant) MarshalJSON() ([]byte, error) {
	fields := withExtra(g.Extra)
	if _, ok := g.Extra["name"]; g.Name != "" || !ok {
		fields["name"] = g.Name
	}
	if g.Description != "" {
		fields["description"] = g.Description
	}
	return json.Marshal(fields)
}

// UnmarshalJSON decodes a JSON object into the Grant without ever failing on
// the type of an individual member.
func (g *Grant) UnmarshalJSON(data []byte) error {
	grant := Grant{}
	extra, err := decodeMembers(
		data,
		map[string]func(json.RawMessage) error{
			"name": func(v json.RawMessage) error {
				return json.Unmarshal(v, &grant.Name)
			},
			"description": func(v json.RawMessage) error {
				return json.Unmarshal(v, &grant.Description)
			},
		},
	)
	if err != nil {
		return err
	}
	grant.Extra = extra
	*g = grant
	return nil
}

// decodeMembers splits a JSON object into its members and hands each one to
// the decoder registered for its name. Members without a decoder, and members
// their decoder rejects, are returned verbatim. The result is nil when every
// member was decoded.
func decodeMembers(
	data []byte,
	decoders map[string]func(json.RawMessage) error,
) (map[string]json.RawMessage, error) {
	members := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	var extra map[string]json.RawMessage
	for name, value := range members {
		if decode, ok := decoders[name]; ok && decode(value) == nil {
			continue
		}
		if extra == nil {
			extra = map[string]json.RawMessage{}
		}
		extra[name] = value
	}
	return extra, nil
}

func withExtra(extra map[string]json.RawMessage) map[string]interface{} {
	fields := make(map[string]interface{}, len(extra)+6)
	for name, value := range extra {
		fields[name] = value
	}
	return fields
}

// CallContext carries the per-call state a caller supplies to every
// operation. It is never retained by a client.
type CallContext struct {
	// RootURL is the URL prefix of the backend API, e.g.
	// https://wms.example.com/api.
	RootURL string
	// AuthToken is sent with each request in the Auth-Token header.
	AuthToken string
}
