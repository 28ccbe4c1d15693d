package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/url"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/openwms/openwms-go/sdk/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var roleCommand = &cli.Command{
	Name:    "role",
	Aliases: []string{"roles"},
	Usage:   "Manage roles",
	Subcommands: []*cli.Command{
		{
			Name:  "add",
			Usage: "Create a new role",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagFile,
					Aliases: []string{"f"},
					Usage: "A YAML or JSON file that describes the role " +
						"(required)",
					Required:  true,
					TakesFile: true,
				},
				cliFlagPath,
				cliFlagOutput,
			},
			Action: roleAdd,
		},
		{
			Name:  "delete",
			Usage: "Delete a single role",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagName,
					Aliases:  []string{"n"},
					Usage:    "Delete the specified role (required)",
					Required: true,
				},
				cliFlagPath,
				&cli.BoolFlag{
					Name:    flagYes,
					Aliases: []string{"y"},
					Usage:   "Non-interactively confirm deletion",
				},
			},
			Action: roleDelete,
		},
		{
			Name:  "list",
			Usage: "Retrieve all roles",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: roleList,
		},
		{
			Name:  "save",
			Usage: "Update an existing role",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagFile,
					Aliases: []string{"f"},
					Usage: "A YAML or JSON file that describes the role " +
						"(required)",
					Required:  true,
					TakesFile: true,
				},
				cliFlagPath,
				cliFlagOutput,
			},
			Action: roleSave,
		},
	},
}

func roleAdd(c *cli.Context) error {
	filename := c.String(flagFile)
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	roleBytes, err := readRoleFile(filename)
	if err != nil {
		return err
	}

	client, callCtx, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting openwms client")
	}

	role, err := client.Roles().AddFromBytes(
		c.Context,
		c.String(flagPath),
		callCtx,
		roleBytes,
	)
	if err != nil {
		return err
	}

	fmt.Printf("Created role %q.\n\n", role.Name)

	return printRoles(output, "add role", []core.Role{role})
}

func roleDelete(c *cli.Context) error {
	name := c.String(flagName)

	confirmed, err := confirmed(c)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	client, callCtx, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting openwms client")
	}

	if err := client.Roles().Delete(
		c.Context,
		fmt.Sprintf("%s/%s", c.String(flagPath), url.PathEscape(name)),
		callCtx,
	); err != nil {
		return err
	}

	fmt.Printf("Role %q deleted.\n", name)

	return nil
}

func roleList(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, callCtx, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting openwms client")
	}

	roles, err := client.Roles().GetAll(c.Context, callCtx)
	if err != nil {
		return err
	}

	if len(roles) == 0 {
		fmt.Println("No roles found.")
		return nil
	}

	return printRoles(output, "list roles", roles)
}

func roleSave(c *cli.Context) error {
	filename := c.String(flagFile)
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	roleBytes, err := readRoleFile(filename)
	if err != nil {
		return err
	}

	client, callCtx, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting openwms client")
	}

	role, err := client.Roles().SaveFromBytes(
		c.Context,
		c.String(flagPath),
		callCtx,
		roleBytes,
	)
	if err != nil {
		return err
	}

	fmt.Printf("Saved role %q.\n\n", role.Name)

	return printRoles(output, "save role", []core.Role{role})
}

// readRoleFile returns the contents of the given file as JSON. The bytes are
// passed to the API as they are so that fields unknown to this client survive
// the round trip.
func readRoleFile(filename string) ([]byte, error) {
	roleBytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading role file %s", filename)
	}
	if strings.HasSuffix(filename, ".yaml") ||
		strings.HasSuffix(filename, ".yml") {
		if roleBytes, err = yaml.YAMLToJSON(roleBytes); err != nil {
			return nil,
				errors.Wrapf(err, "error converting file %s to JSON", filename)
		}
	}
	if !json.Valid(roleBytes) {
		return nil, errors.Errorf("role file %s does not contain valid JSON", filename)
	}
	return roleBytes, nil
}

func printRoles(output string, operation string, roles []core.Role) error {
	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("NAME", "DESCRIPTION", "IMMUTABLE", "GRANTS", "VERSION")
		for _, role := range roles {
			grantNames := make([]string, len(role.Grants))
			for i, grant := range role.Grants {
				grantNames[i] = grant.Name
			}
			table.AddRow(
				role.Name,
				role.Description,
				role.Immutable,
				strings.Join(grantNames, ","),
				role.Version,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(roles)
		if err != nil {
			return errors.Wrapf(
				err,
				"error formatting output from %s operation",
				operation,
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(roles, "", "  ")
		if err != nil {
			return errors.Wrapf(
				err,
				"error formatting output from %s operation",
				operation,
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
