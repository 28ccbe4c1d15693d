// Package stub assembles a stand-in for the OpenWMS backend that serves the
// Roles collection from memory using the backend's response envelope. It
// exists so that the SDK and wmsctl can be exercised without a backend.
package stub

import (
	"context"

	"github.com/openwms/openwms-go/internal/restmachinery"
	"github.com/openwms/openwms-go/internal/roles"
	"github.com/openwms/openwms-go/sdk/core"
	"github.com/pkg/errors"
)

// NewServer returns a restmachinery.Server whose Roles collection initially
// holds the given Roles.
func NewServer(
	config restmachinery.Config,
	seed []core.Role,
) (restmachinery.Server, error) {
	rolesService := roles.NewService(roles.NewMemoryStore())
	for _, role := range seed {
		if _, err := rolesService.Create(context.Background(), role); err != nil {
			return nil, errors.Wrapf(err, "error seeding role %q", role.Name)
		}
	}

	baseEndpoints := &restmachinery.BaseEndpoints{
		TokenAuthFilter: restmachinery.NewTokenAuthFilter(config.AuthToken()),
	}
	return restmachinery.NewServer(
		config,
		[]restmachinery.Endpoints{
			&roles.Endpoints{
				BaseEndpoints:    baseEndpoints,
				RoleSchemaLoader: roles.RoleSchemaLoader(),
				Service:          rolesService,
			},
		},
	), nil
}

// DefaultRoles returns the Roles a freshly started stub server holds.
func DefaultRoles() []core.Role {
	return []core.Role{
		{
			Name:        "ROLE_ADMIN",
			Description: "Super users",
			Immutable:   true,
			Grants: []core.Grant{
				{Name: "SEC_UAA_ROLE_CREATE"},
				{Name: "SEC_UAA_ROLE_DELETE"},
			},
		},
		{
			Name:        "ROLE_USER",
			Description: "Warehouse operators",
		},
	}
}
