package roles

import (
	"context"
	"fmt"

	"github.com/openwms/openwms-go/internal/restmachinery"
	"github.com/openwms/openwms-go/sdk/core"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// Service is the specialized interface for managing Roles. It's decoupled
// from underlying technology choices (e.g. data store) to keep business
// logic reusable and consistent while the underlying tech stack remains free
// to change.
type Service interface {
	// List returns all Roles.
	List(context.Context) ([]core.Role, error)
	// Create stores a new Role and returns it as stored.
	Create(context.Context, core.Role) (core.Role, error)
	// Update replaces an existing, mutable Role and returns it as stored. The
	// Version of the given Role must match the stored one.
	Update(context.Context, core.Role) (core.Role, error)
	// Delete removes an existing, mutable Role.
	Delete(ctx context.Context, name string) error
}

type service struct {
	store Store
}

// NewService returns a specialized interface for managing Roles.
func NewService(store Store) Service {
	return &service{
		store: store,
	}
}

func (s *service) List(ctx context.Context) ([]core.Role, error) {
	roles, err := s.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error retrieving roles from store")
	}
	return roles, nil
}

func (s *service) Create(
	ctx context.Context,
	role core.Role,
) (core.Role, error) {
	role.PKey = uuid.NewV4().String()
	role.Version = 1
	if err := s.store.Create(ctx, role); err != nil {
		return core.Role{}, errors.Wrapf(
			err,
			"error storing new role %q",
			role.Name,
		)
	}
	return role, nil
}

func (s *service) Update(
	ctx context.Context,
	role core.Role,
) (core.Role, error) {
	existing, err := s.store.Get(ctx, role.Name)
	if err != nil {
		return core.Role{}, errors.Wrapf(
			err,
			"error retrieving role %q from store",
			role.Name,
		)
	}
	if existing.Immutable {
		return core.Role{}, &restmachinery.ErrAuthorization{
			Reason: fmt.Sprintf("role %q is immutable", role.Name),
		}
	}
	if role.Version != existing.Version {
		return core.Role{}, &restmachinery.ErrConflict{
			Type: "Role",
			ID:   role.Name,
			Reason: fmt.Sprintf(
				"Role %q was modified concurrently; expected version %d, found %d.",
				role.Name,
				role.Version,
				existing.Version,
			),
		}
	}
	role.PKey = existing.PKey
	role.Version = existing.Version + 1
	if err := s.store.Update(ctx, role); err != nil {
		return core.Role{}, errors.Wrapf(
			err,
			"error updating role %q in store",
			role.Name,
		)
	}
	return role, nil
}

func (s *service) Delete(ctx context.Context, name string) error {
	existing, err := s.store.Get(ctx, name)
	if err != nil {
		return errors.Wrapf(err, "error retrieving role %q from store", name)
	}
	if existing.Immutable {
		return &restmachinery.ErrAuthorization{
			Reason: fmt.Sprintf("role %q is immutable", name),
		}
	}
	if err := s.store.Delete(ctx, name); err != nil {
		return errors.Wrapf(err, "error deleting role %q from store", name)
	}
	return nil
}
