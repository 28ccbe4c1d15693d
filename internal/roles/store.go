package roles

import (
	"context"
	"sort"
	"sync"

	"github.com/openwms/openwms-go/internal/restmachinery"
	"github.com/openwms/openwms-go/sdk/core"
)

// Store is an interface for components that implement Role persistence
// concerns.
type Store interface {
	// List returns all Roles, ordered by name.
	List(context.Context) ([]core.Role, error)
	// Get returns the Role with the given name or an
	// *restmachinery.ErrNotFound.
	Get(ctx context.Context, name string) (core.Role, error)
	// Create stores a new Role or returns an *restmachinery.ErrConflict if one
	// with the same name exists.
	Create(context.Context, core.Role) error
	// Update replaces an existing Role or returns an
	// *restmachinery.ErrNotFound.
	Update(context.Context, core.Role) error
	// Delete removes a Role or returns an *restmachinery.ErrNotFound.
	Delete(ctx context.Context, name string) error
}

type memoryStore struct {
	mu    sync.RWMutex
	roles map[string]core.Role
}

// NewMemoryStore returns an in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{
		roles: map[string]core.Role{},
	}
}

func (m *memoryStore) List(context.Context) ([]core.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	roles := make([]core.Role, 0, len(m.roles))
	for _, role := range m.roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool {
		return roles[i].Name < roles[j].Name
	})
	return roles, nil
}

func (m *memoryStore) Get(_ context.Context, name string) (core.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	role, ok := m.roles[name]
	if !ok {
		return core.Role{}, &restmachinery.ErrNotFound{Type: "Role", ID: name}
	}
	return role, nil
}

func (m *memoryStore) Create(_ context.Context, role core.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roles[role.Name]; ok {
		return &restmachinery.ErrConflict{Type: "Role", ID: role.Name}
	}
	m.roles[role.Name] = role
	return nil
}

func (m *memoryStore) Update(_ context.Context, role core.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roles[role.Name]; !ok {
		return &restmachinery.ErrNotFound{Type: "Role", ID: role.Name}
	}
	m.roles[role.Name] = role
	return nil
}

func (m *memoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roles[name]; !ok {
		return &restmachinery.ErrNotFound{Type: "Role", ID: name}
	}
	delete(m.roles, name)
	return nil
}
