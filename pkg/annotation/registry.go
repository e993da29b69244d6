package annotation

import (
	"fmt"
	"slices"
	"sync"

	"github.com/emannotation/emdb/pkg/errcode"
	"github.com/gnames/gn"
)

// Registry supplies annotation schemas by name.
type Registry interface {
	// Lookup returns the schema registered under name.
	Lookup(name string) (Schema, error)

	// ValidNames returns all registered schema names in sorted order.
	ValidNames() []string
}

// InMemoryRegistry is a Registry backed by a map. It is safe for
// concurrent use.
type InMemoryRegistry struct {
	mu      sync.RWMutex
	schemas map[string]Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{schemas: make(map[string]Schema)}
}

// DefaultRegistry creates a registry preloaded with the built-in EM
// annotation schemas.
func DefaultRegistry() *InMemoryRegistry {
	r := NewRegistry()
	builtins := []Schema{
		SynapseSchema(),
		ContactSchema(),
		CellTypeLocalSchema(),
		BoutonShapeSchema(),
		PostsynapticCompartmentSchema(),
	}
	for _, s := range builtins {
		// Built-in names cannot collide.
		_ = r.Register(s)
	}
	return r
}

// Register adds a schema under its own name. Registering a name twice
// is an error; schemas are immutable once published.
func (r *InMemoryRegistry) Register(s Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schemas[s.Name]; ok {
		return DuplicateSchemaError(s.Name)
	}
	r.schemas[s.Name] = s
	return nil
}

// Lookup implements Registry.
func (r *InMemoryRegistry) Lookup(name string) (Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	if !ok {
		return Schema{}, SchemaNotFoundError(name)
	}
	return s, nil
}

// ValidNames implements Registry.
func (r *InMemoryRegistry) ValidNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SchemaNotFoundError creates an error for a schema name that is not
// registered.
func SchemaNotFoundError(name string) error {
	msg := `Annotation schema <em>%s</em> is not registered

<em>How to fix:</em>
  1. Check the spelling of the schema name
  2. List registered names with Registry.ValidNames()
  3. Register custom schemas before requesting models`

	return &gn.Error{
		Code: errcode.RegistryNotFoundError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("schema %q not found", name),
	}
}

// DuplicateSchemaError creates an error for registering an already
// taken schema name.
func DuplicateSchemaError(name string) error {
	msg := `Annotation schema <em>%s</em> is already registered

Schemas are immutable once published. To change a schema's shape,
register it under a new name or bump the table version instead.`

	return &gn.Error{
		Code: errcode.RegistryDuplicateError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("schema %q already registered", name),
	}
}
