package definition

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"

	"param-deserializer/schema"
)

// ConverterRegistry holds the converters a definition file may reference,
// whether written in Go or compiled from CEL.
type ConverterRegistry struct {
	mu         sync.RWMutex
	converters map[string]*RegisteredConverter
}

// RegisteredConverter is a named converter. Def is nil for Go converters.
type RegisteredConverter struct {
	Name string
	Def  *ConverterDef
	Fn   schema.Converter
}

// NewConverterRegistry creates a new empty converter registry.
func NewConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{
		converters: make(map[string]*RegisteredConverter),
	}
}

// BuildRegistry compiles the converters declared in f on top of a copy of
// base, which may be nil. Declarations that fail are reported and skipped.
func BuildRegistry(f *File, base *ConverterRegistry) (*ConverterRegistry, []error) {
	registry := base.clone()

	var errs []error

	for i := range f.Converters {
		if err := registry.Compile(f.Converters[i]); err != nil {
			errs = append(errs, err)
		}
	}

	return registry, errs
}

// Register adds a Go converter.
func (r *ConverterRegistry) Register(name string, fn schema.Converter) error {
	if name == "" {
		return errors.New("converter name cannot be empty")
	}

	if fn == nil {
		return fmt.Errorf("converter %q is nil", name)
	}

	return r.add(&RegisteredConverter{Name: name, Fn: fn})
}

// Compile compiles a CEL converter and adds it.
func (r *ConverterRegistry) Compile(def ConverterDef) error {
	if def.Name == "" {
		return errors.New("converter name cannot be empty")
	}

	fn, err := compileConverter(def.Name, def.Expr)
	if err != nil {
		return err
	}

	return r.add(&RegisteredConverter{Name: def.Name, Def: &def, Fn: fn})
}

func (r *ConverterRegistry) add(c *RegisteredConverter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.converters[c.Name]; exists {
		return fmt.Errorf("converter %q is already registered", c.Name)
	}

	r.converters[c.Name] = c

	return nil
}

// Get returns a converter by name.
func (r *ConverterRegistry) Get(name string) (*RegisteredConverter, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.converters[name]

	return c, ok
}

// Has returns true if a converter with the given name exists.
func (r *ConverterRegistry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns all converter names, sorted.
func (r *ConverterRegistry) Names() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.converters)
	slices.Sort(names)

	return names
}

func (r *ConverterRegistry) clone() *ConverterRegistry {
	out := NewConverterRegistry()
	if r == nil {
		return out
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for name, c := range r.converters {
		out.converters[name] = c
	}

	return out
}
