package view

import (
	"fmt"
	"reflect"
	"sync"

	"mosaic/internal/viewmodel"
)

// Factory constructs a view bound to the given view-model. The factory is
// called at most once per view-model identity; the returned view lives
// until the owning view-model closes.
type Factory func(vm viewmodel.ViewModel) View

// Descriptor describes how to build a view for a particular view-model
// type. Descriptors are obtained from [Registry.Resolve] and consumed by
// [Registry.Construct].
type Descriptor struct {
	typeName string
	factory  Factory
}

// TypeName returns the view-model type this descriptor was registered for.
func (d Descriptor) TypeName() string { return d.typeName }

// Resolver resolves a view for a view-model in a single call. [Registry]
// is the default implementation.
type Resolver interface {
	ResolveView(vm viewmodel.ViewModel) (View, error)
}

// Registry maps view-model types to view factories. The zero value is not
// usable; call [NewRegistry]. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[reflect.Type]Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[reflect.Type]Descriptor)}
}

// Register associates the prototype's dynamic type with a factory.
// Registering the same type twice is an error.
func (r *Registry) Register(prototype viewmodel.ViewModel, f Factory) error {
	if prototype == nil {
		return fmt.Errorf("view: prototype must not be nil")
	}
	if f == nil {
		return fmt.Errorf("view: factory must not be nil")
	}

	t := reflect.TypeOf(prototype)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[t]; exists {
		return fmt.Errorf("view: factory already registered for %s", t)
	}
	r.factories[t] = Descriptor{typeName: t.String(), factory: f}
	return nil
}

// Resolve looks up the descriptor for vm's dynamic type.
func (r *Registry) Resolve(vm viewmodel.ViewModel) (Descriptor, bool) {
	if vm == nil {
		return Descriptor{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.factories[reflect.TypeOf(vm)]
	return d, ok
}

// Construct builds the view instance described by d, bound to vm.
func (r *Registry) Construct(d Descriptor, vm viewmodel.ViewModel) (View, error) {
	if d.factory == nil {
		return nil, fmt.Errorf("view: descriptor has no factory")
	}
	v := d.factory(vm)
	if v == nil {
		return nil, fmt.Errorf("view: factory for %s returned nil", d.typeName)
	}
	return v, nil
}

// ResolveView resolves and constructs the view for vm in one call,
// implementing [Resolver].
func (r *Registry) ResolveView(vm viewmodel.ViewModel) (View, error) {
	d, ok := r.Resolve(vm)
	if !ok {
		return nil, fmt.Errorf("view: no factory registered for %T", vm)
	}
	return r.Construct(d, vm)
}

// Count returns the number of registered factories.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
