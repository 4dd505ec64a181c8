package viewmodel

import "sync"

// Hierarchical is the optional parent/child relationship capability.
// View-models that participate in hierarchical composition implement it;
// absence is not an error. Callers probe for it with a type assertion,
// never reflection.
type Hierarchical interface {
	// RegisterChildViewModel records vm as a child of this view-model.
	RegisterChildViewModel(vm ViewModel)

	// SetParentViewModel records vm as the parent of this view-model.
	SetParentViewModel(vm ViewModel)
}

// Relations is an embeddable implementation of [Hierarchical] with
// accessors for inspection. It is safe for concurrent use.
type Relations struct {
	mu       sync.Mutex
	parent   ViewModel
	children []ViewModel
}

// RegisterChildViewModel appends vm to the child set. Duplicate
// registrations of the same identity are ignored.
func (r *Relations) RegisterChildViewModel(vm ViewModel) {
	if vm == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.children {
		if c.ViewModelID() == vm.ViewModelID() {
			return
		}
	}
	r.children = append(r.children, vm)
}

// SetParentViewModel records vm as the parent, replacing any previous one.
func (r *Relations) SetParentViewModel(vm ViewModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parent = vm
}

// Parent returns the recorded parent, or nil if none was set.
func (r *Relations) Parent() ViewModel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.parent
}

// Children returns a copy of the child set in registration order.
func (r *Relations) Children() []ViewModel {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ViewModel, len(r.children))
	copy(out, r.children)
	return out
}

// HasChild reports whether a child with vm's identity is registered.
func (r *Relations) HasChild(vm ViewModel) bool {
	if vm == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.children {
		if c.ViewModelID() == vm.ViewModelID() {
			return true
		}
	}
	return false
}
