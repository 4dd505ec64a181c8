package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"mosaic/internal/viewmodel"
)

// View is a renderable UI element hosted by a region. Every view is
// constructed bound to a single view-model and keeps that binding for its
// lifetime; the bound view-model's identity is what region membership
// checks compare.
type View interface {
	tea.Model

	// ViewModel returns the view-model this view was constructed for.
	ViewModel() viewmodel.ViewModel
}

// Same reports whether two views are bound to the same view-model
// identity. Either argument may be nil.
func Same(a, b View) bool {
	if a == nil || b == nil {
		return false
	}
	avm, bvm := a.ViewModel(), b.ViewModel()
	if avm == nil || bvm == nil {
		return false
	}
	return avm.ViewModelID() == bvm.ViewModelID()
}
