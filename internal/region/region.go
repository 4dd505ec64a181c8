package region

import (
	"mosaic/internal/view"
	"mosaic/internal/viewmodel"
)

// Region is a named container of views with a distinguished active
// subset. A view may be a member without being active.
type Region interface {
	// Name returns the region's name.
	Name() string

	// Views returns the current members in addition order.
	Views() []view.View

	// ActiveViews returns the currently active members.
	ActiveViews() []view.View

	// Add makes v a member of the region. Adding a view that is already
	// a member is a no-op.
	Add(v view.View)

	// Activate makes v an active member. Views that are not members are
	// ignored.
	Activate(v view.View)

	// Deactivate removes v from the active subset. Views that are not
	// active are ignored.
	Deactivate(v view.View)

	// Remove drops v from the region entirely.
	Remove(v view.View)
}

// Manager looks up regions by name. The boolean result reports presence;
// an unknown name is not an error.
type Manager interface {
	Region(name string) (Region, bool)
}

// Placed is a view together with the region it was placed into. It is
// the unit returned by [ViewQuery].
type Placed struct {
	View       view.View
	RegionName string
	Region     Region
}

// ViewQuery discovers the views currently placed for a view-model,
// across all regions of a manager.
type ViewQuery interface {
	ViewsOf(vm viewmodel.ViewModel) []Placed
}

// Contains reports whether vs holds a view bound to the same view-model
// as target.
func Contains(vs []view.View, target view.View) bool {
	for _, v := range vs {
		if view.Same(v, target) {
			return true
		}
	}
	return false
}
