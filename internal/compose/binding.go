package compose

import (
	"mosaic/internal/region"
	"mosaic/internal/view"
)

// Binding is the cached association between a view-model's resolved view
// and the region it was placed into. A binding is created at most once
// per view-model identity, is never mutated, and is dropped only when
// the owning view-model closes.
type Binding struct {
	View   view.View
	Region region.Region
}
