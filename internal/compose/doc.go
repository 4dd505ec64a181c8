// Package compose implements the composition coordinator, the bridge
// between the view-model layer and the region substrate.
//
// The coordinator resolves a view for a view-model, places it into a
// named region, and remembers the (view, region) pair as a binding keyed
// by the view-model's identity. Later activations reuse the binding; the
// binding is dropped only when the owning view-model closes.
//
// # Operations
//
//   - [Coordinator.ActivateInRegion]: resolve, add, and activate a
//     view-model's view in a named region
//   - [Coordinator.ActivateWithParent]: activate relative to a parent
//     view-model's placed views and link the two hierarchically
//   - [Coordinator.Activate]: dispatch on region name, empty meaning
//     reactivate
//   - [Coordinator.Reactivate]: re-activate an existing binding
//   - [Coordinator.Deactivate]: deactivate, and evict the binding once
//     the view-model has closed
//
// # Concurrency
//
// Operations may be called from any goroutine. All region and view
// mutation is marshaled onto the UI thread through the configured
// [dispatch.Dispatcher], and binding creation is deduplicated per
// view-model identity with singleflight, so concurrent activations of
// the same view-model produce exactly one view.
//
// # Error handling
//
// Invalid arguments surface as validation errors and operations on
// view-models that were never activated surface as precondition errors,
// both before any mutation. A region name that the substrate does not
// know, or a parent with no placed view in the named region, is a
// silent no-op logged at debug level.
package compose
