// Package viewmodel defines the view-model contracts consumed by the
// composition coordinator.
//
// A view-model is the non-visual state object driving a view. It owns a
// process-unique identity, a closed flag, and optionally announces its own
// closure to subscribers. View-models that participate in hierarchical
// relationships additionally implement the [Hierarchical] capability.
//
// # Main Types
//
//   - [ViewModel]: identity and closed-state contract, the minimum every
//     view-model must satisfy
//   - [Notifier]: close-notification capability with token-based
//     subscriptions
//   - [Hierarchical]: optional parent/child relationship capability
//   - [Base]: embeddable implementation of [ViewModel] and [Notifier]
//   - [Relations]: embeddable implementation of [Hierarchical]
//
// # Identity
//
// Identifiers are allocated from a process-wide atomic counter when a
// [Base] is created. Two distinct live view-models never share an
// identifier, which makes the identifier safe to use as a cache key.
//
// # Close Notification
//
// Subscribing returns a [Token] that the subscriber holds to remove the
// handler later. Handlers fire exactly once, on the first call to
// [Base.Close]; later calls are no-ops. A panicking handler is recovered
// so it cannot prevent delivery to the remaining handlers.
//
// # Capability Checks
//
// Neither [Notifier] nor [Hierarchical] is required. Callers probe for
// them with a plain type assertion:
//
//	if h, ok := vm.(viewmodel.Hierarchical); ok {
//	    h.RegisterChildViewModel(child)
//	}
package viewmodel
