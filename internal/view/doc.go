// Package view defines the view contract and view resolution for the
// composition coordinator.
//
// A [View] is a bubbletea model bound to exactly one view-model for its
// lifetime. The [Registry] maps view-model types to view factories:
// resolution is a two-step lookup (find the [Descriptor] for the
// view-model's dynamic type, then construct the view instance bound to
// that view-model).
//
// # Basic Usage
//
//	reg := view.NewRegistry()
//	err := reg.Register(&EditorModel{}, func(vm viewmodel.ViewModel) view.View {
//	    return NewEditorView(vm.(*EditorModel))
//	})
//
//	v, err := reg.ResolveView(someEditorModel)
//
// Registration is keyed by the prototype's dynamic type; registering the
// same type twice is an error. The registry is safe for concurrent use.
package view
