// Package dispatch provides the UI-thread dispatcher used by the
// composition coordinator.
//
// All region and view mutation must happen on a single logical UI
// thread. The coordinator may be called from arbitrary goroutines and
// marshals every mutating operation through a [Dispatcher], blocking the
// caller until the operation completes so callers observe a consistent
// post-condition. There is no deadline on the hand-off.
//
// # Main Types
//
//   - [Dispatcher]: the blocking Invoke contract
//   - [Loop]: a dispatcher backed by one long-lived goroutine with a
//     Start/Stop lifecycle
//   - [Direct]: runs functions inline on the calling goroutine; for
//     tests and programs whose event loop is already single-threaded
//     (e.g. a bubbletea Update loop)
//
// # Re-entrancy
//
// [Loop.Invoke] called from inside an invoked function runs the nested
// function inline instead of deadlocking on the hand-off. Close
// notifications that fire on the UI goroutine therefore may call back
// into the coordinator safely.
package dispatch
