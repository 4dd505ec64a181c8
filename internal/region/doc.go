// Package region defines the region substrate consumed by the
// composition coordinator, plus an in-memory implementation.
//
// A region is a named placeholder in the UI shell that hosts zero or more
// views, with a distinguished active subset. Regions are looked up by
// name through a [Manager]; looking up an unknown name reports absence
// rather than failing, which lets callers tolerate regions that have not
// been created yet.
//
// # Main Types
//
//   - [Region]: membership and activity operations for one named region
//   - [Manager]: region lookup by name
//   - [ViewQuery]: discovers the placed views of a view-model, with
//     their region metadata
//   - [Shell]: in-memory Manager + ViewQuery with lipgloss rendering,
//     used by the demo shell and by tests
//
// # Threading
//
// The coordinator marshals every mutating call (Add, Activate,
// Deactivate, Remove) onto the UI thread, so implementations may assume
// single-threaded mutation. [Shell] is nevertheless internally locked so
// that read-side queries (Render, ViewsOf) are safe from any goroutine.
package region
