package dispatch

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"mosaic/internal/errors"
	"mosaic/internal/logging"
)

// Dispatcher marshals a function onto the UI thread and blocks the
// caller until it has completed. If the function panics, the panic is
// recovered and returned as an error.
type Dispatcher interface {
	Invoke(fn func()) error
}

// Direct is a Dispatcher that runs functions inline on the calling
// goroutine. Use it when the caller already owns the UI thread, such as
// inside a bubbletea Update loop, or in tests.
type Direct struct{}

// Invoke runs fn immediately.
func (Direct) Invoke(fn func()) error {
	if fn == nil {
		return errors.NewValidationError("fn must not be nil").WithField("fn")
	}
	return runSafe(fn, nil)
}

// runSafe executes fn, converting a panic into an error. The logger may
// be nil.
func runSafe(fn func(), log *logging.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if log != nil {
				log.Error("invoked function panicked", "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
			}
			err = fmt.Errorf("dispatch: invoked function panicked: %v", r)
		}
	}()
	fn()
	return nil
}

// currentGoroutineID extracts the running goroutine's ID from the stack
// header ("goroutine N [running]:"). Used only to detect re-entrant
// Invoke calls; never for scheduling decisions.
func currentGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
