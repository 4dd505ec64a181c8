package viewmodel

import (
	"log"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// nextID is the process-wide identity counter. IDs start at 1 so the zero
// value never collides with an allocated identity.
var nextID atomic.Int64

// ViewModel is the minimum contract a view-model must satisfy to be
// managed by the composition coordinator.
type ViewModel interface {
	// ViewModelID returns a process-unique, stable identifier valid for
	// the lifetime of this view-model.
	ViewModelID() int64

	// IsClosed reports whether the view-model has transitioned to its
	// closed state.
	IsClosed() bool
}

// Handler is invoked when a view-model closes. It receives the view-model
// that closed; subscribers that need a concrete type should capture it in
// a closure at subscription time.
type Handler func(vm ViewModel)

// Token identifies a close-handler subscription. The zero Token is never
// issued.
type Token uint64

// Notifier is the close-notification capability. It is implemented by
// view-models that announce their own closure.
type Notifier interface {
	// OnClose registers a handler to run when the view-model closes.
	OnClose(h Handler) Token

	// RemoveCloseHandler removes a previously registered handler.
	// Returns true if the subscription was found and removed.
	RemoveCloseHandler(t Token) bool
}

// closeSub pairs a subscription token with its handler, preserving
// registration order for dispatch.
type closeSub struct {
	token   Token
	handler Handler
}

// Base is an embeddable view-model implementing [ViewModel] and
// [Notifier]. It is safe for concurrent use.
type Base struct {
	id int64

	mu        sync.Mutex
	closed    bool
	nextToken Token
	subs      []closeSub
}

// NewBase allocates a view-model base with a fresh identity.
func NewBase() *Base {
	return &Base{id: nextID.Add(1)}
}

// ViewModelID returns the identity assigned at construction.
func (b *Base) ViewModelID() int64 { return b.id }

// IsClosed reports whether Close has been called.
func (b *Base) IsClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// OnClose registers a handler fired on the first call to Close. If the
// view-model is already closed the handler is invoked immediately and no
// subscription is retained.
func (b *Base) OnClose(h Handler) Token {
	if h == nil {
		return 0
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		safeNotify(h, b)
		return 0
	}
	b.nextToken++
	t := b.nextToken
	b.subs = append(b.subs, closeSub{token: t, handler: h})
	b.mu.Unlock()
	return t
}

// RemoveCloseHandler removes the subscription identified by t. Returns
// true if the subscription existed.
func (b *Base) RemoveCloseHandler(t Token) bool {
	if t == 0 {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subs {
		if sub.token == t {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Close transitions the view-model to its closed state and fires all
// registered close handlers in registration order. Only the first call
// has any effect.
func (b *Base) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	subs := b.subs
	b.subs = nil
	b.mu.Unlock()

	for _, sub := range subs {
		safeNotify(sub.handler, b)
	}
}

// safeNotify invokes a close handler and recovers from panics so one
// misbehaving handler cannot block delivery to the others.
func safeNotify(h Handler, vm ViewModel) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: close handler panicked for view model %d: %v\n%s",
				vm.ViewModelID(), r, debug.Stack())
		}
	}()
	h(vm)
}
