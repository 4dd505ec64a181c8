package event

import (
	"log"
	"runtime/debug"
	"sort"
	"sync"
)

// Handler is a function that handles an event.
type Handler func(Event)

// Token identifies a subscription. The zero Token is never issued.
type Token uint64

// Bus is a simple synchronous pub-sub event bus. It allows components to
// observe composition activity without direct dependencies.
type Bus struct {
	mu        sync.RWMutex
	nextToken Token
	subs      map[string]map[Token]Handler // eventType -> token -> handler
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[Token]Handler)}
}

// Subscribe registers a handler for a specific event type. Returns a
// token that can be used to unsubscribe.
func (b *Bus) Subscribe(eventType string, handler Handler) Token {
	if handler == nil {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextToken++
	t := b.nextToken
	if b.subs[eventType] == nil {
		b.subs[eventType] = make(map[Token]Handler)
	}
	b.subs[eventType][t] = handler
	return t
}

// SubscribeAll registers a handler for every event type.
func (b *Bus) SubscribeAll(handler Handler) Token {
	return b.Subscribe("*", handler)
}

// Unsubscribe removes a subscription by token. Returns true if the
// subscription was found and removed.
func (b *Bus) Unsubscribe(t Token) bool {
	if t == 0 {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for eventType, handlers := range b.subs {
		if _, ok := handlers[t]; ok {
			delete(handlers, t)
			if len(handlers) == 0 {
				delete(b.subs, eventType)
			}
			return true
		}
	}
	return false
}

// Publish dispatches an event to all registered handlers. Specific
// handlers are called first, then wildcard handlers; within each group,
// handlers run in subscription order. A panicking handler is recovered
// and logged, and publishing continues.
func (b *Bus) Publish(event Event) {
	specific := b.snapshot(event.EventType())
	wildcard := b.snapshot("*")

	for _, h := range specific {
		safeCall(h, event)
	}
	for _, h := range wildcard {
		safeCall(h, event)
	}
}

// snapshot copies the handlers for an event type in token order, so
// dispatch happens without holding the lock.
func (b *Bus) snapshot(eventType string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	handlers := b.subs[eventType]
	if len(handlers) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(handlers))
	for t := range handlers {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })

	out := make([]Handler, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, handlers[t])
	}
	return out
}

// safeCall invokes a handler and recovers from panics so one misbehaving
// handler cannot block event delivery to the others.
func safeCall(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: event handler panicked for event %s: %v\n%s",
				event.EventType(), r, debug.Stack())
		}
	}()
	handler(event)
}

// Clear removes all subscriptions.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = make(map[string]map[Token]Handler)
}

// SubscriptionCount returns the total number of active subscriptions.
func (b *Bus) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, handlers := range b.subs {
		count += len(handlers)
	}
	return count
}
