// Package event provides a pub-sub event bus for observing composition
// activity.
//
// The composition coordinator publishes an event for every region
// mutation it performs (add, activate, deactivate, remove, eviction), so
// shells and tooling can react to composition changes without being
// wired into the coordinator directly.
//
// # Main Types
//
//   - [Event]: interface all events implement (EventType, Timestamp)
//   - [Bus]: synchronous pub-sub dispatcher, safe for concurrent use
//   - [Handler]: function type for event handlers
//
// # Event Types
//
//   - [ViewAddedEvent] "view.added": a view became a member of a region
//   - [ViewActivatedEvent] "view.activated": a view became active
//   - [ViewDeactivatedEvent] "view.deactivated": a view became inactive
//   - [ViewRemovedEvent] "view.removed": a view left its region
//   - [BindingEvictedEvent] "binding.evicted": a closed view-model's
//     cache entry was dropped
//
// # Thread Safety
//
// The [Bus] is safe for concurrent use. Handlers are called
// synchronously in subscription order and are protected against panics;
// a panicking handler cannot prevent delivery to the others.
//
// # Basic Usage
//
//	bus := event.NewBus()
//	bus.Subscribe("view.activated", func(e event.Event) {
//	    act := e.(event.ViewActivatedEvent)
//	    log.Printf("activated %d in %s", act.ViewModelID, act.RegionName)
//	})
package event
