package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "view.activated").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events. Embed this in
// concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{eventType: eventType, timestamp: time.Now()}
}

// ViewAddedEvent is emitted when a view becomes a member of a region.
type ViewAddedEvent struct {
	baseEvent
	RegionName  string // Region the view was added to
	ViewModelID int64  // Identity of the owning view-model
}

// NewViewAddedEvent creates a ViewAddedEvent.
func NewViewAddedEvent(regionName string, viewModelID int64) ViewAddedEvent {
	return ViewAddedEvent{
		baseEvent:   newBaseEvent("view.added"),
		RegionName:  regionName,
		ViewModelID: viewModelID,
	}
}

// ViewActivatedEvent is emitted when a view becomes the active member of
// its region.
type ViewActivatedEvent struct {
	baseEvent
	RegionName  string // Region the view is active in
	ViewModelID int64  // Identity of the owning view-model
	Reactivated bool   // True when activation reused an existing binding without a region name
}

// NewViewActivatedEvent creates a ViewActivatedEvent.
func NewViewActivatedEvent(regionName string, viewModelID int64, reactivated bool) ViewActivatedEvent {
	return ViewActivatedEvent{
		baseEvent:   newBaseEvent("view.activated"),
		RegionName:  regionName,
		ViewModelID: viewModelID,
		Reactivated: reactivated,
	}
}

// ViewDeactivatedEvent is emitted when a view leaves the active subset of
// its region.
type ViewDeactivatedEvent struct {
	baseEvent
	RegionName  string // Region the view was deactivated in
	ViewModelID int64  // Identity of the owning view-model
}

// NewViewDeactivatedEvent creates a ViewDeactivatedEvent.
func NewViewDeactivatedEvent(regionName string, viewModelID int64) ViewDeactivatedEvent {
	return ViewDeactivatedEvent{
		baseEvent:   newBaseEvent("view.deactivated"),
		RegionName:  regionName,
		ViewModelID: viewModelID,
	}
}

// ViewRemovedEvent is emitted when a view is removed from its region
// entirely. This only happens after the owning view-model has closed.
type ViewRemovedEvent struct {
	baseEvent
	RegionName  string // Region the view was removed from
	ViewModelID int64  // Identity of the owning view-model
}

// NewViewRemovedEvent creates a ViewRemovedEvent.
func NewViewRemovedEvent(regionName string, viewModelID int64) ViewRemovedEvent {
	return ViewRemovedEvent{
		baseEvent:   newBaseEvent("view.removed"),
		RegionName:  regionName,
		ViewModelID: viewModelID,
	}
}

// BindingEvictedEvent is emitted when a closed view-model's binding is
// dropped from the coordinator's cache. After this event the view-model
// must be activated by region name again before it can be shown.
type BindingEvictedEvent struct {
	baseEvent
	RegionName  string // Region the evicted binding pointed at
	ViewModelID int64  // Identity of the owning view-model
}

// NewBindingEvictedEvent creates a BindingEvictedEvent.
func NewBindingEvictedEvent(regionName string, viewModelID int64) BindingEvictedEvent {
	return BindingEvictedEvent{
		baseEvent:   newBaseEvent("binding.evicted"),
		RegionName:  regionName,
		ViewModelID: viewModelID,
	}
}
