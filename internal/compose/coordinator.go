package compose

import (
	"strings"

	"mosaic/internal/dispatch"
	"mosaic/internal/errors"
	"mosaic/internal/event"
	"mosaic/internal/logging"
	"mosaic/internal/region"
	"mosaic/internal/view"
	"mosaic/internal/viewmodel"
)

// Config holds required dependencies for creating a Coordinator.
type Config struct {
	Regions    region.Manager
	Views      region.ViewQuery
	Resolver   view.Resolver
	Dispatcher dispatch.Dispatcher
}

// Option configures optional Coordinator collaborators.
type Option func(*Coordinator)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *logging.Logger) Option {
	return func(c *Coordinator) {
		if log != nil {
			c.logger = log.WithComponent("compose")
		}
	}
}

// WithBus sets the event bus the coordinator publishes composition
// events to. Without a bus, no events are published.
func WithBus(bus *event.Bus) Option {
	return func(c *Coordinator) {
		c.bus = bus
	}
}

// Coordinator bridges view-models to the region substrate. It owns the
// binding cache and guarantees that each view-model identity maps to at
// most one live (view, region) binding. Safe for concurrent use.
type Coordinator struct {
	regions    region.Manager
	views      region.ViewQuery
	resolver   view.Resolver
	dispatcher dispatch.Dispatcher

	cache  *cache
	logger *logging.Logger
	bus    *event.Bus
}

// New creates a Coordinator wired to the given substrate, resolver, and
// dispatcher.
func New(cfg Config, opts ...Option) (*Coordinator, error) {
	if cfg.Regions == nil {
		return nil, errors.New("compose: Regions is required")
	}
	if cfg.Views == nil {
		return nil, errors.New("compose: Views is required")
	}
	if cfg.Resolver == nil {
		return nil, errors.New("compose: Resolver is required")
	}
	if cfg.Dispatcher == nil {
		return nil, errors.New("compose: Dispatcher is required")
	}

	c := &Coordinator{
		regions:    cfg.Regions,
		views:      cfg.Views,
		resolver:   cfg.Resolver,
		dispatcher: cfg.Dispatcher,
		cache:      newCache(),
		logger:     logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BindingCount returns the number of live bindings.
func (c *Coordinator) BindingCount() int { return c.cache.len() }

// Binding returns the live binding for vm, if one exists.
func (c *Coordinator) Binding(vm viewmodel.ViewModel) (Binding, bool) {
	if vm == nil {
		return Binding{}, false
	}
	return c.cache.lookup(vm.ViewModelID())
}

// ActivateInRegion resolves vm's view and activates it in the named
// region. The first activation creates the binding, adds the view to the
// region, and subscribes to the view-model's close notification; later
// activations reuse the cached binding regardless of the name passed.
// An unknown region name is a silent no-op.
func (c *Coordinator) ActivateInRegion(vm viewmodel.ViewModel, regionName string) error {
	if err := validateViewModel(vm); err != nil {
		c.logger.Warn("ActivateInRegion rejected", "error", err)
		return err
	}
	if err := validateRegionName(regionName); err != nil {
		c.logger.Warn("ActivateInRegion rejected", "error", err, "view_model_id", vm.ViewModelID())
		return err
	}

	id := vm.ViewModelID()
	b, err := c.cache.getOrCreate(id, func() (Binding, error) {
		reg, ok := c.regions.Region(regionName)
		if !ok {
			return Binding{}, errors.ErrRegionNotFound
		}
		v, err := c.resolver.ResolveView(vm)
		if err != nil {
			return Binding{}, errors.Wrapf(err, "compose: resolving view for view model %d", id)
		}
		return Binding{View: v, Region: reg}, nil
	})
	if err != nil {
		if errors.Is(err, errors.ErrRegionNotFound) {
			c.logger.Debug("region not present, skipping activation",
				"region", regionName, "view_model_id", id)
			return nil
		}
		c.logger.Error("ActivateInRegion failed", "error", err,
			"region", regionName, "view_model_id", id)
		return err
	}

	return c.show(vm, b, false)
}

// ActivateWithParent activates vm relative to parent: the target region
// is the one holding parent's view placed under regionName. When the
// parent has no view in that region the call is a silent no-op. On
// success the two view-models are linked through the optional
// Hierarchical capability.
func (c *Coordinator) ActivateWithParent(vm, parent viewmodel.ViewModel, regionName string) error {
	if err := validateViewModel(vm); err != nil {
		c.logger.Warn("ActivateWithParent rejected", "error", err)
		return err
	}
	if parent == nil {
		err := errors.NewValidationError("parent view model must not be nil").WithField("parent")
		c.logger.Warn("ActivateWithParent rejected", "error", err, "view_model_id", vm.ViewModelID())
		return err
	}
	if err := validateRegionName(regionName); err != nil {
		c.logger.Warn("ActivateWithParent rejected", "error", err, "view_model_id", vm.ViewModelID())
		return err
	}

	id := vm.ViewModelID()
	if id == parent.ViewModelID() {
		err := errors.NewPreconditionError("view model cannot be activated into itself", errors.ErrSelfParent).
			WithOperation("ActivateWithParent").
			WithViewModel(id)
		c.logger.Warn("ActivateWithParent rejected", "error", err)
		return err
	}

	target, ok := c.findParentRegion(parent, regionName)
	if !ok {
		c.logger.Debug("parent has no view in region, skipping activation",
			"region", regionName, "view_model_id", id, "parent_id", parent.ViewModelID())
		return nil
	}

	b, err := c.cache.getOrCreate(id, func() (Binding, error) {
		v, err := c.resolver.ResolveView(vm)
		if err != nil {
			return Binding{}, errors.Wrapf(err, "compose: resolving view for view model %d", id)
		}
		return Binding{View: v, Region: target}, nil
	})
	if err != nil {
		c.logger.Error("ActivateWithParent failed", "error", err,
			"region", regionName, "view_model_id", id)
		return err
	}

	if err := c.show(vm, b, false); err != nil {
		return err
	}

	c.link(parent, vm)
	return nil
}

// Activate activates vm in the named region, or reactivates its existing
// binding when the name is empty.
func (c *Coordinator) Activate(vm viewmodel.ViewModel, regionName string) error {
	if strings.TrimSpace(regionName) == "" {
		return c.Reactivate(vm)
	}
	return c.ActivateInRegion(vm, regionName)
}

// Reactivate activates vm's cached view in its cached region without
// adding it again. A view-model with no binding is a precondition
// failure.
func (c *Coordinator) Reactivate(vm viewmodel.ViewModel) error {
	if err := validateViewModel(vm); err != nil {
		c.logger.Warn("Reactivate rejected", "error", err)
		return err
	}

	id := vm.ViewModelID()
	var opErr error
	err := c.dispatcher.Invoke(func() {
		b, ok := c.cache.lookup(id)
		if !ok {
			opErr = errors.NewPreconditionError("view model must be activated before reactivation", errors.ErrNotActivated).
				WithOperation("Reactivate").
				WithViewModel(id)
			return
		}
		if !region.Contains(b.Region.ActiveViews(), b.View) {
			b.Region.Activate(b.View)
			c.publish(event.NewViewActivatedEvent(b.Region.Name(), id, true))
		}
	})
	if err != nil {
		c.logger.Error("Reactivate dispatch failed", "error", err, "view_model_id", id)
		return err
	}
	if opErr != nil {
		c.logger.Warn("Reactivate rejected", "error", opErr)
	}
	return opErr
}

// Deactivate removes vm's view from its region's active set. If the
// view-model has closed, the view is also removed from the region and
// the binding is evicted in the same step. A view-model with no binding
// is a precondition failure.
func (c *Coordinator) Deactivate(vm viewmodel.ViewModel) error {
	if err := validateViewModel(vm); err != nil {
		c.logger.Warn("Deactivate rejected", "error", err)
		return err
	}

	id := vm.ViewModelID()
	var opErr error
	err := c.dispatcher.Invoke(func() {
		b, ok := c.cache.lookup(id)
		if !ok {
			opErr = errors.NewPreconditionError("view model must be activated before deactivation", errors.ErrNotActivated).
				WithOperation("Deactivate").
				WithViewModel(id)
			return
		}

		if region.Contains(b.Region.ActiveViews(), b.View) {
			b.Region.Deactivate(b.View)
			c.publish(event.NewViewDeactivatedEvent(b.Region.Name(), id))
		}

		if !vm.IsClosed() {
			return
		}

		evicted := c.cache.evict(id, func(bound Binding, token viewmodel.Token, subscribed bool) {
			if subscribed {
				if n, ok := vm.(viewmodel.Notifier); ok {
					n.RemoveCloseHandler(token)
				}
			}
			bound.Region.Remove(bound.View)
		})
		if evicted {
			c.logger.Debug("binding evicted", "region", b.Region.Name(), "view_model_id", id)
			c.publish(event.NewViewRemovedEvent(b.Region.Name(), id))
			c.publish(event.NewBindingEvictedEvent(b.Region.Name(), id))
		}
	})
	if err != nil {
		c.logger.Error("Deactivate dispatch failed", "error", err, "view_model_id", id)
		return err
	}
	if opErr != nil {
		c.logger.Warn("Deactivate rejected", "error", opErr)
	}
	return opErr
}

// show marshals the add-if-absent and activate-if-not-active steps onto
// the UI thread. The close-handler subscription happens together with
// the add, so a binding is subscribed exactly when its view is a region
// member.
func (c *Coordinator) show(vm viewmodel.ViewModel, b Binding, reactivated bool) error {
	id := vm.ViewModelID()
	return c.dispatcher.Invoke(func() {
		if !region.Contains(b.Region.Views(), b.View) {
			b.Region.Add(b.View)
			c.subscribeClose(vm)
			c.publish(event.NewViewAddedEvent(b.Region.Name(), id))
		}
		if !region.Contains(b.Region.ActiveViews(), b.View) {
			b.Region.Activate(b.View)
			c.publish(event.NewViewActivatedEvent(b.Region.Name(), id, reactivated))
		}
	})
}

// subscribeClose registers the coordinator's close handler on vm when it
// announces closure. View-models without the capability simply never get
// automatic cleanup.
func (c *Coordinator) subscribeClose(vm viewmodel.ViewModel) {
	n, ok := vm.(viewmodel.Notifier)
	if !ok {
		c.logger.Debug("view model does not announce closure, skipping close subscription",
			"view_model_id", vm.ViewModelID())
		return
	}

	t := n.OnClose(c.handleClose)
	if t == 0 {
		// Already closed; the handler has run inline and there is
		// nothing to track.
		return
	}
	c.cache.setSubscription(vm.ViewModelID(), t)
}

// handleClose runs when a bound view-model closes. Taking the
// subscription under the cache lock makes the cleanup exactly-once even
// if the notifier misfires.
func (c *Coordinator) handleClose(vm viewmodel.ViewModel) {
	id := vm.ViewModelID()
	token, ok := c.cache.takeSubscription(id)
	if !ok {
		return
	}
	if n, isNotifier := vm.(viewmodel.Notifier); isNotifier {
		n.RemoveCloseHandler(token)
	}

	if err := c.Deactivate(vm); err != nil {
		c.logger.Debug("close cleanup skipped", "error", err, "view_model_id", id)
	}
}

// findParentRegion locates the region holding parent's view placed under
// regionName.
func (c *Coordinator) findParentRegion(parent viewmodel.ViewModel, regionName string) (region.Region, bool) {
	for _, p := range c.views.ViewsOf(parent) {
		if p.RegionName == regionName {
			return p.Region, true
		}
	}
	return nil, false
}

// link establishes the bidirectional parent/child relationship for
// view-models that opt into the Hierarchical capability.
func (c *Coordinator) link(parent, child viewmodel.ViewModel) {
	if h, ok := parent.(viewmodel.Hierarchical); ok {
		h.RegisterChildViewModel(child)
	}
	if h, ok := child.(viewmodel.Hierarchical); ok {
		h.SetParentViewModel(parent)
	}
}

// publish sends e to the configured bus, if any.
func (c *Coordinator) publish(e event.Event) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}

func validateViewModel(vm viewmodel.ViewModel) error {
	if vm == nil {
		return errors.NewValidationError("view model must not be nil").WithField("viewModel")
	}
	return nil
}

func validateRegionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewValidationError("region name must not be empty").
			WithField("regionName").
			WithValue(name)
	}
	return nil
}
