package dispatch

import (
	"context"
	"sync"
	"sync/atomic"

	"mosaic/internal/errors"
	"mosaic/internal/logging"
)

const defaultQueueSize = 16

// job is one marshaled function together with its completion channel.
type job struct {
	fn     func()
	result chan error
}

// Loop is a Dispatcher backed by a single long-lived goroutine. Every
// invoked function runs on that goroutine; callers block until their
// function has completed. Invoke from within an invoked function runs
// inline, so re-entrant coordinator calls cannot deadlock.
type Loop struct {
	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc

	jobs chan job
	// done is closed when the loop goroutine has exited.
	done chan struct{}
	// gid holds the loop goroutine's ID while running; used to detect
	// re-entrant Invoke calls.
	gid atomic.Uint64

	queueSize int
	logger    *logging.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithQueueSize sets the pending-invocation queue size. Values below 1
// use the default.
func WithQueueSize(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.queueSize = n
		}
	}
}

// WithLogger sets the logger used for panic reports.
func WithLogger(log *logging.Logger) Option {
	return func(l *Loop) {
		if log != nil {
			l.logger = log
		}
	}
}

// NewLoop creates a Loop. The loop does not accept work until Start is
// called.
func NewLoop(opts ...Option) *Loop {
	l := &Loop{
		queueSize: defaultQueueSize,
		logger:    logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start launches the loop goroutine. Returns an error if the loop is
// already started.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.started {
		return errors.New("dispatch: loop already started")
	}

	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.started = true
	l.jobs = make(chan job, l.queueSize)
	l.done = make(chan struct{})

	go l.run(ctx)
	return nil
}

// Stop shuts the loop down and waits for the loop goroutine to exit.
// Pending invocations are answered with ErrDispatcherStopped. Stop is
// idempotent.
func (l *Loop) Stop() error {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return nil
	}
	l.cancel()
	done := l.done
	l.started = false
	l.mu.Unlock()

	<-done
	return nil
}

// Running reports whether the loop is currently started.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.started
}

// Invoke marshals fn onto the loop goroutine and blocks until it has
// completed. Called from the loop goroutine itself, fn runs inline.
// Returns ErrDispatcherStopped if the loop is not running.
func (l *Loop) Invoke(fn func()) error {
	if fn == nil {
		return errors.NewValidationError("fn must not be nil").WithField("fn")
	}

	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return errors.ErrDispatcherStopped
	}
	jobs, done := l.jobs, l.done
	l.mu.Unlock()

	// Re-entrant call from the loop goroutine: run inline rather than
	// deadlocking on the hand-off.
	if l.gid.Load() != 0 && l.gid.Load() == currentGoroutineID() {
		return runSafe(fn, l.logger)
	}

	j := job{fn: fn, result: make(chan error, 1)}
	select {
	case jobs <- j:
	case <-done:
		return errors.ErrDispatcherStopped
	}

	select {
	case err := <-j.result:
		return err
	case <-done:
		// The loop may have executed the job just before exiting;
		// prefer its result when present.
		select {
		case err := <-j.result:
			return err
		default:
			return errors.ErrDispatcherStopped
		}
	}
}

// run is the loop goroutine body.
func (l *Loop) run(ctx context.Context) {
	defer close(l.done)

	l.gid.Store(currentGoroutineID())
	defer l.gid.Store(0)

	for {
		select {
		case <-ctx.Done():
			// Answer anything still queued before exiting.
			for {
				select {
				case j := <-l.jobs:
					j.result <- errors.ErrDispatcherStopped
				default:
					return
				}
			}
		case j := <-l.jobs:
			j.result <- runSafe(j.fn, l.logger)
		}
	}
}
