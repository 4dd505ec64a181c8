package compose

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mosaic/internal/errors"
	"mosaic/internal/viewmodel"
)

func testBinding() Binding {
	return Binding{View: &paneView{vm: &plainVM{id: -100}}}
}

func TestCache_GetOrCreate(t *testing.T) {
	c := newCache()
	want := testBinding()

	calls := 0
	b, err := c.getOrCreate(1, func() (Binding, error) {
		calls++
		return want, nil
	})
	if err != nil {
		t.Fatalf("getOrCreate failed: %v", err)
	}
	if b.View != want.View {
		t.Error("getOrCreate should return the created binding")
	}

	// Second call hits the cache.
	b, err = c.getOrCreate(1, func() (Binding, error) {
		calls++
		return Binding{}, nil
	})
	if err != nil {
		t.Fatalf("cached getOrCreate failed: %v", err)
	}
	if b.View != want.View {
		t.Error("getOrCreate should return the cached binding")
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if c.len() != 1 {
		t.Errorf("cache holds %d entries, want 1", c.len())
	}
}

func TestCache_GetOrCreateError(t *testing.T) {
	c := newCache()

	_, err := c.getOrCreate(1, func() (Binding, error) {
		return Binding{}, errors.New("boom")
	})
	if err == nil {
		t.Fatal("create error should surface")
	}
	if c.len() != 0 {
		t.Error("failed creation should store nothing")
	}

	// The key is not poisoned.
	want := testBinding()
	b, err := c.getOrCreate(1, func() (Binding, error) { return want, nil })
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if b.View != want.View {
		t.Error("retry should create and return a fresh binding")
	}
}

func TestCache_GetOrCreateConcurrent(t *testing.T) {
	c := newCache()

	var calls atomic.Int64
	create := func() (Binding, error) {
		calls.Add(1)
		time.Sleep(5 * time.Millisecond)
		return testBinding(), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.getOrCreate(7, create); err != nil {
				t.Errorf("concurrent getOrCreate failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("create called %d times under concurrency, want 1", calls.Load())
	}
	if c.len() != 1 {
		t.Errorf("cache holds %d entries, want 1", c.len())
	}
}

func TestCache_DistinctKeys(t *testing.T) {
	c := newCache()

	for id := int64(1); id <= 3; id++ {
		if _, err := c.getOrCreate(id, func() (Binding, error) { return testBinding(), nil }); err != nil {
			t.Fatalf("getOrCreate(%d) failed: %v", id, err)
		}
	}
	if c.len() != 3 {
		t.Errorf("cache holds %d entries, want 3", c.len())
	}

	if _, ok := c.lookup(2); !ok {
		t.Error("lookup should find key 2")
	}
	if _, ok := c.lookup(99); ok {
		t.Error("lookup should miss an unknown key")
	}
}

func TestCache_SubscriptionLifecycle(t *testing.T) {
	c := newCache()
	if _, err := c.getOrCreate(1, func() (Binding, error) { return testBinding(), nil }); err != nil {
		t.Fatalf("getOrCreate failed: %v", err)
	}

	if c.setSubscription(99, viewmodel.Token(5)) {
		t.Error("setSubscription should fail for an unknown key")
	}
	if !c.setSubscription(1, viewmodel.Token(5)) {
		t.Fatal("setSubscription should succeed for a live entry")
	}

	tok, ok := c.takeSubscription(1)
	if !ok || tok != viewmodel.Token(5) {
		t.Fatalf("takeSubscription = (%d, %v), want (5, true)", tok, ok)
	}

	// Taking again finds nothing. This is the exactly-once guarantee.
	if _, ok := c.takeSubscription(1); ok {
		t.Error("second takeSubscription should find no subscription")
	}
}

func TestCache_Evict(t *testing.T) {
	c := newCache()
	want := testBinding()
	if _, err := c.getOrCreate(1, func() (Binding, error) { return want, nil }); err != nil {
		t.Fatalf("getOrCreate failed: %v", err)
	}
	c.setSubscription(1, viewmodel.Token(9))

	var gotToken viewmodel.Token
	var gotSubscribed bool
	evicted := c.evict(1, func(b Binding, token viewmodel.Token, subscribed bool) {
		if b.View != want.View {
			t.Error("cleanup should receive the cached binding")
		}
		gotToken = token
		gotSubscribed = subscribed
	})
	if !evicted {
		t.Fatal("evict should report success for a live entry")
	}
	if gotToken != viewmodel.Token(9) || !gotSubscribed {
		t.Errorf("cleanup got (token=%d, subscribed=%v), want (9, true)", gotToken, gotSubscribed)
	}

	if _, ok := c.lookup(1); ok {
		t.Error("lookup should miss after eviction")
	}
	if c.evict(1, nil) {
		t.Error("evicting an unknown key should report false")
	}
}
