package hxshop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestFutureResolveOnce(t *testing.T) {
	f := NewFuture[int]()
	if f.Settled() {
		t.Fatal("new future should be pending")
	}
	if got := f.Value(); got != 0 {
		t.Errorf("pending Value() = %d, want 0", got)
	}

	if !f.Resolve(1) {
		t.Error("first Resolve() = false, want true")
	}
	if f.Resolve(2) {
		t.Error("second Resolve() = true, want false")
	}
	if got := f.Value(); got != 1 {
		t.Errorf("Value() = %d, want 1", got)
	}

	select {
	case <-f.Done():
	default:
		t.Error("Done() not closed after Resolve")
	}
}

func TestFutureConcurrentResolve(t *testing.T) {
	f := NewFuture[int]()
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.Resolve(i) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("settled %d times, want 1", wins)
	}
}

func TestFutureWait(t *testing.T) {
	f := NewFuture[string]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Resolve("done")
	}()

	v, err := f.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if v != "done" {
		t.Errorf("Wait() = %q, want done", v)
	}
}

func TestFutureWaitCancelled(t *testing.T) {
	f := NewFuture[string]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}

func TestResolved(t *testing.T) {
	f := Resolved[any](nil)
	if !f.Settled() {
		t.Fatal("Resolved() should be settled")
	}
	if f.Value() != nil {
		t.Errorf("Value() = %v, want nil", f.Value())
	}
}
