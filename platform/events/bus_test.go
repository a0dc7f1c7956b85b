package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"leadscore_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	var wg sync.WaitGroup
	wg.Add(2)
	var mu sync.Mutex
	var seen int

	handler := HandlerFunc(func(_ context.Context, _ Event) error {
		mu.Lock()
		seen++
		mu.Unlock()
		wg.Done()
		return nil
	})
	bus.Subscribe("test.event", handler)
	bus.Subscribe("test.event", handler)

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers did not run")
	}

	mu.Lock()
	defer mu.Unlock()
	if seen != 2 {
		t.Fatalf("seen = %d, want 2", seen)
	}
}

func TestPublishIgnoresOtherEventNames(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	called := make(chan struct{}, 1)
	bus.Subscribe("test.other", HandlerFunc(func(_ context.Context, _ Event) error {
		called <- struct{}{}
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})

	select {
	case <-called:
		t.Fatal("handler for a different event name was invoked")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPublishSyncReturnsFirstError(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	first := errors.New("first failure")
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, _ Event) error {
		return first
	}))
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, _ Event) error {
		return errors.New("second failure")
	}))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})
	if !errors.Is(err, first) {
		t.Fatalf("err = %v, want %v", err, first)
	}
}

func TestPublishSurvivesHandlerPanic(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	ran := make(chan struct{})
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, _ Event) error {
		panic("boom")
	}))
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, _ Event) error {
		close(ran)
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler did not run after sibling panic")
	}
}
