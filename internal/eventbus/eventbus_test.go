package eventbus

import "testing"

func TestBusPublishSubscribe(t *testing.T) {
	bus := New[string]()
	ch := bus.Subscribe()
	bus.Publish("hello")
	v := <-ch
	if v != "hello" {
		t.Fatalf("expected hello got %v", v)
	}
	bus.Unsubscribe(ch)
}

func TestBusClose(t *testing.T) {
	bus := New[int]()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Close()
	if _, ok := <-ch1; ok {
		t.Fatalf("expected ch1 closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatalf("expected ch2 closed")
	}
}

func TestBusUnsubscribeAfterClose(t *testing.T) {
	bus := New[int]()
	ch := bus.Subscribe()
	bus.Close()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic on Unsubscribe after Close: %v", r)
		}
	}()
	bus.Unsubscribe(ch)
}

func TestBusPublishAfterClose(t *testing.T) {
	bus := New[int]()
	bus.Close()
	bus.Publish(1) // must not panic
}

func TestBusNonBlockingDelivery(t *testing.T) {
	bus := New[int]()
	ch := bus.Subscribe()
	// Overflow the subscriber buffer; the publisher must not stall.
	for i := 0; i < 32; i++ {
		bus.Publish(i)
	}
	if v := <-ch; v != 0 {
		t.Fatalf("expected first event 0 got %v", v)
	}
	bus.Unsubscribe(ch)
}
