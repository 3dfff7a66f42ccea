package settings

import (
	"testing"
	"time"
)

func TestBusPublishReachesSubscriber(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(DomainTheme)
	defer cancel()

	bus.Publish(DomainTheme, DefaultTheme())

	select {
	case v := <-ch:
		if _, ok := v.(ThemeSettings); !ok {
			t.Errorf("unexpected value type %T", v)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for published value")
	}
}

func TestBusDomainsIsolated(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(DomainFooter)
	defer cancel()

	bus.Publish(DomainTheme, DefaultTheme())

	select {
	case v := <-ch:
		t.Fatalf("footer subscriber received theme event: %v", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusCancelUnsubscribes(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(DomainTheme)
	cancel()

	// Publishing after cancel must not panic on the closed channel.
	bus.Publish(DomainTheme, DefaultTheme())

	if _, ok := <-ch; ok {
		t.Error("expected closed channel after cancel")
	}
}

func TestBusDropsWhenSubscriberSlow(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe(DomainTheme)
	defer cancel()

	// More events than the channel buffers; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(DomainTheme, i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on slow subscriber")
	}
}
