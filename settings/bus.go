package settings

import "sync"

// Bus fans normalized settings values out to live subscribers, one channel
// set per domain. Slow subscribers drop events rather than block writers.
type Bus struct {
	mu   sync.RWMutex
	subs map[Domain]map[chan any]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Domain]map[chan any]struct{})}
}

// Subscribe registers for updates on a domain. The cancel func must be
// called exactly once; it unregisters and closes the channel.
func (b *Bus) Subscribe(domain Domain) (ch chan any, cancel func()) {
	ch = make(chan any, 16)
	b.mu.Lock()
	if b.subs[domain] == nil {
		b.subs[domain] = make(map[chan any]struct{})
	}
	b.subs[domain][ch] = struct{}{}
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		if subs, ok := b.subs[domain]; ok {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(b.subs, domain)
			}
		}
		b.mu.Unlock()
		close(ch)
	}
}

// Publish delivers a normalized value to every subscriber of the domain.
func (b *Bus) Publish(domain Domain, value any) {
	b.mu.RLock()
	for ch := range b.subs[domain] {
		select {
		case ch <- value:
		default: // drop if slow
		}
	}
	b.mu.RUnlock()
}
