package event

import (
	"sync"

	"github.com/rs/zerolog"
)

// Handler receives published events.
type Handler func(Event)

// Bus is an in-process publish/subscribe hub. Delivery is synchronous and
// follows subscription order. Events published with no subscriber are lost.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []*Subscription
	logger zerolog.Logger
}

// Subscription is a registered handler. Call Unsubscribe to tear it down.
type Subscription struct {
	id      uint64
	bus     *Bus
	kinds   map[Kind]struct{}
	handler Handler
	once    sync.Once
}

// NewBus creates an empty bus.
func NewBus(logger zerolog.Logger) *Bus {
	return &Bus{
		logger: logger.With().Str("component", "event-bus").Logger(),
	}
}

// Subscribe registers handler for the given kinds, or for every kind when
// none are given.
func (b *Bus) Subscribe(handler Handler, kinds ...Kind) *Subscription {
	sub := &Subscription{
		bus:     b,
		handler: handler,
	}
	if len(kinds) > 0 {
		sub.kinds = make(map[Kind]struct{}, len(kinds))
		for _, k := range kinds {
			sub.kinds[k] = struct{}{}
		}
	}

	b.mu.Lock()
	b.nextID++
	sub.id = b.nextID
	b.subs = append(b.subs, sub)
	count := len(b.subs)
	b.mu.Unlock()

	b.logger.Debug().Uint64("subscription_id", sub.id).Int("subscribers", count).Msg("subscribed")

	return sub
}

// Publish delivers ev to every matching subscriber. Handlers run on the
// caller's goroutine after the bus lock is released, so they may subscribe,
// unsubscribe or publish themselves.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	targets := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.matches(ev.Kind()) {
			targets = append(targets, sub)
		}
	}
	b.mu.RUnlock()

	b.logger.Debug().
		Str("kind", ev.Kind().String()).
		Int("subscribers", len(targets)).
		Msg("publishing event")

	for _, sub := range targets {
		sub.handler(ev)
	}
}

// SubscriberCount returns the number of live subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Channel subscribes a buffered channel. Events that do not fit in the
// buffer are dropped. The returned cancel func unsubscribes; the channel is
// never closed so a racing Publish cannot panic.
func (b *Bus) Channel(buffer int, kinds ...Kind) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	sub := b.Subscribe(func(ev Event) {
		select {
		case ch <- ev:
		default:
			b.logger.Warn().Str("kind", ev.Kind().String()).Msg("subscriber buffer full, dropping event")
		}
	}, kinds...)
	return ch, sub.Unsubscribe
}

// Unsubscribe removes the subscription from its bus. It is safe to call
// more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		b := s.bus
		b.mu.Lock()
		for i, sub := range b.subs {
			if sub == s {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				break
			}
		}
		count := len(b.subs)
		b.mu.Unlock()

		b.logger.Debug().Uint64("subscription_id", s.id).Int("subscribers", count).Msg("unsubscribed")
	})
}

func (s *Subscription) matches(k Kind) bool {
	if s.kinds == nil {
		return true
	}
	_, ok := s.kinds[k]
	return ok
}
