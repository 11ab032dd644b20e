package cart

import (
	"sync"

	"mini-storefront/internal/event"

	"github.com/rs/zerolog"
)

// Badge is the header cart counter. It follows only the cart signals on the
// bus and is not derived from cart contents. It starts at zero and never
// goes negative.
type Badge struct {
	mu     sync.Mutex
	count  int
	sub    *event.Subscription
	logger zerolog.Logger
}

// NewBadge creates a badge listening to bus until Close is called.
func NewBadge(bus *event.Bus, logger zerolog.Logger) *Badge {
	b := &Badge{
		logger: logger.With().Str("component", "cart-badge").Logger(),
	}
	b.sub = bus.Subscribe(b.handle,
		event.KindCartIncrement,
		event.KindCartDecrement,
		event.KindCartClear,
	)
	return b
}

// Count returns the current badge value.
func (b *Badge) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Close detaches the badge from the bus.
func (b *Badge) Close() {
	b.sub.Unsubscribe()
}

func (b *Badge) handle(ev event.Event) {
	b.mu.Lock()
	switch ev.(type) {
	case event.CartIncremented:
		b.count++
	case event.CartDecremented:
		if b.count > 0 {
			b.count--
		}
	case event.CartCleared:
		b.count = 0
	}
	count := b.count
	b.mu.Unlock()

	b.logger.Debug().Str("kind", ev.Kind().String()).Int("count", count).Msg("badge updated")
}
