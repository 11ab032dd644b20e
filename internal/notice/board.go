package notice

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Notice is a short-lived message shown to the user.
type Notice struct {
	Key       string    `json:"key"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type entry struct {
	notice Notice
	timer  *time.Timer
}

// Board holds active notices and dismisses each one after its duration.
// Close stops every pending timer so nothing fires after teardown.
type Board struct {
	mu      sync.Mutex
	entries map[string]*entry
	closed  bool
	now     func() time.Time
	logger  zerolog.Logger
}

// NewBoard creates an empty board.
func NewBoard(logger zerolog.Logger) *Board {
	return &Board{
		entries: make(map[string]*entry),
		now:     time.Now,
		logger:  logger.With().Str("component", "notice-board").Logger(),
	}
}

// Show displays message under key for d. Showing a key again replaces the
// message and restarts its timer.
func (b *Board) Show(key, message string, d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	if old, ok := b.entries[key]; ok {
		old.timer.Stop()
	}

	e := &entry{
		notice: Notice{Key: key, Message: message, ExpiresAt: b.now().Add(d)},
	}
	e.timer = time.AfterFunc(d, func() { b.expire(key, e) })
	b.entries[key] = e

	b.logger.Debug().Str("key", key).Dur("duration", d).Msg("notice shown")
}

// Dismiss removes the notice under key, if any.
func (b *Board) Dismiss(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if e, ok := b.entries[key]; ok {
		e.timer.Stop()
		delete(b.entries, key)
	}
}

// Active returns the current notices ordered by key.
func (b *Board) Active() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Notice, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e.notice)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Close stops all timers and drops every notice.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key, e := range b.entries {
		e.timer.Stop()
		delete(b.entries, key)
	}
	b.closed = true

	b.logger.Debug().Msg("notice board closed")
}

// expire removes key only if it still maps to e; a replaced entry's stale
// timer must not remove its successor.
func (b *Board) expire(key string, e *entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cur, ok := b.entries[key]; ok && cur == e {
		delete(b.entries, key)
	}
}
