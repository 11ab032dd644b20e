package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mini-storefront/internal/event"
	"mini-storefront/internal/model"

	"github.com/rs/zerolog"
)

const defaultHeartbeat = 30 * time.Second

// EventHandler streams bus events to clients as server-sent events.
type EventHandler struct {
	bus       *event.Bus
	buffer    int
	heartbeat time.Duration
	logger    zerolog.Logger
}

// NewEventHandler creates a new event handler. Each client gets a channel of
// buffer events; events beyond that are dropped for the slow client.
func NewEventHandler(bus *event.Bus, buffer int, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		bus:       bus,
		buffer:    buffer,
		heartbeat: defaultHeartbeat,
		logger:    logger.With().Str("handler", "event").Logger(),
	}
}

// Stream handles GET /api/events requests. The optional kinds parameter is a
// comma separated list of event names to receive.
func (h *EventHandler) Stream(w http.ResponseWriter, r *http.Request) {
	var kinds []event.Kind
	if raw := r.URL.Query().Get("kinds"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			k, ok := event.ParseKind(strings.TrimSpace(name))
			if !ok {
				writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, "unknown event kind: "+name, h.logger)
				return
			}
			kinds = append(kinds, k)
		}
	}

	rc := http.NewResponseController(w)
	// Streams outlive the server write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	events, cancel := h.bus.Channel(h.buffer, kinds...)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		h.logger.Error().Err(err).Msg("streaming not supported")
		return
	}

	h.logger.Debug().Int("kinds", len(kinds)).Msg("event stream opened")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Debug().Msg("event stream closed")
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case ev := <-events:
			if err := writeEvent(w, ev); err != nil {
				h.logger.Warn().Err(err).Str("kind", ev.Kind().String()).Msg("failed to write event")
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, ev event.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Kind(), data)
	return err
}
