package handler

import (
	"net/http"

	"mini-storefront/internal/notice"

	"github.com/rs/zerolog"
)

// NoticeLister returns the notices currently on display.
type NoticeLister interface {
	Active() []notice.Notice
}

// NoticeHandler handles notice HTTP requests.
type NoticeHandler struct {
	notices NoticeLister
	logger  zerolog.Logger
}

// NewNoticeHandler creates a new notice handler.
func NewNoticeHandler(notices NoticeLister, logger zerolog.Logger) *NoticeHandler {
	return &NoticeHandler{
		notices: notices,
		logger:  logger.With().Str("handler", "notice").Logger(),
	}
}

// List handles GET /api/notices requests.
func (h *NoticeHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.notices.Active())
}
