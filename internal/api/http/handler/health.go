package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/clinic-server/internal/api/http/response"
	"github.com/dtroode/clinic-server/internal/logger"
)

// Pinger checks a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	db     Pinger
	logger *logger.Logger
}

func NewHealth(db Pinger, logger *logger.Logger) *Health {
	return &Health{db: db, logger: logger}
}

// Check reports 200 when the database answers and 503 otherwise.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Warn("Health: database ping failed", "error", err.Error())
		response.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
