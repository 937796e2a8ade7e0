package http

import (
	"net/http"
	"time"

	"fleetrent-backend/internal/service"
)

type SystemHandler struct {
	metrics service.MetricsService
}

func NewSystemHandler(metrics service.MetricsService) *SystemHandler {
	return &SystemHandler{metrics: metrics}
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *SystemHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	snap, err := h.metrics.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
