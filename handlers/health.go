package handlers

import "net/http"

type modeReporter interface {
	FixtureMode() bool
}

type HealthHandler struct {
	Mode modeReporter
}

func NewHealthHandler(m modeReporter) *HealthHandler {
	return &HealthHandler{Mode: m}
}

// Health reports liveness and whether fixtures are being served.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	mode := "live"
	if h.Mode != nil && h.Mode.FixtureMode() {
		mode = "fixtures"
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "mode": mode})
}
