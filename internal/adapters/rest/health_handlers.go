package rest

import (
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port/usecases_port"
	"net/http"
)

type HealthHandler struct {
	healthCheckUC usecases_port.HealthCheckUseCase
}

func NewHealthHandler(healthCheckUC usecases_port.HealthCheckUseCase) *HealthHandler {
	return &HealthHandler{healthCheckUC: healthCheckUC}
}

// Health обрабатывает GET /healthz
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.healthCheckUC.Execute(r.Context()); err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Health check failed", err, nil)
		RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
