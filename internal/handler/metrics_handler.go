package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/questio/questio-backend/internal/response"
	"github.com/questio/questio-backend/internal/service"
)

// MetricsHandler handles write-only usage instrumentation endpoints.
type MetricsHandler struct {
	counterService *service.CounterService
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(counterService *service.CounterService) *MetricsHandler {
	return &MetricsHandler{counterService: counterService}
}

// FeatureClick godoc
// POST /api/v1/metrics/clicks/:feature
// Counts one click on the named feature (e.g. the news banner). Always
// accepted: counter failures are logged server-side, never surfaced.
func (h *MetricsHandler) FeatureClick(c *gin.Context) {
	feature := c.Param("feature")
	if feature == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	h.counterService.NoteFeatureClick(c.Request.Context(), feature)
	response.Success(c, http.StatusAccepted, gin.H{})
}
