package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Root handles GET / with a liveness/identity message
// @Summary Service identity
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	SendJSONMessage(w, http.StatusOK, "monkeytype-redirects")
}

// HealthCheck handles GET /health
// @Summary Health check
// @Description Returns service health status and Redis connectivity
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Service is healthy"
// @Failure 503 {object} map[string]string "Service is unhealthy"
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Redis health check failed")
		SendJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"redis":  "unavailable",
		})
		return
	}

	SendJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"redis":  "connected",
	})
}

// CacheMetrics handles GET /cache/metrics
// @Summary Config cache performance metrics
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]string "Cache is disabled"
// @Router /cache/metrics [get]
func (h *Handler) CacheMetrics(w http.ResponseWriter, r *http.Request) {
	metrics := h.cache.Metrics()
	if !h.config.Cache.Enabled || metrics == nil {
		SendJSONMessage(w, http.StatusServiceUnavailable, "Cache is disabled")
		return
	}

	SendJSON(w, http.StatusOK, map[string]interface{}{
		"hits":      metrics.Hits(),
		"misses":    metrics.Misses(),
		"ratio":     metrics.Ratio(),
		"keysAdded": metrics.KeysAdded(),
	})
}
