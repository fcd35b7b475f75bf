package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/monkeytypegame/monkeytype-redirects/store"
)

// TestRedirect handles GET /api/test-redirect/{uuid}. Both protocol probes
// run concurrently; their outcomes are always 200-with-data, even when a
// live redirect is broken.
// @Summary Verify a live redirect over HTTP and HTTPS
// @Tags Tester
// @Produce json
// @Param uuid path string true "Config UUID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/test-redirect/{uuid} [get]
func (h *Handler) TestRedirect(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.opContext(r)
	defer cancel()

	cfg, err := h.configs.GetByUUID(ctx, id)
	if errors.Is(err, store.ErrConfigNotFound) {
		log.Warn().Str("uuid", id).Msg("Config not found")
		SendJSONMessage(w, http.StatusNotFound, "Config "+id+" not found")
		return
	} else if err != nil {
		log.Error().Err(err).Str("uuid", id).Msg("Failed to fetch config")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to retrieve config")
		return
	}

	log.Info().
		Str("uuid", id).
		Str("source", cfg.Source).
		Str("target", cfg.Target).
		Msg("Testing redirect")

	result := h.tester.Test(r.Context(), cfg)

	SendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Redirect test complete",
		"data":    result,
	})
}
