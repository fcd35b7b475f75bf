package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"

	"github.com/monkeytypegame/monkeytype-redirects/store"
)

// GenerateQR handles GET /api/qr/{uuid}. The code encodes the config's
// public entry URL (https://{source}) for use on printed material; scans
// land on the redirect like any other visitor and are counted normally.
// @Summary QR code for a config's public entry URL
// @Tags Configs
// @Produce png
// @Security BearerAuth
// @Param uuid path string true "Config UUID"
// @Param size query int false "Image size in pixels (128-1024)" default(256)
// @Success 200 {file} png
// @Failure 404 {object} map[string]string
// @Router /api/qr/{uuid} [get]
func (h *Handler) GenerateQR(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r)
	if !ok {
		return
	}

	size := 256
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		parsedSize, err := strconv.Atoi(sizeStr)
		if err != nil || parsedSize < 128 || parsedSize > 1024 {
			SendJSONMessage(w, http.StatusBadRequest, "Size must be a number between 128 and 1024")
			return
		}
		size = parsedSize
	}

	ctx, cancel := h.opContext(r)
	defer cancel()

	cfg, err := h.configs.GetByUUID(ctx, id)
	if errors.Is(err, store.ErrConfigNotFound) {
		log.Warn().Str("uuid", id).Msg("Config not found for QR generation")
		SendJSONMessage(w, http.StatusNotFound, "Config "+id+" not found")
		return
	} else if err != nil {
		log.Error().Err(err).Str("uuid", id).Msg("Failed to fetch config for QR")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to retrieve config")
		return
	}

	entryURL := "https://" + cfg.Source
	qrCode, err := qrcode.Encode(entryURL, qrcode.Medium, size)
	if err != nil {
		log.Error().Err(err).Str("url", entryURL).Msg("Failed to generate QR code")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Content-Length", strconv.Itoa(len(qrCode)))

	if _, err := w.Write(qrCode); err != nil {
		log.Error().Err(err).Msg("Failed to write QR code response")
		return
	}

	log.Info().Str("uuid", id).Str("url", entryURL).Int("size", size).Msg("QR code generated")
}
