package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/monkeytypegame/monkeytype-redirects/middleware"
	"github.com/monkeytypegame/monkeytype-redirects/model"
	"github.com/monkeytypegame/monkeytype-redirects/store"
	"github.com/monkeytypegame/monkeytype-redirects/utils"
)

// uuidParam validates the {uuid} path parameter before any business logic
// runs. Malformed values never reach a store.
func uuidParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["uuid"]
	if _, err := uuid.Parse(id); err != nil {
		log.Warn().Str("uuid", id).Msg("Invalid uuid parameter")
		SendJSONMessage(w, http.StatusBadRequest, "Invalid URL parameters")
		return "", false
	}
	return id, true
}

// ListConfigs handles GET /api/configs
// @Summary List all redirect configs
// @Tags Configs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/configs [get]
func (h *Handler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	configs, err := h.configs.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list configs")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to retrieve configs")
		return
	}

	log.Info().Int("count", len(configs)).Msg("Retrieved configs")
	SendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Configs retrieved successfully",
		"configs": configs,
	})
}

// GetConfig handles GET /api/configs/{uuid}
// @Summary Fetch one redirect config
// @Tags Configs
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Config UUID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/configs/{uuid} [get]
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
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

	SendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Config retrieved successfully",
		"config":  cfg,
	})
}

// CreateConfig handles POST /api/configs
// @Summary Create a redirect config
// @Description Registers a source hostname and its redirect target. Configs are create-only.
// @Tags Configs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateConfigRequest true "Config to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Schema violation"
// @Failure 409 {object} map[string]string "Source already registered"
// @Router /api/configs [post]
func (h *Handler) CreateConfig(w http.ResponseWriter, r *http.Request) {
	var input model.CreateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Warn().Err(err).Msg("Failed to decode create config body")
		SendJSONMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateSource(input.Source); err != nil {
		log.Warn().Err(err).Str("source", input.Source).Msg("Invalid source")
		SendJSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateTarget(input.Target); err != nil {
		log.Warn().Err(err).Str("target", input.Target).Msg("Invalid target")
		SendJSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.opContext(r)
	defer cancel()

	cfg, err := h.configs.Create(ctx, input.Source, input.Target)
	var dup *store.DuplicateSourceError
	if errors.As(err, &dup) {
		log.Warn().Str("source", input.Source).Str("existing_uuid", dup.ExistingUUID).Msg("Config already exists")
		SendJSON(w, http.StatusConflict, map[string]string{
			"message": "Config already exists",
			"uuid":    dup.ExistingUUID,
		})
		return
	} else if err != nil {
		log.Error().Err(err).Str("source", input.Source).Msg("Failed to create config")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to create config")
		return
	}

	creator := "unknown"
	if identity, ok := middleware.IdentityFromContext(r.Context()); ok {
		creator = identity.Username
	}
	log.Info().
		Str("source", cfg.Source).
		Str("target", cfg.Target).
		Str("uuid", cfg.UUID).
		Str("created_by", creator).
		Msg("Config created")

	SendJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Config created successfully",
		"config":  cfg,
	})
}

// GetStats handles GET /api/stats/{uuid}
// @Summary Fetch the stats record for a config
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Config UUID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/stats/{uuid} [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.opContext(r)
	defer cancel()

	stats, err := h.stats.Get(ctx, id)
	if errors.Is(err, store.ErrStatsNotFound) {
		log.Warn().Str("uuid", id).Msg("Stats not found")
		SendJSONMessage(w, http.StatusNotFound, "Stats for "+id+" not found")
		return
	} else if err != nil {
		log.Error().Err(err).Str("uuid", id).Msg("Failed to fetch stats")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to retrieve stats")
		return
	}

	SendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Stats retrieved successfully",
		"stats":   stats,
	})
}

// UIData handles GET /api/ui-data
// @Summary Configs joined with their stats for the dashboard
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/ui-data [get]
func (h *Handler) UIData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	configs, err := h.configs.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list configs for ui-data")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to retrieve UI data")
		return
	}

	joined := make([]model.ConfigWithStats, 0, len(configs))
	for _, cfg := range configs {
		entry := model.ConfigWithStats{RedirectConfig: cfg}

		stats, err := h.stats.Get(ctx, cfg.UUID)
		if err == nil {
			entry.Stats = stats
		} else if !errors.Is(err, store.ErrStatsNotFound) {
			log.Error().Err(err).Str("uuid", cfg.UUID).Msg("Failed to fetch stats for ui-data")
			SendJSONMessage(w, http.StatusInternalServerError, "Failed to retrieve UI data")
			return
		}

		joined = append(joined, entry)
	}

	SendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "UI data retrieved successfully",
		"stats":   joined,
	})
}
