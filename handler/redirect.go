package handler

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/monkeytypegame/monkeytype-redirects/model"
	"github.com/monkeytypegame/monkeytype-redirects/store"
	"github.com/monkeytypegame/monkeytype-redirects/tester"
	"github.com/monkeytypegame/monkeytype-redirects/utils"
)

// Redirect handles GET /redirect. It resolves the Host header to a config,
// records the event, and either issues the 302 or, outside production,
// answers with a JSON preview so development traffic never leaves the box.
// Requests carrying the probe marker header skip the stats write and always
// receive the real redirect.
// @Summary Resolve the Host header and redirect
// @Description Looks up the inbound hostname (one leading "www." stripped) and redirects to the configured target. Counts the event unless the request is a verification probe.
// @Tags Redirect
// @Produce json
// @Success 302 "Redirect to configured target"
// @Success 200 {object} map[string]string "Development-mode preview"
// @Failure 404 {object} map[string]string "No config for hostname"
// @Failure 500 {object} map[string]string "Stats write failed"
// @Router /redirect [get]
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	hostname := utils.NormalizeHostname(requestHostname(r))
	isProbe := r.Header.Get(tester.ProbeHeader) != ""

	cfg, err := h.resolve(r, hostname)
	if errors.Is(err, store.ErrConfigNotFound) {
		log.Warn().Str("hostname", hostname).Msg("No redirect found for hostname")
		SendJSONMessage(w, http.StatusNotFound, fmt.Sprintf("No redirect found for hostname: %s", hostname))
		return
	} else if err != nil {
		log.Error().Err(err).Str("hostname", hostname).Msg("Failed to resolve hostname")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to resolve hostname")
		return
	}

	if !isProbe {
		if err := h.stats.RecordRedirect(ctx, cfg.UUID); err != nil {
			log.Error().Err(err).Str("uuid", cfg.UUID).Msg("Failed to log redirect event")
			SendJSONMessage(w, http.StatusInternalServerError, fmt.Sprintf("Failed to log redirect event for %s", cfg.UUID))
			return
		}
		log.Debug().Str("uuid", cfg.UUID).Msg("Logged redirect event")
	}

	log.Info().
		Str("source", cfg.Source).
		Str("target", cfg.Target).
		Bool("probe", isProbe).
		Msg("Redirecting")

	if h.config.Production() || isProbe {
		http.Redirect(w, r, cfg.Target, http.StatusFound)
		return
	}

	SendJSONMessage(w, http.StatusOK, fmt.Sprintf("This will redirect to %s when NOT in DEV mode.", cfg.Target))
}

// resolve looks up a normalized hostname, consulting the cache first
func (h *Handler) resolve(r *http.Request, hostname string) (*model.RedirectConfig, error) {
	if cfg, found := h.cache.GetConfig(hostname); found {
		log.Debug().Str("hostname", hostname).Msg("Config cache hit")
		return cfg, nil
	}

	ctx, cancel := h.opContext(r)
	defer cancel()

	cfg, err := h.configs.GetBySource(ctx, hostname)
	if err != nil {
		return nil, err
	}

	h.cache.SetConfig(hostname, *cfg)
	return cfg, nil
}

// requestHostname extracts the bare hostname from the Host header
func requestHostname(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.Host)
	if err != nil {
		return r.Host
	}
	return host
}
