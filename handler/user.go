package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/monkeytypegame/monkeytype-redirects/auth"
	"github.com/monkeytypegame/monkeytype-redirects/model"
	"github.com/monkeytypegame/monkeytype-redirects/store"
	"github.com/monkeytypegame/monkeytype-redirects/utils"
)

// Register handles POST /api/register. Registration is a development
// convenience only; production deployments refuse it outright.
// @Summary Register a dashboard user (non-production only)
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.AuthRequest true "Credentials"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid body or credentials"
// @Failure 403 {object} map[string]string "Disabled in production"
// @Failure 409 {object} map[string]string "Username taken"
// @Router /api/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input model.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		SendJSONMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateCredentials(input.Username, input.Password); err != nil {
		SendJSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.config.Production() {
		log.Warn().Msg("Register endpoint is disabled in production")
		SendJSONMessage(w, http.StatusForbidden, "Register endpoint is disabled in production")
		return
	}

	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	ctx, cancel := h.opContext(r)
	defer cancel()

	if _, err := h.users.Create(ctx, input.Username, passwordHash); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			log.Warn().Str("username", input.Username).Msg("Register failed: user already exists")
			SendJSONMessage(w, http.StatusConflict, "User already exists")
			return
		}
		log.Error().Err(err).Str("username", input.Username).Msg("Failed to create user")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	log.Info().Str("username", input.Username).Msg("User registered")
	SendJSONMessage(w, http.StatusCreated, "User registered")
}

// Login handles POST /api/login. Unknown users and wrong passwords produce
// the same response so the endpoint leaks nothing about which usernames
// exist.
// @Summary Log in and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.AuthRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /api/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input model.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		SendJSONMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateCredentials(input.Username, input.Password); err != nil {
		SendJSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.opContext(r)
	defer cancel()

	user, err := h.users.GetByUsername(ctx, input.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("username", input.Username).Msg("Login failed: user not found")
		SendJSONMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	} else if err != nil {
		log.Error().Err(err).Str("username", input.Username).Msg("Failed to look up user")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	valid, err := auth.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		log.Error().Err(err).Str("username", input.Username).Msg("Failed to verify password")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if !valid {
		log.Warn().Str("username", input.Username).Msg("Invalid password for user")
		SendJSONMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwt.Generate(user.Username, user.ID)
	if err != nil {
		log.Error().Err(err).Str("username", input.Username).Msg("Failed to sign token")
		SendJSONMessage(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	log.Info().Str("username", user.Username).Msg("User logged in")
	SendJSON(w, http.StatusOK, model.LoginResponse{Token: token})
}
