package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/monkeytypegame/monkeytype-redirects/config"
)

func TestRegister_DevMode(t *testing.T) {
	h, _ := setupHandler(t, "development")

	w := httptest.NewRecorder()
	h.Register(w, jsonRequest("POST", "/api/register", map[string]string{
		"username": "alice",
		"password": "secret1",
	}))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	// Same username again conflicts
	w = httptest.NewRecorder()
	h.Register(w, jsonRequest("POST", "/api/register", map[string]string{
		"username": "alice",
		"password": "another1",
	}))
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", w.Code)
	}
}

func TestRegister_DisabledInProduction(t *testing.T) {
	h, _ := setupHandler(t, config.ModeProduction)

	w := httptest.NewRecorder()
	h.Register(w, jsonRequest("POST", "/api/register", map[string]string{
		"username": "alice",
		"password": "secret1",
	}))
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 in production", w.Code)
	}
}

func TestRegister_Validation(t *testing.T) {
	h, _ := setupHandler(t, "development")

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"Short username", "al", "secret1"},
		{"Short password", "alice", "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Register(w, jsonRequest("POST", "/api/register", map[string]string{
				"username": tt.username,
				"password": tt.password,
			}))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestRegister_ProductionValidatesBodyFirst(t *testing.T) {
	h, _ := setupHandler(t, config.ModeProduction)

	// A malformed or invalid registration is a client error even where
	// registration itself is disabled
	w := httptest.NewRecorder()
	h.Register(w, httptest.NewRequest("POST", "/api/register", strings.NewReader("{not json")))
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	h.Register(w, jsonRequest("POST", "/api/register", map[string]string{
		"username": "al",
		"password": "secret1",
	}))
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid credentials status = %d, want 400", w.Code)
	}
}

func TestLogin(t *testing.T) {
	h, _ := setupHandler(t, "development")

	w := httptest.NewRecorder()
	h.Register(w, jsonRequest("POST", "/api/register", map[string]string{
		"username": "alice",
		"password": "secret1",
	}))
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", w.Code)
	}

	// Correct password yields a verifiable token
	w = httptest.NewRecorder()
	h.Login(w, jsonRequest("POST", "/api/login", map[string]string{
		"username": "alice",
		"password": "secret1",
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	claims, err := h.jwt.Validate(body.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("token username = %q, want alice", claims.Username)
	}

	// Wrong password and unknown user answer identically
	for _, creds := range []map[string]string{
		{"username": "alice", "password": "wrongpass"},
		{"username": "nobody", "password": "secret1"},
	} {
		w = httptest.NewRecorder()
		h.Login(w, jsonRequest("POST", "/api/login", creds))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("login %v status = %d, want 401", creds, w.Code)
		}
		var resp map[string]string
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp["message"] != "Invalid credentials" {
			t.Errorf("message = %q, want uniform \"Invalid credentials\"", resp["message"])
		}
	}
}
