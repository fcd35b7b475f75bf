package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/monkeytypegame/monkeytype-redirects/config"
)

func TestTestRedirect_UnknownConfig(t *testing.T) {
	h, _ := setupHandler(t, config.ModeProduction)

	id := uuid.New().String()
	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/test-redirect/"+id, nil), map[string]string{"uuid": id})
	w := httptest.NewRecorder()
	h.TestRedirect(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestTestRedirect_MalformedUUID(t *testing.T) {
	h, _ := setupHandler(t, config.ModeProduction)

	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/test-redirect/oops", nil), map[string]string{"uuid": "oops"})
	w := httptest.NewRecorder()
	h.TestRedirect(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
