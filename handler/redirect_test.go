package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"

	"github.com/monkeytypegame/monkeytype-redirects/config"
	"github.com/monkeytypegame/monkeytype-redirects/store"
	"github.com/monkeytypegame/monkeytype-redirects/tester"
)

func redirectRequest(host string) *http.Request {
	req := httptest.NewRequest("GET", "http://"+host+"/redirect", nil)
	req.Host = host
	return req
}

func TestRedirect_UnknownHostname(t *testing.T) {
	h, s := setupHandler(t, config.ModeProduction)

	w := httptest.NewRecorder()
	h.Redirect(w, redirectRequest("unknown.com"))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !strings.Contains(body["message"], "unknown.com") {
		t.Errorf("message = %q, want it to name the hostname", body["message"])
	}

	// No stats record may appear for a miss
	if n := statsKeys(s); n != 0 {
		t.Errorf("stats records after miss = %d, want 0", n)
	}
}

func TestRedirect_ProductionIssues302AndCounts(t *testing.T) {
	h, _ := setupHandler(t, config.ModeProduction)

	cfg, err := h.configs.Create(context.Background(), "typo.com", "https://good.example/")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	w := httptest.NewRecorder()
	h.Redirect(w, redirectRequest("typo.com"))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "https://good.example/" {
		t.Errorf("Location = %q, want https://good.example/", loc)
	}

	stats, err := h.stats.Get(context.Background(), cfg.UUID)
	if err != nil {
		t.Fatalf("stats Get() error = %v", err)
	}
	if stats.TotalRedirects != 1 {
		t.Errorf("TotalRedirects = %d, want 1", stats.TotalRedirects)
	}
}

func TestRedirect_DevModePreviews(t *testing.T) {
	h, _ := setupHandler(t, "development")

	cfg, err := h.configs.Create(context.Background(), "typo.com", "https://good.example/")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	w := httptest.NewRecorder()
	h.Redirect(w, redirectRequest("typo.com"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 preview", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !strings.Contains(body["message"], "https://good.example/") {
		t.Errorf("preview message = %q, want it to name the target", body["message"])
	}

	// Preview still counts as a redirect event
	stats, err := h.stats.Get(context.Background(), cfg.UUID)
	if err != nil {
		t.Fatalf("stats Get() error = %v", err)
	}
	if stats.TotalRedirects != 1 {
		t.Errorf("TotalRedirects = %d, want 1", stats.TotalRedirects)
	}
}

func TestRedirect_ProbeSkipsStatsAndForcesRedirect(t *testing.T) {
	h, s := setupHandler(t, "development")

	if _, err := h.configs.Create(context.Background(), "typo.com", "https://good.example/"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := redirectRequest("typo.com")
	req.Header.Set(tester.ProbeHeader, "true")
	w := httptest.NewRecorder()
	h.Redirect(w, req)

	// A probe gets the real 302 even in development mode
	if w.Code != http.StatusFound {
		t.Errorf("status = %d, want 302 for probe", w.Code)
	}

	// And never pollutes the stats
	if n := statsKeys(s); n != 0 {
		t.Errorf("stats records after probe = %d, want 0", n)
	}
}

func TestRedirect_StripsWWWOnce(t *testing.T) {
	h, _ := setupHandler(t, config.ModeProduction)

	if _, err := h.configs.Create(context.Background(), "typo.com", "https://good.example/"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	w := httptest.NewRecorder()
	h.Redirect(w, redirectRequest("www.typo.com"))
	if w.Code != http.StatusFound {
		t.Errorf("www.typo.com status = %d, want 302", w.Code)
	}

	// Only one www. is stripped, so this must miss
	w = httptest.NewRecorder()
	h.Redirect(w, redirectRequest("www.www.typo.com"))
	if w.Code != http.StatusNotFound {
		t.Errorf("www.www.typo.com status = %d, want 404", w.Code)
	}
}

func TestRedirect_HostWithPort(t *testing.T) {
	h, _ := setupHandler(t, config.ModeProduction)

	if _, err := h.configs.Create(context.Background(), "typo.com", "https://good.example/"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	w := httptest.NewRecorder()
	h.Redirect(w, redirectRequest("typo.com:3000"))
	if w.Code != http.StatusFound {
		t.Errorf("status = %d, want 302 with port in Host header", w.Code)
	}
}

func TestRedirect_StatsFailureBlocksRedirect(t *testing.T) {
	h, _ := setupHandler(t, config.ModeProduction)

	if _, err := h.configs.Create(context.Background(), "typo.com", "https://good.example/"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Point only the stats store at a dead Redis so resolution still works
	dead, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	deadClient := goredis.NewClient(&goredis.Options{Addr: dead.Addr()})
	dead.Close()
	h.stats = store.NewStatsStore(deadClient)

	w := httptest.NewRecorder()
	h.Redirect(w, redirectRequest("typo.com"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 when the stats write fails", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "" {
		t.Errorf("Location header set (%q) despite stats failure", loc)
	}
}
