package model

import "time"

// DateFormat is the calendar-day bucket key layout.
const DateFormat = "2006-01-02"

// RedirectStats aggregates redirect events for a single config. The record is
// created lazily by the first redirect and only ever grows:
// TotalRedirects always equals the sum of RedirectCounts, FirstRedirected is
// written exactly once and LastRedirected tracks the most recent event.
type RedirectStats struct {
	UUID            string         `json:"uuid"`
	RedirectCounts  map[string]int `json:"redirectCounts"`
	TotalRedirects  int            `json:"totalRedirects"`
	FirstRedirected time.Time      `json:"firstRedirected"`
	LastRedirected  time.Time      `json:"lastRedirected"`
}
