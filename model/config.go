package model

import "time"

// RedirectConfig maps an inbound hostname to the URL it redirects to.
// Configs are create-only: once stored they are never updated or deleted.
type RedirectConfig struct {
	UUID      string    `json:"uuid"`
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateConfigRequest is the body of POST /api/configs
type CreateConfigRequest struct {
	Source string `json:"source" example:"monkeytype.co"`
	Target string `json:"target" example:"https://monkeytype.com"`
}

// ConfigWithStats joins a config with its stats record for the dashboard.
// Stats is nil for configs that have never been hit.
type ConfigWithStats struct {
	RedirectConfig
	Stats *RedirectStats `json:"stats"`
}
