package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// SendJSON writes a JSON response with the given status code
func SendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// SendJSONMessage writes the standard {"message": ...} envelope
func SendJSONMessage(w http.ResponseWriter, statusCode int, message string) {
	SendJSON(w, statusCode, map[string]string{"message": message})
}
