package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it as the HTTP response body,
// setting the "Content-Type" header to "application/json" and the given
// status code first.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error; nothing of the original payload is written.
//
// Returns the number of body bytes written.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Status: http.StatusOK, Message: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
