package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/campuskit/campuskit/pkg/serrors"
)

// ErrorEnvelope standardizes JSON error responses for API namespaces.
type ErrorEnvelope struct {
	Message string         `json:"message"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, details map[string]any) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// WriteServiceError maps a service error onto the JSON error envelope.
// Errors outside the service taxonomy become an opaque 500.
func WriteServiceError(w http.ResponseWriter, err error) error {
	if serr, ok := serrors.As(err); ok {
		return WriteError(w, serr.Status(), serr.Code, serr.Message, serr.Details)
	}
	return WriteError(w, http.StatusInternalServerError, "internal", "internal server error", nil)
}
