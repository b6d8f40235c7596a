package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"unalon_server/services"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

// JSONError writes an error body of the form {"error": kind, "message": ...}.
func JSONError(w http.ResponseWriter, status int, kind, message string) {
	JSON(w, status, map[string]string{"error": kind, "message": message})
}

// RespondError maps a service error kind to an HTTP status and writes it.
// Unkinded errors become opaque 500s; internals never leak to the client.
func RespondError(w http.ResponseWriter, err error) {
	kind := services.ErrKind(err)

	status := http.StatusInternalServerError
	switch kind {
	case services.KindValidation, services.KindConflict, services.KindCapacity:
		status = http.StatusBadRequest
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindInvalidState:
		status = http.StatusConflict
	case services.KindUnauthorized:
		status = http.StatusUnauthorized
	}

	message := "Internal server error"
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	} else {
		log.Printf("❌ Internal error: %v", err)
	}

	JSONError(w, status, kind, message)
}
