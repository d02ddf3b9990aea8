package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

// ReadJSON reads a single JSON value from the request body into data.
// Bodies larger than 1MB or containing more than one value are rejected.
func ReadJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1024 * 1024 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("error decoding json: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must contain only one JSON value")
	}

	return nil
}

// WriteJSON writes data as a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	return err
}

// errorJSON writes the standard error envelope
func errorJSON(w http.ResponseWriter, status string, statusCode int, err error) error {
	payload := models.Response{
		Error:   true,
		Status:  status,
		Message: err.Error(),
	}
	return WriteJSON(w, statusCode, payload)
}

// BadRequest responds with 400 and the error message
func BadRequest(w http.ResponseWriter, err error) error {
	return errorJSON(w, "failed", http.StatusBadRequest, err)
}

// NotFound responds with 404 and the given message
func NotFound(w http.ResponseWriter, message string) error {
	return errorJSON(w, "failed", http.StatusNotFound, errors.New(message))
}

// Conflict responds with 409 and the error message
func Conflict(w http.ResponseWriter, err error) error {
	return errorJSON(w, "failed", http.StatusConflict, err)
}

// Unauthorized responds with 401 and the error message
func Unauthorized(w http.ResponseWriter, err error) error {
	return errorJSON(w, "failed", http.StatusUnauthorized, err)
}

// ServerError responds with 500 and the error message
func ServerError(w http.ResponseWriter, err error) error {
	return errorJSON(w, "failed", http.StatusInternalServerError, err)
}

// NormalizePhone strips everything but digits so lookups are stable
// regardless of how the operator typed the number
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
