package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
)

const maxRequestBodyBytes = 1 << 20

// WriteJSONError writes a JSON error response with the given message and status code.
// It sets the Content-Type header to application/json and automatically formats
// the response as {"error": "message"}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a JSON request body of at most 1MB into v
func decodeJSON(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}
	if len(body) > maxRequestBodyBytes {
		return errors.New("request body too large")
	}
	if len(body) == 0 {
		return errors.New("empty request body")
	}
	return json.Unmarshal(body, v)
}

// allowMethod answers 405 when r does not use method
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// currentUser returns the caller stored by the auth middleware, answering 401
// when the request is anonymous.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.AuthenticatedUser, bool) {
	user, ok := domain.UserFromContext(r.Context())
	if !ok || user.ID == "" {
		WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
		return nil, false
	}
	return user, true
}

// requireParam reads a mandatory query parameter, answering 400 when missing
func requireParam(w http.ResponseWriter, values url.Values, name string) (string, bool) {
	value := strings.TrimSpace(values.Get(name))
	if value == "" {
		WriteJSONError(w, fmt.Sprintf("Missing %s", name), http.StatusBadRequest)
		return "", false
	}
	return value, true
}

func queryInt(values url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(fmt.Sprintf("%s must be an integer", name))
	}
	return n, nil
}

func queryFloat(values url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("%s must be a number", name))
	}
	return &f, nil
}

func queryBool(values url.Values, name string) bool {
	b, _ := strconv.ParseBool(values.Get(name))
	return b
}

// statusForError maps domain errors onto HTTP status codes
func statusForError(err error) int {
	var validationErr domain.ValidationError
	var notFound *domain.ErrNotFound
	var conflict *domain.ErrConflict
	var unavailable *domain.ErrProviderUnavailable

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError answers with the status matching err. Unexpected errors
// are logged and hidden behind message.
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error, message string) {
	status := statusForError(err)
	switch status {
	case http.StatusInternalServerError:
		log.WithField("error", err.Error()).Error(message)
		WriteJSONError(w, message, status)
	case http.StatusServiceUnavailable:
		var unavailable *domain.ErrProviderUnavailable
		errors.As(err, &unavailable)
		log.WithField("provider", unavailable.Provider).Warn(fmt.Sprintf("%s: %v", message, err))
		WriteJSONError(w, fmt.Sprintf("%s is temporarily unavailable", unavailable.Provider), status)
	case http.StatusBadRequest:
		var validationErr domain.ValidationError
		errors.As(err, &validationErr)
		WriteJSONError(w, validationErr.Message, status)
	default:
		WriteJSONError(w, err.Error(), status)
	}
}
