package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/logger"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON renders v with the given status. Encoding failures are logged
// and swallowed; headers are already out by then.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps a coded domain error to an HTTP status. Uncoded errors
// are treated as internal and their detail withheld from the client.
func writeError(w http.ResponseWriter, err error) {
	code := domain.CodeOf(err)
	status := statusFor(code)

	message := err.Error()
	var de *domain.Error
	if errors.As(err, &de) {
		message = de.Message
	}
	if status == http.StatusInternalServerError {
		logger.Error("internal error", "error", err)
		message = "internal server error"
	}

	writeJSON(w, status, errorBody{Error: errorDetail{Code: string(code), Message: message}})
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeValidation, domain.CodeConflict:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodePermission:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return domain.Wrap(domain.CodeValidation, "invalid request body", err)
	}
	return nil
}
