package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/cargram-leads/internal/entity"
	"github.com/xavierca1/cargram-leads/internal/usecase"
)

const (
	maxBodyBytes = 1 << 20

	MsgInvalidJSON = "Invalid JSON"
)

var errInvalidJSON = errors.New("invalid json")

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return errInvalidJSON
	}
	return nil
}

// writeError maps the usecase error taxonomy onto status codes. Storage
// failures are logged in full and reach the client as fallback only.
func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error, fallback string) {
	var (
		validationErr *usecase.ValidationError
		conflictErr   *usecase.ConflictError
	)

	switch {
	case errors.Is(err, errInvalidJSON):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: MsgInvalidJSON})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})
	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusConflict, ErrorResponse{
			Message: conflictErr.Message,
			Field:   conflictErr.Field,
		})
	case errors.Is(err, entity.ErrDealerSignupNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "Dealer signup not found"})
	default:
		log.WithError(err).Error(fallback)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: fallback})
	}
}

// resultLabel is the metrics label for an intake outcome.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, errInvalidJSON), usecase.IsValidationError(err):
		return "invalid"
	case usecase.IsConflictError(err):
		return "conflict"
	default:
		return "error"
	}
}
