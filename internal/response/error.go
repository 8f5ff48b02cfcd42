package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/salesboard/salesboard/internal/errs"
	"github.com/salesboard/salesboard/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		// Use context logger if encoding fails
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", e.Message)

	case *errs.UnavailableError:
		log.Warn("dataset unavailable", "error", e.Message)
		h.WriteError(w, r, http.StatusServiceUnavailable, "service_unavailable", e.Message)

	case *errs.UpstreamError:
		log.Error("upstream error", "error", e.Message, "cause", e.Err)
		h.WriteError(w, r, http.StatusBadGateway, "upstream_error",
			"Upstream data source failed")

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
