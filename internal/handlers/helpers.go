package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cupcade/vendpay/internal/service"
	"github.com/go-chi/chi/v5/middleware"
)

// Numeric device codes. The vending firmware switches on these, so they
// are part of the wire contract and must not change.
const (
	CupCodeMoneyNotEnough  = 911
	CupCodeTagDoesNotExist = 922
	CupCodeInternalError   = 999
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best effort response writing
		json.NewEncoder(w).Encode(v)
	}
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{
		Error:   "invalid_request",
		Message: message,
	})
}

// respondServiceError translates a service error into an HTTP response.
// Internal errors are logged with the request id and surfaced without
// their diagnostic detail.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	svcErr := extractServiceError(err)
	if svcErr == nil || svcErr.Code == service.ErrCodeInternalError {
		h.logger.Error("request failed",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
			"path", r.URL.Path,
		)
		respondJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   service.ErrCodeInternalError,
			Message: "internal error",
		})
		return
	}

	respondJSON(w, statusForCode(svcErr.Code), errorResponse{
		Error:   svcErr.Code,
		Message: svcErr.Message,
	})
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeTagNotFound,
		service.ErrCodeAccountNotFound,
		service.ErrCodeInvalidCredentials:
		return http.StatusNotFound
	case service.ErrCodeTagExists, service.ErrCodeEmailTaken:
		return http.StatusConflict
	case service.ErrCodeNoCandidates:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
