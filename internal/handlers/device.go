package handlers

import (
	"net/http"

	"github.com/cupcade/vendpay/internal/models"
	"github.com/cupcade/vendpay/internal/service"
	"github.com/go-chi/chi/v5/middleware"
)

type devicePayRequest struct {
	TagNumber string `json:"tag_number"`
	// ProductID is set when the device pre-selected a product.
	ProductID string `json:"product_id,omitempty"`
	// Products carries the candidate set in the device's dispensing
	// order when no product was pre-selected.
	Products []models.ProductCandidate `json:"products,omitempty"`
}

type devicePayResponse struct {
	ServoID string `json:"servo_id"`
	Balance int64  `json:"balance"`
}

type deviceErrorResponse struct {
	Error   string `json:"error"`
	CupCode int    `json:"cup_code"`
}

// DevicePay handles POST /device/pay
func (h *Handler) DevicePay(w http.ResponseWriter, r *http.Request) {
	var req devicePayRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.TagNumber == "" {
		respondBadRequest(w, "tag_number is required")
		return
	}
	if req.ProductID == "" && len(req.Products) == 0 {
		respondBadRequest(w, "either product_id or products must be supplied")
		return
	}

	result, err := h.device.Pay(r.Context(), service.DevicePayRequest{
		TagNumber:  req.TagNumber,
		ProductID:  req.ProductID,
		Candidates: req.Products,
	})
	if err != nil {
		h.respondDeviceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, devicePayResponse{
		ServoID: result.ServoID,
		Balance: result.BalanceCents,
	})
}

// respondDeviceError maps failures onto the numeric cup codes the
// firmware understands. Anything outside the expected outcomes is a 999
// with no internal detail attached.
func (h *Handler) respondDeviceError(w http.ResponseWriter, r *http.Request, err error) {
	svcErr := extractServiceError(err)
	if svcErr != nil {
		switch svcErr.Code {
		case service.ErrCodeTagNotFound:
			respondJSON(w, http.StatusNotFound, deviceErrorResponse{
				CupCode: CupCodeTagDoesNotExist,
				Error:   "Tag does not exist",
			})
			return
		case service.ErrCodeInsufficientFunds:
			respondJSON(w, http.StatusNotFound, deviceErrorResponse{
				CupCode: CupCodeMoneyNotEnough,
				Error:   "Not enough money",
			})
			return
		case service.ErrCodeNoCandidates:
			respondBadRequest(w, svcErr.Message)
			return
		}
	}

	h.logger.Error("device pay failed",
		"error", err,
		"request_id", middleware.GetReqID(r.Context()),
	)
	respondJSON(w, http.StatusInternalServerError, deviceErrorResponse{
		CupCode: CupCodeInternalError,
		Error:   "Something bad happened",
	})
}
