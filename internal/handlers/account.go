package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/cupcade/vendpay/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type contextKey string

const accountContextKey contextKey = "account"

// AccountCtx loads the account named in the URL and stores it on the
// request context. Unknown or malformed ids short-circuit with 404
// before any nested handler runs.
func (h *Handler) AccountCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			respondJSON(w, http.StatusNotFound, errorResponse{
				Error:   "account_not_found",
				Message: "invalid account",
			})
			return
		}

		account, err := h.accounts.Get(r.Context(), accountID)
		if err != nil {
			h.respondServiceError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), accountContextKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accountFromContext(ctx context.Context) *models.Account {
	account, _ := ctx.Value(accountContextKey).(*models.Account)
	return account
}

type createTagRequest struct {
	TagNumber  string  `json:"tag_number"`
	Name       string  `json:"name"`
	Preference *string `json:"preference,omitempty"`
}

type tagResponse struct {
	TagNumber  string    `json:"tag_number"`
	Name       string    `json:"name"`
	Preference *string   `json:"preference,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type tagListResponse struct {
	Tags []tagResponse `json:"tags"`
}

// CreateTag handles POST /account/{accountID}/tag
func (h *Handler) CreateTag(w http.ResponseWriter, r *http.Request) {
	account := accountFromContext(r.Context())

	var req createTagRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.TagNumber == "" {
		respondBadRequest(w, "tag_number is required")
		return
	}

	tag, err := h.tags.Create(r.Context(), account.ID, req.TagNumber, req.Name, req.Preference)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toTagResponse(tag))
}

// ListTags handles GET /account/{accountID}/tag
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	account := accountFromContext(r.Context())

	tags, err := h.tags.List(r.Context(), account.ID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	resp := tagListResponse{Tags: make([]tagResponse, 0, len(tags))}
	for i := range tags {
		resp.Tags = append(resp.Tags, toTagResponse(&tags[i]))
	}

	respondJSON(w, http.StatusOK, resp)
}

// DeleteTag handles DELETE /account/{accountID}/tag/{tagNumber}
func (h *Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	account := accountFromContext(r.Context())
	tagNumber := chi.URLParam(r, "tagNumber")

	if err := h.tags.Delete(r.Context(), account.ID, tagNumber); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, struct{}{})
}

type paymentResponse struct {
	Date        time.Time `json:"date"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Price       int64     `json:"price"`
}

type paymentListResponse struct {
	Payments []paymentResponse `json:"payments"`
}

// ListPayments handles GET /account/{accountID}/payments
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	account := accountFromContext(r.Context())

	payments, err := h.payments.List(r.Context(), account.ID, 0)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	resp := paymentListResponse{Payments: make([]paymentResponse, 0, len(payments))}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, paymentResponse{
			Date:        p.Date,
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Type:        p.Type,
			Price:       p.PriceCents,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

func toTagResponse(tag *models.Tag) tagResponse {
	return tagResponse{
		TagNumber:  tag.TagNumber,
		Name:       tag.Name,
		Preference: tag.Preference,
		CreatedAt:  tag.CreatedAt,
	}
}
