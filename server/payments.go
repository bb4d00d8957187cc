package server

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"wonderlens/models"
)

type paymentIntentReq struct {
	UserID      string `json:"user_id" validate:"required"`
	Provider    string `json:"provider" validate:"required,oneof=stripe mpesa paypal"`
	AmountCents int64  `json:"amount_cents" validate:"gt=0"`
	Currency    string `json:"currency" validate:"omitempty,len=3"`
}

type paymentIntentResp struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// handlePaymentIntent records a simulated pending intent; no provider is called.
func (s *Server) handlePaymentIntent(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var req paymentIntentReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}

	p := models.Payment{
		UserID:      req.UserID,
		Provider:    req.Provider,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Status:      "pending",
		Reference:   fmt.Sprintf("SIM-%d", s.now().Unix()),
	}
	id, err := s.store.Insert(r.Context(), models.CollectionPayment, p)
	if err != nil {
		s.logger.Error("Failed to record payment intent", zap.String("userID", req.UserID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to record payment intent")
		return
	}
	writeJSON(w, http.StatusOK, paymentIntentResp{ID: id, Reference: p.Reference, Status: p.Status})
}
