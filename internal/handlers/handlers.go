// Package handlers implements the HTTP layer of the vending payment
// backend.
package handlers

import (
	"log/slog"

	"github.com/cupcade/vendpay/internal/service"
)

// Handler bundles the service dependencies behind the HTTP endpoints
type Handler struct {
	accounts service.AccountDirectory
	tags     service.TagDirectory
	payments service.PaymentLister
	device   service.DevicePayer
	health   service.HealthChecker
	logger   *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	accounts service.AccountDirectory,
	tags service.TagDirectory,
	payments service.PaymentLister,
	device service.DevicePayer,
	health service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		accounts: accounts,
		tags:     tags,
		payments: payments,
		device:   device,
		health:   health,
		logger:   logger,
	}
}
