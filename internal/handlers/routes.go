package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cupcade/vendpay/internal/api"
	"github.com/cupcade/vendpay/internal/config"
	"github.com/cupcade/vendpay/internal/db"
	"github.com/cupcade/vendpay/internal/middleware"
	"github.com/cupcade/vendpay/internal/repository"
	"github.com/cupcade/vendpay/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	accountRepo := repository.NewAccountRepository(database)
	tagRepo := repository.NewTagRepository(database)
	productRepo := repository.NewProductRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	idempotencyRepo := repository.NewIdempotencyRepository(database)

	accountService := service.NewAccountService(
		accountRepo,
		cfg.App.DefaultCustomerID,
		cfg.App.InitialBalanceCents,
		cfg.App.BcryptCost,
	)
	tagService := service.NewTagService(tagRepo)
	selectorService := service.NewSelectorService(productRepo)
	purchaseService := service.NewPurchaseService(database)
	paymentService := service.NewPaymentService(paymentRepo, cfg.App.PaymentHistoryLimit)
	deviceService := service.NewDeviceService(
		tagService,
		selectorService,
		purchaseService,
		cfg.App.DefaultServoID,
	)

	h := NewHandler(accountService, tagService, paymentService, deviceService, database, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Idempotency-Key"},
	}))

	api.RegisterDocsRoutes(r, logger)

	r.Get("/health", h.GetHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})

	r.Route("/account/{accountID}", func(r chi.Router) {
		r.Use(h.AccountCtx)
		r.Post("/tag", h.CreateTag)
		r.Get("/tag", h.ListTags)
		r.Delete("/tag/{tagNumber}", h.DeleteTag)
		r.Get("/payments", h.ListPayments)
	})

	r.Route("/device", func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotencyRepo, logger))
		r.Post("/pay", h.DevicePay)
	})

	return r
}
