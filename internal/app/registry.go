package app

import (
	"go-garment-store/internal/backend"
	"go-garment-store/internal/cart"
	"go-garment-store/internal/catalog"
	"go-garment-store/internal/checkout"
	"go-garment-store/internal/finance"
	"go-garment-store/internal/middleware"
	"go-garment-store/internal/proof"
	"go-garment-store/internal/storage"
	"go-garment-store/internal/transaction"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type deps struct {
	backend   *backend.Client
	store     storage.Store
	counter   cart.Counter
	publisher checkout.EventPublisher
	logger    *zap.Logger
}

func registerModules(router *gin.Engine, d deps) {
	// --- Services ---
	cartService := cart.NewService(d.backend, d.store, d.counter, d.logger)
	checkoutService := checkout.NewService(checkout.Deps{
		Backend:   d.backend,
		CartSvc:   cartService,
		Store:     d.store,
		Publisher: d.publisher,
		Logger:    d.logger,
	})
	proofService := proof.NewService(d.backend, d.logger)
	transactionService := transaction.NewService(d.backend, d.logger)
	catalogService := catalog.NewService(d.backend, d.logger)
	financeService := finance.NewService(d.backend, d.logger)

	// --- Handlers ---
	cartHandler := cart.NewHandler(cartService)
	checkoutHandler := checkout.NewHandler(checkoutService, d.logger)
	proofHandler := proof.NewHandler(proofService, d.logger)
	transactionHandler := transaction.NewHandler(transactionService)
	catalogHandler := catalog.NewHandler(catalogService)
	financeHandler := finance.NewHandler(financeService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
		proof.RegisterRoutes(api, proofHandler)
		transaction.RegisterRoutes(api, transactionHandler)
		finance.RegisterRoutes(api, financeHandler)
	}
}
