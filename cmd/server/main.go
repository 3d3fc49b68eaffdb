package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/invoicepay/backend/docs"
	"github.com/invoicepay/backend/internal/config"
	"github.com/invoicepay/backend/internal/handlers"
	mW "github.com/invoicepay/backend/internal/middleware"
	"github.com/invoicepay/backend/internal/models"
	"github.com/invoicepay/backend/internal/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"
)

const version = "1.0.0"

// @title InvoicePay X402 API
// @version 1.0
// @description Pay-per-request API gated by a per-client credit ledger
// @host localhost:3000
// @BasePath /
// @schemes http https

func main() {
	// Initialize config
	viper.SetConfigFile(".env") // explicitly point to .env file
	viper.AutomaticEnv()        // allow environment variables to override .env

	viper.BindEnv("server.host", "HOST")
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("app.env", "NODE_ENV")
	viper.BindEnv("x402.default_unit_cost", "DEFAULT_UNIT_COST")
	viper.BindEnv("log.level", "LOG_LEVEL")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("config file not found, using defaults")
	}

	cfg := config.Load()

	// Initialize logging
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Initialize Swagger docs
	docs.SwaggerInfo.Host = cfg.Host + ":" + cfg.Port

	// Initialize services. The ledger is the single authority for all
	// balances and invoices; everything else holds a reference to it.
	ledger := services.NewLedgerService()
	paymentService := services.NewPaymentService(ledger)
	catalogService := services.NewCatalogService()
	userService := services.NewUserService()
	qrService := services.NewQRService(ledger)
	qrHandler := handlers.NewQRHandler(qrService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(mW.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Client-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Data: map[string]any{
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"version":   version,
			},
			Message: "InvoicePay X402 Server is running",
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://"+cfg.Host+":"+cfg.Port+"/swagger/doc.json"),
	))

	// Payment management routes
	r.Route("/x402", func(r chi.Router) {
		r.Post("/create-invoice", paymentService.CreateInvoice)
		r.Post("/pay-invoice", paymentService.PayInvoice)
		r.Post("/topup", paymentService.TopUp)
		r.Get("/invoice/{id}", paymentService.GetInvoice)
		r.Get("/invoice/{id}/qr", qrHandler.InvoiceQR)

		// Client balance (requires client ID header)
		r.Group(func(r chi.Router) {
			r.Use(mW.RequireClientID(ledger))
			r.Get("/balance", paymentService.GetBalance)
		})

		// Admin/debug routes
		r.Get("/admin/clients", paymentService.GetAllClients)
		r.Get("/admin/invoices", paymentService.GetAllInvoices)
	})

	// Protected business routes, each with a fixed per-request cost
	r.Route("/api", func(r chi.Router) {
		r.With(mW.PaymentRequired(ledger, cfg.DefaultUnitCost)).Get("/getUserData", catalogService.GetUserData)
		r.With(mW.PaymentRequired(ledger, cfg.DefaultUnitCost)).Get("/products", catalogService.GetProducts)
		r.With(mW.PaymentRequired(ledger, 2)).Get("/orders", catalogService.GetOrders) // higher cost for order history
	})

	// Paywalled user management routes
	r.Route("/users", func(r chi.Router) {
		r.Use(mW.PaymentRequired(ledger, cfg.DefaultUnitCost))
		r.Get("/allUsers", userService.ListUsers)
		r.Post("/create", userService.CreateUser)
		r.Get("/{id}", userService.GetUser)
		r.Put("/update/{id}", userService.UpdateUser)
		r.Delete("/delete/{id}", userService.DeleteUser)
	})

	// Start server
	server := &http.Server{
		Addr:         cfg.Host + ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("env", cfg.Env).
			Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
