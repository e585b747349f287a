package main

import (
	"encoding/gob"
	"net/http"
	"os"
	"time"

	"myticket-storefront/internal/config"
	"myticket-storefront/internal/handlers"
	"myticket-storefront/internal/middleware"
	"myticket-storefront/internal/models"
	"myticket-storefront/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"
)

func main() {
	// Register types for session serialization
	gob.Register(&models.Selection{})
	gob.Register([]string{})

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Server.Env == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env != "development",
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize services
	catalogService := services.NewCatalogService(cfg.Catalog, logger)
	chapaService := services.NewChapaService(cfg.Chapa, logger)
	checkoutService := services.NewCheckoutService(chapaService, cfg.Chapa, logger)
	identityProvider := services.NewHTTPIdentityProvider(cfg.Identity, logger)
	authService := services.NewAuthService(identityProvider, logger)

	selectionPolicy := models.SelectionPolicy{
		DefaultTier:     cfg.Selection.DefaultTier,
		DefaultQuantity: cfg.Selection.DefaultQuantity,
	}

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	selectionHandler := handlers.NewSelectionHandler(catalogService, sessionStore, selectionPolicy)
	checkoutHandler := handlers.NewCheckoutHandler(catalogService, checkoutService, sessionStore)
	authHandler := handlers.NewAuthHandler(authService, sessionStore)
	preferencesHandler := handlers.NewPreferencesHandler(sessionStore)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(authMiddleware.LoadUser)

	// Public browsing surface
	r.Get("/events", catalogHandler.ListEvents)
	r.Get("/events/{eventID}", catalogHandler.GetEvent)
	r.Get("/places", catalogHandler.ListPlaces)
	r.Get("/places/{placeID}", catalogHandler.GetPlace)

	// Authentication
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/register", authHandler.Register)
		r.Post("/logout", authHandler.Logout)
		r.Post("/password-reset", authHandler.RequestPasswordReset)
		r.Get("/me", authHandler.Me)
	})

	// Selection and checkout require an authenticated session
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Post("/events/{eventID}/selection", selectionHandler.Start)
		r.Post("/selection/tiers/{tier}/increment", selectionHandler.Increment)
		r.Post("/selection/tiers/{tier}/decrement", selectionHandler.Decrement)
		r.Get("/selection/summary", selectionHandler.Summary)
		r.Delete("/selection", selectionHandler.Clear)

		r.Post("/checkout", checkoutHandler.Initiate)

		r.Get("/preferences/categories", preferencesHandler.GetCategories)
		r.Put("/preferences/categories", preferencesHandler.SaveCategories)
	})

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info().Str("addr", addr).Msg("storefront listening")

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
