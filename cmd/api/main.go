package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/splus/splus-api/internal/config"
	"github.com/splus/splus-api/internal/domain/addon"
	"github.com/splus/splus-api/internal/domain/booking"
	"github.com/splus/splus-api/internal/domain/catalog"
	"github.com/splus/splus-api/internal/domain/comment"
	"github.com/splus/splus-api/internal/domain/customdesign"
	"github.com/splus/splus-api/internal/domain/customer"
	"github.com/splus/splus-api/internal/domain/draft"
	"github.com/splus/splus-api/internal/domain/equipment"
	"github.com/splus/splus-api/internal/domain/payment"
	"github.com/splus/splus-api/internal/domain/promotion"
	"github.com/splus/splus-api/internal/domain/report"
	"github.com/splus/splus-api/internal/domain/setdesign"
	"github.com/splus/splus-api/internal/domain/studio"
	"github.com/splus/splus-api/internal/domain/upload"
	"github.com/splus/splus-api/internal/middleware"
	"github.com/splus/splus-api/internal/pkg/database"
	"github.com/splus/splus-api/internal/pkg/imaging"
	"github.com/splus/splus-api/internal/pkg/jwt"
	"github.com/splus/splus-api/internal/pkg/logger"
	pkgresponse "github.com/splus/splus-api/internal/pkg/response"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env}); err != nil {
		log.Fatal().Err(err).Msg("Failed to init logger")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("backend", cfg.BackendBaseURL).
		Msg("Starting S+ Studio API")

	ctx := context.Background()
	rdb, err := database.NewRedis(ctx, cfg.RedisURL, database.RedisOptions{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(rdb)

	router, cat := newRouter(cfg, rdb)

	worker := catalog.NewWorker(cat, cfg.CatalogRefresh)
	worker.Start()
	defer worker.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// newRouter wires every module against the backend client. rdb may be nil.
func newRouter(cfg *config.Config, rdb *goredis.Client) (http.Handler, *catalog.Catalog) {
	client := studioapi.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout(), cfg.BackendUserAgent, studioapi.Messages(cfg.MessageLocale))
	jwtService := jwt.NewService(cfg.JWTSecret, time.Hour)
	processor := imaging.NewProcessor(imaging.Config{
		MaxWidth:  cfg.ImageMaxWidth,
		MaxHeight: cfg.ImageMaxHeight,
		Quality:   cfg.ImageQuality,
		MaxBytes:  cfg.ImageMaxBytes,
	})

	// ---------- Repositories ----------
	studioRepo := studio.NewRepository(client)
	equipmentRepo := equipment.NewRepository(client)
	addonRepo := addon.NewRepository(client)
	promotionRepo := promotion.NewRepository(client)
	bookingRepo := booking.NewRepository(client)
	setDesignRepo := setdesign.NewRepository(client)
	customDesignRepo := customdesign.NewRepository(client)
	paymentRepo := payment.NewRepository(client)
	reportRepo := report.NewRepository(client)
	commentRepo := comment.NewRepository(client)
	customerRepo := customer.NewRepository(client)

	// ---------- Services ----------
	cat := catalog.New(equipmentRepo, addonRepo, cfg.CatalogRefresh)

	studioService := studio.NewService(studioRepo)
	equipmentService := equipment.NewService(equipmentRepo, cat)
	addonService := addon.NewService(addonRepo, cat)
	promotionService := promotion.NewService(promotionRepo, client.Message)
	bookingService := booking.NewService(bookingRepo, cfg.FrontendURL)
	setDesignService := setdesign.NewService(setDesignRepo)
	customDesignService := customdesign.NewService(customDesignRepo, processor, setDesignService)
	uploadService := upload.NewService(client, processor)
	paymentService := payment.NewService(paymentRepo, payment.Config{
		PublicURL:   cfg.PublicURL,
		FrontendURL: cfg.FrontendURL,
		QRSize:      cfg.QRSize,
	})
	reportService := report.NewService(reportRepo)
	commentService := comment.NewService(commentRepo)
	customerService := customer.NewService(customerRepo)

	var draftStore draft.Store
	if rdb != nil {
		draftStore = draft.NewRedisStore(rdb, cfg.DraftTTL)
	} else {
		draftStore = draft.NewMemoryStore(cfg.DraftTTL)
	}
	draftService := draft.NewService(draftStore, studioService, cat, promotionService, bookingService)

	// ---------- Handlers ----------
	studioHandler := studio.NewHandler(studioService)
	equipmentHandler := equipment.NewHandler(equipmentService)
	addonHandler := addon.NewHandler(addonService)
	promotionHandler := promotion.NewHandler(promotionService)
	bookingHandler := booking.NewHandler(bookingService)
	draftHandler := draft.NewHandler(draftService)
	setDesignHandler := setdesign.NewHandler(setDesignService)
	customDesignHandler := customdesign.NewHandler(customDesignService, processor.MaxBytes())
	uploadHandler := upload.NewHandler(uploadService)
	paymentHandler := payment.NewHandler(paymentService)
	reportHandler := report.NewHandler(reportService)
	commentHandler := comment.NewHandler(commentService)
	customerHandler := customer.NewHandler(customerService)

	authMiddleware := middleware.Auth(jwtService)
	optionalAuth := middleware.OptionalAuth(jwtService)
	staffOnly := chain(authMiddleware, middleware.RequireStaff())
	adminOnly := chain(authMiddleware, middleware.RequireAdmin())

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok", "version": version, "drafts": "memory"}
		if rdb != nil {
			status["drafts"] = "redis"
			if err := database.Ping(r.Context(), rdb); err != nil {
				status["status"] = "degraded"
			}
		}
		pkgresponse.OK(w, status)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			pkgresponse.OK(w, map[string]string{"message": "pong"})
		})

		r.Mount("/studios", studioHandler.Routes(optionalAuth, adminOnly))
		r.Mount("/equipment", equipmentHandler.Routes(optionalAuth, adminOnly))
		r.Mount("/services", addonHandler.Routes(optionalAuth, adminOnly))
		r.Mount("/promotions", promotionHandler.Routes(optionalAuth, adminOnly))
		r.Mount("/bookings", bookingHandler.Routes(authMiddleware, staffOnly))
		r.Mount("/drafts", draftHandler.Routes(authMiddleware))
		r.Mount("/set-designs", setDesignHandler.Routes(optionalAuth, authMiddleware, adminOnly))
		r.Mount("/custom-designs", customDesignHandler.Routes(authMiddleware, staffOnly, adminOnly))
		r.Mount("/upload", uploadHandler.Routes(authMiddleware))
		r.Mount("/payments", paymentHandler.Routes(authMiddleware))
		r.Mount("/reports", reportHandler.Routes(staffOnly))
		r.Mount("/comments", commentHandler.Routes(authMiddleware))
		r.Mount("/users", customerHandler.ProfileRoutes(authMiddleware))
		r.Mount("/admin/customers", customerHandler.AdminRoutes(staffOnly, adminOnly))
	})

	return r, cat
}

// chain applies outer first.
func chain(outer, inner func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return outer(inner(next))
	}
}
