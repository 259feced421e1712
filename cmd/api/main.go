package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/auth"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/booking"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/cache"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/config"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/content"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/db"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/handlers"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/middleware"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/notifications"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/slots"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "intune-backend",
		}
	}

	mailer := notifications.NewResendClient(cfg.ResendAPIKey, cfg.SenderEmail, cfg.SenderName)
	if mailer == nil {
		logger.Info("resend mailer disabled")
	} else {
		logger.Info("resend mailer enabled", slog.String("sender", cfg.SenderEmail))
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	recipients := []string{cfg.SandraEmail, cfg.BrettEmail}

	server := handlers.NewServer(cfg, cols, val, logger, cacheStore, mailer, jwtManager)

	slotRepo := slots.NewRepository(cols.Slots)
	slotService := slots.NewService(slotRepo, cfg.Timezone)
	slotHandler := slots.NewHandler(slotService, val, logger, cacheStore, cacheTTL)

	bookingRepo := booking.NewRepository(cols.Bookings)
	var notifier booking.Notifier
	if mailer != nil {
		notifier = mailer
	}
	bookingService := booking.NewService(slotRepo, bookingRepo, notifier, recipients, cfg.Timezone)
	bookingHandler := booking.NewHandler(bookingService, val, logger, cacheStore, cfg.Timezone)

	contentHandler := content.NewHandler(logger, cacheStore, cacheTTL)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	bookingsLimiter := middleware.NewRateLimiter(cfg.RateLimitBookings, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	registerRoutes := func(api chi.Router) {
		api.Get("/slots", slotHandler.GetAvailability)
		api.With(bookingsLimiter.Middleware).Post("/bookings", bookingHandler.Create)
		api.Get("/bookings/{id}", bookingHandler.Get)
		api.With(contactLimiter.Middleware).Post("/contact", server.CreateContactMessage)
		api.Get("/settings", server.GetPublicSettings)

		api.Route("/content", func(c chi.Router) {
			c.Get("/services", contentHandler.GetServices)
			c.Get("/programs", contentHandler.GetPrograms)
			c.Get("/therapists", contentHandler.GetTherapists)
			c.Get("/resources", contentHandler.GetResources)
			c.Get("/videos", contentHandler.GetVideos)
			c.Get("/videos/{id}", contentHandler.GetVideo)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/login", server.AdminLogin)
			admin.Post("/refresh", server.AdminRefresh)
			admin.Post("/logout", server.AdminLogout)

			// chi requires middlewares before routes, so the protected
			// surface lives on a sub-router.
			admin.Group(func(protected chi.Router) {
				protected.Use(middleware.AdminAuth(cfg.AdminAPIKey, jwtManager))
				protected.Get("/slots", slotHandler.AdminList)
				protected.Post("/slots", slotHandler.AdminCreate)
				protected.Delete("/slots/{id}", slotHandler.AdminDelete)
				protected.Get("/bookings", bookingHandler.AdminList)
				protected.Get("/contacts", server.AdminListContactMessages)
				protected.Get("/settings", server.AdminGetSettings)
				protected.Put("/settings", server.AdminUpdateSettings)
				protected.Post("/settings/payment", server.AdminConfigurePayment)
				protected.Post("/users", server.AdminCreateUser)
				protected.Patch("/users/password", server.AdminUpdatePassword)
			})
		})
	}

	r.Route("/api", registerRoutes)
	r.Route("/api/v1", registerRoutes)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
