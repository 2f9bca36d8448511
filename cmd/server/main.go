// @title Latina Empire API
// @version 1.0
// @description Events, ambassadors and blog content for the Latina Empire site, plus contact and newsletter capture.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"latinaempire/config"
	_ "latinaempire/docs"
	"latinaempire/internal/adapters/auth"
	"latinaempire/internal/adapters/email"
	httpdelivery "latinaempire/internal/delivery/http"
	"latinaempire/internal/delivery/http/controllers"
	"latinaempire/internal/delivery/http/middleware"
	"latinaempire/internal/platform/tracing"
	"latinaempire/internal/repository/jsonfile"
	"latinaempire/internal/repository/postgres"
	"latinaempire/internal/services"
)

const defaultJWTSecret = "change-me"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if cfg.IsProduction() && cfg.JWTSecret == defaultJWTSecret {
		logger.Error("JWT_SECRET must be set in production")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush spans", "err", err)
		}
	}()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warn("database unreachable, lead capture will fail until it is up", "err", err)
	} else if err := postgres.EnsureSchema(pingCtx, db); err != nil {
		logger.Warn("failed to apply lead schema", "err", err)
	}
	cancel()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.Region,
			AccessKeyID:        cfg.Email.AccessKeyID,
			SecretAccessKey:    cfg.Email.SecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		logger.Error("failed to parse email templates", "err", err)
		os.Exit(1)
	}

	store := jsonfile.NewStore(cfg.ContentDir, logger)
	timeout := cfg.RequestTimeout

	eventSvc := services.NewEventService(jsonfile.NewEventRepository(store), timeout)
	ambassadorSvc := services.NewAmbassadorService(jsonfile.NewAmbassadorRepository(store), timeout)
	blogSvc := services.NewBlogService(jsonfile.NewBlogRepository(store), timeout)
	emailSvc := services.NewEmailService(mailer, renderer)
	leadSvc := services.NewLeadService(postgres.NewLeadRepository(db), emailSvc, cfg.Email.LeadsInbox, logger, timeout)
	hasher := auth.NewBcryptHasher(0)
	authSvc := services.NewAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, hasher, auth.NewJWTIssuer(cfg.JWTSecret), cfg.JWTExpiry)
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD_HASH not set, admin login disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	mux := httpdelivery.NewRouter(httpdelivery.Routes{
		Content:     controllers.NewContentController(logger, eventSvc, ambassadorSvc, blogSvc),
		Leads:       controllers.NewLeadController(logger, leadSvc),
		Admin:       controllers.NewAdminController(logger, authSvc, leadSvc),
		RequireAuth: middleware.RequireAuth(auth.NewJWTVerifier(cfg.JWTSecret), logger),
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	var handler http.Handler = mux
	handler = middleware.Recover(logger, handler)
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = metrics.Middleware(handler)
	handler = middleware.Tracing(otel.GetTracerProvider(), otel.GetTextMapPropagator(), handler)
	handler = middleware.CORS(cfg.CORSOrigins, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment, "content_dir", cfg.ContentDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "err", err)
		}
	}
}
