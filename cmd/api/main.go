package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/chachabrian/profast-backend/internal/config"
	"github.com/chachabrian/profast-backend/internal/database"
	"github.com/chachabrian/profast-backend/internal/logger"
	"github.com/chachabrian/profast-backend/internal/middleware"
	"github.com/chachabrian/profast-backend/internal/routes"
	"github.com/chachabrian/profast-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("api", "info").Fatal().Err(err).Msg("load config")
	}

	log := logger.New("api", cfg.LogLevel)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error().Err(err).Msg("application failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	const (
		shutdownPeriod = 15 * time.Second
		connectTimeout = 30 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	gw, err := database.New(cfg.Mongo, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := gw.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("disconnect mongo")
		}
	}()

	// Data routes answer 503 until this succeeds.
	go func() {
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		_ = gw.Connect(connectCtx)
	}()

	app, verifier, err := initIdentity(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("identity: %w", err)
	}

	pusher, err := services.NewPushNotifier(ctx, app, log)
	if err != nil {
		return fmt.Errorf("push notifications: %w", err)
	}

	publisher, err := initPublisher(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("close redis")
		}
	}()

	hub := services.NewTrackingHub(log)
	go hub.Run(ctx)

	deps := routes.Deps{
		DB:       gw,
		Verifier: verifier,
		Parcels:  database.NewParcelRepository(gw.Collection(database.ParcelsCollection)),
		Users:    database.NewUserRepository(gw.Collection(database.UsersCollection)),
		Riders:   database.NewRiderRepository(gw.Collection(database.RidersCollection)),
		Payments: database.NewPaymentRepository(
			gw.Collection(database.PaymentsCollection),
			gw.Collection(database.ParcelsCollection),
			cfg.Mongo.UseTransactions,
		),
		Tracking: database.NewTrackingRepository(gw.Collection(database.TrackingCollection)),
		Gateway:  services.NewStripeGateway(cfg.Payment.SecretKey, cfg.Payment.Currency),
		Events:   publisher,
		Notifier: services.NewTrackingNotifier(publisher, hub, pusher, log),
		Stream:   hub,
	}

	// ongoingCtx outlives the signal so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: initRouter(cfg, log, &isShuttingDown, deps),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	stopOngoingGracefully()
	if err != nil {
		log.Warn().Err(err).Msg("graceful shutdown timed out")
	}

	log.Info().Msg("server stopped")
	return nil
}

func initRouter(cfg *config.Config, log *logger.Logger, isShuttingDown *atomic.Bool, deps routes.Deps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Draining(isShuttingDown))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.TraceIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.TraceIDHeader}
	r.Use(cors.New(corsConfig))

	routes.Register(r, deps)
	return r
}

func initIdentity(ctx context.Context, cfg *config.Config, log *logger.Logger) (*firebase.App, middleware.TokenVerifier, error) {
	if cfg.Auth.Provider == config.AuthProviderJWT {
		log.Warn().Msg("using local HS256 token verification")
		return nil, services.NewJWTVerifier(cfg.Auth.JWTSecret), nil
	}

	app, err := services.NewFirebaseApp(ctx, cfg.Firebase.CredentialsFile)
	if err != nil {
		return nil, nil, err
	}
	verifier, err := services.NewFirebaseVerifierFromApp(ctx, app)
	if err != nil {
		return nil, nil, err
	}
	return app, verifier, nil
}

type eventPublisher interface {
	Publish(ctx context.Context, channel, eventType string, data interface{}) error
	Close() error
}

func initPublisher(ctx context.Context, cfg *config.Config, log *logger.Logger) (eventPublisher, error) {
	if cfg.Redis.URL == "" {
		log.Warn().Msg("REDIS_URL not set, event publishing disabled")
		return services.NopPublisher{}, nil
	}
	return services.NewRedisPublisher(ctx, cfg.Redis.URL, log)
}
