package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/luminauth/idp-console/internal/audit"
	"github.com/luminauth/idp-console/internal/cache"
	"github.com/luminauth/idp-console/internal/clients"
	"github.com/luminauth/idp-console/internal/config"
	"github.com/luminauth/idp-console/internal/consent"
	"github.com/luminauth/idp-console/internal/database"
	"github.com/luminauth/idp-console/internal/ent"
	"github.com/luminauth/idp-console/internal/httpapi"
	"github.com/luminauth/idp-console/internal/httpapi/handlers"
	"github.com/luminauth/idp-console/internal/httpapi/middleware"
	"github.com/luminauth/idp-console/internal/scopes"
	"github.com/luminauth/idp-console/internal/token"
)

// App owns the wired service graph and the HTTP server.
type App struct {
	cfg    *config.Config
	logger *zap.Logger

	entClient *ent.Client
	db        *sql.DB
	redis     *redis.Client
	server    *http.Server
}

// New wires every component and returns a runnable App.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	entClient, db, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if cfg.Database.RunMigrations {
		if err := database.RunMigrations(ctx, entClient); err != nil {
			return nil, err
		}
	}

	redisClient, err := cache.New(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, rate limiting and consent locks disabled", zap.Error(err))
		redisClient = nil
	}

	tokenSvc, err := token.NewService(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	auditor := audit.New(entClient, log)
	clientStore := clients.NewStore(entClient, log)
	grantStore := consent.NewStore(entClient)
	resolver := scopes.NewResolver(entClient, log)
	authorizer := consent.NewHTTPAuthorizer(cfg.Authorizer.BaseURL, cfg.Authorizer.SubmitTimeout, log)

	consentSvc := consent.New(consent.Dependencies{
		Clients:    clientStore,
		Grants:     grantStore,
		Resolver:   resolver,
		Authorizer: authorizer,
		Redis:      redisClient,
		Auditor:    auditor,
		LockTTL:    cfg.Authorizer.LockTTL,
		Logger:     log,
	})

	auth := middleware.NewAuth(tokenSvc)
	deps := httpapi.RouterDeps{
		HealthHandler:       handlers.NewHealthHandler(db, redisClient),
		ClientHandler:       handlers.NewClientHandler(clientStore, auditor, log),
		ConsentHandler:      handlers.NewConsentHandler(consentSvc, grantStore, cfg.Branding, log),
		RequireAuthHandler:  auth.RequireAuth,
		RequireAdminHandler: auth.RequireAdmin,
		MetricsHandler:      promhttp.Handler(),
	}
	if redisClient != nil {
		limiter := middleware.NewRateLimiter(redisClient, cfg.Redis.Namespace)
		deps.RateLimitConsent = limiter.Limit("consent", 60, time.Minute, middleware.KeyByClientIP)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           httpapi.NewRouter(deps),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	return &App{
		cfg:       cfg,
		logger:    log,
		entClient: entClient,
		db:        db,
		redis:     redisClient,
		server:    server,
	}, nil
}

// Run serves HTTP until the server is shut down.
func (a *App) Run() error {
	a.logger.Info("http server starting",
		zap.String("addr", a.server.Addr),
		zap.String("environment", a.cfg.App.Environment),
	)
	var err error
	if a.cfg.HTTP.TLSCertFile != "" && a.cfg.HTTP.TLSKeyFile != "" {
		err = a.server.ListenAndServeTLS(a.cfg.HTTP.TLSCertFile, a.cfg.HTTP.TLSKeyFile)
	} else {
		err = a.server.ListenAndServe()
	}
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains the server and closes backing connections.
func (a *App) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("close redis", zap.Error(err))
		}
	}
	if err := a.entClient.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
