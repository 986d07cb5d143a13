// @title Filmdeck API
// @version 1.0
// @description Accounts, favorites and media catalog lookups
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer <token>"
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	docs "github.com/xyz-asif/filmdeck/docs"
	"github.com/xyz-asif/filmdeck/internal/config"
	"github.com/xyz-asif/filmdeck/internal/database"
	"github.com/xyz-asif/filmdeck/internal/features/auth"
	"github.com/xyz-asif/filmdeck/internal/features/favorites"
	"github.com/xyz-asif/filmdeck/internal/features/media"
	"github.com/xyz-asif/filmdeck/internal/features/queries"
	"github.com/xyz-asif/filmdeck/internal/middleware"
	"github.com/xyz-asif/filmdeck/internal/pkg/jwt"
	"github.com/xyz-asif/filmdeck/internal/pkg/logger"
	"github.com/xyz-asif/filmdeck/internal/pkg/metrics"
	"github.com/xyz-asif/filmdeck/internal/pkg/omdb"
	"github.com/xyz-asif/filmdeck/internal/pkg/ratelimit"
	"github.com/xyz-asif/filmdeck/internal/pkg/validator"
	"github.com/xyz-asif/filmdeck/internal/routes"
	"github.com/xyz-asif/filmdeck/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.Log.Level), cfg.Log.Format)
	logger.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Fatal("Server stopped", "error", err)
	}
	log.Info("Server exited")
}

// run owns every resource it opens and returns only after closing them.
// Cancelling ctx starts a graceful shutdown.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	docs.SwaggerInfo.Host = "localhost:" + cfg.Server.Port

	if err := validator.RegisterBindings(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	defer st.Close(context.Background())

	if cfg.Store.AutoMigrate {
		mctx, cancel := context.WithTimeout(ctx, time.Minute)
		err := st.Migrate(mctx)
		cancel()
		if err != nil {
			return fmt.Errorf("migrate %s store: %w", st.Driver, err)
		}
		log.Info("Store migrated", "driver", st.Driver)
	}

	issuer, err := jwt.NewIssuer(jwt.Config{
		Secret:   cfg.Auth.JWTSecret,
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
		TTL:      cfg.Auth.TokenTTL,
		Leeway:   cfg.Auth.ClockSkew,
	})
	if err != nil {
		return fmt.Errorf("build token issuer: %w", err)
	}

	catalog, err := omdb.NewClient(omdb.Config{
		BaseURL: cfg.Catalog.BaseURL,
		APIKey:  cfg.Catalog.APIKey,
		Timeout: cfg.Catalog.Timeout,
	})
	if err != nil {
		return fmt.Errorf("build catalog client: %w", err)
	}

	m := metrics.New()

	authSvc := auth.NewService(st.Users, auth.NewBcryptVerifier(cfg.Auth.BcryptCost), issuer, log)
	favSvc := favorites.NewService(st.Favorites, m, log)
	queryLog := queries.NewLog(st.Queries, m, log)
	mediaSvc := media.NewService(catalog, queryLog, m, log)

	checks := map[string]routes.CheckFunc{"store": st.Ping}

	var limiter gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		var rlStore ratelimit.Store
		if cfg.Redis.URL != "" {
			rdb, err := database.NewRedis(cfg.Redis)
			if err != nil {
				return fmt.Errorf("connect to redis: %w", err)
			}
			defer rdb.Close()
			rlStore = ratelimit.NewRedisStore(rdb, "filmdeck:rl:credentials:", cfg.RateLimit.Requests, cfg.RateLimit.Window)
			checks["redis"] = rdb.Ping
		} else {
			mem := ratelimit.NewMemoryStore(cfg.RateLimit.Requests, cfg.RateLimit.Window)
			mem.StartCleanup(ctx, cfg.RateLimit.Window)
			rlStore = mem
		}
		limiter = ratelimit.Middleware(rlStore, ratelimit.ClientIP, log)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS(cfg.Server.FrontendURL))
	router.Use(m.Middleware())

	routes.SetupRoutes(router, routes.Dependencies{
		Auth:              auth.NewHandler(authSvc),
		Favorites:         favorites.NewHandler(favSvc),
		Media:             media.NewHandler(mediaSvc),
		RequireAuth:       middleware.Auth(issuer),
		CredentialLimiter: limiter,
		Metrics:           m,
		Checks:            checks,
	})

	// the write deadline has to outlive a slow catalog call
	writeTimeout := cfg.Server.WriteTimeout
	if floor := cfg.Catalog.Timeout + 5*time.Second; writeTimeout < floor {
		writeTimeout = floor
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    64 << 10,
	}

	log.Info("Server starting", "port", cfg.Server.Port, "driver", st.Driver)
	return serve(ctx, srv, cfg.Server.ShutdownTimeout, log)
}

// serve blocks until the listener fails or ctx is cancelled, in which case
// in-flight requests get shutdownTimeout to finish.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, log *logger.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	return nil
}
