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
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/echo-xaudit/config"
	"github.com/dev-mohitbeniwal/echo-xaudit/controller"
	"github.com/dev-mohitbeniwal/echo-xaudit/db"
	logger "github.com/dev-mohitbeniwal/echo-xaudit/logging"
	"github.com/dev-mohitbeniwal/echo-xaudit/router"
	"github.com/dev-mohitbeniwal/echo-xaudit/search"
	"github.com/dev-mohitbeniwal/echo-xaudit/service"
	"github.com/dev-mohitbeniwal/echo-xaudit/util"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the audit REST API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	cfg := config.GetConfig()
	auditStore := config.GetAuditStore()

	// Initialize Postgres
	database, err := db.OpenPostgres(cfg.Postgres.URL)
	if err != nil {
		return err
	}
	defer db.ClosePostgres(database)

	if cfg.Postgres.MigrateOnStart {
		if err := db.Migrate(database); err != nil {
			return err
		}
	}

	// Initialize Redis
	redisClient, err := db.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer db.CloseRedis(redisClient)

	// Initialize the search engine only when it serves audit searches
	searchUtil := search.NewUtil(search.UtilConfig{TimeZone: cfg.Search.Timezone, NowToken: cfg.Search.NowToken})
	var esClient *search.ElasticsearchClient
	if auditStore == config.AuditStoreSolr {
		esClient, err = search.NewElasticsearchClient(cfg.Elasticsearch.URL, cfg.Elasticsearch.Index)
		if err != nil {
			return err
		}
	}

	services, err := service.InitializeServices(database, esClient, searchUtil, util.NewValidationUtil(), auditStore)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	controllers := controller.InitializeControllers(services)

	gin.SetMode(gin.ReleaseMode)
	handler := router.SetupRouter(controllers, router.Options{
		Limiter:           db.NewRedisLimiter(redisClient),
		RateLimitRequests: cfg.RateLimit.Requests,
		RateLimitDuration: cfg.RateLimit.Window,
		JWTSecret:         []byte(cfg.Auth.JWTSecret),
		AdminGroup:        cfg.Auth.AdminGroup,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port), zap.Stringer("auditStore", auditStore))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		// The server has 5 seconds to finish the requests it is handling
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	logger.Info("Server exiting")
	return nil
}
