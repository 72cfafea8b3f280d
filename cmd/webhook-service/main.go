package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/ordenes-webhook/docs"
	"github.com/MikeMC777/ordenes-webhook/internal/config"
	"github.com/MikeMC777/ordenes-webhook/internal/httpx"
	"github.com/MikeMC777/ordenes-webhook/internal/metrics"
	ord "github.com/MikeMC777/ordenes-webhook/internal/order"
)

// @title           Order Webhook Service
// @version         1.0
// @description     Ingests simulated e-commerce order webhooks and exposes the persisted records.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	pool, err := initializeDatabase(cfg.PostgresDSN)
	if err != nil {
		logger.Error("db_init_failed", "error", err.Error())
		os.Exit(1)
	}
	defer pool.Close()

	d := deps{
		repo:    ord.NewPGRepo(pool),
		logger:  logger,
		metrics: metrics.NewRegistry(),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(logger), httpx.Recovery(logger))

	r.POST("/webhooks/orders", orderWebhookHandler(d))
	r.GET("/orders", httpx.ViewerAuth([]byte(cfg.JWTSecret)), listOrdersHandler(d))
	r.GET("/healthz", healthzHandler())
	r.GET("/metrics", gin.WrapH(d.metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.WebhookSvcAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("webhook-service listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("serve_failed", "error", err.Error())
		os.Exit(1)
	}
}

func initializeDatabase(dsn string) (*pgxpool.Pool, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
