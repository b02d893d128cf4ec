package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"baas-lcos/internal/api"
	"baas-lcos/internal/api/handlers"
	"baas-lcos/internal/config"
	"baas-lcos/internal/data"
	"baas-lcos/internal/lcos"
	"baas-lcos/internal/logger"
	"baas-lcos/internal/metrics"
)

func main() {
	log := logger.New("api")

	cfg, err := config.LoadServer()
	if err != nil {
		log.Errorf("load server config: %v", err)
		os.Exit(1)
	}
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec, err := metrics.NewRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		log.Errorf("register metrics: %v", err)
		os.Exit(1)
	}
	cache := data.NewResultCache(cfg.ResultTTL, cfg.ResultMaxEntries)
	go cache.RunCleanup(ctx, 5*time.Minute)

	engine := lcos.New(lcos.WithLogger(logger.New("lcos")))
	router := api.NewRouter(api.Options{
		Evaluate:    handlers.NewEvaluateHandler(engine, cache, rec, logger.New("evaluate")),
		Log:         logger.New("http"),
		CORSOrigins: cfg.CORSOrigins,
		Gatherer:    prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	log.Infof("Starting API server on %s (result ttl %s, max %d cached)", cfg.Addr(), cfg.ResultTTL, cfg.ResultMaxEntries)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorf("Failed to start server: %v", err)
		os.Exit(1)
	}
	log.Infof("API server stopped")
}
