package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epeers/rsiv/config"
	_ "github.com/epeers/rsiv/docs"
	"github.com/epeers/rsiv/internal/cache"
	"github.com/epeers/rsiv/internal/handlers"
	"github.com/epeers/rsiv/internal/logger"
	"github.com/epeers/rsiv/internal/middleware"
	"github.com/epeers/rsiv/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title RSIV Portfolio Analyzer API
// @version 1.0
// @description Scores a portfolio's relative strength against the benchmark index and recommends a rebalancing action.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if cfg.LogLevel != "debug" && cfg.LogLevel != "trace" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Completed analyses, kept for report and export downloads
	results := cache.NewMemoryCache(cfg.ResultTTL)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweep(sweepCtx, results, cfg.ResultTTL)

	router := setupRouter(cfg, results)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Info("Server exited")
}

func setupRouter(cfg *config.Config, results *cache.MemoryCache) *gin.Engine {
	// Initialize services
	analyzer := services.NewAnalyzerService()
	batchSvc := services.NewBatchService(analyzer, cfg.BatchConcurrency)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analyzer, batchSvc, results, cfg.MaxHoldings)
	reportHandler := handlers.NewReportHandler(results, cfg.ReportLang, cfg.Currency)
	formHandler := handlers.NewFormHandler(analysisHandler, cfg.ReportLang, cfg.Currency)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Web form
	router.GET("/", formHandler.Form)
	router.POST("/report", formHandler.Submit)

	// Analysis routes
	router.POST("/analyze", analysisHandler.Analyze)
	router.POST("/analyze/batch", analysisHandler.AnalyzeBatch)
	router.POST("/analyze/csv", analysisHandler.AnalyzeCSV)
	router.GET("/analyses/:id", analysisHandler.Get)
	router.DELETE("/analyses/:id", analysisHandler.Delete)
	router.GET("/analyses/:id/report", reportHandler.Report)
	router.GET("/analyses/:id/export/:format", reportHandler.Export)

	return router
}

// sweep drops expired analyses until ctx is cancelled
func sweep(ctx context.Context, results *cache.MemoryCache, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := results.Sweep(); n > 0 {
				log.WithField("removed", n).Debug("expired analyses swept")
			}
		}
	}
}
