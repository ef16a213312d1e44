package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esc4n0rx/Integra/config"
	"github.com/esc4n0rx/Integra/internal/producer"
	"github.com/esc4n0rx/Integra/internal/repository"
	"github.com/esc4n0rx/Integra/internal/service"
	transport "github.com/esc4n0rx/Integra/internal/transport/http"
	"github.com/esc4n0rx/Integra/pkg/database"
	"github.com/esc4n0rx/Integra/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	gopkgmail "gopkg.in/gomail.v2"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	// Event bus is optional (nil disables publishing)
	var events service.EventBus
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopic != "" {
		orderProducer := producer.NewOrderProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer orderProducer.Close()
		events = orderProducer
		log.Info("kafka order events enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}

	exportSvc := service.NewExportService()
	dialer := gopkgmail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password)

	svcs := transport.Services{
		Catalog: service.NewCatalogService(repos),
		Orders:  service.NewOrderService(repos, events, log),
		Export:  exportSvc,
		Mail:    service.NewMailService(repos, exportSvc, dialer, cfg.SMTP.From, cfg.DefaultRecipient, log),
		Ingest:  service.NewIngestService(repos, log),
	}

	r := transport.Router(svcs, log)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting Integra HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down Integra HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	log.Info("Integra HTTP server stopped gracefully")
}
