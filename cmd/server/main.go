package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/AyaAid/Stayabucks/internal/es"
	"github.com/AyaAid/Stayabucks/internal/httpserver"
	"github.com/AyaAid/Stayabucks/internal/mykafka"
	"github.com/AyaAid/Stayabucks/internal/repo"
	"github.com/AyaAid/Stayabucks/internal/service"
	"github.com/AyaAid/Stayabucks/internal/service/search"
	"github.com/AyaAid/Stayabucks/pkg/config"
	pkgdb "github.com/AyaAid/Stayabucks/pkg/db"
	"github.com/AyaAid/Stayabucks/pkg/logging"
	loggingmw "github.com/AyaAid/Stayabucks/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env not loaded: %v, using process environment", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		cancel()
		log.Fatalf("db open: %v", err)
	}
	if err := repo.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("db migrate: %v", err)
	}
	cancel()

	var events mykafka.Publisher = mykafka.NopPublisher{}
	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka: %v", err)
		}
		events = producer
	} else {
		logger.Warn("kafka_disabled", "reason", "KAFKA_BROKERS is empty")
	}

	r := &repo.GormRepo{DB: db}
	catalogSvc := &service.CatalogService{Repo: r}
	esCtx, esCancel := context.WithTimeout(context.Background(), 10*time.Second)
	esClient, err := es.NewClient(esCtx, cfg, logger)
	esCancel()
	switch {
	case err == nil:
		catalogSvc.Search = search.NewDrinkIndex(esClient, cfg.ESIndex)
	case errors.Is(err, es.ErrNotConfigured):
		logger.Warn("search_disabled", "reason", "ES_URL is empty")
	default:
		logger.Error("search_disabled", "error", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		DB:             db,
		DrinkHandler:   &httpserver.DrinkHTTP{Svc: service.NewDrinkService(r, events)},
		LikeHandler:    &httpserver.LikeHTTP{Svc: service.NewLikeService(r, events)},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		JWTSecret:      cfg.JWTAccessSecret,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("http_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting_down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", "error", err)
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka_close_failed", "error", err)
		}
	}
	if err := pkgdb.Close(db); err != nil {
		logger.Error("db_close_failed", "error", err)
	}

	logger.Info("shutdown_complete")
}
