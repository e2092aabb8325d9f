package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"github.com/AyaAid/Stayabucks/internal/es"
	"github.com/AyaAid/Stayabucks/internal/repo"
	"github.com/AyaAid/Stayabucks/internal/seed"
	"github.com/AyaAid/Stayabucks/internal/service/search"
	"github.com/AyaAid/Stayabucks/pkg/config"
	pkgdb "github.com/AyaAid/Stayabucks/pkg/db"
	"github.com/AyaAid/Stayabucks/pkg/logging"
)

func main() {
	file := flag.String("file", "seed/catalog.yaml", "path to the YAML fixture")
	skipIndex := flag.Bool("skip-index", false, "do not push drinks to Elasticsearch")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env not loaded: %v, using process environment", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName, "cmd", "seed")
	slog.SetDefault(logger)

	fixture, err := seed.LoadFile(*file)
	if err != nil {
		log.Fatalf("fixture: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = pkgdb.Close(db) }()

	if err := repo.Migrate(ctx, db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	s := &seed.Seeder{Repo: &repo.GormRepo{DB: db}, Log: logger}
	if !*skipIndex && cfg.ESURL != "" {
		client, err := es.NewClient(ctx, cfg, logger)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		s.Indexer = search.NewDrinkIndex(client, cfg.ESIndex)
	}

	if _, err := s.Apply(ctx, fixture); err != nil {
		log.Fatalf("seed: %v", err)
	}
}
