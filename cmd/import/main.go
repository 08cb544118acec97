// Copyright (c) 2026 TXSN. All rights reserved.

// Command import loads a curator-maintained XLSX directory export into the
// database. It runs migrations first, so a fresh database can be seeded with
// a single invocation:
//
//	DATABASE_URL=... REDIS_URL=... go run ./cmd/import -file directory.xlsx
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/txsn/navigator/internal/core/resource"
	"github.com/txsn/navigator/internal/platform/config"
	"github.com/txsn/navigator/internal/platform/constants"
	"github.com/txsn/navigator/internal/platform/migration"
	pgstore "github.com/txsn/navigator/internal/platform/postgres"
)

func main() {
	var file string
	flag.StringVar(&file, "file", "", "path to the XLSX directory export (required)")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName+"-import"))
	slog.SetDefault(log)

	if file == "" {
		log.Error("missing -file flag")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	resources, err := resource.ParseWorkbook(file)
	must(log, err, "parse workbook")
	log.Info("workbook_parsed",
		slog.String("file", file),
		slog.Int("rows", len(resources)))

	// The importer is offline tooling, so no location resolver is needed.
	service := resource.NewService(resource.NewPostgresRepository(pool), nil, log)

	stored, err := service.ImportResources(ctx, resources)
	if err != nil {
		log.Error("import failed",
			slog.Int("stored", stored),
			slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("import_complete", slog.Int("stored", stored))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
