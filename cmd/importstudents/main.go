// Command importstudents loads the eligibility roster from a CSV file with
// REGNO and WEBMAIL columns. Rows already present are left untouched, so the
// same file can be imported twice.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/vietanh2810/elections-api/internal/config"
	"github.com/vietanh2810/elections-api/internal/db"
	"github.com/vietanh2810/elections-api/internal/logger"
	"github.com/vietanh2810/elections-api/internal/pkg/roster"
	"github.com/vietanh2810/elections-api/internal/repository"
	"github.com/vietanh2810/elections-api/internal/repository/dao"
	"github.com/vietanh2810/elections-api/internal/service"
)

var errFileRequired = errors.New("--file is required")

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	file := pflag.StringP("file", "f", "", "roster CSV file with REGNO and WEBMAIL columns")
	configPath := pflag.StringP("config", "c", "./cmd/app/config.yml", "config file")
	pflag.Parse()

	if *file == "" {
		pflag.Usage()
		return errFileRequired
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	f, err := os.Open(*file)
	if err != nil {
		return fmt.Errorf("os.Open -> %w", err)
	}
	defer f.Close()

	students, err := roster.Parse(f)
	if err != nil {
		return fmt.Errorf("roster.Parse -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	postgresDB, err := db.Open(conf.Postgres)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	svc := service.NewRosterService(repository.NewStudentRepository(dao.NewStudentDAO(postgresDB)))
	inserted, err := svc.Import(ctx, students)
	if err != nil {
		return fmt.Errorf("svc.Import -> %w", err)
	}

	zap.L().Info("roster imported",
		zap.String("file", *file),
		zap.Int("rows", len(students)),
		zap.Int64("inserted", inserted),
	)

	return nil
}
