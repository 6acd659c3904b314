package db

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vietanh2810/elections-api/internal/config"
	"github.com/vietanh2810/elections-api/internal/repository/dao"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	return OpenPostgresWithURL(conf.DSN())
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(db); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}
	zap.L().Info("database schema migrated")

	return db, nil
}

// Open prefers DATABASE_URL over the structured postgres section.
func Open(conf *config.PostgresConfig) (*gorm.DB, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return OpenPostgresWithURL(url)
	}

	return OpenPostgres(conf)
}
