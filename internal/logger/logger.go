package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init replaces zap's global logger. Development environments get a
// human-readable console logger, everything else JSON.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch environment {
	case "development", "local", "test":
		l, err = zap.NewDevelopment()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
