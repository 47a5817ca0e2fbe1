package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// NewLogger builds the service logger. LOG_MODE=production selects the
// production encoder; anything else gets the development console encoder.
func NewLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_MODE")), "production") {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger.Sugar(), nil
}
