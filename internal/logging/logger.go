package logging

import (
	"go.uber.org/zap"
)

// NewLogger builds the production logger used by every service binary.
// The service name rides along on every entry.
func NewLogger(serviceName string) (*zap.SugaredLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger.Sugar().With("service", serviceName), nil
}
