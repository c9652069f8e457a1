//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_stats_get_test
package order_stats_get

import (
	"context"

	"portal/internal/entities"
	"portal/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetStats(ctx context.Context) (*entities.OrderStats, error)
}
