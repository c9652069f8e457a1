//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_status_put_test
package admin_status_put

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
	SetStatus(ctx context.Context, orderID, adminID string, newStatus entities.OrderStatusType, reason string) (*entities.Order, error)
}
