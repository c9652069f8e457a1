//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_details_get_test
package order_details_get

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
	GetOrderDetails(ctx context.Context, orderID string) (*entities.OrderDetail, error)
}
