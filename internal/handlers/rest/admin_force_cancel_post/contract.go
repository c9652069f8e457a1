//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_force_cancel_post_test
package admin_force_cancel_post

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
	ForceCancel(ctx context.Context, orderID, adminID, reason string) (*entities.Order, error)
}
