//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_action_post_test
package order_action_post

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
	Execute(ctx context.Context, cmd entities.Command) (*entities.Order, error)
}
