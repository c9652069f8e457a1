//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_validate_post_test
package checkout_validate_post

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
	ValidateCheckout(ctx context.Context, req entities.CheckoutRequest) (*entities.CheckoutValidation, error)
}
