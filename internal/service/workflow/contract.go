//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=workflow_test
package workflow

import (
	"context"

	"portal/internal/entities"
)

type OrderGateway interface {
	ValidateCheckout(ctx context.Context, req entities.CheckoutRequest) (*entities.CheckoutValidation, error)
	CreateOrder(ctx context.Context, req entities.OrderCreate) (*entities.Order, error)
	ExecuteTransition(ctx context.Context, cmd entities.Command) (*entities.Order, error)
	ForceCancel(ctx context.Context, orderID, adminID, reason string) (*entities.Order, error)
	SetStatus(ctx context.Context, orderID, adminID string, newStatus entities.OrderStatusType, reason string) (*entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
}

// Invalidator drops cached read models after a successful mutation so the
// next read reflects the backend's new truth.
type Invalidator interface {
	InvalidateOrder(orderID string)
	InvalidateLists()
}
