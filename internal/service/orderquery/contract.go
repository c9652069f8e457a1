//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderquery_test
package orderquery

import (
	"context"

	"portal/internal/entities"
)

type OrderGateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetOrderDetails(ctx context.Context, orderID string) (*entities.OrderDetail, error)
	GetTracking(ctx context.Context, orderID string) (*entities.OrderTracking, error)
	GetHistory(ctx context.Context, orderID string) ([]entities.TimelineEntry, error)
	GetStats(ctx context.Context) (*entities.OrderStats, error)
	SearchOrders(ctx context.Context, filters entities.OrderSearchFilters) (*entities.OrderSearchResult, error)
}

type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Invalidate(key string)
	InvalidatePrefix(prefix string)
}
