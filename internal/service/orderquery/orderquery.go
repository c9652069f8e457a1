// Package orderquery serves the read side of the order surface through a
// short-lived cache. Stale reads are bounded by the cache TTL; mutations
// and status-change events invalidate eagerly.
package orderquery

import (
	"context"
	"fmt"

	"portal/internal/entities"
)

const (
	keyOrderPrefix    = "order:"
	keyDetailsPrefix  = "details:"
	keyTrackingPrefix = "tracking:"
	keyHistoryPrefix  = "history:"
	keySearchPrefix   = "search:"
	keyStats          = "stats"
)

type Service struct {
	gateway OrderGateway
	cache   Cache
}

func New(gateway OrderGateway, cache Cache) *Service {
	return &Service{
		gateway: gateway,
		cache:   cache,
	}
}

func (s *Service) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	key := keyOrderPrefix + orderID
	if cached, ok := s.cache.Get(key); ok {
		if order, ok := cached.(*entities.Order); ok {
			return order, nil
		}
	}

	order, err := s.gateway.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}

	s.cache.Set(key, order)
	return order, nil
}

func (s *Service) GetOrderDetails(ctx context.Context, orderID string) (*entities.OrderDetail, error) {
	key := keyDetailsPrefix + orderID
	if cached, ok := s.cache.Get(key); ok {
		if detail, ok := cached.(*entities.OrderDetail); ok {
			return detail, nil
		}
	}

	detail, err := s.gateway.GetOrderDetails(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order details %s: %w", orderID, err)
	}

	s.cache.Set(key, detail)
	return detail, nil
}

func (s *Service) GetTracking(ctx context.Context, orderID string) (*entities.OrderTracking, error) {
	key := keyTrackingPrefix + orderID
	if cached, ok := s.cache.Get(key); ok {
		if tracking, ok := cached.(*entities.OrderTracking); ok {
			return tracking, nil
		}
	}

	tracking, err := s.gateway.GetTracking(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get tracking %s: %w", orderID, err)
	}

	s.cache.Set(key, tracking)
	return tracking, nil
}

func (s *Service) GetHistory(ctx context.Context, orderID string) ([]entities.TimelineEntry, error) {
	key := keyHistoryPrefix + orderID
	if cached, ok := s.cache.Get(key); ok {
		if timeline, ok := cached.([]entities.TimelineEntry); ok {
			return timeline, nil
		}
	}

	timeline, err := s.gateway.GetHistory(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get history %s: %w", orderID, err)
	}

	s.cache.Set(key, timeline)
	return timeline, nil
}

func (s *Service) GetStats(ctx context.Context) (*entities.OrderStats, error) {
	if cached, ok := s.cache.Get(keyStats); ok {
		if stats, ok := cached.(*entities.OrderStats); ok {
			return stats, nil
		}
	}

	stats, err := s.gateway.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	s.cache.Set(keyStats, stats)
	return stats, nil
}

func (s *Service) SearchOrders(ctx context.Context, filters entities.OrderSearchFilters) (*entities.OrderSearchResult, error) {
	key := keySearchPrefix + filters.CacheKey()
	if cached, ok := s.cache.Get(key); ok {
		if result, ok := cached.(*entities.OrderSearchResult); ok {
			return result, nil
		}
	}

	result, err := s.gateway.SearchOrders(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}

	s.cache.Set(key, result)
	return result, nil
}

// RefreshOrder drops cached read models for the order and re-warms the
// base order entry from the backend. Used by the status-changed consumer
// so admin reads see the new status before the TTL would expire it.
func (s *Service) RefreshOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	s.InvalidateOrder(orderID)
	s.InvalidateLists()

	order, err := s.gateway.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("refresh order %s: %w", orderID, err)
	}

	s.cache.Set(keyOrderPrefix+orderID, order)
	return order, nil
}

// InvalidateOrder drops every per-order read model for the given id.
func (s *Service) InvalidateOrder(orderID string) {
	s.cache.Invalidate(keyOrderPrefix + orderID)
	s.cache.Invalidate(keyDetailsPrefix + orderID)
	s.cache.Invalidate(keyTrackingPrefix + orderID)
	s.cache.Invalidate(keyHistoryPrefix + orderID)
}

// InvalidateLists drops aggregates whose membership any mutation can change.
func (s *Service) InvalidateLists() {
	s.cache.Invalidate(keyStats)
	s.cache.InvalidatePrefix(keySearchPrefix)
}
