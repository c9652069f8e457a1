package app

import (
	"context"
	"net/http"
	"time"

	ordersGateway "portal/internal/gateway/backend/orders"
	kafkaconsumer "portal/internal/handlers/kafka-consumer/order_status_changed"
	"portal/internal/handlers/rest/admin_force_cancel_post"
	"portal/internal/handlers/rest/admin_status_put"
	"portal/internal/handlers/rest/checkout_validate_post"
	"portal/internal/handlers/rest/order_action_post"
	"portal/internal/handlers/rest/order_actions_get"
	"portal/internal/handlers/rest/order_create_post"
	"portal/internal/handlers/rest/order_details_get"
	"portal/internal/handlers/rest/order_get"
	"portal/internal/handlers/rest/order_history_get"
	"portal/internal/handlers/rest/order_stats_get"
	"portal/internal/handlers/rest/order_tracking_get"
	"portal/internal/handlers/rest/orders_search_get"
	"portal/internal/handlers/tasks/cache_cleanup"
	"portal/internal/pkg/config"
	"portal/internal/service/orderquery"
	"portal/internal/service/workflow"
	"portal/pkg/background"
	"portal/pkg/logger"
	"portal/pkg/ttlcache"
)

type (
	CleanupInterval time.Duration
)

type Application struct {
	ServiceWorkflow   ServiceWorkflow
	ServiceQuery      ServiceQuery
	BackgroundWorkers *background.Worker
}

type ServiceWorkflow interface {
	checkout_validate_post.Service
	order_create_post.Service
	order_action_post.Service
	order_actions_get.Service
	admin_force_cancel_post.Service
	admin_status_put.Service
}

type ServiceQuery interface {
	order_get.Service
	order_details_get.Service
	order_tracking_get.Service
	order_history_get.Service
	order_stats_get.Service
	orders_search_get.Service
	kafkaconsumer.Service
}

func provideCache(cfg *config.Config) *ttlcache.Cache {
	return ttlcache.New(cfg.Cache.TTL)
}

func provideOrderGateway(client *http.Client, cfg *config.Config) *ordersGateway.Gateway {
	return ordersGateway.New(client, cfg.Backend.BaseURL)
}

func provideServiceQuery(
	gateway orderquery.OrderGateway,
	cache orderquery.Cache,
) *orderquery.Service {
	return orderquery.New(gateway, cache)
}

func provideServiceWorkflow(
	gateway workflow.OrderGateway,
	invalidator workflow.Invalidator,
	log logger.Logger,
) *workflow.Service {
	return workflow.New(gateway, invalidator, log)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.CacheCleanupInterval)
}

func provideCacheCleanupTask(
	log logger.Logger,
	cache cache_cleanup.Cache,
	interval CleanupInterval,
) *cache_cleanup.CacheCleanup {
	return cache_cleanup.NewCacheCleanup(log, cache, time.Duration(interval))
}

func provideTaskList(
	cacheCleanupTask *cache_cleanup.CacheCleanup,
) []background.Task {
	return []background.Task{
		cacheCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
