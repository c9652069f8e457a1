//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	ordersGateway "portal/internal/gateway/backend/orders"
	"portal/internal/handlers/tasks/cache_cleanup"
	"portal/internal/pkg/config"
	"portal/internal/service/orderquery"
	"portal/internal/service/workflow"
	"portal/pkg/logger"
	"portal/pkg/ttlcache"

	"github.com/google/wire"
)

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	client *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideCache,
		provideCleanupInterval,

		provideOrderGateway,

		provideServiceQuery,
		provideServiceWorkflow,

		provideCacheCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceWorkflow), new(*workflow.Service)),
		wire.Bind(new(ServiceQuery), new(*orderquery.Service)),

		wire.Bind(new(workflow.OrderGateway), new(*ordersGateway.Gateway)),
		wire.Bind(new(workflow.Invalidator), new(*orderquery.Service)),
		wire.Bind(new(orderquery.OrderGateway), new(*ordersGateway.Gateway)),
		wire.Bind(new(orderquery.Cache), new(*ttlcache.Cache)),

		wire.Bind(new(cache_cleanup.Cache), new(*ttlcache.Cache)),
	)
	return &Application{}, nil
}
