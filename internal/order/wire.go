package order

import (
	"database/sql"

	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/order/client"
	"storefront/internal/order/controller"
	"storefront/internal/order/repository"
	"storefront/internal/order/service"
	"storefront/internal/order/usecase"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.OrderController {
	orderRepo := repository.NewMySQLOrderRepository(db)

	httpClient := client.NewHTTPProductClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, logger)
	fallback := client.NewFallbackProductClient(logger)
	fetcher := client.NewBreakerProductClient(httpClient, fallback, cfg.Breaker, logger)

	svc := service.NewOrderService(orderRepo, fetcher, logger)
	uc := usecase.NewPlaceOrderUseCase(svc, logger)

	return controller.NewOrderController(uc, logger)
}
