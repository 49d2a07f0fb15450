package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"storefront/internal/catalog/controller"
	"storefront/internal/catalog/repository"
	"storefront/internal/catalog/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.ProductController {
	repo := repository.NewMySQLProductRepository(db)
	svc := service.NewService(repo)
	return controller.NewProductController(svc, logger)
}
