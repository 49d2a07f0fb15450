package service

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
)

type ProductFetcher interface {
	GetProductByID(ctx context.Context, productID int) (*dto.ProductResponse, error)
}

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
}

type OrderService struct {
	orders   OrderRepository
	products ProductFetcher
	logger   *zap.Logger
}

func NewOrderService(orders OrderRepository, products ProductFetcher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		logger:   logger,
	}
}

// PlaceOrder prices and persists the order. Each gate is checked in order:
// the snapshot must exist, must not be the fallback sentinel, and must
// carry a positive price. The order is written only after all gates pass.
func (s *OrderService) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	product := s.fetchProduct(ctx, order.ProductID)

	if product == nil {
		return nil, apperrors.NewPlacementError(apperrors.ProductLookupFailed,
			"Unable to fetch product details.")
	}

	if product.IsFallback() {
		return nil, apperrors.NewPlacementError(apperrors.CatalogUnavailable,
			"Product Service is currently unavailable. Try again later.")
	}

	if product.Price == nil || *product.Price <= 0.0 {
		return nil, apperrors.NewPlacementError(apperrors.InvalidPrice,
			"Invalid product price. Order cannot be placed.")
	}

	order.TotalPrice = *product.Price * float64(order.Quantity)

	saved, err := s.orders.Save(ctx, order)
	if err != nil {
		return nil, apperrors.NewInternalError("saving order", err)
	}

	s.logger.Info("order placed",
		zap.Uint("orderId", saved.ID),
		zap.Int("productId", saved.ProductID),
		zap.Int("quantity", saved.Quantity),
		zap.Float64("totalPrice", saved.TotalPrice),
	)

	return saved, nil
}

// fetchProduct makes a single lookup attempt and maps any error to absence.
// The client has already logged the cause at the transport boundary, so
// only the absence reaches the decision logic.
func (s *OrderService) fetchProduct(ctx context.Context, productID int) *dto.ProductResponse {
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil
	}
	return product
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) GetOrderByID(ctx context.Context, id uint) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}
