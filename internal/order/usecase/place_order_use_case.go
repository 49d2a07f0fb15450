package usecase

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/dto"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetAllOrders(ctx context.Context) ([]domain.Order, error)
	GetOrderByID(ctx context.Context, id uint) (*domain.Order, error)
}

type PlaceOrderUseCase struct {
	service OrderService
	logger  *zap.Logger
}

func NewPlaceOrderUseCase(service OrderService, logger *zap.Logger) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		service: service,
		logger:  logger,
	}
}

func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	uc.logger.Info("order placement started",
		zap.Int("productId", req.ProductID), zap.Int("quantity", req.Quantity))

	order := &domain.Order{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	saved, err := uc.service.PlaceOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	resp := toOrderResponse(*saved)
	return &resp, nil
}

func (uc *PlaceOrderUseCase) GetOrders(ctx context.Context) (*dto.OrderListResponse, error) {
	orders, err := uc.service.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}

	return &dto.OrderListResponse{Orders: responses}, nil
}

func (uc *PlaceOrderUseCase) GetOrder(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := uc.service.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toOrderResponse(*order)
	return &resp, nil
}

func toOrderResponse(o domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:         o.ID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
	}
}
