package client

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/dto"
)

// FallbackProductClient always succeeds, answering with the sentinel
// unavailable snapshot. It substitutes for the real client when the
// catalog endpoint is judged unreachable, so the workflow receives a
// snapshot to inspect instead of a transport error.
type FallbackProductClient struct {
	logger *zap.Logger
}

func NewFallbackProductClient(logger *zap.Logger) *FallbackProductClient {
	return &FallbackProductClient{logger: logger}
}

func (c *FallbackProductClient) GetProductByID(ctx context.Context, productID int) (*dto.ProductResponse, error) {
	c.logger.Warn("catalog service unavailable, returning fallback product", zap.Int("productId", productID))

	price := 0.0
	return &dto.ProductResponse{
		ID:          productID,
		ProductName: dto.ProductNameUnavailable,
		Price:       &price,
	}, nil
}
