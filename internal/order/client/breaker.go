package client

import (
	"context"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/dto"
)

// BreakerProductClient guards the primary catalog client with a circuit
// breaker. While the circuit is open the fallback client answers instead;
// a failure on a closed circuit is returned to the caller unchanged so a
// single transport error stays distinct from a down dependency.
type BreakerProductClient struct {
	primary  ProductFetcher
	fallback ProductFetcher
	cb       *gobreaker.CircuitBreaker
	logger   *zap.Logger
}

func NewBreakerProductClient(primary, fallback ProductFetcher, cfg config.BreakerConfig, logger *zap.Logger) *BreakerProductClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "catalog",
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("catalog circuit state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &BreakerProductClient{
		primary:  primary,
		fallback: fallback,
		cb:       cb,
		logger:   logger,
	}
}

func (c *BreakerProductClient) GetProductByID(ctx context.Context, productID int) (*dto.ProductResponse, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.primary.GetProductByID(ctx, productID)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return c.fallback.GetProductByID(ctx, productID)
	}
	if err != nil {
		return nil, err
	}

	return result.(*dto.ProductResponse), nil
}
