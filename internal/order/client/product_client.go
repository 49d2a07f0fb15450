package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"storefront/internal/dto"
)

// ProductFetcher is the order service's view of the catalog service. The
// placement workflow depends only on this contract and never knows which
// implementation answers.
type ProductFetcher interface {
	GetProductByID(ctx context.Context, productID int) (*dto.ProductResponse, error)
}

// HTTPProductClient fetches product snapshots from the catalog service over
// HTTP. Transport failures are logged here and returned as errors; the
// caller treats any error as absence of a snapshot.
type HTTPProductClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPProductClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPProductClient {
	return &HTTPProductClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *HTTPProductClient) GetProductByID(ctx context.Context, productID int) (*dto.ProductResponse, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("catalog request failed", zap.Int("productId", productID), zap.Error(err))
		return nil, fmt.Errorf("calling catalog service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("catalog returned non-ok status",
			zap.Int("productId", productID), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}

	var product dto.ProductResponse
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		c.logger.Warn("decoding catalog response failed", zap.Int("productId", productID), zap.Error(err))
		return nil, fmt.Errorf("decoding catalog response: %w", err)
	}

	return &product, nil
}
