package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"storefront/internal/dto"
)

func TestHTTPProductClient_GetProductByID(t *testing.T) {
	t.Run("decodes a product snapshot", func(t *testing.T) {
		catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/products/7" {
				t.Errorf("expected /products/7, got %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"productName":"Widget","price":9.99}`))
		}))
		defer catalog.Close()

		c := NewHTTPProductClient(catalog.URL, time.Second, zap.NewNop())

		product, err := c.GetProductByID(context.Background(), 7)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if product.ID != 7 || product.ProductName != "Widget" {
			t.Errorf("unexpected snapshot: %+v", product)
		}

		if product.Price == nil || *product.Price != 9.99 {
			t.Errorf("expected price 9.99, got %v", product.Price)
		}
	})

	t.Run("null price decodes to nil", func(t *testing.T) {
		catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":7,"productName":"Widget","price":null}`))
		}))
		defer catalog.Close()

		c := NewHTTPProductClient(catalog.URL, time.Second, zap.NewNop())

		product, err := c.GetProductByID(context.Background(), 7)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if product.Price != nil {
			t.Errorf("expected nil price, got %v", *product.Price)
		}
	})

	t.Run("returns error on remote 5xx", func(t *testing.T) {
		catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer catalog.Close()

		c := NewHTTPProductClient(catalog.URL, time.Second, zap.NewNop())

		if _, err := c.GetProductByID(context.Background(), 7); err == nil {
			t.Errorf("expected error, got nil")
		}
	})

	t.Run("returns error on malformed body", func(t *testing.T) {
		catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer catalog.Close()

		c := NewHTTPProductClient(catalog.URL, time.Second, zap.NewNop())

		if _, err := c.GetProductByID(context.Background(), 7); err == nil {
			t.Errorf("expected error, got nil")
		}
	})

	t.Run("returns error when the call times out", func(t *testing.T) {
		catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{"id":7,"productName":"Widget","price":9.99}`))
		}))
		defer catalog.Close()

		c := NewHTTPProductClient(catalog.URL, 20*time.Millisecond, zap.NewNop())

		if _, err := c.GetProductByID(context.Background(), 7); err == nil {
			t.Errorf("expected timeout error, got nil")
		}
	})

	t.Run("returns error when the endpoint is unreachable", func(t *testing.T) {
		c := NewHTTPProductClient("http://127.0.0.1:1", 100*time.Millisecond, zap.NewNop())

		if _, err := c.GetProductByID(context.Background(), 7); err == nil {
			t.Errorf("expected connection error, got nil")
		}
	})
}

func TestFallbackProductClient_GetProductByID(t *testing.T) {
	c := NewFallbackProductClient(zap.NewNop())

	product, err := c.GetProductByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if product.ID != 7 {
		t.Errorf("expected id 7, got %d", product.ID)
	}

	if product.ProductName != dto.ProductNameUnavailable {
		t.Errorf("expected sentinel name, got %q", product.ProductName)
	}

	if product.Price == nil || *product.Price != 0.0 {
		t.Errorf("expected price 0.0, got %v", product.Price)
	}

	if !product.IsFallback() {
		t.Errorf("expected snapshot to identify as fallback")
	}
}
