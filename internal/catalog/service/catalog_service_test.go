package service

import (
	"context"
	"testing"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
)

type mockRepository struct {
	FindByIDFunc func(ctx context.Context, id int) (*domain.Product, error)
	FindAllFunc  func(ctx context.Context) ([]domain.Product, error)
}

func (m *mockRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return m.FindAllFunc(ctx)
}

func TestGetProductByID_ReturnsProduct(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Widget", Price: 9.99}, nil
		},
	}

	svc := NewService(repo)

	product, err := svc.GetProductByID(ctx, 7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if product.ID != 7 || product.Name != "Widget" {
		t.Errorf("unexpected product: %+v", product)
	}
}

func TestGetProductByID_PropagatesNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Product, error) {
			return nil, apperrors.NewNotFoundError("product with id 99 not found")
		},
	}

	svc := NewService(repo)

	_, err := svc.GetProductByID(ctx, 99)
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestGetProducts_ReturnsAll(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: 1, Name: "Widget", Price: 9.99},
				{ID: 2, Name: "Gadget", Price: 4.50},
			}, nil
		},
	}

	svc := NewService(repo)

	products, err := svc.GetProducts(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(products) != 2 {
		t.Errorf("expected 2 products, got %d", len(products))
	}
}
