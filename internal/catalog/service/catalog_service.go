package service

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type CatalogService struct {
	repo Repository
}

func NewService(repo Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}
