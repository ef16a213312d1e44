package service

import (
	"context"

	"github.com/esc4n0rx/Integra/internal/models"
	"github.com/esc4n0rx/Integra/internal/repository"
)

const defaultSearchLimit = 20

type catalogService struct {
	repo *repository.Repository
}

func NewCatalogService(repo *repository.Repository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) GetByCode(ctx context.Context, code string) (*models.CatalogItem, error) {
	item, err := s.repo.Catalog.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *catalogService) Search(ctx context.Context, filter string, limit int) ([]models.CatalogItem, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.repo.Catalog.Search(ctx, filter, limit)
}
