package service

import (
	"context"

	"github.com/esc4n0rx/Integra/internal/models"
)

type CatalogService interface {
	GetByCode(ctx context.Context, code string) (*models.CatalogItem, error)
	Search(ctx context.Context, filter string, limit int) ([]models.CatalogItem, error)
}
