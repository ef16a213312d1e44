package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/esc4n0rx/Integra/internal/models"

	"gorm.io/gorm"
)

type CatalogRepo interface {
	Create(ctx context.Context, item *models.CatalogItem) error
	BulkCreate(ctx context.Context, items []models.CatalogItem) error
	GetByCode(ctx context.Context, code string) (*models.CatalogItem, error)
	Search(ctx context.Context, filter string, limit int) ([]models.CatalogItem, error)
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepo(db *gorm.DB) CatalogRepo { return &catalogRepo{db: db} }

func (r *catalogRepo) Create(ctx context.Context, item *models.CatalogItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *catalogRepo) BulkCreate(ctx context.Context, items []models.CatalogItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// GetByCode — точное совпадение кода; nil без ошибки, если записи нет
func (r *catalogRepo) GetByCode(ctx context.Context, code string) (*models.CatalogItem, error) {
	var item models.CatalogItem
	err := r.db.WithContext(ctx).First(&item, "codigo = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepo) Search(ctx context.Context, filter string, limit int) ([]models.CatalogItem, error) {
	q := r.db.WithContext(ctx).Model(&models.CatalogItem{})

	if s := strings.TrimSpace(filter); s != "" {
		q = q.Where("lower(codigo) LIKE lower(?) OR lower(descricao) LIKE lower(?)", "%"+s+"%", "%"+s+"%")
	}

	if limit <= 0 {
		limit = 20
	}

	var list []models.CatalogItem
	err := q.Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}
