package repository

import (
	"context"

	"github.com/esc4n0rx/Integra/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemRepo interface {
	BulkCreate(ctx context.Context, items []models.OrderLineItem) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderLineItem, error)
	CountByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type orderItemRepo struct{ db *gorm.DB }

func NewOrderItemRepo(db *gorm.DB) OrderItemRepo { return &orderItemRepo{db: db} }

func (r *orderItemRepo) BulkCreate(ctx context.Context, items []models.OrderLineItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *orderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderLineItem, error) {
	var rows []models.OrderLineItem
	err := r.db.WithContext(ctx).Where("pedido_id = ?", orderID).Order("created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *orderItemRepo) CountByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.OrderLineItem{}).Where("pedido_id = ?", orderID).Count(&cnt).Error
	return cnt, err
}
