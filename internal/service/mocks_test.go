package service_test

import (
	"context"

	"github.com/esc4n0rx/Integra/internal/models"
	"github.com/esc4n0rx/Integra/internal/repository"

	"github.com/google/uuid"
	gopkgmail "gopkg.in/gomail.v2"
)

// Моки репозиториев в стиле функциональных полей

type MockCatalogRepo struct {
	CreateFunc     func(ctx context.Context, item *models.CatalogItem) error
	BulkCreateFunc func(ctx context.Context, items []models.CatalogItem) error
	GetByCodeFunc  func(ctx context.Context, code string) (*models.CatalogItem, error)
	SearchFunc     func(ctx context.Context, filter string, limit int) ([]models.CatalogItem, error)
}

func (m *MockCatalogRepo) Create(ctx context.Context, item *models.CatalogItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockCatalogRepo) BulkCreate(ctx context.Context, items []models.CatalogItem) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, items)
	}
	return nil
}

func (m *MockCatalogRepo) GetByCode(ctx context.Context, code string) (*models.CatalogItem, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockCatalogRepo) Search(ctx context.Context, filter string, limit int) ([]models.CatalogItem, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter, limit)
	}
	return nil, nil
}

type MockOrderRepo struct {
	CreateFunc       func(ctx context.Context, o *models.Order) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateFieldsFunc func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) (bool, error)
	ListFunc         func(ctx context.Context, f repository.OrderListFilter) ([]models.Order, int64, error)
	ExistsFunc       func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockOrderRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockOrderRepo) List(ctx context.Context, f repository.OrderListFilter) ([]models.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockOrderRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

type MockOrderItemRepo struct {
	BulkCreateFunc     func(ctx context.Context, items []models.OrderLineItem) error
	GetByOrderIDFunc   func(ctx context.Context, orderID uuid.UUID) ([]models.OrderLineItem, error)
	CountByOrderIDFunc func(ctx context.Context, orderID uuid.UUID) (int64, error)
}

func (m *MockOrderItemRepo) BulkCreate(ctx context.Context, items []models.OrderLineItem) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, items)
	}
	return nil
}

func (m *MockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderLineItem, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *MockOrderItemRepo) CountByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	if m.CountByOrderIDFunc != nil {
		return m.CountByOrderIDFunc(ctx, orderID)
	}
	return 0, nil
}

type MockDialer struct {
	DialAndSendFunc func(m ...*gopkgmail.Message) error
}

func (m *MockDialer) DialAndSend(msgs ...*gopkgmail.Message) error {
	if m.DialAndSendFunc != nil {
		return m.DialAndSendFunc(msgs...)
	}
	return nil
}

func newMockRepository(catalog *MockCatalogRepo, orders *MockOrderRepo, items *MockOrderItemRepo) *repository.Repository {
	if catalog == nil {
		catalog = &MockCatalogRepo{}
	}
	if orders == nil {
		orders = &MockOrderRepo{}
	}
	if items == nil {
		items = &MockOrderItemRepo{}
	}
	return &repository.Repository{
		Catalog:    catalog,
		Orders:     orders,
		OrderItems: items,
	}
}
