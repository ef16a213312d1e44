package service

import (
	"context"
	"time"

	"github.com/esc4n0rx/Integra/internal/models"

	"github.com/google/uuid"
)

type CreateOrderItem struct {
	Code        string
	Description string
	Quantity    float64
	Unit        string
	Location    string
}

type CreateOrderInput struct {
	Code      *string
	Date      *time.Time // nil — используем текущее время
	Requester string
	Notes     *string
	Items     []CreateOrderItem
}

type UpdateOrderInput struct {
	Status *models.OrderStatus
	Notes  *string
}

type ListFilter struct {
	Code      string
	Requester string
	Status    *models.OrderStatus
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	Offset    int
}

type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, in UpdateOrderInput) (*models.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
	ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error)
}
