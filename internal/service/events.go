package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type OrderItemEvent struct {
	ItemCode string  `json:"codigo_item"`
	Quantity float64 `json:"quantidade"`
	Unit     string  `json:"um"`
}

type OrderCreatedEvent struct {
	OrderID   uuid.UUID        `json:"order_id"`
	Code      *string          `json:"codigo,omitempty"`
	Requester string           `json:"solicitante"`
	Items     []OrderItemEvent `json:"itens"`
	CreatedAt time.Time        `json:"created_at"`
}

type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
}
