package models

import (
	"time"

	"github.com/google/uuid"
)

// Статус заказа — строковый тип; значения хранятся так, как их видит фронтенд
type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "Pendente"
	OrderStatusInProcessing OrderStatus = "Em Processamento"
	OrderStatusSeparated    OrderStatus = "Separado"
	OrderStatusDelivered    OrderStatus = "Entregue"
	OrderStatusCancelled    OrderStatus = "Cancelado"
)

// ValidStatus проверяет принадлежность значения к перечислению.
// Переходы между статусами не ограничиваются — любое значение можно
// записать в любой момент.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProcessing, OrderStatusSeparated,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CatalogItem — позиция каталога; колонки сохраняют имена исходной схемы
type CatalogItem struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Code        string    `gorm:"column:codigo;type:text;not null;index"`
	Description string    `gorm:"column:descricao;type:text;not null"`
	Unit        string    `gorm:"column:um;type:text;not null"`
	Location    string    `gorm:"column:endereco;type:text;not null"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (CatalogItem) TableName() string { return "integracao_itens" }

type Order struct {
	ID        uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Code      *string     `gorm:"column:codigo;type:text;index"`
	Date      time.Time   `gorm:"column:data;not null;default:now();index"`
	Requester string      `gorm:"column:solicitante;type:text;not null;index"`
	Status    OrderStatus `gorm:"type:text;not null;default:'Pendente';index"`
	Notes     *string     `gorm:"column:observacoes;type:text"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Items []OrderLineItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"` // каскад на позиции
}

func (Order) TableName() string { return "integracao_pedidos" }

// OrderLineItem принадлежит заказу; создаётся пакетом при создании заказа
// и удаляется только каскадом вместе с заказом.
type OrderLineItem struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID     uuid.UUID `gorm:"column:pedido_id;type:uuid;not null;index"`
	ItemCode    string    `gorm:"column:codigo_item;type:text;not null"`
	Description string    `gorm:"column:descricao;type:text;not null"`
	Quantity    float64   `gorm:"column:quantidade;type:numeric;not null"` // CHECK добавим в миграции
	Unit        string    `gorm:"column:um;type:text;not null"`
	Location    string    `gorm:"column:endereco;type:text;not null"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (OrderLineItem) TableName() string { return "integracao_pedidos_itens" }
