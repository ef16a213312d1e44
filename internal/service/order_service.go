package service

import (
	"context"
	"strings"
	"time"

	"github.com/esc4n0rx/Integra/internal/models"
	"github.com/esc4n0rx/Integra/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type orderService struct {
	repo   *repository.Repository
	events EventBus
	log    *zap.Logger
	now    func() time.Time
}

func NewOrderService(repo *repository.Repository, events EventBus, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		events: events,
		log:    log,
		now:    time.Now,
	}
}

// CreateOrder вставляет заголовок, затем позиции одним пакетом.
// Если вставка позиций не удалась, заголовок удаляется компенсирующим
// делитом, чтобы не оставался заказ без позиций.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if strings.TrimSpace(in.Requester) == "" {
		return nil, ErrRequesterRequired
	}
	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, ErrQuantityInvalid
		}
	}

	date := s.now()
	if in.Date != nil {
		date = *in.Date
	}

	order := &models.Order{
		Code:      in.Code,
		Date:      date,
		Requester: in.Requester,
		Status:    models.OrderStatusPending,
		Notes:     in.Notes,
	}

	if err := s.repo.Orders.Create(ctx, order); err != nil {
		return nil, err
	}

	itemsDB := make([]models.OrderLineItem, 0, len(in.Items))
	for _, it := range in.Items {
		itemsDB = append(itemsDB, models.OrderLineItem{
			OrderID:     order.ID,
			ItemCode:    it.Code,
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			Location:    it.Location,
		})
	}

	if err := s.repo.OrderItems.BulkCreate(ctx, itemsDB); err != nil {
		// Компенсация: убираем только что созданный заголовок.
		// Неудача самого отката не меняет итоговую ошибку, но должна быть видна в логе.
		if ok, delErr := s.repo.Orders.Delete(ctx, order.ID); delErr != nil || !ok {
			s.log.Warn("rollback of order header failed, orphan header may remain",
				zap.String("order_id", order.ID.String()),
				zap.Bool("deleted", ok),
				zap.Error(delErr))
		}
		return nil, err
	}

	order.Items = itemsDB

	if s.events != nil {
		evItems := make([]OrderItemEvent, 0, len(itemsDB))
		for _, it := range itemsDB {
			evItems = append(evItems, OrderItemEvent{
				ItemCode: it.ItemCode,
				Quantity: it.Quantity,
				Unit:     it.Unit,
			})
		}
		_ = s.events.PublishOrderCreated(ctx, OrderCreatedEvent{
			OrderID:   order.ID,
			Code:      order.Code,
			Requester: order.Requester,
			Items:     evItems,
			CreatedAt: order.Date,
		})
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	ord, err := s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

// UpdateOrder применяет только переданные поля; отсутствующие не трогаются
func (s *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, in UpdateOrderInput) (*models.Order, error) {
	ok, err := s.repo.Orders.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderNotFound
	}

	fields := map[string]any{}
	if in.Status != nil {
		if !models.ValidStatus(*in.Status) {
			return nil, ErrStatusInvalid
		}
		fields["status"] = *in.Status
	}
	if in.Notes != nil {
		fields["observacoes"] = *in.Notes
	}

	if len(fields) > 0 {
		fields["updated_at"] = s.now()
		if err := s.repo.Orders.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.GetOrder(ctx, id)
}

// DeleteOrder удаляет заголовок; позиции убирает каскад в БД
func (s *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotFound
	}
	return nil
}

func (s *orderService) ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	return s.repo.Orders.List(ctx, repository.OrderListFilter{
		Code:      f.Code,
		Requester: f.Requester,
		Status:    f.Status,
		DateFrom:  f.DateFrom,
		DateTo:    f.DateTo,
		Limit:     f.Limit,
		Offset:    f.Offset,
	})
}
