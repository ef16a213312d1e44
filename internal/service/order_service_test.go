package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/esc4n0rx/Integra/internal/models"
	"github.com/esc4n0rx/Integra/internal/repository"
	"github.com/esc4n0rx/Integra/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validCreateInput() service.CreateOrderInput {
	return service.CreateOrderInput{
		Requester: "Maria",
		Items: []service.CreateOrderItem{
			{Code: "100101", Description: "Caixa 20L", Quantity: 2, Unit: "CX", Location: "A-01-02"},
			{Code: "100102", Description: "Tampa 20L", Quantity: 5, Unit: "UN", Location: "A-01-03"},
		},
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	svc := service.NewOrderService(newMockRepository(nil, nil, nil), nil, zap.NewNop())
	ctx := context.Background()

	in := validCreateInput()
	in.Requester = "  "
	if _, err := svc.CreateOrder(ctx, in); !errors.Is(err, service.ErrRequesterRequired) {
		t.Fatalf("expected ErrRequesterRequired, got %v", err)
	}

	in = validCreateInput()
	in.Items = nil
	if _, err := svc.CreateOrder(ctx, in); !errors.Is(err, service.ErrEmptyItems) {
		t.Fatalf("expected ErrEmptyItems, got %v", err)
	}

	in = validCreateInput()
	in.Items[0].Quantity = 0
	if _, err := svc.CreateOrder(ctx, in); !errors.Is(err, service.ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
}

func TestCreateOrder_PersistsHeaderAndItems(t *testing.T) {
	headerID := uuid.New()
	var gotItems []models.OrderLineItem

	orders := &MockOrderRepo{
		CreateFunc: func(ctx context.Context, o *models.Order) error {
			o.ID = headerID
			return nil
		},
	}
	items := &MockOrderItemRepo{
		BulkCreateFunc: func(ctx context.Context, batch []models.OrderLineItem) error {
			gotItems = batch
			return nil
		},
	}

	svc := service.NewOrderService(newMockRepository(nil, orders, items), nil, zap.NewNop())

	in := validCreateInput()
	ord, err := svc.CreateOrder(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if ord.ID != headerID {
		t.Fatalf("order id mismatch: %s", ord.ID)
	}
	if ord.Status != models.OrderStatusPending {
		t.Fatalf("new order must be Pendente, got %s", ord.Status)
	}
	if len(ord.Items) != len(in.Items) || len(gotItems) != len(in.Items) {
		t.Fatalf("expected %d items, got %d persisted / %d returned", len(in.Items), len(gotItems), len(ord.Items))
	}
	for i, it := range gotItems {
		if it.OrderID != headerID {
			t.Fatalf("item %d not linked to header: %s", i, it.OrderID)
		}
		if it.ItemCode != in.Items[i].Code || it.Quantity != in.Items[i].Quantity {
			t.Fatalf("item %d mismatch: %+v", i, it)
		}
	}
}

func TestCreateOrder_RollsBackHeaderOnItemFailure(t *testing.T) {
	headerID := uuid.New()
	storeErr := errors.New("insert failed")
	deletedID := uuid.Nil

	orders := &MockOrderRepo{
		CreateFunc: func(ctx context.Context, o *models.Order) error {
			o.ID = headerID
			return nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) (bool, error) {
			deletedID = id
			return true, nil
		},
	}
	items := &MockOrderItemRepo{
		BulkCreateFunc: func(ctx context.Context, batch []models.OrderLineItem) error {
			return storeErr
		},
	}

	svc := service.NewOrderService(newMockRepository(nil, orders, items), nil, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), validCreateInput())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error surfaced, got %v", err)
	}
	if deletedID != headerID {
		t.Fatalf("compensating delete must target the new header, got %s", deletedID)
	}
}

func TestCreateOrder_RollbackFailureStillSurfacesStoreError(t *testing.T) {
	storeErr := errors.New("insert failed")

	orders := &MockOrderRepo{
		CreateFunc: func(ctx context.Context, o *models.Order) error {
			o.ID = uuid.New()
			return nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return false, errors.New("delete failed too")
		},
	}
	items := &MockOrderItemRepo{
		BulkCreateFunc: func(ctx context.Context, batch []models.OrderLineItem) error {
			return storeErr
		},
	}

	svc := service.NewOrderService(newMockRepository(nil, orders, items), nil, zap.NewNop())

	if _, err := svc.CreateOrder(context.Background(), validCreateInput()); !errors.Is(err, storeErr) {
		t.Fatalf("expected original store error, got %v", err)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	svc := service.NewOrderService(newMockRepository(nil, &MockOrderRepo{}, nil), nil, zap.NewNop())
	if _, err := svc.GetOrder(context.Background(), uuid.New()); !errors.Is(err, service.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestUpdateOrder_PartialFields(t *testing.T) {
	orderID := uuid.New()
	var gotFields map[string]any

	orders := &MockOrderRepo{
		ExistsFunc: func(ctx context.Context, id uuid.UUID) (bool, error) { return true, nil },
		UpdateFieldsFunc: func(ctx context.Context, id uuid.UUID, fields map[string]any) error {
			gotFields = fields
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			return &models.Order{ID: orderID, Requester: "Maria", Status: models.OrderStatusSeparated}, nil
		},
	}

	svc := service.NewOrderService(newMockRepository(nil, orders, nil), nil, zap.NewNop())

	st := models.OrderStatusSeparated
	if _, err := svc.UpdateOrder(context.Background(), orderID, service.UpdateOrderInput{Status: &st}); err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}

	if gotFields["status"] != st {
		t.Fatalf("status not applied: %v", gotFields)
	}
	if _, ok := gotFields["observacoes"]; ok {
		t.Fatalf("omitted notes must stay untouched: %v", gotFields)
	}
}

func TestUpdateOrder_InvalidStatus(t *testing.T) {
	orders := &MockOrderRepo{
		ExistsFunc: func(ctx context.Context, id uuid.UUID) (bool, error) { return true, nil },
	}
	svc := service.NewOrderService(newMockRepository(nil, orders, nil), nil, zap.NewNop())

	st := models.OrderStatus("Finalizado")
	if _, err := svc.UpdateOrder(context.Background(), uuid.New(), service.UpdateOrderInput{Status: &st}); !errors.Is(err, service.ErrStatusInvalid) {
		t.Fatalf("expected ErrStatusInvalid, got %v", err)
	}
}

func TestUpdateOrder_NotFound(t *testing.T) {
	svc := service.NewOrderService(newMockRepository(nil, &MockOrderRepo{}, nil), nil, zap.NewNop())
	if _, err := svc.UpdateOrder(context.Background(), uuid.New(), service.UpdateOrderInput{}); !errors.Is(err, service.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestDeleteOrder_NotFound(t *testing.T) {
	svc := service.NewOrderService(newMockRepository(nil, &MockOrderRepo{}, nil), nil, zap.NewNop())
	if err := svc.DeleteOrder(context.Background(), uuid.New()); !errors.Is(err, service.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestListOrders_DefaultsPagination(t *testing.T) {
	var gotFilter repository.OrderListFilter
	orders := &MockOrderRepo{
		ListFunc: func(ctx context.Context, f repository.OrderListFilter) ([]models.Order, int64, error) {
			gotFilter = f
			return []models.Order{}, 0, nil
		},
	}
	svc := service.NewOrderService(newMockRepository(nil, orders, nil), nil, zap.NewNop())

	if _, _, err := svc.ListOrders(context.Background(), service.ListFilter{Limit: 0, Offset: -3}); err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if gotFilter.Limit != 50 || gotFilter.Offset != 0 {
		t.Fatalf("defaults not applied: %+v", gotFilter)
	}
}
