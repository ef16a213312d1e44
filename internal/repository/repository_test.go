package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/esc4n0rx/Integra/internal/migrate"
	"github.com/esc4n0rx/Integra/internal/models"
	"github.com/esc4n0rx/Integra/internal/repository"
	"github.com/esc4n0rx/Integra/pkg/testutil"

	"go.uber.org/zap"
)

func setupRepository(t *testing.T) *repository.Repository {
	t.Helper()
	db := testutil.SetupTestPostgres(t)
	if err := migrate.MigrateIntegraDB(context.Background(), db, zap.NewNop(), migrate.DefaultMigrateOptions()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.New(db)
}

func createOrder(t *testing.T, repo *repository.Repository, requester string, date time.Time, status models.OrderStatus) *models.Order {
	t.Helper()
	ctx := context.Background()
	ord := &models.Order{Requester: requester, Date: date, Status: status}
	if err := repo.Orders.Create(ctx, ord); err != nil {
		t.Fatalf("create order: %v", err)
	}
	items := []models.OrderLineItem{
		{OrderID: ord.ID, ItemCode: "100101", Description: "Caixa 20L", Quantity: 2, Unit: "CX", Location: "A-01-02"},
		{OrderID: ord.ID, ItemCode: "100102", Description: "Tampa 20L", Quantity: 5, Unit: "UN", Location: "A-01-03"},
	}
	if err := repo.OrderItems.BulkCreate(ctx, items); err != nil {
		t.Fatalf("create items: %v", err)
	}
	return ord
}

func TestOrderLifecycle(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	ord := createOrder(t, repo, "Maria", time.Now(), models.OrderStatusPending)

	got, err := repo.Orders.GetByID(ctx, ord.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || len(got.Items) != 2 {
		t.Fatalf("expected order with 2 items, got %+v", got)
	}

	if err := repo.Orders.UpdateFields(ctx, ord.ID, map[string]any{
		"status": models.OrderStatusSeparated, "observacoes": "conferido",
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = repo.Orders.GetByID(ctx, ord.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Status != models.OrderStatusSeparated || got.Notes == nil || *got.Notes != "conferido" {
		t.Fatalf("fields not applied: %+v", got)
	}

	ok, err := repo.Orders.Delete(ctx, ord.ID)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	ok, err = repo.Orders.Delete(ctx, ord.ID)
	if err != nil || ok {
		t.Fatalf("second delete must report nothing removed: ok=%v err=%v", ok, err)
	}
}

func TestOrderDeleteCascadesItems(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	ord := createOrder(t, repo, "Maria", time.Now(), models.OrderStatusPending)

	if _, err := repo.Orders.Delete(ctx, ord.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	cnt, err := repo.OrderItems.CountByOrderID(ctx, ord.ID)
	if err != nil {
		t.Fatalf("count items: %v", err)
	}
	if cnt != 0 {
		t.Fatalf("items must be removed by cascade, %d remain", cnt)
	}
}

func TestOrderListFilters(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	day1 := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	day2End := time.Date(2026, 3, 11, 23, 59, 0, 0, time.UTC)
	day3 := time.Date(2026, 3, 12, 0, 30, 0, 0, time.UTC)

	createOrder(t, repo, "Maria Silva", day1, models.OrderStatusPending)
	createOrder(t, repo, "João Souza", day2End, models.OrderStatusSeparated)
	createOrder(t, repo, "Maria Costa", day3, models.OrderStatusPending)

	// dataFim покрывает весь указанный день, но не следующий
	to := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	list, total, err := repo.Orders.List(ctx, repository.OrderListFilter{DateTo: &to})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Fatalf("upper bound must include the whole day: total=%d", total)
	}

	from := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	_, total, err = repo.Orders.List(ctx, repository.OrderListFilter{DateFrom: &from})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 {
		t.Fatalf("lower bound mismatch: total=%d", total)
	}

	_, total, err = repo.Orders.List(ctx, repository.OrderListFilter{Requester: "maria"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 {
		t.Fatalf("requester filter must be case-insensitive substring: total=%d", total)
	}

	st := models.OrderStatusSeparated
	list, total, err = repo.Orders.List(ctx, repository.OrderListFilter{Status: &st})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || list[0].Requester != "João Souza" {
		t.Fatalf("status filter mismatch: total=%d", total)
	}

	// сортировка по дате убыванием
	list, _, err = repo.Orders.List(ctx, repository.OrderListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 || !list[0].Date.After(list[1].Date) || !list[1].Date.After(list[2].Date) {
		t.Fatalf("orders must come newest first")
	}
}

func TestCatalogSearch(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	items := []models.CatalogItem{
		{Code: "100101", Description: "Caixa Plástica 20L", Unit: "CX", Location: "A-01-02"},
		{Code: "100102", Description: "Tampa da Caixa", Unit: "UN", Location: "A-01-03"},
		{Code: "200201", Description: "Etiqueta", Unit: "UN", Location: "B-02-01"},
	}
	if err := repo.Catalog.BulkCreate(ctx, items); err != nil {
		t.Fatalf("bulk create: %v", err)
	}

	got, err := repo.Catalog.GetByCode(ctx, "100101")
	if err != nil {
		t.Fatalf("get by code: %v", err)
	}
	if got == nil || got.Description != "Caixa Plástica 20L" {
		t.Fatalf("unexpected item: %+v", got)
	}

	got, err = repo.Catalog.GetByCode(ctx, "999999")
	if err != nil {
		t.Fatalf("get by code: %v", err)
	}
	if got != nil {
		t.Fatalf("missing code must return nil, got %+v", got)
	}

	found, err := repo.Catalog.Search(ctx, "caixa", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("substring search on code and description, got %d", len(found))
	}

	found, err = repo.Catalog.Search(ctx, "caixa", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("limit must cap results, got %d", len(found))
	}
}
