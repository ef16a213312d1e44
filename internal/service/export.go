package service

import "github.com/esc4n0rx/Integra/internal/models"

type ExportService interface {
	// ExportOrders — книга отчёта: лист-резюме по заказам и лист с позициями
	ExportOrders(orders []models.Order) ([]byte, error)
	// ExportPickList — лист требования для склада по одному заказу
	ExportPickList(order *models.Order) ([]byte, error)
}
