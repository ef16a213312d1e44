package service

import (
	"math/rand"
	"time"

	"github.com/esc4n0rx/Integra/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Resumo Pedidos"
	detailsSheet  = "Detalhes Itens"
	pickListSheet = "Requisição"
)

type exportService struct{}

func NewExportService() ExportService { return &exportService{} }

func (s *exportService) ExportOrders(orders []models.Order) ([]byte, error) {
	if len(orders) == 0 {
		return nil, ErrEmptyExport
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(detailsSheet); err != nil {
		return nil, err
	}

	summaryHeader := []any{"Código", "Data", "Solicitante", "Status", "Observações", "Quantidade de Itens", "Total de Itens"}
	if err := f.SetSheetRow(summarySheet, "A1", &summaryHeader); err != nil {
		return nil, err
	}

	detailsHeader := []any{"Código Pedido", "Data Pedido", "Solicitante", "Status", "Código Item", "Descrição", "Quantidade", "UM", "Endereço"}
	if err := f.SetSheetRow(detailsSheet, "A1", &detailsHeader); err != nil {
		return nil, err
	}

	detailRow := 2
	for i, ord := range orders {
		totalQty := 0.0
		for _, it := range ord.Items {
			totalQty += it.Quantity
		}
		row := []any{
			orderCode(&ord),
			formatDateTime(ord.Date),
			ord.Requester,
			string(ord.Status),
			orderNotes(&ord),
			len(ord.Items),
			totalQty,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}

		for _, it := range ord.Items {
			row := []any{
				orderCode(&ord),
				formatDateTime(ord.Date),
				ord.Requester,
				string(ord.Status),
				it.ItemCode,
				it.Description,
				it.Quantity,
				it.Unit,
				it.Location,
			}
			cell, err := excelize.CoordinatesToCellName(1, detailRow)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(detailsSheet, cell, &row); err != nil {
				return nil, err
			}
			detailRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pickListWidths — подсказки ширины колонок листа требования
var pickListWidths = []float64{15, 15, 15, 10, 20, 15, 40, 10, 10, 10, 10, 10, 20}

func (s *exportService) ExportPickList(order *models.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", pickListSheet)

	header := []any{"Loja", "Remessa", "Local", "Ordem", "Posição Depósito", "Código",
		"Descrição do Produto", "UM", "Qtde Emb", "Qtde CX", "Qtde UM", "Estoque", "EAN"}
	if err := f.SetSheetRow(pickListSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, w := range pickListWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(pickListSheet, col, col, w); err != nil {
			return nil, err
		}
	}

	// номер отгрузки общий для всего экспорта, EAN и порядок — на строку
	shipment := randomDigits(8)
	for i, it := range order.Items {
		row := []any{
			"PRODUÇÃO",
			shipment,
			"Sem Local",
			rand.Intn(100) + 1,
			it.Location,
			it.ItemCode,
			it.Description,
			it.Unit,
			it.Quantity,
			it.Quantity,
			it.Quantity,
			10000,
			randomDigits(14),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(pickListSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func randomDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}

func formatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func orderCode(o *models.Order) string {
	if o.Code != nil {
		return *o.Code
	}
	return ""
}

func orderNotes(o *models.Order) string {
	if o.Notes != nil {
		return *o.Notes
	}
	return ""
}
