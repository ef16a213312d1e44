package dto

import (
	"time"

	"github.com/esc4n0rx/Integra/internal/models"
)

// ItemPedidoRequest — позиция заказа в формате фронтенда
type ItemPedidoRequest struct {
	Codigo        string  `json:"codigo"`
	Descricao     string  `json:"descricao"`
	Quantidade    float64 `json:"quantidade"`
	UnidadeMedida string  `json:"unidadeMedida"`
	Endereco      string  `json:"endereco"`
}

type CreatePedidoRequest struct {
	Codigo      *string             `json:"codigo"`
	Data        *time.Time          `json:"data"`
	Solicitante string              `json:"solicitante"`
	Observacoes *string             `json:"observacoes"`
	Itens       []ItemPedidoRequest `json:"itens"`
}

type UpdatePedidoRequest struct {
	Status      *string `json:"status"`
	Observacoes *string `json:"observacoes"`
}

type CreatePedidoResponse struct {
	ID     string    `json:"id"`
	Codigo *string   `json:"codigo"`
	Data   time.Time `json:"data"`
}

type ItemPedidoResponse struct {
	Codigo        string  `json:"codigo"`
	Descricao     string  `json:"descricao"`
	Quantidade    float64 `json:"quantidade"`
	UnidadeMedida string  `json:"unidadeMedida"`
	Endereco      string  `json:"endereco"`
}

type PedidoResponse struct {
	ID          string               `json:"id"`
	Codigo      *string              `json:"codigo"`
	Data        time.Time            `json:"data"`
	Solicitante string               `json:"solicitante"`
	Status      string               `json:"status"`
	Observacoes *string              `json:"observacoes"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Itens       []ItemPedidoResponse `json:"itens"`
}

// ExportPedidosRequest — явный список заказов или критерии фильтра
type ExportPedidosRequest struct {
	Pedidos []PedidoResponse      `json:"pedidos"`
	Filtros *ExportPedidosFiltros `json:"filtros"`
}

type ExportPedidosFiltros struct {
	Codigo      string `json:"codigo"`
	Solicitante string `json:"solicitante"`
	Status      string `json:"status"`
	DataInicio  string `json:"dataInicio"`
	DataFim     string `json:"dataFim"`
}

type EmailExportRequest struct {
	PedidoID      string   `json:"pedidoId"`
	Destinatarios []string `json:"destinatarios"`
}

type EmailExportResponse struct {
	EmailID  string `json:"emailId"`
	Filename string `json:"filename"`
}

// FromOrder — единственная точка проекции модели заказа в формат API
func FromOrder(o *models.Order) PedidoResponse {
	itens := make([]ItemPedidoResponse, 0, len(o.Items))
	for _, it := range o.Items {
		itens = append(itens, ItemPedidoResponse{
			Codigo:        it.ItemCode,
			Descricao:     it.Description,
			Quantidade:    it.Quantity,
			UnidadeMedida: it.Unit,
			Endereco:      it.Location,
		})
	}
	return PedidoResponse{
		ID:          o.ID.String(),
		Codigo:      o.Code,
		Data:        o.Date,
		Solicitante: o.Requester,
		Status:      string(o.Status),
		Observacoes: o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Itens:       itens,
	}
}

func FromOrders(orders []models.Order) []PedidoResponse {
	out := make([]PedidoResponse, 0, len(orders))
	for i := range orders {
		out = append(out, FromOrder(&orders[i]))
	}
	return out
}

// ToOrder — обратная проекция для экспорта по явному списку, когда
// добираться до базы не нужно
func ToOrder(p *PedidoResponse) models.Order {
	items := make([]models.OrderLineItem, 0, len(p.Itens))
	for _, it := range p.Itens {
		items = append(items, models.OrderLineItem{
			ItemCode:    it.Codigo,
			Description: it.Descricao,
			Quantity:    it.Quantidade,
			Unit:        it.UnidadeMedida,
			Location:    it.Endereco,
		})
	}
	status := models.OrderStatus(p.Status)
	if p.Status == "" {
		status = models.OrderStatusPending
	}
	return models.Order{
		Code:      p.Codigo,
		Date:      p.Data,
		Requester: p.Solicitante,
		Status:    status,
		Notes:     p.Observacoes,
		Items:     items,
	}
}

func ToOrders(pedidos []PedidoResponse) []models.Order {
	out := make([]models.Order, 0, len(pedidos))
	for i := range pedidos {
		out = append(out, ToOrder(&pedidos[i]))
	}
	return out
}
