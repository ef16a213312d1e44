package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/esc4n0rx/Integra/internal/dto"
	"github.com/esc4n0rx/Integra/internal/models"
	"github.com/esc4n0rx/Integra/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportListLimit — верхняя граница выборки при экспорте по фильтрам
const exportListLimit = 1000

type ExportHandler struct {
	orders service.OrderService
	export service.ExportService
	mail   service.MailService
	log    *zap.Logger
}

func NewExportHandler(orders service.OrderService, export service.ExportService, mail service.MailService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{orders: orders, export: export, mail: mail, log: log}
}

// Export отдаёт книгу отчёта по явному списку заказов либо по фильтрам
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportPedidosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Corpo da requisição inválido"))
		return
	}

	var orders []models.Order
	if len(req.Pedidos) > 0 {
		orders = dto.ToOrders(req.Pedidos)
	} else if req.Filtros != nil {
		filter, err := filterFromExportRequest(req.Filtros)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
			return
		}
		orders, _, err = h.orders.ListOrders(c.Request.Context(), filter)
		if err != nil {
			h.log.Error("export list failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.Fail("Erro ao buscar pedidos"))
			return
		}
	}

	data, err := h.export.ExportOrders(orders)
	if err != nil {
		if statusFor(err) == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, dto.Fail("Nenhum pedido para exportar"))
			return
		}
		h.log.Error("export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Fail("Erro ao processar a exportação"))
		return
	}

	filename := fmt.Sprintf("relatorio-pedidos-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// EmailExport отправляет лист требования вложением на указанные адреса
func (h *ExportHandler) EmailExport(c *gin.Context) {
	var req dto.EmailExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Corpo da requisição inválido"))
		return
	}
	if req.PedidoID == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("ID do pedido é obrigatório"))
		return
	}

	orderID, err := uuid.Parse(req.PedidoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID do pedido inválido"))
		return
	}

	result, err := h.mail.Send(c.Request.Context(), orderID, req.Destinatarios)
	if err != nil {
		switch statusFor(err) {
		case http.StatusNotFound:
			c.JSON(http.StatusNotFound, dto.Fail("Pedido não encontrado"))
		case http.StatusBadRequest:
			c.JSON(http.StatusBadRequest, dto.Fail("Destinatário de email não configurado"))
		default:
			h.log.Error("email export failed", zap.String("pedido_id", req.PedidoID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.Fail("Erro ao enviar pedido por email"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Pedido enviado por email com sucesso", dto.EmailExportResponse{
		EmailID:  result.MessageID,
		Filename: result.Filename,
	}))
}

func filterFromExportRequest(f *dto.ExportPedidosFiltros) (service.ListFilter, error) {
	out := service.ListFilter{
		Code:      f.Codigo,
		Requester: f.Solicitante,
		Limit:     exportListLimit,
	}
	if f.Status != "" {
		st := models.OrderStatus(f.Status)
		out.Status = &st
	}
	var err error
	if out.DateFrom, err = parseDateParam(f.DataInicio); err != nil {
		return out, err
	}
	if out.DateTo, err = parseDateParam(f.DataFim); err != nil {
		return out, err
	}
	return out, nil
}
