package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/esc4n0rx/Integra/internal/dto"
	"github.com/esc4n0rx/Integra/internal/models"
	"github.com/esc4n0rx/Integra/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	svc service.OrderService
	log *zap.Logger
}

func NewOrderHandler(svc service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Corpo da requisição inválido"))
		return
	}

	items := make([]service.CreateOrderItem, 0, len(req.Itens))
	for _, it := range req.Itens {
		items = append(items, service.CreateOrderItem{
			Code:        it.Codigo,
			Description: it.Descricao,
			Quantity:    it.Quantidade,
			Unit:        it.UnidadeMedida,
			Location:    it.Endereco,
		})
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), service.CreateOrderInput{
		Code:      req.Codigo,
		Date:      req.Data,
		Requester: req.Solicitante,
		Notes:     req.Observacoes,
		Items:     items,
	})
	if err != nil {
		status := statusFor(err)
		if status == http.StatusBadRequest {
			c.JSON(status, dto.Fail("Dados incompletos. Solicitante e pelo menos um item são obrigatórios"))
			return
		}
		h.log.Error("order creation failed", zap.Error(err))
		c.JSON(status, dto.Fail("Erro ao criar pedido"))
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Pedido criado com sucesso", dto.CreatePedidoResponse{
		ID:     order.ID.String(),
		Codigo: order.Code,
		Data:   order.Date,
	}))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID do pedido inválido"))
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.respondOrderError(c, err, "order fetch failed")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.FromOrder(order)))
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID do pedido inválido"))
		return
	}

	var req dto.UpdatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Corpo da requisição inválido"))
		return
	}

	in := service.UpdateOrderInput{Notes: req.Observacoes}
	if req.Status != nil {
		st := models.OrderStatus(*req.Status)
		in.Status = &st
	}

	order, err := h.svc.UpdateOrder(c.Request.Context(), id, in)
	if err != nil {
		h.respondOrderError(c, err, "order update failed")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Pedido atualizado com sucesso", dto.FromOrder(order)))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID do pedido inválido"))
		return
	}

	if err := h.svc.DeleteOrder(c.Request.Context(), id); err != nil {
		h.respondOrderError(c, err, "order delete failed")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Pedido excluído com sucesso", nil))
}

func (h *OrderHandler) List(c *gin.Context) {
	filter, err := listFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	orders, total, err := h.svc.ListOrders(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("order list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Fail("Erro ao buscar pedidos"))
		return
	}

	count := int(total)
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    dto.FromOrders(orders),
		Count:   &count,
	})
}

func (h *OrderHandler) respondOrderError(c *gin.Context, err error, logMsg string) {
	status := statusFor(err)
	switch status {
	case http.StatusNotFound:
		c.JSON(status, dto.Fail("Pedido não encontrado"))
	case http.StatusBadRequest:
		c.JSON(status, dto.Fail("Dados inválidos: "+err.Error()))
	default:
		h.log.Error(logMsg, zap.Error(err))
		c.JSON(status, dto.Fail("Erro ao processar a requisição"))
	}
}

func listFilterFromQuery(c *gin.Context) (service.ListFilter, error) {
	f := service.ListFilter{
		Code:      c.Query("codigo"),
		Requester: c.Query("solicitante"),
	}

	if s := c.Query("status"); s != "" {
		st := models.OrderStatus(s)
		f.Status = &st
	}

	var err error
	if f.DateFrom, err = parseDateParam(c.Query("dataInicio")); err != nil {
		return f, err
	}
	if f.DateTo, err = parseDateParam(c.Query("dataFim")); err != nil {
		return f, err
	}

	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return f, nil
}

func parseDateParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, errDateFormat
	}
	return &t, nil
}
