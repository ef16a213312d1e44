package http

import (
	"fmt"
	"net/http"

	"github.com/esc4n0rx/Integra/internal/dto"
	"github.com/esc4n0rx/Integra/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	svc service.CatalogService
	log *zap.Logger
}

func NewCatalogHandler(svc service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: log}
}

// GetByCode — точный поиск позиции каталога по коду (query-параметр codigo)
func (h *CatalogHandler) GetByCode(c *gin.Context) {
	code := c.Query("codigo")
	if code == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("Parâmetro 'codigo' é obrigatório"))
		return
	}

	item, err := h.svc.GetByCode(c.Request.Context(), code)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, dto.Fail(fmt.Sprintf("Produto com código %s não encontrado", code)))
			return
		}
		h.log.Error("catalog lookup failed", zap.String("codigo", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Fail("Erro ao buscar produto"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.FromCatalogItem(item)))
}

// Search — подстрочный поиск по коду/описанию, свежие записи первыми
func (h *CatalogHandler) Search(c *gin.Context) {
	var req dto.SearchProdutosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Corpo da requisição inválido"))
		return
	}

	items, err := h.svc.Search(c.Request.Context(), req.Filtro, req.Limit)
	if err != nil {
		h.log.Error("catalog search failed", zap.String("filtro", req.Filtro), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Fail("Erro ao buscar produtos"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.FromCatalogItems(items)))
}
