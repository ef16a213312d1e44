package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/esc4n0rx/Integra/internal/dto"
	"github.com/esc4n0rx/Integra/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IngestHandler struct {
	svc service.IngestService
	log *zap.Logger
}

func NewIngestHandler(svc service.IngestService, log *zap.Logger) *IngestHandler {
	return &IngestHandler{svc: svc, log: log}
}

// Upload принимает либо JSON с одной позицией, либо multipart с файлом
// xlsx; ветка выбирается по Content-Type
func (h *IngestHandler) Upload(c *gin.Context) {
	contentType := c.ContentType()

	switch {
	case strings.Contains(contentType, "application/json"):
		h.uploadOne(c)
	case strings.Contains(contentType, "multipart/form-data"):
		h.uploadFile(c)
	default:
		c.JSON(http.StatusUnsupportedMediaType, dto.Fail(fmt.Sprintf("Tipo de conteúdo não suportado: %s", contentType)))
	}
}

func (h *IngestHandler) uploadOne(c *gin.Context) {
	var req dto.IngestItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Corpo da requisição inválido"))
		return
	}

	item, err := h.svc.IngestItem(c.Request.Context(), service.IngestItemInput{
		Code:        req.Codigo,
		Description: req.Descricao,
		Unit:        req.UM,
		Location:    req.Endereco,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidItem) {
			c.JSON(http.StatusBadRequest, dto.Fail("Dados inválidos. Todos os campos são obrigatórios"))
			return
		}
		h.log.Error("item insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Fail("Erro ao inserir item"))
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Item inserido com sucesso", dto.FromCatalogItem(item)))
}

func (h *IngestHandler) uploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Nenhum arquivo enviado"))
		return
	}

	name := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") {
		c.JSON(http.StatusBadRequest, dto.Fail("Apenas arquivos Excel (.xlsx ou .xls) são permitidos"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.Error("upload open failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Fail("Erro ao ler o arquivo enviado"))
		return
	}
	defer file.Close()

	inserted, err := h.svc.IngestFile(c.Request.Context(), file)
	if err != nil {
		if statusFor(err) == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
			return
		}
		h.log.Error("bulk ingest failed",
			zap.String("filename", fileHeader.Filename),
			zap.Int("inserted", inserted),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.OKCount(fmt.Sprintf("%d itens inseridos com sucesso", inserted), inserted))
}
