package http

import (
	"github.com/esc4n0rx/Integra/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Services struct {
	Catalog service.CatalogService
	Orders  service.OrderService
	Export  service.ExportService
	Mail    service.MailService
	Ingest  service.IngestService
}

func Router(svcs Services, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	catalogHandler := NewCatalogHandler(svcs.Catalog, log)
	orderHandler := NewOrderHandler(svcs.Orders, log)
	exportHandler := NewExportHandler(svcs.Orders, svcs.Export, svcs.Mail, log)
	ingestHandler := NewIngestHandler(svcs.Ingest, log)

	api := r.Group("/api")
	{
		api.GET("/produtos", catalogHandler.GetByCode)
		api.POST("/produtos", catalogHandler.Search)

		api.POST("/pedidos", orderHandler.Create)
		api.GET("/pedidos", orderHandler.List)
		api.GET("/pedidos/:id", orderHandler.GetByID)
		api.PATCH("/pedidos/:id", orderHandler.Update)
		api.DELETE("/pedidos/:id", orderHandler.Delete)

		api.POST("/pedidos/export", exportHandler.Export)
		api.POST("/pedidos/email-export", exportHandler.EmailExport)

		api.POST("/insert_upload", ingestHandler.Upload)
	}

	return r
}
