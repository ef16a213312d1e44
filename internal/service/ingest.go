package service

import (
	"context"
	"io"

	"github.com/esc4n0rx/Integra/internal/models"
)

type IngestItemInput struct {
	Code        string
	Description string
	Unit        string
	Location    string
}

type IngestService interface {
	// IngestItem валидирует и вставляет одну позицию каталога
	IngestItem(ctx context.Context, in IngestItemInput) (*models.CatalogItem, error)
	// IngestFile разбирает первый лист xlsx и вставляет валидные строки
	// пакетами; возвращает число вставленных строк даже при ошибке пакета
	IngestFile(ctx context.Context, r io.Reader) (int, error)
}
