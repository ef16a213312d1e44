package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/esc4n0rx/Integra/internal/models"
	"github.com/esc4n0rx/Integra/internal/repository"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const ingestBatchSize = 50

// requiredColumns — обязательные колонки первого листа, без учёта регистра
var requiredColumns = []string{"endereco", "codigo", "descricao", "um"}

type ingestService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewIngestService(repo *repository.Repository, log *zap.Logger) IngestService {
	return &ingestService{repo: repo, log: log}
}

func (s *ingestService) IngestItem(ctx context.Context, in IngestItemInput) (*models.CatalogItem, error) {
	if missing := missingFields(in); len(missing) > 0 {
		return nil, fmt.Errorf("%w: campos obrigatórios em branco: %s", ErrInvalidItem, strings.Join(missing, ", "))
	}

	item := &models.CatalogItem{
		Code:        strings.TrimSpace(in.Code),
		Description: strings.TrimSpace(in.Description),
		Unit:        strings.TrimSpace(in.Unit),
		Location:    strings.TrimSpace(in.Location),
	}
	if err := s.repo.Catalog.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ingestService) IngestFile(ctx context.Context, r io.Reader) (int, error) {
	items, err := parseItemsSheet(r, s.log)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, ErrNoValidItems
	}

	// Пакеты вставляются строго последовательно: при ошибке остаётся
	// детерминированный префикс, уже вставленные пакеты не откатываются
	inserted := 0
	for start := 0; start < len(items); start += ingestBatchSize {
		end := min(start+ingestBatchSize, len(items))
		if err := s.repo.Catalog.BulkCreate(ctx, items[start:end]); err != nil {
			return inserted, fmt.Errorf("erro ao inserir itens em lote (%d inseridos): %w", inserted, err)
		}
		inserted += end - start
	}
	return inserted, nil
}

func parseItemsSheet(r io.Reader, log *zap.Logger) ([]models.CatalogItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyFile
	}

	// Первая строка — заголовок; сопоставляем колонки по имени
	colIndex := map[string]int{}
	for i, h := range rows[0] {
		colIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("%w: coluna obrigatória '%s' não encontrada", ErrMissingColumn, col)
		}
	}

	items := make([]models.CatalogItem, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		in := IngestItemInput{
			Location:    cellAt(row, colIndex["endereco"]),
			Code:        cellAt(row, colIndex["codigo"]),
			Description: cellAt(row, colIndex["descricao"]),
			Unit:        cellAt(row, colIndex["um"]),
		}
		if missing := missingFields(in); len(missing) > 0 {
			// Невалидные строки отбрасываются, не валят весь файл
			log.Warn("linha ignorada por dados inválidos",
				zap.Int("linha", i+2), zap.Strings("campos", missing))
			continue
		}
		items = append(items, models.CatalogItem{
			Code:        in.Code,
			Description: in.Description,
			Unit:        in.Unit,
			Location:    in.Location,
		})
	}
	return items, nil
}

func missingFields(in IngestItemInput) []string {
	var missing []string
	if strings.TrimSpace(in.Location) == "" {
		missing = append(missing, "endereco")
	}
	if strings.TrimSpace(in.Code) == "" {
		missing = append(missing, "codigo")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "descricao")
	}
	if strings.TrimSpace(in.Unit) == "" {
		missing = append(missing, "um")
	}
	return missing
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
