package dto

import "github.com/esc4n0rx/Integra/internal/models"

type SearchProdutosRequest struct {
	Filtro string `json:"filtro"`
	Limit  int    `json:"limit"`
}

type ProdutoResponse struct {
	Codigo        string `json:"codigo"`
	Descricao     string `json:"descricao"`
	UnidadeMedida string `json:"unidadeMedida"`
	Endereco      string `json:"endereco"`
}

// IngestItemRequest — одна позиция каталога в JSON-теле загрузки
type IngestItemRequest struct {
	Endereco  string `json:"endereco"`
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
	UM        string `json:"um"`
}

// FromCatalogItem — проекция позиции каталога в формат API (um -> unidadeMedida)
func FromCatalogItem(item *models.CatalogItem) ProdutoResponse {
	return ProdutoResponse{
		Codigo:        item.Code,
		Descricao:     item.Description,
		UnidadeMedida: item.Unit,
		Endereco:      item.Location,
	}
}

func FromCatalogItems(items []models.CatalogItem) []ProdutoResponse {
	out := make([]ProdutoResponse, 0, len(items))
	for i := range items {
		out = append(out, FromCatalogItem(&items[i]))
	}
	return out
}
