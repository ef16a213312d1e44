package http

import (
	"errors"
	"net/http"

	"github.com/esc4n0rx/Integra/internal/service"
)

// errDateFormat — формат дат query-параметров: YYYY-MM-DD либо RFC3339
var errDateFormat = errors.New("Formato de data inválido, use YYYY-MM-DD")

// statusFor сводит ошибки сервисов к HTTP-статусам конверта:
// валидация — 400, отсутствие сущности — 404, остальное — 500
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrRequesterRequired),
		errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrQuantityInvalid),
		errors.Is(err, service.ErrStatusInvalid),
		errors.Is(err, service.ErrInvalidItem),
		errors.Is(err, service.ErrMissingColumn),
		errors.Is(err, service.ErrEmptyFile),
		errors.Is(err, service.ErrNoValidItems),
		errors.Is(err, service.ErrEmptyExport),
		errors.Is(err, service.ErrNoRecipients):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
