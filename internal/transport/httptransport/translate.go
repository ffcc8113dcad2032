package httptransport

import (
	"net/http"

	"github.com/NastyaGoryachaya/coin-tracker/internal/ports/errcode"
)

// FromServiceError - код ошибки для ответа клиенту.
func FromServiceError(err error) errcode.Code {
	return errcode.Of(err)
}

// StatusFor - HTTP-статус для кода ошибки.
func StatusFor(code errcode.Code) int {
	switch code {
	case errcode.BadRequest:
		return http.StatusBadRequest
	case errcode.NotFoundCoins:
		return http.StatusNotFound
	case errcode.RateLimited:
		return http.StatusTooManyRequests
	case errcode.Upstream:
		return http.StatusBadGateway
	case errcode.Network:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
