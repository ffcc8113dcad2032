package errcode

import (
	"context"
	"errors"

	apperrors "github.com/NastyaGoryachaya/coin-tracker/internal/errors"
)

type Code string

const (
	NotFoundCoins Code = "NOT_FOUND_COINS"

	RateLimited Code = "RATE_LIMITED"
	Upstream    Code = "UPSTREAM_ERROR"
	Network     Code = "NETWORK_ERROR"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)

// Of - код для ошибки сервисного слоя. Общий для HTTP и бота.
func Of(err error) Code {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		return BadRequest
	case errors.Is(err, apperrors.ErrCoinNotFound):
		return NotFoundCoins
	case errors.Is(err, apperrors.ErrRateLimited):
		return RateLimited
	case errors.Is(err, apperrors.ErrNetwork),
		errors.Is(err, context.DeadlineExceeded):
		return Network
	case errors.Is(err, apperrors.ErrUpstream):
		return Upstream
	default:
		return Internal
	}
}
