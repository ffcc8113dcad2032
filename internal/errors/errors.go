package errors

import "errors"

var (
	// ErrBadRequest - некорректные параметры, отклоняются до похода в сеть
	ErrBadRequest = errors.New("bad request")
	// ErrRateLimited - апстрим ответил 429
	ErrRateLimited = errors.New("rate limited by upstream")
	// ErrNetwork - таймаут или обрыв соединения
	ErrNetwork = errors.New("network error")
	// ErrUpstream - апстрим вернул неуспешный статус
	ErrUpstream     = errors.New("upstream error")
	ErrCoinNotFound = errors.New("coin not found")
	ErrInternal     = errors.New("internal error")
)
