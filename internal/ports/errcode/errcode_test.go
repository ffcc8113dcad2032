package errcode_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/NastyaGoryachaya/coin-tracker/internal/errors"
	"github.com/NastyaGoryachaya/coin-tracker/internal/ports/errcode"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errcode.Code
	}{
		{"bad request", fmt.Errorf("%w: currency is required", apperrors.ErrBadRequest), errcode.BadRequest},
		{"not found", apperrors.ErrCoinNotFound, errcode.NotFoundCoins},
		{"rate limited", fmt.Errorf("page 3: %w", apperrors.ErrRateLimited), errcode.RateLimited},
		{"network", fmt.Errorf("%w: %w", apperrors.ErrNetwork, errors.New("dial tcp")), errcode.Network},
		{"deadline", context.DeadlineExceeded, errcode.Network},
		{"upstream", apperrors.ErrUpstream, errcode.Upstream},
		{"other", errors.New("boom"), errcode.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errcode.Of(tt.err); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
