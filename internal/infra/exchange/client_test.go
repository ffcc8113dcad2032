package exchange_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/NastyaGoryachaya/coin-tracker/internal/config"
	"github.com/NastyaGoryachaya/coin-tracker/internal/infra/exchange"
	"github.com/NastyaGoryachaya/coin-tracker/internal/infra/exchange/mocks"
	"github.com/NastyaGoryachaya/coin-tracker/internal/pkg/clock"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestClient_Rate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v6/latest/USD" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"result":"success","base_code":"USD","rates":{"NGN":1532.25,"EUR":0,"USD":1}}`))
	}))
	defer srv.Close()

	c := exchange.NewClient(config.ExchangeConfig{BaseURL: srv.URL + "/v6/latest", Timeout: time.Second})

	got, err := c.Rate(context.Background(), "usd", "ngn")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("1532.25")) {
		t.Fatalf("got %s", got)
	}

	if _, err := c.Rate(context.Background(), "USD", "EUR"); !errors.Is(err, exchange.ErrNoRate) {
		t.Fatalf("zero rate must be rejected, got %v", err)
	}
	if _, err := c.Rate(context.Background(), "USD", "XYZ"); !errors.Is(err, exchange.ErrNoRate) {
		t.Fatalf("missing rate must be rejected, got %v", err)
	}
}

func TestService_RateOrDefault_CachesAndFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := mocks.NewMockRateFetcher(ctrl)
	clk := clock.NewFake(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := exchange.NewService(f, 10*time.Minute, clk, discardLogger())

	f.EXPECT().Rate(gomock.Any(), "USD", "NGN").Return(decimal.NewFromInt(1500), nil).Times(1)

	for i := 0; i < 3; i++ {
		if r := s.RateOrDefault(context.Background(), "USD", "NGN"); !r.Equal(decimal.NewFromInt(1500)) {
			t.Fatalf("call %d: got %s", i, r)
		}
	}

	clk.Advance(10 * time.Minute)
	f.EXPECT().Rate(gomock.Any(), "USD", "NGN").Return(decimal.Zero, errors.New("boom"))

	if r := s.RateOrDefault(context.Background(), "USD", "NGN"); !r.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("fallback must be 1, got %s", r)
	}
}
