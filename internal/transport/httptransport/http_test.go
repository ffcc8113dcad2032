package httptransport_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/NastyaGoryachaya/coin-tracker/internal/cache"
	"github.com/NastyaGoryachaya/coin-tracker/internal/domain"
	apperrors "github.com/NastyaGoryachaya/coin-tracker/internal/errors"
	"github.com/NastyaGoryachaya/coin-tracker/internal/infra/api_client"
	"github.com/NastyaGoryachaya/coin-tracker/internal/pkg/clock"
	"github.com/NastyaGoryachaya/coin-tracker/internal/service/coinlist"
	"github.com/NastyaGoryachaya/coin-tracker/internal/transport/httptransport"
	"github.com/NastyaGoryachaya/coin-tracker/internal/transport/httptransport/mocks"
)

type fixture struct {
	ctrl     *gomock.Controller
	upstream *mocks.MockUpstream
	lister   *mocks.MockCoinLister
	rates    *mocks.MockRateProvider
	clk      *clock.Fake
	e        *echo.Echo
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:     ctrl,
		upstream: mocks.NewMockUpstream(ctrl),
		lister:   mocks.NewMockCoinLister(ctrl),
		rates:    mocks.NewMockRateProvider(ctrl),
		clk:      clock.NewFake(time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	charts := cache.New[[]byte](16, f.clk)
	proxy := httptransport.NewProxyHandler(log, f.upstream, charts, 2*time.Minute, time.Second)
	coins := httptransport.NewCoinsHandler(log, f.lister, f.rates, time.Second)
	f.e = httptransport.NewRouter(log, proxy, coins)
	return f
}

func (f *fixture) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func coins(n int) []domain.CoinSummary {
	out := make([]domain.CoinSummary, n)
	for i := range out {
		out[i] = domain.CoinSummary{
			ID:           fmt.Sprintf("coin-%d", i+1),
			Symbol:       fmt.Sprintf("c%d", i+1),
			Name:         fmt.Sprintf("Coin %d", i+1),
			CurrentPrice: 0.0005,
			MarketCap:    1_000_000,
		}
	}
	return out
}

// -------------------------
// Прокси
// -------------------------

func TestSearch_MissingQuery(t *testing.T) {
	f := setup(t)
	defer f.ctrl.Finish()

	rec := f.do(http.MethodGet, "/api/search")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Query parameter is required") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestGetCoins_DefaultsAndPassthrough(t *testing.T) {
	f := setup(t)
	defer f.ctrl.Finish()

	want := api_client.MarketsParams{VsCurrency: "usd", Order: "market_cap_desc", PerPage: 25, Page: 1, Sparkline: false}
	f.upstream.EXPECT().MarketsRaw(gomock.Any(), want).Return([]byte(`[{"id":"bitcoin"}]`), nil)

	rec := f.do(http.MethodGet, "/api/coins")
	if rec.Code != http.StatusOK || rec.Body.String() != `[{"id":"bitcoin"}]` {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestProxy_UpstreamStatusVerbatim(t *testing.T) {
	f := setup(t)
	defer f.ctrl.Finish()

	body := []byte(`{"status":{"error_code":429,"error_message":"You've exceeded the Rate Limit"}}`)
	f.upstream.EXPECT().TrendingRaw(gomock.Any()).Return(nil, &api_client.StatusError{Code: 429, Body: body})

	rec := f.do(http.MethodGet, "/api/search/trending")
	if rec.Code != http.StatusTooManyRequests || rec.Body.String() != string(body) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestProxy_NoUpstreamResponse(t *testing.T) {
	f := setup(t)
	defer f.ctrl.Finish()

	f.upstream.EXPECT().CoinRaw(gomock.Any(), "bitcoin").Return(nil, fmt.Errorf("request failed: %w", apperrors.ErrNetwork))

	rec := f.do(http.MethodGet, "/api/coins/bitcoin")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var got map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if !strings.Contains(got["error"], "network error") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestMarketChart_CachedForTTL(t *testing.T) {
	f := setup(t)
	defer f.ctrl.Finish()

	wantQ := url.Values{"vs_currency": {"usd"}, "days": {"30"}, "interval": {"daily"}}
	f.upstream.EXPECT().MarketChartRaw(gomock.Any(), "bitcoin", wantQ).Return([]byte(`{"prices":[[1,2]]}`), nil).Times(2)
	f.upstream.EXPECT().MarketChartRaw(gomock.Any(), "bitcoin", gomock.Not(wantQ)).Return([]byte(`{"prices":[]}`), nil).Times(1)

	for i := 0; i < 3; i++ {
		rec := f.do(http.MethodGet, "/api/coins/bitcoin/market_chart")
		if rec.Code != http.StatusOK || rec.Body.String() != `{"prices":[[1,2]]}` {
			t.Fatalf("call %d: %d %s", i, rec.Code, rec.Body.String())
		}
	}

	// другой ключ - отдельная запись
	if rec := f.do(http.MethodGet, "/api/coins/bitcoin/market_chart?days=7"); rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	f.clk.Advance(2 * time.Minute)
	if rec := f.do(http.MethodGet, "/api/coins/bitcoin/market_chart"); rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

// -------------------------
// Список монет
// -------------------------

func TestGetAll_PaginatesAndFormats(t *testing.T) {
	f := setup(t)
	defer f.ctrl.Finish()

	f.lister.EXPECT().LoadCoinList(gomock.Any(), "usd").Return(coins(23), nil)
	f.lister.EXPECT().Expected().Return(500)
	f.rates.EXPECT().RateOrDefault(gomock.Any(), "USD", "NGN").Return(decimal.NewFromInt(1500))

	rec := f.do(http.MethodGet, "/api/coins/all?page=3&page_size=10&display_currency=ngn")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	var got httptransport.CoinsPage
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Items) != 3 || got.PageCount != 3 || got.Total != 23 || got.Page != 3 {
		t.Fatalf("unexpected page: items=%d pages=%d total=%d", len(got.Items), got.PageCount, got.Total)
	}
	if got.Complete {
		t.Fatalf("23 of 500 coins is not complete")
	}
	if got.Items[0].DisplayPrice != "0.75" || got.Items[0].DisplayMarketCap != "1.5B" {
		t.Fatalf("unexpected formatting: %+v", got.Items[0])
	}
	if got.Items[0].DisplayChange24h != "N/A" || got.Items[0].ChangeColor != "gray" {
		t.Fatalf("unexpected change fields: %+v", got.Items[0])
	}
}

func TestGetAll_PartialResult(t *testing.T) {
	f := setup(t)
	defer f.ctrl.Finish()

	le := &coinlist.LoadError{Currency: "usd", Partial: coins(50), Err: apperrors.ErrUpstream}
	f.lister.EXPECT().LoadCoinList(gomock.Any(), "usd").Return(coins(50), le)

	rec := f.do(http.MethodGet, "/api/coins/all?q=coin%201")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var got httptransport.CoinsPage
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Complete || got.Error == "" {
		t.Fatalf("partial result must carry an error: %+v", got)
	}
	// Coin 1, Coin 10..19
	if got.Total != 11 {
		t.Fatalf("unexpected total %d", got.Total)
	}
}

func TestGetAll_ErrorWithoutData(t *testing.T) {
	f := setup(t)
	defer f.ctrl.Finish()

	f.lister.EXPECT().LoadCoinList(gomock.Any(), "usd").
		Return(nil, &coinlist.LoadError{Currency: "usd", Err: apperrors.ErrNetwork})

	rec := f.do(http.MethodGet, "/api/coins/all")
	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", rec.Code)
	}
}

func TestGetExchangeRate(t *testing.T) {
	f := setup(t)
	defer f.ctrl.Finish()

	f.rates.EXPECT().Rate(gomock.Any(), "USD", "NGN").Return(decimal.RequireFromString("1532.25"), nil)
	rec := f.do(http.MethodGet, "/api/exchange-rate")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"rate":"1532.25"`) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}

	f.rates.EXPECT().Rate(gomock.Any(), "USD", "XYZ").Return(decimal.Zero, errors.New("no rate"))
	if rec := f.do(http.MethodGet, "/api/exchange-rate?target=xyz"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestStreamCoins_WebSocket(t *testing.T) {
	f := setup(t)
	defer f.ctrl.Finish()

	var seq iter.Seq2[domain.Snapshot, error] = func(yield func(domain.Snapshot, error) bool) {
		if !yield(domain.Snapshot{Currency: "usd", Page: 1, TotalPages: 2, Coins: coins(25)}, nil) {
			return
		}
		yield(domain.Snapshot{Currency: "usd", Page: 2, TotalPages: 2, Coins: coins(50), Complete: true}, nil)
	}
	f.lister.EXPECT().Stream(gomock.Any(), "eur").Return(seq)

	srv := httptest.NewServer(f.e)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/coins?vs_currency=EUR"
	conn, _, err := websocket.DefaultDialer.DialContext(context.Background(), wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	type message struct {
		Type     string          `json:"type"`
		Snapshot domain.Snapshot `json:"snapshot"`
	}
	for i := 1; i <= 2; i++ {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if msg.Type != "snapshot" || msg.Snapshot.Page != i || len(msg.Snapshot.Coins) != 25*i {
			t.Fatalf("unexpected message %d: %+v", i, msg.Type)
		}
	}
	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Fatalf("expected normal close, got %v", err)
	}
}

func TestHealthAndRoot(t *testing.T) {
	f := setup(t)
	defer f.ctrl.Finish()

	if rec := f.do(http.MethodGet, "/"); rec.Code != http.StatusOK || rec.Body.String() != "Coin Tracker Backend running" {
		t.Fatalf("unexpected root response %d %s", rec.Code, rec.Body.String())
	}
	if rec := f.do(http.MethodGet, "/healthz"); rec.Code != http.StatusOK {
		t.Fatalf("unexpected health status %d", rec.Code)
	}
	if rec := f.do(http.MethodGet, "/metrics"); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "coin_tracker_") {
		t.Fatalf("metrics endpoint must expose coin_tracker_ series")
	}
}
