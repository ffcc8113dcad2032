package httptransport

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/NastyaGoryachaya/coin-tracker/internal/domain"
	"github.com/NastyaGoryachaya/coin-tracker/internal/pkg/pricefmt"
	"github.com/NastyaGoryachaya/coin-tracker/internal/service/coinlist"
)

//go:generate mockgen -source=coins.go -destination=mocks/coins.go -package=mocks

// CoinLister - загрузчик полного списка монет.
type CoinLister interface {
	LoadCoinList(ctx context.Context, currency string) ([]domain.CoinSummary, error)
	Stream(ctx context.Context, currency string) iter.Seq2[domain.Snapshot, error]
	Expected() int
}

// RateProvider - курс валют, при ошибке 1.
type RateProvider interface {
	Rate(ctx context.Context, base, target string) (decimal.Decimal, error)
	RateOrDefault(ctx context.Context, base, target string) decimal.Decimal
}

// CoinView - монета с уже отформатированными полями для отображения.
type CoinView struct {
	domain.CoinSummary
	DisplayPrice     string         `json:"display_price"`
	DisplayMarketCap string         `json:"display_market_cap"`
	DisplayChange24h string         `json:"display_change_24h"`
	ChangeColor      pricefmt.Color `json:"change_color"`
}

type CoinsPage struct {
	Currency        string     `json:"currency"`
	DisplayCurrency string     `json:"display_currency"`
	Items           []CoinView `json:"items"`
	Page            int        `json:"page"`
	PageCount       int        `json:"page_count"`
	Total           int        `json:"total"`
	Complete        bool       `json:"complete"`
	Error           string     `json:"error,omitempty"`
}

type CoinsHandler struct {
	logger  *slog.Logger
	lister  CoinLister
	rates   RateProvider
	timeout time.Duration
}

func NewCoinsHandler(logger *slog.Logger, lister CoinLister, rates RateProvider, timeout time.Duration) *CoinsHandler {
	// полный обход 20 страниц с паузами занимает больше обычного таймаута запроса
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &CoinsHandler{
		logger:  logger,
		lister:  lister,
		rates:   rates,
		timeout: timeout,
	}
}

func (h *CoinsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/coins/all", h.GetAll)
	g.GET("/exchange-rate", h.GetExchangeRate)
	g.GET("/ws/coins", h.StreamCoins)
}

// GetAll - страница отфильтрованного списка. Частичный результат отдаётся с полем error и complete=false.
func (h *CoinsHandler) GetAll(c echo.Context) error {
	currency := strings.ToLower(queryOr(c, "vs_currency", "usd"))
	display := strings.ToUpper(queryOr(c, "display_currency", currency))
	page := intQueryOr(c, "page", 1)
	pageSize := intQueryOr(c, "page_size", 25)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	list, err := h.lister.LoadCoinList(ctx, currency)
	out := CoinsPage{
		Currency:        currency,
		DisplayCurrency: display,
		Complete:        err == nil && len(list) >= h.lister.Expected(),
	}
	if err != nil {
		var le *coinlist.LoadError
		if !errors.As(err, &le) || len(le.Partial) == 0 {
			code := FromServiceError(err)
			h.logger.Error("LoadCoinList failed",
				slog.String("op", "GetAll"),
				slog.String("currency", currency),
				slog.String("error", err.Error()),
			)
			return c.JSON(StatusFor(code), echo.Map{
				"error": err.Error(),
				"code":  code,
			})
		}
		list = le.Partial
		out.Error = le.Err.Error()
	}

	items, pageCount := coinlist.FilterAndPaginate(list, c.QueryParam("q"), page, pageSize)
	rate := h.displayRate(ctx, currency, display)

	out.Items = make([]CoinView, 0, len(items))
	for _, it := range items {
		out.Items = append(out.Items, makeCoinView(it, display, rate, currency == "usd"))
	}
	out.Page = page
	out.PageCount = pageCount
	out.Total = len(coinlist.Filter(list, c.QueryParam("q")))
	return c.JSON(http.StatusOK, out)
}

func (h *CoinsHandler) displayRate(ctx context.Context, currency, display string) float64 {
	if display != pricefmt.NGN || currency != "usd" {
		return 1
	}
	return h.rates.RateOrDefault(ctx, "USD", pricefmt.NGN).InexactFloat64()
}

func makeCoinView(c domain.CoinSummary, display string, rate float64, valueIsUSD bool) CoinView {
	mcap := c.MarketCap
	if !valueIsUSD {
		rate = 1
	}
	return CoinView{
		CoinSummary:      c,
		DisplayPrice:     pricefmt.FormatPrice(c.CurrentPrice, display, rate, valueIsUSD),
		DisplayMarketCap: pricefmt.FormatMarketCap(mcap, display, rate),
		DisplayChange24h: pricefmt.Format24hChange(c.PriceChangePercentage24h),
		ChangeColor:      pricefmt.ChangeColor(c.PriceChangePercentage24h),
	}
}

func (h *CoinsHandler) GetExchangeRate(c echo.Context) error {
	base := strings.ToUpper(queryOr(c, "base", "USD"))
	target := strings.ToUpper(queryOr(c, "target", pricefmt.NGN))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	rate, err := h.rates.Rate(ctx, base, target)
	if err != nil {
		code := FromServiceError(err)
		h.logger.Warn("exchange rate failed",
			slog.String("base", base),
			slog.String("target", target),
			slog.String("error", err.Error()),
		)
		return c.JSON(StatusFor(code), echo.Map{
			"error": err.Error(),
			"code":  code,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"base":   base,
		"target": target,
		"rate":   rate,
	})
}
