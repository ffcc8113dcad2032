package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/singleflight"

	"github.com/NastyaGoryachaya/coin-tracker/internal/cache"
	"github.com/NastyaGoryachaya/coin-tracker/internal/infra/api_client"
	"github.com/NastyaGoryachaya/coin-tracker/internal/metrics"
)

//go:generate mockgen -source=proxy.go -destination=mocks/upstream.go -package=mocks

// Upstream - сырые ответы CoinGecko.
type Upstream interface {
	MarketsRaw(ctx context.Context, p api_client.MarketsParams) ([]byte, error)
	CoinRaw(ctx context.Context, id string) ([]byte, error)
	MarketChartRaw(ctx context.Context, id string, q url.Values) ([]byte, error)
	TrendingRaw(ctx context.Context) ([]byte, error)
	SearchRaw(ctx context.Context, query string) ([]byte, error)
}

// ProxyHandler - тонкий прокси к CoinGecko. Графики кэшируются на chartTTL.
type ProxyHandler struct {
	logger   *slog.Logger
	upstream Upstream
	charts   *cache.TTL[[]byte]
	chartTTL time.Duration
	group    singleflight.Group
	timeout  time.Duration
}

func NewProxyHandler(logger *slog.Logger, upstream Upstream, charts *cache.TTL[[]byte], chartTTL, timeout time.Duration) *ProxyHandler {
	if chartTTL <= 0 {
		chartTTL = 2 * time.Minute
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ProxyHandler{
		logger:   logger,
		upstream: upstream,
		charts:   charts,
		chartTTL: chartTTL,
		timeout:  timeout,
	}
}

func (h *ProxyHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/coins", h.GetCoins)
	g.GET("/coins/:id", h.GetCoin)
	g.GET("/coins/:id/market_chart", h.GetMarketChart)
	g.GET("/search/trending", h.GetTrending)
	g.GET("/search", h.Search)
}

func queryOr(c echo.Context, name, def string) string {
	if v := strings.TrimSpace(c.QueryParam(name)); v != "" {
		return v
	}
	return def
}

func intQueryOr(c echo.Context, name string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.QueryParam(name)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func (h *ProxyHandler) GetCoins(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sparkline, _ := strconv.ParseBool(queryOr(c, "sparkline", "false"))
	body, err := h.upstream.MarketsRaw(ctx, api_client.MarketsParams{
		VsCurrency: queryOr(c, "vs_currency", "usd"),
		Order:      queryOr(c, "order", "market_cap_desc"),
		PerPage:    intQueryOr(c, "per_page", 25),
		Page:       intQueryOr(c, "page", 1),
		Sparkline:  sparkline,
	})
	if err != nil {
		return h.upstreamError(c, "GetCoins", err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

func (h *ProxyHandler) GetCoin(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	body, err := h.upstream.CoinRaw(ctx, c.Param("id"))
	if err != nil {
		return h.upstreamError(c, "GetCoin", err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

// GetMarketChart - одинаковые запросы в течение chartTTL отдаются из кэша, одновременные промахи склеиваются.
func (h *ProxyHandler) GetMarketChart(c echo.Context) error {
	id := c.Param("id")
	q := url.Values{}
	q.Set("vs_currency", queryOr(c, "vs_currency", "usd"))
	q.Set("days", queryOr(c, "days", "30"))
	q.Set("interval", queryOr(c, "interval", "daily"))

	key := strings.Join([]string{id, q.Get("vs_currency"), q.Get("days"), q.Get("interval")}, "|")
	if body, ok := h.charts.Get(key); ok {
		metrics.ChartCacheTotal.WithLabelValues("hit").Inc()
		return c.JSONBlob(http.StatusOK, body)
	}
	metrics.ChartCacheTotal.WithLabelValues("miss").Inc()

	v, err, _ := h.group.Do(key, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), h.timeout)
		defer cancel()
		body, err := h.upstream.MarketChartRaw(ctx, id, q)
		if err != nil {
			return nil, err
		}
		h.charts.Set(key, body, h.chartTTL)
		return body, nil
	})
	if err != nil {
		return h.upstreamError(c, "GetMarketChart", err)
	}
	return c.JSONBlob(http.StatusOK, v.([]byte))
}

func (h *ProxyHandler) GetTrending(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	body, err := h.upstream.TrendingRaw(ctx)
	if err != nil {
		return h.upstreamError(c, "GetTrending", err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

func (h *ProxyHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Query parameter is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	body, err := h.upstream.SearchRaw(ctx, query)
	if err != nil {
		return h.upstreamError(c, "Search", err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

// upstreamError - статус и тело апстрима без изменений, если ответ был. Иначе 500 с текстом ошибки.
func (h *ProxyHandler) upstreamError(c echo.Context, op string, err error) error {
	h.logger.Error("upstream request failed",
		slog.String("op", op),
		slog.String("path", c.Request().URL.Path),
		slog.String("error", err.Error()),
	)
	if se, ok := api_client.AsStatusError(err); ok {
		return c.Blob(se.Code, echo.MIMEApplicationJSON, se.Body)
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error": err.Error(),
	})
}
