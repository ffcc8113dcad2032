package api_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/NastyaGoryachaya/coin-tracker/internal/config"
	"github.com/NastyaGoryachaya/coin-tracker/internal/domain"
	apperrors "github.com/NastyaGoryachaya/coin-tracker/internal/errors"
)

const defaultUserAgent = "coin-tracker/1.0 (+https://github.com/NastyaGoryachaya/coin-tracker)"

// максимальный размер ответа апстрима, который читаем в память
const maxBodySize = 8 << 20

type Client struct {
	cfg        config.CoinGeckoConfig
	httpClient *http.Client
}

// StatusError - апстрим ответил статусом, отличным от 200. Тело сохраняется как есть,
// прокси отдаёт его клиенту без изменений.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("coingecko: unexpected status %d", e.Code)
}

// Is - классификация по статусу: 429 повторяемая, 404 отсутствие монеты, остальное ошибка апстрима.
func (e *StatusError) Is(target error) bool {
	switch target {
	case apperrors.ErrRateLimited:
		return e.Code == http.StatusTooManyRequests
	case apperrors.ErrCoinNotFound:
		return e.Code == http.StatusNotFound
	case apperrors.ErrUpstream:
		return true
	}
	return false
}

// MarketsParams - параметры /coins/markets. Пустые поля не передаются.
type MarketsParams struct {
	VsCurrency string
	Order      string
	PerPage    int
	Page       int
	Sparkline  bool
}

func (p MarketsParams) values() url.Values {
	q := url.Values{}
	q.Set("vs_currency", strings.ToLower(p.VsCurrency))
	if p.Order != "" {
		q.Set("order", p.Order)
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	q.Set("sparkline", strconv.FormatBool(p.Sparkline))
	return q
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg config.CoinGeckoConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// MarketsRaw - сырой JSON /coins/markets для прокси.
func (c *Client) MarketsRaw(ctx context.Context, p MarketsParams) ([]byte, error) {
	return c.get(ctx, []string{"coins", "markets"}, p.values())
}

// MarketsPage - одна страница рынка в валюте currency, упорядоченная по капитализации.
func (c *Client) MarketsPage(ctx context.Context, currency string, page, perPage int) ([]domain.CoinSummary, error) {
	body, err := c.MarketsRaw(ctx, MarketsParams{
		VsCurrency: currency,
		Order:      "market_cap_desc",
		PerPage:    perPage,
		Page:       page,
	})
	if err != nil {
		return nil, err
	}
	var coins []domain.CoinSummary
	if err := json.Unmarshal(body, &coins); err != nil {
		return nil, fmt.Errorf("decoding markets page %d: %w", page, err)
	}
	return coins, nil
}

func (c *Client) CoinRaw(ctx context.Context, id string) ([]byte, error) {
	return c.get(ctx, []string{"coins", id}, nil)
}

// Coin - карточка монеты для бота.
func (c *Client) Coin(ctx context.Context, id string) (domain.CoinDetail, error) {
	var d domain.CoinDetail
	body, err := c.CoinRaw(ctx, id)
	if err != nil {
		return d, err
	}
	if err := json.Unmarshal(body, &d); err != nil {
		return d, fmt.Errorf("decoding coin %q: %w", id, err)
	}
	return d, nil
}

// MarketChartRaw - история цены. q уже содержит vs_currency, days и interval.
func (c *Client) MarketChartRaw(ctx context.Context, id string, q url.Values) ([]byte, error) {
	return c.get(ctx, []string{"coins", id, "market_chart"}, q)
}

func (c *Client) TrendingRaw(ctx context.Context) ([]byte, error) {
	return c.get(ctx, []string{"search", "trending"}, nil)
}

func (c *Client) SearchRaw(ctx context.Context, query string) ([]byte, error) {
	q := url.Values{}
	q.Set("query", query)
	return c.get(ctx, []string{"search"}, q)
}

func (c *Client) get(ctx context.Context, segments []string, q url.Values) ([]byte, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	// каждый сегмент экранируется ровно один раз
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = url.PathEscape(seg)
	}
	u = u.JoinPath(escaped...)
	if q != nil {
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	ua := c.cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	if c.cfg.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w: %w", apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w: %w", apperrors.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: body}
	}
	return body, nil
}

// AsStatusError - достаёт StatusError из цепочки ошибок.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
