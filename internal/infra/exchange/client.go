package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/NastyaGoryachaya/coin-tracker/internal/cache"
	"github.com/NastyaGoryachaya/coin-tracker/internal/config"
	apperrors "github.com/NastyaGoryachaya/coin-tracker/internal/errors"
	"github.com/NastyaGoryachaya/coin-tracker/internal/pkg/clock"
)

var ErrNoRate = errors.New("exchange rate not available")

// Client - клиент open.er-api.com: GET {base_url}/{BASE}.
type Client struct {
	cfg        config.ExchangeConfig
	httpClient *http.Client
}

type latestResponse struct {
	Result   string                     `json:"result"`
	BaseCode string                     `json:"base_code"`
	Rates    map[string]decimal.Decimal `json:"rates"`
}

func NewClient(cfg config.ExchangeConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Rate - курс target за одну единицу base.
func (c *Client) Rate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	target = strings.ToUpper(strings.TrimSpace(target))
	if base == "" || target == "" {
		return decimal.Zero, fmt.Errorf("%w: base and target are required", apperrors.ErrBadRequest)
	}

	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path, err = url.JoinPath(u.Path, base)
	if err != nil {
		return decimal.Zero, fmt.Errorf("building path: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("request failed: %w: %w", apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: exchange api: %s", apperrors.ErrUpstream, resp.Status)
	}

	var data latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return decimal.Zero, fmt.Errorf("decoding response: %w", err)
	}

	rate, ok := data.Rates[target]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s/%s", ErrNoRate, base, target)
	}
	return rate, nil
}

//go:generate mockgen -source=client.go -destination=mocks/rate_fetcher.go -package=mocks RateFetcher

// RateFetcher - источник курсов (Client или мок в тестах).
type RateFetcher interface {
	Rate(ctx context.Context, base, target string) (decimal.Decimal, error)
}

// Service кэширует курсы по паре валют и не даёт ошибкам курса ломать отображение.
type Service struct {
	fetcher RateFetcher
	cache   *cache.TTL[decimal.Decimal]
	ttl     time.Duration
	log     *slog.Logger
}

func NewService(f RateFetcher, ttl time.Duration, clk clock.Clock, log *slog.Logger) *Service {
	return &Service{
		fetcher: f,
		cache:   cache.New[decimal.Decimal](64, clk),
		ttl:     ttl,
		log:     log,
	}
}

// Rate - курс из кэша или апстрима, ошибки возвращаются как есть.
func (s *Service) Rate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	key := strings.ToUpper(base) + "/" + strings.ToUpper(target)
	if r, ok := s.cache.Get(key); ok {
		return r, nil
	}
	r, err := s.fetcher.Rate(ctx, base, target)
	if err != nil {
		return decimal.Zero, err
	}
	s.cache.Set(key, r, s.ttl)
	return r, nil
}

// RateOrDefault - при любой ошибке возвращает 1, чтобы цены показывались без конвертации.
func (s *Service) RateOrDefault(ctx context.Context, base, target string) decimal.Decimal {
	r, err := s.Rate(ctx, base, target)
	if err != nil {
		s.log.Warn("exchange rate unavailable, using 1",
			slog.String("base", base),
			slog.String("target", target),
			slog.String("err", err.Error()))
		return decimal.NewFromInt(1)
	}
	return r
}
