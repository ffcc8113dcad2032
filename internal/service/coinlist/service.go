package coinlist

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/coin-tracker/internal/config"
	"github.com/NastyaGoryachaya/coin-tracker/internal/domain"
	apperrors "github.com/NastyaGoryachaya/coin-tracker/internal/errors"
	"github.com/NastyaGoryachaya/coin-tracker/internal/pkg/clock"
)

// Загрузчик полного списка монет: постраничный обход апстрима с ретраями,
// постоянный кэш с TTL и общий прогон для одновременных запросов одной валюты.

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Provider - источник страниц рынка (CoinGecko /coins/markets).
type Provider interface {
	MarketsPage(ctx context.Context, currency string, page, perPage int) ([]domain.CoinSummary, error)
}

// Store - постоянное хранилище ключ-значение. Get возвращает repository.ErrNotFound для отсутствующего ключа.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Sleeper - ожидание между запросами, подменяется в тестах.
type Sleeper interface {
	After(d time.Duration) <-chan time.Time
}

type realSleeper struct{}

func (realSleeper) After(d time.Duration) <-chan time.Time { return time.After(d) }

type Service struct {
	provider Provider
	store    Store
	cfg      config.LoaderConfig
	clock    clock.Clock
	sleeper  Sleeper
	logger   *slog.Logger

	mu      sync.Mutex
	flights map[string]*flight
}

// flight - один прогон загрузки для валюты и все, кто его ждёт.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
	bc      *broadcaster
	done    chan struct{}
	result  []domain.CoinSummary
	err     error
}

func NewService(provider Provider, store Store, cfg config.LoaderConfig, logger *slog.Logger) *Service {
	return NewServiceWithClock(provider, store, cfg, clock.NewRealClock(), realSleeper{}, logger)
}

// NewServiceWithClock - конструктор для тестов: фиксированные "часы" и мгновенные ожидания.
func NewServiceWithClock(provider Provider, store Store, cfg config.LoaderConfig, clk clock.Clock, sleeper Sleeper, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		store:    store,
		cfg:      withDefaults(cfg),
		clock:    clk,
		sleeper:  sleeper,
		logger:   logger,
		flights:  make(map[string]*flight),
	}
}

func withDefaults(cfg config.LoaderConfig) config.LoaderConfig {
	if cfg.TargetTotal <= 0 {
		cfg.TargetTotal = 500
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = 25
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 60 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.PageDelay <= 0 {
		cfg.PageDelay = time.Second
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = 3 * time.Second
	}
	return cfg
}

// TotalPages - сколько страниц нужно, чтобы набрать TargetTotal монет.
func (s *Service) TotalPages() int {
	return (s.cfg.TargetTotal + s.cfg.PerPage - 1) / s.cfg.PerPage
}

// Expected - размер полного списка, при котором кэш считается полным.
func (s *Service) Expected() int {
	return s.cfg.PerPage * s.TotalPages()
}

func normalizeCurrency(currency string) (string, error) {
	cur := strings.ToLower(strings.TrimSpace(currency))
	if cur == "" {
		return "", fmt.Errorf("%w: currency is required", apperrors.ErrBadRequest)
	}
	return cur, nil
}

// LoadCoinList - полный список монет в валюте currency: из кэша, если он свежий и полный,
// иначе постранично из апстрима. При ошибке возвращается *LoadError с частичным результатом.
func (s *Service) LoadCoinList(ctx context.Context, currency string) ([]domain.CoinSummary, error) {
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}

	f, err := s.join(ctx, cur)
	if err != nil {
		return nil, err
	}
	defer s.leave(f)

	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Stream - ленивый поток промежуточных снимков: по одному на каждую полученную страницу
// или один полный снимок из кэша. Ошибка прогона приходит последним элементом.
func (s *Service) Stream(ctx context.Context, currency string) iter.Seq2[domain.Snapshot, error] {
	return func(yield func(domain.Snapshot, error) bool) {
		cur, err := normalizeCurrency(currency)
		if err != nil {
			yield(domain.Snapshot{}, err)
			return
		}
		f, err := s.join(ctx, cur)
		if err != nil {
			yield(domain.Snapshot{}, err)
			return
		}
		defer s.leave(f)

		for snap, err := range f.bc.subscribe(ctx) {
			if !yield(snap, err) {
				return
			}
		}
	}
}

// join присоединяет вызывающего к текущему прогону или запускает новый.
// Отменённый прогон (все ушли) дожидается завершения текущей страницы, и только потом стартует следующий.
func (s *Service) join(ctx context.Context, cur string) (*flight, error) {
	for {
		s.mu.Lock()
		f, ok := s.flights[cur]
		if !ok {
			f = s.start(cur)
			f.waiters++
			s.mu.Unlock()
			return f, nil
		}
		if f.ctx.Err() == nil {
			f.waiters++
			s.mu.Unlock()
			return f, nil
		}
		s.mu.Unlock()

		select {
		case <-f.done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// start вызывается под s.mu.
func (s *Service) start(cur string) *flight {
	// прогон живёт, пока есть хотя бы один ожидающий, а не по контексту первого запроса
	runCtx, cancel := context.WithCancel(context.Background())
	f := &flight{
		ctx:    runCtx,
		cancel: cancel,
		bc:     newBroadcaster(),
		done:   make(chan struct{}),
	}
	s.flights[cur] = f

	go func() {
		f.result, f.err = s.run(runCtx, cur, f.bc)
		f.bc.finish(f.err)

		s.mu.Lock()
		if s.flights[cur] == f {
			delete(s.flights, cur)
		}
		s.mu.Unlock()

		cancel()
		close(f.done)
	}()
	return f
}

func (s *Service) leave(f *flight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.waiters--
	if f.waiters == 0 {
		f.cancel()
	}
}
