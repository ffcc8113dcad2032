package coinlist

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/NastyaGoryachaya/coin-tracker/internal/domain"
	apperrors "github.com/NastyaGoryachaya/coin-tracker/internal/errors"
	"github.com/NastyaGoryachaya/coin-tracker/internal/metrics"
)

// таймаут одного запроса страницы, не зависит от отмены прогона
const pageRequestTimeout = 10 * time.Second

func (s *Service) run(ctx context.Context, cur string, bc *broadcaster) ([]domain.CoinSummary, error) {
	started := time.Now()
	totalPages := s.TotalPages()
	expected := s.Expected()

	if cached, ok := s.readCache(ctx, cur, expected); ok {
		metrics.LoaderCacheTotal.WithLabelValues(cur, "hit").Inc()
		s.logger.Debug("coin list served from cache", slog.String("currency", cur), slog.Int("coins", len(cached)))
		bc.publish(domain.Snapshot{Currency: cur, Page: totalPages, TotalPages: totalPages, Coins: cached, Complete: true})
		return cached, nil
	}
	metrics.LoaderCacheTotal.WithLabelValues(cur, "miss").Inc()

	agg := make([]domain.CoinSummary, 0, expected)
	complete := true
	for page := 1; page <= totalPages; page++ {
		if page > 1 {
			if err := s.wait(ctx, s.cfg.PageDelay); err != nil {
				metrics.ObserveLoaderRun(cur, "cancelled", started)
				return agg, &LoadError{Currency: cur, Partial: agg, Err: err}
			}
		}

		pf, coins, err := s.fetchPage(ctx, cur, page)
		metrics.LoaderPagesTotal.WithLabelValues(cur, pf.state.String()).Inc()

		switch pf.state {
		case Succeeded:
			agg = append(agg, coins...)
			bc.publish(domain.Snapshot{
				Currency:   cur,
				Page:       page,
				TotalPages: totalPages,
				Coins:      slices.Clone(agg),
				Complete:   complete && page == totalPages,
			})
		case Exhausted:
			complete = false
			s.logger.Warn("page skipped after repeated rate limiting",
				slog.String("currency", cur),
				slog.Int("page", page),
				slog.Int("attempts", pf.attempt))
		default:
			s.logger.Error("coin list fetch aborted",
				slog.String("currency", cur),
				slog.Int("page", page),
				slog.Int("fetched", len(agg)),
				slog.String("err", err.Error()))
			metrics.ObserveLoaderRun(cur, "failed", started)
			return agg, &LoadError{Currency: cur, Partial: agg, Err: err}
		}
	}

	if complete {
		s.persist(ctx, cur, agg, expected)
		metrics.ObserveLoaderRun(cur, "complete", started)
	} else {
		metrics.ObserveLoaderRun(cur, "partial", started)
	}
	s.logger.Info("coin list loaded",
		slog.String("currency", cur),
		slog.Int("coins", len(agg)),
		slog.Bool("complete", complete))
	return agg, nil
}

// fetchPage делает до MaxAttempts попыток. На 429 ждёт BackoffBase*attempt, любая другая ошибка сразу терминальна.
func (s *Service) fetchPage(ctx context.Context, cur string, page int) (*pageFetch, []domain.CoinSummary, error) {
	pf := newPageFetch(page)
	for {
		if err := ctx.Err(); err != nil {
			pf.to(Failed)
			return pf, nil, err
		}
		pf.to(Attempting)

		coins, err := s.requestPage(ctx, cur, page)
		if err == nil {
			pf.to(Succeeded)
			return pf, coins, nil
		}
		if !errors.Is(err, apperrors.ErrRateLimited) {
			pf.to(Failed)
			return pf, nil, err
		}

		pf.to(RateLimited)
		metrics.LoaderRateLimitedTotal.WithLabelValues(cur).Inc()
		if pf.attempt >= s.cfg.MaxAttempts {
			pf.to(Exhausted)
			return pf, nil, err
		}

		backoff := s.cfg.BackoffBase * time.Duration(pf.attempt)
		s.logger.Warn("rate limited, backing off",
			slog.String("currency", cur),
			slog.Int("page", page),
			slog.Int("attempt", pf.attempt),
			slog.Duration("backoff", backoff))
		if err := s.wait(ctx, backoff); err != nil {
			pf.to(Failed)
			return pf, nil, err
		}
	}
}

// requestPage - запрос, уже ушедший в сеть, доживает до ответа даже после отмены прогона.
func (s *Service) requestPage(ctx context.Context, cur string, page int) ([]domain.CoinSummary, error) {
	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pageRequestTimeout)
	defer cancel()
	return s.provider.MarketsPage(reqCtx, cur, page, s.cfg.PerPage)
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-s.sleeper.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
