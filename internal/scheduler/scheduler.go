package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/NastyaGoryachaya/coin-tracker/internal/metrics"
)

//go:generate mockgen -source=scheduler.go -destination=mocks/warmer.go -package=mocks

// Warmer - то, что прогревает кэш списка монет для валюты.
type Warmer interface {
	LoadCoinList(ctx context.Context, currency string) (int, error)
}

type Scheduler struct {
	warmer     Warmer
	schedule   cron.Schedule
	setting    string
	currencies []string
	logger     *slog.Logger
}

// ParseSchedule - длительность ("5m", "90s") или стандартное cron-выражение ("*/5 * * * *").
func ParseSchedule(setting string) (cron.Schedule, error) {
	setting = strings.TrimSpace(setting)
	if d, err := time.ParseDuration(setting); err == nil {
		if d <= 0 {
			return nil, fmt.Errorf("schedule interval must be positive, got %s", d)
		}
		return cron.Every(d), nil
	}
	sched, err := cron.ParseStandard(setting)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", setting, err)
	}
	return sched, nil
}

// NewScheduler - конструктор планировщика прогрева кэша
func NewScheduler(warmer Warmer, setting string, currencies []string, logger *slog.Logger) (*Scheduler, error) {
	sched, err := ParseSchedule(setting)
	if err != nil {
		return nil, err
	}
	if len(currencies) == 0 {
		currencies = []string{"usd"}
	}
	return &Scheduler{
		warmer:     warmer,
		schedule:   sched,
		setting:    setting,
		currencies: currencies,
		logger:     logger,
	}, nil
}

// Start - запускает периодическое выполнение задачи до остановки контекста
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started", slog.String("schedule", s.setting), slog.Any("currencies", s.currencies))

	// первый запуск сразу
	s.runOnce(ctx)

	for {
		next := s.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-timer.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

// runOnce - одна итерация: прогреть кэш для каждой валюты по очереди
func (s *Scheduler) runOnce(ctx context.Context) {
	for _, cur := range s.currencies {
		if ctx.Err() != nil {
			return
		}
		started := time.Now()
		n, err := s.warmer.LoadCoinList(ctx, cur)
		if err != nil {
			metrics.ScheduledJobFailuresTotal.WithLabelValues(cur).Inc()
			s.logger.Error("tick: warm-up failed", slog.String("currency", cur), slog.Any("err", err))
			continue
		}
		metrics.ScheduledJobLastRun.WithLabelValues(cur).SetToCurrentTime()
		s.logger.Debug("tick: warm-up completed",
			slog.String("currency", cur),
			slog.Int("coins", n),
			slog.Duration("took", time.Since(started)))
	}
}
