package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	botpkg "github.com/NastyaGoryachaya/coin-tracker/internal/bot"
	"github.com/NastyaGoryachaya/coin-tracker/internal/bot/adapter"
	"github.com/NastyaGoryachaya/coin-tracker/internal/cache"
	"github.com/NastyaGoryachaya/coin-tracker/internal/config"
	"github.com/NastyaGoryachaya/coin-tracker/internal/infra/api_client"
	"github.com/NastyaGoryachaya/coin-tracker/internal/infra/db"
	"github.com/NastyaGoryachaya/coin-tracker/internal/infra/exchange"
	"github.com/NastyaGoryachaya/coin-tracker/internal/pkg/clock"
	"github.com/NastyaGoryachaya/coin-tracker/internal/repository"
	"github.com/NastyaGoryachaya/coin-tracker/internal/scheduler"
	"github.com/NastyaGoryachaya/coin-tracker/internal/service/coinlist"
	"github.com/NastyaGoryachaya/coin-tracker/internal/transport/httptransport"
)

type App struct {
	cfg *config.Config
	log *slog.Logger

	kv   repository.KV
	e    *echo.Echo
	serv *http.Server

	coins  *coinlist.Service
	warmer *scheduler.Scheduler

	bot *botpkg.Bot
}

// warmerAdapter - планировщику нужен только размер загруженного списка.
type warmerAdapter struct{ svc *coinlist.Service }

func (w warmerAdapter) LoadCoinList(ctx context.Context, currency string) (int, error) {
	list, err := w.svc.LoadCoinList(ctx, currency)
	return len(list), err
}

// запас, чтобы ответ успел уйти до WriteTimeout сервера
const writeHeadroom = 5 * time.Second

// coinsHandlerTimeout - бюджет /api/coins/all, строго меньше WriteTimeout сервера.
func coinsHandlerTimeout(s config.ServerConfig) time.Duration {
	if s.WriteTimeout <= 0 {
		return 0
	}
	if t := s.WriteTimeout - writeHeadroom; t >= writeHeadroom {
		return t
	}
	return s.WriteTimeout / 2
}

func NewApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	kv, err := db.OpenKV(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	app.kv = kv

	clk := clock.NewRealClock()
	gecko := api_client.NewClient(cfg.CoinGecko)
	rates := exchange.NewService(exchange.NewClient(cfg.Exchange), cfg.Exchange.CacheTTL, clk, log)
	app.coins = coinlist.NewService(gecko, kv, cfg.Loader, log)

	charts := cache.New[[]byte](cfg.Proxy.ChartCacheCapacity, clk)
	proxy := httptransport.NewProxyHandler(log, gecko, charts, cfg.Proxy.ChartTTL, cfg.Server.HandlerTimeout)
	coinsHandler := httptransport.NewCoinsHandler(log, app.coins, rates, coinsHandlerTimeout(cfg.Server))
	app.e = httptransport.NewRouter(log, proxy, coinsHandler)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      app.e,
	}

	if cfg.Scheduler.Enabled {
		app.warmer, err = scheduler.NewScheduler(warmerAdapter{app.coins}, cfg.Scheduler.Schedule, cfg.Scheduler.Currencies, log)
		if err != nil {
			kv.Close()
			return nil, err
		}
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена - ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			kv.Close()
			return nil, errors.New("telegram token is empty")
		}

		botApp, err := botpkg.New(
			botpkg.Config{
				Token:           token,
				LongPollTimeout: 10 * time.Second,
				Currency:        cfg.Telegram.Currency,
				PageSize:        cfg.Telegram.PageSize,
			},
			adapter.NewCoinsReader(app.coins, gecko),
			log,
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			kv.Close()
			return nil, err
		}
		app.bot = botApp
	}
	log.Info("app initialized",
		slog.String("storage", cfg.Storage.Driver),
		slog.Bool("warmer_enabled", app.warmer != nil),
		slog.Bool("bot_attached", app.bot != nil),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.warmer != nil {
		a.log.Info("starting cache warmer")
		go a.warmer.Start(ctx)
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		go a.bot.Start(ctx)
	}

	errCh := make(chan error, 1)
	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		a.log.Error("http server error", slog.String("error", runErr.Error()))
	}
	if err := a.Shutdown(context.Background()); err != nil {
		return err
	}
	return runErr
}

func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// StartServer обслуживает a.serv, а не e.Server, поэтому гасим именно его
	if a.serv != nil {
		if err := a.serv.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			a.log.Error("storage close error", slog.String("error", err.Error()))
		}
	}

	a.log.Info("application stopped")
	return nil
}
