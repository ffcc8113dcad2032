package bot

import (
	"context"
	"log/slog"
	"time"

	"gopkg.in/telebot.v4"
)

//go:generate mockgen -source=bot.go -destination=mocks/coins_reader.go -package=mocks

// Config - конфигурация бота
type Config struct {
	Token           string
	LongPollTimeout time.Duration
	// Currency - валюта по умолчанию для /top и /find
	Currency string
	PageSize int
}

// CoinDTO - монета в виде, удобном для сообщений
type CoinDTO struct {
	ID        string
	Symbol    string
	Name      string
	Rank      int
	Price     float64
	MarketCap float64
	Change24h *float64
}

// PageDTO - страница списка монет
type PageDTO struct {
	Items     []CoinDTO
	Page      int
	PageCount int
	Total     int
	// Partial - список загружен не полностью (апстрим ограничил запросы или упал посередине)
	Partial bool
}

// CoinsReader - чтение списка и карточек монет
type CoinsReader interface {
	Page(ctx context.Context, currency, query string, page, pageSize int) (PageDTO, error)
	Coin(ctx context.Context, id, currency string) (CoinDTO, error)
}

// Bot - Telegram-интерфейс к загрузчику списка монет
type Bot struct {
	bot    *telebot.Bot
	coins  CoinsReader
	cfg    Config
	logger *slog.Logger
}

// New создаёт новый экземпляр бота
func New(cfg Config, coins CoinsReader, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}
	cfg = withDefaults(cfg)

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:    b,
		coins:  coins,
		cfg:    cfg,
		logger: logger,
	}

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/top", bot.handleTop)
	b.Handle("/find", bot.handleFind)
	b.Handle("/coin", bot.handleCoin)
	return bot, nil
}

func withDefaults(cfg Config) Config {
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	return cfg
}

// Start запускает long polling
func (b *Bot) Start(ctx context.Context) {
	go b.bot.Start()
	<-ctx.Done()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
