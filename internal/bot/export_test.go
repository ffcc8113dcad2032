package bot

import (
	"context"
	"log/slog"
)

// NewForTest - бот без подключения к Telegram, только построение сообщений.
func NewForTest(cfg Config, coins CoinsReader, logger *slog.Logger) *Bot {
	return &Bot{coins: coins, cfg: withDefaults(cfg), logger: logger}
}

func (b *Bot) TopMessage(ctx context.Context, args []string) string  { return b.topMessage(ctx, args) }
func (b *Bot) FindMessage(ctx context.Context, args []string) string { return b.findMessage(ctx, args) }
func (b *Bot) CoinMessage(ctx context.Context, args []string) string { return b.coinMessage(ctx, args) }
