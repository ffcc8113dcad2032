package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v4"

	"github.com/NastyaGoryachaya/coin-tracker/internal/ports/errcode"
)

// полный список собирается постранично с паузами, поэтому ждём дольше обычного
const listTimeout = 90 * time.Second

var ErrInvalidPage = errors.New("invalid page")

// handleStart - отправляет справку по доступным командам бота
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send(helpText)
}

const helpText = "Привет! Доступные команды:\n" +
	"/top [валюта] [страница] - топ монет по капитализации (например /top usd 2)\n" +
	"/find {запрос} [валюта] - поиск по названию или тикеру\n" +
	"/coin {id} - карточка монеты (например /coin bitcoin)"

func (b *Bot) handleTop(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
	defer cancel()
	return c.Send(b.topMessage(ctx, c.Args()))
}

func (b *Bot) handleFind(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
	defer cancel()
	return c.Send(b.findMessage(ctx, c.Args()))
}

func (b *Bot) handleCoin(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return c.Send(b.coinMessage(ctx, c.Args()))
}

// topMessage - /top [currency] [page]. Аргументы в любом порядке: число - страница, остальное - валюта.
func (b *Bot) topMessage(ctx context.Context, args []string) string {
	currency, page := b.cfg.Currency, 1
	for _, a := range args {
		if n, err := parsePage(a); err == nil {
			page = n
			continue
		} else if _, numErr := strconv.Atoi(a); numErr == nil {
			return "Некорректный номер страницы. Пример: /top usd 2"
		}
		currency = strings.ToLower(a)
	}

	p, err := b.coins.Page(ctx, currency, "", page, b.cfg.PageSize)
	if err != nil {
		b.logger.Error("bot: /top failed", slog.String("currency", currency), slog.String("error", err.Error()))
		return translateBotError(errcode.Of(err))
	}
	return formatPage(p, currency, "")
}

// findMessage - /find {query} [currency]
func (b *Bot) findMessage(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return "Укажи запрос: /find btc"
	}
	query, currency := args[0], b.cfg.Currency
	if len(args) > 1 {
		currency = strings.ToLower(args[1])
	}

	p, err := b.coins.Page(ctx, currency, query, 1, b.cfg.PageSize)
	if err != nil {
		b.logger.Error("bot: /find failed", slog.String("query", query), slog.String("error", err.Error()))
		return translateBotError(errcode.Of(err))
	}
	if p.Total == 0 {
		return fmt.Sprintf("По запросу %q ничего не найдено", query)
	}
	return formatPage(p, currency, query)
}

// coinMessage - /coin {id}
func (b *Bot) coinMessage(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return "Укажи id монеты: /coin bitcoin"
	}
	id := strings.ToLower(strings.TrimSpace(args[0]))
	coin, err := b.coins.Coin(ctx, id, b.cfg.Currency)
	if err != nil {
		b.logger.Warn("bot: /coin failed", slog.String("id", id), slog.String("error", err.Error()))
		return translateBotError(errcode.Of(err))
	}
	return formatCoinDetails(coin, b.cfg.Currency)
}

// parsePage - парсит номер страницы и валидирует значение (> 0)
func parsePage(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, ErrInvalidPage
	}
	return n, nil
}
