package bot_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/NastyaGoryachaya/coin-tracker/internal/bot"
	"github.com/NastyaGoryachaya/coin-tracker/internal/bot/mocks"
	apperrors "github.com/NastyaGoryachaya/coin-tracker/internal/errors"
)

func setupBot(t *testing.T) (*gomock.Controller, *mocks.MockCoinsReader, *bot.Bot) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockCoinsReader(ctrl)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctrl, reader, bot.NewForTest(bot.Config{Currency: "usd", PageSize: 10}, reader, log)
}

func TestTop_ParsesCurrencyAndPage(t *testing.T) {
	ctrl, reader, b := setupBot(t)
	defer ctrl.Finish()

	change := -1.5
	reader.EXPECT().Page(gomock.Any(), "eur", "", 2, 10).Return(bot.PageDTO{
		Items:     []bot.CoinDTO{{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", Rank: 11, Price: 1234.5, Change24h: &change}},
		Page:      2,
		PageCount: 50,
		Total:     500,
	}, nil)

	msg := b.TopMessage(context.Background(), []string{"2", "EUR"})
	if !strings.Contains(msg, "11. Bitcoin (BTC) | 1,234.50 EUR | -1.50%") {
		t.Fatalf("unexpected message:\n%s", msg)
	}
	if !strings.Contains(msg, "Страница 2 из 50") {
		t.Fatalf("page footer missing:\n%s", msg)
	}
}

func TestTop_InvalidPage(t *testing.T) {
	ctrl, _, b := setupBot(t)
	defer ctrl.Finish()

	if msg := b.TopMessage(context.Background(), []string{"0"}); !strings.Contains(msg, "Некорректный номер страницы") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestTop_RateLimited(t *testing.T) {
	ctrl, reader, b := setupBot(t)
	defer ctrl.Finish()

	reader.EXPECT().Page(gomock.Any(), "usd", "", 1, 10).Return(bot.PageDTO{}, apperrors.ErrRateLimited)
	if msg := b.TopMessage(context.Background(), nil); !strings.Contains(msg, "ограничил запросы") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestFind_NoResults(t *testing.T) {
	ctrl, reader, b := setupBot(t)
	defer ctrl.Finish()

	reader.EXPECT().Page(gomock.Any(), "usd", "zzz", 1, 10).Return(bot.PageDTO{Page: 1, PageCount: 1}, nil)
	if msg := b.FindMessage(context.Background(), []string{"zzz"}); !strings.Contains(msg, "ничего не найдено") {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := b.FindMessage(context.Background(), nil); !strings.Contains(msg, "/find btc") {
		t.Fatalf("usage hint expected, got %q", msg)
	}
}

func TestCoin_NotFound(t *testing.T) {
	ctrl, reader, b := setupBot(t)
	defer ctrl.Finish()

	reader.EXPECT().Coin(gomock.Any(), "nope", "usd").Return(bot.CoinDTO{}, apperrors.ErrCoinNotFound)
	if msg := b.CoinMessage(context.Background(), []string{"NOPE"}); msg != "Монета не найдена" {
		t.Fatalf("unexpected message %q", msg)
	}
}
