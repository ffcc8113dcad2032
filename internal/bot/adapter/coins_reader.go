package adapter

import (
	"context"
	"errors"
	"strings"

	"github.com/NastyaGoryachaya/coin-tracker/internal/bot"
	"github.com/NastyaGoryachaya/coin-tracker/internal/domain"
	apperrors "github.com/NastyaGoryachaya/coin-tracker/internal/errors"
	"github.com/NastyaGoryachaya/coin-tracker/internal/service/coinlist"
)

// coinsReader - адаптер, который превращает загрузчик списка и клиент CoinGecko в интерфейс бота CoinsReader.

type Lister interface {
	LoadCoinList(ctx context.Context, currency string) ([]domain.CoinSummary, error)
}

type DetailFetcher interface {
	Coin(ctx context.Context, id string) (domain.CoinDetail, error)
}

type coinsReader struct {
	lister  Lister
	details DetailFetcher
}

// NewCoinsReader - конструктор адаптера.
func NewCoinsReader(lister Lister, details DetailFetcher) bot.CoinsReader {
	return coinsReader{lister: lister, details: details}
}

// Page - страница отфильтрованного списка. Частично загруженный список отдаётся с флагом Partial.
func (a coinsReader) Page(ctx context.Context, currency, query string, page, pageSize int) (bot.PageDTO, error) {
	list, err := a.lister.LoadCoinList(ctx, currency)
	partial := false
	if err != nil {
		var le *coinlist.LoadError
		if !errors.As(err, &le) || len(le.Partial) == 0 {
			return bot.PageDTO{}, err
		}
		list, partial = le.Partial, true
	}

	items, pageCount := coinlist.FilterAndPaginate(list, query, page, pageSize)
	out := bot.PageDTO{
		Items:     make([]bot.CoinDTO, 0, len(items)),
		Page:      page,
		PageCount: pageCount,
		Total:     len(coinlist.Filter(list, query)),
		Partial:   partial,
	}
	for _, it := range items {
		out.Items = append(out.Items, toDTO(it))
	}
	return out, nil
}

// Coin - карточка монеты с ценой в currency.
func (a coinsReader) Coin(ctx context.Context, id, currency string) (bot.CoinDTO, error) {
	d, err := a.details.Coin(ctx, id)
	if err != nil {
		return bot.CoinDTO{}, err
	}
	cur := strings.ToLower(currency)
	price, ok := d.PriceIn(cur)
	if !ok {
		return bot.CoinDTO{}, apperrors.ErrCoinNotFound
	}
	mcap, _ := d.MarketCapIn(cur)

	out := bot.CoinDTO{
		ID:        d.ID,
		Symbol:    d.Symbol,
		Name:      d.Name,
		Price:     price,
		MarketCap: mcap,
	}
	if d.MarketCapRank != nil {
		out.Rank = *d.MarketCapRank
	}
	return out, nil
}

func toDTO(c domain.CoinSummary) bot.CoinDTO {
	out := bot.CoinDTO{
		ID:        c.ID,
		Symbol:    c.Symbol,
		Name:      c.Name,
		Price:     c.CurrentPrice,
		MarketCap: c.MarketCap,
		Change24h: c.PriceChangePercentage24h,
	}
	if c.MarketCapRank != nil {
		out.Rank = *c.MarketCapRank
	}
	return out
}
