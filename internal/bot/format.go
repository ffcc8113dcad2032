package bot

import (
	"fmt"
	"strings"

	"github.com/NastyaGoryachaya/coin-tracker/internal/pkg/pricefmt"
)

// formatCoinLine - строка списка: ранг, тикер, цена, изменение за 24ч
func formatCoinLine(c CoinDTO, currency string) string {
	return fmt.Sprintf("%d. %s (%s) | %s %s | %s",
		c.Rank,
		c.Name,
		strings.ToUpper(c.Symbol),
		pricefmt.FormatPrice(c.Price, currency, 1, false),
		strings.ToUpper(currency),
		pricefmt.Format24hChange(c.Change24h),
	)
}

func formatPage(p PageDTO, currency, query string) string {
	var b strings.Builder
	if query != "" {
		fmt.Fprintf(&b, "Поиск %q: найдено %d\n", query, p.Total)
	}
	for _, c := range p.Items {
		b.WriteString(formatCoinLine(c, currency))
		b.WriteByte('\n')
	}
	if len(p.Items) == 0 {
		b.WriteString("На этой странице монет нет\n")
	}
	fmt.Fprintf(&b, "Страница %d из %d", p.Page, p.PageCount)
	if p.Partial {
		b.WriteString("\nСписок загружен не полностью")
	}
	return b.String()
}

// formatCoinDetails - подробное сообщение для команды /coin {id}
func formatCoinDetails(c CoinDTO, currency string) string {
	cur := strings.ToUpper(currency)
	return fmt.Sprintf(
		"[%s] %s\nЦена: %s %s\nКапитализация: %s %s\nИзменение за 24ч: %s",
		strings.ToUpper(c.Symbol),
		c.Name,
		pricefmt.FormatPrice(c.Price, currency, 1, false),
		cur,
		pricefmt.FormatMarketCap(c.MarketCap, currency, 1),
		cur,
		pricefmt.Format24hChange(c.Change24h),
	)
}
