package pricefmt

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Форматирование цен и капитализации для отображения.

const NGN = "NGN"

var printer = message.NewPrinter(language.English)

type Color string

const (
	Gray  Color = "gray"
	Green Color = "green"
	Red   Color = "red"
)

// Convert - перевод значения из USD в currency. Конвертируется только NGN, некорректный курс считается равным 1.
func Convert(value float64, currency string, rate float64, valueIsUSD bool) float64 {
	if !valueIsUSD || !strings.EqualFold(currency, NGN) {
		return value
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		rate = 1
	}
	return decimal.NewFromFloat(value).Mul(decimal.NewFromFloat(rate)).InexactFloat64()
}

// FormatPrice - число знаков зависит от величины: меньше 0.001 - 6, меньше 1 - 4, иначе 2.
// Хвостовые нули убираются, но не меньше двух знаков после точки. Тысячи разделяются запятой.
func FormatPrice(price float64, currency string, rate float64, valueIsUSD bool) string {
	if math.IsNaN(price) {
		return "NaN"
	}
	v := Convert(price, currency, rate, valueIsUSD)

	places := int32(2)
	switch {
	case v < 0.001:
		places = 6
	case v < 1:
		places = 4
	}
	return group(decimal.NewFromFloat(v), places, 2)
}

// FormatMarketCap - для NGN компактная запись (1.5M, 2.34B), для остальных валют полное число с разделителями.
func FormatMarketCap(value float64, currency string, rate float64) string {
	if value == 0 || math.IsNaN(value) {
		return "-"
	}
	if !strings.EqualFold(currency, NGN) {
		return group(decimal.NewFromFloat(value), 3, 0)
	}
	return compact(Convert(value, currency, rate, true))
}

// Format24hChange - "+1.23%" / "-4.56%", для отсутствующего значения "N/A".
func Format24hChange(change *float64) string {
	if change == nil {
		return "N/A"
	}
	s := decimal.NewFromFloat(*change).StringFixed(2) + "%"
	if *change >= 0 {
		return "+" + s
	}
	return s
}

func ChangeColor(change *float64) Color {
	if change == nil {
		return Gray
	}
	if *change >= 0 {
		return Green
	}
	return Red
}

var suffixes = []string{"", "K", "M", "B", "T"}

// compact - сначала округление до 2 знаков, потом выбор единицы: 999 995 -> 1M, а не 1,000K.
func compact(v float64) string {
	d := decimal.NewFromFloat(v)
	thousand := decimal.NewFromInt(1000)

	unit := 0
	scaled := d.Round(2)
	for unit < len(suffixes)-1 && scaled.Abs().GreaterThanOrEqual(thousand) {
		unit++
		scaled = d.Shift(int32(-3 * unit)).Round(2)
	}
	return group(scaled, 2, 0) + suffixes[unit]
}

// group округляет до places знаков, убирает хвостовые нули до minPlaces и расставляет разделители тысяч.
func group(d decimal.Decimal, places, minPlaces int32) string {
	fixed := d.StringFixed(places)

	intPart, frac, _ := strings.Cut(fixed, ".")
	for int32(len(frac)) > minPlaces && strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1]
	}

	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")
	n, _ := decimal.NewFromString(intPart)
	out := printer.Sprintf("%d", n.IntPart())
	if neg && (n.IntPart() != 0 || strings.Trim(frac, "0") != "") {
		out = "-" + out
	}
	if frac != "" {
		out += "." + frac
	}
	return out
}
