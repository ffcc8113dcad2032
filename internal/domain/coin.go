package domain

// CoinSummary - одна строка агрегированного списка монет (ответ /coins/markets).
type CoinSummary struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	Image                    string   `json:"image"`
	CurrentPrice             float64  `json:"current_price"`
	MarketCap                float64  `json:"market_cap"`
	MarketCapRank            *int     `json:"market_cap_rank"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
}

// CoinDetail - урезанная карточка монеты из /coins/{id}
type CoinDetail struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	MarketCapRank *int   `json:"market_cap_rank"`
	Description   struct {
		EN string `json:"en"`
	} `json:"description"`
	Image struct {
		Thumb string `json:"thumb"`
		Small string `json:"small"`
		Large string `json:"large"`
	} `json:"image"`
	MarketData struct {
		CurrentPrice map[string]float64 `json:"current_price"`
		MarketCap    map[string]float64 `json:"market_cap"`
	} `json:"market_data"`
}

// PriceIn - цена в валюте currency (ключи CoinGecko в нижнем регистре).
func (d CoinDetail) PriceIn(currency string) (float64, bool) {
	v, ok := d.MarketData.CurrentPrice[currency]
	return v, ok
}

// MarketCapIn - капитализация в валюте currency.
func (d CoinDetail) MarketCapIn(currency string) (float64, bool) {
	v, ok := d.MarketData.MarketCap[currency]
	return v, ok
}
