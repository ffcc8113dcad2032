package domain

import (
	"encoding/json"
	"fmt"
)

// ChartPoint - точка графика: время в миллисекундах и цена.
type ChartPoint struct {
	TimestampMs int64
	Price       float64
}

// UnmarshalJSON разбирает пару [timestampMs, price].
func (p *ChartPoint) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("chart point: want 2 values, got %d", len(pair))
	}
	p.TimestampMs = int64(pair[0])
	p.Price = pair[1]
	return nil
}

func (p ChartPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{float64(p.TimestampMs), p.Price})
}

// MarketChart - ответ /coins/{id}/market_chart (нужны только цены).
type MarketChart struct {
	Prices []ChartPoint `json:"prices"`
}
