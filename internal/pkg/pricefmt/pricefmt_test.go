package pricefmt

import "testing"

func ptr(f float64) *float64 { return &f }

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		currency string
		rate     float64
		isUSD    bool
		want     string
	}{
		{"ngn conversion small", 0.0005, "NGN", 1500, true, "0.75"},
		{"usd large grouped", 64231.5, "USD", 1500, true, "64,231.50"},
		{"usd below one", 0.5234, "USD", 1, true, "0.5234"},
		{"usd tiny", 0.00001234, "USD", 1, true, "0.000012"},
		{"ngn already converted", 2500, "NGN", 1500, false, "2,500.00"},
		{"bad rate falls back to 1", 12, "NGN", 0, true, "12.00"},
		{"ngn large", 60000, "NGN", 1532.25, true, "91,935,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPrice(tt.price, tt.currency, tt.rate, tt.isUSD); got != tt.want {
				t.Fatalf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
			}
		})
	}
}

func TestFormatMarketCap(t *testing.T) {
	tests := []struct {
		value    float64
		currency string
		rate     float64
		want     string
	}{
		{0, "USD", 1, "-"},
		{1234567890, "USD", 1, "1,234,567,890"},
		{1_000_000, "NGN", 1500, "1.5B"},
		{2_345_678_900_000, "NGN", 1, "2.35T"},
		{12_000, "NGN", 1, "12K"},
		{950, "NGN", 1, "950"},
		{999_995, "NGN", 1, "1M"},
		{999_994, "NGN", 1, "999.99K"},
		{999_999_999, "NGN", 1, "1B"},
		{1_500_000, "NGN", 1, "1.5M"},
	}
	for _, tt := range tests {
		if got := FormatMarketCap(tt.value, tt.currency, tt.rate); got != tt.want {
			t.Fatalf("FormatMarketCap(%v, %s) = %q, want %q", tt.value, tt.currency, got, tt.want)
		}
	}
}

func TestFormat24hChange(t *testing.T) {
	if got := Format24hChange(nil); got != "N/A" {
		t.Fatalf("nil change: %q", got)
	}
	if got := Format24hChange(ptr(1.234)); got != "+1.23%" {
		t.Fatalf("positive change: %q", got)
	}
	if got := Format24hChange(ptr(-4.567)); got != "-4.57%" {
		t.Fatalf("negative change: %q", got)
	}
	if got := Format24hChange(ptr(0)); got != "+0.00%" {
		t.Fatalf("zero change: %q", got)
	}
}

func TestChangeColor(t *testing.T) {
	if ChangeColor(nil) != Gray || ChangeColor(ptr(0)) != Green || ChangeColor(ptr(-0.1)) != Red {
		t.Fatalf("unexpected colors")
	}
}
