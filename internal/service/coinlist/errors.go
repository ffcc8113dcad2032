package coinlist

import (
	"fmt"

	"github.com/NastyaGoryachaya/coin-tracker/internal/domain"
)

// LoadError - загрузка прервана. Partial содержит всё, что успели получить до ошибки.
type LoadError struct {
	Currency string
	Partial  []domain.CoinSummary
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load coin list (%s): %d coins fetched before failure: %v", e.Currency, len(e.Partial), e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
