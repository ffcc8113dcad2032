package domain

// Snapshot - промежуточный агрегат загрузки списка: по одному на каждую успешно полученную страницу.
type Snapshot struct {
	Currency   string        `json:"currency"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Coins      []CoinSummary `json:"coins"`
	Complete   bool          `json:"complete"`
}

// Page - страница отфильтрованного списка для отображения.
type Page struct {
	Items     []CoinSummary `json:"items"`
	Page      int           `json:"page"`
	PageCount int           `json:"page_count"`
	Total     int           `json:"total"`
}
