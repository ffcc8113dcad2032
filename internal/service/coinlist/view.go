package coinlist

import (
	"strings"
	"sync"

	"github.com/NastyaGoryachaya/coin-tracker/internal/domain"
)

// FilterAndPaginate - фильтр по подстроке в имени или символе (без учёта регистра) и выбор страницы.
// Пустой запрос возвращает всё. Страницы нумеруются с 1, вне диапазона - пустой срез.
func FilterAndPaginate(list []domain.CoinSummary, query string, page, pageSize int) ([]domain.CoinSummary, int) {
	filtered := Filter(list, query)
	if pageSize <= 0 {
		pageSize = 1
	}
	pageCount := (len(filtered) + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		return []domain.CoinSummary{}, pageCount
	}

	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []domain.CoinSummary{}, pageCount
	}
	end := min(start+pageSize, len(filtered))
	return filtered[start:end], pageCount
}

func Filter(list []domain.CoinSummary, query string) []domain.CoinSummary {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := make([]domain.CoinSummary, 0, len(list))
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Symbol), q) {
			out = append(out, c)
		}
	}
	return out
}

// View - состояние просмотра списка: запрос и текущая страница.
type View struct {
	mu       sync.Mutex
	query    string
	page     int
	pageSize int
}

func NewView(pageSize int) *View {
	if pageSize <= 0 {
		pageSize = 25
	}
	return &View{page: 1, pageSize: pageSize}
}

// SetQuery всегда сбрасывает страницу на первую.
func (v *View) SetQuery(q string) {
	v.mu.Lock()
	v.query = q
	v.page = 1
	v.mu.Unlock()
}

func (v *View) SetPage(p int) {
	v.mu.Lock()
	if p < 1 {
		p = 1
	}
	v.page = p
	v.mu.Unlock()
}

func (v *View) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

// Apply - страница списка с учётом текущего запроса.
func (v *View) Apply(list []domain.CoinSummary) domain.Page {
	v.mu.Lock()
	q, p, size := v.query, v.page, v.pageSize
	v.mu.Unlock()

	items, pageCount := FilterAndPaginate(list, q, p, size)
	return domain.Page{
		Items:     items,
		Page:      p,
		PageCount: pageCount,
		Total:     len(Filter(list, q)),
	}
}
