package coinlist

// PageState - состояние загрузки одной страницы.
type PageState int

const (
	Pending PageState = iota
	Attempting
	RateLimited
	Succeeded
	Failed
	Exhausted
)

func (s PageState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Attempting:
		return "attempting"
	case RateLimited:
		return "rate_limited"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Terminal - дальше по этой странице ничего не делаем.
func (s PageState) Terminal() bool {
	return s == Succeeded || s == Failed || s == Exhausted
}

var transitions = map[PageState][]PageState{
	Pending:     {Attempting, Failed},
	Attempting:  {Succeeded, RateLimited, Failed},
	RateLimited: {Attempting, Exhausted, Failed},
}

// pageFetch - попытки загрузки одной страницы.
type pageFetch struct {
	page    int
	attempt int
	state   PageState
}

func newPageFetch(page int) *pageFetch {
	return &pageFetch{page: page, state: Pending}
}

// to переводит страницу в next. Недопустимый переход - ошибка программы.
func (p *pageFetch) to(next PageState) {
	for _, allowed := range transitions[p.state] {
		if allowed == next {
			if next == Attempting {
				p.attempt++
			}
			p.state = next
			return
		}
	}
	panic("coinlist: invalid page transition " + p.state.String() + " -> " + next.String())
}
