package bot

import "github.com/NastyaGoryachaya/coin-tracker/internal/ports/errcode"

func translateBotError(code errcode.Code) string {
	switch code {
	case errcode.NotFoundCoins:
		return "Монета не найдена"
	case errcode.BadRequest:
		return "Некорректный запрос"
	case errcode.RateLimited:
		return "CoinGecko ограничил запросы, попробуйте через минуту"
	case errcode.Network, errcode.Upstream:
		return "CoinGecko сейчас недоступен, попробуйте позже"
	default:
		return "Внутренняя ошибка сервиса, попробуйте позже"
	}
}
