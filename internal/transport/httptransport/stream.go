package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/NastyaGoryachaya/coin-tracker/internal/domain"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS для API открыт, для websocket тоже
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamMessage - одно сообщение потока: снимок или ошибка.
type streamMessage struct {
	Type     string           `json:"type"`
	Snapshot *domain.Snapshot `json:"snapshot,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// StreamCoins - websocket: по одному снимку на каждую загруженную страницу, затем закрытие.
func (h *CoinsHandler) StreamCoins(c echo.Context) error {
	currency := strings.ToLower(queryOr(c, "vs_currency", "usd"))

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return nil
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	// читаем только чтобы заметить закрытие со стороны клиента
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sent := 0
	for snap, err := range h.lister.Stream(ctx, currency) {
		msg := streamMessage{Type: "snapshot", Snapshot: &snap}
		if err != nil {
			msg = streamMessage{Type: "error", Error: err.Error()}
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Warn("websocket write failed",
				slog.String("currency", currency),
				slog.Int("sent", sent),
				slog.String("error", err.Error()))
			return nil
		}
		sent++
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
	h.logger.Debug("websocket stream finished", slog.String("currency", currency), slog.Int("sent", sent))
	return nil
}
