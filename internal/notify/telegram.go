// Package notify pushes order events to staff out-of-band.
package notify

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"heladeria/internal/model"
)

// Telegram announces confirmed orders to a staff chat. Send failures are
// logged and otherwise ignored; notification is best-effort and never
// blocks the confirmation flow.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token not set")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

func (t *Telegram) OrderConfirmed(order model.Order) {
	text := fmt.Sprintf("Nuevo pedido #%d - Mesa %d\n", order.ID, order.TableNumber)
	for _, line := range order.Items {
		text += fmt.Sprintf("  %s x%d - $%.2f\n", line.Name, line.Quantity, line.Subtotal())
	}
	text += fmt.Sprintf("Total: $%.2f", order.Total)

	if _, err := t.api.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		slog.Error("telegram notification failed", "order_id", order.ID, "error", err)
	}
}
