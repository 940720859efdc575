// Package notification implements the outbound order notification channel.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"suq/config"
	"suq/internal/domain/entity"
	"suq/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	telegramAPIBase = "https://api.telegram.org"
	defaultTimeout  = 10 * time.Second
)

// telegramNotifier posts a sendMessage call to the Telegram Bot API for
// every placed order. Without a configured bot token it degrades to logging
// the rendered message, which keeps local setups working without a bot.
type telegramNotifier struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
	logger   *slog.Logger
}

// NewTelegramNotifier is the constructor for telegramNotifier.
func NewTelegramNotifier(cfg *config.Config, logger *slog.Logger) service.OrderNotifier {
	timeout := defaultTimeout
	botToken, chatID := "", ""
	if cfg.Telegram != nil {
		botToken = cfg.Telegram.BotToken
		chatID = cfg.Telegram.ChatID
		if cfg.Telegram.Timeout > 0 {
			timeout = cfg.Telegram.Timeout
		}
	}

	return &telegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  telegramAPIBase,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func (n *telegramNotifier) Notify(ctx context.Context, order *entity.Order) error {
	message := renderOrderMessage(order)

	if n.botToken == "" {
		n.logger.Info("Telegram bot token not configured, logging order notification instead",
			slog.String("orderID", order.ID),
			slog.String("message", message))

		return nil
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    n.chatID,
		Text:      message,
		ParseMode: "Markdown",
	})
	if err != nil {
		return errors.Wrap(err, "encode sendMessage request")
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build sendMessage request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "call Telegram API")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("Telegram API returned %d: %s", resp.StatusCode, string(snippet))
	}

	return nil
}

// renderOrderMessage formats the operator-facing notification text.
func renderOrderMessage(order *entity.Order) string {
	return fmt.Sprintf(`🌟 *New Order Received!* 🌟
-------------------------
👗 *Product:* %s
📏 *Size:* %s
🎨 *Color:* %s

👤 *Customer:* %s
📞 *Phone:* %s
📍 *Address:* %s
-------------------------
Processed at: %s`,
		order.ProductName.En,
		order.Size,
		order.Color,
		order.CustomerName,
		order.Phone,
		order.Address,
		order.CreatedAt.Format(time.RFC1123))
}
