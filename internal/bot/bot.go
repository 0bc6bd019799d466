package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ivanoskov/momentum_bot/internal/service"
)

// Sender часть API Telegram, которой пользуются обработчики
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api         Sender
	client      *tgbotapi.BotAPI
	service     *service.Recommender
	pollTimeout time.Duration
}

// NewBot подключается к Telegram по токену
func NewBot(token string, service *service.Recommender, pollTimeout time.Duration) (*Bot, error) {
	client, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot api: %w", err)
	}
	lgr.Printf("[INFO] authorized on account %s", client.Self.UserName)

	b := NewWithSender(client, service)
	b.client = client
	b.pollTimeout = pollTimeout
	return b, nil
}

// NewWithSender создает бота поверх произвольного отправителя
func NewWithSender(api Sender, service *service.Recommender) *Bot {
	return &Bot{
		api:         api,
		service:     service,
		pollTimeout: 60 * time.Second,
	}
}

// Start запускает бота в режиме long polling до отмены контекста
func (b *Bot) Start(ctx context.Context) error {
	if b.client == nil {
		return fmt.Errorf("long polling requires a telegram client")
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(b.pollTimeout.Seconds())

	updates := b.client.GetUpdatesChan(u)
	defer b.client.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			lgr.Printf("[INFO] stop receiving updates")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if err := b.handleUpdate(ctx, update); err != nil {
				// Логируем ошибку, но продолжаем работу
				lgr.Printf("[WARN] error handling update %d: %v", update.UpdateID, err)
			}
		}
	}
}

// HandleWebhook - точка входа для обработки входящих webhook-обновлений
func (b *Bot) HandleWebhook(ctx context.Context, body []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return fmt.Errorf("failed to decode update: %w", err)
	}

	return b.handleUpdate(ctx, update)
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "❌ "+text)
	if _, err := b.api.Send(msg); err != nil {
		lgr.Printf("[WARN] failed to send error message to %d: %v", chatID, err)
	}
}
