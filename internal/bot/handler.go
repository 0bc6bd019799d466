package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ivanoskov/momentum_bot/internal/model"
	"github.com/ivanoskov/momentum_bot/internal/session"
)

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.Message == nil && update.CallbackQuery == nil {
		return nil
	}

	if update.CallbackQuery != nil {
		return b.handleCallback(ctx, update.CallbackQuery)
	}

	if update.Message.From == nil || update.Message.Chat == nil {
		return nil
	}

	if update.Message.IsCommand() {
		return b.handleCommand(ctx, update.Message)
	}

	return b.handleMessage(ctx, update.Message)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) error {
	var action session.Action

	switch message.Command() {
	case "start":
		action = session.SelectView{View: model.ViewHome}
	case "test":
		action = session.StartTest{}
	case "catalog":
		action = session.SelectView{View: model.ViewCatalog}
	case "profile":
		action = session.SelectView{View: model.ViewProfile}
	default:
		return b.handleMessage(ctx, message)
	}

	snap, err := b.service.Dispatch(ctx, message.From.ID, action)
	if err != nil {
		b.sendErrorMessage(message.Chat.ID, "Не удалось выполнить команду")
		return fmt.Errorf("command %s: %w", message.Command(), err)
	}
	return b.sendScreen(message.Chat.ID, snap)
}

// handleMessage на произвольный текст показывает текущий экран заново
func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) error {
	snap, err := b.service.State(ctx, message.From.ID)
	if err != nil {
		b.sendErrorMessage(message.Chat.ID, "Ошибка при получении состояния")
		return err
	}
	return b.sendScreen(message.Chat.ID, snap)
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) error {
	// Отвечаем на callback, чтобы убрать loading indicator
	notice := ""
	defer func() {
		if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, notice)); err != nil {
			lgr.Printf("[DEBUG] failed to answer callback %s: %v", callback.ID, err)
		}
	}()

	if callback.From == nil || callback.Message == nil || callback.Message.Chat == nil {
		return nil
	}
	chatID := callback.Message.Chat.ID

	if callback.Data == callbackProfileChart {
		return b.sendProfileCharts(ctx, chatID, callback.From.ID)
	}

	action, err := ParseCallback(callback.Data)
	if err != nil {
		notice = "Кнопка устарела"
		return err
	}

	snap, err := b.service.Dispatch(ctx, callback.From.ID, action)
	switch {
	case errors.Is(err, session.ErrInvalidAction):
		// устаревшая кнопка: перерисовываем текущий экран без изменений
		notice = "Действие недоступно"
		lgr.Printf("[DEBUG] stale callback %q from %d: %v", callback.Data, callback.From.ID, err)
	case err != nil:
		b.sendErrorMessage(chatID, "Ошибка при обработке действия")
		return err
	}

	return b.editScreen(chatID, callback.Message.MessageID, snap)
}

func (b *Bot) sendScreen(chatID int64, snap *session.Snapshot) error {
	s := b.render(snap)
	msg := tgbotapi.NewMessage(chatID, s.text)
	msg.ReplyMarkup = s.keyboard
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send screen: %w", err)
	}
	return nil
}

func (b *Bot) editScreen(chatID int64, messageID int, snap *session.Snapshot) error {
	s := b.render(snap)
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, s.text, s.keyboard)
	if _, err := b.api.Send(edit); err != nil {
		// Telegram отклоняет редактирование без изменений
		if strings.Contains(err.Error(), "message is not modified") {
			return nil
		}
		return fmt.Errorf("failed to edit screen: %w", err)
	}
	return nil
}

func (b *Bot) sendProfileCharts(ctx context.Context, chatID, userID int64) error {
	images, err := b.service.ProfileCharts(ctx, userID)
	if err != nil {
		b.sendErrorMessage(chatID, "Ошибка при построении графика")
		return err
	}

	names := []string{"profile.png", "moods.png"}
	for i, img := range images {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: names[i%len(names)], Bytes: img})
		if _, err := b.api.Send(photo); err != nil {
			return fmt.Errorf("failed to send chart: %w", err)
		}
	}
	return nil
}
