package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ivanoskov/momentum_bot/internal/model"
	"github.com/ivanoskov/momentum_bot/internal/session"
)

// ErrUnknownCallback данные кнопки не соответствуют ни одному действию
var ErrUnknownCallback = errors.New("unknown callback")

// callbackProfileChart кнопка графика профиля, не меняет сессию
const callbackProfileChart = "profile:chart"

// ParseCallback восстанавливает действие из данных кнопки.
// Формат данных совпадает с String() действий.
func ParseCallback(data string) (session.Action, error) {
	kind, arg, _ := strings.Cut(data, ":")
	switch kind {
	case "view":
		return session.SelectView{View: model.View(arg)}, nil
	case "test":
		switch arg {
		case "start":
			return session.StartTest{}, nil
		case "finish":
			return session.FinishTest{}, nil
		}
	case "answer":
		question, value, ok := strings.Cut(arg, ":")
		if ok && question != "" {
			return session.Answer{Question: question, Value: value}, nil
		}
	case "budget":
		return session.ToggleBudget{Budget: model.Budget(arg)}, nil
	case "company":
		return session.ToggleCompany{Company: model.Company(arg)}, nil
	case "filters":
		if arg == "clear" {
			return session.ClearFilters{}, nil
		}
	case "save":
		id, err := strconv.Atoi(arg)
		if err == nil {
			return session.ToggleSave{ID: id}, nil
		}
	case "tab":
		return session.SelectTab{Tab: model.Tab(arg)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCallback, data)
}

func button(text string, action session.Action) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, action.String())
}

func mark(active bool, text string) string {
	if active {
		return "✅ " + text
	}
	return text
}

func tabMark(active bool, text string) string {
	if active {
		return "• " + text + " •"
	}
	return text
}

func saveMark(saved bool) string {
	if saved {
		return "❤️"
	}
	return "🤍"
}

func (b *Bot) getHomeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			button("🚀 Начать тест", session.StartTest{}),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("🔍 Каталог", session.SelectView{View: model.ViewCatalog}),
			button("👤 Профиль", session.SelectView{View: model.ViewProfile}),
		),
	)
}

func (b *Bot) getTestKeyboard(snap *session.Snapshot) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	switch {
	case snap.Question != nil:
		for _, o := range snap.Question.Options {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				button(o.Label, session.Answer{Question: snap.Question.Key, Value: o.Value}),
			))
		}
	case snap.Step == model.StepResults:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button("Посмотреть рекомендации", session.FinishTest{}),
		))
	default:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button("Начать", session.StartTest{}),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		button("🔙 Назад", session.SelectView{View: model.ViewHome}),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) getCatalogKeyboard(snap *session.Snapshot) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			button(tabMark(snap.CatalogTab == model.TabAll, "Все занятия"), session.SelectTab{Tab: model.TabAll}),
			button(tabMark(snap.CatalogTab == model.TabRecommended, "Для тебя"), session.SelectTab{Tab: model.TabRecommended}),
		),
	}

	list := snap.Recommended
	if snap.CatalogTab == model.TabAll {
		list = snap.Filtered

		var budgets []tgbotapi.InlineKeyboardButton
		for _, bg := range model.Budgets() {
			budgets = append(budgets, button(mark(snap.Filters.HasBudget(bg), bg.Label()), session.ToggleBudget{Budget: bg}))
		}
		rows = append(rows, budgets[:2], budgets[2:])

		var companies []tgbotapi.InlineKeyboardButton
		for _, c := range model.Companies() {
			companies = append(companies, button(mark(snap.Filters.HasCompany(c), c.Label()), session.ToggleCompany{Company: c}))
		}
		rows = append(rows, companies)

		if !snap.Filters.Empty() {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				button("✖️ Сбросить фильтры", session.ClearFilters{}),
			))
		}
	}

	for _, a := range list {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(saveMark(snap.IsSaved(a.ID))+" "+a.Title, session.ToggleSave{ID: a.ID}),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		button("🏠 Главная", session.SelectView{View: model.ViewHome}),
		button("👤 Профиль", session.SelectView{View: model.ViewProfile}),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) getProfileKeyboard(snap *session.Snapshot) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			button(tabMark(snap.ProfileTab == model.TabSaved, "Сохранённое"), session.SelectTab{Tab: model.TabSaved}),
			button(tabMark(snap.ProfileTab == model.TabFriends, "Друзья"), session.SelectTab{Tab: model.TabFriends}),
		),
	}

	if snap.ProfileTab == model.TabSaved {
		for _, a := range snap.Saved {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				button("❌ "+a.Title, session.ToggleSave{ID: a.ID}),
			))
		}
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика", callbackProfileChart),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("🏠 Главная", session.SelectView{View: model.ViewHome}),
			button("🔍 Каталог", session.SelectView{View: model.ViewCatalog}),
		),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
