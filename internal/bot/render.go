package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ivanoskov/momentum_bot/internal/model"
	"github.com/ivanoskov/momentum_bot/internal/quiz"
	"github.com/ivanoskov/momentum_bot/internal/service"
	"github.com/ivanoskov/momentum_bot/internal/session"
)

// screen текст и клавиатура одного экрана
type screen struct {
	text     string
	keyboard tgbotapi.InlineKeyboardMarkup
}

// render выбирает экран по текущему виду. Неизвестный вид показывается
// как главный экран.
func (b *Bot) render(snap *session.Snapshot) screen {
	switch snap.View {
	case model.ViewTest:
		return screen{text: renderTest(snap), keyboard: b.getTestKeyboard(snap)}
	case model.ViewCatalog:
		return screen{text: renderCatalog(snap), keyboard: b.getCatalogKeyboard(snap)}
	case model.ViewProfile:
		return screen{text: renderProfile(service.ProfileOf(snap)), keyboard: b.getProfileKeyboard(snap)}
	}
	return screen{text: renderHome(), keyboard: b.getHomeKeyboard()}
}

func renderHome() string {
	return "✨ Momentum\n" +
		"Найди своё идеальное хобби и друзей по интересам\n\n" +
		"🧠 Пройди тест\nУзнай свой тип личности и настроение\n\n" +
		"🔍 Найди хобби\nТысячи занятий с умными фильтрами\n\n" +
		"👥 Встреть друзей\nОбщайся с единомышленниками\n\n" +
		fmt.Sprintf("Всего %d вопроса • 1 минута", quiz.TotalQuestions)
}

// progressBar рисует индикатор из десяти делений
func progressBar(percent int) string {
	filled := percent / 10
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("▓", filled) + strings.Repeat("░", 10-filled) + fmt.Sprintf(" %d%%", percent)
}

func renderTest(snap *session.Snapshot) string {
	switch {
	case snap.Question != nil:
		return fmt.Sprintf("Вопрос %d из %d\n%s\n\n%s",
			snap.Question.Number, quiz.TotalQuestions, progressBar(snap.Progress), snap.Question.Title)
	case snap.Step == model.StepResults:
		return fmt.Sprintf("%s\n\n%s\n\n%d занятий идеально подходят твоему типу личности",
			snap.Mood.Title(), snap.Mood.Description(), len(snap.Recommended))
	}
	return "Давай узнаем, какие занятия тебе подойдут лучше всего"
}

func renderActivity(sb *strings.Builder, a model.Activity, saved bool, badge string) {
	fmt.Fprintf(sb, "%s %s\n%s\n%s · %s", saveMark(saved), a.Title, a.Description, a.Category, badge)
	sb.WriteString("\n\n")
}

func renderCatalog(snap *session.Snapshot) string {
	var sb strings.Builder

	if snap.CatalogTab == model.TabRecommended {
		fmt.Fprintf(&sb, "Специально для тебя, %s!\n", snap.Mood.Title())
		sb.WriteString("Эти занятия идеально подходят твоему характеру и настроению\n\n")
		for _, a := range snap.Recommended {
			renderActivity(&sb, a, snap.IsSaved(a.ID), "⭐ Рекомендуем")
		}
		return strings.TrimSpace(sb.String())
	}

	sb.WriteString("🔍 Каталог занятий\n")
	if !snap.Filters.Empty() {
		var labels []string
		for _, bg := range snap.Filters.Budget {
			labels = append(labels, bg.Label())
		}
		for _, c := range snap.Filters.Company {
			labels = append(labels, c.Label())
		}
		fmt.Fprintf(&sb, "Фильтры: %s\n", strings.Join(labels, ", "))
	}
	sb.WriteString("\n")

	if len(snap.Filtered) == 0 {
		sb.WriteString("Ничего не найдено. Попробуй изменить фильтры")
		return sb.String()
	}
	for _, a := range snap.Filtered {
		renderActivity(&sb, a, snap.IsSaved(a.ID), a.Budget.Label())
	}
	return strings.TrimSpace(sb.String())
}

func renderProfile(p *service.Profile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n%s\n", p.User.Initials(), p.User.Name, p.Mood.Title())
	fmt.Fprintf(&sb, "🏆 %d   👥 %d\n\n", model.Achievements, p.Stats.FriendsFound)
	sb.WriteString("📈 Статистика активности\nТвой прогресс за всё время\n")
	fmt.Fprintf(&sb, "%d — Занятий попробовано\n", p.Stats.ActivitiesTried)
	fmt.Fprintf(&sb, "%dч — Всего времени\n", p.Stats.TotalHours)
	fmt.Fprintf(&sb, "Любимая категория: %s\n\n", p.Stats.FavoriteCategory)

	if p.Tab == model.TabFriends {
		sb.WriteString("Друзья по интересам\n")
		fmt.Fprintf(&sb, "%d человек с похожими увлечениями\n", p.Stats.FriendsFound)
		for _, f := range p.Friends {
			fmt.Fprintf(&sb, "• %s %s\n", f.Initials(), f.Name)
		}
		return strings.TrimSpace(sb.String())
	}

	sb.WriteString("Сохранённые занятия\n")
	fmt.Fprintf(&sb, "%d занятий в избранном\n", len(p.Saved))
	for _, a := range p.Saved {
		fmt.Fprintf(&sb, "• %s (%s)\n", a.Title, a.Category)
	}
	return strings.TrimSpace(sb.String())
}
