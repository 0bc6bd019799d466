package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivanoskov/momentum_bot/internal/catalog"
	"github.com/ivanoskov/momentum_bot/internal/model"
	"github.com/ivanoskov/momentum_bot/internal/quiz"
)

// ErrInvalidAction действие недопустимо в текущем состоянии
var ErrInvalidAction = errors.New("invalid action")

// Reduce применяет действие к состоянию и возвращает новое состояние.
// Входное состояние не изменяется. При ошибке возвращается исходное
// состояние без изменений.
func Reduce(s State, action Action) (State, error) {
	next := s.Clone().normalize()

	switch a := action.(type) {
	case SelectView:
		if !a.View.Valid() {
			return s, fmt.Errorf("%w: unknown view %q", ErrInvalidAction, a.View)
		}
		next.View = a.View
		switch a.View {
		case model.ViewCatalog:
			next.CatalogTab = model.TabAll
		case model.ViewProfile:
			next.ProfileTab = model.TabSaved
		}

	case StartTest:
		step, err := quiz.Fire(context.Background(), next.Step, quiz.EventStart)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrInvalidAction, err)
		}
		next.View = model.ViewTest
		next.Step = step
		next.Answers = map[string]string{}
		next.QuizRunID = a.RunID

	case Answer:
		q, ok := quiz.QuestionFor(next.Step)
		if !ok || next.View != model.ViewTest {
			return s, fmt.Errorf("%w: no question on step %s", ErrInvalidAction, next.Step)
		}
		if a.Question != "" && a.Question != q.Key {
			return s, fmt.Errorf("%w: answer for %s on step %s", ErrInvalidAction, a.Question, next.Step)
		}
		step, err := quiz.Next(next.Step)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrInvalidAction, err)
		}
		next.Answers[q.Key] = a.Value
		if next.Step == model.StepQuestion3 {
			next.Mood = quiz.DeriveMood(a.Value)
		}
		next.Step = step

	case FinishTest:
		step, err := quiz.Fire(context.Background(), next.Step, quiz.EventFinish)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrInvalidAction, err)
		}
		next.View = model.ViewCatalog
		next.CatalogTab = model.TabAll
		next.Step = step

	case ToggleBudget:
		if !a.Budget.Valid() {
			return s, fmt.Errorf("%w: unknown budget %q", ErrInvalidAction, a.Budget)
		}
		next.Filters = next.Filters.ToggleBudget(a.Budget)

	case ToggleCompany:
		if !a.Company.Valid() {
			return s, fmt.Errorf("%w: unknown company %q", ErrInvalidAction, a.Company)
		}
		next.Filters = next.Filters.ToggleCompany(a.Company)

	case ClearFilters:
		next.Filters = catalog.Filters{}

	case ToggleSave:
		next.Saved = toggleSaved(next.Saved, a.ID)

	case SelectTab:
		switch {
		case a.Tab.CatalogTab():
			next.CatalogTab = a.Tab
		case a.Tab.ProfileTab():
			next.ProfileTab = a.Tab
		default:
			return s, fmt.Errorf("%w: unknown tab %q", ErrInvalidAction, a.Tab)
		}

	default:
		return s, fmt.Errorf("%w: %T", ErrInvalidAction, action)
	}

	return next, nil
}
