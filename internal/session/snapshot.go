package session

import (
	"github.com/ivanoskov/momentum_bot/internal/catalog"
	"github.com/ivanoskov/momentum_bot/internal/model"
	"github.com/ivanoskov/momentum_bot/internal/quiz"
)

// Snapshot данные для отрисовки текущего экрана
type Snapshot struct {
	View        model.View
	Step        model.TestStep
	Progress    int
	Question    *quiz.Question
	Mood        model.Mood
	Filters     catalog.Filters
	CatalogTab  model.Tab
	ProfileTab  model.Tab
	Filtered    []model.Activity
	Recommended []model.Activity
	Saved       []model.Activity
	SavedCount  int

	state State
}

// IsSaved отметка избранного для карточки занятия
func (s *Snapshot) IsSaved(id int) bool {
	return s.state.IsSaved(id)
}

// State копия состояния, из которого построен снимок
func (s *Snapshot) State() State {
	return s.state.Clone()
}

// Project строит снимок состояния поверх каталога
func Project(s State, c *catalog.Catalog) *Snapshot {
	s = Normalize(s)
	all := c.All()

	snap := &Snapshot{
		View:        s.View,
		Step:        s.Step,
		Progress:    quiz.Progress(s.Step),
		Mood:        s.Mood,
		Filters:     s.Filters.Clone(),
		CatalogTab:  s.CatalogTab,
		ProfileTab:  s.ProfileTab,
		Filtered:    catalog.Filter(all, s.Filters),
		Recommended: catalog.Recommended(all, s.Mood),
		Saved:       catalog.Saved(all, s.IsSaved),
		SavedCount:  len(s.Saved),
		state:       s,
	}
	if q, ok := quiz.QuestionFor(s.Step); ok {
		snap.Question = &q
	}
	return snap
}
