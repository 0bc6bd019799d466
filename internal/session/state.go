package session

import (
	"sort"
	"time"

	"github.com/ivanoskov/momentum_bot/internal/catalog"
	"github.com/ivanoskov/momentum_bot/internal/model"
)

// DefaultSaved избранное нового пользователя
var DefaultSaved = []int{1, 3, 5}

// State все состояние одного пользователя. Меняется только через Reduce.
type State struct {
	View       model.View        `json:"view"`
	Step       model.TestStep    `json:"step"`
	Answers    map[string]string `json:"answers"`
	Mood       model.Mood        `json:"mood"`
	Filters    catalog.Filters   `json:"filters"`
	Saved      []int             `json:"saved"`
	CatalogTab model.Tab         `json:"catalog_tab"`
	ProfileTab model.Tab         `json:"profile_tab"`
	QuizRunID  string            `json:"quiz_run_id,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// New начальное состояние сессии
func New() State {
	return State{
		View:       model.ViewHome,
		Step:       model.StepWelcome,
		Answers:    map[string]string{},
		Mood:       model.DefaultMood,
		Saved:      append([]int(nil), DefaultSaved...),
		CatalogTab: model.TabAll,
		ProfileTab: model.TabSaved,
	}
}

// Clone глубокая копия, чтобы переходы не трогали исходное состояние
func (s State) Clone() State {
	res := s
	res.Answers = make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		res.Answers[k] = v
	}
	res.Filters = s.Filters.Clone()
	res.Saved = append([]int(nil), s.Saved...)
	return res
}

// IsSaved проверяет наличие занятия в избранном
func (s State) IsSaved(id int) bool {
	i := sort.SearchInts(s.Saved, id)
	return i < len(s.Saved) && s.Saved[i] == id
}

// toggleSaved возвращает избранное с добавленным или удаленным id.
// Список держится отсортированным, поэтому двойное переключение дает
// тот же срез.
func toggleSaved(saved []int, id int) []int {
	res := make([]int, 0, len(saved)+1)
	found := false
	for _, v := range saved {
		if v == id {
			found = true
			continue
		}
		res = append(res, v)
	}
	if !found {
		res = append(res, id)
		sort.Ints(res)
	}
	return res
}

// normalize чинит значения, которые не могли появиться через Reduce,
// например после чтения поврежденной записи из хранилища
func (s State) normalize() State {
	if !s.View.Valid() {
		s.View = model.ViewHome
	}
	if !s.Step.Valid() {
		s.Step = model.StepWelcome
	}
	if !s.Mood.Valid() {
		s.Mood = model.DefaultMood
	}
	if !s.CatalogTab.CatalogTab() {
		s.CatalogTab = model.TabAll
	}
	if !s.ProfileTab.ProfileTab() {
		s.ProfileTab = model.TabSaved
	}
	if s.Answers == nil {
		s.Answers = map[string]string{}
	}
	if !sort.IntsAreSorted(s.Saved) {
		s.Saved = append([]int(nil), s.Saved...)
		sort.Ints(s.Saved)
	}
	return s
}

// Normalize возвращает состояние с допустимыми значениями всех перечислений
func Normalize(s State) State {
	return s.Clone().normalize()
}
