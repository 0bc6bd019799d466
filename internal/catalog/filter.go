package catalog

import "github.com/ivanoskov/momentum_bot/internal/model"

// Filters два независимых фильтра каталога. Пустой фильтр пропускает все.
type Filters struct {
	Budget  []model.Budget  `json:"budget,omitempty"`
	Company []model.Company `json:"company,omitempty"`
}

func (f Filters) Empty() bool {
	return len(f.Budget) == 0 && len(f.Company) == 0
}

func (f Filters) HasBudget(b model.Budget) bool {
	for _, v := range f.Budget {
		if v == b {
			return true
		}
	}
	return false
}

func (f Filters) HasCompany(c model.Company) bool {
	for _, v := range f.Company {
		if v == c {
			return true
		}
	}
	return false
}

// ToggleBudget добавляет значение, если его нет, иначе убирает.
// Исходный фильтр не меняется.
func (f Filters) ToggleBudget(b model.Budget) Filters {
	res := f.Clone()
	if f.HasBudget(b) {
		res.Budget = res.Budget[:0]
		for _, v := range f.Budget {
			if v != b {
				res.Budget = append(res.Budget, v)
			}
		}
		return res
	}
	res.Budget = append(res.Budget, b)
	return res
}

func (f Filters) ToggleCompany(c model.Company) Filters {
	res := f.Clone()
	if f.HasCompany(c) {
		res.Company = res.Company[:0]
		for _, v := range f.Company {
			if v != c {
				res.Company = append(res.Company, v)
			}
		}
		return res
	}
	res.Company = append(res.Company, c)
	return res
}

func (f Filters) Clone() Filters {
	return Filters{
		Budget:  append([]model.Budget(nil), f.Budget...),
		Company: append([]model.Company(nil), f.Company...),
	}
}

// Match проверяет занятие по обоим фильтрам сразу
func (f Filters) Match(a model.Activity) bool {
	budgetMatch := len(f.Budget) == 0 || f.HasBudget(a.Budget)
	companyMatch := len(f.Company) == 0 || f.HasCompany(a.Company)
	return budgetMatch && companyMatch
}

// Filter оставляет занятия, прошедшие фильтры, сохраняя порядок
func Filter(activities []model.Activity, f Filters) []model.Activity {
	res := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if f.Match(a) {
			res = append(res, a)
		}
	}
	return res
}

// Recommended занятия, отмеченные настроением пользователя. Фильтры каталога
// здесь не применяются.
func Recommended(activities []model.Activity, mood model.Mood) []model.Activity {
	res := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if a.HasMood(mood) {
			res = append(res, a)
		}
	}
	return res
}

// Saved занятия из избранного в порядке каталога
func Saved(activities []model.Activity, isSaved func(id int) bool) []model.Activity {
	res := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if isSaved(a.ID) {
			res = append(res, a)
		}
	}
	return res
}
