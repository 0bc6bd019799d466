package model

import "fmt"

// Budget ценовая категория занятия
type Budget string

const (
	BudgetFree   Budget = "free"
	BudgetLow    Budget = "low"
	BudgetMedium Budget = "medium"
	BudgetHigh   Budget = "high"
)

// Budgets возвращает все значения бюджета в порядке отображения
func Budgets() []Budget {
	return []Budget{BudgetFree, BudgetLow, BudgetMedium, BudgetHigh}
}

func (b Budget) Valid() bool {
	switch b {
	case BudgetFree, BudgetLow, BudgetMedium, BudgetHigh:
		return true
	}
	return false
}

func (b Budget) Label() string {
	switch b {
	case BudgetFree:
		return "💚 Бесплатно"
	case BudgetLow:
		return "💰 До 1000₽"
	case BudgetMedium:
		return "💎 До 3000₽"
	case BudgetHigh:
		return "👑 Премиум"
	}
	return string(b)
}

// Company размер компании для занятия
type Company string

const (
	CompanySolo  Company = "solo"
	CompanyDuo   Company = "duo"
	CompanyGroup Company = "group"
)

func Companies() []Company {
	return []Company{CompanySolo, CompanyDuo, CompanyGroup}
}

func (c Company) Valid() bool {
	switch c {
	case CompanySolo, CompanyDuo, CompanyGroup:
		return true
	}
	return false
}

func (c Company) Label() string {
	switch c {
	case CompanySolo:
		return "🧘 Один"
	case CompanyDuo:
		return "👥 Вдвоём"
	case CompanyGroup:
		return "🎉 Компания"
	}
	return string(c)
}

// Activity запись каталога занятий. Создается один раз при загрузке каталога
// и больше не изменяется.
type Activity struct {
	ID          int     `yaml:"id" json:"id"`
	Title       string  `yaml:"title" json:"title"`
	Description string  `yaml:"description" json:"description"`
	Category    string  `yaml:"category" json:"category"`
	Budget      Budget  `yaml:"budget" json:"budget"`
	Company     Company `yaml:"company" json:"company"`
	Moods       []Mood  `yaml:"mood" json:"mood"`
	Icon        string  `yaml:"icon" json:"icon"`
}

// HasMood проверяет, отмечено ли занятие данным настроением
func (a Activity) HasMood(m Mood) bool {
	for _, mood := range a.Moods {
		if mood == m {
			return true
		}
	}
	return false
}

// Validate проверяет, что значения полей входят в допустимые перечисления
func (a Activity) Validate() error {
	if a.ID <= 0 {
		return fmt.Errorf("activity %q: id must be positive", a.Title)
	}
	if a.Title == "" {
		return fmt.Errorf("activity %d: empty title", a.ID)
	}
	if !a.Budget.Valid() {
		return fmt.Errorf("activity %d: unknown budget %q", a.ID, a.Budget)
	}
	if !a.Company.Valid() {
		return fmt.Errorf("activity %d: unknown company %q", a.ID, a.Company)
	}
	if len(a.Moods) == 0 {
		return fmt.Errorf("activity %d: empty mood set", a.ID)
	}
	for _, m := range a.Moods {
		if !m.Valid() {
			return fmt.Errorf("activity %d: unknown mood %q", a.ID, m)
		}
	}
	return nil
}
