package session

import (
	"fmt"

	"github.com/ivanoskov/momentum_bot/internal/model"
)

// Action действие пользователя
type Action interface {
	fmt.Stringer
	isAction()
}

type SelectView struct{ View model.View }

// StartTest начинает новый проход теста. RunID заполняет сервис.
type StartTest struct{ RunID string }

// Answer ответ на вопрос. Пустой Question означает текущий вопрос.
type Answer struct {
	Question string
	Value    string
}

type FinishTest struct{}

type ToggleBudget struct{ Budget model.Budget }

type ToggleCompany struct{ Company model.Company }

type ClearFilters struct{}

type ToggleSave struct{ ID int }

type SelectTab struct{ Tab model.Tab }

func (SelectView) isAction()    {}
func (StartTest) isAction()     {}
func (Answer) isAction()        {}
func (FinishTest) isAction()    {}
func (ToggleBudget) isAction()  {}
func (ToggleCompany) isAction() {}
func (ClearFilters) isAction()  {}
func (ToggleSave) isAction()    {}
func (SelectTab) isAction()     {}

func (a SelectView) String() string    { return "view:" + string(a.View) }
func (a StartTest) String() string     { return "test:start" }
func (a Answer) String() string        { return "answer:" + a.Question + ":" + a.Value }
func (a FinishTest) String() string    { return "test:finish" }
func (a ToggleBudget) String() string  { return "budget:" + string(a.Budget) }
func (a ToggleCompany) String() string { return "company:" + string(a.Company) }
func (a ClearFilters) String() string  { return "filters:clear" }
func (a ToggleSave) String() string    { return fmt.Sprintf("save:%d", a.ID) }
func (a SelectTab) String() string     { return "tab:" + string(a.Tab) }
