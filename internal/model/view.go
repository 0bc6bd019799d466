package model

// View экран, который сейчас видит пользователь
type View string

const (
	ViewHome    View = "home"
	ViewTest    View = "test"
	ViewCatalog View = "catalog"
	ViewProfile View = "profile"
)

func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewTest, ViewCatalog, ViewProfile:
		return true
	}
	return false
}

// TestStep шаг теста. Переходы только вперед, по одному шагу.
type TestStep string

const (
	StepWelcome   TestStep = "welcome"
	StepQuestion1 TestStep = "question1"
	StepQuestion2 TestStep = "question2"
	StepQuestion3 TestStep = "question3"
	StepResults   TestStep = "results"
)

func (s TestStep) Valid() bool {
	switch s {
	case StepWelcome, StepQuestion1, StepQuestion2, StepQuestion3, StepResults:
		return true
	}
	return false
}

// Tab вкладка внутри каталога или профиля
type Tab string

const (
	TabAll         Tab = "all"
	TabRecommended Tab = "recommended"
	TabSaved       Tab = "saved"
	TabFriends     Tab = "friends"
)

// CatalogTab сообщает, относится ли вкладка к каталогу
func (t Tab) CatalogTab() bool {
	return t == TabAll || t == TabRecommended
}

func (t Tab) ProfileTab() bool {
	return t == TabSaved || t == TabFriends
}
