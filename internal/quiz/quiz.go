package quiz

import "github.com/ivanoskov/momentum_bot/internal/model"

// Option вариант ответа
type Option struct {
	Value string
	Label string
}

// Question вопрос теста. Key используется как ключ в ответах.
type Question struct {
	Key     string
	Number  int
	Title   string
	Step    model.TestStep
	Options []Option
}

// HasOption проверяет, что значение входит в варианты ответа
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

const TotalQuestions = 3

var questions = []Question{
	{
		Key:    "q1",
		Number: 1,
		Title:  "Как ты обычно проводишь выходные?",
		Step:   model.StepQuestion1,
		Options: []Option{
			{Value: "active", Label: "Активно: спорт, прогулки, встречи"},
			{Value: "home", Label: "Дома: книги, фильмы, творчество"},
			{Value: "mixed", Label: "По-разному, в зависимости от настроения"},
		},
	},
	{
		Key:    "q2",
		Number: 2,
		Title:  "С кем ты предпочитаешь заниматься хобби?",
		Step:   model.StepQuestion2,
		Options: []Option{
			{Value: "solo", Label: "Один — мне нужно личное время"},
			{Value: "close", Label: "С близким другом или партнёром"},
			{Value: "group", Label: "В компании — чем больше, тем веселее"},
		},
	},
	{
		Key:    "q3",
		Number: 3,
		Title:  "Какой формат отдыха тебе ближе?",
		Step:   model.StepQuestion3,
		Options: []Option{
			{Value: "nature", Label: "Природа и свежий воздух"},
			{Value: "art", Label: "Искусство и творчество"},
			{Value: "party", Label: "Вечеринки и события"},
			{Value: "learning", Label: "Обучение и саморазвитие"},
		},
	},
}

// Questions возвращает вопросы теста по порядку
func Questions() []Question {
	res := make([]Question, len(questions))
	copy(res, questions)
	return res
}

// QuestionFor вопрос, который показывается на шаге
func QuestionFor(step model.TestStep) (Question, bool) {
	for _, q := range questions {
		if q.Step == step {
			return q, true
		}
	}
	return Question{}, false
}

// DeriveMood определяет настроение по ответу на третий вопрос.
// Первые два ответа сохраняются, но на результат не влияют.
func DeriveMood(third string) model.Mood {
	switch third {
	case "party":
		return model.MoodSocial
	case "nature":
		return model.MoodCalm
	case "art":
		return model.MoodCreative
	}
	return model.MoodEnergetic
}
