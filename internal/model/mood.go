package model

// Mood тип личности, определяемый по результатам теста
type Mood string

const (
	MoodEnergetic Mood = "energetic"
	MoodCalm      Mood = "calm"
	MoodCreative  Mood = "creative"
	MoodSocial    Mood = "social"
)

// DefaultMood действует, пока пользователь не прошел тест
const DefaultMood = MoodCreative

func Moods() []Mood {
	return []Mood{MoodEnergetic, MoodCalm, MoodCreative, MoodSocial}
}

func (m Mood) Valid() bool {
	switch m {
	case MoodEnergetic, MoodCalm, MoodCreative, MoodSocial:
		return true
	}
	return false
}

// Name название типа личности
func (m Mood) Name() string {
	switch m {
	case MoodCreative:
		return "Творец"
	case MoodSocial:
		return "Душа компании"
	case MoodCalm:
		return "Философ"
	}
	return "Энерджайзер"
}

// Title название с эмодзи для сообщений
func (m Mood) Title() string {
	return m.Emoji() + " " + m.Name()
}

func (m Mood) Emoji() string {
	switch m {
	case MoodCreative:
		return "🎨"
	case MoodSocial:
		return "🎉"
	case MoodCalm:
		return "🧘"
	}
	return "⚡"
}

func (m Mood) Description() string {
	switch m {
	case MoodCreative:
		return "Ты любишь создавать и экспериментировать. Творческие занятия — твоя стихия!"
	case MoodSocial:
		return "Ты получаешь энергию от общения. Групповые активности сделают тебя счастливее!"
	case MoodCalm:
		return "Ты ценишь спокойствие и гармонию. Медитативные практики — для тебя!"
	}
	return "Ты полон энергии и готов к действию. Спорт и активности — твой выбор!"
}
