package model

import "strings"

// ProfileStats статистика профиля. Пока аналитики нет, значения фиксированы.
type ProfileStats struct {
	ActivitiesTried  int    `json:"activities_tried"`
	FavoriteCategory string `json:"favorite_category"`
	TotalHours       int    `json:"total_hours"`
	FriendsFound     int    `json:"friends_found"`
}

// DefaultProfileStats значения, которые показывает профиль
var DefaultProfileStats = ProfileStats{
	ActivitiesTried:  12,
	FavoriteCategory: "Творчество",
	TotalHours:       48,
	FriendsFound:     7,
}

// Achievements количество достижений в карточке профиля
const Achievements = 5

type Friend struct {
	Name string `json:"name"`
}

// Initials первые буквы имени и фамилии
func (f Friend) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(f.Name) {
		r := []rune(part)
		b.WriteRune(r[0])
	}
	return b.String()
}

// DefaultUser демо-пользователь профиля
var DefaultUser = Friend{Name: "Анна Петрова"}

// DefaultFriends друзья по интересам
var DefaultFriends = []Friend{
	{Name: "Иван Смирнов"},
	{Name: "Мария Козлова"},
	{Name: "Алексей Волков"},
}
