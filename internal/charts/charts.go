package charts

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ivanoskov/momentum_bot/internal/model"
)

// ChartGenerator генерирует графики для профиля
type ChartGenerator struct{}

// NewChartGenerator создает новый генератор графиков
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

var moodColors = map[model.Mood]drawing.Color{
	model.MoodEnergetic: chart.ColorOrange,
	model.MoodCalm:      chart.ColorGreen,
	model.MoodCreative:  chart.ColorBlue,
	model.MoodSocial:    chart.ColorRed,
}

func barStyle(color drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: color,
		FillColor:   color,
		FontSize:    12,
		FontColor:   chart.ColorBlack,
	}
}

// GenerateProfileChart создает столбчатую диаграмму статистики профиля
func (g *ChartGenerator) GenerateProfileChart(stats model.ProfileStats, savedCount int) ([]byte, error) {
	bars := []chart.Value{
		{
			Label: fmt.Sprintf("Занятий: %d", stats.ActivitiesTried),
			Value: float64(stats.ActivitiesTried),
			Style: barStyle(chart.ColorBlue),
		},
		{
			Label: fmt.Sprintf("Часов: %d", stats.TotalHours),
			Value: float64(stats.TotalHours),
			Style: barStyle(chart.ColorGreen),
		},
		{
			Label: fmt.Sprintf("Друзей: %d", stats.FriendsFound),
			Value: float64(stats.FriendsFound),
			Style: barStyle(chart.ColorOrange),
		},
		{
			Label: fmt.Sprintf("В избранном: %d", savedCount),
			Value: float64(savedCount),
			Style: barStyle(chart.ColorRed),
		},
	}

	graph := chart.BarChart{
		Title: "Статистика активности",
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: chart.ColorBlack,
		},
		Width:    1200,
		Height:   600,
		BarWidth: 120,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render profile chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// MoodShare сколько сохраненных занятий отмечено настроением
type MoodShare struct {
	Mood  model.Mood
	Count int
}

// CountMoods считает теги настроений по списку занятий.
// Результат отсортирован по убыванию, при равенстве в порядке model.Moods.
func CountMoods(activities []model.Activity) []MoodShare {
	counts := make(map[model.Mood]int)
	for _, a := range activities {
		for _, m := range a.Moods {
			counts[m]++
		}
	}

	res := make([]MoodShare, 0, len(counts))
	for _, m := range model.Moods() {
		if counts[m] > 0 {
			res = append(res, MoodShare{Mood: m, Count: counts[m]})
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Count > res[j].Count
	})
	return res
}

// GenerateMoodChart создает круговую диаграмму настроений избранного.
// Возвращает nil, если избранное пусто.
func (g *ChartGenerator) GenerateMoodChart(saved []model.Activity) ([]byte, error) {
	shares := CountMoods(saved)
	if len(shares) == 0 {
		return nil, nil
	}

	total := 0
	for _, s := range shares {
		total += s.Count
	}

	values := make([]chart.Value, 0, len(shares))
	for _, s := range shares {
		percentage := float64(s.Count) / float64(total) * 100
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.0f%%)", s.Mood.Name(), percentage),
			Value: float64(s.Count),
			Style: chart.Style{
				FillColor: moodColors[s.Mood],
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}

	pie := chart.PieChart{
		Title:  "Настроения в избранном",
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render mood chart: %w", err)
	}
	return buffer.Bytes(), nil
}
