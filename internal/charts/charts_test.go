package charts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanoskov/momentum_bot/internal/catalog"
	"github.com/ivanoskov/momentum_bot/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateProfileChart(t *testing.T) {
	g := NewChartGenerator()
	data, err := g.GenerateProfileChart(model.DefaultProfileStats, 3)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestGenerateMoodChart(t *testing.T) {
	g := NewChartGenerator()

	t.Run("empty", func(t *testing.T) {
		data, err := g.GenerateMoodChart(nil)
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("catalog", func(t *testing.T) {
		data, err := g.GenerateMoodChart(catalog.MustDefault().All())
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic))
	})
}

func TestCountMoods(t *testing.T) {
	c := catalog.MustDefault()
	var saved []model.Activity
	for _, id := range []int{1, 3, 5} {
		a, ok := c.ByID(id)
		require.True(t, ok)
		saved = append(saved, a)
	}

	assert.Equal(t, []MoodShare{
		{Mood: model.MoodSocial, Count: 2},
		{Mood: model.MoodEnergetic, Count: 1},
		{Mood: model.MoodCalm, Count: 1},
		{Mood: model.MoodCreative, Count: 1},
	}, CountMoods(saved))
	assert.Empty(t, CountMoods(nil))
}
