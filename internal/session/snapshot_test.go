package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanoskov/momentum_bot/internal/catalog"
	"github.com/ivanoskov/momentum_bot/internal/model"
)

func TestProject(t *testing.T) {
	c := catalog.MustDefault()

	t.Run("new session", func(t *testing.T) {
		snap := Project(New(), c)
		assert.Equal(t, model.ViewHome, snap.View)
		assert.Equal(t, 0, snap.Progress)
		assert.Nil(t, snap.Question)
		assert.Len(t, snap.Filtered, 6)
		assert.Equal(t, []int{2, 4, 5}, activityIDs(snap.Recommended))
		assert.Equal(t, []int{1, 3, 5}, activityIDs(snap.Saved))
		assert.Equal(t, 3, snap.SavedCount)
		assert.True(t, snap.IsSaved(1))
		assert.False(t, snap.IsSaved(2))
	})

	t.Run("question step", func(t *testing.T) {
		s := apply(t, New(), StartTest{}, Answer{Value: "home"})
		snap := Project(s, c)
		require.NotNil(t, snap.Question)
		assert.Equal(t, "q2", snap.Question.Key)
		assert.Equal(t, 66, snap.Progress)
	})

	t.Run("recommendations ignore filters", func(t *testing.T) {
		s := apply(t, New(), ToggleBudget{Budget: model.BudgetHigh})
		snap := Project(s, c)
		assert.Empty(t, snap.Filtered)
		assert.Len(t, snap.Recommended, 3)
	})

	t.Run("unknown view falls back to home", func(t *testing.T) {
		s := New()
		s.View = "broken"
		assert.Equal(t, model.ViewHome, Project(s, c).View)
	})

	t.Run("state copy", func(t *testing.T) {
		snap := Project(New(), c)
		st := snap.State()
		st.Saved[0] = 42
		assert.True(t, snap.IsSaved(1))
	})
}

func activityIDs(activities []model.Activity) []int {
	res := make([]int, 0, len(activities))
	for _, a := range activities {
		res = append(res, a.ID)
	}
	return res
}
