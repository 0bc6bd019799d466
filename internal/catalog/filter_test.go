package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivanoskov/momentum_bot/internal/model"
)

func TestFilter(t *testing.T) {
	all := MustDefault().All()

	tests := []struct {
		name    string
		filters Filters
		want    []int
	}{
		{"no filters", Filters{}, []int{1, 2, 3, 4, 5, 6}},
		{"free", Filters{Budget: []model.Budget{model.BudgetFree}}, []int{1, 4, 6}},
		{"free or low", Filters{Budget: []model.Budget{model.BudgetFree, model.BudgetLow}}, []int{1, 2, 3, 4, 6}},
		{"high", Filters{Budget: []model.Budget{model.BudgetHigh}}, []int{}},
		{"group", Filters{Company: []model.Company{model.CompanyGroup}}, []int{1, 3, 5}},
		{"free and solo", Filters{
			Budget:  []model.Budget{model.BudgetFree},
			Company: []model.Company{model.CompanySolo},
		}, []int{6}},
		{"low and duo", Filters{
			Budget:  []model.Budget{model.BudgetLow},
			Company: []model.Company{model.CompanyDuo},
		}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(all, tt.filters)))
		})
	}
}

// values inside one facet are alternatives, so only the first value of a
// facet can narrow the result
func TestFilter_FirstFacetValueNarrows(t *testing.T) {
	all := MustDefault().All()

	var walk func(f Filters, depth int)
	walk = func(f Filters, depth int) {
		base := Filter(all, f)
		if depth == 0 {
			return
		}
		for _, b := range model.Budgets() {
			if f.HasBudget(b) {
				continue
			}
			next := f.ToggleBudget(b)
			if len(f.Budget) == 0 {
				assert.LessOrEqual(t, len(Filter(all, next)), len(base), "budget %v on %+v", b, f)
			}
			walk(next, depth-1)
		}
		for _, c := range model.Companies() {
			if f.HasCompany(c) {
				continue
			}
			next := f.ToggleCompany(c)
			if len(f.Company) == 0 {
				assert.LessOrEqual(t, len(Filter(all, next)), len(base), "company %v on %+v", c, f)
			}
			walk(next, depth-1)
		}
	}
	walk(Filters{}, 3)
}

func TestFilter_ConjunctionNarrows(t *testing.T) {
	all := MustDefault().All()
	budgetOnly := Filters{Budget: []model.Budget{model.BudgetFree, model.BudgetLow}}
	both := budgetOnly.ToggleCompany(model.CompanySolo)
	for _, a := range Filter(all, both) {
		assert.True(t, budgetOnly.Match(a))
	}
	assert.LessOrEqual(t, len(Filter(all, both)), len(Filter(all, budgetOnly)))
}

func TestFilters_Toggle(t *testing.T) {
	var f Filters
	assert.True(t, f.Empty())

	f1 := f.ToggleBudget(model.BudgetLow)
	assert.True(t, f1.HasBudget(model.BudgetLow))
	assert.True(t, f.Empty(), "receiver must not change")

	f2 := f1.ToggleBudget(model.BudgetHigh).ToggleCompany(model.CompanyDuo)
	assert.Equal(t, []model.Budget{model.BudgetLow, model.BudgetHigh}, f2.Budget)
	assert.Equal(t, []model.Company{model.CompanyDuo}, f2.Company)

	f3 := f2.ToggleBudget(model.BudgetLow)
	assert.Equal(t, []model.Budget{model.BudgetHigh}, f3.Budget)
	assert.Equal(t, []model.Budget{model.BudgetLow, model.BudgetHigh}, f2.Budget)

	f4 := f3.ToggleBudget(model.BudgetHigh).ToggleCompany(model.CompanyDuo)
	assert.True(t, f4.Empty())
}

func TestRecommended(t *testing.T) {
	all := MustDefault().All()
	tests := []struct {
		mood model.Mood
		want []int
	}{
		{model.MoodCalm, []int{1, 6}},
		{model.MoodCreative, []int{2, 4, 5}},
		{model.MoodSocial, []int{3, 5}},
		{model.MoodEnergetic, []int{1, 4}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Recommended(all, tt.mood)))
		})
	}
}

func TestSaved(t *testing.T) {
	all := MustDefault().All()
	saved := map[int]bool{5: true, 1: true, 3: true}
	got := Saved(all, func(id int) bool { return saved[id] })
	assert.Equal(t, []int{1, 3, 5}, ids(got))
}
