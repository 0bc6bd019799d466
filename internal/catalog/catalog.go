package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ivanoskov/momentum_bot/internal/model"
)

//go:embed activities.yaml
var defaultActivities []byte

// Catalog неизменяемый список занятий
type Catalog struct {
	activities []model.Activity
	byID       map[int]int
}

type document struct {
	Activities []model.Activity `yaml:"activities"`
}

// Load разбирает YAML с занятиями и проверяет их
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(doc.Activities) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	sort.SliceStable(doc.Activities, func(i, j int) bool {
		return doc.Activities[i].ID < doc.Activities[j].ID
	})

	c := &Catalog{
		activities: doc.Activities,
		byID:       make(map[int]int, len(doc.Activities)),
	}
	for i, a := range doc.Activities {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry: %w", err)
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate activity id %d", a.ID)
		}
		c.byID[a.ID] = i
	}
	return c, nil
}

// Default возвращает встроенный каталог
func Default() (*Catalog, error) {
	return Load(defaultActivities)
}

// MustDefault как Default, но паникует при ошибке. Встроенный каталог
// проверяется тестами, поэтому ошибка здесь означает битую сборку.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// All возвращает копию списка занятий в порядке ID
func (c *Catalog) All() []model.Activity {
	res := make([]model.Activity, len(c.activities))
	copy(res, c.activities)
	return res
}

func (c *Catalog) ByID(id int) (model.Activity, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Activity{}, false
	}
	return c.activities[i], true
}

func (c *Catalog) Has(id int) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.activities)
}
