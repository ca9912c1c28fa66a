// Package foodref holds the immutable food reference table and the
// composition aggregator built on top of it. The table is constructed once
// at process start and is read-only afterwards.
package foodref

import (
	"sort"
	"strings"
	"sync"

	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
)

// Food categories. Meat, poultry and fish count as animal flesh for
// vegetarian filtering; vegan additionally excludes dairy and egg.
const (
	CategoryMeat      = "meat"
	CategoryPoultry   = "poultry"
	CategoryFish      = "fish"
	CategoryEgg       = "egg"
	CategoryDairy     = "dairy"
	CategoryGrain     = "grain"
	CategoryLegume    = "legume"
	CategoryVegetable = "vegetable"
	CategoryFruit     = "fruit"
	CategoryNut       = "nut"
	CategoryOil       = "oil"
)

// Table is an immutable lookup of canonical foods keyed by lowercase name.
type Table struct {
	items map[string]domain.FoodItem
}

// NewTable builds a table from a food list. Keys are normalized to
// lowercase; later duplicates win.
func NewTable(foods []domain.FoodItem) *Table {
	items := make(map[string]domain.FoodItem, len(foods))
	for _, f := range foods {
		f.Key = strings.ToLower(f.Key)
		items[f.Key] = f
	}
	return &Table{items: items}
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the process-wide reference table, built on first use from
// the canonical food list. There is no mutation API and no reload.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(canonicalFoods)
	})
	return defaultTable
}

// Lookup finds a food by key, case-insensitively.
func (t *Table) Lookup(key string) (domain.FoodItem, error) {
	item, ok := t.items[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return domain.FoodItem{}, apperrors.NewNotFoundError("food", key)
	}
	return item, nil
}

// All returns every food sorted by key.
func (t *Table) All() []domain.FoodItem {
	foods := make([]domain.FoodItem, 0, len(t.items))
	for _, f := range t.items {
		foods = append(foods, f)
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].Key < foods[j].Key })
	return foods
}

// Len returns the number of foods in the table.
func (t *Table) Len() int {
	return len(t.items)
}

// animalFlesh holds categories excluded by the vegetarian tag.
var animalFlesh = map[string]bool{
	CategoryMeat:    true,
	CategoryPoultry: true,
	CategoryFish:    true,
}

// allowedByTags reports whether a food honors every dietary tag. Unknown
// tags are ignored rather than rejected; the table only understands the
// tags it can enforce.
func allowedByTags(f domain.FoodItem, tags []string) bool {
	for _, tag := range tags {
		switch strings.ToLower(tag) {
		case "vegetarian":
			if animalFlesh[f.Category] {
				return false
			}
		case "vegan":
			if animalFlesh[f.Category] || f.Category == CategoryDairy || f.Category == CategoryEgg {
				return false
			}
		case "nut_free":
			if f.Category == CategoryNut {
				return false
			}
		case "dairy_free":
			if f.Category == CategoryDairy {
				return false
			}
		}
	}
	return true
}
