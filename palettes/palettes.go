// Package palettes contains named color scales and ways to look them up.
package palettes

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/keep94/colorscale/colors"
	"github.com/pkg/errors"
)

var (
	// Indicates that a palette does not exist in a Table.
	ErrNoSuchPalette = errors.New("palettes: No such palette.")
)

// Palettes maps palette name to color scale.
type Palettes map[string]colors.Scale

// Group maps the second level key of a Table to Palettes.
type Group map[string]Palettes

// Table is a two level index of palettes. In Scales, the first level
// key is the palette size and the second is the category. Flip swaps
// the two levels.
type Table map[string]Group

// PaletteName identifies one palette in a Table.
type PaletteName struct {
	// First level key e.g "5"
	Size string
	// Second level key e.g "seq"
	Category string
	// e.g "Blues"
	Name string
}

func (p PaletteName) String() string {
	return fmt.Sprintf("%s %s %s", p.Size, p.Category, p.Name)
}

// Flip returns a new Table with the first two levels of t swapped so
// that Flip(Scales) is keyed by category then size. The color scales
// themselves are shared with t.
func Flip(t Table) Table {
	result := make(Table)
	for outer, group := range t {
		for inner, palettes := range group {
			flipped, ok := result[inner]
			if !ok {
				flipped = make(Group)
				result[inner] = flipped
			}
			flipped[outer] = palettes
		}
	}
	return result
}

// Lookup returns a palette from t. If no such palette exists, Lookup
// reports ErrNoSuchPalette.
func Lookup(t Table, size, category, name string) (colors.Scale, error) {
	s, ok := t[size][category][name]
	if !ok {
		return nil, errors.Wrapf(
			ErrNoSuchPalette, "%s", PaletteName{size, category, name})
	}
	return s, nil
}

// Names returns the names of all the palettes in t ordered by size,
// then category, then name. Numeric keys sort by value.
func Names(t Table) []PaletteName {
	var result []PaletteName
	for _, size := range SortedKeys(t) {
		group := t[size]
		categories := make([]string, 0, len(group))
		for category := range group {
			categories = append(categories, category)
		}
		SortKeys(categories)
		for _, category := range categories {
			names := make([]string, 0, len(group[category]))
			for name := range group[category] {
				names = append(names, name)
			}
			SortKeys(names)
			for _, name := range names {
				result = append(result, PaletteName{size, category, name})
			}
		}
	}
	return result
}

// SortedKeys returns the first level keys of t in the same order that
// Names uses.
func SortedKeys(t Table) []string {
	result := make([]string, 0, len(t))
	for key := range t {
		result = append(result, key)
	}
	SortKeys(result)
	return result
}

// SortKeys sorts table keys in place. Keys that are both numbers compare
// by value; all others compare as strings.
func SortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		x, xerr := strconv.Atoi(keys[i])
		y, yerr := strconv.Atoi(keys[j])
		if xerr == nil && yerr == nil {
			return x < y
		}
		return keys[i] < keys[j]
	})
}
