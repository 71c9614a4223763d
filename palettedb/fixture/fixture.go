// Package fixture provides test suites to test implementations of the
// interfaces in the palettedb package.
package fixture

import (
	"reflect"
	"testing"

	"github.com/keep94/colorscale/colors"
	"github.com/keep94/colorscale/palettedb"
	"github.com/keep94/consume"
)

var (
	kFirstNamedScale = &palettedb.NamedScale{
		Name:     "Foo",
		Category: "seq",
		Colors:   colors.Strings("rgb(222, 235, 247)", "rgb(49, 130, 189)"),
	}
	kSecondNamedScale = &palettedb.NamedScale{
		Name:     "Bar",
		Category: "div",
		Colors: colors.Strings(
			"hsl(0, 100%, 50%)", "hsl(0, 0%, 97%)", "hsl(240, 100%, 50%)"),
	}
)

type MinimalStore interface {
	palettedb.AddNamedScaleRunner
	palettedb.NamedScaleByIdRunner
}

type NamedScalesStore interface {
	MinimalStore
	palettedb.NamedScalesRunner
}

type UpdateNamedScaleStore interface {
	MinimalStore
	palettedb.UpdateNamedScaleRunner
}

type RemoveNamedScaleStore interface {
	MinimalStore
	palettedb.RemoveNamedScaleRunner
}

func NamedScaleById(t *testing.T, store MinimalStore) {
	var first, second, firstResult, secondResult palettedb.NamedScale
	createNamedScales(t, store, &first, &second)
	if err := store.NamedScaleById(nil, first.Id, &firstResult); err != nil {
		t.Errorf("Got error reading database by id: %v", err)
	}
	if err := store.NamedScaleById(nil, second.Id, &secondResult); err != nil {
		t.Errorf("Got error reading database by id: %v", err)
	}
	assertNSEqual(t, &first, &firstResult)
	assertNSEqual(t, &second, &secondResult)
	if err := store.NamedScaleById(
		nil, second.Id+100, &secondResult); err != palettedb.ErrNoSuchId {
		t.Errorf("Expected palettedb.ErrNoSuchId, got %v", err)
	}
}

func NamedScales(t *testing.T, store NamedScalesStore) {
	var first, second palettedb.NamedScale
	createNamedScales(t, store, &first, &second)
	var results []palettedb.NamedScale
	if err := store.NamedScales(nil, consume.AppendTo(&results)); err != nil {
		t.Errorf("Got error reading database: %v", err)
	}
	if out := len(results); out != 2 {
		t.Fatalf("Expected array of size 2, got %d", out)
	}
	assertNSEqual(t, &first, &results[0])
	assertNSEqual(t, &second, &results[1])
}

func UpdateNamedScale(t *testing.T, store UpdateNamedScaleStore) {
	var first, second, firstResult, secondResult palettedb.NamedScale
	createNamedScales(t, store, &first, &second)
	second.Name = "Green"
	second.Colors = colors.Strings("rgb(0, 255, 0)")
	if err := store.UpdateNamedScale(nil, &second); err != nil {
		t.Errorf("Got error updating database: %v", err)
	}
	if err := store.NamedScaleById(nil, first.Id, &firstResult); err != nil {
		t.Errorf("Got error reading database by id: %v", err)
	}
	if err := store.NamedScaleById(nil, second.Id, &secondResult); err != nil {
		t.Errorf("Got error reading database by id: %v", err)
	}
	assertNSEqual(t, &first, &firstResult)
	assertNSEqual(t, &second, &secondResult)

	// Numeric colors are stored as rgb text
	second.Colors = colors.Triples(colors.Triple{1, 2, 3}, colors.Triple{4, 5.5, 6})
	if err := store.UpdateNamedScale(nil, &second); err != nil {
		t.Errorf("Got error updating database: %v", err)
	}
	if err := store.NamedScaleById(nil, second.Id, &secondResult); err != nil {
		t.Errorf("Got error reading database by id: %v", err)
	}
	second.Colors = colors.Strings("rgb(1, 2, 3)", "rgb(4, 5.5, 6)")
	assertNSEqual(t, &second, &secondResult)

	// Invalid colors
	second.Colors = nil
	if err := store.UpdateNamedScale(nil, &second); err == nil {
		t.Error("Expected to get an error because of no colors")
	}
	second.Colors = colors.Strings("rgb(1, 2)")
	if err := store.UpdateNamedScale(nil, &second); err == nil {
		t.Error("Expected to get an error because of invalid color")
	}
}

func RemoveNamedScale(t *testing.T, store RemoveNamedScaleStore) {
	var first, second, firstResult, secondResult palettedb.NamedScale
	createNamedScales(t, store, &first, &second)
	if err := store.RemoveNamedScale(nil, first.Id); err != nil {
		t.Errorf("Got error removing from database: %v", err)
	}
	if err := store.NamedScaleById(
		nil, first.Id, &firstResult); err != palettedb.ErrNoSuchId {
		t.Errorf("Expected palettedb.ErrNoSuchId, got %v", err)
	}
	if err := store.NamedScaleById(
		nil, second.Id, &secondResult); err != nil {
		t.Errorf("Got error reading database by id: %v", err)
	}
	assertNSEqual(t, &second, &secondResult)
}

func createNamedScales(
	t *testing.T,
	store MinimalStore,
	first *palettedb.NamedScale,
	second *palettedb.NamedScale) {
	createNamedScale(t, store, kFirstNamedScale, first)
	createNamedScale(t, store, kSecondNamedScale, second)
}

func createNamedScale(
	t *testing.T,
	store MinimalStore,
	toBeAdded *palettedb.NamedScale,
	result *palettedb.NamedScale) {
	*result = *toBeAdded
	if err := store.AddNamedScale(nil, result); err != nil {
		t.Fatalf("Got %v adding to store", err)
	}
	if result.Id == 0 {
		t.Error("Expected Id to be set.")
	}
}

func assertNSEqual(t *testing.T, expected, actual *palettedb.NamedScale) {
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}
