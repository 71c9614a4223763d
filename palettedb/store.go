// Package palettedb contains the persistence layer for named color scales.
package palettedb

import (
	"log"

	"github.com/keep94/colorscale/colors"
	"github.com/keep94/colorscale/palettes"
	"github.com/keep94/colorscale/scale"
	"github.com/keep94/consume"
	"github.com/keep94/toolbox/db"
	"github.com/pkg/errors"
)

var (
	// Indicates that the id does not exist in the database.
	ErrNoSuchId = errors.New("palettedb: No such Id.")
	// Indicates that a NamedScale has bad values in Colors.
	ErrBadColors = errors.New("palettedb: Bad values in Colors.")
)

// NamedScale is a color scale read from persistent storage.
type NamedScale struct {
	Id int64

	// e.g "Blues"
	Name string

	// e.g "seq"
	Category string

	// The colors. Stores write these in canonical rgb or hsl form.
	Colors colors.Scale
}

type NamedScaleByIdRunner interface {
	// NamedScaleById gets a named scale by id.
	NamedScaleById(t db.Transaction, id int64, scale *NamedScale) error
}

type NamedScalesRunner interface {
	// NamedScales gets all named scales.
	NamedScales(t db.Transaction, consumer consume.Consumer) error
}

type AddNamedScaleRunner interface {
	// AddNamedScale adds a named scale and sets its Id.
	AddNamedScale(t db.Transaction, scale *NamedScale) error
}

type UpdateNamedScaleRunner interface {
	// UpdateNamedScale updates a named scale by id.
	UpdateNamedScale(t db.Transaction, scale *NamedScale) error
}

type RemoveNamedScaleRunner interface {
	// RemoveNamedScale removes a named scale by id.
	RemoveNamedScale(t db.Transaction, id int64) error
}

// Store is what a Catalog needs from persistent storage.
type Store interface {
	NamedScaleByIdRunner
	NamedScalesRunner
	AddNamedScaleRunner
	RemoveNamedScaleRunner
}

// Encode returns the colors of s as canonical css strings. Numeric scales
// are encoded as rgb strings. Encode reports ErrBadColors if s is empty
// or cannot be parsed.
func Encode(s colors.Scale) ([]string, error) {
	v, err := colors.Classify(s)
	if err != nil {
		return nil, errors.Wrap(ErrBadColors, err.Error())
	}
	if v == colors.HslVariant {
		result, err := colors.ToHsl(s)
		if err != nil {
			return nil, errors.Wrap(ErrBadColors, err.Error())
		}
		return result, nil
	}
	triples, err := colors.ToNumeric(s)
	if err != nil {
		return nil, errors.Wrap(ErrBadColors, err.Error())
	}
	result := make([]string, len(triples))
	for i := range triples {
		result[i] = colors.FormatRgb(triples[i])
	}
	return result, nil
}

// Catalog reads and writes named scales logging any errors.
// Catalog is safe to use with multiple goroutines if its store is.
type Catalog struct {
	store  Store
	logger *log.Logger
}

// NewCatalog creates and returns a new Catalog ready for use.
func NewCatalog(store Store, logger *log.Logger) *Catalog {
	return &Catalog{store: store, logger: logger}
}

// All returns all named scales. Scales whose colors can no longer be
// parsed are logged and removed from the store.
func (c *Catalog) All() []*NamedScale {
	var all []*NamedScale
	if err := c.store.NamedScales(nil, consume.AppendPtrsTo(&all)); err != nil {
		c.logger.Println(err)
		return nil
	}
	result := make([]*NamedScale, len(all))
	idx := 0
	for i := range all {
		if _, err := colors.ToNumeric(all[i].Colors); err != nil {
			c.logger.Printf("While reading named scale %d: %v", all[i].Id, err)
			c.Remove(all[i].Id)
			continue
		}
		result[idx] = all[i]
		idx++
	}
	return result[:idx]
}

// Import adds every palette in t to the store and returns the number
// added. Palettes that cannot be added are logged and skipped.
func (c *Catalog) Import(t palettes.Table) int {
	added := 0
	for _, name := range palettes.Names(t) {
		named := &NamedScale{
			Name:     name.Name,
			Category: name.Category,
			Colors:   t[name.Size][name.Category][name.Name],
		}
		if err := c.store.AddNamedScale(nil, named); err != nil {
			c.logger.Printf("While importing %v: %v", name, err)
			continue
		}
		added++
	}
	return added
}

// Remove removes a named scale by id.
func (c *Catalog) Remove(id int64) {
	if err := c.store.RemoveNamedScale(nil, id); err != nil {
		c.logger.Println(err)
	}
}

// Interpolate resamples the named scale with given id to count colors.
// It returns the colors as css hsl strings.
func (c *Catalog) Interpolate(id int64, count int) ([]string, error) {
	var named NamedScale
	if err := c.store.NamedScaleById(nil, id, &named); err != nil {
		return nil, err
	}
	return scale.Interpolate(named.Colors, count)
}
