// Package swatch renders color scales as html fragments for previewing.
package swatch

import (
	"bytes"
	"html/template"

	"github.com/keep94/colorscale/colors"
	"github.com/keep94/colorscale/palettes"
)

var (
	kSwatchTemplate = newTemplate(
		"swatch",
		`{{range .}}<div style="background-color:{{.}};height:20px;width:20px;display:inline-block;"></div>{{end}}`)
	kPaletteTemplate = newTemplate(
		"palette",
		`<div style="display:inline-block;padding:10px;"><div>{{.Name}}</div>{{.Swatches}}</div>`)
	kSizeTemplate = newTemplate(
		"size", `<hr><h3>{{.}} colors</h3>`)
	kCategoryTemplate = newTemplate(
		"category", `<h4>{{.}}</h4>`)
)

var kCategoryTitles = map[string]string{
	"qual": "Qualitative",
	"div":  "Diverging",
	"seq":  "Sequential",
}

// Scale returns one 20px square per color of s. Numeric scales are shown
// as their rgb equivalents.
func Scale(s colors.Scale) (template.HTML, error) {
	var buffer bytes.Buffer
	if err := writeScale(&buffer, s); err != nil {
		return "", err
	}
	return template.HTML(buffer.String()), nil
}

// Table returns every palette in t grouped under headings. Palette sizes
// get an "N colors" heading and categories get a title such as
// "Sequential". Table works on both palettes.Scales and
// palettes.Flip(palettes.Scales). Keys are visited in sorted order.
func Table(t palettes.Table) (template.HTML, error) {
	var buffer bytes.Buffer
	for _, key := range palettes.SortedKeys(t) {
		if err := writeGroup(&buffer, key, t[key]); err != nil {
			return "", err
		}
	}
	return template.HTML(buffer.String()), nil
}

func writeGroup(
	buffer *bytes.Buffer, key string, group palettes.Group) error {
	if len(group) == 0 {
		return nil
	}
	if err := writeHeading(buffer, key); err != nil {
		return err
	}
	keys := make([]string, 0, len(group))
	for k := range group {
		keys = append(keys, k)
	}
	palettes.SortKeys(keys)
	for _, k := range keys {
		if err := writePalettes(buffer, k, group[k]); err != nil {
			return err
		}
	}
	return nil
}

func writePalettes(
	buffer *bytes.Buffer, key string, p palettes.Palettes) error {
	if len(p) == 0 {
		return nil
	}
	if err := writeHeading(buffer, key); err != nil {
		return err
	}
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	palettes.SortKeys(names)
	for _, name := range names {
		swatches, err := Scale(p[name])
		if err != nil {
			return err
		}
		err = kPaletteTemplate.Execute(buffer, struct {
			Name     string
			Swatches template.HTML
		}{name, swatches})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeHeading(buffer *bytes.Buffer, key string) error {
	if title, ok := kCategoryTitles[key]; ok {
		return kCategoryTemplate.Execute(buffer, title)
	}
	return kSizeTemplate.Execute(buffer, key)
}

func writeScale(buffer *bytes.Buffer, s colors.Scale) error {
	v, err := colors.Classify(s)
	if err != nil {
		return err
	}
	var css []string
	if v == colors.Numeric {
		css, err = colors.ToRgb(s)
	} else {
		// Reformat so that only text produced by the codec reaches the page.
		css, err = reformat(v, s)
	}
	if err != nil {
		return err
	}
	values := make([]template.CSS, len(css))
	for i := range css {
		values[i] = template.CSS(css[i])
	}
	return kSwatchTemplate.Execute(buffer, values)
}

func reformat(v colors.Variant, s colors.Scale) ([]string, error) {
	if v == colors.HslVariant {
		return colors.ToHsl(s)
	}
	triples, err := colors.ToNumeric(s)
	if err != nil {
		return nil, err
	}
	result := make([]string, len(triples))
	for i := range triples {
		result[i] = colors.FormatRgb(triples[i])
	}
	return result, nil
}

func newTemplate(name, templateStr string) *template.Template {
	return template.Must(template.New(name).Parse(templateStr))
}
