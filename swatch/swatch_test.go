package swatch_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/keep94/colorscale/colors"
	"github.com/keep94/colorscale/palettes"
	"github.com/keep94/colorscale/swatch"
	"github.com/pkg/errors"
	asserts "github.com/stretchr/testify/assert"
)

const (
	kRedSquare  = `<div style="background-color:rgb(255, 0, 0);height:20px;width:20px;display:inline-block;"></div>`
	kBlueSquare = `<div style="background-color:rgb(0, 0, 255);height:20px;width:20px;display:inline-block;"></div>`
)

var (
	kTable = palettes.Table{
		"3": {
			"seq": {"Reds": colors.Strings("rgb(255,0,0)", "rgb(0,0,255)")},
			"div": {},
		},
		"5": {},
	}
	kReds = `<div style="display:inline-block;padding:10px;"><div>Reds</div>` +
		kRedSquare + kBlueSquare + `</div>`
)

func TestScale(t *testing.T) {
	assertHTML(t, kRedSquare+kBlueSquare, swatch.Scale, colors.Strings("rgb(255,0,0)", "rgb(0, 0, 255)"))
	assertHTML(t, kRedSquare+kBlueSquare, swatch.Scale, colors.Triples(colors.Triple{255, 0, 0}, colors.Triple{0, 0, 255}))
	assertHTML(
		t,
		`<div style="background-color:hsl(0, 100%, 50%);height:20px;width:20px;display:inline-block;"></div>`,
		swatch.Scale,
		colors.Strings("hsl(0,100,50)"))
}

func TestScaleError(t *testing.T) {
	_, err := swatch.Scale(colors.Scale{42})
	asserts.Equal(t, colors.ErrUnrecognizedFormat, errors.Cause(err))
	_, err = swatch.Scale(colors.Strings("rgb(1,2"))
	asserts.Equal(t, colors.ErrMalformedColor, errors.Cause(err))
}

func TestTable(t *testing.T) {
	assertTable(t, `<hr><h3>3 colors</h3><h4>Sequential</h4>`+kReds, kTable)
	// An empty palette group still gets its heading.
	assertTable(
		t,
		`<h4>Diverging</h4><h4>Sequential</h4><hr><h3>3 colors</h3>`+kReds,
		palettes.Flip(kTable))
}

func TestTableScales(t *testing.T) {
	assert := asserts.New(t)
	actual, err := swatch.Table(palettes.Scales)
	assert.NoError(err)
	html := string(actual)
	assert.True(strings.HasPrefix(html, "<hr><h3>3 colors</h3><h4>Diverging</h4>"))
	assert.Contains(html, "<hr><h3>5 colors</h3>")
	assert.Contains(html, "<h4>Qualitative</h4>")
	assert.Contains(html, "<div>YlGnBu</div>")
	assert.NotContains(html, "ZgotmplZ")
}

func assertHTML(
	t *testing.T,
	expected string,
	render func(colors.Scale) (template.HTML, error),
	s colors.Scale) {
	t.Helper()
	actual, err := render(s)
	if err != nil {
		t.Fatalf("Got error %v", err)
	}
	asserts.Equal(t, template.HTML(expected), actual)
}

func assertTable(t *testing.T, expected string, table palettes.Table) {
	t.Helper()
	actual, err := swatch.Table(table)
	if err != nil {
		t.Fatalf("Got error %v", err)
	}
	asserts.Equal(t, template.HTML(expected), actual)
}
