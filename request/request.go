// Package request builds color scale interpolation requests from user
// input such as html form values.
package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/keep94/colorscale/colors"
	"github.com/keep94/colorscale/palettes"
	"github.com/keep94/colorscale/scale"
	"github.com/pkg/errors"
)

const (
	// Name of palette parameter
	PaletteParamName = "Palette"

	// Name of count parameter
	CountParamName = "Count"

	// Name of format parameter
	FormatParamName = "Format"
)

const (
	// Colors come back as "hsl(H, S%, L%)"
	HslFormat = "hsl"

	// Colors come back as "rgb(R, G, B)"
	RgbFormat = "rgb"
)

var (
	// Reported if no value exists for a key in ParamSerializer
	ErrNoValue = errors.New("request: No value.")

	// Reported if a Request has an unknown Format.
	ErrBadFormat = errors.New("request: Bad format.")

	errBadValue = errors.New("request: Bad value.")
)

// Interface Param represents a single parameter of a Request.
type Param interface {

	// Selection returns the options to appear in the choice dialog. The
	// first option is always similar to "Select one." If the value of this
	// parameter is to be inputted in free form, returns nil.
	Selection() []string

	// MaxCharCount returns the maximum character count of this parameter.
	// It is used as a hint to determine how big to make the input text field
	// for the user.
	MaxCharCount() int

	// Convert converts the string the user entered or the ordinal value of
	// the selected option to the actual value of this parameter. The first
	// returned value is the actual value of the parameter; the second
	// returned value is a string representation that is used in the
	// description of the Result.
	Convert(s string) (interface{}, string)
}

// Choice represents a single choice in a choice dialog.
type Choice struct {

	// What the user sees in the choice dialog
	Name string

	// The parameter value attached to this choice
	Value interface{}
}

// ChoiceList is an immutable list of choices.
type ChoiceList []Choice

// Picker returns a Param that is presented as a choice dialog.
// choices are the choices user will see exluding the "Select one" choice;
// defaultValue is the value of returned Param if user does not select a
// choice; defaultName is the description of the default value.
func Picker(
	choices ChoiceList, defaultValue interface{}, defaultName string) Param {
	return &picker{
		Choices:      choices,
		DefaultValue: defaultValue,
		DefaultName:  defaultName,
	}
}

// Int returns an Param that is presented as a text field and has an
// integer value. minValue and maxValue the minimum and maximum value
// inclusive of the integer; defaultValue is the default value if user
// doesn't enter a number or enters one that is out of range; maxChars
// is the size of the text field.
func Int(
	minValue, maxValue, defaultValue, maxChars int) Param {
	return &intParam{
		MinValue:     minValue,
		MaxValue:     maxValue,
		DefaultValue: defaultValue,
		MaxChars:     maxChars,
	}
}

// PalettePicker returns a Param that lets the user choose any palette in
// t. The first palette in t is the default.
func PalettePicker(t palettes.Table) Param {
	names := palettes.Names(t)
	choices := make(ChoiceList, len(names))
	for i := range names {
		choices[i] = Choice{Name: names[i].String(), Value: names[i]}
	}
	if len(names) == 0 {
		return Picker(choices, palettes.PaletteName{}, "None")
	}
	return Picker(choices, names[0], names[0].String())
}

// NamedParam represents a Param that is named.
type NamedParam struct {

	// The name which appears on user input forms and in the description
	// of a Result.
	Name string
	Param
}

// NamedParamList represents an immutable list of NamedParam
type NamedParamList []NamedParam

// Request asks for a palette resampled to a number of colors.
type Request struct {
	Palette palettes.PaletteName
	Count   int

	// HslFormat or RgbFormat
	Format string
}

// Result is what running a Request produces.
type Result struct {

	// e.g "Interpolate Palette: 5 seq Blues Count: 10 Format: hsl"
	Description string

	// The resampled colors as css strings
	Colors []string
}

// Factory generates Requests from user input and runs them.
type Factory struct {

	// e.g "Interpolate"
	Description string

	// The palettes to choose from
	Table palettes.Table

	params NamedParamList
}

// NewFactory returns a Factory that lets users choose from the palettes
// in t. Count ranges from 1 to 1000 with a default of 10. Format defaults
// to hsl.
func NewFactory(t palettes.Table) *Factory {
	return &Factory{
		Description: "Interpolate",
		Table:       t,
		params: NamedParamList{
			{Name: PaletteParamName, Param: PalettePicker(t)},
			{Name: CountParamName, Param: kCount},
			{Name: FormatParamName, Param: kFormat},
		},
	}
}

// Params returns the parameters for which user must supply values.
func (f *Factory) Params() NamedParamList {
	return f.params
}

// New creates the Request using the values that the user supplied.
// values will have the same length as what Params returns.
func (f *Factory) New(values []interface{}) Request {
	return Request{
		Palette: values[0].(palettes.PaletteName),
		Count:   values[1].(int),
		Format:  values[2].(string),
	}
}

// Run runs r against the palettes of this instance.
func (f *Factory) Run(r Request) ([]string, error) {
	p := r.Palette
	s, err := palettes.Lookup(f.Table, p.Size, p.Category, p.Name)
	if err != nil {
		return nil, err
	}
	result, err := scale.Interpolate(s, r.Count)
	if err != nil {
		return nil, err
	}
	switch r.Format {
	case HslFormat:
		return result, nil
	case RgbFormat:
		return colors.ToRgb(colors.Strings(result...))
	default:
		return nil, errors.Wrapf(ErrBadFormat, "%q", r.Format)
	}
}

// FromUrlValues runs a Request based on url values from an html form.
// prefix is the prefix of url values for example if prefix is "p" then
// user supplied inputs would be under "p0" "p1" "p2" etc; values are the
// url values. The description of the returned Result includes the
// description of this instance along with each user supplied parameter.
func (f *Factory) FromUrlValues(
	prefix string, values url.Values) (*Result, error) {
	params := f.Params()
	paramValues := make([]interface{}, len(params))
	paramNames := make([]string, len(params))
	for i := range params {
		paramValues[i], paramNames[i] = params[i].Convert(
			values.Get(fmt.Sprintf("%s%d", prefix, i)))
	}
	result, err := f.Run(f.New(paramValues))
	if err != nil {
		return nil, err
	}
	return &Result{
		Description: f.getDescription(paramNames),
		Colors:      result,
	}, nil
}

// Encode encodes r as a string.
func (f *Factory) Encode(r Request) string {
	serializer := make(ParamSerializer)
	serializer.SetStrings(
		PaletteParamName, r.Palette.Size, r.Palette.Category, r.Palette.Name)
	serializer.SetInt(CountParamName, r.Count)
	serializer.SetStrings(FormatParamName, r.Format)
	return serializer.Encode()
}

// Decode decodes a string that Encode produced back into a Request.
func (f *Factory) Decode(s string) (r Request, err error) {
	serializer, err := NewParamSerializer(s)
	if err != nil {
		return
	}
	palette, err := serializer.GetStrings(PaletteParamName, 3)
	if err != nil {
		return
	}
	count, err := serializer.GetInt(CountParamName)
	if err != nil {
		return
	}
	format, err := serializer.GetStrings(FormatParamName, 1)
	if err != nil {
		return
	}
	r = Request{
		Palette: palettes.PaletteName{
			Size: palette[0], Category: palette[1], Name: palette[2]},
		Count:  count,
		Format: format[0],
	}
	return
}

func (f *Factory) getDescription(names []string) string {
	params := f.Params()
	if len(params) == 0 {
		return f.Description
	}
	parts := make([]string, len(params))
	for i := range parts {
		parts[i] = fmt.Sprintf("%s: %s", params[i].Name, names[i])
	}
	return fmt.Sprintf("%s %s", f.Description, strings.Join(parts, " "))
}

// ParamSerializer encodes request parameters as a single string.
type ParamSerializer map[string][]string

// Encode encodes stored parameters as a single string.
func (p ParamSerializer) Encode() string {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	if err := encoder.Encode(p); err != nil {
		panic(err)
	}
	return buffer.String()
}

// NewParamSerializer decodes a string back into parameters. Caller can
// safely modify the returned value.
func NewParamSerializer(s string) (ParamSerializer, error) {
	buffer := bytes.NewBufferString(s)
	decoder := json.NewDecoder(buffer)
	var result ParamSerializer
	err := decoder.Decode(&result)
	return result, err
}

// SetInt stores an int value and returns this instance for chaining.
func (p ParamSerializer) SetInt(key string, value int) ParamSerializer {
	p[key] = []string{strconv.Itoa(value)}
	return p
}

// GetInt returns the stored int value. If no value stored under key
// then returns ErrNoValue. May return a different error if the value
// stored is corrupted or cannot be converted to an int.
func (p ParamSerializer) GetInt(key string) (result int, err error) {
	value, err := p.GetStrings(key, 1)
	if err != nil {
		return
	}
	return strconv.Atoi(value[0])
}

// SetStrings stores string values and returns this instance for chaining.
func (p ParamSerializer) SetStrings(
	key string, values ...string) ParamSerializer {
	p[key] = values
	return p
}

// GetStrings returns the count string values stored under key. If no
// value stored under key then returns ErrNoValue. If a different number
// of values is stored, returns a different error.
func (p ParamSerializer) GetStrings(
	key string, count int) (result []string, err error) {
	value, ok := p[key]
	if !ok {
		err = ErrNoValue
		return
	}
	if len(value) != count {
		err = errBadValue
		return
	}
	return value, nil
}

var (
	kCount  = Int(1, 1000, 10, 4)
	kFormat = Picker(
		ChoiceList{{"hsl", HslFormat}, {"rgb", RgbFormat}}, HslFormat, "hsl")
)

type noSelect struct {
}

func (n noSelect) Selection() []string {
	return nil
}

type intParam struct {
	noSelect
	MinValue     int
	MaxValue     int
	DefaultValue int
	MaxChars     int
}

func (p *intParam) MaxCharCount() int {
	return p.MaxChars
}

func (p *intParam) Convert(s string) (interface{}, string) {
	result, err := strconv.Atoi(s)
	if err != nil || result > p.MaxValue || result < p.MinValue {
		result = p.DefaultValue
	}
	return result, strconv.Itoa(result)
}

type picker struct {
	Choices      ChoiceList
	DefaultValue interface{}
	DefaultName  string
}

func (p *picker) Selection() []string {
	result := make([]string, len(p.Choices)+1)
	result[0] = "--Pick one--"
	for i := range p.Choices {
		result[i+1] = p.Choices[i].Name
	}
	return result
}

func (p *picker) MaxCharCount() int {
	return 0
}

func (p *picker) Convert(s string) (interface{}, string) {
	val, _ := strconv.Atoi(s)
	if val < 1 || val > len(p.Choices) {
		return p.DefaultValue, p.DefaultName
	}
	return p.Choices[val-1].Value, p.Choices[val-1].Name
}
