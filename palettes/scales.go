package palettes

import (
	"github.com/keep94/colorscale/colors"
)

// Scales holds a subset of the ColorBrewer palettes by size, then
// category (seq, div or qual), then name. Only sizes 3 and 5 and a
// selection of names within each are included; callers needing other
// ColorBrewer palettes pass their own Table. Scales must be treated as
// immutable.
var Scales = Table{
	"3": {
		"seq": {
			"Blues":   colors.Strings("rgb(222,235,247)", "rgb(158,202,225)", "rgb(49,130,189)"),
			"Greens":  colors.Strings("rgb(229,245,224)", "rgb(161,217,155)", "rgb(49,163,84)"),
			"Greys":   colors.Strings("rgb(240,240,240)", "rgb(189,189,189)", "rgb(99,99,99)"),
			"Oranges": colors.Strings("rgb(254,230,206)", "rgb(253,174,107)", "rgb(230,85,13)"),
			"Purples": colors.Strings("rgb(239,237,245)", "rgb(188,189,220)", "rgb(117,107,177)"),
			"Reds":    colors.Strings("rgb(254,224,210)", "rgb(252,146,114)", "rgb(222,45,38)"),
			"YlGnBu":  colors.Strings("rgb(237,248,177)", "rgb(127,205,187)", "rgb(44,127,184)"),
		},
		"div": {
			"BrBG":   colors.Strings("rgb(216,179,101)", "rgb(245,245,245)", "rgb(90,180,172)"),
			"PiYG":   colors.Strings("rgb(233,163,201)", "rgb(247,247,247)", "rgb(161,215,106)"),
			"RdBu":   colors.Strings("rgb(239,138,98)", "rgb(247,247,247)", "rgb(103,169,207)"),
			"RdYlGn": colors.Strings("rgb(252,141,89)", "rgb(255,255,191)", "rgb(145,207,96)"),
		},
		"qual": {
			"Dark2":   colors.Strings("rgb(27,158,119)", "rgb(217,95,2)", "rgb(117,112,179)"),
			"Paired":  colors.Strings("rgb(166,206,227)", "rgb(31,120,180)", "rgb(178,223,138)"),
			"Pastel1": colors.Strings("rgb(251,180,174)", "rgb(179,205,227)", "rgb(204,235,197)"),
			"Set1":    colors.Strings("rgb(228,26,28)", "rgb(55,126,184)", "rgb(77,175,74)"),
			"Set2":    colors.Strings("rgb(102,194,165)", "rgb(252,141,98)", "rgb(141,160,203)"),
		},
	},
	"5": {
		"seq": {
			"Blues":  colors.Strings("rgb(239,243,255)", "rgb(189,215,231)", "rgb(107,174,214)", "rgb(49,130,189)", "rgb(8,81,156)"),
			"Greens": colors.Strings("rgb(237,248,233)", "rgb(186,228,179)", "rgb(116,196,118)", "rgb(49,163,84)", "rgb(0,109,44)"),
			"Reds":   colors.Strings("rgb(254,229,217)", "rgb(252,174,145)", "rgb(251,106,74)", "rgb(222,45,38)", "rgb(165,15,21)"),
		},
		"div": {
			"RdBu":   colors.Strings("rgb(202,0,32)", "rgb(244,165,130)", "rgb(247,247,247)", "rgb(146,197,222)", "rgb(5,113,176)"),
			"RdYlGn": colors.Strings("rgb(215,25,28)", "rgb(253,174,97)", "rgb(255,255,191)", "rgb(166,217,106)", "rgb(26,150,65)"),
		},
		"qual": {
			"Dark2": colors.Strings("rgb(27,158,119)", "rgb(217,95,2)", "rgb(117,112,179)", "rgb(231,41,138)", "rgb(102,166,30)"),
			"Set1":  colors.Strings("rgb(228,26,28)", "rgb(55,126,184)", "rgb(77,175,74)", "rgb(152,78,163)", "rgb(255,127,0)"),
		},
	},
}
