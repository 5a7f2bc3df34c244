package sheetgrid

import (
	"fmt"
	"image/color"
	"maps"
	"strconv"
	"strings"
)

// Config is the viewport configuration. It is read-only during a render pass and
// never mutated by the session; resizes change per-axis overrides instead.
type Config struct {
	CellHeight   float64 // default row height
	CellWidth    float64 // default column width
	HeaderHeight float64 // height of the column-label band
	HeaderWidth  float64 // width of the row-label band

	LineWidth   float64
	StrokeColor color.RGBA

	HeaderFill      color.RGBA
	HeaderHighlight color.RGBA
	HeaderLabel     color.RGBA
	HeaderLabelHot  color.RGBA
	HeaderFont      Font
	SelectionTint   color.RGBA

	// Fonts maps a run's font key ("open-sans") to a family name ("Open Sans").
	Fonts map[string]string
}

// Rich-text layout constants.
const (
	TextPadding      = 5.0  // left padding inside a cell
	LineHeight       = 20.0 // baseline-to-baseline distance
	DecorationWidth  = 0.7  // underline and strike rule width
	underlineOffset  = 2.0
	strikeOffset     = -5.0
	DefaultFontKey   = "open-sans"
	DefaultFontSize  = 15.0
	DefaultTextColor = "#000000"
)

// DefaultFonts is the font table shipped with the grid.
var DefaultFonts = map[string]string{
	"open-sans":        "Open Sans",
	"barlow-condensed": "Barlow Condensed",
	"caveat":           "Caveat",
	"crimson-text":     "Crimson Text",
	"dancing-script":   "Dancing Script",
	"inter":            "Inter",
	"lato":             "Lato",
	"lobster":          "Lobster",
	"montserrat":       "Montserrat",
	"nunito-sans":      "Nunito Sans",
	"oswald":           "Oswald",
	"pacifico":         "Pacifico",
	"poppins":          "Poppins",
	"quicksand":        "Quicksand",
	"roboto":           "Roboto",
	"roboto-mono":      "Roboto Mono",
	"rubik":            "Rubik",
	"ubuntu":           "Ubuntu",
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		CellHeight:      25,
		CellWidth:       100,
		HeaderHeight:    25,
		HeaderWidth:     46,
		LineWidth:       2,
		StrokeColor:     MustParseColor("#C4C7C5"),
		HeaderFill:      MustParseColor("#FFFFFF"),
		HeaderHighlight: MustParseColor("#D3E3FD"),
		HeaderLabel:     MustParseColor("#575A5A"),
		HeaderLabelHot:  MustParseColor("#000000"),
		HeaderFont:      Font{Family: "Open Sans Medium", Size: 12},
		SelectionTint:   MustParseColor("#E8F0FE"),
		Fonts:           maps.Clone(DefaultFonts),
	}
}

// clone returns a copy that shares nothing mutable with c.
func (c Config) clone() Config {
	c.Fonts = maps.Clone(c.Fonts)
	return c
}

// Band returns the header band size along the given axis.
func (c Config) Band(axis Axis) float64 {
	if axis == RowAxis {
		return c.HeaderHeight
	}
	return c.HeaderWidth
}

// FontFamily resolves a font key through the font table, falling back to the
// default family for unknown or empty keys.
func (c Config) FontFamily(key string) string {
	if key == "" {
		key = DefaultFontKey
	}
	if family, ok := c.Fonts[key]; ok {
		return family
	}
	if family, ok := c.Fonts[DefaultFontKey]; ok {
		return family
	}
	return DefaultFonts[DefaultFontKey]
}

// ParseColor parses "#RGB", "#RRGGBB" or "AARRGGBB" (the spreadsheet ARGB form).
// The leading '#' is optional.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	case 8:
		hex = hex[2:]
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustParseColor is like ParseColor but panics on malformed input.
func MustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)
