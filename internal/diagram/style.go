package diagram

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned by Preset for names that are not registered.
var ErrUnknownPreset = errors.New("unknown style preset")

// DirectionTopToBottom is the only supported rank direction.
const DirectionTopToBottom = "TB"

// FontWeight selects the weight of every label in the diagram.
type FontWeight string

const (
	FontWeightNormal FontWeight = "normal"
	FontWeightBold   FontWeight = "bold"
)

// ParseFontWeight accepts "normal" or "bold".
func ParseFontWeight(s string) (FontWeight, error) {
	switch w := FontWeight(s); w {
	case FontWeightNormal, FontWeightBold:
		return w, nil
	}
	return "", fmt.Errorf("invalid font weight %q: must be %q or %q", s, FontWeightNormal, FontWeightBold)
}

// PageSize is the physical page size, in inches.
type PageSize struct {
	Width  float64
	Height float64
}

// Style holds the display options applied to the whole diagram. Zero values
// of the optional fields (PageSize, DPI, NodeSeparation) leave the renderer's
// defaults in place.
type Style struct {
	Direction      string
	FontFamily     string
	FontSize       int
	FontWeight     FontWeight
	FontColor      string
	PageSize       *PageSize
	DPI            int
	NodeSeparation float64
}

// DefaultStyle returns the style of the current diagram revision.
func DefaultStyle() Style {
	return Style{
		Direction:  DirectionTopToBottom,
		FontFamily: "Arial",
		FontSize:   14,
		FontWeight: FontWeightBold,
		FontColor:  "black",
	}
}

var presets = map[string]func() Style{
	"default": DefaultStyle,
	"classic": func() Style {
		s := DefaultStyle()
		s.FontSize = 12
		s.FontWeight = FontWeightNormal
		return s
	},
}

// Preset returns the named style preset.
func Preset(name string) (Style, error) {
	fn, ok := presets[name]
	if !ok {
		return Style{}, fmt.Errorf("%w %q (available: %v)", ErrUnknownPreset, name, PresetNames())
	}
	return fn(), nil
}

// PresetNames lists the registered presets in lexical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fontName is the font face handed to the renderer. Graphviz has no
// separate weight attribute, so bold is selected through the face name.
func (s Style) fontName() string {
	if s.FontWeight == FontWeightBold {
		return s.FontFamily + " Bold"
	}
	return s.FontFamily
}
