package app

import (
	"fmt"

	"github.com/specialistvlad/umlgridgo/internal/config"
	"github.com/specialistvlad/umlgridgo/internal/diagram"
)

// resolveStyle layers the style sources, lowest precedence first: the
// default style, the selected preset (the command line's over the
// catalog's), the catalog's explicit fields, then the command line's.
func resolveStyle(fromCatalog, fromCLI *config.StyleOverrides) (diagram.Style, error) {
	style := diagram.DefaultStyle()

	preset := presetOf(fromCLI)
	if preset == nil {
		preset = presetOf(fromCatalog)
	}
	if preset != nil {
		s, err := diagram.Preset(*preset)
		if err != nil {
			return diagram.Style{}, err
		}
		style = s
	}

	for _, o := range []*config.StyleOverrides{fromCatalog, fromCLI} {
		if err := applyOverrides(&style, o); err != nil {
			return diagram.Style{}, err
		}
	}
	return style, nil
}

func presetOf(o *config.StyleOverrides) *string {
	if o == nil {
		return nil
	}
	return o.Preset
}

func applyOverrides(s *diagram.Style, o *config.StyleOverrides) error {
	if o == nil {
		return nil
	}
	if o.FontFamily != nil {
		s.FontFamily = *o.FontFamily
	}
	if o.FontSize != nil {
		if *o.FontSize <= 0 {
			return fmt.Errorf("font size must be positive, got %d", *o.FontSize)
		}
		s.FontSize = *o.FontSize
	}
	if o.FontWeight != nil {
		w, err := diagram.ParseFontWeight(*o.FontWeight)
		if err != nil {
			return err
		}
		s.FontWeight = w
	}
	if o.FontColor != nil {
		s.FontColor = *o.FontColor
	}
	if o.PageSize != nil {
		s.PageSize = &diagram.PageSize{Width: o.PageSize[0], Height: o.PageSize[1]}
	}
	if o.DPI != nil {
		s.DPI = *o.DPI
	}
	if o.NodeSeparation != nil {
		s.NodeSeparation = *o.NodeSeparation
	}
	return nil
}

// resolveRoot picks the root class: the command line, then the catalog,
// then diagram.DefaultRoot.
func resolveRoot(d *config.Diagram, fromCLI *string) string {
	if fromCLI != nil {
		return *fromCLI
	}
	if d != nil && d.Root != nil {
		return *d.Root
	}
	return diagram.DefaultRoot
}
