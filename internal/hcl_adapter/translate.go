// This file translates the HCL schema structs into the format-agnostic
// configuration model defined in the config package.

package hcl_adapter

import (
	"fmt"

	"github.com/specialistvlad/umlgridgo/internal/catalog"
	"github.com/specialistvlad/umlgridgo/internal/config"
	"github.com/specialistvlad/umlgridgo/internal/diagram"
)

// translateClass converts a class block into a catalog entry.
func translateClass(c *Class) *catalog.Class {
	cls := &catalog.Class{
		Name:       c.Name,
		Attributes: c.Attributes,
		Methods:    c.Methods,
		Related:    c.Related,
	}
	if c.Inherits != nil {
		cls.Inherits = *c.Inherits
	}
	return cls
}

// translateDiagram converts the diagram block, rejecting style values the
// renderer could not honor.
func translateDiagram(d *Diagram) (*config.Diagram, error) {
	out := &config.Diagram{Root: d.Root}
	if d.Style == nil {
		return out, nil
	}

	s := d.Style
	style := &config.StyleOverrides{
		Preset:         s.Preset,
		FontFamily:     s.FontFamily,
		FontSize:       s.FontSize,
		FontWeight:     s.FontWeight,
		FontColor:      s.FontColor,
		DPI:            s.DPI,
		NodeSeparation: s.NodeSeparation,
	}

	if s.Preset != nil {
		if _, err := diagram.Preset(*s.Preset); err != nil {
			return nil, fmt.Errorf("style.preset: %w", err)
		}
	}
	if s.FontFamily != nil && *s.FontFamily == "" {
		return nil, fmt.Errorf("style.font_family must not be empty")
	}
	if s.FontSize != nil && *s.FontSize <= 0 {
		return nil, fmt.Errorf("style.font_size must be positive, got %d", *s.FontSize)
	}
	if s.FontWeight != nil {
		if _, err := diagram.ParseFontWeight(*s.FontWeight); err != nil {
			return nil, fmt.Errorf("style.font_weight: %w", err)
		}
	}
	if s.DPI != nil && *s.DPI < 0 {
		return nil, fmt.Errorf("style.dpi must not be negative, got %d", *s.DPI)
	}
	if s.NodeSeparation != nil && *s.NodeSeparation < 0 {
		return nil, fmt.Errorf("style.node_separation must not be negative, got %g", *s.NodeSeparation)
	}
	if s.PageSize != nil {
		if len(s.PageSize) != 2 || s.PageSize[0] <= 0 || s.PageSize[1] <= 0 {
			return nil, fmt.Errorf("style.page_size must be two positive numbers [width, height], got %v", s.PageSize)
		}
		style.PageSize = &[2]float64{s.PageSize[0], s.PageSize[1]}
	}

	out.Style = style
	return out, nil
}
