package config

import "github.com/specialistvlad/umlgridgo/internal/catalog"

// Model is the unified representation of everything read from catalog files.
type Model struct {
	Catalog *catalog.Catalog
	// Diagram is nil when no file declared a `diagram` block.
	Diagram *Diagram
	// Files lists the files that were read, in processing order.
	Files []string
}

// Diagram holds the diagram-wide settings declared alongside the classes.
type Diagram struct {
	// Root is the class whose associations are suppressed. Nil means unset.
	Root  *string
	Style *StyleOverrides
}

// StyleOverrides are partial style settings. Nil fields keep whatever value
// the lower-precedence source provided.
type StyleOverrides struct {
	Preset         *string
	FontFamily     *string
	FontSize       *int
	FontWeight     *string
	FontColor      *string
	PageSize       *[2]float64
	DPI            *int
	NodeSeparation *float64
}
