package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/umlgridgo/internal/config"
	"github.com/specialistvlad/umlgridgo/internal/render"
)

// DefaultOutputPath mirrors where the diagram has always been written.
const DefaultOutputPath = "output/uml_class_diagram.png"

// StdoutPath as an output path sends the result to the app's output writer.
const StdoutPath = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CatalogPaths []string // hcl files or directories
	OutputPath   string
	Format       string // empty means derived from OutputPath

	// Root overrides the catalog's root class when set.
	Root *string
	// Style holds command-line style overrides. They win over the catalog.
	Style config.StyleOverrides
	// Strict turns dangling class references into a failure.
	Strict bool

	DotPath   string
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.CatalogPaths) == 0 {
		return nil, errors.New("at least one catalog path is required")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	if cfg.Format != "" {
		if err := render.ValidateFormat(cfg.Format); err != nil {
			return nil, err
		}
	}
	if cfg.OutputPath == StdoutPath && cfg.Format == "" {
		cfg.Format = render.FormatDOT
	}
	if cfg.DotPath == "" {
		cfg.DotPath = render.DefaultDotPath
	}
	if _, err := resolveStyle(nil, &cfg.Style); err != nil {
		return nil, fmt.Errorf("invalid style: %w", err)
	}
	return &cfg, nil
}

// OutputFormat is the format the diagram will be written in.
func (c *Config) OutputFormat() string {
	if c.Format != "" {
		return c.Format
	}
	return render.FormatFromPath(c.OutputPath)
}
