package app

import (
	"bytes"
	"context"
	"fmt"

	"github.com/specialistvlad/umlgridgo/internal/catalog"
	"github.com/specialistvlad/umlgridgo/internal/config"
	"github.com/specialistvlad/umlgridgo/internal/ctxlog"
	"github.com/specialistvlad/umlgridgo/internal/diagram"
	"github.com/specialistvlad/umlgridgo/internal/render"
)

// Run executes the main application logic: load the catalog, build the
// diagram, render it and write the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	format := a.config.OutputFormat()
	if format != render.FormatDOT {
		version, err := a.renderer.Check(ctx)
		if err != nil {
			return err
		}
		a.logger.Info("Renderer found.", "version", version)
	}

	graph, err := a.Build(ctx)
	if err != nil {
		return err
	}

	var src bytes.Buffer
	if err := graph.WriteDOT(&src); err != nil {
		return fmt.Errorf("failed to serialize diagram: %w", err)
	}
	a.logger.Debug("Diagram serialized.", "bytes", src.Len())

	out, err := a.renderer.Render(ctx, src.Bytes(), format)
	if err != nil {
		return fmt.Errorf("failed to render diagram: %w", err)
	}

	if err := a.writeOutput(ctx, out); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Build loads the catalog and turns it into a diagram description without
// rendering anything.
func (a *App) Build(ctx context.Context) (*diagram.Graph, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	model, err := a.loader.Load(ctx, a.config.CatalogPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	a.logger.Info("Catalog loaded.", "files", len(model.Files), "classes", model.Catalog.Len())

	if err := a.checkReferences(model.Catalog); err != nil {
		return nil, err
	}

	var catalogStyle *config.StyleOverrides
	if model.Diagram != nil {
		catalogStyle = model.Diagram.Style
	}
	style, err := resolveStyle(catalogStyle, &a.config.Style)
	if err != nil {
		return nil, fmt.Errorf("invalid style: %w", err)
	}
	root := resolveRoot(model.Diagram, a.config.Root)
	a.logger.Debug("Style resolved.", "font", style.FontFamily, "font_size", style.FontSize, "font_weight", style.FontWeight, "root", root)

	graph := diagram.Build(model.Catalog, style, root)
	a.logger.Info("Diagram built.",
		"nodes", len(graph.Nodes),
		"generalizations", len(graph.EdgesOfKind(diagram.Generalization)),
		"associations", len(graph.EdgesOfKind(diagram.Association)),
	)
	return graph, nil
}

// checkReferences reports classes that reference unknown classes. They are
// only warnings unless the app runs in strict mode.
func (a *App) checkReferences(c *catalog.Catalog) error {
	dangling := catalog.Validate(c)
	if len(dangling) == 0 {
		return nil
	}
	if a.config.Strict {
		return fmt.Errorf("catalog has %d dangling reference(s): %w", len(dangling), catalog.Strict(c))
	}
	for _, ref := range dangling {
		a.logger.Warn("Reference to a class missing from the catalog.", "class", ref.Class, "target", ref.Target, "kind", ref.Kind)
	}
	return nil
}
