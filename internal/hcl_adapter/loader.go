package hcl_adapter

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/umlgridgo/internal/catalog"
	"github.com/specialistvlad/umlgridgo/internal/config"
	"github.com/specialistvlad/umlgridgo/internal/ctxlog"
	"github.com/specialistvlad/umlgridgo/internal/fsutil"
)

// FileExtension is the extension searched for when a path is a directory.
const FileExtension = ".hcl"

// ErrNoFiles is returned when the given paths contain no catalog files.
var ErrNoFiles = errors.New("no catalog files found")

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every catalog file under paths and merges them into one
// model. Files are processed in discovery order, which in turn fixes the
// order of the classes in the catalog.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, FileExtension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoFiles, paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	sources := make([]source, 0, len(files))
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %s: %w", file, err)
		}
		sources = append(sources, source{name: file, body: src})
	}
	return l.load(ctx, sources)
}

// LoadSource builds a model from in-memory HCL. The filename is only used in
// diagnostics.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	return l.load(ctx, []source{{name: filename, body: src}})
}

type source struct {
	name string
	body []byte
}

func (l *Loader) load(ctx context.Context, sources []source) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	cat, err := catalog.New()
	if err != nil {
		return nil, err
	}
	model := &config.Model{Catalog: cat}

	parser := hclparse.NewParser()
	evalCtx := evalContext()

	for _, src := range sources {
		hclFile, diags := parser.ParseHCL(src.body, src.name)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", src.name, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", src.name, diags)
		}

		for _, cls := range root.Classes {
			if err := model.Catalog.Add(translateClass(cls)); err != nil {
				return nil, fmt.Errorf("in %s: %w", src.name, err)
			}
		}

		for _, d := range root.Diagrams {
			if model.Diagram != nil {
				return nil, fmt.Errorf("in %s: only one diagram block is allowed across all catalog files", src.name)
			}
			translated, err := translateDiagram(d)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", src.name, err)
			}
			model.Diagram = translated
		}

		model.Files = append(model.Files, src.name)
		logger.Debug("Catalog file decoded.", "file", src.name, "classes", len(root.Classes), "diagram_blocks", len(root.Diagrams))
	}

	logger.Debug("HCL loading complete.", "files", len(model.Files), "classes", model.Catalog.Len(), "has_diagram", model.Diagram != nil)
	return model, nil
}
