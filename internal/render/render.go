package render

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// ErrUnavailable is returned when the renderer executable cannot be run.
var ErrUnavailable = errors.New("renderer unavailable")

// ErrUnsupportedFormat is returned for output formats the renderer does not
// produce.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// FormatDOT asks for the Graphviz source itself. No renderer is involved.
const FormatDOT = "dot"

// DefaultFormat is used when the output path does not name one.
const DefaultFormat = "png"

var imageFormats = []string{"png", "svg", "pdf", "jpg"}

// Renderer turns Graphviz source into an image.
type Renderer interface {
	// Check verifies the renderer can be run and returns its version banner.
	Check(ctx context.Context) (string, error)
	// Render lays out and draws the graph in the given format.
	Render(ctx context.Context, dot []byte, format string) ([]byte, error)
}

// Formats lists every accepted output format, FormatDOT included.
func Formats() []string {
	return append(slices.Clone(imageFormats), FormatDOT)
}

// ValidateFormat returns ErrUnsupportedFormat for unknown formats.
func ValidateFormat(format string) error {
	if format == FormatDOT || slices.Contains(imageFormats, format) {
		return nil
	}
	return fmt.Errorf("%w %q: must be one of %s", ErrUnsupportedFormat, format, strings.Join(Formats(), ", "))
}

// FormatFromPath derives the format from the file extension of path,
// falling back to DefaultFormat. "jpeg" and "gv" are accepted as aliases.
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "jpeg":
		return "jpg"
	case "gv":
		return FormatDOT
	case "":
		return DefaultFormat
	}
	if ValidateFormat(ext) != nil {
		return DefaultFormat
	}
	return ext
}
