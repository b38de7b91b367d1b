package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/specialistvlad/umlgridgo/internal/ctxlog"
)

// DefaultDotPath is the executable looked up on PATH when none is configured.
const DefaultDotPath = "dot"

// Dot runs the Graphviz `dot` executable.
type Dot struct {
	// Path is the executable name or path. Empty means DefaultDotPath.
	Path string
}

// NewDot creates a Dot renderer for the given executable.
func NewDot(path string) *Dot {
	return &Dot{Path: path}
}

func (d *Dot) path() string {
	if d.Path == "" {
		return DefaultDotPath
	}
	return d.Path
}

// Check runs `dot -V`. Graphviz prints the version banner on stderr.
func (d *Dot) Check(ctx context.Context) (string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Checking renderer availability.", "path", d.path())

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, d.path(), "-V")
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: graphviz executable %q could not be run (install Graphviz and make sure it is on PATH): %v", ErrUnavailable, d.path(), err)
	}

	version := strings.TrimSpace(out.String())
	logger.Debug("Renderer is available.", "version", version)
	return version, nil
}

// Render pipes dot into `dot -T<format>` and returns what it writes to stdout.
func (d *Dot) Render(ctx context.Context, dot []byte, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if format == FormatDOT {
		return dot, nil
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Invoking renderer.", "path", d.path(), "format", format, "input_bytes", len(dot))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.path(), "-T"+format)
	cmd.Stdin = bytes.NewReader(dot)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("renderer interrupted: %w", ctxErr)
		}
		var execErr *exec.Error
		if errors.As(err, &execErr) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("renderer failed: %w", err)
		}
		return nil, fmt.Errorf("renderer failed: %w: %s", err, msg)
	}

	if warnings := strings.TrimSpace(stderr.String()); warnings != "" {
		logger.Warn("Renderer reported warnings.", "output", warnings)
	}
	logger.Debug("Renderer finished.", "output_bytes", stdout.Len())
	return stdout.Bytes(), nil
}
