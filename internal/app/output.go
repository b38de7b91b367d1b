package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/umlgridgo/internal/ctxlog"
)

// writeOutput stores the rendered diagram at the configured path, creating
// parent directories as needed.
func (a *App) writeOutput(ctx context.Context, data []byte) error {
	logger := ctxlog.FromContext(ctx)
	path := a.config.OutputPath

	if path == StdoutPath {
		if _, err := a.outW.Write(data); err != nil {
			return fmt.Errorf("failed to write diagram to output: %w", err)
		}
		logger.Debug("Diagram written to output stream.", "bytes", len(data))
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write diagram to %s: %w", path, err)
	}

	logger.Info("🏁 Diagram written.", "path", path, "format", a.config.OutputFormat(), "bytes", len(data))
	return nil
}
