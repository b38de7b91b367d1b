package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/umlgridgo/internal/config"
	"github.com/specialistvlad/umlgridgo/internal/render"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	renderer render.Renderer
}

// NewApp is the constructor for the main application. Logs go to logW and
// get their own isolated logger; outW only receives output written to
// StdoutPath.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, renderer render.Renderer) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		renderer: renderer,
	}
}
