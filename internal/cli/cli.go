package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/umlgridgo/internal/app"
	"github.com/specialistvlad/umlgridgo/internal/config"
	"github.com/specialistvlad/umlgridgo/internal/diagram"
	"github.com/specialistvlad/umlgridgo/internal/render"
)

// Environment variables that provide flag defaults. They may also be set in
// a .env file next to the working directory.
const (
	EnvDotPath   = "UMLGRID_DOT_PATH"
	EnvLogFormat = "UMLGRID_LOG_FORMAT"
	EnvLogLevel  = "UMLGRID_LOG_LEVEL"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("umlgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
umlgrid - Renders a UML class diagram from an HCL class catalog using Graphviz.

Usage:
  umlgrid [options] [CATALOG_PATH...]

Arguments:
  CATALOG_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	catalogFlag := flagSet.String("catalog", "", "Path to the catalog file or directory.")
	cFlag := flagSet.String("c", "", "Path to the catalog file or directory (shorthand).")
	outFlag := flagSet.String("out", app.DefaultOutputPath, "Output file path. Use '-' to write to stdout.")
	oFlag := flagSet.String("o", "", "Output file path (shorthand).")
	formatFlag := flagSet.String("format", "", fmt.Sprintf("Output format, one of: %s. Defaults to the output file extension.", strings.Join(render.Formats(), ", ")))
	rootFlag := flagSet.String("root", "", fmt.Sprintf("Class whose associations are not drawn. Defaults to the catalog setting, then %q.", diagram.DefaultRoot))
	presetFlag := flagSet.String("preset", "", fmt.Sprintf("Style preset, one of: %s.", strings.Join(diagram.PresetNames(), ", ")))
	fontFamilyFlag := flagSet.String("font-family", "", "Font family for all labels.")
	fontSizeFlag := flagSet.Int("font-size", 0, "Font size in points. 0 keeps the catalog or preset value.")
	fontWeightFlag := flagSet.String("font-weight", "", "Font weight: 'normal' or 'bold'.")
	dpiFlag := flagSet.Int("dpi", -1, "Output resolution in dots per inch. -1 keeps the catalog or preset value.")
	pageSizeFlag := flagSet.String("page-size", "", "Maximum drawing size in inches as WIDTH,HEIGHT (e.g. 8.5,11).")
	nodeSepFlag := flagSet.Float64("nodesep", -1, "Minimum space between nodes in inches. -1 keeps the catalog or preset value.")
	strictFlag := flagSet.Bool("strict", false, "Fail when a class references a class missing from the catalog.")
	dotPathFlag := flagSet.String("dot-path", envOr(EnvDotPath, render.DefaultDotPath), "Graphviz 'dot' executable.")
	logFormatFlag := flagSet.String("log-format", envOr(EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envOr(EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	if *catalogFlag != "" {
		paths = append(paths, *catalogFlag)
	}
	if *cFlag != "" {
		paths = append(paths, *cFlag)
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Catalog paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No catalog path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	visited := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { visited[f.Name] = true })

	outPath := *outFlag
	if *oFlag != "" {
		outPath = *oFlag
	}

	style, err := styleOverrides(visited, *presetFlag, *fontFamilyFlag, *fontSizeFlag, *fontWeightFlag, *dpiFlag, *pageSizeFlag, *nodeSepFlag)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	var root *string
	if visited["root"] {
		root = rootFlag
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		CatalogPaths: paths,
		OutputPath:   outPath,
		Format:       strings.ToLower(*formatFlag),
		Root:         root,
		Style:        style,
		Strict:       *strictFlag,
		DotPath:      *dotPathFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// styleOverrides keeps only the style flags the user actually set.
func styleOverrides(visited map[string]bool, preset, family string, size int, weight string, dpi int, pageSize string, nodeSep float64) (config.StyleOverrides, error) {
	var o config.StyleOverrides
	if visited["preset"] {
		o.Preset = &preset
	}
	if visited["font-family"] {
		if family == "" {
			return o, errors.New("invalid font-family: must not be empty")
		}
		o.FontFamily = &family
	}
	if visited["font-size"] {
		o.FontSize = &size
	}
	if visited["font-weight"] {
		o.FontWeight = &weight
	}
	if visited["dpi"] {
		if dpi < 0 {
			return o, fmt.Errorf("invalid dpi: must not be negative, got %d", dpi)
		}
		o.DPI = &dpi
	}
	if visited["nodesep"] {
		if nodeSep < 0 {
			return o, fmt.Errorf("invalid nodesep: must not be negative, got %g", nodeSep)
		}
		o.NodeSeparation = &nodeSep
	}
	if visited["page-size"] {
		ps, err := parsePageSize(pageSize)
		if err != nil {
			return o, err
		}
		o.PageSize = ps
	}
	return o, nil
}

// parsePageSize parses "WIDTH,HEIGHT" in inches.
func parsePageSize(s string) (*[2]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid page-size %q: expected WIDTH,HEIGHT", s)
	}
	var out [2]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid page-size %q: dimensions must be positive numbers", s)
		}
		out[i] = v
	}
	return &out, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
