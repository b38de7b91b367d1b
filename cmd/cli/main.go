package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/umlgridgo/internal/app"
	"github.com/specialistvlad/umlgridgo/internal/cli"
	"github.com/specialistvlad/umlgridgo/internal/hcl_adapter"
	"github.com/specialistvlad/umlgridgo/internal/render"
)

// main is the entrypoint for the umlgrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// A missing .env file is fine; it only supplies flag defaults.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete loader and renderer to pass to the app.
	loader := hcl_adapter.NewLoader()
	renderer := render.NewDot(appConfig.DotPath)
	umlApp := app.NewApp(outW, errW, appConfig, loader, renderer)

	return umlApp.Run(ctx)
}
