package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/vango-dev/forge/internal/config"
	"github.com/vango-dev/forge/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌─┐┬─┐┌─┐┌─┐
  ├┤ │ │├┬┘│ ┬├┤
  └  └─┘┴└─└─┘└─┘
`

const tracerName = "github.com/vango-dev/forge/cmd/forge"

// globals holds the persistent flags shared by every command.
type globals struct {
	configPath string
	verbose    bool

	stdout io.Writer
	stderr io.Writer
}

func main() {
	g := &globals{stdout: os.Stdout, stderr: os.Stderr}
	if err := newRootCmd(g).Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(g *globals) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forge",
		Short: "Forge element trees from layout files",
		Long: `Forge builds element trees from YAML layout files.

Each layout lists the elements to create with their properties,
the styles to apply and the hierarchy to attach them in. The result
can be rendered to HTML, previewed with live reload, or published
to S3-compatible storage.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(g.stdout)
	rootCmd.SetErr(g.stderr)

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to forge.json (default: nearest forge.json above the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log every element creation and attachment")

	rootCmd.AddCommand(
		renderCmd(g),
		serveCmd(g),
		publishCmd(g),
		versionCmd(g),
	)
	return rootCmd
}

// setup loads the configuration and builds the logger.
func (g *globals) setup() (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if g.configPath != "" {
		cfg, err = config.LoadFile(g.configPath)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, nil, err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	if g.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(g.stderr, opts)
	} else {
		handler = slog.NewTextHandler(g.stderr, opts)
	}
	return cfg, slog.New(handler), nil
}

// traced runs fn inside a span named after the command.
func traced(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "forge "+cmd.Name())
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
