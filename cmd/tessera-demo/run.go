package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	tcellbackend "github.com/odvcencio/tessera/pkg/backend/tcell"
	"github.com/odvcencio/tessera/pkg/logging"
	"github.com/odvcencio/tessera/pkg/metrics"
	"github.com/odvcencio/tessera/pkg/runtime"
	"github.com/odvcencio/tessera/pkg/theme"
)

var (
	flagTheme       string
	flagLogDir      string
	flagMetricsAddr string
	flagFPS         int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Interactive widget showcase",
	Long: `Open the widget showcase on the current terminal.

Controls:
  q, Esc       - Quit
  l            - Toggle code line numbers
  Up/Down      - Scroll the code view
  PgUp/PgDn    - Page the code view
  Mouse wheel  - Scroll the code view

When --theme points at a YAML theme file, the file is watched and
edits apply live without restarting.`,
	Args: cobra.NoArgs,
	RunE: runShowcase,
}

func init() {
	runCmd.Flags().StringVar(&flagTheme, "theme", "", "Path to a theme YAML file (watched for changes)")
	runCmd.Flags().StringVar(&flagLogDir, "log-dir", "", "Directory for JSONL debug logs")
	runCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9188)")
	runCmd.Flags().IntVar(&flagFPS, "fps", 30, "Animation tick rate in frames per second")
}

func runShowcase(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	th := theme.DefaultTheme()
	if flagTheme != "" {
		loaded, err := theme.Load(flagTheme)
		if err != nil {
			return fmt.Errorf("loading theme: %w", err)
		}
		th = loaded
	}

	var logger *logging.Logger
	if flagLogDir != "" {
		l, err := logging.NewLogger(flagLogDir, logging.NewRunID())
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		defer l.Close()
		logger = l
	}

	be, err := tcellbackend.New()
	if err != nil {
		return fmt.Errorf("opening terminal backend: %w", err)
	}

	var tickRate time.Duration
	if flagFPS > 0 {
		tickRate = time.Second / time.Duration(flagFPS)
	}

	app := runtime.NewApp(runtime.AppConfig{
		Backend:  be,
		Root:     newShowcase(),
		Theme:    th,
		Logger:   logger,
		TickRate: tickRate,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Quitting the UI shuts the watchers down too.
		defer cancel()
		return app.Run(gctx)
	})
	if flagTheme != "" {
		g.Go(func() error {
			return theme.Watch(gctx, flagTheme, func(t *theme.Theme) {
				app.Post(runtime.ThemeMsg{Theme: t})
			}, func(err error) {
				if logger != nil {
					logger.Warn(logging.CategoryTheme, "reload_failed", err.Error(), nil)
				}
			})
		})
	}
	if flagMetricsAddr != "" {
		g.Go(func() error {
			return metrics.Serve(gctx, flagMetricsAddr)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
