package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/henri123lemoine/monaco/internal/config"
	"github.com/henri123lemoine/monaco/internal/dashboard"
	"github.com/henri123lemoine/monaco/internal/debug"
	"github.com/henri123lemoine/monaco/internal/export"
	"github.com/henri123lemoine/monaco/internal/gameroom"
	"github.com/henri123lemoine/monaco/internal/theme"
	"github.com/henri123lemoine/monaco/internal/ui"
	"github.com/henri123lemoine/monaco/internal/web"
)

func newRenderCmd(opts *options) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the dashboard once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, p, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return renderStatic(cmd.OutOrStdout(), cfg, p, width)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Output width in columns (default: terminal width or 80)")
	return cmd
}

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard as an HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer cancel()

			cfg, p, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if opts.debugPath == "" {
				debug.UseWriter(cmd.ErrOrStderr(), cfg.Log.Level)
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			regions := web.CardRegions{Panel: web.Region{Class: cfg.Server.CardClass}}
			router := web.NewRouter(web.NewHandler(dashboard.Build(p), web.WithCardRegions(regions)))
			return serve(ctx, web.Options{
				Addr:            addr,
				ReadTimeout:     cfg.Server.ReadTimeout.Duration,
				WriteTimeout:    cfg.Server.WriteTimeout.Duration,
				ShutdownTimeout: cfg.Server.ShutdownTimeout.Duration,
			}, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}

// serve is replaced in tests.
var serve = web.ListenAndServe

func newExportCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dashboard to a PDF file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, p, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.ExportPath()
			}
			if err := export.WriteFile(output, dashboard.Build(p)); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "PDF file to write (default from config)")
	return cmd
}

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default config, optionally with sample data",
		Long: "Creates the config file if it does not exist yet. With --data, also " +
			"writes the built-in sample goals and rankings to that path (the " +
			"extension picks the format) and points general.data_file at it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var dataPath string
			if opts.dataPath != "" {
				abs, err := filepath.Abs(opts.dataPath)
				if err != nil {
					return err
				}
				if err := dashboard.WriteSampleFile(abs); err != nil {
					return err
				}
				dataPath = abs
				fmt.Fprintf(out, "Wrote sample data to %s\n", dataPath)
			}

			configPath := opts.configPath
			if configPath == "" {
				configPath = config.ConfigPath()
			}
			err := config.CreateDefaultConfigFile(configPath, dataPath)
			switch {
			case errors.Is(err, os.ErrExist):
				fmt.Fprintf(out, "Config already exists at %s\n", configPath)
				if dataPath == "" {
					return nil
				}
				return setDataFile(out, configPath, dataPath)
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "Created config at %s\n", configPath)
			}
			return nil
		},
	}
}

// setDataFile points an existing config at dataPath.
func setDataFile(w io.Writer, configPath, dataPath string) error {
	cfg, err := config.LoadFromPath(configPath)
	if err != nil {
		return err
	}
	if cfg.General.DataFile == dataPath {
		return nil
	}
	cfg.General.DataFile = dataPath
	if err := config.SaveTo(configPath, cfg); err != nil {
		return fmt.Errorf("update config: %w", err)
	}
	fmt.Fprintf(w, "Set general.data_file to %s\n", dataPath)
	return nil
}

func newGameRoomCmd(opts *options) *cobra.Command {
	var (
		dir    string
		width  int
		report gameroom.Options
	)

	cmd := &cobra.Command{
		Use:   "gameroom",
		Short: "Print GameRoom analytics from JSON exports",
		Long: "Reads the GameRoom collections (gamehistories, tickets, users, " +
			"gameevents and orders) from a directory of JSON exports and prints " +
			"monthly growth, tickets per game, per-event activity, paid orders " +
			"and the heaviest players.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.General.GameRoomDir
			}
			if dir == "" {
				return errors.New("no GameRoom data: pass --dir or set general.gameroom_dir")
			}

			data, err := gameroom.LoadDir(dir)
			if err != nil {
				return err
			}
			r, err := gameroom.Analyze(data, report)
			if err != nil {
				return err
			}

			if width <= 0 {
				width = ui.DefaultWidth
				if tw, ok := terminalWidth(cmd.OutOrStdout()); ok {
					width = tw
				}
			}
			palette, _ := theme.Get(cfg.UI.Theme)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ui.RenderReport(r, ui.NewStyles(palette), width))
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory of GameRoom JSON exports (default from config)")
	cmd.Flags().IntVar(&report.TopUsers, "top", 30, "Number of heavy users to list (0 lists all)")
	cmd.Flags().StringVar(&report.Event, "event", "", "Event title to list top players for")
	cmd.Flags().IntVar(&report.EventTopUsers, "event-top", 10, "Number of top players for --event")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Output width in columns (default: terminal width or 80)")
	return cmd
}
