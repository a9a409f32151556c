package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/henri123lemoine/monaco/internal/app"
	"github.com/henri123lemoine/monaco/internal/config"
	"github.com/henri123lemoine/monaco/internal/dashboard"
	"github.com/henri123lemoine/monaco/internal/debug"
	"github.com/henri123lemoine/monaco/internal/theme"
	"github.com/henri123lemoine/monaco/internal/ui"
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	dataPath   string
	debugPath  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "monaco",
		Short: "Monaco - team performance dashboard",
		Long: "Shows team rankings and team goals. Runs the interactive dashboard " +
			"on a terminal and prints a static render otherwise.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.debugPath == "" {
				return nil
			}
			return debug.Enable(opts.debugPath, "debug")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Config file (default "+config.ConfigPath()+")")
	cmd.PersistentFlags().StringVar(&opts.dataPath, "data", "",
		"Goals and rankings file (.toml, .yaml, .yml or .json)")
	cmd.PersistentFlags().StringVar(&opts.debugPath, "debug", "",
		"Write debug logs to this file")

	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newExportCmd(opts))
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newGameRoomCmd(opts))

	return cmd
}

// loadConfig reads the config file and reports validation warnings on w.
func (o *options) loadConfig(w io.Writer) (*config.Config, error) {
	load := config.Load
	if o.configPath != "" {
		load = func() (*config.Config, error) { return config.LoadFromPath(o.configPath) }
	}
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	for _, warning := range cfg.Validate() {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	return cfg, nil
}

// provider returns the data file provider, or the built-in sample data when
// no file is configured.
func (o *options) provider(cfg *config.Config) (dashboard.Provider, error) {
	path := o.dataPath
	if path == "" {
		path = cfg.General.DataFile
	}
	if path == "" {
		debug.Log("no data file, using sample data")
		return dashboard.Sample(), nil
	}
	return dashboard.LoadFile(path)
}

func (o *options) load(cmd *cobra.Command) (*config.Config, dashboard.Provider, error) {
	cfg, err := o.loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	p, err := o.provider(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}

func runDashboard(cmd *cobra.Command, opts *options) error {
	cfg, p, err := opts.load(cmd)
	if err != nil {
		return err
	}

	if _, ok := terminalWidth(cmd.OutOrStdout()); !ok {
		return renderStatic(cmd.OutOrStdout(), cfg, p, 0)
	}

	program := tea.NewProgram(app.New(cfg, p), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func renderStatic(w io.Writer, cfg *config.Config, p dashboard.Provider, width int) error {
	if width <= 0 {
		width = ui.DefaultWidth
		if tw, ok := terminalWidth(w); ok {
			width = tw
		}
	}
	palette, _ := theme.Get(cfg.UI.Theme)
	_, err := fmt.Fprintln(w, ui.RenderStatic(dashboard.Build(p), ui.NewStyles(palette), width))
	return err
}

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return ui.DefaultWidth, true
	}
	return width, true
}
