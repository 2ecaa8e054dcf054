// Package cli is the seatbench command line. With no subcommand it opens the
// desktop shell through the injected Launcher.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"seatbench/pkg/config"
	"seatbench/pkg/logging"
	"seatbench/pkg/plot"
	"seatbench/pkg/session"
)

// Launcher opens the desktop shell and blocks until it exits.
type Launcher func(cfg config.Config, s *session.Session, log zerolog.Logger) error

var errNoDesktop = errors.New("desktop shell is not available in this build")

type App struct {
	launch Launcher

	configPath string
	logLevel   string
	metricsOut string

	cfg     config.Config
	log     zerolog.Logger
	session *session.Session
}

func New(launch Launcher) *App {
	return &App{launch: launch, cfg: config.Default(), log: zerolog.Nop()}
}

// Execute runs the command line and, when --metrics-out is set, writes the
// session metrics even if the command failed.
func (a *App) Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := a.Command()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if merr := a.flushMetrics(); merr != nil && err == nil {
		err = merr
	}
	return err
}

func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "seatbench",
		Short:         "Seat benchmark: load, plot, extend and summarize seat performance data",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGUI()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "config file (default $"+config.EnvConfigPath+")")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	f.StringVar(&a.metricsOut, "metrics-out", "", "write session metrics in Prometheus text format to this file")

	root.AddCommand(
		a.guiCmd(),
		a.statsCmd(),
		a.listCmd(),
		a.plotCmd(),
		a.addCmd(),
	)
	return root
}

func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	colors, err := plot.AssignerFor(cfg.ColorMode)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.session = session.New(session.WithColors(colors), session.WithLogger(log))
	log.Debug().Str("command", cmd.Name()).Str("color_mode", cfg.ColorMode).Msg("starting")
	return nil
}

func (a *App) guiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGUI()
		},
	}
}

func (a *App) runGUI() error {
	if a.launch == nil {
		return errNoDesktop
	}
	return a.launch(a.cfg, a.session, a.log)
}

func (a *App) load(path string) error {
	_, err := a.session.Load(path)
	return err
}

func (a *App) flushMetrics() error {
	if a.metricsOut == "" || a.session == nil {
		return nil
	}
	f, err := os.Create(a.metricsOut)
	if err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	if err := a.session.Metrics().WriteText(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
