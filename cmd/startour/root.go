package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/startour/geom"
	"github.com/katalvlaran/startour/pointio"
)

// app carries the state shared by every subcommand.
type app struct {
	log        *logrus.Logger
	configPath string
	logLevel   string
	logJSON    bool
	oneBased   bool
	count      int
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:           "startour",
		Short:         "Approximate TSP tours through 3D point sets",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "TOML run configuration (flags override it)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	pf.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")
	pf.BoolVar(&a.oneBased, "one-based", false, "point IDs and tour indices are 1-based")
	pf.IntVar(&a.count, "count", 0, "exact number of points expected in the input (0 = any)")

	root.AddCommand(
		newSolveCmd(a),
		newSweepCmd(a),
		newEvalCmd(a),
		newGenCmd(a),
	)

	return root
}

func (a *app) setupLogger(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())
	if a.logJSON {
		a.log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: cmd.ErrOrStderr() != os.Stderr})
	}

	return nil
}

// loadConfig returns the defaults overlaid with the --config file, if any.
func (a *app) loadConfig() (RunConfig, error) {
	cfg := DefaultRunConfig()
	if a.configPath == "" {
		return cfg, nil
	}
	if err := cfg.DecodeFile(a.configPath); err != nil {
		return cfg, err
	}
	a.log.WithField("path", a.configPath).Debug("config loaded")

	return cfg, nil
}

func (a *app) loadPoints(path string) ([]geom.Point, error) {
	pts, err := pointio.LoadFile(path, pointio.Options{ExpectedCount: a.count, OneBased: a.oneBased})
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{"path": path, "points": len(pts)}).Info("points loaded")

	return pts, nil
}
