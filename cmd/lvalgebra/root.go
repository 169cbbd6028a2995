// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvalgebra/internal/config"
	"github.com/katalvlaran/lvalgebra/internal/document"
	"github.com/katalvlaran/lvalgebra/internal/logging"
	"github.com/katalvlaran/lvalgebra/matrix"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
}

// newRootCmd builds the command tree writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: config.New(), out: out}

	root := &cobra.Command{
		Use:           "lvalgebra",
		Short:         "Dual real/complex matrix algebra and graph adjacency analysis",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	d := config.Default()
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.String("log-level", d.Log.Level, "log level: debug, info, warn or error")
	pf.String("log-format", d.Log.Format, "log format: text or json")
	pf.String("output", d.Output, "output format: human or json")
	pf.Float64("tolerance", d.Tolerance, "equality tolerance for real matrices")

	for key, flag := range map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
		"output":     "output",
		"tolerance":  "tolerance",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(newMatrixCmd(a), newScalarCmd(a), newGraphCmd(a))

	return root
}

// setup resolves configuration once flags are parsed.
func (a *app) setup(errOut io.Writer) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.LoadWith(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if err = matrix.SetEqualityTolerance(cfg.Tolerance); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.Log.Level, cfg.Log.Format, errOut)
	a.logger.Debug("lvalgebra: configuration resolved",
		slog.String("output", cfg.Output),
		slog.Float64("tolerance", cfg.Tolerance),
		slog.String("config", a.cfgFile))

	return nil
}

// load decodes a workload document and logs what it declares.
func (a *app) load(path string) (*document.Document, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	ms, gs := doc.Names()
	a.logger.Debug("lvalgebra: document loaded",
		slog.String("path", path),
		slog.Any("matrices", ms),
		slog.Any("graphs", gs))

	return doc, nil
}
