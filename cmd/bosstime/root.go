package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"bosstime/internal/config"
	"bosstime/internal/report"
	"bosstime/internal/tables"
)

type app struct {
	cfgPath string
	cfg     *config.Config

	dataDir  string
	dpsDir   string
	workers  int
	format   string
	logLevel string
	noColor  bool
	trace    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "bosstime <boss>",
		Short: "Estimate how long each boss phase takes to clear",
		Long: `bosstime reads the phase table of a boss and the squad's reference dps
curves, then prints how long every phase takes with power, semi-hybrid
and condition damage.

Inputs:
  <data>/<boss>.csv         phase,health,coeff,power_coeff,participants
  <data>/<boss>.yaml        same rows as a YAML document
  <dps>/{power,semi,condi}.csv  time,dps`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.run,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "YAML config file")
	f.StringVar(&a.dataDir, "data", "", "directory of phase tables")
	f.StringVar(&a.dpsDir, "dps", "", "directory of dps tables")
	f.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.Flags().IntVarP(&a.workers, "workers", "w", 0, "phases evaluated in parallel")
	root.Flags().StringVarP(&a.format, "format", "f", "", "output format: table, json")
	root.Flags().BoolVar(&a.noColor, "no-color", false, "disable colored table output")
	root.Flags().BoolVar(&a.trace, "trace", false, "report how each estimate was solved")

	root.AddCommand(a.listCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("dps") {
		cfg.DpsDir = a.dpsDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("no-color") {
		cfg.Color = !a.noColor
	}
	if flags.Changed("trace") {
		cfg.Trace = a.trace
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"}).
		Level(cfg.Level()).With().Timestamp().Logger()
	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	boss := args[0]
	phases, err := tables.LoadPhases(a.cfg.DataDir, boss)
	if err != nil {
		return err
	}
	lib, err := tables.LoadLibrary(a.cfg.DpsDir)
	if err != nil {
		return err
	}
	log.Info().Str("boss", boss).Int("phases", len(phases)).Int("workers", a.cfg.Workers).Msg("estimating")

	tbl, err := report.Build(cmd.Context(), boss, phases, lib, report.Options{Workers: a.cfg.Workers, Trace: a.cfg.Trace})
	if err != nil {
		return fmt.Errorf("boss %s: %w", boss, err)
	}
	for _, ev := range tbl.Events {
		log.Info().Str("branch", ev.Type).Float64("t", ev.T).Fields(ev.Payload).Msg("solved")
	}

	out := cmd.OutOrStdout()
	if a.cfg.Format == config.FormatJSON {
		return report.WriteJSON(out, tbl)
	}
	return report.WriteText(out, tbl, a.cfg.Color)
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the bosses with a phase table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := tables.ListBosses(a.cfg.DataDir)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
