package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/finsim/goal-simulator/internal/config"
	"github.com/finsim/goal-simulator/internal/output"
	"github.com/finsim/goal-simulator/internal/simulation"
)

func newSimulateCmd() *cobra.Command {
	var (
		configPath      string
		format          string
		outputPath      string
		distributionOut string
		seed            int64
		numSimulations  int
		keepRawPaths    bool
		timeout         time.Duration
		verbose         bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a Monte Carlo simulation from a config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)

			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(configPath)
			if err != nil {
				return err
			}

			// CLI flags override file values so a single config file can be
			// reused across runs.
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("simulations") {
				cfg.NumSimulations = numSimulations
			}
			if keepRawPaths {
				cfg.KeepRawPaths = true
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			engine := simulation.NewEngine()
			engine.SetLogger(zerologAdapter{log: log})

			result, err := engine.Run(ctx, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}
			if err := output.GenerateReport(result, format, out); err != nil {
				return err
			}

			if distributionOut != "" {
				data, err := output.FinalValuesCSV(result)
				if err != nil {
					return err
				}
				if err := os.WriteFile(distributionOut, data, 0o644); err != nil {
					return fmt.Errorf("failed to write distribution file: %w", err)
				}
				log.Info().Str("path", distributionOut).Msg("wrote final-value distribution")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML simulation config (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, json, or csv")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().StringVar(&distributionOut, "distribution-out", "", "also write the final-value distribution as CSV to this file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the random seed (0 = fresh seed per run)")
	cmd.Flags().IntVarP(&numSimulations, "simulations", "n", 0, "override the number of simulated paths")
	cmd.Flags().BoolVar(&keepRawPaths, "raw-paths", false, "retain the full path matrix in the result (json only)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the simulation after this duration")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// zerologAdapter bridges the engine's Logger interface to zerolog.
type zerologAdapter struct {
	log zerolog.Logger
}

func (z zerologAdapter) Debugf(format string, args ...any) { z.log.Debug().Msgf(format, args...) }
func (z zerologAdapter) Infof(format string, args ...any)  { z.log.Info().Msgf(format, args...) }
func (z zerologAdapter) Warnf(format string, args ...any)  { z.log.Warn().Msgf(format, args...) }
func (z zerologAdapter) Errorf(format string, args ...any) { z.log.Error().Msgf(format, args...) }
