package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsim/goal-simulator/internal/config"
)

func newInitCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example simulation config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.WriteExampleConfig(outputPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote example configuration to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "config.yaml", "where to write the example config")
	return cmd
}
