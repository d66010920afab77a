package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"crtracker/internal/config"
)

func newConfigCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newConfigCreateCommand(cctx))
	cmd.AddCommand(newConfigShowCommand(cctx))
	return cmd
}

func newConfigCreateCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write an annotated sample configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if cctx.configFlag != nil {
				path = *cctx.configFlag
			}
			written, err := config.CreateSample(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", written)
			return nil
		},
	}
	return cmd
}

func newConfigShowCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			cmd.OutOrStdout().Write(data)
			return nil
		},
	}
	return cmd
}
