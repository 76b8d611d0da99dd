package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"seqq/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the seqq configuration file",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}
			if err := config.CreateSample(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, cfg)
			}
			out := renderTable(
				[]string{"Setting", "Value"},
				[][]string{
					{"queue.dir", cfg.Queue.Dir},
					{"queue.pattern", cfg.Queue.Pattern},
					{"queue.extension", cfg.Queue.Extension},
					{"queue.lock_file", cfg.Queue.LockFile},
					{"logging.level", cfg.Logging.Level},
					{"logging.format", cfg.Logging.Format},
				},
				[]columnAlignment{alignLeft, alignLeft},
				stdoutIsTTY(),
			)
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	})

	return configCmd
}
