package main

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
)

func newWipeCommand(ctx *commandContext) *cobra.Command {
	var removeDir bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete every file in the queue directory",
		Long: "Delete every file under the queue directory, matching the " +
			"pattern or not, and reset the queue. A lock file prevents two " +
			"seqq maintenance commands from wiping the same directory at once.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := ctx.queue()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			lock := flock.New(cfg.Queue.LockFile)
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock %s: %w", cfg.Queue.LockFile, err)
			}
			if !ok {
				return errors.New("another seqq maintenance command holds the queue lock")
			}
			defer func() {
				_ = lock.Unlock()
			}()

			if err := q.RemoveAll(removeDir); err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"wiped": true, "removed_dir": removeDir})
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Queue wiped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&removeDir, "remove-dir", false, "Also remove the emptied queue directory")
	return cmd
}
