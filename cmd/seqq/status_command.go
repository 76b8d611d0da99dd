package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"seqq/internal/fileutil"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show queue configuration, length, and free space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := ctx.queue()
			if err != nil {
				return err
			}
			if err := q.ScanDir(); err != nil {
				return err
			}

			// Best-effort: status should still render on exotic filesystems
			// where statfs fails.
			free, freeErr := fileutil.FreeSpace(q.DirPath())

			if ctx.jsonOutput() {
				out := map[string]any{
					"dir":             q.DirPath(),
					"pattern":         q.Pattern(),
					"extension":       q.Extension(),
					"pending":         q.Len(),
					"high_water_mark": q.LastFileNum(),
				}
				if freeErr == nil {
					out["free_bytes"] = free
				}
				return writeJSON(cmd, out)
			}

			rows := [][]string{
				{"Directory", q.DirPath()},
				{"Pattern", q.Pattern()},
				{"Extension", q.Extension()},
				{"Pending", strconv.Itoa(q.Len())},
				{"High-water mark", strconv.Itoa(q.LastFileNum())},
			}
			if freeErr == nil {
				rows = append(rows, []string{"Free bytes", strconv.FormatUint(free, 10)})
			}
			out := renderTable(
				[]string{"Field", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
				stdoutIsTTY(),
			)
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
