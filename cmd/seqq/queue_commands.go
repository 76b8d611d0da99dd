package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"seqq/internal/fileutil"
)

type listEntry struct {
	Num  int    `json:"num"`
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending queue entries in FIFO order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := ctx.queue()
			if err != nil {
				return err
			}
			if err := q.ScanDir(); err != nil {
				return err
			}

			entries := make([]listEntry, 0, q.Len())
			for _, num := range q.Pending() {
				entry := listEntry{
					Num:  num,
					Name: q.NameForNum(num),
					Path: q.PathForNum(num),
				}
				if info, err := os.Stat(entry.Path); err == nil {
					entry.Size = info.Size()
				}
				entries = append(entries, entry)
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Queue is empty")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					strconv.Itoa(entry.Num),
					entry.Name,
					strconv.FormatInt(entry.Size, 10),
				})
			}
			out := renderTable(
				[]string{"Num", "Name", "Bytes"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight},
				stdoutIsTTY(),
			)
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>",
		Short: "Copy a file into the queue under the next file number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := ctx.queue()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read source: %w", err)
			}

			num, err := q.Reserve()
			if err != nil {
				return err
			}
			path := q.PathForNum(num)
			if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
				return err
			}
			if err := q.Add(num); err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"num": num, "path": path})
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newPopCommand(ctx *commandContext) *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "pop",
		Short: "Take the entry at the head of the queue",
		Long: "Take the entry at the head of the queue and print its path. " +
			"The entry leaves the in-memory queue but its file stays on disk; " +
			"remove it with 'seqq rm' once handled.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := ctx.queue()
			if err != nil {
				return err
			}

			num, err := q.Next(!keep)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				out := map[string]any{"num": num}
				if num != 0 {
					out["path"] = q.PathForNum(num)
				}
				return writeJSON(cmd, out)
			}
			if num == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Queue is empty")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), q.PathForNum(num))
			return nil
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "Peek without removing the entry from the queue")
	return cmd
}

func newSkipCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "skip",
		Short: "Drop the second queue entry, leaving the in-flight head alone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := ctx.queue()
			if err != nil {
				return err
			}

			num, err := q.RemoveSecond()
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"num": num})
			}
			if num == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Queue has fewer than two entries")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dropped %d\n", num)
			return nil
		},
	}
}

func newReserveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reserve",
		Short: "Reserve the next file number and print its path",
		Long: "Reserve the next file number and print the path a producer " +
			"should write to. The reservation is in-memory only: nothing is " +
			"recorded on disk until the file is created.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := ctx.queue()
			if err != nil {
				return err
			}

			num, err := q.Reserve()
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"num": num, "path": q.PathForNum(num)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), q.PathForNum(num))
			return nil
		},
	}
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var allExtensions bool

	cmd := &cobra.Command{
		Use:   "rm <num>",
		Short: "Delete a queue entry's file from disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, err := strconv.Atoi(args[0])
			if err != nil || num <= 0 {
				return fmt.Errorf("invalid file number %q", args[0])
			}

			q, err := ctx.queue()
			if err != nil {
				return err
			}
			return q.RemoveNum(num, allExtensions)
		},
	}

	cmd.Flags().BoolVar(&allExtensions, "all-extensions", false,
		"Remove every file for this number regardless of extension")
	return cmd
}
