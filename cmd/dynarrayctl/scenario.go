package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/dynarray"
)

func init() {
	rootCmd.AddCommand(newScenarioCmd())
}

func newScenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Run the reference append/insert/shrink/remove walk-through",
		Long: `The scenario command walks a vector of int32 through allocation,
appends, a front insert, reserve, shrink, ordered removal, clear and free,
printing the state after each step.

Example:
  dynarrayctl scenario
  dynarrayctl scenario --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.OutOrStdout())
		},
	}
}

func runScenario(w io.Writer) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	finalized := 0
	var v dynarray.Vector[int32]

	return dynarray.Catch(func() {
		v.Alloc(0, func(gone []int32) { finalized += len(gone) }, dynarray.WithLogger(logger))
		fmt.Fprintf(w, "alloc: size=%d capacity=%d\n", v.Len(), v.Cap())

		v.AppendSlice(1, 2, 3)
		fmt.Fprintf(w, "append 1 2 3: size=%d capacity=%d values=%v\n", v.Len(), v.Cap(), v.Slice())

		v.Insert(0, 0)
		fmt.Fprintf(w, "insert 0 at 0: size=%d capacity=%d values=%v\n", v.Len(), v.Cap(), v.Slice())

		v.Reserve(16)
		fmt.Fprintf(w, "reserve 16: size=%d capacity=%d values=%v\n", v.Len(), v.Cap(), v.Slice())

		v.Shrink()
		fmt.Fprintf(w, "shrink: size=%d capacity=%d\n", v.Len(), v.Cap())

		v.Remove(0)
		fmt.Fprintf(w, "remove 0: values=%v finalized=%d\n", v.Slice(), finalized)

		v.Clear()
		fmt.Fprintf(w, "clear: size=%d finalized=%d\n", v.Len(), finalized)

		v.Free()
		fmt.Fprintf(w, "free: allocated=%t\n", v.Allocated())
	})
}
