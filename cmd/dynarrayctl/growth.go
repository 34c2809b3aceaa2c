package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pavanmanishd/dynarray"
)

var (
	growthCount     int
	growthStride    int
	growthAllocator string
	growthMetrics   bool
)

func init() {
	cmd := newGrowthCmd()
	cmd.Flags().IntVar(&growthCount, "count", 1000, "Number of elements to append")
	cmd.Flags().IntVar(&growthStride, "stride", 8, "Element size in bytes")
	cmd.Flags().StringVar(&growthAllocator, "allocator", "heap", "Allocator: heap, arena or mmap")
	cmd.Flags().BoolVar(&growthMetrics, "metrics", false, "Print allocator metrics afterwards")
	rootCmd.AddCommand(cmd)
}

func newGrowthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "growth",
		Short: "Append elements one by one and report every capacity change",
		Long: `The growth command appends --count elements of --stride bytes to an
array backed by the chosen allocator and prints each reallocation.

Example:
  dynarrayctl growth --count 100
  dynarrayctl growth --count 100000 --allocator mmap --metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth(cmd.OutOrStdout())
		},
	}
}

// newAllocator maps an allocator name to an instance. The returned cleanup
// releases whatever the allocator holds.
func newAllocator(name string) (dynarray.Allocator, func(), error) {
	switch name {
	case "heap":
		return dynarray.HeapAllocator{}, func() {}, nil
	case "arena":
		a := dynarray.NewArena(0)
		return a, a.Release, nil
	case "mmap":
		return dynarray.MmapAllocator{}, func() {}, nil
	default:
		return nil, nil, errors.Newf("unknown allocator %q", name)
	}
}

func runGrowth(w io.Writer) error {
	if growthCount < 0 {
		return errors.Newf("--count must not be negative, got %d", growthCount)
	}
	if growthStride <= 0 {
		return errors.Newf("--stride must be positive, got %d", growthStride)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	upstream, cleanup, err := newAllocator(growthAllocator)
	if err != nil {
		return err
	}
	defer cleanup()

	reg := prometheus.NewRegistry()
	alloc := dynarray.NewMetricsAllocator(upstream, reg, "dynarrayctl")

	fmt.Fprintf(w, "allocator=%s stride=%d count=%d\n", growthAllocator, growthStride, growthCount)

	var a dynarray.Array
	err = dynarray.Catch(func() {
		a.Alloc(0, nil, dynarray.WithAllocator(alloc), dynarray.WithLogger(logger))
		defer a.Free()

		for i := 1; i <= growthCount; i++ {
			before := a.Capacity()
			a.Append(growthStride)
			if after := a.Capacity(); after != before {
				fmt.Fprintf(w, "append #%d: capacity %d -> %d\n", i, before, after)
			}
		}
		m := a.Metrics()
		fmt.Fprintf(w, "final: size=%d capacity=%d utilization=%.2f\n", m.Size, m.Capacity, m.Utilization)
		logger.Debug("growth finished", zap.Int("size", m.Size), zap.Int("capacity", m.Capacity))
	})
	if err != nil {
		return err
	}

	if growthMetrics {
		return writeMetrics(w, reg)
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "encode metrics")
		}
	}
	return nil
}
