package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ghedger/treebench"
	"github.com/ghedger/treebench/metrics"
	"github.com/ghedger/treebench/util"
)

func main() {
	var (
		treeName       string
		iterations     int
		seed           uint64
		deleteFraction float64
		sorted         bool
		printTree      bool
		datasetDir     string
		logType        string
		logFile        string
	)

	cmd := &cobra.Command{
		Use:   "treebench <size>",
		Short: "Benchmarks ordered tree implementations against randomized unique-key datasets.",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&treeName, "tree", "bst", "Tree implementation to benchmark (bst|scapegoat).")
	cmd.Flags().IntVar(&iterations, "iterations", 1, "Number of times to repeat the build/find/delete cycle.")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Base seed for dataset generation; iteration i uses seed+i.")
	cmd.Flags().Float64Var(&deleteFraction, "delete-fraction", 0.25, "Fraction of inserted keys to delete each iteration.")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "Insert keys in ascending order (degenerate case) instead of a random permutation.")
	cmd.Flags().BoolVar(&printTree, "print", false, "Dump the tree structure after each build.")
	cmd.Flags().StringVar(&datasetDir, "dataset-dir", "", "Directory of pre-generated datasets to use instead of generating in-process.")
	cmd.Flags().StringVar(&logType, "log-type", "console", "Log output format (console|json).")
	cmd.Flags().StringVar(&logFile, "log-file", "", "File to write logs to instead of stderr.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		size, err := strconv.Atoi(args[0])
		if err != nil || size < 0 {
			return fmt.Errorf("size must be a non-negative integer, got %q", args[0])
		}

		log, closeLog, err := util.NewLogger(logType, logFile)
		if err != nil {
			return err
		}
		defer closeLog()

		loader, err := treebench.LoaderFor(treeName)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		addCount := prometheus.NewCounter(prometheus.CounterOpts{
			Name: "treebench_adds_total",
			Help: "Total keys inserted across all iterations.",
		})
		treeSize := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "treebench_tree_size",
			Help: "Node count of the most recently built tree.",
		})
		treeDepth := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "treebench_tree_depth",
			Help: "Max depth of the most recently built tree.",
		})
		reg.MustRegister(addCount, treeSize, treeDepth)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go metrics.Default.Run(ctx)

		tc := &treebench.TreeContext{
			Context: ctx,
			Log:     log.With().Str("tree", treeName).Logger(),
			Profile: treebench.RunProfile{
				Name:           "cli",
				Size:           size,
				Iterations:     iterations,
				Seed:           seed,
				DeleteFraction: deleteFraction,
				Sorted:         sorted,
			},
			DatasetDir:      datasetDir,
			MetricAddCount:  addCount,
			MetricTreeSize:  treeSize,
			MetricTreeDepth: treeDepth,
			PrintTree:       printTree,
			Out:             os.Stdout,
		}

		report, err := tc.Run(loader)
		if err != nil {
			return fmt.Errorf("error running benchmark: %w", err)
		}
		report.Report(tc.Log)
		return nil
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
