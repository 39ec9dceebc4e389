package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghedger/treebench"
)

func main() {
	var (
		count int
		size  int
		seed  uint64
	)
	cmd := &cobra.Command{
		Use:   "gen-datasets [out-dir]",
		Short: "Pre-generate unique-key datasets for treebench",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir := args[0]
			fmt.Printf("writing %d datasets of %d keys to %s\n", count, size, outDir)
			return treebench.WriteDatasets(outDir, count, size, seed)
		},
	}
	cmd.Flags().IntVar(&count, "count", 10, "number of datasets to generate")
	cmd.Flags().IntVar(&size, "size", 100_000, "keys per dataset")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "base seed; dataset i uses seed+i")
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
