package main

import (
	"errors"

	"github.com/hupe1980/lloyd/dataset"
	"github.com/spf13/cobra"
)

type evalFlags struct {
	predicted   string
	truth       string
	truthFormat string
}

func newEvalCmd() *cobra.Command {
	f := &evalFlags{}

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Score predicted labels against ground truth",
		Long: `Score predicted labels (uint64) against ground-truth classes.

accuracy compares labels position by position and is only meaningful when
cluster indices line up with class indices. matched_accuracy first maps
clusters to classes one-to-one so that the most samples agree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.predicted == "" || f.truth == "" {
				return errors.New("--predicted and --truth are required")
			}
			ctx := cmd.Context()

			store, name, err := openStore(ctx, f.predicted, 0)
			if err != nil {
				return err
			}
			predicted, err := dataset.LoadLabels(ctx, store, name)
			if err != nil {
				return err
			}
			truth, err := readTruth(ctx, f.truth, f.truthFormat, 0)
			if err != nil {
				return err
			}
			return printScores(cmd.OutOrStdout(), predicted, truth)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.predicted, "predicted", defaultLabelsOut, "predicted labels (uint64)")
	fl.StringVar(&f.truth, "truth", "", "ground-truth labels")
	fl.StringVar(&f.truthFormat, "truth-format", "f32", "ground-truth encoding (f32, u64)")

	return cmd
}
