package main

import (
	"fmt"
	"strings"

	"github.com/hupe1980/lloyd/distance"
	"github.com/spf13/cobra"
)

func newKernelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "Show CPU features and the active distance kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			names := make([]string, 0, len(distance.Kernels()))
			for _, k := range distance.Kernels() {
				names = append(names, k.String())
			}

			fmt.Fprintf(out, "features:  %s\n", strings.Join(distance.Features(), " "))
			fmt.Fprintf(out, "available: %s\n", strings.Join(names, " "))
			fmt.Fprintf(out, "active:    %s\n", distance.Active())
			return nil
		},
	}
}
