package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/futurefunds/retirement-planner/internal/config"
)

func newExampleCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example plan file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan := config.NewInputParser().CreateExampleInput()
			if err := config.SavePlan(plan, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example plan written to %s\n", out)
			a.logger.Debugf("example plan %q", plan.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "futurefunds_plan.yaml", "destination file")
	return cmd
}
