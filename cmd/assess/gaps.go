package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func gapsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gaps",
		Short: "List critical gaps, most urgent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, r, st, err := setup(flags)
			if err != nil {
				return err
			}
			defer st.Close()

			a, err := r.Assess(cmd.Context(), st)
			if err != nil {
				return err
			}
			if len(a.Gaps) == 0 {
				fmt.Println("No critical gaps.")
				return nil
			}
			for _, g := range a.Gaps {
				owner := g.Ownership
				if owner == "" {
					owner = "-"
				}
				fmt.Printf("[%s] %.2f  %-12s %s (%s)\n", g.Criticality, g.Score, owner, g.QuestionText, g.SubcategoryName)
			}
			return nil
		},
	}
}
