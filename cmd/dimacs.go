package cmd

import (
	"github.com/spf13/cobra"

	"github.com/crillab/motr/calculus"
)

func (a *app) dimacsCmd() *cobra.Command {
	var mapped bool
	cmd := &cobra.Command{
		Use:   "dimacs [files...]",
		Short: "Write the CNF of the constraints in the DIMACS format",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.run(cmd, args)
			if err != nil {
				return err
			}
			clauses, err := clausesOf(res, mapped)
			if err != nil {
				return err
			}
			return calculus.NewCNF(clauses).Dimacs(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&mapped, "mapped", false, "Guard each clause with its name")
	return cmd
}
