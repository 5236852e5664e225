package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crillab/motr/calculus"
	"github.com/crillab/motr/internal/config"
)

func (a *app) printCmd() *cobra.Command {
	var simplifyOnly bool
	cmd := &cobra.Command{
		Use:   "print [files...]",
		Short: "Print the constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			constraints, err := a.readConstraints(cmd, args)
			if err != nil {
				return err
			}
			if simplifyOnly {
				for i, c := range constraints {
					constraints[i] = calculus.Simplify(c)
				}
			}
			out := cmd.OutOrStdout()
			if a.cfg.Format == config.FormatYAML {
				strs := make([]string, len(constraints))
				for i, c := range constraints {
					strs[i] = a.show(c)
				}
				return writeYAML(out, map[string][]string{"constraints": strs})
			}
			for _, c := range constraints {
				fmt.Fprintln(out, a.show(c))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&simplifyOnly, "simplify", "s", false, "Fold constants in each constraint")
	return cmd
}

func (a *app) atomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "atoms [files...]",
		Short: "List the atoms referenced by the constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			constraints, err := a.readConstraints(cmd, args)
			if err != nil {
				return err
			}
			atoms := calculus.SortedAtoms(calculus.Ands(constraints...))
			out := cmd.OutOrStdout()
			if a.cfg.Format == config.FormatYAML {
				return writeYAML(out, map[string][]string{"atoms": atoms})
			}
			_, err = fmt.Fprintln(out, strings.Join(atoms, "\n"))
			return err
		},
	}
}
