package cmd

import (
	"fmt"
	"sort"

	"github.com/crillab/gophersat/solver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crillab/motr/calculus"
	"github.com/crillab/motr/internal/config"
)

type solveReport struct {
	Satisfiable bool            `yaml:"satisfiable"`
	Model       map[string]bool `yaml:"model,omitempty"`
}

// solve searches a model of the given clauses.
// ok is false if there is none.
func solve(clauses []calculus.Clause) (model map[string]bool, ok bool) {
	cnf := calculus.NewCNF(clauses)
	if len(cnf.Clauses) == 0 {
		return map[string]bool{}, true
	}
	s := solver.New(solver.ParseSlice(cnf.Clauses))
	if s.Solve() != solver.Sat {
		return nil, false
	}
	return cnf.Model(s.Model()), true
}

func (a *app) solveCmd() *cobra.Command {
	var mapped bool
	cmd := &cobra.Command{
		Use:   "solve [files...]",
		Short: "Search a model of the constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.run(cmd, args)
			if err != nil {
				return err
			}
			clauses, err := clausesOf(res, mapped)
			if err != nil {
				return err
			}
			model, ok := solve(clauses)
			a.logger.Debug("Solved", zap.Int("clauses", len(clauses)), zap.Bool("sat", ok))
			out := cmd.OutOrStdout()
			if a.cfg.Format == config.FormatYAML {
				return writeYAML(out, solveReport{Satisfiable: ok, Model: model})
			}
			if !ok {
				header.Fprintln(out, "UNSATISFIABLE")
				return nil
			}
			header.Fprintln(out, "SATISFIABLE")
			keys := make([]string, 0, len(model))
			for k := range model {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "%s: %t\n", k, model[k])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&mapped, "mapped", false, "Guard each clause with its name")
	return cmd
}
