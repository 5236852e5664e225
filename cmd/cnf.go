package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crillab/motr/calculus"
	"github.com/crillab/motr/calculus/equiv"
	"github.com/crillab/motr/internal/config"
	"github.com/crillab/motr/internal/pipeline"
)

type stageReport struct {
	Name    string         `yaml:"name"`
	Formula string         `yaml:"formula"`
	Stats   pipeline.Stats `yaml:"stats"`
}

type cnfReport struct {
	CNF    string        `yaml:"cnf"`
	Stages []stageReport `yaml:"stages,omitempty"`
}

func (a *app) cnfCmd() *cobra.Command {
	var (
		stages bool
		check  bool
	)
	cmd := &cobra.Command{
		Use:   "cnf [files...]",
		Short: "Convert the conjunction of the constraints to CNF",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.run(cmd, args)
			if err != nil {
				return err
			}
			if check {
				input, _ := res.Stage(pipeline.StageInput)
				if err := equiv.Check(input.Formula, res.CNF); err != nil {
					return fmt.Errorf("conversion is not sound: %w", err)
				}
				a.logger.Debug("Checked conversion")
			}
			out := cmd.OutOrStdout()
			if a.cfg.Format == config.FormatYAML {
				report := cnfReport{CNF: a.show(res.CNF)}
				if stages {
					for _, st := range res.Stages {
						report.Stages = append(report.Stages, stageReport{
							Name:    st.Name,
							Formula: a.show(st.Formula),
							Stats:   st.Stats,
						})
					}
				}
				return writeYAML(out, report)
			}
			if stages {
				for _, st := range res.Stages {
					header.Fprintf(out, "%s", st.Name)
					fmt.Fprintf(out, " (nodes=%d, depth=%d, and_clauses=%d)\n",
						st.Stats.Nodes, st.Stats.Depth, st.Stats.AndClauses)
					fmt.Fprintf(out, "  %s\n", a.show(st.Formula))
				}
				return nil
			}
			_, err = fmt.Fprintln(out, a.show(res.CNF))
			return err
		},
	}
	cmd.Flags().BoolVar(&stages, "stages", false, "Print the formula after each conversion step")
	cmd.Flags().BoolVar(&check, "check", false, "Prove the CNF is equivalent to the constraints")
	return cmd
}

type mappingReport struct {
	Name   string `yaml:"name,omitempty"`
	Clause string `yaml:"clause"`
}

func (a *app) mapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map [files...]",
		Short: "Convert the constraints to CNF and name each of its clauses",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.run(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.cfg.Format == config.FormatYAML {
				reports := make([]mappingReport, len(res.Mapping))
				for i, m := range res.Mapping {
					reports[i] = mappingReport{Name: m.Name, Clause: a.show(m.Clause)}
				}
				return writeYAML(out, map[string][]mappingReport{"mapping": reports})
			}
			for _, m := range res.Mapping {
				if m.Name == "" {
					fmt.Fprintln(out, a.show(m.Clause))
					continue
				}
				header.Fprint(out, m.Name)
				fmt.Fprintf(out, ": %s\n", a.show(m.Clause))
			}
			return nil
		},
	}
}

// clausesOf returns the clauses of the result, or of its mapping if mapped is true.
func clausesOf(res *pipeline.Result, mapped bool) ([]calculus.Clause, error) {
	if mapped {
		return calculus.MappingClauses(res.Mapping)
	}
	return calculus.Clauses(res.CNF)
}
