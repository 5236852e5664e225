// Package pipeline chains the rewrites of package calculus to turn a set of
// constraints into named CNF clauses, keeping track of each intermediate step.
package pipeline

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
	"go.uber.org/zap"

	"github.com/crillab/motr/calculus"
)

// Names of the stages, in the order they are run.
const (
	StageInput     = "input"
	StageSimplify  = "simplify"
	StageDecompose = "decompose"
	StageDeMorgan  = "demorgan"
	StageDistrib   = "distribute"
)

// Options drive a run of the pipeline.
type Options struct {
	Simplify bool             // Fold constants before converting to CNF
	Used     *set.Set[string] // Names that must not be used for mapped clauses
	Logger   *zap.Logger      // Defaults to a no-op logger
}

// Stats summarizes the shape of a formula.
type Stats struct {
	Atoms      int `yaml:"atoms"`
	Nodes      int `yaml:"nodes"`
	Depth      int `yaml:"depth"`
	AndClauses int `yaml:"and_clauses"`
}

// StatsOf computes the stats of f.
func StatsOf(f calculus.Formula) Stats {
	return Stats{
		Atoms:      calculus.GatherAtoms(f).Size(),
		Nodes:      calculus.Size(f),
		Depth:      calculus.Depth(f),
		AndClauses: calculus.CountAndClauses(f),
	}
}

// A Stage is the output of one step of the pipeline.
type Stage struct {
	Name    string
	Formula calculus.Formula
	Stats   Stats
}

// Result holds the outcome of a run.
type Result struct {
	Stages  []Stage
	CNF     calculus.Formula
	Mapping []calculus.Mapping
	Names   *set.Set[string] // All names used by the mapping, plus Options.Used
}

// Stage returns the stage with the given name, if it was run.
func (r *Result) Stage(name string) (Stage, bool) {
	for _, s := range r.Stages {
		if s.Name == name {
			return s, true
		}
	}
	return Stage{}, false
}

// Run converts the conjunction of constraints to CNF and maps its clauses.
// Each stage is logged at debug level, the summary at info level.
func Run(constraints []calculus.Formula, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	f := calculus.Ands(constraints...)
	res := &Result{}
	record := func(name string, f calculus.Formula) {
		st := Stage{Name: name, Formula: f, Stats: StatsOf(f)}
		res.Stages = append(res.Stages, st)
		logger.Debug("Stage done",
			zap.String("stage", name),
			zap.Int("nodes", st.Stats.Nodes),
			zap.Int("depth", st.Stats.Depth),
			zap.Int("and_clauses", st.Stats.AndClauses),
		)
	}
	record(StageInput, f)
	if opts.Simplify {
		f = calculus.Simplify(f)
		record(StageSimplify, f)
	}
	f = calculus.Decompose(f)
	record(StageDecompose, f)
	f = calculus.DeMorgan(f)
	record(StageDeMorgan, f)
	f, err := calculus.DistributeOr(f)
	if err != nil {
		logger.Error("Could not distribute formula", zap.Error(err))
		return nil, fmt.Errorf("could not convert to CNF: %w", err)
	}
	record(StageDistrib, f)
	res.CNF = f
	res.Mapping, res.Names, err = calculus.CNFMapFrom(opts.Used, f)
	if err != nil {
		logger.Error("Could not map clauses", zap.Error(err))
		return nil, fmt.Errorf("could not map clauses: %w", err)
	}
	logger.Info("Converted constraints to CNF",
		zap.Int("constraints", len(constraints)),
		zap.Int("and_clauses", calculus.CountAndClauses(f)),
		zap.Int("mapped", len(res.Mapping)),
	)
	return res, nil
}
