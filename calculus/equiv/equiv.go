// Package equiv checks semantic properties of formulas with a SAT solver.
//
// Formulas are turned into combinational circuits, Tseitinized and handed to
// gini. This is how the rewrites of package calculus can be checked: a rewrite
// is sound if its output is equivalent to its input, which is the case iff
// Xor(input, output) is unsatisfiable.
package equiv

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/crillab/motr/calculus"
)

// circuit builds gini circuits from formulas.
type circuit struct {
	c    *logic.C
	vars map[string]z.Lit // atom name → input literal
}

func newCircuit() *circuit {
	return &circuit{c: logic.NewC(), vars: make(map[string]z.Lit)}
}

// lit returns the literal of the circuit equivalent to f.
func (b *circuit) lit(f calculus.Formula) z.Lit {
	switch f.Kind() {
	case calculus.AtomKind:
		if m, ok := b.vars[f.Name()]; ok {
			return m
		}
		m := b.c.Lit()
		b.vars[f.Name()] = m
		return m
	case calculus.TrueKind:
		return b.c.T
	case calculus.FalseKind:
		return b.c.F
	case calculus.NotKind:
		return b.lit(f.Operand()).Not()
	}
	p, q := b.lit(f.Left()), b.lit(f.Right())
	switch f.Kind() {
	case calculus.AndKind:
		return b.c.And(p, q)
	case calculus.OrKind:
		return b.c.Or(p, q)
	case calculus.XorKind:
		return b.c.Xor(p, q)
	case calculus.ImpliesKind:
		return b.c.Implies(p, q)
	case calculus.IffKind:
		return b.c.Xor(p, q).Not()
	default:
		panic(fmt.Sprintf("invalid formula kind %v", f.Kind()))
	}
}

// solve checks whether root can be true. When it can, it returns the
// binding of each atom.
func (b *circuit) solve(root z.Lit) (map[string]bool, bool) {
	g := gini.New()
	b.c.ToCnf(g)
	// The constant input of the circuit is left free by ToCnf.
	g.Add(b.c.T)
	g.Add(0)
	g.Assume(root)
	if g.Solve() != 1 {
		return nil, false
	}
	model := make(map[string]bool, len(b.vars))
	for name, m := range b.vars {
		model[name] = g.Value(m)
	}
	return model, true
}

// Model returns a model of f, i.e a binding for each of its atoms under which
// f is true. ok is false if f is unsatisfiable.
func Model(f calculus.Formula) (model map[string]bool, ok bool) {
	b := newCircuit()
	return b.solve(b.lit(f))
}

// Satisfiable returns true if some binding of its atoms makes f true.
func Satisfiable(f calculus.Formula) bool {
	_, ok := Model(f)
	return ok
}

// Valid returns true if f is true under any binding of its atoms.
func Valid(f calculus.Formula) bool {
	return !Satisfiable(calculus.Not(f))
}

// Equivalent returns true if p and q have the same truth value under any
// binding of their atoms.
func Equivalent(p, q calculus.Formula) bool {
	_, ok := Counterexample(p, q)
	return !ok
}

// Counterexample returns a binding under which p and q have different truth
// values. ok is false if p and q are equivalent.
func Counterexample(p, q calculus.Formula) (model map[string]bool, ok bool) {
	b := newCircuit()
	return b.solve(b.c.Xor(b.lit(p), b.lit(q)))
}

// Check returns an error describing a counterexample if p and q are not
// equivalent.
func Check(p, q calculus.Formula) error {
	model, ok := Counterexample(p, q)
	if !ok {
		return nil
	}
	return fmt.Errorf("%v and %v differ under %v", p, q, model)
}
