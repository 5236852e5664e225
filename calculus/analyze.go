package calculus

import (
	"sort"

	"github.com/hashicorp/go-set/v3"
)

// atomGatherer inserts the name of each atom it visits in atoms.
type atomGatherer struct {
	atoms *set.Set[string]
}

func (g atomGatherer) VisitAtom(name string) struct{} {
	g.atoms.Insert(name)
	return struct{}{}
}

func (g atomGatherer) VisitTrue() struct{} { return struct{}{} }

func (g atomGatherer) VisitFalse() struct{} { return struct{}{} }

func (g atomGatherer) VisitNot(p Formula) struct{} { return Visit[struct{}](p, g) }

func (g atomGatherer) VisitAnd(p, q Formula) struct{} { return g.both(p, q) }

func (g atomGatherer) VisitOr(p, q Formula) struct{} { return g.both(p, q) }

func (g atomGatherer) VisitXor(p, q Formula) struct{} { return g.both(p, q) }

func (g atomGatherer) VisitImplies(p, q Formula) struct{} { return g.both(p, q) }

func (g atomGatherer) VisitIff(p, q Formula) struct{} { return g.both(p, q) }

func (g atomGatherer) both(p, q Formula) struct{} {
	Visit[struct{}](p, g)
	return Visit[struct{}](q, g)
}

// GatherAtoms returns the set of names of all atoms appearing in f.
func GatherAtoms(f Formula) *set.Set[string] {
	g := atomGatherer{atoms: set.New[string](0)}
	Visit[struct{}](f, g)
	return g.atoms
}

// SortedAtoms returns the names of all atoms appearing in f, sorted.
func SortedAtoms(f Formula) []string {
	atoms := GatherAtoms(f).Slice()
	sort.Strings(atoms)
	return atoms
}

// andCounter counts the And connectives of a formula.
type andCounter struct{}

func (c andCounter) VisitAtom(string) int { return 0 }

func (c andCounter) VisitTrue() int { return 0 }

func (c andCounter) VisitFalse() int { return 0 }

func (c andCounter) VisitNot(p Formula) int { return Visit[int](p, c) }

func (c andCounter) VisitAnd(p, q Formula) int { return c.sum(p, q) + 1 }

func (c andCounter) VisitOr(p, q Formula) int { return c.sum(p, q) }

func (c andCounter) VisitXor(p, q Formula) int { return c.sum(p, q) }

func (c andCounter) VisitImplies(p, q Formula) int { return c.sum(p, q) }

func (c andCounter) VisitIff(p, q Formula) int { return c.sum(p, q) }

func (c andCounter) sum(p, q Formula) int {
	return Visit[int](p, c) + Visit[int](q, c)
}

// CountAndClauses returns the number of And connectives in f.
// On a CNF formula made of n clauses, it is n-1. Xor, Implies and Iff
// connectives are not expanded and do not count.
func CountAndClauses(f Formula) int {
	return Visit[int](f, andCounter{})
}

// Same returns true if p and q are structurally equal: same connectives, in the
// same order, over atoms with the same names.
// Same does not test logical equivalence: Or(a, b) and Or(b, a) are not the same.
func Same(p, q Formula) bool {
	if p.kind != q.kind || p.name != q.name || len(p.ops) != len(q.ops) {
		return false
	}
	for i := range p.ops {
		if !Same(p.ops[i], q.ops[i]) {
			return false
		}
	}
	return true
}

// Size returns the number of nodes of f.
func Size(f Formula) int {
	res := 1
	for _, op := range f.ops {
		res += Size(op)
	}
	return res
}

// Depth returns the nesting depth of f. Atoms and constants have depth 1.
func Depth(f Formula) int {
	res := 0
	for _, op := range f.ops {
		if d := Depth(op); d > res {
			res = d
		}
	}
	return res + 1
}
