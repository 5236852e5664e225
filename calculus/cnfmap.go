package calculus

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
)

// A Mapping associates a fresh name with a conjunct of a CNF formula.
// The conjunct is enabled whenever the atom Name is true.
// Conjuncts that are not literals are not named: their Name is empty.
type Mapping struct {
	Name   string
	Clause Formula
}

// Formula returns the formula Implies(Atom(m.Name), m.Clause),
// or m.Clause if m is not named.
func (m Mapping) Formula() Formula {
	if m.Name == "" {
		return m.Clause
	}
	return Implies(Atom(m.Name), m.Clause)
}

func (m Mapping) String() string {
	return m.Formula().String()
}

// CNFMap flattens the top-level conjunction of the CNF formula f.
// Each conjunct that is an atom s, or its negation, is named "s*";
// other conjuncts are kept unnamed. Constant conjuncts are dropped.
// When a name is already used, the first free suffix "-1", "-2", ... is
// appended to it, so the result depends on the order of the conjuncts.
//
// A negation of anything but an atom yields a *KindError: f must be
// in negation normal form.
func CNFMap(f Formula) ([]Mapping, error) {
	res, _, err := CNFMapFrom(nil, f)
	return res, err
}

// CNFMapFrom maps each formula in fs in turn, as CNFMap does, avoiding the names
// in used as well as the ones generated for the previous formulas.
// used may be nil. It is not modified: the returned set contains it, plus all
// generated names.
func CNFMapFrom(used *set.Set[string], fs ...Formula) ([]Mapping, *set.Set[string], error) {
	var names *set.Set[string]
	if used == nil {
		names = set.New[string](0)
	} else {
		names = used.Copy()
	}
	var res []Mapping
	for _, f := range fs {
		mapping, err := conjuncts(f, nil)
		if err != nil {
			return nil, nil, err
		}
		for _, m := range mapping {
			if m.Name != "" {
				m.Name = freshName(m.Name, names)
				names.Insert(m.Name)
			}
			res = append(res, m)
		}
	}
	return res, names, nil
}

// conjuncts appends to dst the mapping of each conjunct of f, without
// resolving name collisions.
func conjuncts(f Formula, dst []Mapping) ([]Mapping, error) {
	switch f.kind {
	case AndKind:
		var err error
		if dst, err = conjuncts(f.ops[0], dst); err != nil {
			return nil, err
		}
		return conjuncts(f.ops[1], dst)
	case AtomKind:
		return append(dst, Mapping{Name: f.name + "*", Clause: f}), nil
	case NotKind:
		name, err := f.ops[0].AtomName()
		if err != nil {
			return nil, fmt.Errorf("could not map conjunct %v: %w", f, err)
		}
		return append(dst, Mapping{Name: name + "*", Clause: f}), nil
	case TrueKind, FalseKind:
		return dst, nil
	default:
		return append(dst, Mapping{Clause: f}), nil
	}
}

// freshName returns name if it is not in used, else name followed by the first
// suffix "-n" that is not in used.
func freshName(name string, used *set.Set[string]) string {
	res := name
	for i := 1; used.Contains(res); i++ {
		res = fmt.Sprintf("%s-%d", name, i)
	}
	return res
}
