package calculus

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// A Literal is an atom or its negation.
type Literal struct {
	Name    string
	Negated bool
}

func (l Literal) String() string {
	if l.Negated {
		return Symbolic.Not + l.Name
	}
	return l.Name
}

// Formula returns the formula corresponding to l.
func (l Literal) Formula() Formula {
	if l.Negated {
		return Not(Atom(l.Name))
	}
	return Atom(l.Name)
}

// A Clause is a disjunction of literals. The empty clause is false.
type Clause []Literal

// Clauses returns the clauses of the CNF formula f.
// True disjunctions are dropped and False literals are removed from their
// clauses; the False formula is a single empty clause. If f is not in CNF,
// an error wrapping ErrNotCNF is returned.
func Clauses(f Formula) ([]Clause, error) {
	switch f.kind {
	case AndKind:
		left, err := Clauses(f.ops[0])
		if err != nil {
			return nil, err
		}
		right, err := Clauses(f.ops[1])
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	case TrueKind:
		return nil, nil
	default:
		clause, valid, err := disjuncts(f, nil)
		if err != nil {
			return nil, err
		}
		if valid {
			return nil, nil
		}
		return []Clause{clause}, nil
	}
}

// disjuncts appends to dst the literals of the disjunction f.
// valid is true if the disjunction is always true.
func disjuncts(f Formula, dst Clause) (res Clause, valid bool, err error) {
	switch f.kind {
	case OrKind:
		left, valid, err := disjuncts(f.ops[0], dst)
		if err != nil || valid {
			return nil, valid, err
		}
		return disjuncts(f.ops[1], left)
	case AtomKind:
		return append(dst, Literal{Name: f.name}), false, nil
	case NotKind:
		name, err := f.ops[0].AtomName()
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v: %v", ErrNotCNF, f, err)
		}
		return append(dst, Literal{Name: name, Negated: true}), false, nil
	case TrueKind:
		return nil, true, nil
	case FalseKind:
		if dst == nil {
			dst = Clause{}
		}
		return dst, false, nil
	default:
		return nil, false, fmt.Errorf("%w: unexpected %v in clause %v", ErrNotCNF, f.kind, f)
	}
}

// MappingClauses returns the clauses of the given mapping.
// A named entry n for clause c yields the clauses of Implies(n, c), i.e
// c plus the negation of n. Unnamed entries are converted to CNF first.
func MappingClauses(ms []Mapping) ([]Clause, error) {
	var res []Clause
	for _, m := range ms {
		cnf, err := ToCNF(m.Formula())
		if err != nil {
			return nil, fmt.Errorf("could not convert %v: %w", m, err)
		}
		clauses, err := Clauses(cnf)
		if err != nil {
			return nil, err
		}
		res = append(res, clauses...)
	}
	return res, nil
}

// A CNF is a set of clauses over numbered variables, as expected by SAT solvers.
// Variables are numbered from 1, in order of appearance.
type CNF struct {
	Vars    map[string]int // Index of each atom
	Names   []string       // Names[i-1] is the name of variable i
	Clauses [][]int        // Negative values are negated variables
}

// NewCNF numbers the atoms of the given clauses.
func NewCNF(clauses []Clause) *CNF {
	cnf := &CNF{Vars: make(map[string]int), Clauses: make([][]int, len(clauses))}
	for i, clause := range clauses {
		lits := make([]int, len(clause))
		for j, lit := range clause {
			lits[j] = cnf.litValue(lit)
		}
		cnf.Clauses[i] = lits
	}
	return cnf
}

// litValue returns the int value associated with the given literal.
// If the atom was not referenced yet, it is created first.
func (cnf *CNF) litValue(l Literal) int {
	val, ok := cnf.Vars[l.Name]
	if !ok {
		cnf.Names = append(cnf.Names, l.Name)
		val = len(cnf.Names)
		cnf.Vars[l.Name] = val
	}
	if l.Negated {
		return -val
	}
	return val
}

// Model translates a model indexed by variable, as returned by SAT solvers, in a
// model indexed by atom names. model[i] is the binding of variable i+1.
func (cnf *CNF) Model(model []bool) map[string]bool {
	res := make(map[string]bool, len(cnf.Names))
	for i, name := range cnf.Names {
		if i < len(model) {
			res[name] = model[i]
		}
	}
	return res
}

// Dimacs writes the DIMACS CNF version of cnf on w.
// The names of atoms are associated with their DIMACS integer counterparts
// in comments, between the prolog and the set of clauses.
// For instance, if the atom "a" is associated with the index 1, there will be
// a comment line "c a=1".
func (cnf *CNF) Dimacs(w io.Writer) error {
	prefix := fmt.Sprintf("p cnf %d %d\n", len(cnf.Names), len(cnf.Clauses))
	if _, err := io.WriteString(w, prefix); err != nil {
		return fmt.Errorf("could not write DIMACS output: %v", err)
	}
	names := make([]string, len(cnf.Names))
	copy(names, cnf.Names)
	sort.Strings(names)
	for _, name := range names {
		line := fmt.Sprintf("c %s=%d\n", name, cnf.Vars[name])
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	for _, clause := range cnf.Clauses {
		strClause := make([]string, len(clause), len(clause)+1)
		for i, lit := range clause {
			strClause[i] = strconv.Itoa(lit)
		}
		line := strings.Join(append(strClause, "0"), " ") + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	return nil
}

// Dimacs converts f to CNF and writes its DIMACS version on w.
// It is useful so as to feed it to any SAT solver.
func Dimacs(f Formula, w io.Writer) error {
	cnf, err := ToCNF(f)
	if err != nil {
		return err
	}
	clauses, err := Clauses(cnf)
	if err != nil {
		return err
	}
	return NewCNF(clauses).Dimacs(w)
}

// Eval returns the truth value of f under the given model.
// An *UnboundError is returned if the model lacks a binding for an atom of f.
func Eval(f Formula, model map[string]bool) (bool, error) {
	switch f.kind {
	case AtomKind:
		b, ok := model[f.name]
		if !ok {
			return false, &UnboundError{Name: f.name}
		}
		return b, nil
	case TrueKind:
		return true, nil
	case FalseKind:
		return false, nil
	case NotKind:
		b, err := Eval(f.ops[0], model)
		if err != nil {
			return false, err
		}
		return !b, nil
	}
	p, err := Eval(f.ops[0], model)
	if err != nil {
		return false, err
	}
	q, err := Eval(f.ops[1], model)
	if err != nil {
		return false, err
	}
	switch f.kind {
	case AndKind:
		return p && q, nil
	case OrKind:
		return p || q, nil
	case XorKind:
		return p != q, nil
	case ImpliesKind:
		return !p || q, nil
	case IffKind:
		return p == q, nil
	default:
		panic("invalid formula type")
	}
}
