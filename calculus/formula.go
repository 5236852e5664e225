package calculus

import "fmt"

// A Kind identifies the connective at the root of a Formula.
type Kind uint8

// The zero Kind is FalseKind, so the zero Formula is the False constant.
const (
	FalseKind Kind = iota
	TrueKind
	AtomKind
	NotKind
	AndKind
	OrKind
	XorKind
	ImpliesKind
	IffKind
)

var kindNames = [...]string{
	FalseKind:   "False",
	TrueKind:    "True",
	AtomKind:    "Atom",
	NotKind:     "Not",
	AndKind:     "And",
	OrKind:      "Or",
	XorKind:     "Xor",
	ImpliesKind: "Implies",
	IffKind:     "Iff",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Binary returns true if k is a connective with two operands.
func (k Kind) Binary() bool {
	return k >= AndKind && k <= IffKind
}

// A Formula is any propositional formula, not necessarily in CNF.
// Formulas are immutable values: they are built with Atom, Not, And, Or, Xor,
// Implies and Iff and are never modified afterwards.
type Formula struct {
	kind Kind
	name string    // Only for atoms
	ops  []Formula // One operand for Not, two for binary connectives
}

// True is the constant denoting a tautology.
var True = Formula{kind: TrueKind}

// False is the constant denoting a contradiction.
var False = Formula{kind: FalseKind}

// Atom generates a named propositional variable.
// Two atoms are the same variable iff they have the same name.
func Atom(name string) Formula {
	return Formula{kind: AtomKind, name: name}
}

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return Formula{kind: NotKind, ops: []Formula{f}}
}

// And generates the conjunction of two subformulas.
func And(p, q Formula) Formula {
	return binary(AndKind, p, q)
}

// Or generates the inclusive disjunction of two subformulas.
func Or(p, q Formula) Formula {
	return binary(OrKind, p, q)
}

// Xor generates the exclusive disjunction of two subformulas.
func Xor(p, q Formula) Formula {
	return binary(XorKind, p, q)
}

// Implies indicates p implies q.
func Implies(p, q Formula) Formula {
	return binary(ImpliesKind, p, q)
}

// Iff indicates p is equivalent to q.
func Iff(p, q Formula) Formula {
	return binary(IffKind, p, q)
}

func binary(k Kind, p, q Formula) Formula {
	return Formula{kind: k, ops: []Formula{p, q}}
}

// Ands generates the conjunction of all given subformulas, nested to the right:
// Ands(a, b, c) is And(a, And(b, c)).
// The conjunction of no formula is True.
func Ands(fs ...Formula) Formula {
	return fold(AndKind, True, fs)
}

// Ors generates the disjunction of all given subformulas, nested to the right.
// The disjunction of no formula is False.
func Ors(fs ...Formula) Formula {
	return fold(OrKind, False, fs)
}

func fold(k Kind, empty Formula, fs []Formula) Formula {
	if len(fs) == 0 {
		return empty
	}
	res := fs[len(fs)-1]
	for i := len(fs) - 2; i >= 0; i-- {
		res = binary(k, fs[i], res)
	}
	return res
}

// And is the method form of And(f, g).
func (f Formula) And(g Formula) Formula { return And(f, g) }

// Or is the method form of Or(f, g).
func (f Formula) Or(g Formula) Formula { return Or(f, g) }

// Not is the method form of Not(f).
func (f Formula) Not() Formula { return Not(f) }

// Implies is the method form of Implies(f, g).
func (f Formula) Implies(g Formula) Formula { return Implies(f, g) }

// AndAssign replaces *f by And(*f, g) and returns the new value.
func AndAssign(f *Formula, g Formula) Formula {
	*f = And(*f, g)
	return *f
}

// OrAssign replaces *f by Or(*f, g) and returns the new value.
func OrAssign(f *Formula, g Formula) Formula {
	*f = Or(*f, g)
	return *f
}

// Kind returns the connective at the root of f.
func (f Formula) Kind() Kind { return f.kind }

// Name returns the name of an atom, or "" if f is not an atom.
func (f Formula) Name() string { return f.name }

// Operand returns the negated subformula of a Not.
// For any other kind of formula, it returns False.
func (f Formula) Operand() Formula {
	if f.kind != NotKind {
		return False
	}
	return f.ops[0]
}

// Left returns the left operand of a binary connective, or False.
func (f Formula) Left() Formula {
	if !f.kind.Binary() {
		return False
	}
	return f.ops[0]
}

// Right returns the right operand of a binary connective, or False.
func (f Formula) Right() Formula {
	if !f.kind.Binary() {
		return False
	}
	return f.ops[1]
}

// IsLiteral returns true if f is an atom or a negated atom.
func (f Formula) IsLiteral() bool {
	return f.kind == AtomKind || (f.kind == NotKind && f.ops[0].kind == AtomKind)
}

// IsConst returns true if f is True or False.
func (f Formula) IsConst() bool {
	return f.kind == TrueKind || f.kind == FalseKind
}

// AtomName returns the name of f, or a *KindError if f is not an atom.
func (f Formula) AtomName() (string, error) {
	if f.kind != AtomKind {
		return "", &KindError{Want: AtomKind, Got: f.kind}
	}
	return f.name, nil
}

// Negated returns the operand of f, or a *KindError if f is not a negation.
func (f Formula) Negated() (Formula, error) {
	if f.kind != NotKind {
		return False, &KindError{Want: NotKind, Got: f.kind}
	}
	return f.ops[0], nil
}

// Operands returns both operands of f, or a *KindError if f's connective is not k.
func (f Formula) Operands(k Kind) (p, q Formula, err error) {
	if f.kind != k || !k.Binary() {
		return False, False, &KindError{Want: k, Got: f.kind}
	}
	return f.ops[0], f.ops[1], nil
}
