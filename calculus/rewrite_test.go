package calculus

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	atomA = Atom("A")
	atomB = Atom("B")
	atomC = Atom("C")
	atomD = Atom("D")
)

// randFormula returns a random formula of maximal depth depth over the atoms
// a to e. Connectives are taken from kinds.
func randFormula(rng *rand.Rand, depth int, consts bool, kinds []Kind) Formula {
	if depth <= 1 || rng.IntN(4) == 0 {
		if consts && rng.IntN(5) == 0 {
			if rng.IntN(2) == 0 {
				return True
			}
			return False
		}
		return Atom(string(rune('a' + rng.IntN(5))))
	}
	k := kinds[rng.IntN(len(kinds))]
	if k == NotKind {
		return Not(randFormula(rng, depth-1, consts, kinds))
	}
	return binary(k, randFormula(rng, depth-1, consts, kinds), randFormula(rng, depth-1, consts, kinds))
}

var (
	allKinds = []Kind{NotKind, AndKind, OrKind, XorKind, ImpliesKind, IffKind}
	nnfKinds = []Kind{NotKind, AndKind, OrKind}
)

func randCorpus(n, depth int, consts bool, kinds []Kind) []Formula {
	rng := rand.New(rand.NewPCG(1, uint64(depth)))
	res := make([]Formula, n)
	for i := range res {
		res[i] = randFormula(rng, depth, consts, kinds)
	}
	return res
}

// notOnlyOnAtoms returns true if every Not of f wraps an atom.
func notOnlyOnAtoms(f Formula) bool {
	if f.kind == NotKind && f.ops[0].kind != AtomKind {
		return false
	}
	for _, op := range f.ops {
		if !notOnlyOnAtoms(op) {
			return false
		}
	}
	return true
}

// isCNF returns true if f is a conjunction of clauses.
func isCNF(f Formula) bool {
	if f.kind == AndKind {
		return isCNF(f.ops[0]) && isCNF(f.ops[1])
	}
	return isClause(f)
}

func isClause(f Formula) bool {
	switch f.kind {
	case OrKind:
		return isClause(f.ops[0]) && isClause(f.ops[1])
	case AtomKind, TrueKind, FalseKind:
		return true
	case NotKind:
		return f.ops[0].kind == AtomKind
	default:
		return false
	}
}

func TestSimplifyScenarios(t *testing.T) {
	x := Atom("x")
	assert.True(t, Same(Simplify(And(True, x)), x))
	assert.True(t, Same(Simplify(Implies(False, x)), True))
	assert.True(t, Same(Simplify(Xor(True, True)), False))
	assert.True(t, Same(Simplify(Not(Not(Or(x, False)))), x))
	assert.True(t, Same(Simplify(Iff(And(x, True), Or(False, False))), Not(x)))
	assert.True(t, Same(Simplify(Xor(Not(x), Not(True))), Not(x)))
}

func TestSimplifyIdempotent(t *testing.T) {
	for _, f := range randCorpus(500, 6, true, allKinds) {
		s := Simplify(f)
		assert.True(t, Same(Simplify(s), s), "simplify is not idempotent on %v", f)
		assert.True(t, s.IsConst() || !hasConst(s), "constant left in %v", s)
	}
}

func hasConst(f Formula) bool {
	if f.IsConst() {
		return true
	}
	for _, op := range f.ops {
		if hasConst(op) {
			return true
		}
	}
	return false
}

func TestDeMorgan(t *testing.T) {
	tests := []struct {
		name string
		f    Formula
		want Formula
	}{
		{"not or", Not(Or(atomA, atomB)), And(Not(atomA), Not(atomB))},
		{"not and", Not(And(atomA, Not(atomB))), Or(Not(atomA), atomB)},
		{"double negation", Not(Not(atomA)), atomA},
		{"negated atom", Not(atomA), Not(atomA)},
		{"constants", Not(Or(True, atomA)), False},
		{"not xor", Not(Xor(atomA, atomB)), Iff(atomA, atomB)},
		{"not implies", Not(Implies(atomA, atomB)), And(atomA, Not(atomB))},
		{"not iff", Not(Iff(atomA, atomB)), Xor(atomA, atomB)},
		{"nested", And(Not(Or(atomA, atomB)), Or(Not(Not(atomC)), atomD)), And(And(Not(atomA), Not(atomB)), Or(atomC, atomD))},
		{"folded negation", Xor(And(atomA, atomB), True), Or(Not(atomA), Not(atomB))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeMorgan(tt.f)
			assert.True(t, Same(got, tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestDeMorganTotality(t *testing.T) {
	for _, f := range randCorpus(500, 6, true, allKinds) {
		g := DeMorgan(f)
		assert.True(t, notOnlyOnAtoms(g), "negation of a compound formula left in %v (from %v)", g, f)
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name string
		f    Formula
		want Formula
	}{
		{"xor", Xor(atomA, atomB), Or(And(atomA, Not(atomB)), And(atomB, Not(atomA)))},
		{"implies", Implies(atomA, atomB), Or(Not(atomA), atomB)},
		{"iff", Iff(atomA, atomB), And(Or(Not(atomA), atomB), Or(Not(atomB), atomA))},
		{"nested", Implies(Implies(atomA, atomB), atomC), Or(Not(Or(Not(atomA), atomB)), atomC)},
		{"constants", And(Not(Not(atomA)), True), atomA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompose(tt.f)
			assert.True(t, Same(got, tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestDecomposeRemovesConnectives(t *testing.T) {
	for _, f := range randCorpus(300, 5, false, allKinds) {
		g := Decompose(f)
		var check func(Formula) bool
		check = func(f Formula) bool {
			switch f.kind {
			case XorKind, ImpliesKind, IffKind:
				return false
			}
			for _, op := range f.ops {
				if !check(op) {
					return false
				}
			}
			return true
		}
		assert.True(t, check(g), "%v left in %v", f, g)
	}
}

func TestDistributeOr(t *testing.T) {
	tests := []struct {
		name string
		f    Formula
		want Formula
	}{
		{"right", Or(atomA, And(atomB, atomC)), And(Or(atomA, atomB), Or(atomA, atomC))},
		{"left", Or(And(atomA, atomB), atomC), And(Or(atomC, atomA), Or(atomC, atomB))},
		{
			"both",
			Or(And(atomA, atomB), And(atomC, atomD)),
			And(
				And(Or(atomC, atomA), Or(atomC, atomB)),
				And(Or(atomD, atomA), Or(atomD, atomB)),
			),
		},
		{"clause", Or(atomA, Not(atomB)), Or(atomA, Not(atomB))},
		{"constants", Or(False, And(atomA, True)), atomA},
		{"top-level xor", And(atomA, Xor(atomB, atomC)), And(atomA, Xor(atomB, atomC))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DistributeOr(tt.f)
			require.NoError(t, err)
			assert.True(t, Same(got, tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestDistributeOrUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		f     Formula
		kind  Kind
		under Kind
	}{
		{"xor under or", Or(atomA, Xor(atomB, atomC)), XorKind, OrKind},
		{"implies under and under or", Or(atomA, And(atomB, Implies(atomC, atomD))), ImpliesKind, OrKind},
		{"iff under or", Or(Iff(atomA, atomB), atomC), IffKind, OrKind},
		{"negated and", Not(And(atomA, atomB)), AndKind, NotKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DistributeOr(tt.f)
			assert.ErrorIs(t, err, ErrUnsupportedConnective)
			var uerr *UnsupportedError
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, tt.kind, uerr.Kind)
			assert.Equal(t, tt.under, uerr.Under)
		})
	}
}

func TestDistributeOrYieldsCNF(t *testing.T) {
	for _, f := range randCorpus(300, 5, true, nnfKinds) {
		g, err := DistributeOr(DeMorgan(f))
		require.NoError(t, err, "could not distribute %v", f)
		assert.True(t, isCNF(g), "%v is not in CNF (from %v)", g, f)
	}
}

func TestToCNF(t *testing.T) {
	for _, f := range randCorpus(300, 4, true, allKinds) {
		g, err := ToCNF(f)
		require.NoError(t, err, "could not convert %v", f)
		assert.True(t, isCNF(g), "%v is not in CNF (from %v)", g, f)
	}
}

func TestAtomPreservation(t *testing.T) {
	for _, f := range randCorpus(300, 5, false, nnfKinds) {
		atoms := GatherAtoms(f)
		nnf := DeMorgan(f)
		assert.True(t, atoms.Equal(GatherAtoms(nnf)), "DeMorgan changed the atoms of %v", f)
		cnf, err := DistributeOr(nnf)
		require.NoError(t, err)
		assert.True(t, atoms.Equal(GatherAtoms(cnf)), "DistributeOr changed the atoms of %v", f)
	}
}
