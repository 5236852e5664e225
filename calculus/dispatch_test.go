package calculus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allCases() Cases2[string] {
	return Cases2[string]{
		TrueTrue:   func() string { return "TrueTrue" },
		TrueFalse:  func() string { return "TrueFalse" },
		FalseTrue:  func() string { return "FalseTrue" },
		FalseFalse: func() string { return "FalseFalse" },
		AnyTrue:    func(Formula) string { return "AnyTrue" },
		TrueAny:    func(Formula) string { return "TrueAny" },
		AnyFalse:   func(Formula) string { return "AnyFalse" },
		FalseAny:   func(Formula) string { return "FalseAny" },
		Any:        func(Formula, Formula) string { return "Any" },
	}
}

func TestMatch2Priority(t *testing.T) {
	p, q := Atom("p"), Not(Atom("q"))
	tests := []struct {
		p, q Formula
		want string
	}{
		{True, True, "TrueTrue"},
		{True, False, "TrueFalse"},
		{False, True, "FalseTrue"},
		{False, False, "FalseFalse"},
		{p, True, "AnyTrue"},
		{True, q, "TrueAny"},
		{p, False, "AnyFalse"},
		{False, q, "FalseAny"},
		{p, q, "Any"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Match2(tt.p, tt.q, allCases()), "(%v, %v)", tt.p, tt.q)
	}
}

func TestMatch2Fallback(t *testing.T) {
	c := allCases()
	c.TrueTrue = nil
	c.TrueFalse = nil
	// (True, True) matches AnyTrue before TrueAny.
	assert.Equal(t, "AnyTrue", Match2(True, True, c))
	// (True, False) matches TrueAny before AnyFalse.
	assert.Equal(t, "TrueAny", Match2(True, False, c))

	only := Cases2[string]{Any: func(p, q Formula) string { return p.String() + "," + q.String() }}
	assert.Equal(t, "True,False", Match2(True, False, only))

	operand := Cases2[string]{
		AnyTrue: func(p Formula) string { return p.String() },
		Any:     func(Formula, Formula) string { return "Any" },
	}
	assert.Equal(t, "x", Match2(Atom("x"), True, operand))
	assert.Equal(t, "Any", Match2(True, Atom("x"), operand))
}

// kindRecorder returns the kind of the visited formula.
type kindRecorder struct{}

func (kindRecorder) VisitAtom(string) Kind { return AtomKind }

func (kindRecorder) VisitTrue() Kind { return TrueKind }

func (kindRecorder) VisitFalse() Kind { return FalseKind }

func (kindRecorder) VisitNot(Formula) Kind { return NotKind }

func (kindRecorder) VisitAnd(_, _ Formula) Kind { return AndKind }

func (kindRecorder) VisitOr(_, _ Formula) Kind { return OrKind }

func (kindRecorder) VisitXor(_, _ Formula) Kind { return XorKind }

func (kindRecorder) VisitImplies(_, _ Formula) Kind { return ImpliesKind }

func (kindRecorder) VisitIff(_, _ Formula) Kind { return IffKind }

func TestVisit(t *testing.T) {
	a, b := Atom("a"), Atom("b")
	for _, f := range []Formula{a, True, False, Not(a), And(a, b), Or(a, b), Xor(a, b), Implies(a, b), Iff(a, b)} {
		assert.Equal(t, f.Kind(), Visit[Kind](f, kindRecorder{}))
	}
	assert.Panics(t, func() { Visit[Kind](Formula{kind: Kind(42)}, kindRecorder{}) })
}
