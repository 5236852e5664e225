package calculus

import "fmt"

func always(f Formula) func() Formula {
	return func() Formula { return f }
}

func keep(f Formula) Formula { return f }

func toTrue(Formula) Formula { return True }

func toFalse(Formula) Formula { return False }

// reductions associates each binary connective with its constant-folding table.
var reductions = map[Kind]Cases2[Formula]{
	AndKind: {
		TrueTrue:   always(True),
		TrueFalse:  always(False),
		FalseTrue:  always(False),
		FalseFalse: always(False),
		AnyTrue:    keep,
		TrueAny:    keep,
		AnyFalse:   toFalse,
		FalseAny:   toFalse,
		Any:        And,
	},
	OrKind: {
		TrueTrue:   always(True),
		TrueFalse:  always(True),
		FalseTrue:  always(True),
		FalseFalse: always(False),
		AnyTrue:    toTrue,
		TrueAny:    toTrue,
		AnyFalse:   keep,
		FalseAny:   keep,
		Any:        Or,
	},
	XorKind: {
		TrueTrue:   always(False),
		TrueFalse:  always(True),
		FalseTrue:  always(True),
		FalseFalse: always(False),
		AnyTrue:    reduceNot,
		TrueAny:    reduceNot,
		AnyFalse:   keep,
		FalseAny:   keep,
		Any:        Xor,
	},
	ImpliesKind: {
		TrueTrue:   always(True),
		TrueFalse:  always(False),
		FalseTrue:  always(True),
		FalseFalse: always(True),
		AnyTrue:    toTrue,
		TrueAny:    keep,
		AnyFalse:   reduceNot,
		FalseAny:   toTrue,
		Any:        Implies,
	},
	IffKind: {
		TrueTrue:   always(True),
		TrueFalse:  always(False),
		FalseTrue:  always(False),
		FalseFalse: always(True),
		AnyTrue:    keep,
		TrueAny:    keep,
		AnyFalse:   reduceNot,
		FalseAny:   reduceNot,
		Any:        Iff,
	},
}

// reduceNot negates f, folding constants and double negations.
func reduceNot(f Formula) Formula {
	switch f.kind {
	case TrueKind:
		return False
	case FalseKind:
		return True
	case NotKind:
		return f.ops[0]
	default:
		return Not(f)
	}
}

// reduce2 builds the binary connective k over p and q, folding constants.
func reduce2(k Kind, p, q Formula) Formula {
	return Match2(p, q, reductions[k])
}

// Reduce builds the connective k over the given operands after applying the
// local constant-folding rules of k, e.g Reduce(AndKind, True, q) is q and
// Reduce(NotKind, Not(p)) is p.
// Operands are not reduced themselves: see Simplify for a recursive version.
// Atoms and constants cannot be reduced and yield an error, as does a wrong
// number of operands.
func Reduce(k Kind, ops ...Formula) (Formula, error) {
	switch {
	case k == NotKind && len(ops) == 1:
		return reduceNot(ops[0]), nil
	case k.Binary() && len(ops) == 2:
		return reduce2(k, ops[0], ops[1]), nil
	default:
		return False, fmt.Errorf("cannot reduce %v with %d operand(s)", k, len(ops))
	}
}
