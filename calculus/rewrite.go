package calculus

// Simplify returns a formula equivalent to f where True and False constants
// were folded away: the result is either a constant, or a formula without any
// constant and without double negations.
// Simplify is idempotent.
func Simplify(f Formula) Formula {
	switch f.kind {
	case NotKind:
		return reduceNot(Simplify(f.ops[0]))
	case AndKind, OrKind, XorKind, ImpliesKind, IffKind:
		p := Simplify(f.ops[0])
		q := Simplify(f.ops[1])
		return reduce2(f.kind, p, q)
	default:
		return f
	}
}

// DeMorgan returns the negation normal form of f: negations are pushed down
// until they only apply to atoms.
// Double negations are removed, Not(And(p, q)) becomes Or(Not(p), Not(q)) and
// Not(Or(p, q)) becomes And(Not(p), Not(q)). Negated Xor, Implies and Iff are
// rewritten as Iff, And and Xor respectively, so that no negation remains above
// them. Other connectives are rebuilt from their normalized operands, folding
// constants on the way.
func DeMorgan(f Formula) Formula {
	switch f.kind {
	case NotKind:
		return deMorganNot(f.ops[0])
	case AndKind, OrKind, XorKind, ImpliesKind, IffKind:
		p := DeMorgan(f.ops[0])
		q := DeMorgan(f.ops[1])
		res := reduce2(f.kind, p, q)
		if res.kind == NotKind && res.ops[0].kind != AtomKind {
			// Folding introduced a negation, e.g Xor(p, True) is Not(p).
			return deMorganNot(res.ops[0])
		}
		return res
	default:
		return f
	}
}

// deMorganNot returns the negation normal form of Not(f).
func deMorganNot(f Formula) Formula {
	switch f.kind {
	case AtomKind:
		return Not(f)
	case TrueKind:
		return False
	case FalseKind:
		return True
	case NotKind:
		return DeMorgan(f.ops[0])
	case AndKind:
		return DeMorgan(Or(Not(f.ops[0]), Not(f.ops[1])))
	case OrKind:
		return DeMorgan(And(Not(f.ops[0]), Not(f.ops[1])))
	case XorKind:
		return DeMorgan(Iff(f.ops[0], f.ops[1]))
	case ImpliesKind:
		return DeMorgan(And(f.ops[0], Not(f.ops[1])))
	case IffKind:
		return DeMorgan(Xor(f.ops[0], f.ops[1]))
	default:
		panic("invalid formula type")
	}
}

// Decompose returns a formula equivalent to f that only uses the Not, And and Or
// connectives:
//
//	Xor(p, q)     is Or(And(p, Not(q)), And(q, Not(p)))
//	Implies(p, q) is Or(Not(p), q)
//	Iff(p, q)     is And(Or(Not(p), q), Or(Not(q), p))
//
// Not, And and Or are rebuilt from their decomposed operands, folding constants.
func Decompose(f Formula) Formula {
	switch f.kind {
	case NotKind:
		return reduceNot(Decompose(f.ops[0]))
	case AndKind, OrKind:
		p := Decompose(f.ops[0])
		q := Decompose(f.ops[1])
		return reduce2(f.kind, p, q)
	case XorKind:
		p := Decompose(f.ops[0])
		q := Decompose(f.ops[1])
		return Or(And(p, Not(q)), And(q, Not(p)))
	case ImpliesKind:
		p := Decompose(f.ops[0])
		q := Decompose(f.ops[1])
		return Or(Not(p), q)
	case IffKind:
		p := Decompose(f.ops[0])
		q := Decompose(f.ops[1])
		return And(Or(Not(p), q), Or(Not(q), p))
	default:
		return f
	}
}

// DistributeOr distributes disjunctions over conjunctions, so that no And
// appears below an Or:
//
//	Or(p, And(a, b)) is And(Or(p, a), Or(p, b))
//	Or(And(a, b), q) is And(Or(q, a), Or(q, b))
//
// Distribution is applied again on the rewritten formula, so that it cascades
// when both operands are conjunctions. Its size can grow exponentially.
//
// f is expected to be in negation normal form (see DeMorgan). Xor, Implies and
// Iff connectives are kept as is on the top-level conjunction, where they are
// independent clauses, but yield an *UnsupportedError below an Or or a Not, as
// does a negation of anything but an atom or a constant. Such formulas must go
// through Decompose and DeMorgan first, or through ToCNF.
func DistributeOr(f Formula) (Formula, error) {
	return distribute(f, false)
}

// distribute distributes f. underOr is true when f appears below a disjunction.
func distribute(f Formula, underOr bool) (Formula, error) {
	switch f.kind {
	case NotKind:
		op := f.ops[0]
		if op.kind != AtomKind && !op.IsConst() {
			return False, &UnsupportedError{Kind: op.kind, Under: NotKind}
		}
		return Not(op), nil
	case AndKind:
		p, err := distribute(f.ops[0], underOr)
		if err != nil {
			return False, err
		}
		q, err := distribute(f.ops[1], underOr)
		if err != nil {
			return False, err
		}
		return reduce2(AndKind, p, q), nil
	case OrKind:
		p, err := distribute(f.ops[0], true)
		if err != nil {
			return False, err
		}
		q, err := distribute(f.ops[1], true)
		if err != nil {
			return False, err
		}
		if q.kind == AndKind {
			return distribute(And(Or(p, q.ops[0]), Or(p, q.ops[1])), underOr)
		}
		if p.kind == AndKind {
			return distribute(And(Or(q, p.ops[0]), Or(q, p.ops[1])), underOr)
		}
		return reduce2(OrKind, p, q), nil
	case XorKind, ImpliesKind, IffKind:
		if underOr {
			return False, &UnsupportedError{Kind: f.kind, Under: OrKind}
		}
		return f, nil
	default:
		return f, nil
	}
}

// ToCNF returns a CNF formula equivalent to f, i.e a conjunction of
// disjunctions of literals, or a single disjunction, literal or constant.
// It decomposes f, then puts it in negation normal form and distributes it.
func ToCNF(f Formula) (Formula, error) {
	return DistributeOr(DeMorgan(Decompose(f)))
}
