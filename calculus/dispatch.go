package calculus

// A Visitor computes a value of type R for each kind of formula.
// Binary connectives are given their two operands, Not its only operand.
type Visitor[R any] interface {
	VisitAtom(name string) R
	VisitTrue() R
	VisitFalse() R
	VisitNot(p Formula) R
	VisitAnd(p, q Formula) R
	VisitOr(p, q Formula) R
	VisitXor(p, q Formula) R
	VisitImplies(p, q Formula) R
	VisitIff(p, q Formula) R
}

// Visit calls the method of v associated with the kind of f.
func Visit[R any](f Formula, v Visitor[R]) R {
	switch f.kind {
	case AtomKind:
		return v.VisitAtom(f.name)
	case TrueKind:
		return v.VisitTrue()
	case FalseKind:
		return v.VisitFalse()
	case NotKind:
		return v.VisitNot(f.ops[0])
	case AndKind:
		return v.VisitAnd(f.ops[0], f.ops[1])
	case OrKind:
		return v.VisitOr(f.ops[0], f.ops[1])
	case XorKind:
		return v.VisitXor(f.ops[0], f.ops[1])
	case ImpliesKind:
		return v.VisitImplies(f.ops[0], f.ops[1])
	case IffKind:
		return v.VisitIff(f.ops[0], f.ops[1])
	default:
		panic("invalid formula type")
	}
}

// shape is what binary matching knows about an operand: either one of the
// constants, or anything else.
type shape uint8

const (
	shapeAny shape = iota
	shapeTrue
	shapeFalse
)

func shapeOf(f Formula) shape {
	switch f.kind {
	case TrueKind:
		return shapeTrue
	case FalseKind:
		return shapeFalse
	default:
		return shapeAny
	}
}

// Cases2 lists the patterns a pair of formulas (p, q) can be matched against.
// Nil patterns are ignored. Any is mandatory.
type Cases2[R any] struct {
	TrueTrue   func() R
	TrueFalse  func() R
	FalseTrue  func() R
	FalseFalse func() R
	AnyTrue    func(p Formula) R // (p, True)
	TrueAny    func(q Formula) R // (True, q)
	AnyFalse   func(p Formula) R // (p, False)
	FalseAny   func(q Formula) R // (False, q)
	Any        func(p, q Formula) R
}

// Match2 applies the most specific pattern of c matching (p, q).
// Patterns on a pair of constants come first, then patterns with a single
// constant, tried in the order AnyTrue, TrueAny, AnyFalse, FalseAny, and Any last.
func Match2[R any](p, q Formula, c Cases2[R]) R {
	sp, sq := shapeOf(p), shapeOf(q)
	switch {
	case sp == shapeTrue && sq == shapeTrue && c.TrueTrue != nil:
		return c.TrueTrue()
	case sp == shapeTrue && sq == shapeFalse && c.TrueFalse != nil:
		return c.TrueFalse()
	case sp == shapeFalse && sq == shapeTrue && c.FalseTrue != nil:
		return c.FalseTrue()
	case sp == shapeFalse && sq == shapeFalse && c.FalseFalse != nil:
		return c.FalseFalse()
	}
	switch {
	case sq == shapeTrue && c.AnyTrue != nil:
		return c.AnyTrue(p)
	case sp == shapeTrue && c.TrueAny != nil:
		return c.TrueAny(q)
	case sq == shapeFalse && c.AnyFalse != nil:
		return c.AnyFalse(p)
	case sp == shapeFalse && c.FalseAny != nil:
		return c.FalseAny(q)
	}
	return c.Any(p, q)
}
