package calculus

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Symbols is the set of strings used to print formulas.
type Symbols struct {
	True, False  string
	Not          string
	And, Or, Xor string
	Implies, Iff string
}

var (
	// Symbolic prints formulas with operators, e.g (~a) & (b).
	// This is the syntax read by Parse.
	Symbolic = Symbols{
		True: "True", False: "False", Not: "~",
		And: "&", Or: "|", Xor: "<>",
		Implies: "=>", Iff: "<=>",
	}
	// WrittenForm prints formulas with words, e.g (Not a) And (b).
	WrittenForm = Symbols{
		True: "True", False: "False", Not: "Not",
		And: "And", Or: "Or", Xor: "Xor",
		Implies: "Implies", Iff: "Iff",
	}
)

// Binding power of each connective. Not binds tighter than anything else.
const (
	precNot     = 10
	precAnd     = 8
	precOr      = 6
	precXor     = 6
	precImplies = 4
	precIff     = 4
)

func (f Formula) String() string {
	return Format(f, Symbolic)
}

// Format returns the textual representation of f, using the given symbols.
// Both operands of a binary connective are surrounded by parentheses.
// The connective itself is surrounded by parentheses when it appears as an
// operand of a connective that binds tighter, or as the left operand of a
// connective with the same binding power.
func Format(f Formula, syms Symbols) string {
	return Visit[string](f, printer{syms: syms})
}

// Fprint writes the textual representation of f on w.
func Fprint(w io.Writer, f Formula, syms Symbols) error {
	_, err := io.WriteString(w, Format(f, syms))
	return err
}

// printer generates a string for a formula.
// prec is the binding power of the context, used to decide whether to add
// parentheses.
type printer struct {
	syms Symbols
	prec int
}

func (p printer) at(prec int) printer {
	return printer{syms: p.syms, prec: prec}
}

func (p printer) VisitAtom(name string) string { return name }

func (p printer) VisitTrue() string { return p.syms.True }

func (p printer) VisitFalse() string { return p.syms.False }

func (p printer) VisitNot(f Formula) string {
	if f.kind == AtomKind {
		return p.notPrefix() + f.name
	}
	s := Visit[string](f, p.at(p.prec+1))
	return surroundIf(p.prec > precNot, p.syms.Not+"("+s+")")
}

// notPrefix returns the symbol put before a negated atom.
// Words are separated from the atom's name by a space.
func (p printer) notPrefix() string {
	r, _ := utf8.DecodeLastRuneInString(p.syms.Not)
	if unicode.IsLetter(r) {
		return p.syms.Not + " "
	}
	return p.syms.Not
}

func (p printer) VisitAnd(l, r Formula) string {
	return p.infix(precAnd, p.syms.And, l, r)
}

func (p printer) VisitOr(l, r Formula) string {
	return p.infix(precOr, p.syms.Or, l, r)
}

func (p printer) VisitXor(l, r Formula) string {
	return p.infix(precXor, p.syms.Xor, l, r)
}

func (p printer) VisitImplies(l, r Formula) string {
	return p.infix(precImplies, p.syms.Implies, l, r)
}

func (p printer) VisitIff(l, r Formula) string {
	return p.infix(precIff, p.syms.Iff, l, r)
}

// infix prints a binary connective of binding power prec.
func (p printer) infix(prec int, sym string, l, r Formula) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(Visit[string](l, p.at(prec+1)))
	sb.WriteString(") ")
	sb.WriteString(sym)
	sb.WriteString(" (")
	sb.WriteString(Visit[string](r, p.at(prec)))
	sb.WriteByte(')')
	return surroundIf(p.prec > prec, sb.String())
}

// surroundIf surrounds s with parentheses if b is true.
func surroundIf(b bool, s string) string {
	if b {
		return "(" + s + ")"
	}
	return s
}
