package calculus

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"
	"unicode"
)

type parser struct {
	s     scanner.Scanner
	eof   bool   // Have we reached eof yet?
	tok   rune   // Kind of the last token read
	token string // Last token read
	depth int    // Number of parentheses currently open
	err   error  // First error reported by the scanner
}

// multi-character operators; the scanner returns them one rune at a time.
var longOperators = []string{"<>", "=>", "<=>"}

func newParser(r io.Reader) *parser {
	p := &parser{}
	p.s.Init(r)
	p.s.Mode = scanner.ScanIdents | scanner.ScanComments | scanner.SkipComments
	p.s.Whitespace &^= 1 << '\n' // Newlines separate constraints
	p.s.IsIdentRune = isIdentRune
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("%s: %s", s.Position, msg)
		}
	}
	p.scan()
	return p
}

// isIdentRune accepts atom names such as "FileMenu", "x_1" or "x*-1".
func isIdentRune(ch rune, i int) bool {
	if ch == '_' || unicode.IsLetter(ch) {
		return true
	}
	return i > 0 && (unicode.IsDigit(ch) || ch == '-' || ch == '*' || ch == '.')
}

// Parse parses the formula from the given input Reader.
// Formulas are written using the following operators (from lowest to highest priority):
//
// - for an equivalence, the "<=>" operator, and for an implication, the "=>" operator,
// - for a disjunction ("or"), the "|" operator, and for an exclusive disjunction, the "<>" operator,
// - for a conjunction ("and"), the "&" operator,
// - for a negation, the "~" unary operator.
//
// Binary operators are right-associative. Parentheses can be used to group
// subformulas, True and False denote the constants, and any other identifier is
// an atom. Comments start with "//".
//
// When the input holds several constraints separated by ";" or newlines,
// Parse returns their conjunction. See ParseAll.
func Parse(r io.Reader) (Formula, error) {
	fs, err := ParseAll(r)
	if err != nil {
		return False, err
	}
	if len(fs) == 0 {
		return False, fmt.Errorf("expected expression, found EOF")
	}
	return Ands(fs...), nil
}

// ParseString parses the formula in s. See Parse.
func ParseString(s string) (Formula, error) {
	return Parse(strings.NewReader(s))
}

// ParseAll parses all constraints from r. Constraints are separated by ";" or
// newlines; a constraint can span several lines inside parentheses.
func ParseAll(r io.Reader) ([]Formula, error) {
	p := newParser(r)
	var res []Formula
	for {
		p.skipSeparators()
		if p.eof {
			break
		}
		f, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if p.err != nil {
			return nil, p.err
		}
		if !p.eof && !isSeparator(p.token) {
			return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Position)
		}
		res = append(res, f)
	}
	if p.err != nil {
		return nil, p.err
	}
	return res, nil
}

func isOperator(token string) bool {
	switch token {
	case "<=>", "=>", "|", "<>", "&":
		return true
	}
	return false
}

func isSeparator(token string) bool {
	return token == ";" || token == "\n"
}

// isOperatorPrefix returns true if s is the beginning of a multi-character operator.
func isOperatorPrefix(s string) bool {
	if len(s) < 2 {
		return false
	}
	for _, op := range longOperators {
		if strings.HasPrefix(op, s) {
			return true
		}
	}
	return false
}

func (p *parser) scan() {
	for !p.eof {
		p.tok = p.s.Scan()
		p.eof = p.tok == scanner.EOF
		p.token = p.s.TokenText()
		for isOperatorPrefix(p.token + string(p.s.Peek())) {
			p.token += string(p.s.Next())
		}
		if p.token != "\n" || p.depth == 0 {
			return
		}
	}
}

func (p *parser) skipSeparators() {
	for !p.eof && isSeparator(p.token) {
		p.scan()
	}
}

func (p *parser) parseIff() (f Formula, err error) {
	if p.eof {
		return False, fmt.Errorf("at position %v, expected expression, found EOF", p.s.Position)
	}
	f, err = p.parseOr()
	if err != nil || p.eof {
		return f, err
	}
	if p.token != "=>" && p.token != "<=>" {
		return f, nil
	}
	op := p.token
	p.scan()
	if p.eof {
		return False, fmt.Errorf("unexpected EOF after %q", op)
	}
	f2, err := p.parseIff()
	if err != nil {
		return False, err
	}
	if op == "=>" {
		return Implies(f, f2), nil
	}
	return Iff(f, f2), nil
}

func (p *parser) parseOr() (f Formula, err error) {
	f, err = p.parseAnd()
	if err != nil || p.eof {
		return f, err
	}
	if p.token != "|" && p.token != "<>" {
		return f, nil
	}
	op := p.token
	p.scan()
	if p.eof {
		return False, fmt.Errorf("unexpected EOF after %q", op)
	}
	f2, err := p.parseOr()
	if err != nil {
		return False, err
	}
	if op == "|" {
		return Or(f, f2), nil
	}
	return Xor(f, f2), nil
}

func (p *parser) parseAnd() (f Formula, err error) {
	f, err = p.parseNot()
	if err != nil || p.eof {
		return f, err
	}
	if p.token != "&" {
		return f, nil
	}
	p.scan()
	if p.eof {
		return False, fmt.Errorf("unexpected EOF after %q", "&")
	}
	f2, err := p.parseAnd()
	if err != nil {
		return False, err
	}
	return And(f, f2), nil
}

func (p *parser) parseNot() (f Formula, err error) {
	if p.token != "~" {
		return p.parseBasic()
	}
	p.scan()
	if p.eof {
		return False, fmt.Errorf("unexpected EOF after %q", "~")
	}
	f, err = p.parseNot()
	if err != nil {
		return False, err
	}
	return Not(f), nil
}

func (p *parser) parseBasic() (f Formula, err error) {
	if p.token == "(" {
		p.depth++
		p.scan()
		f, err = p.parseIff()
		if err != nil {
			return False, err
		}
		if p.eof {
			return False, fmt.Errorf("expected closing parenthesis, found EOF at %s", p.s.Position)
		}
		if p.token != ")" {
			return False, fmt.Errorf("expected closing parenthesis, found %q at %s", p.token, p.s.Position)
		}
		p.depth--
		p.scan()
		return f, nil
	}
	if p.tok != scanner.Ident || isOperator(p.token) {
		return False, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Position)
	}
	defer p.scan()
	switch p.token {
	case Symbolic.True:
		return True, nil
	case Symbolic.False:
		return False, nil
	default:
		return Atom(p.token), nil
	}
}
