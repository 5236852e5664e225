package calculus

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	a, b, c := Atom("a"), Atom("b"), Atom("c")
	tests := []struct {
		input string
		want  Formula
	}{
		{"a", a},
		{"~a", Not(a)},
		{"~~a", Not(Not(a))},
		{"a & b | c", Or(And(a, b), c)},
		{"a | b & c", Or(a, And(b, c))},
		{"~a & b", And(Not(a), b)},
		{"~(a & b)", Not(And(a, b))},
		{"a <> b", Xor(a, b)},
		{"a => b => c", Implies(a, Implies(b, c))},
		{"a <=> b", Iff(a, b)},
		{"a | b => c", Implies(Or(a, b), c)},
		{"a&b&c", And(a, And(b, c))},
		{"True | False", Or(True, False)},
		{"x*-1 => x_2", Implies(Atom("x*-1"), Atom("x_2"))},
		{"a; b", And(a, b)},
		{"a\n\nb\n", And(a, b)},
		{"(a &\n b)", And(a, b)},
		{"a // first\n~b // second", And(a, Not(b))},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseString(tt.input)
			require.NoError(t, err)
			assert.True(t, Same(got, tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseAll(t *testing.T) {
	fs, err := ParseAll(strings.NewReader("File => FileMenu\nNewFile => (FileMenu &\n  File); ~Disabled\n"))
	require.NoError(t, err)
	want := []Formula{
		Implies(Atom("File"), Atom("FileMenu")),
		Implies(Atom("NewFile"), And(Atom("FileMenu"), Atom("File"))),
		Not(Atom("Disabled")),
	}
	require.Len(t, fs, len(want))
	for i := range want {
		assert.True(t, Same(fs[i], want[i]), "constraint %d: got %v, want %v", i, fs[i], want[i])
	}

	fs, err = ParseAll(strings.NewReader("  \n// nothing\n"))
	require.NoError(t, err)
	assert.Empty(t, fs)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"a &",
		"a & & b",
		"(a | b",
		"a b",
		"a)",
		"~",
		"a =",
		"1",
		"a &\nb",
	} {
		_, err := ParseString(input)
		assert.Error(t, err, "no error for %q", input)
	}
}

func ExampleParse() {
	f, err := Parse(strings.NewReader("(File | NewFile) => FileMenu"))
	if err != nil {
		fmt.Printf("could not parse formula: %v", err)
		return
	}
	cnf, err := ToCNF(f)
	if err != nil {
		fmt.Printf("could not convert formula: %v", err)
		return
	}
	fmt.Println(cnf)
	// Output: (((FileMenu) | (~File))) & (((FileMenu) | (~NewFile)))
}
