package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/embertide/ember/internal/token"
)

type tokenCase struct {
	input    string
	expected []token.Token
}

func kindsOnly(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokens_Punctuation(t *testing.T) {
	cases := []tokenCase{
		{
			input: `1 + 2 * 3`,
			expected: []token.Token{
				{Kind: token.INT, Literal: "1"},
				{Kind: token.PLUS, Literal: "+"},
				{Kind: token.INT, Literal: "2"},
				{Kind: token.STAR, Literal: "*"},
				{Kind: token.INT, Literal: "3"},
			},
		},
		{
			input: `x |> f >> g`,
			expected: []token.Token{
				{Kind: token.IDENT, Literal: "x"},
				{Kind: token.PIPELINE, Literal: "|>"},
				{Kind: token.IDENT, Literal: "f"},
				{Kind: token.COMPOSE, Literal: ">>"},
				{Kind: token.IDENT, Literal: "g"},
			},
		},
		{
			input: `1..5 1..=5`,
			expected: []token.Token{
				{Kind: token.INT, Literal: "1"},
				{Kind: token.RANGE, Literal: ".."},
				{Kind: token.INT, Literal: "5"},
				{Kind: token.INT, Literal: "1"},
				{Kind: token.RANGE_INC, Literal: "..="},
				{Kind: token.INT, Literal: "5"},
			},
		},
		{
			input: `#{ a: 1 }`,
			expected: []token.Token{
				{Kind: token.HASH_BRACE, Literal: "#{"},
				{Kind: token.IDENT, Literal: "a"},
				{Kind: token.COLON, Literal: ":"},
				{Kind: token.INT, Literal: "1"},
				{Kind: token.RBRACE, Literal: "}"},
			},
		},
	}

	for _, tc := range cases {
		toks := Tokens(tc.input)
		assert.Equal(t, kindsOnly(tc.expected), kindsOnly(toks), tc.input)
		for i, want := range tc.expected {
			assert.Equal(t, want.Literal, toks[i].Literal, tc.input)
		}
	}
}

func TestTokens_NumericSeparators(t *testing.T) {
	toks := Tokens(`1_000_000 3.14_15`)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, "1000000", toks[0].Literal)
	assert.Equal(t, token.DECIMAL, toks[1].Kind)
	assert.Equal(t, "3.1415", toks[1].Literal)
}

func TestTokens_StringEscapes(t *testing.T) {
	toks := Tokens(`"a\nb\tc\"d"`)
	assert.Len(t, toks, 1)
	assert.Equal(t, "a\nb\tc\"d", toks[0].Literal)
}

func TestTokens_StringInterpolationKeptRaw(t *testing.T) {
	toks := Tokens(`"hello {name}!"`)
	assert.Len(t, toks, 1)
	assert.Equal(t, "hello {name}!", toks[0].Literal)
}

func TestTokens_Keywords(t *testing.T) {
	toks := Tokens(`let mut if else match return break true false nil`)
	want := []token.Kind{token.LET, token.MUT, token.IF, token.ELSE, token.MATCH, token.RETURN, token.BREAK, token.TRUE, token.FALSE, token.NIL}
	assert.Equal(t, want, kindsOnly(toks))
}

func TestTokens_LineComment(t *testing.T) {
	toks := Tokens("1 // comment\n+ 2")
	assert.Equal(t, []token.Kind{token.INT, token.PLUS, token.INT}, kindsOnly(toks))
}

func TestTokens_RoundTrip(t *testing.T) {
	// §8 property 1: literal concatenation reconstructs the source modulo
	// comments and ignored whitespace, for sources with no insignificant gaps.
	src := `let(x)=1+2`
	toks := Tokens(src)
	var rebuilt string
	for _, tk := range toks {
		rebuilt += tk.Literal
	}
	assert.Equal(t, "let(x)=1+2", rebuilt)
}

func TestLexer_UnterminatedString(t *testing.T) {
	lx := New(`"abc`)
	for {
		tk := lx.NextToken()
		if tk.Kind == token.EOF {
			break
		}
	}
	assert.NotNil(t, lx.Err())
}

func TestLexer_Position(t *testing.T) {
	toks := Tokens("1 +\n  2")
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[2].Line)
	assert.Equal(t, 3, toks[2].Column)
}
