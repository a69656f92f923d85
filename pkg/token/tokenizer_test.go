package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		types []TokenType
		texts []string
	}{
		{
			name:  "numbered marker",
			input: "a = $1",
			types: []TokenType{UNQUOTED, SPACE, PUNCT, SPACE, PUNCT, UNQUOTED},
			texts: []string{"a", " ", "=", " ", "$", "1"},
		},
		{
			name:  "quoted string keeps marker",
			input: "'$1' || ?",
			types: []TokenType{QUOTED, SPACE, PUNCT, PUNCT, SPACE, PUNCT},
			texts: []string{"'$1'", " ", "|", "|", " ", "?"},
		},
		{
			name:  "doubled quote stays in run",
			input: `'it''s' x`,
			types: []TokenType{QUOTED, SPACE, UNQUOTED},
			texts: []string{`'it''s'`, " ", "x"},
		},
		{
			name:  "identifier quotes",
			input: "\"a b\".`c`",
			types: []TokenType{QUOTED, PUNCT, QUOTED},
			texts: []string{`"a b"`, ".", "`c`"},
		},
		{
			name:  "underscore inside word",
			input: "my_col2",
			types: []TokenType{UNQUOTED},
			texts: []string{"my_col2"},
		},
		{
			name:  "unterminated quote runs to end",
			input: "'abc",
			types: []TokenType{QUOTED},
			texts: []string{"'abc"},
		},
		{
			name:  "unicode letters",
			input: "größe",
			types: []TokenType{UNQUOTED},
			texts: []string{"größe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.input)
			require.Len(t, toks, len(tt.types))
			for i, tok := range toks {
				assert.Equal(t, tt.types[i], tok.Type, "token %d", i)
				assert.Equal(t, tt.texts[i], tok.Text, "token %d", i)
			}
		})
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"SUM($1) + ? - $$",
		"CAST('2020-01-01' AS date)",
		"ARRAY[$1, $2]::int[]",
		"  \t\n",
	}
	for _, in := range inputs {
		var sb strings.Builder
		for _, tok := range Tokenize(in) {
			sb.WriteString(tok.Text)
		}
		assert.Equal(t, in, sb.String())
	}
}

func TestTokenPositions(t *testing.T) {
	toks := Tokenize("ab  $3")
	require.Len(t, toks, 4)
	assert.Equal(t, 0, toks[0].Pos.Offset)
	assert.Equal(t, 2, toks[1].Pos.Offset)
	assert.Equal(t, 4, toks[2].Pos.Offset)
	assert.True(t, toks[2].IsPunct("$"))
	assert.Equal(t, 5, toks[3].Pos.Offset)
}

func TestNextAfterEOF(t *testing.T) {
	tk := NewTokenizer("x")
	assert.Equal(t, UNQUOTED, tk.Next().Type)
	assert.Equal(t, EOF, tk.Next().Type)
	assert.Equal(t, EOF, tk.Next().Type)
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "QUOTED", QUOTED.String())
	assert.Equal(t, "TOKEN(42)", TokenType(42).String())
}
