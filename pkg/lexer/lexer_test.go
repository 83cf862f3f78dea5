package lexer

import (
	"testing"

	"github.com/leapstack-labs/sqlstream/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(list token.List) []token.Type {
	out := make([]token.Type, len(list))
	for i, tok := range list {
		out[i] = tok.Type
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"SELECT 1",
		"SELECT * FROM t WHERE a = 'x';",
		"select\t*\nfrom users -- trailing comment",
		"/* header */ INSERT INTO t (a, b) VALUES (:a, @b);",
		"SELECT 'it''s', X'0F AB', 1.5e-3, 0x1A, ?, ?42, $v",
		"CREATE TABLE \"my table\" ([col 1] TEXT, `col 2` INT)",
		"UPDATE t SET a = b || 'c' WHERE x <> y AND i >= 2 << 1",
		"SELECT 1 /* unterminated",
		"SELECT 'unterminated",
		"SELECT x'deadbe",
		"SELECT \"open name",
		"-- only a comment",
		"   \n\t  ",
		"π = 'ü'",
	}

	for _, input := range inputs {
		list := Tokenize(input)
		assert.Equal(t, input, list.Detokenize(), "round trip must reproduce input %q", input)
	}
}

func TestNoGapsBetweenSpans(t *testing.T) {
	input := "SELECT a, 'str' /* c */ FROM [tbl] WHERE x >= 1.5 -- end"
	list := Tokenize(input)
	require.NotEmpty(t, list)

	assert.Equal(t, int64(0), list[0].Start)
	for i := 1; i < len(list); i++ {
		assert.Equal(t, list[i-1].End+1, list[i].Start,
			"token %d (%s) must start right after its predecessor", i, list[i])
	}
	assert.Equal(t, int64(len([]rune(input))-1), list[len(list)-1].End)
}

func TestTokenSequence(t *testing.T) {
	list := Tokenize("SELECT * FROM t WHERE a = 'x';")

	assert.Equal(t, []token.Type{
		token.Keyword, token.Space, token.Operator, token.Space,
		token.Keyword, token.Space, token.Other, token.Space,
		token.Keyword, token.Space, token.Other, token.Space,
		token.Operator, token.Space, token.String, token.Operator,
	}, types(list))

	first := list[0]
	assert.Equal(t, "SELECT", first.Value)
	assert.Equal(t, int64(0), first.Start)
	assert.Equal(t, int64(5), first.End)
}

func TestKeywordsCaseInsensitive(t *testing.T) {
	list := Tokenize("select From WHERE users")

	assert.Equal(t, token.Keyword, list[0].Type)
	assert.Equal(t, token.Keyword, list[2].Type)
	assert.Equal(t, token.Keyword, list[4].Type)
	assert.Equal(t, token.Other, list[6].Type)
	assert.Equal(t, "select", list[0].Value, "keyword casing is preserved")
}

func TestStringLiteral(t *testing.T) {
	list := Tokenize("'it''s'")
	require.Len(t, list, 1)

	str := list[0]
	assert.Equal(t, token.String, str.Type)
	assert.Equal(t, "it's", str.Value, "value is dequoted")
	assert.Equal(t, int64(0), str.Start)
	assert.Equal(t, int64(6), str.End, "span covers the quoted source form")
	assert.Equal(t, "'it''s'", str.Surface())
}

func TestUnterminatedString(t *testing.T) {
	lx := New("SELECT 'abc")
	list := lx.All()

	last := list[len(list)-1]
	assert.Equal(t, token.Invalid, last.Type)
	assert.Equal(t, "'abc", last.Value, "unterminated literal stays verbatim")

	require.Len(t, lx.Tolerant, 1)
	assert.Same(t, last, lx.Tolerant[0].Token)
	assert.True(t, lx.Tolerant[0].Invalid)
}

func TestComments(t *testing.T) {
	list := Tokenize("-- hi\nx")
	require.Len(t, list, 3)
	assert.Equal(t, token.Comment, list[0].Type)
	assert.Equal(t, "-- hi", list[0].Value, "line break stays out of the comment")
	assert.Equal(t, token.Space, list[1].Type)
	assert.Equal(t, token.Other, list[2].Type)

	list = Tokenize("/* multi\nline */")
	require.Len(t, list, 1)
	assert.Equal(t, token.Comment, list[0].Type)
	assert.Equal(t, "/* multi\nline */", list[0].Value)
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx := New("1 /* open")
	list := lx.All()

	last := list[len(list)-1]
	assert.Equal(t, token.Comment, last.Type, "an open comment is still a comment")
	assert.Equal(t, "/* open", last.Value)

	require.Len(t, lx.Tolerant, 1)
	assert.Same(t, last, lx.Tolerant[0].Token)
	assert.True(t, lx.Tolerant[0].Invalid)
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		typ   token.Type
	}{
		{"10", token.Integer},
		{"0x1A", token.Integer},
		{"0XFF", token.Integer},
		{"1.5", token.Float},
		{".5", token.Float},
		{"1e10", token.Float},
		{"1E-5", token.Float},
		{"2.5e+3", token.Float},
	}

	for _, tt := range tests {
		list := Tokenize(tt.input)
		require.Len(t, list, 1, "input %q", tt.input)
		assert.Equal(t, tt.typ, list[0].Type, "input %q", tt.input)
		assert.Equal(t, tt.input, list[0].Value)
	}
}

func TestBindParams(t *testing.T) {
	list := Tokenize("? ?1 :name @name $name")

	params := list.Filter(token.BindParam)
	require.Len(t, params, 5)
	assert.Equal(t, "?", params[0].Value)
	assert.Equal(t, "?1", params[1].Value)
	assert.Equal(t, ":name", params[2].Value)
	assert.Equal(t, "@name", params[3].Value)
	assert.Equal(t, "$name", params[4].Value)
}

func TestBlob(t *testing.T) {
	for _, input := range []string{"X'0F'", "x'dead'"} {
		list := Tokenize(input)
		require.Len(t, list, 1)
		assert.Equal(t, token.Blob, list[0].Type)
		assert.Equal(t, input, list[0].Value, "blob is kept verbatim")
	}
}

func TestQuotedNames(t *testing.T) {
	list := Tokenize("\"a b\" [c d] `e f`")

	names := list.Filter(token.Other)
	require.Len(t, names, 3)
	assert.Equal(t, "\"a b\"", names[0].Value)
	assert.Equal(t, "[c d]", names[1].Value)
	assert.Equal(t, "`e f`", names[2].Value)
}

func TestParens(t *testing.T) {
	list := Tokenize("(1)")

	assert.Equal(t, []token.Type{token.ParLeft, token.Integer, token.ParRight}, types(list))
}

func TestOperators(t *testing.T) {
	list := Tokenize("a||b <= >= <> != == << >> . , ;")

	ops := list.Filter(token.Operator)
	var values []string
	for _, op := range ops {
		values = append(values, op.Value)
	}
	assert.Equal(t, []string{"||", "<=", ">=", "<>", "!=", "==", "<<", ">>", ".", ",", ";"}, values)
}

func TestInvalidRune(t *testing.T) {
	lx := New("a # b")
	list := lx.All()

	require.Len(t, list, 5)
	assert.Equal(t, token.Invalid, list[2].Type)
	assert.Equal(t, "#", list[2].Value)
	require.Len(t, lx.Tolerant, 1)
}

func TestNextAfterEnd(t *testing.T) {
	lx := New("a")

	first := lx.Next()
	assert.Equal(t, token.Other, first.Type)

	end := lx.Next()
	assert.Equal(t, token.Invalid, end.Type)
	assert.Empty(t, end.Value)
	assert.Equal(t, int64(-1), end.Start, "the end marker is synthetic")

	again := lx.Next()
	assert.Equal(t, token.Invalid, again.Type)
}

func TestUnicodeOffsetsAreRunePositions(t *testing.T) {
	list := Tokenize("π = 'ü'")
	require.Len(t, list, 5)

	assert.Equal(t, token.Other, list[0].Type)
	assert.Equal(t, "π", list[0].Value)
	assert.Equal(t, int64(0), list[0].Start)
	assert.Equal(t, int64(0), list[0].End)

	str := list[4]
	assert.Equal(t, token.String, str.Type)
	assert.Equal(t, "ü", str.Value)
	assert.Equal(t, int64(4), str.Start)
	assert.Equal(t, int64(6), str.End)
}

func TestCursorLookupOnLexedList(t *testing.T) {
	list := Tokenize("abc def")
	require.Len(t, list, 3)

	assert.Same(t, list[0], list.AtCursorPosition(2))
	assert.Same(t, list[1], list.AtCursorPosition(3))
	assert.Same(t, list[2], list.AtCursorPosition(4))
	assert.Nil(t, list.AtCursorPosition(7))
}
