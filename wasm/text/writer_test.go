package text

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokID(t *testing.T) {
	doIt := func(id string) (string, error) {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		err := w.tokID(id)
		return buf.String(), err
	}

	for _, tc := range []struct {
		id  string
		exp string
	}{
		{id: "hello", exp: "$hello"},
		{id: "weird012!#$%&'*+-./:<=>?@\\^_`|~weird", exp: "$weird012!#$%&'*+-./:<=>?@\\^_`|~weird"},
		{id: "$", exp: "$$"},
		{id: "0", exp: "$0"},
	} {
		actual, err := doIt(tc.id)
		require.NoError(t, err, "id %q", tc.id)
		assert.Equal(t, tc.exp, actual)
	}

	for _, id := range []string{
		"", "bad bad", "bad\"bad", "bad,bad", "bad;bad",
		"bad[bad", "bad]bad", "bad(bad", "bad)bad", "bad{bad", "bad}bad",
	} {
		_, err := doIt(id)
		require.ErrorIs(t, err, ErrInvalidIdentifier, "id %q", id)
	}
}

func TestTokString(t *testing.T) {
	for _, tc := range []struct {
		input string
		exp   string
	}{
		{input: "hello", exp: `"hello"`},
		{input: "", exp: `""`},
		{input: "a\tb", exp: `"a\tb"`},
		{input: "a\nb", exp: `"a\nb"`},
		{input: "a\rb", exp: `"a\rb"`},
		{input: `a"b`, exp: `"a\"b"`},
		{input: "a'b", exp: `"a\'b"`},
		{input: `a\b`, exp: `"a\\b"`},
		// Bytes outside printable ASCII are hex escaped.
		{input: "caf\xc3\xa9", exp: `"caf\c3\a9"`},
		{input: "\x00\x7f", exp: `"\00\7f"`},
	} {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.tokString(tc.input)
		require.NoError(t, w.Err())
		assert.Equal(t, tc.exp, buf.String(), "input %q", tc.input)
	}
}

func TestTokenSpacing(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	// Adjacent keywords are separated; a keyword directly after `(` is
	// not; a token after `)` always is.
	w.tokLeftParen()
	w.tokKeyword("module")
	w.tokKeyword("x")
	w.tokLeftParen()
	w.tokKeyword("y")
	w.tokRightParen()
	w.tokLeftParen()
	w.tokKeyword("z")
	w.tokRightParen()
	w.tokRightParen()

	require.NoError(t, w.Err())
	assert.Equal(t, "(module x (y) (z))", buf.String())
}

func TestLexNL(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.tokLeftParen()
	w.tokKeyword("a")
	w.lexNL()
	w.tokKeyword("b")
	w.tokRightParen()

	require.NoError(t, w.Err())
	assert.Equal(t, "(a\n  b)", buf.String())
	assert.Zero(t, w.indent)
}

func TestLexBlockComment(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.tokKeyword("type")
	w.lexBlockComment("0")
	w.tokLeftParen()
	w.tokKeyword("func")
	w.tokRightParen()

	require.NoError(t, w.Err())
	assert.Equal(t, "type (;0;) (func)", buf.String())
}
