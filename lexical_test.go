package imf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtom(t *testing.T) {
	s := newScanner([]byte("  foo.bar  "))
	v, ok := atom(s)
	require.True(t, ok)
	assert.Equal(t, "foo", v.String())
	assert.True(t, s.atEnd() == false)
}

func TestDotAtom(t *testing.T) {
	s := newScanner([]byte("foo.bar.baz"))
	v, ok := dotAtom(s)
	require.True(t, ok)
	assert.Equal(t, "foo.bar.baz", v.String())
	assert.True(t, s.atEnd())
}

func TestQuotedPairInvisibility(t *testing.T) {
	// Quoted-pair invisibility invariant: "X\YZ" decodes to "XYZ".
	s := newScanner([]byte(`"X\YZ"`))
	v, ok := quotedString(s)
	require.True(t, ok)
	assert.Equal(t, "XYZ", v.String())
}

func TestQuotedStringWithFWS(t *testing.T) {
	s := newScanner([]byte("\"hello\r\n world\""))
	v, ok := quotedString(s)
	require.True(t, ok)
	assert.Equal(t, "hello world", v.String())
}

func TestPhraseObsoleteDot(t *testing.T) {
	// obs-phrase allows a bare "." between words, and interior "." inside
	// an otherwise bare word run shouldn't terminate the phrase early.
	s := newScanner([]byte("Joe Q. Public"))
	v, ok := phrase(s)
	require.True(t, ok)
	assert.Equal(t, "Joe Q. Public", v.String())
	assert.True(t, s.atEnd())
}

func TestPhrasePreservesFoldedWhitespace(t *testing.T) {
	s := newScanner([]byte("A long\r\n folded\r\n  subject"))
	v, ok := phrase(s)
	require.True(t, ok)
	assert.Equal(t, "A long folded  subject", v.String())
}

func TestCommentNesting(t *testing.T) {
	s := newScanner([]byte("(outer (inner) comment)rest"))
	ok := comment(s, 0)
	require.True(t, ok)
	assert.Equal(t, "rest", string(s.buf[s.pos:]))
}

func TestCFWSTriesCommentsBeforeBareFWS(t *testing.T) {
	s := newScanner([]byte("  (a comment)  (another)  rest"))
	ok := cfws(s)
	require.True(t, ok)
	assert.Equal(t, "rest", string(s.buf[s.pos:]))
}
