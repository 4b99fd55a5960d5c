package imf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMsgID(t *testing.T) {
	s := newScanner([]byte("<1234@local.machine.example>"))
	id, ok := msgID(s)
	require.True(t, ok)
	assert.Equal(t, "1234", id.Left.String())
	assert.Equal(t, "local.machine.example", id.Right.String())
}

func TestMsgIDNoFoldQuoteLeft(t *testing.T) {
	s := newScanner([]byte(`<"a.b"@example.com>`))
	id, ok := msgID(s)
	require.True(t, ok)
	assert.Equal(t, `"a.b"`, id.Left.String())
}

func TestMsgIDNoFoldLiteralRight(t *testing.T) {
	s := newScanner([]byte("<foo@[192.0.2.1]>"))
	id, ok := msgID(s)
	require.True(t, ok)
	assert.Equal(t, "[192.0.2.1]", id.Right.String())
}

func TestMsgIDListSkipsInterveningPhrases(t *testing.T) {
	s := newScanner([]byte("<a@x> phrase here <b@y>"))
	ids, ok := msgIDList(s)
	require.True(t, ok)
	require.Len(t, ids, 2)
	assert.Equal(t, "a", ids[0].Left.String())
	assert.Equal(t, "b", ids[1].Left.String())
	assert.True(t, s.atEnd())
}

func TestMsgIDListEmpty(t *testing.T) {
	s := newScanner([]byte(""))
	ids, ok := msgIDList(s)
	require.True(t, ok)
	assert.Len(t, ids, 0)
}
