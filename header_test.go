package imf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeaderBasic(t *testing.T) {
	s := newScanner([]byte("Subject: Hi\r\nFrom: a@b\r\n\r\nbody\r\n"))
	fields, bodyStart, err := readHeader(s)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, KindSubject, fields[0].Kind)
	assert.Equal(t, "Subject", fields[0].Name)
	assert.Equal(t, " Hi\r\n", string(fields[0].Raw))
	assert.Equal(t, KindFrom, fields[1].Kind)
	assert.Equal(t, "body\r\n", string(s.buf[bodyStart:]))
}

func TestReadHeaderFoldDoesNotTerminateField(t *testing.T) {
	s := newScanner([]byte("Subject: A long\r\n folded\r\n  subject\r\n\r\n"))
	fields, _, err := readHeader(s)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, " A long\r\n folded\r\n  subject\r\n", string(fields[0].Raw))
}

func TestReadHeaderNoBodyWhenUnterminated(t *testing.T) {
	s := newScanner([]byte("Subject: Hi\r\n"))
	fields, bodyStart, err := readHeader(s)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, len(s.buf), bodyStart)
}

func TestReadHeaderMboxFromLineSkipped(t *testing.T) {
	s := newScanner([]byte("From jdoe@example.com Fri Nov 21 09:55:06 1997\r\nSubject: Hi\r\n\r\n"))
	fields, _, err := readHeader(s)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, KindSubject, fields[0].Kind)
}

func TestReadHeaderBOMSkipped(t *testing.T) {
	s := newScanner(append([]byte{0xEF, 0xBB, 0xBF}, []byte("Subject: Hi\r\n\r\n")...))
	fields, _, err := readHeader(s)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "Subject", fields[0].Name)
}

func TestReadHeaderMissingColonIsFatal(t *testing.T) {
	s := newScanner([]byte("Subject Hi\r\n\r\n"))
	_, _, err := readHeader(s)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrMalformedHeader, pe.Kind)
}

func TestReadHeaderUnknownNameIsOptional(t *testing.T) {
	s := newScanner([]byte("X-Mailer: Whatever\r\n\r\n"))
	fields, _, err := readHeader(s)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, KindOptional, fields[0].Kind)
	assert.Equal(t, "X-Mailer", fields[0].Name)
}

func TestReadHeaderEmptyInputHasNoFields(t *testing.T) {
	s := newScanner([]byte(""))
	fields, bodyStart, err := readHeader(s)
	require.NoError(t, err)
	assert.Len(t, fields, 0)
	assert.Equal(t, 0, bodyStart)
}
