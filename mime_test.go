package imf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMIMEVersion(t *testing.T) {
	v := decodeMIMEVersion([]byte(" 1.0"))
	require.True(t, v.IsOk())
	val, _ := v.Value()
	assert.Equal(t, [2]int{1, 0}, val)
}

func TestDecodeMIMEVersionWithInterleavedComments(t *testing.T) {
	v := decodeMIMEVersion([]byte(" (produced by metasend) 1 .(beta) 0 (oops)"))
	require.True(t, v.IsOk())
	val, _ := v.Value()
	assert.Equal(t, [2]int{1, 0}, val)
}

func TestDecodeContentTypeWithParameters(t *testing.T) {
	v := decodeContentType([]byte(` text/plain; charset="us-ascii"; format=flowed`))
	require.True(t, v.IsOk())
	ct, _ := v.Value()
	assert.Equal(t, "text", ct.Type)
	assert.Equal(t, "plain", ct.Subtype)

	charset, ok := ct.Parameter("Charset")
	require.True(t, ok, "Parameter lookup is case-insensitive")
	assert.Equal(t, "us-ascii", charset)

	format, ok := ct.Parameter("format")
	require.True(t, ok)
	assert.Equal(t, "flowed", format)

	_, ok = ct.Parameter("boundary")
	assert.False(t, ok)
}

func TestDecodeContentTypeMalformedDegradesToRaw(t *testing.T) {
	v := decodeContentType([]byte(" text"))
	assert.True(t, v.IsRaw())
}

func TestContentTypeDefaultWhenFieldAbsent(t *testing.T) {
	assert.Equal(t, "text", DefaultContentType.Type)
	assert.Equal(t, "plain", DefaultContentType.Subtype)
}
