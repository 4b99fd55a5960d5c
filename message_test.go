package imf

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func TestParseMessageHello(t *testing.T) {
	data := readFixture(t, "hello.eml")
	msg, err := ParseMessage(data)
	require.NoError(t, err)
	require.Len(t, msg.Fields, 5)

	from := msg.From()
	require.True(t, from.IsOk())
	addrs, _ := from.Value()
	require.Len(t, addrs, 1)
	require.False(t, addrs[0].IsGroup)
	assert.Equal(t, "jdoe", addrs[0].Mailbox.LocalPart.String())
	assert.Equal(t, "machine.example", addrs[0].Mailbox.Domain.String())
	assert.True(t, addrs[0].Mailbox.HasDisplay)
	assert.Equal(t, "John Doe", addrs[0].Mailbox.DisplayName.String())

	date := msg.Date()
	require.True(t, date.IsOk())
	dt, _ := date.Value()
	assert.Equal(t, 1997, dt.Value.Year())
	assert.Equal(t, 21, dt.Value.Day())
	assert.Equal(t, 9, dt.Value.Hour())
	assert.Equal(t, 55, dt.Value.Minute())
	_, offset := dt.Value.Zone()
	assert.Equal(t, -6*3600, offset)

	assert.Equal(t, "This is a message just to say hello.\r\nSo, \"Hello\".\r\n", string(msg.Body))
}

func TestParseMessageGroup(t *testing.T) {
	data := readFixture(t, "group.eml")
	msg, err := ParseMessage(data)
	require.NoError(t, err)

	to := msg.To()
	require.True(t, to.IsOk())
	addrs, _ := to.Value()
	require.Len(t, addrs, 1)
	require.True(t, addrs[0].IsGroup)
	assert.Equal(t, "A Group", addrs[0].Group.DisplayName.String())
	require.Len(t, addrs[0].Group.Mailboxes, 3)
	assert.Equal(t, "c", addrs[0].Group.Mailboxes[0].LocalPart.String())
	assert.Equal(t, "public.example", addrs[0].Group.Mailboxes[0].Domain.String())
	assert.Equal(t, "joe", addrs[0].Group.Mailboxes[1].LocalPart.String())
	assert.Equal(t, "jdoe", addrs[0].Group.Mailboxes[2].LocalPart.String())
	assert.Equal(t, "John", addrs[0].Group.Mailboxes[2].DisplayName.String())
}

func TestParseMessageBogusDate(t *testing.T) {
	data := readFixture(t, "bogus_date.eml")
	msg, err := ParseMessage(data)
	require.NoError(t, err)

	date := msg.Date()
	require.True(t, date.IsRaw())
	assert.Equal(t, "Bogus Date String", string(date.Raw()))

	from := msg.From()
	require.True(t, from.IsOk())
	addrs, _ := from.Value()
	require.Len(t, addrs, 1)
	assert.Equal(t, "a", addrs[0].Mailbox.LocalPart.String())
	assert.Equal(t, "b", addrs[0].Mailbox.Domain.String())
	assert.False(t, addrs[0].Mailbox.HasDisplay)
}

func TestParseMessageFoldedSubject(t *testing.T) {
	data := readFixture(t, "folded_subject.eml")
	msg, err := ParseMessage(data)
	require.NoError(t, err)

	subj := msg.Subject()
	require.True(t, subj.IsOk())
	v, _ := subj.Value()
	assert.Equal(t, "A long folded  subject", v.String())
}

func TestParseMessageUndisclosedRecipients(t *testing.T) {
	data := readFixture(t, "undisclosed.eml")
	msg, err := ParseMessage(data)
	require.NoError(t, err)

	to := msg.To()
	require.True(t, to.IsOk())
	addrs, _ := to.Value()
	require.Len(t, addrs, 1)
	require.True(t, addrs[0].IsGroup)
	assert.Equal(t, "Undisclosed recipients", addrs[0].Group.DisplayName.String())
	assert.Len(t, addrs[0].Group.Mailboxes, 0)
}

func TestParseMessageReferences(t *testing.T) {
	data := readFixture(t, "references.eml")
	msg, err := ParseMessage(data)
	require.NoError(t, err)

	id := msg.MessageID()
	require.True(t, id.IsOk())
	v, _ := id.Value()
	assert.Equal(t, "1234", v.Left.String())
	assert.Equal(t, "local.machine.example", v.Right.String())

	refs := msg.References()
	require.True(t, refs.IsOk())
	ids, _ := refs.Value()
	require.Len(t, ids, 2)
	assert.Equal(t, "a", ids[0].Left.String())
	assert.Equal(t, "x", ids[0].Right.String())
	assert.Equal(t, "b", ids[1].Left.String())
	assert.Equal(t, "y", ids[1].Right.String())
}

func TestMessageMissingFieldsAreMissing(t *testing.T) {
	data := readFixture(t, "bogus_date.eml")
	msg, err := ParseMessage(data)
	require.NoError(t, err)

	assert.True(t, msg.Subject().IsMissing())
	assert.True(t, msg.MessageID().IsMissing())

	ct := msg.ContentType()
	require.True(t, ct.IsOk())
	v, _ := ct.Value()
	assert.Equal(t, "text", v.Type)
	assert.Equal(t, "plain", v.Subtype)
}

func TestNoFieldLeakInvariant(t *testing.T) {
	data := readFixture(t, "hello.eml")
	msg, err := ParseMessage(data)
	require.NoError(t, err)

	total := 0
	for _, f := range msg.Fields {
		total += len(f.Name) + 1 + len(f.Raw)
	}
	total += 2 // header-terminating blank line
	total += len(msg.Body)
	assert.Equal(t, len(data), total)
}

func BenchmarkParseMessage(b *testing.B) {
	data, err := os.ReadFile("testdata/large_message.eml")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseMessage(data); err != nil {
			b.Fatal(err)
		}
	}
}
