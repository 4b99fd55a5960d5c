package imf

import "bytes"

// fieldState discriminates the three-way outcome every structured field
// decode can reach: a clean parse, a value that failed to parse and so
// degrades to its raw bytes, or a field that was never present at all.
// Keeping these three distinct (rather than collapsing "raw" into an
// error) is what lets a single malformed header survive alongside an
// otherwise well-formed message (§3).
type fieldState int

const (
	fieldStateMissing fieldState = iota
	fieldStateOk
	fieldStateRaw
)

// FieldValue is the result of decoding one structured header field. At most
// one of Value/Raw is meaningful (neither, for a missing field), selected by
// IsOk/IsRaw/IsMissing.
type FieldValue[T any] struct {
	state fieldState
	value T
	raw   []byte
}

func fieldOk[T any](v T) FieldValue[T] { return FieldValue[T]{state: fieldStateOk, value: v} }

func fieldRaw[T any](raw []byte) FieldValue[T] { return FieldValue[T]{state: fieldStateRaw, raw: raw} }

func fieldMissing[T any]() FieldValue[T] { return FieldValue[T]{state: fieldStateMissing} }

func (f FieldValue[T]) IsOk() bool      { return f.state == fieldStateOk }
func (f FieldValue[T]) IsRaw() bool     { return f.state == fieldStateRaw }
func (f FieldValue[T]) IsMissing() bool { return f.state == fieldStateMissing }

// Value returns the decoded value and true when IsOk, or the zero value and
// false otherwise.
func (f FieldValue[T]) Value() (T, bool) { return f.value, f.state == fieldStateOk }

// Raw returns the field's undecodable source bytes. Meaningful only when
// IsRaw; returns nil otherwise.
func (f FieldValue[T]) Raw() []byte { return f.raw }

// trimCRLF strips the terminating CRLF the tokenizer keeps at the end of a
// field's raw bytes (§4.7), along with any other leading/trailing
// whitespace, such as the space after the colon. This tidies the edges so a
// raw fallback reads the way a person would type it, and so every decoder's
// scanner starts exactly on the first meaningful byte.
func trimCRLF(raw []byte) []byte {
	return bytes.TrimSpace(raw)
}

func decodeAddressList(raw []byte) FieldValue[[]Address] {
	body := trimCRLF(raw)
	s := newScanner(body)
	list, ok := addressList(s)
	if !ok {
		return fieldRaw[[]Address](body)
	}
	cfws(s)
	if !s.atEnd() {
		return fieldRaw[[]Address](body)
	}
	return fieldOk(list)
}

func decodeMailbox(raw []byte) FieldValue[Mailbox] {
	body := trimCRLF(raw)
	s := newScanner(body)
	mb, ok := mailbox(s)
	if !ok {
		return fieldRaw[Mailbox](body)
	}
	cfws(s)
	if !s.atEnd() {
		return fieldRaw[Mailbox](body)
	}
	return fieldOk(mb)
}

func decodeDateTime(raw []byte) FieldValue[DateTime] {
	body := trimCRLF(raw)
	s := newScanner(body)
	dt, ok := dateTime(s)
	if !ok {
		return fieldRaw[DateTime](body)
	}
	if !s.atEnd() {
		return fieldRaw[DateTime](body)
	}
	return fieldOk(dt)
}

func decodeMessageID(raw []byte) FieldValue[MessageID] {
	body := trimCRLF(raw)
	s := newScanner(body)
	id, ok := msgID(s)
	if !ok {
		return fieldRaw[MessageID](body)
	}
	if !s.atEnd() {
		return fieldRaw[MessageID](body)
	}
	return fieldOk(id)
}

func decodeMessageIDList(raw []byte) FieldValue[[]MessageID] {
	body := trimCRLF(raw)
	s := newScanner(body)
	ids, _ := msgIDList(s)
	if !s.atEnd() {
		return fieldRaw[[]MessageID](body)
	}
	return fieldOk(ids)
}

// decodeUnstructured covers Subject, Comments, and any Optional field read
// as free text: unstructured = *([FWS] VCHAR) [FWS] / obs-unstruct, which in
// practice accepts anything that isn't a bare CR or LF. There is no grammar
// left to reject, so this never produces Raw (isMalformed hardcodes that).
func decodeUnstructured(raw []byte) FieldValue[ByteRange] {
	return fieldOk(unfoldSpan(trimCRLF(raw)))
}

// decodeKeywords parses a comma-separated phrase list (§4.7's Keywords),
// tolerant of the obsolete form's stray CFWS around commas.
func decodeKeywords(raw []byte) FieldValue[[]ByteRange] {
	body := trimCRLF(raw)
	s := newScanner(body)
	var out []ByteRange
	cfws(s)
	first, ok := phrase(s)
	if !ok {
		return fieldRaw[[]ByteRange](body)
	}
	out = append(out, first)
	for {
		cfws(s)
		if !s.present(',') {
			break
		}
		cfws(s)
		p, ok := phrase(s)
		if !ok {
			return fieldRaw[[]ByteRange](body)
		}
		out = append(out, p)
	}
	cfws(s)
	if !s.atEnd() {
		return fieldRaw[[]ByteRange](body)
	}
	return fieldOk(out)
}

// Received is the decoded value of a Received trace field. Its leading
// token sequence (from/by/via/with/for/id, in whatever combination the
// sending MTA chose) is left opaque: §4.8 only asks that the trailing
// date-time be available for trace analysis, not that the free-form token
// grammar be parsed. Tokens is split off by the last ";" in the field,
// since a date-time never itself contains one.
type Received struct {
	Tokens []byte
	When   DateTime
}

func lastSemicolon(b []byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == ';' {
			return i
		}
	}
	return -1
}

func decodeReceived(raw []byte) FieldValue[Received] {
	body := trimCRLF(raw)
	idx := lastSemicolon(body)
	if idx < 0 {
		return fieldRaw[Received](body)
	}
	tokens := body[:idx]
	s := newScanner(body[idx+1:])
	dt, ok := dateTime(s)
	if !ok {
		return fieldRaw[Received](body)
	}
	if !s.atEnd() {
		return fieldRaw[Received](body)
	}
	return fieldOk(Received{Tokens: tokens, When: dt})
}

// isMalformed reports whether f's structured decode fails and degrades to
// Raw. Subject, Comments, and Optional fields have no grammar to fail —
// they read as unstructured text by definition — so they always report
// false.
func isMalformed(f Field) bool {
	switch f.Kind {
	case KindFrom, KindReplyTo, KindTo, KindCc, KindBcc,
		KindResentFrom, KindResentTo, KindResentCc, KindResentBcc, KindResentReplyTo:
		return decodeAddressList(f.Raw).IsRaw()
	case KindSender, KindResentSender, KindReturnPath:
		return decodeMailbox(f.Raw).IsRaw()
	case KindDate, KindResentDate:
		return decodeDateTime(f.Raw).IsRaw()
	case KindMessageID, KindResentMessageID:
		return decodeMessageID(f.Raw).IsRaw()
	case KindInReplyTo, KindReferences:
		return decodeMessageIDList(f.Raw).IsRaw()
	case KindKeywords:
		return decodeKeywords(f.Raw).IsRaw()
	case KindReceived:
		return decodeReceived(f.Raw).IsRaw()
	case KindMIMEVersion:
		return decodeMIMEVersion(f.Raw).IsRaw()
	case KindContentType:
		return decodeContentType(f.Raw).IsRaw()
	case KindSubject, KindComments, KindOptional:
		return false
	default:
		return false
	}
}
