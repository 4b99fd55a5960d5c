package imf

import (
	"log"
)

// FieldKind discriminates a tokenized header Field by its classified name.
// Optional carries its own name since it covers every field name outside
// the known set.
type FieldKind int

const (
	KindDate FieldKind = iota
	KindFrom
	KindSender
	KindReplyTo
	KindTo
	KindCc
	KindBcc
	KindMessageID
	KindInReplyTo
	KindReferences
	KindSubject
	KindComments
	KindKeywords
	KindReturnPath
	KindReceived
	KindResentDate
	KindResentFrom
	KindResentSender
	KindResentTo
	KindResentCc
	KindResentBcc
	KindResentReplyTo
	KindResentMessageID
	KindMIMEVersion
	KindContentType
	KindOptional
)

// knownFieldNames maps the case-insensitive canonical spelling of every
// recognized field to its FieldKind (§4.7). Any name not in this table
// classifies as KindOptional.
var knownFieldNames = map[string]FieldKind{
	"date":              KindDate,
	"from":              KindFrom,
	"sender":            KindSender,
	"reply-to":          KindReplyTo,
	"to":                KindTo,
	"cc":                KindCc,
	"bcc":               KindBcc,
	"message-id":        KindMessageID,
	"in-reply-to":       KindInReplyTo,
	"references":        KindReferences,
	"subject":           KindSubject,
	"comments":          KindComments,
	"keywords":          KindKeywords,
	"return-path":       KindReturnPath,
	"received":          KindReceived,
	"resent-date":       KindResentDate,
	"resent-from":       KindResentFrom,
	"resent-sender":     KindResentSender,
	"resent-to":         KindResentTo,
	"resent-cc":         KindResentCc,
	"resent-bcc":        KindResentBcc,
	"resent-reply-to":   KindResentReplyTo,
	"resent-message-id": KindResentMessageID,
	"mime-version":      KindMIMEVersion,
	"content-type":      KindContentType,
}

// Field is one tokenized header record: a classified kind, the name bytes
// as they appeared in the source (preserved for Optional and for
// round-tripping), and the raw value bytes from just after the colon up to
// and including the terminating CRLF. Structured decoding happens later,
// lazily, via the Field view decoders in fields.go, which strip that CRLF.
type Field struct {
	Kind FieldKind
	Name string
	Raw  []byte
}

// readHeader tokenizes the header block starting at the scanner's cursor.
// It does not interpret field values; it only splits the input into
// (name, raw-value) records, following §4.7's algorithm: a field-name run
// of FTEXT, a colon, then raw value bytes up to and including the first
// CRLF that isn't immediately followed by WSP — that CRLF is the one that
// terminates this field, and any earlier CRLF-WSP sequence in the captured
// bytes is a fold, not a terminator.
//
// Returns the tokenized fields and the scanner position immediately after
// the header-terminating blank line (i.e. where the body, if any, begins).
// A malformed field line fails fast with ErrMalformedHeader; the tokenizer
// never attempts resynchronization. Running off the end of the buffer
// before a blank line is reached is not itself an error here — a
// complete-buffer caller (ParseMessage) treats that as the header simply
// having no body; a streaming caller (stream.go) calls tokenizeHeader
// directly to tell the two cases apart and ask for more bytes instead.
func readHeader(s *scanner) ([]Field, int, error) {
	fields, bodyStart, _, err := tokenizeHeader(s)
	return fields, bodyStart, err
}

// tokenizeHeader is readHeader's core loop, additionally reporting whether
// the header-terminating blank line was actually found (terminated=true)
// as opposed to the scanner simply running out of bytes first
// (terminated=false, bodyStart==len(buf)).
func tokenizeHeader(s *scanner) (fields []Field, bodyStart int, terminated bool, err error) {
	skipBOM(s)

	for {
		if s.crlf() {
			log.Printf("imf: tokenized header with %d field(s)", len(fields))
			return fields, s.pos, true, nil
		}
		if s.atEnd() {
			log.Printf("imf: tokenized header with %d field(s), unterminated", len(fields))
			return fields, s.pos, false, nil
		}

		// mbox tolerance: a literal "From " at a field boundary is the
		// mbox delivery separator, not a field; skip the whole line.
		if s.presentExact("From ") {
			for !s.atEnd() && !s.peekIsCRLF() {
				s.pos++
			}
			s.crlf()
			continue
		}

		run, ok := s.acceptRun(isFtext)
		if !ok {
			return nil, 0, false, newParseError(s.pos, ErrMalformedHeader, "expected field-name")
		}
		name := run.String()

		// obsolete tolerance: WSP may appear between field-name and colon
		s.acceptRun(isWSP)
		if !s.present(':') {
			return nil, 0, false, newParseError(s.pos, ErrMalformedHeader, "expected ':' after field-name")
		}

		valueStart := s.pos
		for {
			if s.atEnd() {
				break
			}
			if s.peekIsCRLF() && !s.foldFollows() {
				s.crlf()
				break
			}
			s.pos++
		}
		raw := s.buf[valueStart:s.pos]

		kind := KindOptional
		if k, known := knownFieldNames[lowerASCII(name)]; known {
			kind = k
		}

		fields = append(fields, Field{Kind: kind, Name: name, Raw: raw})
	}
}

// skipBOM consumes a leading UTF-8 byte-order mark, a tolerance real mail
// stores occasionally add ahead of the header block.
func skipBOM(s *scanner) {
	if s.pending() >= 3 && s.buf[s.pos] == 0xEF && s.buf[s.pos+1] == 0xBB && s.buf[s.pos+2] == 0xBF {
		s.pos += 3
	}
}

// peekIsCRLF reports whether the cursor sits exactly on a CR LF pair.
func (s *scanner) peekIsCRLF() bool {
	c, ok := s.peek()
	if !ok || c != '\r' {
		return false
	}
	n, ok := s.peekAt(1)
	return ok && n == '\n'
}

// foldFollows reports whether the CRLF at the cursor is immediately
// followed by WSP, making it a fold point rather than a field terminator.
func (s *scanner) foldFollows() bool {
	c, ok := s.peekAt(2)
	return ok && isWSP(c)
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
