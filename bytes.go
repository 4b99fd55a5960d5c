package imf

import "bytes"

// ByteRange is either a non-owning view into the original input buffer or
// an owned copy. Grammar productions that cross a folded line boundary, or
// that rebuild a value from pieces (dot-joined atoms, unescaped quoted
// strings, domain literals), materialize owned bytes; other productions
// return views. Both present a uniform interface to callers.
type ByteRange struct {
	data  []byte
	owned bool
}

func viewRange(b []byte) ByteRange { return ByteRange{data: b} }

func ownedRange(b []byte) ByteRange {
	cp := make([]byte, len(b))
	copy(cp, b)
	return ByteRange{data: cp, owned: true}
}

// Bytes returns the underlying byte slice. Callers must not mutate it.
func (r ByteRange) Bytes() []byte { return r.data }

func (r ByteRange) String() string { return string(r.data) }

func (r ByteRange) Len() int { return len(r.data) }

// Owned reports whether this range holds a materialized copy rather than a
// view into the original input (true for any value that crossed a fold).
func (r ByteRange) Owned() bool { return r.owned }

func (r ByteRange) Equal(o ByteRange) bool { return bytes.Equal(r.data, o.data) }

func (r ByteRange) empty() bool { return len(r.data) == 0 }

func wrapOwned(b []byte) ByteRange { return ByteRange{data: b, owned: true} }

// unfoldSpan removes folding CRLFs from a captured source span, leaving the
// WSP that began each continuation line in place. By construction (the
// header tokenizer only ever captures a CRLF that folding permits — see
// readHeader), any CRLF inside a span handed to unfoldSpan is a fold point,
// never a bare line ending, so a blind "\r\n" strip is exact (§8, folding
// transparency).
func unfoldSpan(raw []byte) ByteRange {
	if !bytes.Contains(raw, []byte("\r\n")) {
		return viewRange(raw)
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\r' && i+1 < len(raw) && raw[i+1] == '\n' {
			i++
			continue
		}
		out = append(out, raw[i])
	}
	return wrapOwned(out)
}

// concat appends b to r, producing an owned range. Used whenever a
// production accumulates bytes across a fold or a quoted-pair unescape.
func (r ByteRange) concat(b []byte) ByteRange {
	out := make([]byte, 0, len(r.data)+len(b))
	out = append(out, r.data...)
	out = append(out, b...)
	return ByteRange{data: out, owned: true}
}

// Character classes, each backed by a 256-entry boolean table built once at
// init time from the RFC 5322 / RFC 2045 ranges. A table lookup is a single
// indexed read — cheaper and harder to get subtly wrong than a chain of
// range comparisons repeated at every call site.

var (
	vcharTable       [256]bool
	wspTable         [256]bool
	digitTable       [256]bool
	alphaTable       [256]bool
	atextTable       [256]bool
	ctextTable       [256]bool
	qtextTable       [256]bool
	dtextTable       [256]bool
	ftextTable       [256]bool
	textTable        [256]bool
	obsNoWSCtlTable  [256]bool
	mimeTokenTable   [256]bool
	bcharsNoSpaceTbl [256]bool
)

func setRange(t *[256]bool, lo, hi int) {
	for i := lo; i <= hi && i < 256; i++ {
		t[i] = true
	}
}

func setBytes(t *[256]bool, bs string) {
	for i := 0; i < len(bs); i++ {
		t[bs[i]] = true
	}
}

func init() {
	// VCHAR = %x21-7E
	setRange(&vcharTable, 0x21, 0x7E)

	// WSP = SP / HTAB
	wspTable[' '] = true
	wspTable['\t'] = true

	// DIGIT = %x30-39
	setRange(&digitTable, '0', '9')

	// ALPHA = %x41-5A / %x61-7A
	setRange(&alphaTable, 'A', 'Z')
	setRange(&alphaTable, 'a', 'z')

	// obs-NO-WS-CTL = %d1-8 / %d11 / %d12 / %d14-31 / %d127
	setRange(&obsNoWSCtlTable, 1, 8)
	obsNoWSCtlTable[11] = true
	obsNoWSCtlTable[12] = true
	setRange(&obsNoWSCtlTable, 14, 31)
	obsNoWSCtlTable[127] = true

	// atext = ALPHA / DIGIT / "!" "#" "$" "%" "&" "'" "*" "+" "-" "/" "="
	//         "?" "^" "_" "`" "{" "|" "}" "~"
	for i := 0; i < 256; i++ {
		atextTable[i] = alphaTable[i] || digitTable[i]
	}
	setBytes(&atextTable, "!#$%&'*+-/=?^_`{|}~")

	// ctext = NO-WS-CTL / %d33-39 / %d42-91 / %d93-126
	for i := 0; i < 256; i++ {
		ctextTable[i] = obsNoWSCtlTable[i]
	}
	setRange(&ctextTable, 33, 39)
	setRange(&ctextTable, 42, 91)
	setRange(&ctextTable, 93, 126)

	// qtext = NO-WS-CTL / %d33 / %d35-91 / %d93-126
	for i := 0; i < 256; i++ {
		qtextTable[i] = obsNoWSCtlTable[i]
	}
	qtextTable[33] = true
	setRange(&qtextTable, 35, 91)
	setRange(&qtextTable, 93, 126)

	// dtext = NO-WS-CTL / %d33-90 / %d94-126
	for i := 0; i < 256; i++ {
		dtextTable[i] = obsNoWSCtlTable[i]
	}
	setRange(&dtextTable, 33, 90)
	setRange(&dtextTable, 94, 126)

	// ftext = printable US-ASCII excluding ":" (field-name body)
	for i := 0; i < 256; i++ {
		ftextTable[i] = vcharTable[i]
	}
	ftextTable[':'] = false

	// text = %d1-9 / %d11 / %d12 / %d14-127 / obs-text
	setRange(&textTable, 1, 9)
	textTable[11] = true
	textTable[12] = true
	setRange(&textTable, 14, 127)

	// MIME token = 1*<any CHAR except SPACE, CTLs, or tspecials>
	for i := 0; i < 256; i++ {
		mimeTokenTable[i] = i > 32 && i < 127
	}
	for _, c := range []byte("()<>@,;:\\\"/[]?=") {
		mimeTokenTable[c] = false
	}

	// bchars (RFC 2046 multipart boundary alphabet) minus SPACE
	for i := 0; i < 256; i++ {
		bcharsNoSpaceTbl[i] = digitTable[i] || alphaTable[i]
	}
	setBytes(&bcharsNoSpaceTbl, "'()+_,-./:=?")
}

func isCR(c byte) bool  { return c == '\r' }
func isLF(c byte) bool  { return c == '\n' }
func isWSP(c byte) bool { return wspTable[c] }
func isVChar(c byte) bool { return vcharTable[c] }
func isDigit(c byte) bool { return digitTable[c] }
func isAlpha(c byte) bool { return alphaTable[c] }
func isAtext(c byte) bool { return atextTable[c] }
func isCtext(c byte) bool { return ctextTable[c] }
func isQtext(c byte) bool { return qtextTable[c] }
func isDtext(c byte) bool { return dtextTable[c] }
func isFtext(c byte) bool { return ftextTable[c] }
func isObsText(c byte) bool { return textTable[c] }
func isObsNoWSCtl(c byte) bool { return obsNoWSCtlTable[c] }
func isMIMEToken(c byte) bool  { return mimeTokenTable[c] }

// IsBoundaryChar reports whether c belongs to RFC 2046's bchars alphabet
// minus space — used to sanity-check a Content-Type "boundary" parameter
// when it appears unquoted.
func IsBoundaryChar(c byte) bool { return bcharsNoSpaceTbl[c] }
