package imf

// decodeMIMEVersion parses "1.0"-style values, tolerating RFC 822 comments
// interleaved anywhere around the digits — comments are consumed and
// discarded, never surfaced (§4.10).
func decodeMIMEVersion(raw []byte) FieldValue[[2]int] {
	body := trimCRLF(raw)
	s := newScanner(body)
	cfws(s)
	major, ok := digitsRun(s, 1, 9)
	if !ok {
		return fieldRaw[[2]int](body)
	}
	cfws(s)
	if !s.present('.') {
		return fieldRaw[[2]int](body)
	}
	cfws(s)
	minor, ok := digitsRun(s, 1, 9)
	if !ok {
		return fieldRaw[[2]int](body)
	}
	cfws(s)
	if !s.atEnd() {
		return fieldRaw[[2]int](body)
	}
	return fieldOk([2]int{major, minor})
}

// contentTypeParam is one attribute=value pair, order preserved as parsed.
type contentTypeParam struct {
	attribute string
	value     string
}

// ContentType is the decoded Content-Type value: a top-level/sub-level
// media type pair plus an ordered list of parameters. Parameter performs
// a case-insensitive lookup by attribute name while preserving the
// original parameter order for anyone who ranges over Parameters
// directly (§4.10).
type ContentType struct {
	Type       string
	Subtype    string
	Parameters []contentTypeParam
}

// Parameter looks up a Content-Type parameter by attribute name
// (case-insensitive), returning its value and whether it was present.
func (c ContentType) Parameter(name string) (string, bool) {
	ln := lowerASCII(name)
	for _, p := range c.Parameters {
		if lowerASCII(p.attribute) == ln {
			return p.value, true
		}
	}
	return "", false
}

// DefaultContentType is the value implied by Content-Type's absence
// (§4.10).
var DefaultContentType = ContentType{Type: "text", Subtype: "plain"}

func mimeToken(s *scanner) (ByteRange, bool) {
	return s.acceptRun(isMIMEToken)
}

// mimeParamValue = token / quoted-string
func mimeParamValue(s *scanner) (ByteRange, bool) {
	if v, ok := mimeToken(s); ok {
		return v, true
	}
	return quotedString(s)
}

func decodeContentType(raw []byte) FieldValue[ContentType] {
	body := trimCRLF(raw)
	s := newScanner(body)
	cfws(s)
	top, ok := mimeToken(s)
	if !ok {
		return fieldRaw[ContentType](body)
	}
	if !s.present('/') {
		return fieldRaw[ContentType](body)
	}
	sub, ok := mimeToken(s)
	if !ok {
		return fieldRaw[ContentType](body)
	}
	ct := ContentType{Type: top.String(), Subtype: sub.String()}

	for {
		cfws(s)
		if !s.present(';') {
			break
		}
		cfws(s)
		attr, ok := mimeToken(s)
		if !ok {
			return fieldRaw[ContentType](body)
		}
		cfws(s)
		if !s.present('=') {
			return fieldRaw[ContentType](body)
		}
		cfws(s)
		val, ok := mimeParamValue(s)
		if !ok {
			return fieldRaw[ContentType](body)
		}
		ct.Parameters = append(ct.Parameters, contentTypeParam{
			attribute: attr.String(),
			value:     val.String(),
		})
	}
	cfws(s)
	if !s.atEnd() {
		return fieldRaw[ContentType](body)
	}
	return fieldOk(ct)
}
