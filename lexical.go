package imf

// atomContent matches [CFWS] 1*ATEXT — an atom without its trailing CFWS.
// Split out of atom so phrase can capture a word's content span without the
// whitespace that follows it folded into the result (see phraseWord).
func atomContent(s *scanner) (ByteRange, bool) {
	m := s.mark()
	cfws(s)
	run, ok := s.acceptRun(isAtext)
	if !ok {
		s.restore(m)
		return ByteRange{}, false
	}
	return run, true
}

// atom = [CFWS] 1*ATEXT [CFWS]
func atom(s *scanner) (ByteRange, bool) {
	run, ok := atomContent(s)
	if !ok {
		return ByteRange{}, false
	}
	cfws(s)
	return run, true
}

// dotAtomText = 1*ATEXT *("." 1*ATEXT)
func dotAtomText(s *scanner) (ByteRange, bool) {
	m := s.mark()
	first, ok := s.acceptRun(isAtext)
	if !ok {
		return ByteRange{}, false
	}
	out := first
	for {
		inner := s.mark()
		if !s.present('.') {
			break
		}
		more, ok := s.acceptRun(isAtext)
		if !ok {
			s.restore(inner)
			break
		}
		out = out.concat([]byte(".")).concat(more.Bytes())
	}
	if out.empty() {
		s.restore(m)
		return ByteRange{}, false
	}
	return out, true
}

// dotAtom = [CFWS] dot-atom-text [CFWS]
func dotAtom(s *scanner) (ByteRange, bool) {
	m := s.mark()
	cfws(s)
	text, ok := dotAtomText(s)
	if !ok {
		s.restore(m)
		return ByteRange{}, false
	}
	cfws(s)
	return text, true
}

// quotedPair = ("\" (VCHAR / WSP)) / ("\" obs-qp-char) — the modern form
// requires VCHAR or WSP after the backslash, the obsolete form accepts any
// byte up to 127 (obs-qp = "\" %d0-127 in the source grammar). The
// backslash is semantically invisible: only the escaped byte is returned.
func quotedPair(s *scanner) (byte, bool) {
	m := s.mark()
	if !s.present('\\') {
		return 0, false
	}
	if c, ok := s.acceptByte(func(c byte) bool { return isVChar(c) || isWSP(c) }); ok {
		return c, true
	}
	if c, ok := s.acceptByte(func(c byte) bool { return c <= 127 }); ok {
		return c, true
	}
	s.restore(m)
	return 0, false
}

// quotedStringContent matches [CFWS] DQUOTE *([FWS] qcontent) [FWS] DQUOTE —
// quoted-string without its trailing CFWS. qcontent = qtext / quoted-pair.
//
// The returned range holds the unescaped content between the quotes only;
// the surrounding CFWS and the quote marks themselves are consumed but
// discarded — per §4.3 they are accounted for in how many bytes were
// consumed, not in the returned value. Split out of quotedString for the
// same reason as atomContent: phrase needs the word's content span without
// the whitespace that follows it.
func quotedStringContent(s *scanner) (ByteRange, bool) {
	m := s.mark()
	cfws(s)
	if !s.present('"') {
		s.restore(m)
		return ByteRange{}, false
	}

	out := ownedRange(nil)
	for {
		if ws, ok := fws(s); ok {
			out = out.concat(ws.Bytes())
		}
		inner := s.mark()
		if run, ok := s.acceptRun(isQtext); ok {
			out = out.concat(run.Bytes())
			continue
		}
		s.restore(inner)
		if c, ok := quotedPair(s); ok {
			out = out.concat([]byte{c})
			continue
		}
		s.restore(inner)
		break
	}
	if ws, ok := fws(s); ok {
		out = out.concat(ws.Bytes())
	}
	if !s.present('"') {
		s.restore(m)
		return ByteRange{}, false
	}
	return out, true
}

// quotedString = [CFWS] DQUOTE *([FWS] qcontent) [FWS] DQUOTE [CFWS]
func quotedString(s *scanner) (ByteRange, bool) {
	out, ok := quotedStringContent(s)
	if !ok {
		return ByteRange{}, false
	}
	cfws(s)
	return out, true
}

// word = atom / quoted-string
func word(s *scanner) (ByteRange, bool) {
	if a, ok := atom(s); ok {
		return a, true
	}
	return quotedString(s)
}

// phraseWord is word without the trailing CFWS atom/quotedString otherwise
// consume. phrase needs to know exactly where a word's content ends, so
// that whitespace following the last word — which may belong to whatever
// comes after the phrase, such as the space before "<" in a name-addr — is
// never folded into the captured span. Leading CFWS is still consumed,
// same as word; the obs-phrase loop's own CFWS alternative covers everything
// a word no longer eats on its own.
func phraseWord(s *scanner) (ByteRange, bool) {
	if a, ok := atomContent(s); ok {
		return a, true
	}
	return quotedStringContent(s)
}

// phrase = 1*word / obs-phrase
// obs-phrase = word *(word / "." / CFWS)
//
// obs-phrase is a strict superset of the modern 1*word — any run the modern
// form accepts, the obsolete form accepts identically, since CFWS and "."
// are simply never produced in a modern phrase. Per §4.3 and §4.4 the
// obsolete alternative MUST be tried first to avoid a strict-first parser
// committing to "Joe" and then failing to match "Q." in "Joe Q. Public";
// here that's achieved by implementing the single, more permissive grammar
// directly rather than attempting the strict form and falling back.
//
// Unlike atom or quoted-string, a phrase's value is the display-name the
// caller sees, and that value must preserve the original spacing between
// words (§8's folding-transparency invariant, and the address model's
// requirement that display-name retain the source phrase bytes). Rebuilding
// it from each word's unescaped content would lose the inter-word
// whitespace entirely, so phrase instead captures the raw source span it
// advanced over and only strips fold CRLFs from that span, leaving every
// other byte — including the spaces between words — untouched.
func phrase(s *scanner) (ByteRange, bool) {
	start := s.mark()
	contentEnd, ok := recognizePhraseWords(s)
	if !ok {
		return ByteRange{}, false
	}
	return unfoldSpan(s.buf[start:contentEnd]), true
}

// recognizePhraseWords advances s over the full phrase, including any
// trailing CFWS, but returns the cursor position right after the last byte
// of actual content (the end of the last word or "."), so the caller can
// slice off trailing whitespace the phrase merely passed through rather
// than owns.
func recognizePhraseWords(s *scanner) (int, bool) {
	if _, ok := phraseWord(s); !ok {
		return 0, false
	}
	contentEnd := s.pos
	for {
		inner := s.mark()
		if _, ok := phraseWord(s); ok {
			contentEnd = s.pos
			continue
		}
		s.restore(inner)
		if s.present('.') {
			contentEnd = s.pos
			continue
		}
		s.restore(inner)
		if cfws(s) {
			continue
		}
		s.restore(inner)
		break
	}
	return contentEnd, true
}
