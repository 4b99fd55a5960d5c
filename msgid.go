package imf

// MessageID is the decoded value of a Message-ID, Resent-Message-ID, or an
// entry within In-Reply-To/References. Left and Right hold the two halves
// of the identifier without the angle brackets. A no-fold quote or no-fold
// literal keeps its delimiters, with any quoted-pair unescaped; the
// obsolete forms decode as local-part and domain do.
type MessageID struct {
	Left  ByteRange
	Right ByteRange
}

// noFoldQuote = DQUOTE *(qtext / quoted-pair) DQUOTE
//
// Distinct from quoted-string: no FWS is permitted between quoted
// characters, hence "no-fold" — a msg-id is meant to survive as a single
// unbroken token even across naive line-folding implementations.
func noFoldQuote(s *scanner) (ByteRange, bool) {
	m := s.mark()
	if !s.present('"') {
		return ByteRange{}, false
	}
	out := ownedRange([]byte{'"'})
	for {
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
	if !s.present('"') {
		s.restore(m)
		return ByteRange{}, false
	}
	return out.concat([]byte{'"'}), true
}

// noFoldLiteral = "[" *(dtext / quoted-pair) "]"
func noFoldLiteral(s *scanner) (ByteRange, bool) {
	m := s.mark()
	if !s.present('[') {
		return ByteRange{}, false
	}
	out := ownedRange([]byte{'['})
	for {
		inner := s.mark()
		if run, ok := s.acceptRun(isDtext); ok {
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
	if !s.present(']') {
		s.restore(m)
		return ByteRange{}, false
	}
	return out.concat([]byte{']'}), true
}

// idLeft = dot-atom-text / no-fold-quote / obs-id-left (= local-part)
//
// obs-id-left is a strict superset of dot-atom-text and no-fold-quote
// alike (both are themselves valid local-parts), so trying it directly
// subsumes the other two; no-fold-quote is still tried first since it can
// match characters (internal FWS-free quoted text) obs-id-left's
// word-based grammar would otherwise mis-tokenize.
func idLeft(s *scanner) (ByteRange, bool) {
	if q, ok := noFoldQuote(s); ok {
		return q, true
	}
	return localPart(s)
}

// idRight = dot-atom-text / no-fold-literal / obs-id-right (= domain)
func idRight(s *scanner) (ByteRange, bool) {
	if lit, ok := noFoldLiteral(s); ok {
		return lit, true
	}
	return domain(s)
}

// msgID = [CFWS] "<" id-left "@" id-right ">" [CFWS]
func msgID(s *scanner) (MessageID, bool) {
	m := s.mark()
	cfws(s)
	if !s.present('<') {
		s.restore(m)
		return MessageID{}, false
	}
	left, ok := idLeft(s)
	if !ok {
		s.restore(m)
		return MessageID{}, false
	}
	if !s.present('@') {
		s.restore(m)
		return MessageID{}, false
	}
	right, ok := idRight(s)
	if !ok {
		s.restore(m)
		return MessageID{}, false
	}
	if !s.present('>') {
		s.restore(m)
		return MessageID{}, false
	}
	cfws(s)
	return MessageID{Left: left, Right: right}, true
}

// msgIDList parses *( phrase / msg-id ), used by In-Reply-To and
// References, and returns only the captured MessageIDs — intervening
// phrases (a legacy artifact of some mail clients) are recognized so they
// don't derail the scan, then discarded (§4.6).
func msgIDList(s *scanner) ([]MessageID, bool) {
	var out []MessageID
	for {
		inner := s.mark()
		if id, ok := msgID(s); ok {
			out = append(out, id)
			continue
		}
		s.restore(inner)
		if _, ok := phrase(s); ok {
			continue
		}
		s.restore(inner)
		if cfws(s) {
			continue
		}
		s.restore(inner)
		break
	}
	return out, true
}
