package imf

// maxCommentDepth bounds comment nesting so a pathological input (an
// unterminated run of "(((((...") cannot exhaust the goroutine stack via
// unbounded recursion between comment and cfws. 1000 is far beyond any
// comment nesting seen in real mail (§9).
const maxCommentDepth = 1000

// fws matches folding whitespace: either the modern form (optional run of
// WSP, then a fold, then one-or-more WSP) or the obsolete form (one-or-more
// WSP, then zero-or-more folds each followed by one-or-more WSP). The
// returned range is the whitespace bytes with the folding CRLFs excised —
// folding is transparent to every layer above this one.
func fws(s *scanner) (ByteRange, bool) {
	m := s.mark()

	// Modern: [*WSP CRLF] 1*WSP
	pre, _ := s.acceptRun(isWSP)
	if s.crlf() {
		post, ok := s.acceptRun(isWSP)
		if ok {
			return pre.concat(post.Bytes()), true
		}
	}
	s.restore(m)

	// obs-FWS = 1*WSP *(CRLF 1*WSP)
	first, ok := s.acceptRun(isWSP)
	if !ok {
		s.restore(m)
		return ByteRange{}, false
	}
	out := first
	for {
		inner := s.mark()
		if !s.crlf() {
			break
		}
		more, ok := s.acceptRun(isWSP)
		if !ok {
			s.restore(inner)
			break
		}
		out = out.concat(more.Bytes())
	}
	return out, true
}

// comment = "(" *( [FWS] ccontent ) [FWS] ")"
// ccontent = ctext / quoted-pair / comment
//
// Comments nest to arbitrary depth via ordinary recursive calls; depth is
// tracked and capped at maxCommentDepth. Only consumption matters here —
// nothing in this engine needs the decoded text of a comment, since every
// Field's raw bytes already retain it verbatim (§3 invariants).
func comment(s *scanner, depth int) bool {
	if depth > maxCommentDepth {
		return false
	}
	m := s.mark()
	if !s.present('(') {
		return false
	}
	for {
		fws(s)

		inner := s.mark()
		if _, ok := s.acceptRun(isCtext); ok {
			continue
		}
		s.restore(inner)

		if _, ok := quotedPair(s); ok {
			continue
		}
		s.restore(inner)

		if comment(s, depth+1) {
			continue
		}
		s.restore(inner)
		break
	}
	fws(s)
	if !s.present(')') {
		s.restore(m)
		return false
	}
	return true
}

// cfws matches comment-and/or-folding-whitespace. The greedy choice order
// matters (§4.2): try the repetition-with-trailing-FWS branch first, since
// trying bare FWS first would stop after leading whitespace and never
// attempt the comments that follow it.
func cfws(s *scanner) bool {
	m := s.mark()

	matchedAny := false
	for {
		inner := s.mark()
		fws(s)
		if comment(s, 0) {
			matchedAny = true
			continue
		}
		s.restore(inner)
		break
	}
	if matchedAny {
		fws(s)
		return true
	}
	s.restore(m)

	// bare FWS
	_, ok := fws(s)
	return ok
}
