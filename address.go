package imf

// Address is the Mailbox/Group sum type RFC 5322's address production
// yields. Exactly one of Mailbox or Group is meaningful, discriminated by
// IsGroup — a flat payload rather than an interface, since the set of
// variants is closed and small (§4.4).
type Address struct {
	IsGroup bool
	Mailbox Mailbox
	Group   Group
}

// Mailbox is a single addr-spec, optionally named.
type Mailbox struct {
	LocalPart   ByteRange
	Domain      ByteRange
	DisplayName ByteRange
	HasDisplay  bool
}

// Group is a named, ordered (possibly empty) collection of mailboxes.
type Group struct {
	DisplayName ByteRange
	Mailboxes   []Mailbox
}

// localPart = dot-atom / quoted-string / obs-local-part
// obs-local-part = word *("." word)
//
// obs-local-part is a strict superset of dot-atom and quoted-string alike
// (a single word is either an atom or a quoted-string), so it is
// implemented directly rather than as a fallback after a stricter attempt.
func localPart(s *scanner) (ByteRange, bool) {
	m := s.mark()
	first, ok := word(s)
	if !ok {
		s.restore(m)
		return ByteRange{}, false
	}
	out := first
	for {
		inner := s.mark()
		if !s.present('.') {
			break
		}
		w, ok := word(s)
		if !ok {
			s.restore(inner)
			break
		}
		out = out.concat([]byte(".")).concat(w.Bytes())
	}
	return out, true
}

// domain = dot-atom / domain-literal / obs-domain
// obs-domain = atom *("." atom)
func domain(s *scanner) (ByteRange, bool) {
	if lit, ok := domainLiteral(s); ok {
		return lit, true
	}
	m := s.mark()
	first, ok := atom(s)
	if !ok {
		s.restore(m)
		return ByteRange{}, false
	}
	out := first
	for {
		inner := s.mark()
		if !s.present('.') {
			break
		}
		a, ok := atom(s)
		if !ok {
			s.restore(inner)
			break
		}
		out = out.concat([]byte(".")).concat(a.Bytes())
	}
	return out, true
}

// domainLiteral = [CFWS] "[" *([FWS] dtext) [FWS] "]" [CFWS]
func domainLiteral(s *scanner) (ByteRange, bool) {
	m := s.mark()
	cfws(s)
	if !s.present('[') {
		s.restore(m)
		return ByteRange{}, false
	}
	out := ownedRange([]byte("["))
	for {
		if ws, ok := fws(s); ok {
			out = out.concat(ws.Bytes())
		}
		run, ok := s.acceptRun(isDtext)
		if !ok {
			break
		}
		out = out.concat(run.Bytes())
	}
	if ws, ok := fws(s); ok {
		out = out.concat(ws.Bytes())
	}
	if !s.present(']') {
		s.restore(m)
		return ByteRange{}, false
	}
	out = out.concat([]byte("]"))
	cfws(s)
	return out, true
}

// addrSpec = local-part "@" domain
func addrSpec(s *scanner) (Mailbox, bool) {
	m := s.mark()
	lp, ok := localPart(s)
	if !ok {
		return Mailbox{}, false
	}
	if !s.present('@') {
		s.restore(m)
		return Mailbox{}, false
	}
	dom, ok := domain(s)
	if !ok {
		s.restore(m)
		return Mailbox{}, false
	}
	return Mailbox{LocalPart: lp, Domain: dom}, true
}

// angleAddr = [CFWS] "<" addr-spec ">" [CFWS]
//
// The obsolete route form (obs-angle-addr = [CFWS] "<" [obs-route]
// addr-spec ">" [CFWS]) is deliberately not accepted: a leading route
// ("@a,@b:") before the addr-spec is rejected rather than silently
// discarded, per the documented choice to treat source routing as
// unsupported input rather than data to drop on the floor.
func angleAddr(s *scanner) (Mailbox, bool) {
	m := s.mark()
	cfws(s)
	if !s.present('<') {
		s.restore(m)
		return Mailbox{}, false
	}
	mb, ok := addrSpec(s)
	if !ok {
		s.restore(m)
		return Mailbox{}, false
	}
	if !s.present('>') {
		s.restore(m)
		return Mailbox{}, false
	}
	cfws(s)
	return mb, true
}

// nameAddr = [display-name] angle-addr
//
// display-name uses the full phrase production (not some narrower
// subset) so that an interior "." in a display name — "Q." in
// "Joe Q. Public" — doesn't terminate the name early (§4.4).
func nameAddr(s *scanner) (Mailbox, bool) {
	m := s.mark()
	name, hasName := phrase(s)
	mb, ok := angleAddr(s)
	if !ok {
		s.restore(m)
		return Mailbox{}, false
	}
	if hasName {
		mb.DisplayName = name
		mb.HasDisplay = true
	}
	return mb, true
}

// mailbox = name-addr / addr-spec
func mailbox(s *scanner) (Mailbox, bool) {
	if mb, ok := nameAddr(s); ok {
		return mb, true
	}
	return addrSpec(s)
}

// group = display-name ":" [mailbox-list / CFWS] ";" [CFWS]
func group(s *scanner) (Group, bool) {
	m := s.mark()
	name, ok := phrase(s)
	if !ok {
		return Group{}, false
	}
	if !s.present(':') {
		s.restore(m)
		return Group{}, false
	}
	var mailboxes []Mailbox
	if list, ok := mailboxList(s); ok {
		mailboxes = list
	} else {
		cfws(s)
	}
	if !s.present(';') {
		s.restore(m)
		return Group{}, false
	}
	cfws(s)
	return Group{DisplayName: name, Mailboxes: mailboxes}, true
}

// address = mailbox / group
//
// group is tried first: a phrase followed by ":" is unambiguously a group,
// and mailbox's own name-addr branch would otherwise consume the phrase as
// a display-name and then fail looking for "<", forcing a needless
// backtrack through the whole phrase on every group.
func address(s *scanner) (Address, bool) {
	if g, ok := group(s); ok {
		return Address{IsGroup: true, Group: g}, true
	}
	if mb, ok := mailbox(s); ok {
		return Address{Mailbox: mb}, true
	}
	return Address{}, false
}

// mailboxList = mailbox *("," mailbox) / obs-mbox-list
// obs-mbox-list = 1*([mailbox] [CFWS] "," [CFWS]) [mailbox]
//
// The obsolete form is a strict superset: it additionally tolerates
// leading commas, empty positions between commas, and trailing CFWS with
// no mailbox at all. Implemented directly as the permissive form; empty
// positions are silently dropped per §4.4's edge-case note.
func mailboxList(s *scanner) ([]Mailbox, bool) {
	var out []Mailbox
	if mb, ok := mailbox(s); ok {
		out = append(out, mb)
	}
	sawComma := false
	for {
		inner := s.mark()
		cfws(s)
		if !s.present(',') {
			s.restore(inner)
			break
		}
		sawComma = true
		cfws(s)
		if mb, ok := mailbox(s); ok {
			out = append(out, mb)
		}
	}
	if len(out) == 0 && !sawComma {
		return nil, false
	}
	return out, true
}

// addressList = address *("," address) / obs-addr-list
// obs-addr-list = 1*([address] [CFWS] "," [CFWS]) [address]
func addressList(s *scanner) ([]Address, bool) {
	var out []Address
	if a, ok := address(s); ok {
		out = append(out, a)
	}
	sawComma := false
	for {
		inner := s.mark()
		cfws(s)
		if !s.present(',') {
			s.restore(inner)
			break
		}
		sawComma = true
		cfws(s)
		if a, ok := address(s); ok {
			out = append(out, a)
		}
	}
	if len(out) == 0 && !sawComma {
		return nil, false
	}
	return out, true
}
