package imf

import "time"

// DateTime is the decoded value of a Date, Resent-Date, or the trailing
// portion of a Received field. Construction validates (year, month, day)
// and (hour, minute, second) explicitly rather than relying on time.Date's
// own auto-normalizing behavior, so an out-of-range field (32 Dec, minute
// 61) is rejected instead of silently rolled forward (§4.5).
type DateTime struct {
	Value time.Time
}

var dayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// dayOfWeek = "Mon" / "Tue" / "Wed" / "Thu" / "Fri" / "Sat" / "Sun"
//
// Case-sensitive: the RFC accepts only the canonical capitalization, not a
// folded match, so presentExact is used rather than presentFold.
func dayOfWeek(s *scanner) (int, bool) {
	for i, name := range dayNames {
		if s.presentExact(name) {
			return i, true
		}
	}
	return 0, false
}

func monthName(s *scanner) (time.Month, bool) {
	for i, name := range monthNames {
		if s.presentExact(name) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

func digitsN(s *scanner, n int) (int, bool) {
	m := s.mark()
	v := 0
	for i := 0; i < n; i++ {
		c, ok := s.acceptByte(isDigit)
		if !ok {
			s.restore(m)
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}

func digitsRun(s *scanner, min, max int) (int, bool) {
	m := s.mark()
	v := 0
	n := 0
	for n < max {
		c, ok := s.acceptByte(isDigit)
		if !ok {
			break
		}
		v = v*10 + int(c-'0')
		n++
	}
	if n < min {
		s.restore(m)
		return 0, false
	}
	return v, true
}

// day = [FWS] 1*2DIGIT [FWS] (the obsolete grammar permits 1 or 2 digits
// and surrounding FWS; the modern grammar is the special case where FWS is
// present and exactly 2 digits are used).
func day(s *scanner) (int, bool) {
	fws(s)
	d, ok := digitsRun(s, 1, 2)
	if !ok {
		return 0, false
	}
	fws(s)
	return d, true
}

// date = day month year
func date(s *scanner) (int, time.Month, int, bool) {
	d, ok := day(s)
	if !ok {
		return 0, 0, 0, false
	}
	mo, ok := monthName(s)
	if !ok {
		return 0, 0, 0, false
	}
	y, ok := yearField(s)
	if !ok {
		return 0, 0, 0, false
	}
	return y, mo, d, true
}

// year = 4*DIGIT / obs-year (2 or 3 digits, or 4+ with surrounding FWS).
// A 2-digit year is promoted by adding 1900, matching the source's
// unconditional rule rather than a windowed "pivot at 50" heuristic.
func yearField(s *scanner) (int, bool) {
	fws(s)
	m := s.mark()
	y, ok := digitsRun(s, 2, 9)
	if !ok {
		s.restore(m)
		return 0, false
	}
	fws(s)
	if y < 100 {
		y += 1900
	}
	return y, true
}

// timeOfDay = hour ":" minute [":" second]
func timeOfDay(s *scanner) (hour, min, sec int, ok bool) {
	m := s.mark()
	h, ok := digitsN(s, 2)
	if !ok {
		return 0, 0, 0, false
	}
	if !s.present(':') {
		s.restore(m)
		return 0, 0, 0, false
	}
	mi, ok := digitsN(s, 2)
	if !ok {
		s.restore(m)
		return 0, 0, 0, false
	}
	se := 0
	if s.present(':') {
		se, ok = digitsN(s, 2)
		if !ok {
			s.restore(m)
			return 0, 0, 0, false
		}
	}
	return h, mi, se, true
}

type obsZone struct {
	name   string
	offset int // seconds east of UTC
}

// obsZones is the obsolete alphabetic timezone alias table (§4.5). Every
// entry is zero or negative: the RFC's obsolete zones were all assigned
// west of UTC by convention, and a bare military single letter is treated
// as unknown and mapped to zero rather than guessed at.
var obsZones = []obsZone{
	{"UT", 0}, {"GMT", 0},
	{"EST", -5 * 3600}, {"EDT", -4 * 3600},
	{"CST", -6 * 3600}, {"CDT", -5 * 3600},
	{"MST", -7 * 3600}, {"MDT", -6 * 3600},
	{"PST", -8 * 3600}, {"PDT", -7 * 3600},
}

// zone = FWS ("+" / "-") 4DIGIT / obs-zone
func zone(s *scanner) (int, bool) {
	m := s.mark()
	fws(s)
	if sign, ok := s.acceptByte(func(c byte) bool { return c == '+' || c == '-' }); ok {
		digits, ok := digitsN(s, 4)
		if !ok {
			s.restore(m)
			return 0, false
		}
		hh := digits / 100
		mm := digits % 100
		off := hh*3600 + mm*60
		if sign == '-' {
			off = -off
		}
		return off, true
	}

	for _, z := range obsZones {
		if s.presentExact(z.name) {
			return z.offset, true
		}
	}
	// any other alphabetic run, including a single military letter, maps
	// to zero per §4.5 — consumed so the production succeeds, but the
	// offset it conveys is unknowable.
	if _, ok := s.acceptRun(isAlpha); ok {
		return 0, true
	}
	s.restore(m)
	return 0, false
}

// dateTime = [day-of-week ","] date FWS time-of-day zone [CFWS]
func dateTime(s *scanner) (DateTime, bool) {
	m := s.mark()
	cfws(s)
	if _, ok := dayOfWeek(s); ok {
		if !s.present(',') {
			s.restore(m)
			return DateTime{}, false
		}
	}
	y, mo, d, ok := date(s)
	if !ok {
		s.restore(m)
		return DateTime{}, false
	}
	hh, mm, ss, ok := timeOfDay(s)
	if !ok {
		s.restore(m)
		return DateTime{}, false
	}
	off, ok := zone(s)
	if !ok {
		s.restore(m)
		return DateTime{}, false
	}
	cfws(s)

	if !validYMD(y, mo, d) || !validHMS(hh, mm, ss) {
		s.restore(m)
		return DateTime{}, false
	}

	loc := time.FixedZone("", off)
	t := time.Date(y, mo, d, hh, mm, ss, 0, loc)
	return DateTime{Value: t}, true
}

func validYMD(y int, mo time.Month, d int) bool {
	if mo < time.January || mo > time.December {
		return false
	}
	if d < 1 {
		return false
	}
	return d <= daysInMonth(y, mo)
}

func daysInMonth(y int, mo time.Month) int {
	// first day of the next month, stepped back one day, reveals the
	// length of mo without hand-maintaining a leap-year table.
	first := time.Date(y, mo+1, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 0, -1)
	return last.Day()
}

func validHMS(h, m, s int) bool {
	return h >= 0 && h <= 23 && m >= 0 && m <= 59 && s >= 0 && s <= 60
}
