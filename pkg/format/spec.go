package format

import (
	"strconv"
	"unicode/utf8"
)

// argAuto marks a spec whose argument index is assigned from the
// scanner's auto-increment counter.
const argAuto = -1

// Spec is the parsed form of one substitution field.
//
// The grammar, order-sensitive:
//
//	[[fill]align][sign][#][0][width][.precision][type]
//	align: '<' | '>' | '^' | '='
//	sign:  '+' | '-' | ' '
//	type:  's' 'c' 'd' 'o' 'x' 'X' 'e' 'E' 'f' 'F' 'g' 'G'
//
// A fill character is only recognized when immediately followed by an
// alignment option. Align stays zero when the spec gave none; validate
// fills in the kind-dependent default.
type Spec struct {
	ArgIndex     int
	Fill         rune
	Align        byte
	Sign         byte
	Alternate    bool
	ZeroPad      bool
	Width        int
	HasWidth     bool
	Precision    int
	HasPrecision bool
	Type         byte
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

func isTypeCode(c byte) bool {
	switch c {
	case 's', 'c', 'd', 'o', 'x', 'X', 'e', 'E', 'f', 'F', 'g', 'G':
		return true
	}
	return false
}

// countDigits returns the length of the leading run of decimal digits.
func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// parseSpec parses the text after the ':' of a field into a Spec.
// The returned error carries the spec text; the scanner adds field and
// offset context.
func parseSpec(text string) (Spec, *Error) {
	sp := Spec{ArgIndex: argAuto, Fill: ' ', Sign: '-'}
	s := text

	// [[fill]align] -- the fill is identified by the align char after it
	if s != "" {
		r0, n0 := utf8.DecodeRuneInString(s)
		r1, n1 := utf8.DecodeRuneInString(s[n0:])
		switch {
		case n1 > 0 && isAlign(r1):
			if r0 == '{' || r0 == '}' {
				return sp, specError(ErrSyntax, text, "fill character %q not allowed", r0)
			}
			sp.Fill, sp.Align = r0, byte(r1)
			s = s[n0+n1:]
		case isAlign(r0):
			sp.Align = byte(r0)
			s = s[n0:]
		}
	}

	// sign, alternate form, and zero pad may not appear in any other order
	if s != "" && (s[0] == '+' || s[0] == '-' || s[0] == ' ') {
		sp.Sign = s[0]
		s = s[1:]
	}
	if s != "" && s[0] == '#' {
		sp.Alternate = true
		s = s[1:]
	}
	if s != "" && s[0] == '0' {
		sp.ZeroPad = true
		s = s[1:]
	}

	if n := countDigits(s); n > 0 {
		w, err := strconv.Atoi(s[:n])
		if err != nil {
			return sp, specError(ErrSyntax, text, "width %q out of range", s[:n])
		}
		sp.Width, sp.HasWidth = w, true
		s = s[n:]
	}

	if s != "" && s[0] == '.' {
		s = s[1:]
		n := countDigits(s)
		if n == 0 {
			return sp, specError(ErrSyntax, text, "precision requires digits after '.'")
		}
		p, err := strconv.Atoi(s[:n])
		if err != nil {
			return sp, specError(ErrSyntax, text, "precision %q out of range", s[:n])
		}
		sp.Precision, sp.HasPrecision = p, true
		s = s[n:]
	}

	if s != "" && isTypeCode(s[0]) {
		sp.Type = s[0]
		s = s[1:]
	}
	if s != "" {
		return sp, specError(ErrSyntax, text, "unexpected %q", s)
	}
	return sp, nil
}
