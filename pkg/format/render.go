package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Inline diagnostics are highlighted with VT-220 reverse video so they
// stand out from surrounding literal text without corrupting it.
const (
	markBegin = "\x1b[7m"
	markEnd   = "\x1b[27m"
)

func inlineDiagnostic(msg string) string {
	return markBegin + "[" + msg + "]" + markEnd
}

// render dispatches a validated spec and classified value to the
// matching presentation. It never fails; value-dependent problems are
// rendered as inline diagnostics.
func render(out *strings.Builder, sp Spec, v value) {
	switch v.kind {
	case KindString:
		renderString(out, sp, v.s)
	case KindChar:
		renderOrdinal(out, sp, int64(v.r))
	case KindInt:
		renderInt(out, sp, v.i < 0, intMagnitude(v.i))
	case KindUint:
		renderInt(out, sp, false, v.u)
	case KindFloat:
		renderFloat(out, sp, v.f)
	case KindGeneric:
		renderGeneric(out, sp, v.raw)
	}
}

// renderString truncates to the precision (counted in runes, not
// bytes) and pads to the width.
func renderString(out *strings.Builder, sp Spec, s string) {
	if sp.HasPrecision {
		s = truncateRunes(s, sp.Precision)
	}
	pad(out, sp, s, false, false)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i, count := 0, 0
	for count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i]
}

// renderOrdinal handles the character kind: itself under the default,
// "c" or "s" types, its code point under the integer types.
func renderOrdinal(out *strings.Builder, sp Spec, ord int64) {
	switch sp.Type {
	case 'd', 'o', 'x', 'X':
		renderInt(out, sp, ord < 0, intMagnitude(ord))
	default:
		renderCodePoint(out, sp, ord < 0, intMagnitude(ord))
	}
}

// renderCodePoint writes the character an ordinal denotes. An ordinal
// that is not a valid code point (negative, past MaxRune, or a
// surrogate) renders as its marked decimal value instead.
func renderCodePoint(out *strings.Builder, sp Spec, neg bool, mag uint64) {
	if neg || mag > utf8.MaxRune || !utf8.ValidRune(rune(mag)) {
		body := applySign(sp, neg) + strconv.FormatUint(mag, 10)
		pad(out, sp, body, true, true)
		return
	}
	if sp.HasPrecision && sp.Precision == 0 {
		pad(out, sp, "", false, false)
		return
	}
	pad(out, sp, string(rune(mag)), false, false)
}

func intMagnitude(v int64) uint64 {
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	return mag
}

// renderInt renders an integer presentation: sign, optional radix
// prefix, magnitude digits. Zero padding goes between the prefix and
// the digits; the width covers the whole field.
func renderInt(out *strings.Builder, sp Spec, neg bool, mag uint64) {
	switch sp.Type {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		f := float64(mag)
		if neg {
			f = -f
		}
		renderFloat(out, sp, f)
		return
	case 'c':
		renderCodePoint(out, sp, neg, mag)
		return
	}

	var sb strings.Builder
	sb.WriteString(applySign(sp, neg))
	base := 10
	switch sp.Type {
	case 'o':
		base = 8
		if sp.Alternate {
			sb.WriteString("0o")
		}
	case 'x':
		base = 16
		if sp.Alternate {
			sb.WriteString("0x")
		}
	case 'X':
		base = 16
		if sp.Alternate {
			sb.WriteString("0X")
		}
	}
	digits := strconv.FormatUint(mag, base)
	if sp.Type == 'X' {
		digits = strings.ToUpper(digits)
	}
	sb.WriteString(digits)
	pad(out, sp, sb.String(), true, false)
}

func applySign(sp Spec, neg bool) string {
	if neg {
		return "-"
	}
	if sp.Sign != '-' {
		return string(sp.Sign)
	}
	return ""
}

// renderFloat renders the e/f/g families and their uppercase variants.
// The default precision is 6; a missing type code behaves as "g".
// Magnitude conversion is delegated to strconv, which rounds ties to
// even; NaN and infinities print as "nan" and "inf".
func renderFloat(out *strings.Builder, sp Spec, val float64) {
	typ := sp.Type
	if typ == 0 {
		typ = 'g'
	}
	lower := typ | 0x20 // ASCII lowercase

	neg := math.Signbit(val) && !math.IsNaN(val)
	mag := math.Abs(val)

	var s string
	switch {
	case math.IsNaN(val):
		s = "nan"
	case math.IsInf(mag, 1):
		s = "inf"
	default:
		prec := 6
		if sp.HasPrecision {
			prec = sp.Precision
		}
		if lower == 'g' && prec == 0 {
			prec = 1
		}
		s = strconv.FormatFloat(mag, lower, prec, 64)
		if sp.Alternate && !strings.Contains(s, ".") {
			if e := strings.IndexByte(s, 'e'); e >= 0 {
				s = s[:e] + "." + s[e:]
			} else {
				s += "."
			}
		}
	}
	if typ >= 'A' && typ <= 'Z' {
		s = strings.ToUpper(s)
	}
	pad(out, sp, applySign(sp, neg)+s, true, false)
}

// renderGeneric stringifies a value that has no specialized kind and
// renders the result as a string. Conversion failures, including
// panics raised by the value's own String or Error method, become
// inline diagnostics; padding does not apply to those.
func renderGeneric(out *strings.Builder, sp Spec, arg interface{}) {
	s, convErr := stringify(arg)
	if convErr != nil {
		out.WriteString(inlineDiagnostic(convErr.Message))
		return
	}
	renderString(out, sp, s)
}

func stringify(arg interface{}) (s string, convErr *Error) {
	defer func() {
		if p := recover(); p != nil {
			s = ""
			convErr = &Error{Code: ErrConversionFailure,
				Message: fmt.Sprintf("%T: %s", p, panicMessage(p))}
		}
	}()
	switch v := arg.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case error:
		return v.Error(), nil
	}
	return "", &Error{Code: ErrConversionFailure, Message: "value of unknown type"}
}

func panicMessage(p interface{}) string {
	switch v := p.(type) {
	case error:
		return v.Error()
	case string:
		return v
	}
	return fmt.Sprintf("%v", p)
}

// pad writes s into out, padded with the fill rune up to the width.
// Width and padding are counted in runes. The "=" alignment inserts the
// padding between the sign/prefix and the digits. A marked field is
// wrapped in the diagnostic highlight.
func pad(out *strings.Builder, sp Spec, s string, numeric, marked bool) {
	if marked {
		out.WriteString(markBegin)
	}
	n := utf8.RuneCountInString(s)
	switch {
	case !sp.HasWidth || sp.Width <= n:
		out.WriteString(s)
	default:
		fill := string(sp.Fill)
		gap := sp.Width - n
		switch sp.Align {
		case '<':
			out.WriteString(s)
			out.WriteString(strings.Repeat(fill, gap))
		case '>':
			out.WriteString(strings.Repeat(fill, gap))
			out.WriteString(s)
		case '^':
			// odd padding puts the extra fill on the right
			out.WriteString(strings.Repeat(fill, gap/2))
			out.WriteString(s)
			out.WriteString(strings.Repeat(fill, gap/2+gap%2))
		case '=':
			lead := 0
			if numeric && (strings.HasPrefix(s, "-") || sp.Sign != '-') {
				lead = 1
			}
			if sp.Alternate && (sp.Type == 'o' || sp.Type == 'x' || sp.Type == 'X') {
				lead += 2
			}
			out.WriteString(s[:lead])
			out.WriteString(strings.Repeat(fill, gap))
			out.WriteString(s[lead:])
		}
	}
	if marked {
		out.WriteString(markEnd)
	}
}
