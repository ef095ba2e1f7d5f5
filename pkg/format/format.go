// Package format renders Python-str.format-style templates against a
// positional argument list.
//
// A template is literal text with substitution fields in braces:
//
//	format.Format("{} has {:>4} item(s)", "cart", 12)
//
// Doubled braces escape. Each field is "{argref:spec}" where argref is
// empty (automatic, left to right) or an explicit index; automatic and
// explicit references must not be mixed within one template. The spec
// mini-language controls fill, alignment, sign, radix prefixes, zero
// padding, width, precision and type coercion.
//
// The strict contract fails fast on malformed templates. A lenient
// Formatter instead echoes the offending construct into the output,
// highlighted with reverse-video escapes, and never returns an error.
package format

import (
	"strconv"
	"strings"
)

// Formatter renders templates. The zero value is the strict production
// contract; Lenient switches to inline diagnostics for malformed
// fields and missing arguments.
type Formatter struct {
	Lenient bool
}

// Format renders template against args with the strict contract.
func Format(template string, args ...interface{}) (string, error) {
	var f Formatter
	return f.Format(template, args...)
}

// refMode tracks whether fields reference arguments automatically or
// explicitly; the two schemes cannot be mixed.
type refMode int

const (
	refNone refMode = iota
	refAuto
	refExplicit
)

type scanner struct {
	tmpl    string
	args    []interface{}
	nargs   int
	dryRun  bool
	lenient bool

	out   strings.Builder
	mode  refMode
	auto  int
	field int
}

// Format renders template against args. The error, if any, is always a
// *Error; no partial output is returned alongside one.
func (f *Formatter) Format(template string, args ...interface{}) (string, error) {
	sc := scanner{tmpl: template, args: args, nargs: len(args), lenient: f.Lenient}
	if err := sc.scan(); err != nil {
		return "", err
	}
	return sc.out.String(), nil
}

// Check parses and validates a template against an argument count
// without rendering anything. Rules that depend on argument kinds are
// checked at render time only.
func Check(template string, nargs int) error {
	sc := scanner{tmpl: template, nargs: nargs, dryRun: true}
	if err := sc.scan(); err != nil {
		return err
	}
	return nil
}

func (sc *scanner) scan() *Error {
	t := sc.tmpl
	i := 0
	for i < len(t) {
		switch t[i] {
		case '{':
			if i+1 < len(t) && t[i+1] == '{' {
				sc.out.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(t[i+1:], '}')
			if end < 0 {
				if sc.lenient {
					sc.mark(t[i:])
					return nil
				}
				return sc.errAt(i, &Error{Code: ErrUnbalancedBrace,
					Message: "unclosed '{'"})
			}
			end += i + 1
			body := t[i+1 : end]
			if err := sc.substitute(i, body); err != nil {
				if !sc.lenient {
					return err
				}
				if err.Code == ErrArgumentIndexOutOfRange {
					sc.mark("[missing]")
				} else {
					// a brace inside a bad spec hides the real field
					// end; rescan counting depth so one marked span
					// covers the whole field
					fe := matchingClose(t, i)
					if fe < 0 {
						sc.mark(t[i:])
						return nil
					}
					end = fe
					sc.mark(t[i : end+1])
				}
			}
			sc.field++
			i = end + 1
		case '}':
			if i+1 < len(t) && t[i+1] == '}' {
				sc.out.WriteByte('}')
				i += 2
				continue
			}
			if sc.lenient {
				sc.mark("}")
				i++
				continue
			}
			return sc.errAt(i, &Error{Code: ErrUnbalancedBrace,
				Message: "single '}' in literal text"})
		default:
			j := strings.IndexAny(t[i:], "{}")
			if j < 0 {
				sc.out.WriteString(t[i:])
				i = len(t)
			} else {
				sc.out.WriteString(t[i : i+j])
				i += j
			}
		}
	}
	return nil
}

// substitute handles one field body (the text between the braces).
func (sc *scanner) substitute(offset int, body string) *Error {
	ref, specText := body, ""
	if c := strings.IndexByte(body, ':'); c >= 0 {
		ref, specText = body[:c], body[c+1:]
	}

	idx, err := sc.resolveRef(ref)
	if err != nil {
		return sc.errAt(offset, err)
	}
	if idx >= sc.nargs {
		return sc.errAt(offset, &Error{Code: ErrArgumentIndexOutOfRange,
			Message: "argument index " + strconv.Itoa(idx) + " with " +
				strconv.Itoa(sc.nargs) + " argument(s)"})
	}

	sp, err := parseSpec(specText)
	if err != nil {
		return sc.errAt(offset, err)
	}
	sp.ArgIndex = idx

	if sc.dryRun {
		if sp.ZeroPad && sp.Align != 0 {
			return sc.errAt(offset, specError(ErrInvalidCombination, specText,
				"zero padding conflicts with explicit %q alignment", string(sp.Align)))
		}
		return nil
	}

	v := classify(sc.args[idx])
	sp, err = validate(sp, v.kind)
	if err != nil {
		err.Spec = specText
		return sc.errAt(offset, err)
	}
	render(&sc.out, sp, v)
	return nil
}

// resolveRef turns the argument reference before the ':' into an
// index, enforcing the no-mixing invariant.
func (sc *scanner) resolveRef(ref string) (int, *Error) {
	if ref == "" {
		if sc.mode == refExplicit {
			return 0, &Error{Code: ErrMixedArgumentReferencing,
				Message: "automatic field after explicit index"}
		}
		sc.mode = refAuto
		idx := sc.auto
		sc.auto++
		return idx, nil
	}
	if n := countDigits(ref); n == len(ref) {
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return 0, &Error{Code: ErrSyntax,
				Message: "argument index " + strconv.Quote(ref) + " out of range"}
		}
		if sc.mode == refAuto {
			return 0, &Error{Code: ErrMixedArgumentReferencing,
				Message: "explicit index after automatic field"}
		}
		sc.mode = refExplicit
		return idx, nil
	}
	switch {
	case strings.ContainsAny(ref, ".["):
		return 0, &Error{Code: ErrUnsupportedFeature,
			Message: "attribute or element access " + strconv.Quote(ref)}
	case strings.ContainsRune(ref, '!'):
		return 0, &Error{Code: ErrUnsupportedFeature,
			Message: "conversion flag " + strconv.Quote(ref)}
	case ref == "m":
		return 0, &Error{Code: ErrUnsupportedFeature,
			Message: "errno reference \"m\""}
	}
	return 0, &Error{Code: ErrSyntax,
		Message: "bad argument reference " + strconv.Quote(ref)}
}

// matchingClose finds the close brace matching the open brace at
// start, counting nested depth. Returns -1 when the template ends
// first.
func matchingClose(t string, start int) int {
	depth := 0
	for j := start; j < len(t); j++ {
		switch t[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func (sc *scanner) errAt(offset int, err *Error) *Error {
	err.Field = sc.field
	err.Offset = offset
	return err
}

func (sc *scanner) mark(s string) {
	sc.out.WriteString(markBegin)
	sc.out.WriteString(s)
	sc.out.WriteString(markEnd)
}
