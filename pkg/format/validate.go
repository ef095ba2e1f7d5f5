package format

// presentation is the rendering family a spec/kind pair resolves to
// after coercions. A character formatted with "x" renders as an
// integer; an integer formatted with "e" renders as a float.
type presentation int

const (
	presString presentation = iota
	presChar
	presInt
	presFloat
)

func presentationFor(k Kind, typ byte) presentation {
	switch k {
	case KindChar:
		switch typ {
		case 'd', 'o', 'x', 'X':
			return presInt
		}
		return presChar
	case KindInt, KindUint:
		switch typ {
		case 'c':
			return presChar
		case 'e', 'E', 'f', 'F', 'g', 'G':
			return presFloat
		}
		return presInt
	case KindFloat:
		return presFloat
	}
	return presString
}

func typeAllowed(k Kind, typ byte) bool {
	if typ == 0 {
		return true
	}
	switch k {
	case KindString, KindGeneric:
		return typ == 's'
	case KindChar:
		switch typ {
		case 'c', 's', 'd', 'o', 'x', 'X':
			return true
		}
	case KindInt, KindUint:
		switch typ {
		case 'd', 'o', 'x', 'X', 'c', 'e', 'E', 'f', 'F', 'g', 'G':
			return true
		}
	case KindFloat:
		switch typ {
		case 'e', 'E', 'f', 'F', 'g', 'G':
			return true
		}
	}
	return false
}

// validate enforces the cross-field rules for a spec against the kind
// of the argument it applies to, then fills in the kind-dependent
// defaults (alignment, zero-pad fill). The returned Spec is the one the
// renderers consume.
func validate(sp Spec, k Kind) (Spec, *Error) {
	if !typeAllowed(k, sp.Type) {
		return sp, specError(ErrInvalidCombination, "",
			"type code %q not valid for %s argument", string(sp.Type), k)
	}
	if sp.ZeroPad && sp.Align != 0 {
		return sp, specError(ErrInvalidCombination, "",
			"zero padding conflicts with explicit %q alignment", string(sp.Align))
	}

	pres := presentationFor(k, sp.Type)
	switch pres {
	case presString, presChar:
		if sp.Sign == '+' || sp.Sign == ' ' {
			return sp, specError(ErrInvalidCombination, "",
				"sign not allowed with %s presentation", k)
		}
		if sp.Alternate {
			return sp, specError(ErrInvalidCombination, "",
				"alternate form not allowed with %s presentation", k)
		}
		if sp.ZeroPad {
			return sp, specError(ErrInvalidCombination, "",
				"zero padding not allowed with %s presentation", k)
		}
		if sp.Align == '=' {
			return sp, specError(ErrInvalidCombination, "",
				"'=' alignment not allowed with %s presentation", k)
		}
	case presInt:
		if sp.HasPrecision {
			return sp, specError(ErrInvalidCombination, "",
				"precision not allowed with integer presentation")
		}
	case presFloat:
		if sp.Alternate && (sp.Type == 'g' || sp.Type == 'G' || sp.Type == 0) {
			return sp, specError(ErrInvalidCombination, "",
				"alternate form not allowed with general float presentation")
		}
	}

	if sp.ZeroPad {
		sp.Align, sp.Fill = '=', '0'
	}
	if sp.Align == 0 {
		if pres == presInt || pres == presFloat {
			sp.Align = '>'
		} else {
			sp.Align = '<'
		}
	}
	return sp, nil
}
