package format

import "strconv"

// Kind represents the natural formatting category of an argument.
// Every argument is classified into exactly one kind before rendering;
// the type code in a spec may then request a compatible presentation
// (for example a Char formatted with "d" prints its code point).

type Kind int

const (
	KindString Kind = iota
	KindInt
	KindUint
	KindFloat
	KindChar
	KindGeneric
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindUint:
		return "unsigned integer"
	case KindFloat:
		return "float"
	case KindChar:
		return "character"
	case KindGeneric:
		return "generic"
	}
	return "unknown"
}

// Char marks an argument as a single character. Go's rune is an alias
// for int32, so a bare rune argument formats as an integer; wrap it in
// Char to get character semantics instead.
type Char rune

// value is the canonical form of one argument. Only the field matching
// kind is meaningful, except generic values which keep the raw argument.
type value struct {
	kind Kind
	s    string
	i    int64
	u    uint64
	f    float64
	r    rune
	raw  interface{}
}

// classify maps an arbitrary argument onto the closed kind set.
// Booleans and byte slices fold into the string kind; anything without
// a specialized kind becomes generic and is stringified at render time.
func classify(arg interface{}) value {
	switch v := arg.(type) {
	case Char:
		return value{kind: KindChar, r: rune(v)}
	case string:
		return value{kind: KindString, s: v}
	case []byte:
		return value{kind: KindString, s: string(v)}
	case bool:
		return value{kind: KindString, s: strconv.FormatBool(v)}
	case int:
		return value{kind: KindInt, i: int64(v)}
	case int8:
		return value{kind: KindInt, i: int64(v)}
	case int16:
		return value{kind: KindInt, i: int64(v)}
	case int32:
		return value{kind: KindInt, i: int64(v)}
	case int64:
		return value{kind: KindInt, i: v}
	case uint:
		return value{kind: KindUint, u: uint64(v)}
	case uint8:
		return value{kind: KindUint, u: uint64(v)}
	case uint16:
		return value{kind: KindUint, u: uint64(v)}
	case uint32:
		return value{kind: KindUint, u: uint64(v)}
	case uint64:
		return value{kind: KindUint, u: v}
	case uintptr:
		return value{kind: KindUint, u: uint64(v)}
	case float32:
		return value{kind: KindFloat, f: float64(v)}
	case float64:
		return value{kind: KindFloat, f: v}
	default:
		return value{kind: KindGeneric, raw: arg}
	}
}
