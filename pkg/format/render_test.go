package format

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStrings(t *testing.T) {
	table := []struct {
		tmpl string
		arg  interface{}
		want string
	}{
		{"{}", "hello", "hello"},
		{"{:s}", "hello", "hello"},
		{"{:>5}", "x", "    x"},
		{"{:<5}", "x", "x    "},
		{"{:^5}", "x", "  x  "},
		{"{:^6}", "x", "  x   "}, // extra fill goes right
		{"{:*^7}", "abc", "**abc**"},
		{"{:.2}", "hello", "he"},
		{"{:5.2}", "hello", "he   "},
		{"{:6}", "héllo", "héllo "}, // width counts runes
		{"{:.3}", "héllo", "hél"},
		{"{:3}", "hello", "hello"}, // width never truncates
		{"{}", []byte("raw"), "raw"},
		{"{}", true, "true"},
		{"{:>6}", false, " false"},
	}
	for _, cs := range table {
		got, err := Format(cs.tmpl, cs.arg)
		require.NoError(t, err, "%s %% %v", cs.tmpl, cs.arg)
		assert.Equal(t, cs.want, got, "%s %% %v", cs.tmpl, cs.arg)
	}
}

func TestRenderIntegers(t *testing.T) {
	table := []struct {
		tmpl string
		arg  interface{}
		want string
	}{
		{"{}", 42, "42"},
		{"{}", -7, "-7"},
		{"{:d}", 42, "42"},
		{"{:+d}", 5, "+5"},
		{"{:+d}", -5, "-5"},
		{"{: d}", 5, " 5"},
		{"{:-d}", 5, "5"},
		{"{:x}", 255, "ff"},
		{"{:X}", 255, "FF"},
		{"{:#x}", 255, "0xff"},
		{"{:#X}", 255, "0XFF"},
		{"{:o}", 8, "10"},
		{"{:#o}", 8, "0o10"},
		{"{:#o}", 0, "0o0"},
		{"{:08d}", -42, "-0000042"},
		{"{:+08d}", 42, "+0000042"},
		{"{: 06d}", 42, " 00042"},
		{"{:#010x}", 255, "0x000000ff"},
		{"{:=8d}", -42, "-     42"},
		{"{:^6d}", 42, "  42  "},
		{"{:6d}", 42, "    42"},
		{"{:+d}", uint(7), "+7"},
		{"{:d}", uint64(math.MaxUint64), "18446744073709551615"},
		{"{:d}", int64(math.MinInt64), "-9223372036854775808"},
		{"{:x}", int64(math.MinInt64), "-8000000000000000"},
		{"{:c}", 97, "a"},
		{"{:c}", 0x1F600, "😀"},
		{"{:d}", Char('a'), "97"},
		{"{:x}", Char('\n'), "a"},
		{"{}", Char('a'), "a"},
		{"{:>3c}", 97, "  a"},
		// integers coerced to float presentations
		{"{:e}", 5, "5.000000e+00"},
		{"{:f}", 5, "5.000000"},
		{"{:g}", 5, "5"},
	}
	for _, cs := range table {
		got, err := Format(cs.tmpl, cs.arg)
		require.NoError(t, err, "%s %% %v", cs.tmpl, cs.arg)
		assert.Equal(t, cs.want, got, "%s %% %v", cs.tmpl, cs.arg)
	}
}

func TestInvalidCodePoints(t *testing.T) {
	// ordinals that are not code points render as a highlighted
	// decimal instead of a replacement character, in both contracts
	table := []struct {
		tmpl string
		arg  interface{}
		want string
	}{
		{"{:c}", 0x110000, "\x1b[7m1114112\x1b[27m"},
		{"{:c}", -1, "\x1b[7m-1\x1b[27m"},
		{"{:c}", uint(0xD800), "\x1b[7m55296\x1b[27m"},
		{"{}", Char(0xD800), "\x1b[7m55296\x1b[27m"},
		{"{:>6}", Char(0xDFFF), "\x1b[7m 57343\x1b[27m"},
	}
	for _, cs := range table {
		got, err := Format(cs.tmpl, cs.arg)
		require.NoError(t, err, "%s %% %v", cs.tmpl, cs.arg)
		assert.Equal(t, cs.want, got, "%s %% %v", cs.tmpl, cs.arg)

		lenient, err := (&Formatter{Lenient: true}).Format(cs.tmpl, cs.arg)
		require.NoError(t, err, "%s %% %v", cs.tmpl, cs.arg)
		assert.Equal(t, cs.want, lenient, "%s %% %v", cs.tmpl, cs.arg)
	}
}

func TestRenderFloats(t *testing.T) {
	table := []struct {
		tmpl string
		arg  float64
		want string
	}{
		{"{:f}", 2.5, "2.500000"},
		{"{:.2f}", 2.5, "2.50"},
		{"{:.0f}", 5.0, "5"},
		{"{:#.0f}", 5.0, "5."},
		{"{:e}", 2.5, "2.500000e+00"},
		{"{:E}", 2.5, "2.500000E+00"},
		{"{:g}", 2.5, "2.5"},
		{"{}", 2.5, "2.5"},
		{"{}", -2.5, "-2.5"},
		{"{:g}", 0.0625, "0.0625"},
		{"{:g}", 1048576.0, "1.04858e+06"},
		{"{:G}", 1048576.0, "1.04858E+06"},
		{"{:.3g}", 1234.0, "1.23e+03"},
		{"{:g}", 100000.0, "100000"},
		{"{:12.4f}", -2.25, "     -2.2500"},
		{"{:012.4f}", -2.25, "-000002.2500"},
		{"{:+.2f}", 2.25, "+2.25"},
		{"{: .2f}", 2.25, " 2.25"},
		{"{:f}", math.Inf(1), "inf"},
		{"{:+f}", math.Inf(1), "+inf"},
		{"{:F}", math.Inf(-1), "-INF"},
		{"{:f}", math.NaN(), "nan"},
		{"{:E}", math.Inf(1), "INF"},
	}
	for _, cs := range table {
		got, err := Format(cs.tmpl, cs.arg)
		require.NoError(t, err, "%s %% %v", cs.tmpl, cs.arg)
		assert.Equal(t, cs.want, got, "%s %% %v", cs.tmpl, cs.arg)
	}
}

func TestWidthNeverTruncates(t *testing.T) {
	specs := []string{"{:>4}", "{:<4}", "{:^4}", "{:*^9}", "{:12}"}
	args := []interface{}{"", "x", "longer than width", 0, -123456789, 2.5}
	for _, tmpl := range specs {
		for _, arg := range args {
			got, err := Format(tmpl, arg)
			require.NoError(t, err, "%s %% %v", tmpl, arg)
			sp, perr := parseSpec(tmpl[2 : len(tmpl)-1])
			require.Nil(t, perr)
			assert.GreaterOrEqual(t, utf8.RuneCountInString(got), sp.Width,
				"%s %% %v", tmpl, arg)
		}
	}
}
