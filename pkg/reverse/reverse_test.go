package reverse_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-linereverser/pkg/reverse"
)

func TestString(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		unit     reverse.Unit
		expected string
	}{
		"empty":                   {input: "", unit: reverse.Byte, expected: ""},
		"single":                  {input: "a", unit: reverse.Byte, expected: "a"},
		"hello":                   {input: "hello", unit: reverse.Byte, expected: "olleh"},
		"palindrome":              {input: "racecar", unit: reverse.Byte, expected: "racecar"},
		"carriage return":         {input: "ab\r", unit: reverse.Byte, expected: "\rba"},
		"bytes split utf8":        {input: "\u00e9", unit: reverse.Byte, expected: "\xa9\xc3"},
		"runes keep utf8":         {input: "h\u00e9llo", unit: reverse.Rune, expected: "oll\u00e9h"},
		"runes split combining":   {input: "e\u0301a", unit: reverse.Rune, expected: "a\u0301e"},
		"clusters keep combining": {input: "e\u0301a", unit: reverse.Cluster, expected: "ae\u0301"},
		"clusters ascii":          {input: "hello", unit: reverse.Cluster, expected: "olleh"},
		"runes invalid utf8":      {input: "a\xffb", unit: reverse.Rune, expected: "b\xffa"},
		"unknown unit is byte":    {input: "ab", unit: reverse.Unit(42), expected: "ba"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, reverse.String(tc.input, tc.unit))
		})
	}
}

func TestStringProperties(t *testing.T) {
	t.Parallel()

	wellFormed := []string{"", "hello", "racecar", "abc def", "h\u00e9llo w\u00f6rld", "cafe\u0301 na\u0308ive", "\u65e5\u672c\u8a9e", "a\tb\r"}
	invalidUTF8 := []string{"\xac\x82\xe2", "a\xffb", "\xe2\x82"}
	leadingNonStarter := []string{"\u0301a", "\u0308\u0301xy"}

	tcs := map[string]struct {
		unit       reverse.Unit
		involution []string
		other      []string
	}{
		"byte":    {unit: reverse.Byte, involution: append(append(append([]string{}, wellFormed...), invalidUTF8...), leadingNonStarter...)},
		"rune":    {unit: reverse.Rune, involution: append(append([]string{}, wellFormed...), leadingNonStarter...), other: invalidUTF8},
		"cluster": {unit: reverse.Cluster, involution: wellFormed, other: append(append([]string{}, invalidUTF8...), leadingNonStarter...)},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, input := range tc.involution {
				got := reverse.String(input, tc.unit)
				assert.Equal(t, input, reverse.String(got, tc.unit), "involution of %q", input)
			}
			for _, input := range append(append([]string{}, tc.involution...), tc.other...) {
				got := reverse.String(input, tc.unit)
				assert.Len(t, got, len(input), "length of %q", input)
				assert.Equal(t, sortedBytes(input), sortedBytes(got), "bytes of %q", input)
			}
		})
	}
}

func TestStringOutsideInvolutionDomain(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		unit  reverse.Unit
		once  string
	}{
		"invalid bytes form a rune":    {input: "\xac\x82\xe2", unit: reverse.Rune, once: "\u20ac"},
		"leading mark joins last base": {input: "\u0301a", unit: reverse.Cluster, once: "a\u0301"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			once := reverse.String(tc.input, tc.unit)
			assert.Equal(t, tc.once, once)
			assert.Equal(t, once, reverse.String(once, tc.unit))
			assert.Equal(t, tc.input, reverse.String(once, reverse.Byte), "byte reversal restores %q", tc.input)
		})
	}
}

func sortedBytes(s string) []byte {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })

	return b
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		expected reverse.Unit
	}{
		"byte":       {input: "byte", expected: reverse.Byte},
		"rune":       {input: "rune", expected: reverse.Rune},
		"cluster":    {input: "cluster", expected: reverse.Cluster},
		"upper case": {input: "RUNE", expected: reverse.Rune},
		"mixed case": {input: "Cluster", expected: reverse.Cluster},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := reverse.ParseUnit(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.expected.String(), got.String())
		})
	}
}

func TestParseUnitUnknown(t *testing.T) {
	t.Parallel()

	_, err := reverse.ParseUnit("grapheme")
	require.Error(t, err)
	assert.ErrorIs(t, err, reverse.ErrUnknownUnit)
	assert.Equal(t, "unknown", reverse.Unit(-1).String())
}
