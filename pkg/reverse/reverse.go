// Package reverse reverses strings by a chosen unit: bytes, runes or
// combining character sequences.
package reverse

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

var ErrUnknownUnit = errors.New("unknown reversal unit")

// Unit is the element a string is split into before being reversed.
type Unit int

const (
	// Byte reverses the raw bytes. Multi-byte UTF-8 sequences come out corrupted.
	Byte Unit = iota
	// Rune reverses Unicode code points.
	Rune
	// Cluster reverses combining character sequences, so that combining marks
	// stay attached to the character they modify.
	Cluster
)

var unitNames = map[Unit]string{
	Byte:    "byte",
	Rune:    "rune",
	Cluster: "cluster",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}

	return "unknown"
}

// ParseUnit returns the unit named s, ignoring case.
func ParseUnit(s string) (Unit, error) {
	for u, name := range unitNames {
		if strings.EqualFold(s, name) {
			return u, nil
		}
	}

	return Byte, errors.Wrapf(ErrUnknownUnit, "%q", s)
}

// String returns s with its units in reverse order.
// Unknown units fall back to Byte.
func String(s string, u Unit) string {
	switch u {
	case Rune:
		return runes(s)
	case Cluster:
		return clusters(s)
	default:
		return bytes(s)
	}
}

func bytes(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

// runes keeps invalid UTF-8 bytes as they are, each one being its own unit.
func runes(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for end := len(s); end > 0; {
		_, size := utf8.DecodeLastRuneInString(s[:end])
		sb.WriteString(s[end-size : end])
		end -= size
	}

	return sb.String()
}

// clusters splits s at the boundaries reported by norm.Iter without normalising it,
// so the result holds the same bytes as s.
func clusters(s string) string {
	var segments []string
	var iter norm.Iter
	iter.InitString(norm.NFC, s)
	for pos := 0; !iter.Done(); {
		// Next may normalise the segment; only its length in s is used.
		iter.Next()
		next := iter.Pos()
		segments = append(segments, s[pos:next])
		pos = next
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := len(segments) - 1; i >= 0; i-- {
		sb.WriteString(segments[i])
	}

	return sb.String()
}
