package cargu

import (
	"strings"

	"github.com/pkg/errors"
)

// Style selects the command line quoting convention used when tokens are
// flattened into a single string.
type Style int

const (
	// StyleWindows follows the argv splitting rules of the Windows C runtime
	// (CommandLineToArgvW).
	StyleWindows Style = iota
	// StyleUnix is declared but not implemented.
	StyleUnix
)

func (s Style) String() string {
	switch s {
	case StyleWindows:
		return "windows"
	case StyleUnix:
		return "unix"
	default:
		return "unknown"
	}
}

// Escape encodes a single token using the given style.
func Escape(style Style, s string) (string, error) {
	switch style {
	case StyleWindows:
		return EscapeWindows(s)
	default:
		return "", errors.Wrapf(ErrNotSupported, "%s escaping", style)
	}
}

// Join escapes every token and joins them with single spaces.
func Join(style Style, tokens []string) (string, error) {
	sb := strings.Builder{}
	for i, t := range tokens {
		e, err := Escape(style, t)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e)
	}
	return sb.String(), nil
}

// EscapeWindows quotes s so that the Windows C runtime splits it back into
// exactly s. Tokens without quotes, tabs, spaces or backslashes are returned
// unchanged; the empty string becomes "". Strings containing NUL fail with
// ErrCannotRoundtrip.
//
// Inside the quotes a run of backslashes is doubled only when it is followed
// by a double quote or by the closing quote.
func EscapeWindows(s string) (string, error) {
	if s == "" {
		return `""`, nil
	}
	if strings.IndexByte(s, 0) >= 0 {
		return "", &RoundtripError{Token: s}
	}
	if !strings.ContainsAny(s, "\"\t \\") {
		return s, nil
	}

	sb := strings.Builder{}
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	slashes := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			slashes++
		case '"':
			sb.WriteString(strings.Repeat(`\`, slashes))
			sb.WriteByte('\\')
			slashes = 0
		default:
			slashes = 0
		}
		sb.WriteByte(c)
	}
	sb.WriteString(strings.Repeat(`\`, slashes))
	sb.WriteByte('"')
	return sb.String(), nil
}
