package cargu

import (
	"strings"
)

type tagEntry struct {
	key   string
	value string
}

// parseStructTagInner splits the inside of a cargu struct tag into ordered
// key/value entries. Values may be wrapped in single quotes to protect commas.
// Keys may repeat.
func parseStructTagInner(tagInner string) []tagEntry {
	entries := []tagEntry{}

	key := strings.Builder{}
	val := strings.Builder{}
	inKey := true
	inQuote := false
	flush := func() {
		if key.Len() > 0 {
			entries = append(entries, tagEntry{key.String(), val.String()})
		}
		key.Reset()
		val.Reset()
		inKey = true
	}
	for _, c := range tagInner {
		switch {
		case inQuote:
			if c == '\'' {
				inQuote = false
			} else {
				val.WriteRune(c)
			}
		case c == ',':
			flush()
		case inKey && c == '=':
			inKey = false
		case inKey && c == ' ':
		case inKey:
			key.WriteRune(c)
		case c == '\'':
			inQuote = true
		default:
			val.WriteRune(c)
		}
	}
	flush()

	return entries
}
