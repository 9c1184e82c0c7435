package web

import "strings"

// cssQuote renders a font family as a quoted CSS string. Characters that
// could end the declaration are dropped.
func cssQuote(s string) string {
	var b strings.Builder

	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"', '\\', '<', '>', ';', '{', '}', '\n', '\r':
			continue
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')

	return b.String()
}
