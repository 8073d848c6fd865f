package parser

import "strings"

// Normalize converts fullwidth digits, Latin letters and the ideographic
// space to their ASCII forms. Every other rune is kept as is, so the rune
// count never changes.
func Normalize(s string) string {
	return strings.Map(toHalfWidth, s)
}

func toHalfWidth(r rune) rune {
	switch {
	case r >= '０' && r <= '９':
		return r - '０' + '0'
	case r >= 'Ａ' && r <= 'Ｚ':
		return r - 'Ａ' + 'A'
	case r >= 'ａ' && r <= 'ｚ':
		return r - 'ａ' + 'a'
	case r == '　':
		return ' '
	default:
		return r
	}
}
