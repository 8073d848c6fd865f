package parser

import "strings"

// builtinDateFormats holds the built-in number format ids that render dates,
// including the ones East Asian locales map to era and kanji date formats.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true,
	34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true,
	57: true, 58: true,
}

// isDateFormat reports whether a number format displays a calendar date.
// Pure time formats (h:mm, [h]:mm:ss) are not dates.
func isDateFormat(numFmt int, custom *string) bool {
	if custom != nil && *custom != "" {
		return hasDateTokens(*custom)
	}
	return builtinDateFormats[numFmt]
}

// hasDateTokens looks for y, d, e (era year) or g (era name) outside quoted
// literals, escapes and bracketed sections such as [Red] or [$-411].
func hasDateTokens(code string) bool {
	// Only the positive section matters.
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\':
			i++
		case len(code)-i >= 7 && strings.EqualFold(code[i:i+7], "general"):
			i += 6
		case ch == 'e':
			// 0.00e+00 is scientific notation, not an era year
			if i+1 >= len(code) || (code[i+1] != '+' && code[i+1] != '-') {
				return true
			}
		default:
			switch ch {
			case 'y', 'Y', 'd', 'D', 'g', 'G':
				return true
			}
		}
	}
	return false
}
