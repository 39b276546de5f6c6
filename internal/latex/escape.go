package latex

import "strings"

// Escape rewrites free text so that it is safe to interpolate into a LaTeX
// document. The single pass over the input is what guarantees that the
// backslash rewrite happens before any other: escape sequences inserted for
// later characters are never themselves re-escaped.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '&', '%', '$', '#', '_', '{', '}', '~', '^':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '[':
			b.WriteString(`{[}`)
		case ']':
			b.WriteString(`{]}`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
