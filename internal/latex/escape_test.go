package latex

import (
	"strings"
	"testing"
)

func TestEscapeSpecialCharacters(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`\`, `\textbackslash{}`},
		{"&", `\&`},
		{"%", `\%`},
		{"$", `\$`},
		{"#", `\#`},
		{"_", `\_`},
		{"{", `\{`},
		{"}", `\}`},
		{"~", `\~`},
		{"^", `\^`},
		{"[", `{[}`},
		{"]", `{]}`},
		{"$100 & 50% off_ok", `\$100 \& 50\% off\_ok`},
		{"a[b]c", `a{[}b{]}c`},
	}
	for _, tc := range cases {
		if got := Escape(tc.in); got != tc.want {
			t.Errorf("Escape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// A backslash in the input must not cause the characters of its own escape
// sequence to be escaped again.
func TestEscapeBackslashRunsFirst(t *testing.T) {
	got := Escape(`\&`)
	want := `\textbackslash{}\&`
	if got != want {
		t.Fatalf("Escape(%q) = %q, want %q", `\&`, got, want)
	}
	if strings.Contains(got, `\textbackslash\{\}`) {
		t.Fatalf("escape sequence was re-escaped: %q", got)
	}
}
