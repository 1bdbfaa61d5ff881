package html

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Hello world", "Hello world"},
		{"simple tags", "<p>Hello <b>world</b></p>", "Hello world"},
		{"nested tags", "<div><p>First</p><p>Second</p></div>", "FirstSecond"},
		{"script removed", "<p>Text</p><script>alert('x')</script>", "Text"},
		{"style removed", "<style>p{color:red}</style><p>Text</p>", "Text"},
		{"entity decode", "Fish &amp; chips", "Fish & chips"},
		{"whitespace collapsed", "  too   many \n spaces  ", "too many spaces"},
		{"attributes dropped", `<a href="https://example.com">link text</a>`, "link text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeEntities(t *testing.T) {
	got := DecodeEntities("&ldquo;Breaking&rdquo; news &mdash; more at 11&hellip;")
	want := "\"Breaking\" news - more at 11..."
	if got != want {
		t.Errorf("DecodeEntities() = %q, want %q", got, want)
	}
}

func TestStripTagsManually_Unbalanced(t *testing.T) {
	got := stripTagsManually("text with a stray > bracket")
	if got != "text with a stray > bracket" {
		t.Errorf("unbalanced bracket input should pass through, got %q", got)
	}
}
