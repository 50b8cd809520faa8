package inline

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"quotes and ampersand", `"a" & 'b'`, "&#34;a&#34; &amp; &#39;b&#39;"},
		{"existing entity escapes again", "&amp;", "&amp;amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "plain text",
			input: "hello",
			want:  "hello",
		},
		{
			name:  "bold",
			input: "Hello **world**",
			want:  "Hello <strong>world</strong>",
		},
		{
			name:  "italic",
			input: "an *emphasized* word",
			want:  "an <em>emphasized</em> word",
		},
		{
			name:  "bold then italic",
			input: "**a** and *b*",
			want:  "<strong>a</strong> and <em>b</em>",
		},
		{
			name:  "strikethrough",
			input: "~~gone~~",
			want:  "<del>gone</del>",
		},
		{
			name:  "code span",
			input: "run `go test` now",
			want:  "run <code>go test</code> now",
		},
		{
			name:  "code span content is not transformed",
			input: "`**not bold**`",
			want:  "<code>**not bold**</code>",
		},
		{
			name:  "code span content is escaped",
			input: "a `b<c>` d",
			want:  "a <code>b&lt;c&gt;</code> d",
		},
		{
			name:  "explicit link",
			input: "[docs](https://example.com)",
			want:  `<a href="https://example.com" target="_blank" rel="noopener noreferrer">docs</a>`,
		},
		{
			name:  "empty label link",
			input: "[](https://example.com)",
			want:  `<a href="https://example.com" target="_blank" rel="noopener noreferrer"></a>`,
		},
		{
			name:  "link label with code span",
			input: "[see `x`](https://a.io)",
			want:  `<a href="https://a.io" target="_blank" rel="noopener noreferrer">see <code>x</code></a>`,
		},
		{
			name:  "autolink http",
			input: "visit https://example.com today",
			want:  `visit <a href="https://example.com" target="_blank" rel="noopener noreferrer">https://example.com</a> today`,
		},
		{
			name:  "autolink www gets https href",
			input: "see www.example.com now",
			want:  `see <a href="https://www.example.com" target="_blank" rel="noopener noreferrer">www.example.com</a> now`,
		},
		{
			name:  "autolink at start of text",
			input: "www.example.com",
			want:  `<a href="https://www.example.com" target="_blank" rel="noopener noreferrer">www.example.com</a>`,
		},
		{
			name:  "autolink after open paren stops at close paren",
			input: "(see https://a.io)",
			want:  `(see <a href="https://a.io" target="_blank" rel="noopener noreferrer">https://a.io</a>)`,
		},
		{
			name:  "no autolink mid-word",
			input: "notawww.example.com",
			want:  "notawww.example.com",
		},
		{
			name:  "explicit link href is not autolinked again",
			input: "[x](https://a.io)",
			want:  `<a href="https://a.io" target="_blank" rel="noopener noreferrer">x</a>`,
		},
		{
			name:  "script tag is escaped",
			input: `<script>alert("hi")</script>`,
			want:  "&lt;script&gt;alert(&#34;hi&#34;)&lt;/script&gt;",
		},
		{
			name:  "unbalanced bold degrades to literal",
			input: "**half",
			want:  "**half",
		},
		{
			name:  "escaped ampersand survives in url",
			input: "[q](https://a.io?x=1&y=2)",
			want:  `<a href="https://a.io?x=1&amp;y=2" target="_blank" rel="noopener noreferrer">q</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transform(tt.input); got != tt.want {
				t.Errorf("Transform(%q) =\n  %q\nwant\n  %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransformWithOptions(t *testing.T) {
	t.Run("autolinks disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.DisableAutolinks = true
		got := TransformWithOptions("see www.example.com", opts)
		want := "see www.example.com"
		if got != want {
			t.Errorf("TransformWithOptions() = %q, want %q", got, want)
		}
	})

	t.Run("bare anchor attributes", func(t *testing.T) {
		got := TransformWithOptions("[x](https://a.io)", Options{})
		want := `<a href="https://a.io">x</a>`
		if got != want {
			t.Errorf("TransformWithOptions() = %q, want %q", got, want)
		}
	})
}

func TestTransform_PrivateUseRunesDropped(t *testing.T) {
	// The chat exporter emits private-use citation markers; they must never
	// reach output (and must not be able to forge mask sentinels).
	got := Transform("a\uE000b\uE881" + "0" + "\uE001c")
	// The digit between markers is ordinary text and stays.
	want := "ab0c"
	if got != want {
		t.Errorf("Transform() = %q, want %q", got, want)
	}
}

func TestTransform_NoDoubleEscape(t *testing.T) {
	// Tags inserted by earlier stages must not be re-escaped by anything
	// that runs after them.
	got := Transform("**a & b**")
	want := "<strong>a &amp; b</strong>"
	if got != want {
		t.Errorf("Transform() = %q, want %q", got, want)
	}
}

func TestTransform_LinearGrowth(t *testing.T) {
	// Output size stays proportional to input size even for marker-heavy
	// input.
	input := strings.Repeat("*a* `b` [c](https://d.io) ", 200)
	got := Transform(input)
	if len(got) > 40*len(input) {
		t.Errorf("output length %d exceeds linear bound for input length %d", len(got), len(input))
	}
}
