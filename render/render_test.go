package render

import (
	"testing"

	"github.com/tsawler/scripta/inline"
	"github.com/tsawler/scripta/model"
)

func TestHTML(t *testing.T) {
	tests := []struct {
		name   string
		blocks []model.Block
		want   string
	}{
		{
			name:   "empty",
			blocks: nil,
			want:   "",
		},
		{
			name:   "paragraph with inline markup",
			blocks: []model.Block{&model.Paragraph{Text: "Hello **world**"}},
			want:   "<p>Hello <strong>world</strong></p>",
		},
		{
			name: "heading levels clamp",
			blocks: []model.Block{
				&model.Heading{Level: 2, Text: "Two"},
				&model.Heading{Level: 0, Text: "Low"},
				&model.Heading{Level: 9, Text: "High"},
			},
			want: "<h2>Two</h2>\n<h1>Low</h1>\n<h6>High</h6>",
		},
		{
			name:   "ordered list",
			blocks: []model.Block{&model.OrderedList{Items: []string{"a", "b"}}},
			want:   "<ol><li>a</li><li>b</li></ol>",
		},
		{
			name:   "unordered list",
			blocks: []model.Block{&model.UnorderedList{Items: []string{"x"}}},
			want:   "<ul><li>x</li></ul>",
		},
		{
			name:   "code block with language",
			blocks: []model.Block{&model.CodeBlock{Language: "go", Lines: []string{"a := 1", "b := 2"}}},
			want:   `<pre><code class="language-go">a := 1` + "\n" + `b := 2</code></pre>`,
		},
		{
			name:   "code block without language omits the class",
			blocks: []model.Block{&model.CodeBlock{Lines: []string{"x"}}},
			want:   "<pre><code>x</code></pre>",
		},
		{
			name:   "code block content is escaped not transformed",
			blocks: []model.Block{&model.CodeBlock{Lines: []string{"if a < b { **c** }"}}},
			want:   "<pre><code>if a &lt; b { **c** }</code></pre>",
		},
		{
			name: "quote nests rendered blocks",
			blocks: []model.Block{&model.Quote{Blocks: []model.Block{
				&model.Heading{Level: 1, Text: "Hi"},
				&model.Paragraph{Text: "text"},
			}}},
			want: "<blockquote><h1>Hi</h1>\n<p>text</p></blockquote>",
		},
		{
			name: "table",
			blocks: []model.Block{&model.Table{
				Header: []string{"a", "b"},
				Rows:   [][]string{{"1", "2"}},
			}},
			want: "<table><thead><tr><th>a</th><th>b</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table>",
		},
		{
			name: "table without rows keeps an empty tbody",
			blocks: []model.Block{&model.Table{
				Header: []string{"a"},
			}},
			want: "<table><thead><tr><th>a</th></tr></thead><tbody></tbody></table>",
		},
		{
			name:   "thematic break",
			blocks: []model.Block{&model.ThematicBreak{}},
			want:   "<hr>",
		},
		{
			name: "fragments joined by newlines",
			blocks: []model.Block{
				&model.Heading{Level: 1, Text: "Title"},
				&model.Paragraph{Text: "body"},
			},
			want: "<h1>Title</h1>\n<p>body</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTML(tt.blocks); got != tt.want {
				t.Errorf("HTML() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestHTMLWithOptions(t *testing.T) {
	blocks := []model.Block{&model.Paragraph{Text: "[x](https://a.io)"}}
	got := HTMLWithOptions(blocks, inline.Options{})
	want := `<p><a href="https://a.io">x</a></p>`
	if got != want {
		t.Errorf("HTMLWithOptions() = %q, want %q", got, want)
	}
}
