package el

import (
	"strings"
	"testing"

	"github.com/seam-dev/seam/pkg/render"
)

func TestRenderElement(t *testing.T) {
	node := Div(Class("container"),
		H1(Text("Title")),
		P(Text("Content")),
	)

	html, err := render.String(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="container"><h1>Title</h1><p>Content</p></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestCustomHyphenatedTag(t *testing.T) {
	tests := []struct {
		name string
		node *Element
		want string
	}{
		{
			name: "with text child",
			node: El("foo-bar", "foo"),
			want: "<foo-bar>foo</foo-bar>",
		},
		{
			name: "empty",
			node: El("foo-bar"),
			want: "<foo-bar></foo-bar>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := render.String(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestVoidElements(t *testing.T) {
	tests := []struct {
		name string
		node *Element
		want string
	}{
		{
			name: "input",
			node: Input(Type("text"), Name("email")),
			want: `<input type="text" name="email">`,
		},
		{
			name: "br",
			node: Br(),
			want: `<br>`,
		},
		{
			name: "img",
			node: Img(Src("/image.png"), Alt("test")),
			want: `<img src="/image.png" alt="test">`,
		},
		{
			name: "hr drops children",
			node: Hr(Text("ignored")),
			want: `<hr>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := render.String(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestAttributeEscaping(t *testing.T) {
	node := A(Href(`/q?a=1&b="x"`), Text("link"))

	html, err := render.String(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<a href="/q?a=1&amp;b=&quot;x&quot;">link</a>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestBooleanAttributes(t *testing.T) {
	html, err := render.String(Input(Type("checkbox"), Checked(), Attr{Key: "data-live", Value: false}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<input type="checkbox" checked>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestTextChildrenEscape(t *testing.T) {
	html, err := render.String(P("<script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("child text should be escaped, got %q", html)
	}
	if html != "<p>&lt;script&gt;</p>" {
		t.Errorf("got %q, want %q", html, "<p>&lt;script&gt;</p>")
	}
}

func TestRawChildren(t *testing.T) {
	html, err := render.String(Div(Raw("<b>bold</b>")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div><b>bold</b></div>" {
		t.Errorf("got %q, want %q", html, "<div><b>bold</b></div>")
	}
}

func TestPrimitiveChildren(t *testing.T) {
	html, err := render.String(Span(1.01, 2, 3, "c"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<span>1.0123c</span>" {
		t.Errorf("got %q, want %q", html, "<span>1.0123c</span>")
	}
}

func TestFragment(t *testing.T) {
	frag := Fragment(
		Li(Text("one")),
		nil,
		Li(Text("two")),
	)

	html, err := render.String(frag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<li>one</li><li>two</li>" {
		t.Errorf("got %q, want %q", html, "<li>one</li><li>two</li>")
	}
}

func TestElementSliceChildren(t *testing.T) {
	items := make([]render.OnceRenderer, 0, 3)
	for _, label := range []string{"a", "b", "c"} {
		items = append(items, Li(Text(label)))
	}

	html, err := render.String(Ul(items))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<ul><li>a</li><li>b</li><li>c</li></ul>" {
		t.Errorf("got %q, want %q", html, "<ul><li>a</li><li>b</li><li>c</li></ul>")
	}
}

func TestSizeHintCoversOutput(t *testing.T) {
	node := Div(Class("card"), H1(Text("Title")), P(Text("Content")))
	hint := node.SizeHint()

	html, err := render.String(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hint < len(html) {
		t.Errorf("size hint %d is below actual output %d", hint, len(html))
	}
}

func TestTextf(t *testing.T) {
	html, err := render.String(P(Textf("%d items", 3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<p>3 items</p>" {
		t.Errorf("got %q, want %q", html, "<p>3 items</p>")
	}
}
