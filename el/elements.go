package el

// voidElements are elements that cannot have children and have no closing tag.
// These are self-closing in HTML5.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Document structure

func Html(args ...any) *Element    { return El("html", args...) }
func Head(args ...any) *Element    { return El("head", args...) }
func Body(args ...any) *Element    { return El("body", args...) }
func Title(args ...any) *Element   { return El("title", args...) }
func Meta(args ...any) *Element    { return El("meta", args...) }
func LinkEl(args ...any) *Element  { return El("link", args...) }
func Base(args ...any) *Element    { return El("base", args...) }
func Header(args ...any) *Element  { return El("header", args...) }
func Footer(args ...any) *Element  { return El("footer", args...) }
func Main(args ...any) *Element    { return El("main", args...) }
func Nav(args ...any) *Element     { return El("nav", args...) }
func Section(args ...any) *Element { return El("section", args...) }
func Article(args ...any) *Element { return El("article", args...) }
func Aside(args ...any) *Element   { return El("aside", args...) }

// Headings

func H1(args ...any) *Element { return El("h1", args...) }
func H2(args ...any) *Element { return El("h2", args...) }
func H3(args ...any) *Element { return El("h3", args...) }
func H4(args ...any) *Element { return El("h4", args...) }
func H5(args ...any) *Element { return El("h5", args...) }
func H6(args ...any) *Element { return El("h6", args...) }

// Text content

func Div(args ...any) *Element        { return El("div", args...) }
func P(args ...any) *Element          { return El("p", args...) }
func Span(args ...any) *Element       { return El("span", args...) }
func Pre(args ...any) *Element        { return El("pre", args...) }
func Code(args ...any) *Element       { return El("code", args...) }
func Blockquote(args ...any) *Element { return El("blockquote", args...) }
func Hr(args ...any) *Element         { return El("hr", args...) }
func Br(args ...any) *Element         { return El("br", args...) }

// Inline semantics

func A(args ...any) *Element      { return El("a", args...) }
func Strong(args ...any) *Element { return El("strong", args...) }
func Em(args ...any) *Element     { return El("em", args...) }
func B(args ...any) *Element      { return El("b", args...) }
func I(args ...any) *Element      { return El("i", args...) }
func Small(args ...any) *Element  { return El("small", args...) }
func Mark(args ...any) *Element   { return El("mark", args...) }
func Sub(args ...any) *Element    { return El("sub", args...) }
func Sup(args ...any) *Element    { return El("sup", args...) }
func TimeEl(args ...any) *Element { return El("time", args...) }

// Lists

func Ul(args ...any) *Element { return El("ul", args...) }
func Ol(args ...any) *Element { return El("ol", args...) }
func Li(args ...any) *Element { return El("li", args...) }
func Dl(args ...any) *Element { return El("dl", args...) }
func Dt(args ...any) *Element { return El("dt", args...) }
func Dd(args ...any) *Element { return El("dd", args...) }

// Tables

func Table(args ...any) *Element { return El("table", args...) }
func Thead(args ...any) *Element { return El("thead", args...) }
func Tbody(args ...any) *Element { return El("tbody", args...) }
func Tfoot(args ...any) *Element { return El("tfoot", args...) }
func Tr(args ...any) *Element    { return El("tr", args...) }
func Th(args ...any) *Element    { return El("th", args...) }
func Td(args ...any) *Element    { return El("td", args...) }

// Forms

func Form(args ...any) *Element     { return El("form", args...) }
func Input(args ...any) *Element    { return El("input", args...) }
func Textarea(args ...any) *Element { return El("textarea", args...) }
func Button(args ...any) *Element   { return El("button", args...) }
func Select(args ...any) *Element   { return El("select", args...) }
func Option(args ...any) *Element   { return El("option", args...) }
func Label(args ...any) *Element    { return El("label", args...) }
func Fieldset(args ...any) *Element { return El("fieldset", args...) }
func Legend(args ...any) *Element   { return El("legend", args...) }

// Media

func Img(args ...any) *Element    { return El("img", args...) }
func Figure(args ...any) *Element { return El("figure", args...) }
func Figcaption(args ...any) *Element {
	return El("figcaption", args...)
}
func Audio(args ...any) *Element  { return El("audio", args...) }
func Video(args ...any) *Element  { return El("video", args...) }
func Source(args ...any) *Element { return El("source", args...) }

// Scripting

func Script(args ...any) *Element   { return El("script", args...) }
func Noscript(args ...any) *Element { return El("noscript", args...) }
func StyleEl(args ...any) *Element  { return El("style", args...) }
func Canvas(args ...any) *Element   { return El("canvas", args...) }
