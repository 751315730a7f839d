package el

import (
	"fmt"
	"strings"

	"github.com/seam-dev/seam/pkg/render"
)

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// write appends the attribute to the sink. nil and false values drop the
// attribute, true renders it bare, everything else renders key="value"
// with the value attribute-escaped.
func (a Attr) write(s render.Sink) error {
	switch v := a.Value.(type) {
	case nil:
		return nil
	case bool:
		if !v {
			return nil
		}
		return s.WriteRaw(" " + a.Key)
	default:
		return s.WriteRaw(" " + a.Key + `="` + render.EscapeAttr(attrToString(v)) + `"`)
	}
}

func (a Attr) sizeHint() int {
	switch v := a.Value.(type) {
	case nil:
		return 0
	case bool:
		if !v {
			return 0
		}
		return 1 + len(a.Key)
	case string:
		return 4 + len(a.Key) + len(v)
	default:
		return 4 + len(a.Key) + len(attrToString(v))
	}
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identification attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data sets a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// TitleAttr sets the title attribute (named to avoid conflict with the Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// LangAttr sets the lang attribute.
func LangAttr(lang string) Attr { return attr("lang", lang) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Media attributes

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Alt sets the alt attribute.
func Alt(alt string) Attr { return attr("alt", alt) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", h) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// For sets the for attribute.
func For(id string) Attr { return attr("for", id) }

// Boolean attributes

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// Readonly sets the readonly attribute.
func Readonly() Attr { return attr("readonly", true) }

// Required sets the required attribute.
func Required() Attr { return attr("required", true) }

// Checked sets the checked attribute.
func Checked() Attr { return attr("checked", true) }

// Selected sets the selected attribute.
func Selected() Attr { return attr("selected", true) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// Document attributes

// Charset sets the charset attribute.
func Charset(cs string) Attr { return attr("charset", cs) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }
