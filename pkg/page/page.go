package page

import (
	"fmt"
	"io"

	"github.com/seam-dev/seam/pkg/render"
)

// Page contains all data needed to render a complete HTML document.
type Page struct {
	// Body is the root producer for the page content.
	Body render.OnceRenderer

	// Title is the page title.
	Title string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.).
	Links []LinkTag

	// Scripts contains script tags to include in the head.
	Scripts []ScriptTag

	// Styles contains inline CSS styles.
	Styles []string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type="module"
	Inline string // inline script content
}

// Render writes the complete HTML document to w.
func (p Page) Render(w io.Writer) error {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, `<html lang="%s">`+"\n", render.EscapeAttr(lang)); err != nil {
		return err
	}

	if err := p.renderHead(w); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}

	if p.Body != nil {
		if err := render.Write(w, p.Body); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "\n</body>\n</html>\n"); err != nil {
		return err
	}

	return nil
}

// renderHead renders the document head section.
func (p Page) renderHead(w io.Writer) error {
	if _, err := io.WriteString(w, "<head>\n"); err != nil {
		return err
	}

	if _, err := io.WriteString(w, `  <meta charset="utf-8">`+"\n"); err != nil {
		return err
	}

	if _, err := io.WriteString(w, `  <meta name="viewport" content="width=device-width, initial-scale=1">`+"\n"); err != nil {
		return err
	}

	if p.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", render.EscapeText(p.Title)); err != nil {
			return err
		}
	}

	for _, meta := range p.Meta {
		if err := renderMetaTag(w, meta); err != nil {
			return err
		}
	}

	for _, link := range p.Links {
		if err := renderLinkTag(w, link); err != nil {
			return err
		}
	}

	for _, href := range p.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", render.EscapeAttr(href)); err != nil {
			return err
		}
	}

	for _, style := range p.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}

	for _, script := range p.Scripts {
		if err := renderScriptTag(w, script); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "</head>\n"); err != nil {
		return err
	}

	return nil
}

// renderMetaTag renders a meta element.
func renderMetaTag(w io.Writer, meta MetaTag) error {
	if _, err := io.WriteString(w, "  <meta"); err != nil {
		return err
	}

	attrs := []struct{ key, value string }{
		{"charset", meta.Charset},
		{"name", meta.Name},
		{"property", meta.Property},
		{"http-equiv", meta.HTTPEquiv},
		{"content", meta.Content},
	}
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.key, render.EscapeAttr(a.value)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, ">\n")
	return err
}

// renderLinkTag renders a link element.
func renderLinkTag(w io.Writer, link LinkTag) error {
	if _, err := io.WriteString(w, "  <link"); err != nil {
		return err
	}

	attrs := []struct{ key, value string }{
		{"rel", link.Rel},
		{"href", link.Href},
		{"type", link.Type},
		{"sizes", link.Sizes},
		{"crossorigin", link.CrossOrigin},
		{"media", link.Media},
	}
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.key, render.EscapeAttr(a.value)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, ">\n")
	return err
}

// renderScriptTag renders a script element.
func renderScriptTag(w io.Writer, script ScriptTag) error {
	if _, err := io.WriteString(w, "  <script"); err != nil {
		return err
	}

	typ := script.Type
	if script.Module {
		typ = "module"
	}
	if typ != "" {
		if _, err := fmt.Fprintf(w, ` type="%s"`, render.EscapeAttr(typ)); err != nil {
			return err
		}
	}
	if script.Src != "" {
		if _, err := fmt.Fprintf(w, ` src="%s"`, render.EscapeAttr(script.Src)); err != nil {
			return err
		}
	}
	if script.Defer {
		if _, err := io.WriteString(w, " defer"); err != nil {
			return err
		}
	}
	if script.Async {
		if _, err := io.WriteString(w, " async"); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if script.Inline != "" {
		if _, err := io.WriteString(w, script.Inline); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</script>\n")
	return err
}
