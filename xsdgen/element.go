package xsdgen

import (
	"bytes"
	"strings"
	"text/template"
)

// An element is a single node of the document being generated.
// Elements are assembled as a tree and serialized once; cardinality
// attributes are attached to the structure before rendering, never
// spliced into already-rendered text.
type element struct {
	Name     string
	Attr     []attr
	Text     string
	Children []*element
}

type attr struct {
	Name, Value string
}

// setAttr adds an attribute to an element's existing attributes.
// If the attribute already exists, it is replaced.
func (el *element) setAttr(name, value string) {
	for i, a := range el.Attr {
		if a.Name == name {
			el.Attr[i].Value = value
			return
		}
	}
	el.Attr = append(el.Attr, attr{Name: name, Value: value})
}

// annotate prepends an xs:annotation/xs:documentation block holding
// the escaped description, so that the annotation leads the element
// body regardless of what else the element contains.
func annotate(el *element, doc string) {
	if doc == "" {
		return
	}
	ann := &element{Name: "xs:annotation"}
	ann.Children = []*element{{
		Name: "xs:documentation",
		Text: escapeText(doc),
	}}
	el.Children = append([]*element{ann}, el.Children...)
}

func annotated(el *element) bool {
	return len(el.Children) > 0 && el.Children[0].Name == "xs:annotation"
}

// escapeText escapes the characters that cannot appear verbatim in
// XML character data. Ampersands are replaced first so that the
// escapes produced for < and > are not escaped again. No other
// characters are altered.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

var tagTmpl = template.Must(template.New("xsd tags").Parse(
	`{{define "open"}}<{{.Name}}{{range .Attr}} {{.Name}}="{{.Value}}"{{end}}>{{end}}` +
		`{{define "selfclose"}}<{{.Name}}{{range .Attr}} {{.Name}}="{{.Value}}"{{end}}/>{{end}}` +
		`{{define "close"}}</{{.Name}}>{{end}}`))

type encoder struct {
	buf    *bytes.Buffer
	indent string
}

// encode renders el and its descendants, one element per line,
// indented depth levels deep. Childless elements without text render
// self-closed; elements with text render open and closed on one line.
func (e *encoder) encode(el *element, depth int) {
	pad := strings.Repeat(e.indent, depth)
	e.buf.WriteString(pad)
	switch {
	case len(el.Children) == 0 && el.Text == "":
		e.tag("selfclose", el)
	case len(el.Children) == 0:
		e.tag("open", el)
		e.buf.WriteString(el.Text)
		e.tag("close", el)
	default:
		e.tag("open", el)
		e.buf.WriteByte('\n')
		for _, child := range el.Children {
			e.encode(child, depth+1)
		}
		e.buf.WriteString(pad)
		e.tag("close", el)
	}
	e.buf.WriteByte('\n')
}

func (e *encoder) tag(name string, el *element) {
	if err := tagTmpl.ExecuteTemplate(e.buf, name, el); err != nil {
		// bytes.Buffer writes cannot fail and the templates take
		// no user input, so this is unreachable.
		panic(err)
	}
}
