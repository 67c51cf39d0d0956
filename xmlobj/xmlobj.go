// Package xmlobj parses XML documents into normalized generic
// objects: maps from tag name to string, nested map, or ordered slice
// of values where a tag repeats.
//
// The package does not handle namespaces, attributes or mixed
// content; element values are the trimmed text content or the folded
// child elements.
package xmlobj

import (
	"bytes"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// declKey is the pseudo-key under which the XML declaration is
// recorded in the raw tree. Normalize strips it.
const declKey = "?xml"

var xpRootElement = xpath.MustCompile("/*")

// Parse parses an XML document and returns its normalized object
// form. Errors come only from the underlying tokenizer rejecting
// malformed XML; they are returned to the caller unmodified.
func Parse(doc []byte) (map[string]interface{}, error) {
	return ParseReader(bytes.NewReader(doc))
}

// ParseReader is like Parse, but reads the document from r.
func ParseReader(r io.Reader) (map[string]interface{}, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, err
	}
	return Normalize(fold(doc)), nil
}

// fold converts a parsed document into the raw nested mapping: the
// XML declaration under its pseudo-key, and the root element under
// its own tag name. Comments and processing instructions outside the
// root element are dropped.
func fold(doc *xmlquery.Node) map[string]interface{} {
	tree := make(map[string]interface{})
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.DeclarationNode {
			tree[declKey] = declAttrs(n)
			break
		}
	}
	if root := xmlquery.QuerySelector(doc, xpRootElement); root != nil {
		tree[root.Data] = foldElement(root)
	}
	return tree
}

// foldElement turns an element into a string (no child elements) or a
// nested mapping. Repeated sibling tags become a slice holding their
// values in document order.
func foldElement(el *xmlquery.Node) interface{} {
	var children []*xmlquery.Node
	for n := el.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			children = append(children, n)
		}
	}
	if len(children) == 0 {
		return strings.TrimSpace(el.InnerText())
	}
	m := make(map[string]interface{}, len(children))
	for _, child := range children {
		addChild(m, child.Data, foldElement(child))
	}
	return m
}

func addChild(m map[string]interface{}, name string, value interface{}) {
	prev, ok := m[name]
	if !ok {
		m[name] = value
		return
	}
	if seq, ok := prev.([]interface{}); ok {
		m[name] = append(seq, value)
		return
	}
	m[name] = []interface{}{prev, value}
}

func declAttrs(n *xmlquery.Node) map[string]interface{} {
	m := make(map[string]interface{}, len(n.Attr))
	for _, a := range n.Attr {
		m[a.Name.Local] = a.Value
	}
	return m
}
