package xsdgen

import (
	"bytes"
	"strconv"

	"github.com/soapkit/xsdbridge/schema"
)

// The generated document always opens with this declaration and
// schema root, and always closes with the matching end tag.
const (
	docHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" elementFormDefault="qualified">`
	docFooter = `</xs:schema>`
)

// DefaultRootName names the root element when the caller does not.
const DefaultRootName = "Root"

// Compile generates an XSD document describing root, using
// DefaultOptions. The root element of the document is named rootName;
// if rootName is empty, DefaultRootName is used.
//
// Compile is a pure function and never fails: nodes of unknown kind
// are emitted as string elements, and arrays without an item
// description become open-ended string elements.
func Compile(root *schema.Node, rootName string) string {
	var cfg Config
	cfg.Option(DefaultOptions...)
	return cfg.Compile(root, rootName)
}

// Compile generates an XSD document describing root with the
// receiver's settings. See the top-level Compile function.
func (cfg *Config) Compile(root *schema.Node, rootName string) string {
	if rootName == "" {
		rootName = DefaultRootName
	}
	cfg.logf("compiling schema with root element %q", rootName)

	var buf bytes.Buffer
	buf.WriteString(docHeader)
	buf.WriteByte('\n')

	enc := encoder{buf: &buf, indent: cfg.indent}
	if enc.indent == "" {
		enc.indent = "  "
	}
	enc.encode(cfg.compile(root, rootName), 1)

	buf.WriteString(docFooter)
	return buf.String()
}

func (cfg *Config) compile(n *schema.Node, name string) *element {
	if n == nil {
		n = &schema.Node{}
	}
	cfg.debugf("compile %s element %q", n.Kind, name)
	switch n.Kind {
	case schema.Object:
		return cfg.compileObject(n, name)
	case schema.Array:
		return cfg.compileArray(n, name)
	}
	return cfg.compilePrimitive(n, name)
}

// compileObject emits an element wrapping a sequence compositor, with
// one child element per property in declaration order. The node's own
// description is annotated inside the element, before the
// complex-type body.
func (cfg *Config) compileObject(n *schema.Node, name string) *element {
	seq := &element{Name: "xs:sequence"}
	n.EachProperty(func(pname string, child *schema.Node) {
		seq.Children = append(seq.Children, cfg.compile(child, pname))
	})

	el := &element{Name: "xs:element"}
	el.setAttr("name", name)
	el.Children = []*element{{
		Name:     "xs:complexType",
		Children: []*element{seq},
	}}
	annotate(el, n.Description)
	return el
}

// compileArray emits the array's item element under the array's own
// name, carrying minOccurs/maxOccurs attributes. Arrays have no
// separate item name in this model, so the item inherits the array's.
func (cfg *Config) compileArray(n *schema.Node, name string) *element {
	if n.Items == nil {
		// Nothing is known about the element shape; emit the most
		// permissive declaration.
		el := &element{Name: "xs:element"}
		el.setAttr("name", name)
		el.setAttr("type", builtinName(schema.String))
		el.setAttr("minOccurs", "0")
		el.setAttr("maxOccurs", "unbounded")
		annotate(el, n.Description)
		return el
	}
	el := cfg.compile(n.Items, name)
	el.setAttr("minOccurs", occursValue(n.MinOccurs, "0"))
	el.setAttr("maxOccurs", occursValue(n.MaxOccurs, "unbounded"))
	if !annotated(el) {
		annotate(el, n.Description)
	}
	return el
}

// compilePrimitive emits a typed element. Unknown kinds degrade to
// the string built-in rather than failing.
func (cfg *Config) compilePrimitive(n *schema.Node, name string) *element {
	el := &element{Name: "xs:element"}
	el.setAttr("name", name)
	el.setAttr("type", builtinName(n.Kind))
	annotate(el, n.Description)
	return el
}

func occursValue(bound *int, absent string) string {
	if bound == nil {
		return absent
	}
	return strconv.Itoa(*bound)
}
