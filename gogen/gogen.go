// Package gogen generates Go type declarations from schema trees, so
// that a schema used for XSD interop can also decode the matching XML
// documents with encoding/xml.
package gogen

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/tools/imports"

	"github.com/soapkit/xsdbridge/schema"
)

// GenerateSource generates Go source containing type declarations for
// root. The root type is named after typeName (also used as the XML
// tag of the root element) and declared in package pkg. The result is
// gofmt-formatted with its imports resolved.
func GenerateSource(root *schema.Node, pkg, typeName string) ([]byte, error) {
	if pkg == "" {
		pkg = "types"
	}
	if typeName == "" {
		typeName = "Root"
	}
	g := new(generator)
	fmt.Fprintf(&g.buf, "package %s\n\n", pkg)
	g.decl(root, goIdent(typeName), typeName, true)

	out, err := imports.Process("", g.buf.Bytes(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "format generated declarations")
	}
	return out, nil
}

type generator struct {
	buf bytes.Buffer
}

// A nested object type is declared after the struct that refers to
// it, qualified with its owner's name so that two fields with the
// same name in different structs do not collide.
type pendingDecl struct {
	node *schema.Node
	name string
}

func (g *generator) decl(n *schema.Node, name, tag string, root bool) {
	var nested []pendingDecl
	switch kind(n) {
	case schema.Object:
		fmt.Fprintf(&g.buf, "type %s struct {\n", name)
		if root {
			fmt.Fprintf(&g.buf, "\tXMLName xml.Name `xml:\"%s\"`\n", tag)
		}
		n.EachProperty(func(fname string, child *schema.Node) {
			g.field(name, fname, child, &nested)
		})
		fmt.Fprintf(&g.buf, "}\n\n")
	case schema.Array:
		if kind(n.Items) == schema.Object {
			item := name + "_Item"
			fmt.Fprintf(&g.buf, "type %s []%s\n\n", name, item)
			nested = append(nested, pendingDecl{node: n.Items, name: item})
		} else {
			fmt.Fprintf(&g.buf, "type %s []%s\n\n", name, goType(kind(n.Items)))
		}
	default:
		fmt.Fprintf(&g.buf, "type %s struct {\n", name)
		if root {
			fmt.Fprintf(&g.buf, "\tXMLName xml.Name `xml:\"%s\"`\n", tag)
		}
		fmt.Fprintf(&g.buf, "\tValue %s `xml:\",chardata\"`\n", goType(kind(n)))
		fmt.Fprintf(&g.buf, "}\n\n")
	}
	for _, p := range nested {
		g.decl(p.node, p.name, "", false)
	}
}

func (g *generator) field(owner, fname string, child *schema.Node, nested *[]pendingDecl) {
	id := goIdent(fname)
	switch kind(child) {
	case schema.Object:
		typ := owner + "_" + id
		fmt.Fprintf(&g.buf, "\t%s %s `xml:\"%s\"`\n", id, typ, fname)
		*nested = append(*nested, pendingDecl{node: child, name: typ})
	case schema.Array:
		if kind(child.Items) == schema.Object {
			typ := owner + "_" + id
			fmt.Fprintf(&g.buf, "\t%s []%s `xml:\"%s\"`\n", id, typ, fname)
			*nested = append(*nested, pendingDecl{node: child.Items, name: typ})
		} else {
			fmt.Fprintf(&g.buf, "\t%s []%s `xml:\"%s\"`\n", id, goType(kind(child.Items)), fname)
		}
	default:
		fmt.Fprintf(&g.buf, "\t%s %s `xml:\"%s\"`\n", id, goType(kind(child)), fname)
	}
}

func kind(n *schema.Node) schema.Kind {
	if n == nil {
		return schema.Unknown
	}
	return n.Kind
}

// goType maps a schema kind to the Go type its values decode into.
// Everything unrecognized is carried as a string, matching the
// permissive behavior of the XSD side.
func goType(k schema.Kind) string {
	switch k {
	case schema.Number:
		return "float64"
	case schema.Integer:
		return "int"
	case schema.Boolean:
		return "bool"
	}
	return "string"
}

// goIdent derives an exported Go identifier from a tag name.
func goIdent(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, s)

	r := []rune(s)
	for len(r) > 0 && unicode.IsDigit(r[0]) {
		r = r[1:]
	}
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}
