package xsdgen

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soapkit/xsdbridge/schema"
)

func TestCompileUserSchema(t *testing.T) {
	root := schema.NewObject().
		Prop("name", schema.NewString().Describe("User's name")).
		Prop("age", schema.NewNumber())

	want := `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" elementFormDefault="qualified">
  <xs:element name="User">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="name" type="xs:string">
          <xs:annotation>
            <xs:documentation>User's name</xs:documentation>
          </xs:annotation>
        </xs:element>
        <xs:element name="age" type="xs:double"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

	assert.Equal(t, want, Compile(root, "User"))
}

func TestCompileArraySchema(t *testing.T) {
	root := schema.NewObject().
		Prop("tags", schema.NewArray(schema.NewString()).Describe("List of tags"))

	doc := Compile(root, "Tags")
	a := assert.New(t)
	a.Contains(doc, `<xs:element name="tags" type="xs:string" minOccurs="0" maxOccurs="unbounded">`)
	a.Contains(doc, `<xs:documentation>List of tags</xs:documentation>`)
}

func TestBuiltinMapping(t *testing.T) {
	for _, tc := range []struct {
		kind schema.Kind
		want string
	}{
		{schema.String, "xs:string"},
		{schema.Number, "xs:double"},
		{schema.Integer, "xs:int"},
		{schema.Boolean, "xs:boolean"},
		{schema.Unknown, "xs:string"},
		{schema.Kind(99), "xs:string"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			doc := Compile(schema.New(tc.kind), "v")
			assert.Contains(t, doc, `<xs:element name="v" type="`+tc.want+`"/>`)
		})
	}
}

func TestCompileOccursBounds(t *testing.T) {
	for _, tc := range []struct {
		name string
		node *schema.Node
		want string
	}{
		{
			"explicit bounds",
			schema.NewArray(schema.NewInteger()).Min(3).Max(7),
			`minOccurs="3" maxOccurs="7"`,
		},
		{
			"absent bounds",
			schema.NewArray(schema.NewInteger()),
			`minOccurs="0" maxOccurs="unbounded"`,
		},
		{
			"zero min is emitted as a decimal string",
			schema.NewArray(schema.NewInteger()).Min(0).Max(1),
			`minOccurs="0" maxOccurs="1"`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, Compile(tc.node, "n"), tc.want)
		})
	}
}

func TestCompileArrayWithoutItems(t *testing.T) {
	doc := Compile(schema.NewArray(nil).Describe("anything goes"), "stuff")
	a := assert.New(t)
	a.Contains(doc, `<xs:element name="stuff" type="xs:string" minOccurs="0" maxOccurs="unbounded">`)
	a.Contains(doc, `<xs:documentation>anything goes</xs:documentation>`)
}

func TestCompileArrayOfObjects(t *testing.T) {
	item := schema.NewObject().Prop("id", schema.NewInteger())
	doc := Compile(schema.NewObject().Prop("entries", schema.NewArray(item).Max(4)), "Log")

	a := assert.New(t)
	// bounds land on the repeated element itself, not on descendants
	a.Contains(doc, `<xs:element name="entries" minOccurs="0" maxOccurs="4">`)
	a.Contains(doc, `<xs:element name="id" type="xs:int"/>`)
	a.NotContains(doc, `"id" type="xs:int" minOccurs`)
}

func TestCompileObjectDescriptionLeadsBody(t *testing.T) {
	root := schema.NewObject().
		Describe("the whole thing").
		Prop("x", schema.NewString())
	doc := Compile(root, "T")

	ann := strings.Index(doc, "<xs:annotation>")
	ct := strings.Index(doc, "<xs:complexType>")
	a := assert.New(t)
	a.True(ann >= 0 && ct >= 0)
	a.Less(ann, ct)
}

func TestCompileDefaultRootName(t *testing.T) {
	doc := Compile(schema.NewObject(), "")
	assert.Contains(t, doc, `<xs:element name="Root">`)
}

func TestCompileNilSchema(t *testing.T) {
	doc := Compile(nil, "Empty")
	assert.Contains(t, doc, `<xs:element name="Empty" type="xs:string"/>`)
}

// Every generated document must carry exactly one header/footer pair
// and be well-formed XML.
func TestCompiledDocumentWellFormed(t *testing.T) {
	for name, node := range map[string]*schema.Node{
		"nil":       nil,
		"primitive": schema.NewBool().Describe("yes <or> no & maybe"),
		"array":     schema.NewArray(schema.NewObject().Prop("v", schema.NewNumber())),
		"nested": schema.NewObject().
			Prop("a", schema.NewObject().Prop("b", schema.NewString())).
			Prop("c", schema.NewArray(nil)),
	} {
		t.Run(name, func(t *testing.T) {
			doc := Compile(node, "R")
			a := assert.New(t)
			a.Equal(1, strings.Count(doc, "<xs:schema"))
			a.Equal(1, strings.Count(doc, "</xs:schema>"))
			a.True(strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
			a.True(strings.HasSuffix(doc, "</xs:schema>"))

			var v struct{}
			a.NoError(xml.Unmarshal([]byte(doc), &v))
		})
	}
}

func TestEscapeText(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"plain text stays put", "plain text stays put"},
		{"a < b", "a &lt; b"},
		{"a > b", "a &gt; b"},
		{"a & b", "a &amp; b"},
		{"<&>", "&lt;&amp;&gt;"},
		// ampersands are escaped first, so escapes are not re-escaped
		{"&lt;", "&amp;lt;"},
		{"User's \"name\"", "User's \"name\""},
		{"", ""},
	} {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, escapeText(tc.in))
		})
	}
}

func TestIndentOption(t *testing.T) {
	var cfg Config
	cfg.Option(Indent("\t"))
	doc := cfg.Compile(schema.NewObject().Prop("x", schema.NewString()), "T")
	assert.Contains(t, doc, "\n\t<xs:element name=\"T\">")
}

func TestOptionRevert(t *testing.T) {
	var cfg Config
	prev := cfg.Option(Indent("    "))
	cfg.Option(prev)
	doc := cfg.Compile(schema.NewObject(), "T")
	assert.Contains(t, doc, "\n  <xs:element")
}
