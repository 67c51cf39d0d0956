// Package xsdbridge bridges schema trees and XML documents in two
// directions: it compiles a generic schema description into an XML
// Schema document, and it parses an XML document into a normalized
// generic object.
//
// The two pipelines share no state; both are synchronous, reentrant
// transformations over in-memory trees and may be called from
// concurrent goroutines without coordination.
package xsdbridge

import (
	"github.com/soapkit/xsdbridge/schema"
	"github.com/soapkit/xsdbridge/xmlobj"
	"github.com/soapkit/xsdbridge/xsdgen"
)

// ToXMLSchema compiles a schema tree into an XSD document string. The
// document's root element is named rootName; an empty rootName yields
// "Root". ToXMLSchema never fails: unrecognized schema shapes degrade
// to permissive string declarations.
func ToXMLSchema(root *schema.Node, rootName string) string {
	return xsdgen.Compile(root, rootName)
}

// ParseXMLToObject parses an XML document into a normalized object:
// the root element is unwrapped, the XML declaration discarded, and
// plural wrappers around repeated elements collapsed into ordered
// slices. All leaf values are strings; no numeric coercion is done.
//
// The only possible error is the XML tokenizer rejecting malformed
// input; it is returned unmodified.
func ParseXMLToObject(doc []byte) (map[string]interface{}, error) {
	return xmlobj.Parse(doc)
}
