package xsdgen

import "github.com/soapkit/xsdbridge/schema"

// builtinName maps a schema kind to the XML Schema built-in type
// emitted for it. The mapping is fixed; consumers of the generated
// documents depend on the exact names (xs:int, not xs:integer), so it
// must not drift.
func builtinName(k schema.Kind) string {
	switch k {
	case schema.Number:
		return "xs:double"
	case schema.Integer:
		return "xs:int"
	case schema.Boolean:
		return "xs:boolean"
	}
	// schema.String, schema.Unknown and anything unrecognized all
	// map to the string built-in.
	return "xs:string"
}
