/*
xsdgen is a tool to generate an XML Schema document from a
JSON-Schema-like description of a data shape.

Usage:

	xsdgen [-o file] [-root name] [-pkg name] [-desc path=text] schema.json

Given a JSON document describing a data shape (type tags, nested
properties, array item descriptors, descriptions, cardinality bounds),
xsdgen writes a self-contained XSD document describing the equivalent
XML structure. The root element is named by the -root flag.

With the -pkg flag, xsdgen instead emits Go type declarations for the
named package, suitable for decoding the matching XML documents with
encoding/xml.

The -desc flag attaches or overrides the description of the schema
node at a dotted property path, for example

	xsdgen -desc name="User's name" user.json

Descriptions appear as xs:documentation annotations in the generated
schema. The -desc flag may be used more than once.
*/
package main
