/*
Package xsdgen generates XML Schema documents from generic schema trees.

Usage:

	xsd := xsdgen.Compile(node, "User")
*/
package xsdgen
