/*
xmlparse is a tool to print XML documents as normalized JSON objects.

Usage:

	xmlparse [-f field] [-indent str] file.xml ...

Each document's root element is unwrapped, repeated elements inside
plural wrapper tags are collapsed into arrays, and the result is
printed as indented JSON. All leaf values are strings; xmlparse does
no numeric coercion.
*/
package main
