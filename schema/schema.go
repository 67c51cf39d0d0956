// Package schema defines a generic, tree-shaped description of a data
// shape, along with an adapter that builds such trees from
// JSON-Schema-like documents.
//
// The schema package does not interpret the trees it builds; it is the
// input model for the xsdgen and gogen packages. Any producer of *Node
// values is interchangeable with the adapter in this package.
package schema

import "github.com/soapkit/xsdbridge/internal/ordered"

// A Kind identifies the shape of the value a Node describes. The set
// of kinds is closed; anything the adapter cannot recognize becomes
// Unknown, which downstream consumers treat as a string.
type Kind int

const (
	Unknown Kind = iota
	Object
	Array
	String
	Number
	Integer
	Boolean
)

var kindNames = [...]string{
	Unknown: "unknown",
	Object:  "object",
	Array:   "array",
	String:  "string",
	Number:  "number",
	Integer: "integer",
	Boolean: "boolean",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// A Node is a single vertex of a schema tree. Exactly one of
// Properties (Object) and Items (Array) may be set; primitive kinds
// carry neither. Trees are fully materialized and acyclic.
type Node struct {
	Kind        Kind
	Description string

	// Properties maps field names to child nodes for Object nodes.
	// Declaration order is significant and drives output order.
	Properties *ordered.Map

	// Items describes the repeated element of an Array node. A nil
	// Items yields a permissive open-ended string element.
	Items *Node

	// MinOccurs and MaxOccurs bound the cardinality of an Array
	// node. A nil bound means absent; consumers default absent
	// bounds to zero and unbounded respectively.
	MinOccurs *int
	MaxOccurs *int
}

// New returns a Node of the given kind with no further detail.
func New(k Kind) *Node { return &Node{Kind: k} }

// NewObject returns an empty Object node. Add fields with Prop.
func NewObject() *Node {
	return &Node{Kind: Object, Properties: ordered.NewMap()}
}

// NewArray returns an Array node whose elements are described by item.
// A nil item is allowed and means the element shape is unspecified.
func NewArray(item *Node) *Node {
	return &Node{Kind: Array, Items: item}
}

// NewString returns a String node.
func NewString() *Node { return New(String) }

// NewNumber returns a Number node.
func NewNumber() *Node { return New(Number) }

// NewInteger returns an Integer node.
func NewInteger() *Node { return New(Integer) }

// NewBool returns a Boolean node.
func NewBool() *Node { return New(Boolean) }

// Prop adds a named field to an Object node and returns the node for
// chaining. Adding a field that already exists replaces its child but
// keeps the field's original position.
func (n *Node) Prop(name string, child *Node) *Node {
	if n.Properties == nil {
		n.Properties = ordered.NewMap()
	}
	n.Properties.Put(name, child)
	return n
}

// Describe attaches a human-readable description to the node and
// returns it for chaining.
func (n *Node) Describe(desc string) *Node {
	n.Description = desc
	return n
}

// Min sets the lower cardinality bound of an Array node.
func (n *Node) Min(v int) *Node {
	n.MinOccurs = &v
	return n
}

// Max sets the upper cardinality bound of an Array node.
func (n *Node) Max(v int) *Node {
	n.MaxOccurs = &v
	return n
}

// Property returns the child node stored under name, or nil if n is
// not an Object node or has no such field.
func (n *Node) Property(name string) *Node {
	if n == nil || n.Properties == nil {
		return nil
	}
	v, ok := n.Properties.Get(name)
	if !ok {
		return nil
	}
	child, _ := v.(*Node)
	return child
}

// EachProperty calls fn for every field of an Object node in
// declaration order. It is a no-op for other kinds.
func (n *Node) EachProperty(fn func(name string, child *Node)) {
	if n == nil || n.Properties == nil {
		return
	}
	n.Properties.Range(func(key string, value interface{}) {
		child, _ := value.(*Node)
		fn(key, child)
	})
}
