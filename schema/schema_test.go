package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilders(t *testing.T) {
	a := assert.New(t)
	user := NewObject().
		Prop("name", NewString().Describe("User's name")).
		Prop("age", NewNumber()).
		Prop("tags", NewArray(NewString()).Min(1).Max(10))

	a.Equal(Object, user.Kind)
	a.Equal([]string{"name", "age", "tags"}, user.Properties.Keys())

	name := user.Property("name")
	a.Equal(String, name.Kind)
	a.Equal("User's name", name.Description)

	tags := user.Property("tags")
	a.Equal(Array, tags.Kind)
	a.Equal(String, tags.Items.Kind)
	a.Equal(1, *tags.MinOccurs)
	a.Equal(10, *tags.MaxOccurs)

	a.Nil(user.Property("missing"))
	a.Nil(NewString().Property("anything"))
}

func TestEachPropertyOrder(t *testing.T) {
	n := NewObject().
		Prop("z", NewString()).
		Prop("a", NewInteger()).
		Prop("m", NewBool())

	var order []string
	n.EachProperty(func(name string, child *Node) {
		order = append(order, name+":"+child.Kind.String())
	})
	assert.Equal(t, []string{"z:string", "a:integer", "m:boolean"}, order)
}

func TestEachPropertyNonObject(t *testing.T) {
	NewString().EachProperty(func(string, *Node) {
		t.Fatal("primitive nodes have no properties")
	})
	var n *Node
	n.EachProperty(func(string, *Node) {
		t.Fatal("nil nodes have no properties")
	})
}

func TestKindString(t *testing.T) {
	a := assert.New(t)
	a.Equal("object", Object.String())
	a.Equal("integer", Integer.String())
	a.Equal("unknown", Unknown.String())
	a.Equal("unknown", Kind(42).String())
}
