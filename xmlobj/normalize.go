package xmlobj

import "strings"

// Normalize rewrites a raw parsed tree into its normalized object
// form. The XML declaration pseudo-entry is discarded, the document's
// single root element is unwrapped (whatever its tag name), and
// plural wrappers around repeated elements are collapsed.
//
// Normalize never fails. If the tree has no recognizable root
// wrapper, the declaration-stripped tree is returned as is. The input
// tree is consumed: callers must not reuse it after the call.
func Normalize(tree map[string]interface{}) map[string]interface{} {
	if tree == nil {
		return map[string]interface{}{}
	}
	delete(tree, declKey)

	wrapper, ok := rootWrapper(tree)
	if !ok {
		return tree
	}
	for name, value := range wrapper {
		inner, ok := value.(map[string]interface{})
		if !ok {
			continue
		}
		if seq, ok := pluralSequence(name, inner); ok {
			wrapper[name] = seq
		}
	}
	return wrapper
}

// rootWrapper returns the inner mapping of the document's single root
// element. The root's tag name is not interpreted; the wrapper is
// simply the sole remaining top-level entry, provided it holds a
// mapping.
func rootWrapper(tree map[string]interface{}) (map[string]interface{}, bool) {
	if len(tree) != 1 {
		return nil, false
	}
	for _, value := range tree {
		if m, ok := value.(map[string]interface{}); ok {
			return m, true
		}
	}
	return nil, false
}

// pluralSequence applies the array-collapsing heuristic: a field
// whose name ends in "s" and whose mapping holds, under the singular
// form of that name, a value that is already a sequence, is replaced
// by that sequence. The trailing-s rule is a deliberate, documented
// limitation; irregular plurals are left alone.
func pluralSequence(name string, inner map[string]interface{}) ([]interface{}, bool) {
	singular := strings.TrimSuffix(name, "s")
	if singular == name {
		return nil, false
	}
	seq, ok := inner[singular].([]interface{})
	return seq, ok
}
