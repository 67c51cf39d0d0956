package schema

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/soapkit/xsdbridge/internal/ordered"
)

// Decode parses a JSON-Schema-like document into a schema tree. The
// declaration order of properties is preserved, which is why the
// document is walked token by token rather than decoded into Go maps.
//
// Decode fails only on malformed JSON. A structurally valid document
// that is not a recognizable schema degrades to Unknown-kind nodes;
// it never produces an error.
func Decode(doc []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, errors.Wrap(err, "decode schema document")
	}
	return FromValue(v), nil
}

// FromValue converts an already-decoded JSON-Schema-like value into a
// schema tree. Values may be *ordered.Map (as produced by Decode) or
// plain map[string]interface{}; plain maps are traversed in lexical
// key order since their declaration order is lost. FromValue never
// fails: unrecognizable input becomes an Unknown node.
func FromValue(v interface{}) *Node {
	m, ok := asMap(v)
	if !ok {
		return &Node{}
	}
	n := &Node{Kind: kindOf(field(m, "type"))}
	if desc, ok := field(m, "description").(string); ok {
		n.Description = desc
	}
	switch n.Kind {
	case Object:
		n.Properties = ordered.NewMap()
		if props, ok := asMap(field(m, "properties")); ok {
			props.Range(func(name string, pv interface{}) {
				n.Properties.Put(name, FromValue(pv))
			})
		}
	case Array:
		if item := firstItem(field(m, "items")); item != nil {
			n.Items = FromValue(item)
		}
		n.MinOccurs = intField(m, "minItems")
		n.MaxOccurs = intField(m, "maxItems")
	}
	return n
}

// asMap views v as an ordered map. Plain maps are copied into lexical
// key order so traversal stays deterministic.
func asMap(v interface{}) (*ordered.Map, bool) {
	switch m := v.(type) {
	case *ordered.Map:
		return m, true
	case map[string]interface{}:
		om := ordered.NewMap()
		for _, k := range ordered.SortedKeys(m) {
			om.Put(k, m[k])
		}
		return om, true
	}
	return nil, false
}

func field(m *ordered.Map, name string) interface{} {
	v, _ := m.Get(name)
	return v
}

// kindOf resolves a type tag to a Kind. The tag may be a single
// string or an array of strings, in which case the first tag wins.
// Anything else maps to Unknown.
func kindOf(tag interface{}) Kind {
	switch t := tag.(type) {
	case string:
		return parseKind(t)
	case []interface{}:
		if len(t) > 0 {
			if s, ok := t[0].(string); ok {
				return parseKind(s)
			}
		}
	}
	return Unknown
}

func parseKind(tag string) Kind {
	for k, name := range kindNames {
		if name == tag {
			return Kind(k)
		}
	}
	return Unknown
}

// firstItem resolves an items descriptor, which may be a single
// descriptor or an array of them (first element wins).
func firstItem(v interface{}) interface{} {
	if seq, ok := v.([]interface{}); ok {
		if len(seq) == 0 {
			return nil
		}
		return seq[0]
	}
	return v
}

func intField(m *ordered.Map, name string) *int {
	var i int
	switch v := field(m, name).(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil
		}
		i = int(n)
	case float64:
		i = int(v)
	case int:
		i = v
	default:
		return nil
	}
	return &i
}

// decodeValue reads one JSON value from dec. Objects come back as
// *ordered.Map so key order survives; arrays as []interface{};
// scalars as string, json.Number, bool or nil.
func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		m := ordered.NewMap()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := keyTok.(string)
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			m.Put(key, v)
		}
		// consume the closing brace
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return m, nil
	case '[':
		var seq []interface{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return seq, nil
	}
	return nil, errors.Errorf("unexpected delimiter %q", delim)
}
