package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidJSON = errors.New("invalid JSON document")
	ErrNotAMapping = errors.New("document is not a mapping")
)

// ParseJSON decodes a JSON object into a Map, keeping the document's key
// order at every level. Integral numbers decode as int, others as float64.
// A literal null decodes to a nil Map.
func ParseJSON(data []byte) (*Map, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		return nil, nil
	}

	if !res.IsObject() {
		return nil, fmt.Errorf("%w: got %s", ErrNotAMapping, res.Type)
	}

	m, _ := fromGJSON(res).(*Map)

	return m, nil
}

func fromGJSON(res gjson.Result) any {
	switch {
	case res.IsObject():
		m := New()
		res.ForEach(func(key, value gjson.Result) bool {
			m.Set(key.String(), fromGJSON(value))
			return true
		})

		return m

	case res.IsArray():
		out := []any{}
		res.ForEach(func(_, value gjson.Result) bool {
			out = append(out, fromGJSON(value))
			return true
		})

		return out
	}

	switch res.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		return jsonNumber(res)
	case gjson.String:
		return res.String()
	default:
		return nil
	}
}

func jsonNumber(res gjson.Result) any {
	if !strings.ContainsAny(res.Raw, ".eE") {
		if n, err := strconv.ParseInt(res.Raw, 10, 64); err == nil && n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
	}

	return res.Float()
}

// UnmarshalJSON implements json.Unmarshaler with ordered decoding.
func (m *Map) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}

	if parsed == nil {
		parsed = New()
	}

	*m = *parsed

	return nil
}

// MarshalJSON implements json.Marshaler, writing keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	i := 0
	for key, v := range m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}

		i++

		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		vb, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %q: %w", key, err)
		}

		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, keeping mapping key order.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	v, err := fromYAML(node)
	if err != nil {
		return err
	}

	parsed, ok := v.(*Map)
	if !ok {
		if v == nil {
			*m = *New()
			return nil
		}

		return fmt.Errorf("%w: got %T", ErrNotAMapping, v)
	}

	*m = *parsed

	return nil
}

func fromYAML(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return fromYAML(node.Content[0])

	case yaml.AliasNode:
		return fromYAML(node.Alias)

	case yaml.MappingNode:
		m := New()

		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("invalid mapping key at line %d: %w", node.Content[i].Line, err)
			}

			v, err := fromYAML(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			m.Set(key, v)
		}

		return m, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))

		for _, item := range node.Content {
			v, err := fromYAML(item)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil

	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}

		return v, nil

	default:
		return nil, fmt.Errorf("unexpected YAML node kind %v at line %d", node.Kind, node.Line)
	}
}

// MarshalYAML implements yaml.Marshaler, writing keys in insertion order.
func (m *Map) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for key, v := range m.All() {
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to marshal %q: %w", key, err)
		}

		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			valueNode,
		)
	}

	return out, nil
}

// ParseYAML decodes a YAML mapping document into a Map.
func ParseYAML(data []byte) (*Map, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	v, err := fromYAML(&node)
	if err != nil {
		return nil, err
	}

	if v == nil {
		return nil, nil
	}

	m, ok := v.(*Map)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAMapping, v)
	}

	return m, nil
}
