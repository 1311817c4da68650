package params

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseJSON_KeepsOrder(t *testing.T) {
	m, err := ParseJSON([]byte(`{"z": 1, "a": {"y": 2.5, "b": [1, "x", null, true]}, "m": false}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	a, _ := m.Get("a")
	inner, ok := AsMap(a)
	require.True(t, ok)
	assert.Equal(t, []string{"y", "b"}, inner.Keys())

	assert.Equal(t, map[string]any{
		"z": 1,
		"a": map[string]any{"y": 2.5, "b": []any{1, "x", nil, true}},
		"m": false,
	}, m.Plain())
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := ParseJSON([]byte(`{"a":`))
	require.ErrorIs(t, err, ErrInvalidJSON)

	_, err = ParseJSON([]byte(`[1, 2]`))
	require.ErrorIs(t, err, ErrNotAMapping)
}

func TestParseJSON_Null(t *testing.T) {
	m, err := ParseJSON([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestMarshalJSON_Ordered(t *testing.T) {
	m := FromPairs("z", 1, "a", FromPairs("k", "v"), "l", []any{FromPairs("q", nil)})

	data, err := json.Marshal(m)
	require.NoError(t, err)

	assert.Equal(t, `{"z":1,"a":{"k":"v"},"l":[{"q":null}]}`, string(data))
}

func TestJSONRoundTripThroughStruct(t *testing.T) {
	var doc struct {
		Data *Map `json:"data"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"data": {"b": 1, "a": 2}}`), &doc))
	require.NotNil(t, doc.Data)
	assert.Equal(t, []string{"b", "a"}, doc.Data.Keys())
}

func TestParseYAML_KeepsOrder(t *testing.T) {
	m, err := ParseYAML([]byte(`
zeta: 1
alpha:
  second: true
  first: [a, b]
empty: ""
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "empty"}, m.Keys())

	alpha, _ := m.Get("alpha")
	inner, ok := AsMap(alpha)
	require.True(t, ok)
	assert.Equal(t, []string{"second", "first"}, inner.Keys())

	first, _ := inner.Get("first")
	assert.Equal(t, []any{"a", "b"}, first)
}

func TestParseYAML_NotAMapping(t *testing.T) {
	_, err := ParseYAML([]byte(`- a`))
	require.ErrorIs(t, err, ErrNotAMapping)
}

func TestMarshalYAML_Ordered(t *testing.T) {
	m := FromPairs("b", 1, "a", FromPairs("d", "x", "c", "z"))

	data, err := yaml.Marshal(m)
	require.NoError(t, err)

	assert.Equal(t, "b: 1\na:\n    d: x\n    c: z\n", string(data))
}
