package deserializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"param-deserializer/params"
)

func TestDeserializeJSONAPI(t *testing.T) {
	doc, err := params.ParseJSON([]byte(`{
		"data": {
			"id": "42",
			"type": "messages",
			"attributes": {"user_id": 6, "text": "hi", "ignored": true}
		}
	}`))
	require.NoError(t, err)

	var gotID, gotType any

	got, err := DeserializeJSONAPI(basicSchema, doc, func(id, typ any) {
		gotID, gotType = id, typ
	})
	require.NoError(t, err)

	assertObject(t, map[string]any{"user_id": 6, "text": "hi"}, got)
	assert.Equal(t, "42", gotID)
	assert.Equal(t, "messages", gotType)
}

func TestDeserializeJSONAPI_NilYield(t *testing.T) {
	doc := params.FromPairs("data", params.FromPairs("attributes", params.FromPairs("text", "t")))

	got, err := DeserializeJSONAPI(basicSchema, doc, nil)
	require.NoError(t, err)
	assertObject(t, map[string]any{"text": "t"}, got)
}

func TestDeserializeJSONAPI_MissingAttributes(t *testing.T) {
	for _, doc := range []*params.Map{
		params.New(),
		params.FromPairs("data", params.FromPairs("id", 1)),
		params.FromPairs("data", params.FromPairs("attributes", nil)),
	} {
		called := false

		_, err := DeserializeJSONAPI(basicSchema, doc, func(_, _ any) { called = true })
		require.ErrorIs(t, err, ErrInput)
		assert.True(t, called, "id and type are yielded before attributes are read")
	}

	_, err := DeserializeJSONAPI(basicSchema, nil, nil)
	require.ErrorIs(t, err, ErrInput)
}

func TestDeserializeJSONAPI_DasherizedAttributes(t *testing.T) {
	doc, err := params.ParseJSON([]byte(`{
		"data": {
			"attributes": {
				"id": 1,
				"attributes": [{"user": 1, "text": "a"}],
				"user-id": 5
			}
		}
	}`))
	require.NoError(t, err)

	d := New(WithDasherizedAttributes())

	got, err := d.DeserializeJSONAPI(hasManySchema, doc, nil)
	require.NoError(t, err)
	assertObject(t, map[string]any{
		"id":         1,
		"attributes": []any{map[string]any{"user_id": 1, "text": "a"}},
	}, got)

	got, err = d.DeserializeJSONAPI(basicSchema, doc, nil)
	require.NoError(t, err)
	assertObject(t, map[string]any{"user_id": 5}, got)
}
