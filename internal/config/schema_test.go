package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	t.Parallel()

	schema := Schema()
	require.NotNil(t, schema)
	assert.Equal(t, "vtopo cluster topology", schema.Title)
	assert.ElementsMatch(t, []string{"manager", "replica", "client"}, schema.Required)

	for _, role := range Roles() {
		prop, ok := schema.Properties.Get(string(role))
		require.True(t, ok, "missing property %s", role)
		assert.ElementsMatch(t, []string{"hostname", "cpus", "memory"}, prop.Required)

		_, hasCount := prop.Properties.Get("count")
		assert.True(t, hasCount)
	}
}

func TestSchemaJSON(t *testing.T) {
	t.Parallel()

	data, err := SchemaJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, SchemaID, decoded["$id"])
	assert.Contains(t, string(data), `"exclusiveMinimum": 0`)
}
