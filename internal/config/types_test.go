package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawConfig_Block(t *testing.T) {
	t.Parallel()

	parsed, err := parse("cluster.yaml", []byte(validDoc))
	require.NoError(t, err)
	assert.IsType(t, RawConfig{}, parsed["manager"], "yaml.v3 reuses the target map type for nested mappings")

	tests := []struct {
		name  string
		value any
		ok    bool
	}{
		{"parsed document", parsed["manager"], true},
		{"nested RawConfig", RawConfig{"hostname": "mgr"}, true},
		{"plain map", map[string]any{"hostname": "mgr"}, true},
		{"any-keyed map", map[any]any{"hostname": "mgr", 1: "x"}, true},
		{"null", nil, false},
		{"scalar", "mgr", false},
		{"list", []any{"mgr"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			block, ok := RawConfig{"manager": tt.value}.Block(RoleManager)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, "mgr", block[KeyHostname])
			}
		})
	}
}

func TestRole(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Role{RoleManager, RoleReplica, RoleClient}, Roles())
	for _, r := range Roles() {
		assert.True(t, r.IsValid())
		assert.Equal(t, string(r), r.String())
	}
	assert.False(t, Role("worker").IsValid())
}
