package handlers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/vtopo/internal/topology"
)

func sampleTopology() *topology.Topology {
	return &topology.Topology{
		Manager: topology.NodeDescriptor{Hostname: "mgr", CPUs: 2, Memory: 1024, IP: "192.168.56.20"},
		Replica: []topology.NodeDescriptor{
			{Hostname: "node1", CPUs: 1, Memory: 512, IP: "192.168.56.31"},
		},
		Client: []topology.NodeDescriptor{},
	}
}

func TestRenderTopology_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format   string
		contains []string
	}{
		{OutputJSON, []string{`"hostname": "mgr"`, `"ip": "192.168.56.31"`, `"client": []`}},
		{OutputYAML, []string{"hostname: mgr", "ip: 192.168.56.31", "client: []"}},
		{OutputText, []string{"ROLE", "manager", "replica", "node1", "2 nodes (1 manager, 1 replicas, 0 clients)"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			out, err := renderTopology("cluster.yaml", sampleTopology(), tt.format, false)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRenderTopology_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := renderTopology("cluster.yaml", sampleTopology(), "xml", false)
	require.Error(t, err)
}

func TestRenderTopologyTable_Styled(t *testing.T) {
	t.Parallel()

	plain := renderTopologyTable("cluster.yaml", sampleTopology(), false)
	styled := renderTopologyTable("cluster.yaml", sampleTopology(), true)

	for _, out := range []string{plain, styled} {
		assert.Contains(t, out, "vtopo: cluster.yaml")
		assert.Contains(t, out, "192.168.56.20")
	}
	assert.True(t, strings.HasPrefix(plain, "vtopo: cluster.yaml\n"))
}

func TestSchema(t *testing.T) {
	saveAndRestoreFactories(t)

	var err error
	output := captureOutput(func() {
		err = Schema(context.Background())
	})
	require.NoError(t, err)
	assert.Contains(t, output, `"manager"`)
	assert.Contains(t, output, `"hostname"`)
}

func TestSchema_Error(t *testing.T) {
	saveAndRestoreFactories(t)

	schemaJSON = func() ([]byte, error) { return nil, errors.New("boom") }

	err := Schema(context.Background())
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}
