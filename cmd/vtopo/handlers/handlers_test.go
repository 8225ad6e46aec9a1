package handlers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	testutil "github.com/imamik/vtopo/internal/testing"
)

var scenarioDoc = testutil.ScenarioDoc

// saveAndRestoreFactories saves and restores the handler factory functions.
func saveAndRestoreFactories(t *testing.T) {
	origFindConfigFile := findConfigFile
	origValidateConfig := validateConfig
	origExpandTopology := expandTopology
	origCheckTopology := checkTopology
	origSchemaJSON := schemaJSON
	origIsTerminal := isTerminal

	t.Cleanup(func() {
		findConfigFile = origFindConfigFile
		validateConfig = origValidateConfig
		expandTopology = origExpandTopology
		checkTopology = origCheckTopology
		schemaJSON = origSchemaJSON
		isTerminal = origIsTerminal
	})

	isTerminal = func() bool { return false }
}

// writeConfig writes doc to a cluster.yaml in a temporary directory.
func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cluster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}
