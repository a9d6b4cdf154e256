package snapshot

import (
	"encoding/json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Dir is where snapshot files live, relative to the package under test
const Dir = "testdata"

// Validate compares the indented JSON encoding of obj with testdata/<name>.json
// A missing snapshot file is written from obj and the check passes.
func Validate(t *testing.T, name string, obj interface{}) bool {
	t.Helper()

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	require.NoError(t, err)

	filename := filepath.Join(Dir, name+".json")
	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		require.NoError(t, write(filename, objJSON))
		return true
	}

	require.NoError(t, err)

	if !assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(objJSON))) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func write(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0644)
}
