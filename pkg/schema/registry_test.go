package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRegistry = `{
  "1": {
    "name": "HELLO",
    "fields": [
      {"name": "A", "type": "H"},
      {"name": "B", "type": "B"}
    ]
  },
  "129": {
    "name": "GPS",
    "fields": [
      {"name": "TIME_US", "type": "Q"},
      {"name": "PADDING", "type": "H"},
      {"name": "LAT", "type": "i"}
    ]
  }
}`

func TestParse(t *testing.T) {
	reg, err := Parse(strings.NewReader(sampleRegistry))
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []uint16{1, 129}, reg.Types())

	def, ok := reg.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "HELLO", def.Name)
	require.Len(t, def.Fields, 2)
	assert.Equal(t, "A", def.Fields[0].Name)
	assert.Equal(t, "H", def.Fields[0].Code)

	_, ok = reg.Lookup(2)
	assert.False(t, ok)
}

func TestParse_RejectsBadKeys(t *testing.T) {
	for _, key := range []string{"GPS", "-1", "65536", "1.5", ""} {
		_, err := Parse(strings.NewReader(`{"` + key + `": {"name": "X", "fields": []}}`))
		assert.Error(t, err, "key %q should be rejected", key)
		if err != nil {
			assert.Contains(t, err.Error(), "16-bit message type ID")
		}
	}
}

func TestParse_TailFieldMustBeLast(t *testing.T) {
	bad := `{
  "7": {
    "name": "MSG",
    "fields": [
      {"name": "FILE_CONTENTS", "type": "c"},
      {"name": "CRC", "type": "H"}
    ]
  }
}`
	_, err := Parse(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be the last field")

	good := `{
  "7": {
    "name": "MSG",
    "fields": [
      {"name": "CRC", "type": "H"},
      {"name": "FILE_CONTENTS", "type": "c"}
    ]
  }
}`
	_, err = Parse(strings.NewReader(good))
	assert.NoError(t, err)
}

func TestParse_UnresolvableCodesAreAllowed(t *testing.T) {
	// Bad type codes are a decode-time diagnostic, not a load failure.
	reg, err := Parse(strings.NewReader(`{"3": {"name": "ODD", "fields": [{"name": "X", "type": "??"}]}}`))
	require.NoError(t, err)
	def, ok := reg.Lookup(3)
	require.True(t, ok)
	_, resolvable := def.Fields[0].Rule()
	assert.False(t, resolvable)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"1": `))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleRegistry), 0o644))

	reg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
