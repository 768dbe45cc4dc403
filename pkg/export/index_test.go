package export

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remogolf/wallace/pkg/codec"
)

func TestIndexSink_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	sink, err := OpenIndex(dir)
	require.NoError(t, err)
	runID := sink.RunID()
	assert.NotEmpty(t, runID)

	require.NoError(t, sink.Put(msg("GPS", "LAT", "47.1")))
	require.NoError(t, sink.Put(msg("GPS", "LAT", "47.2")))
	require.NoError(t, sink.Put(msg("IMU", "AX", "9")))
	require.NoError(t, sink.Close())

	db, err := pebble.Open(dir, &pebble.Options{})
	require.NoError(t, err)
	defer db.Close()

	value, closer, err := db.Get([]byte(fmt.Sprintf("%s/GPS/%012d", runID, 1)))
	require.NoError(t, err)
	defer closer.Close()

	var fields []codec.FieldValue
	require.NoError(t, json.Unmarshal(value, &fields))
	assert.Equal(t, []codec.FieldValue{{Name: "LAT", Value: "47.2"}}, fields)

	_, _, err = db.Get([]byte(fmt.Sprintf("%s/IMU/%012d", runID, 1)))
	assert.ErrorIs(t, err, pebble.ErrNotFound)
}
