package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remogolf/wallace/pkg/codec"
	"github.com/remogolf/wallace/pkg/logfile"
)

func msg(name string, pairs ...string) logfile.Message {
	m := logfile.Message{Name: name}
	for i := 0; i < len(pairs); i += 2 {
		m.Fields = append(m.Fields, codec.FieldValue{Name: pairs[i], Value: pairs[i+1]})
	}
	return m
}

func TestByName(t *testing.T) {
	groups := ByName([]logfile.Message{
		msg("GPS", "LAT", "1"),
		msg("IMU", "AX", "9"),
		msg("GPS", "LAT", "2"),
		msg("GPS", "LAT", "3"),
		msg("IMU", "AX", "8"),
	})

	assert.Len(t, groups, 2)
	assert.Equal(t, "GPS", groups[0].Name)
	assert.Len(t, groups[0].Messages, 3)
	assert.Equal(t, "IMU", groups[1].Name)
	assert.Len(t, groups[1].Messages, 2)
	// Stream order preserved within a group.
	assert.Equal(t, "1", groups[0].Messages[0].Fields[0].Value)
	assert.Equal(t, "3", groups[0].Messages[2].Fields[0].Value)
}

func TestByName_Empty(t *testing.T) {
	assert.Empty(t, ByName(nil))
}
