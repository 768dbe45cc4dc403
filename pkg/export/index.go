package export

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/remogolf/wallace/pkg/logfile"
)

// IndexSink persists decoded messages into a pebble store so other tooling
// can look them up after the run. Keys are <runID>/<name>/<seq>, where seq is
// the message's zero-based position within its name group; values are the
// JSON-encoded field pairs.
type IndexSink struct {
	db  *pebble.DB
	run ksuid.KSUID
	seq map[string]uint64
}

// OpenIndex opens (or creates) a pebble store at dir and stamps this run
// with a fresh ID, so repeated runs over the same store never collide.
func OpenIndex(dir string) (*IndexSink, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open index at %s: %w", dir, err)
	}
	return &IndexSink{
		db:  db,
		run: ksuid.New(),
		seq: make(map[string]uint64),
	}, nil
}

// RunID returns the identifier under which this run's messages are keyed.
func (s *IndexSink) RunID() string {
	return s.run.String()
}

// Put stores one decoded message.
func (s *IndexSink) Put(msg logfile.Message) error {
	n := s.seq[msg.Name]
	s.seq[msg.Name] = n + 1

	key := fmt.Sprintf("%s/%s/%012d", s.run, msg.Name, n)
	value, err := json.Marshal(msg.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode message %s: %w", key, err)
	}
	if err := s.db.Set([]byte(key), value, pebble.NoSync); err != nil {
		return fmt.Errorf("failed to index message %s: %w", key, err)
	}
	return nil
}

// Close flushes and closes the underlying store.
func (s *IndexSink) Close() error {
	if err := s.db.Flush(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}
