// Package export turns decoded messages into their output forms: per-type
// CSV files, a warnings log, and an optional pebble index.
package export

import "github.com/remogolf/wallace/pkg/logfile"

// Group is every decoded message sharing one message name, in stream order.
type Group struct {
	Name     string
	Messages []logfile.Message
}

// ByName buckets messages by message name. Groups come back in order of
// first appearance so output is deterministic for a given stream.
func ByName(msgs []logfile.Message) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, m := range msgs {
		i, ok := index[m.Name]
		if !ok {
			i = len(groups)
			index[m.Name] = i
			groups = append(groups, Group{Name: m.Name})
		}
		groups[i].Messages = append(groups[i].Messages, m)
	}
	return groups
}
