package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/remogolf/wallace/pkg/logfile"
)

// WriteCSV renders one group to path as delimited rows, using the first
// message's field names as the header. An empty group writes nothing and
// returns (0, nil). The row count written is returned.
func WriteCSV(path string, g Group) (int, error) {
	if len(g.Messages) == 0 {
		return 0, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := make([]string, len(g.Messages[0].Fields))
	for i, fv := range g.Messages[0].Fields {
		header[i] = fv.Name
	}
	if err := w.Write(header); err != nil {
		return 0, fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	row := make([]string, 0, len(header))
	for _, m := range g.Messages {
		row = row[:0]
		for _, fv := range m.Fields {
			row = append(row, fv.Value)
		}
		if err := w.Write(row); err != nil {
			return 0, fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return len(g.Messages), nil
}

// WriteWarningsLog writes one warning per line to path.
func WriteWarningsLog(path string, warnings []logfile.Warning) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create warnings log: %w", err)
	}
	defer f.Close()

	for _, w := range warnings {
		if _, err := fmt.Fprintln(f, w.String()); err != nil {
			return fmt.Errorf("failed to write warnings log: %w", err)
		}
	}
	return f.Close()
}
