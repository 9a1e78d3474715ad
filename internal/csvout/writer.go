// internal/csvout/writer.go
//
// Serializes flattened records to the consolidated CSV. The header is fixed
// at seventeen columns; encoding/csv applies the standard quoting rules
// (quote on comma, quote, or newline; double embedded quotes).

package csvout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ResourceInteractive/sfmc-devtools-consolidate/internal/asset"
)

// ErrNoRecords is returned when Write is asked to serialize an empty record
// list. No file is created in that case; an empty or header-only CSV would
// suggest a successful export that never happened.
var ErrNoRecords = errors.New("csvout: no records to write")

// OutputPath normalizes a user-entered output name, appending the .csv
// extension unless it is already there.
func OutputPath(name string) string {
	if filepath.Ext(name) == ".csv" {
		return name
	}
	return name + ".csv"
}

// Write serializes records to path (normalized via OutputPath) and returns
// the path actually written.
func Write(records []asset.Record, path string) (string, error) {
	if len(records) == 0 {
		return "", ErrNoRecords
	}
	path = OutputPath(path)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("csvout: create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(asset.Header()); err != nil {
		return "", fmt.Errorf("csvout: write header: %w", err)
	}
	for _, record := range records {
		if err := w.Write(record.Row()); err != nil {
			return "", fmt.Errorf("csvout: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("csvout: flush %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("csvout: close %s: %w", path, err)
	}
	return path, nil
}
