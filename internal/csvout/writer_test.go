package csvout

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ResourceInteractive/sfmc-devtools-consolidate/internal/asset"
)

func TestOutputPathAppendsExtension(t *testing.T) {
	if got := OutputPath("export"); got != "export.csv" {
		t.Fatalf("OutputPath(export) = %q", got)
	}
	if got := OutputPath("export.csv"); got != "export.csv" {
		t.Fatalf("OutputPath(export.csv) = %q", got)
	}
	if got := OutputPath("export.txt"); got != "export.txt.csv" {
		t.Fatalf("OutputPath(export.txt) = %q", got)
	}
}

func TestWriteRefusesEmptyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	if _, err := Write(nil, path); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
	if _, err := os.Stat(path + ".csv"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("no file should be created for empty records")
	}
}

func TestWriteProducesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	records := []asset.Record{
		{CustomerKey: "CK1", AssetName: "Asset1"},
		{CustomerKey: "CK2", FieldIsRequired: true},
	}
	written, err := Write(records, path)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if written != path+".csv" {
		t.Fatalf("written path = %s", written)
	}

	rows := readCSV(t, written)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	head := asset.Header()
	for i, title := range head {
		if rows[0][i] != title {
			t.Fatalf("header[%d] = %q, want %q", i, rows[0][i], title)
		}
	}
	if rows[1][0] != "CK1" || rows[1][3] != "Asset1" {
		t.Fatalf("row 1 = %v", rows[1])
	}
	if rows[2][15] != "true" {
		t.Fatalf("row 2 IsRequired = %q, want true", rows[2][15])
	}
}

func TestWriteQuotesSpecialCharacters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quoted.csv")
	records := []asset.Record{{
		AssetName:   `Comma, and "quotes"`,
		Description: "line one\nline two",
	}}
	written, err := Write(records, path)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	raw, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(raw), `"Comma, and ""quotes"""`) {
		t.Fatalf("expected doubled quotes in output:\n%s", raw)
	}

	rows := readCSV(t, written)
	if rows[1][3] != `Comma, and "quotes"` {
		t.Fatalf("round-trip AssetName = %q", rows[1][3])
	}
	if rows[1][4] != "line one\nline two" {
		t.Fatalf("round-trip Description = %q", rows[1][4])
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}
