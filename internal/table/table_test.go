package table

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// Writing then reading must preserve the header and every row in order.
func TestTable_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "personen.csv")

	original := Sample()
	if err := original.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loaded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if !reflect.DeepEqual(loaded.Header, original.Header) {
		t.Errorf("Header = %v, want %v", loaded.Header, original.Header)
	}
	if len(loaded.Rows) != len(original.Rows) {
		t.Fatalf("got %d rows, want %d", len(loaded.Rows), len(original.Rows))
	}
	for i, row := range original.Rows {
		if !reflect.DeepEqual(loaded.Rows[i], row) {
			t.Errorf("row %d = %v, want %v", i, loaded.Rows[i], row)
		}
	}
}

func TestSample(t *testing.T) {
	tbl := Sample()

	if len(tbl.Header) != 3 {
		t.Errorf("header has %d columns, want 3", len(tbl.Header))
	}
	if len(tbl.Rows) != 3 {
		t.Errorf("table has %d rows, want 3", len(tbl.Rows))
	}
	for i, row := range tbl.Rows {
		if len(row) != len(tbl.Header) {
			t.Errorf("row %d has %d cells, want %d", i, len(row), len(tbl.Header))
		}
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile("/nonexistent/personen.csv"); err == nil {
		t.Error("ReadFile() should fail for a missing file")
	}
}

func TestReadFile_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leer.csv")

	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := ReadFile(path); err == nil {
		t.Error("ReadFile() should fail for an empty file")
	}
}

func TestReadFile_Ragged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kaputt.csv")

	if err := os.WriteFile(path, []byte("a,b,c\n1,2\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := ReadFile(path); err == nil {
		t.Error("ReadFile() should fail for rows with mismatched field counts")
	}
}
