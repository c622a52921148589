package tabular

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tsawler/scantab/model"
)

func TestWriteSimpleTable(t *testing.T) {
	tbl := &model.Table{Rows: [][]string{
		{"Name", "Qty"},
		{"Widget", "3"},
	}}

	var buf bytes.Buffer
	if err := Write(&buf, tbl); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	want := "Name,Qty\nWidget,3\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestRoundTripSpecialCharacters(t *testing.T) {
	tbl := &model.Table{Rows: [][]string{
		{"plain", "with,comma"},
		{`with "quotes"`, "with\nnewline", "trailing"},
		{"comma, quote \" and\nnewline"},
	}}

	var buf bytes.Buffer
	if err := Write(&buf, tbl); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if !reflect.DeepEqual(got.Rows, tbl.Rows) {
		t.Errorf("Round trip changed table:\nwant %q\ngot  %q", tbl.Rows, got.Rows)
	}
}

func TestRoundTripRaggedRows(t *testing.T) {
	tbl := &model.Table{Rows: [][]string{
		{"a", "b", "c"},
		{"d"},
		{"e", "f"},
	}}

	var buf bytes.Buffer
	if err := Write(&buf, tbl); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if !reflect.DeepEqual(got.Rows, tbl.Rows) {
		t.Errorf("Ragged rows not preserved:\nwant %q\ngot  %q", tbl.Rows, got.Rows)
	}
	if got.MaxColumns() != 3 {
		t.Errorf("Expected MaxColumns 3, got %d", got.MaxColumns())
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	tbl := &model.Table{Rows: [][]string{{"x", "y"}, {"1", "2"}}}

	if err := WriteFile(path, tbl); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !reflect.DeepEqual(got.Rows, tbl.Rows) {
		t.Errorf("File round trip changed table: %q vs %q", got.Rows, tbl.Rows)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}
