package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/scantab/model"
)

func writeDeck(t *testing.T, tbl *model.Table) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := NewWriter().WriteTo(&buf, tbl); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("Output is not a valid ZIP archive: %v", err)
	}
	return zr
}

func readPart(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("Opening part %s: %v", name, err)
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("Reading part %s: %v", name, err)
			}
			return string(data)
		}
	}
	t.Fatalf("Package is missing part %s", name)
	return ""
}

// wellFormed checks the part parses as XML.
func wellFormed(t *testing.T, content string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(content))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("Malformed XML: %v", err)
		}
	}
}

func TestWriteToEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter().WriteTo(&buf, model.NewTable())
	if !errors.Is(err, ErrEmptyTable) {
		t.Errorf("Expected ErrEmptyTable, got: %v", err)
	}
	if err := NewWriter().WriteTo(&buf, nil); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("Expected ErrEmptyTable for nil table, got: %v", err)
	}
}

func TestWriteToPackageParts(t *testing.T) {
	tbl := &model.Table{Rows: [][]string{{"a", "b"}, {"c"}}}
	zr := writeDeck(t, tbl)

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
	}
	for _, name := range required {
		wellFormed(t, readPart(t, zr, name))
	}
}

func TestSlideTableGrid(t *testing.T) {
	tbl := &model.Table{Rows: [][]string{
		{"Name", "Qty", "Price"},
		{"Widget"},
	}}
	zr := writeDeck(t, tbl)
	slide := readPart(t, zr, "ppt/slides/slide1.xml")

	if got := strings.Count(slide, "<a:gridCol"); got != 3 {
		t.Errorf("Expected 3 grid columns, got %d", got)
	}
	if got := strings.Count(slide, "<a:tr "); got != 2 {
		t.Errorf("Expected 2 table rows, got %d", got)
	}
	// Every row carries maxColumns cells; short rows are padded blank.
	if got := strings.Count(slide, "<a:tc>"); got != 6 {
		t.Errorf("Expected 6 cells in padded grid, got %d", got)
	}
	if got := strings.Count(slide, "<a:p/>"); got != 2 {
		t.Errorf("Expected 2 blank padded cells, got %d", got)
	}
	for _, text := range []string{"Name", "Qty", "Price", "Widget"} {
		if !strings.Contains(slide, ">"+text+"<") {
			t.Errorf("Slide is missing cell text %q", text)
		}
	}
}

func TestSlideEscapesCellText(t *testing.T) {
	tbl := &model.Table{Rows: [][]string{{`<b>&"bold"</b>`}}}
	zr := writeDeck(t, tbl)
	slide := readPart(t, zr, "ppt/slides/slide1.xml")

	wellFormed(t, slide)
	if strings.Contains(slide, "<b>") {
		t.Error("Cell text was not XML-escaped")
	}
	if !strings.Contains(slide, "&lt;b&gt;") {
		t.Error("Expected escaped markup in slide XML")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	tbl := &model.Table{Rows: [][]string{{"x"}}}

	if err := NewWriter().Write(path, tbl); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Written file is not a valid ZIP: %v", err)
	}
	defer zr.Close()
	if len(zr.File) == 0 {
		t.Error("Package has no parts")
	}
}

func TestPresentationSlideSize(t *testing.T) {
	w := NewWriter()
	w.SlideWidth = 12192000
	w.SlideHeight = 6858000

	var buf bytes.Buffer
	if err := w.WriteTo(&buf, &model.Table{Rows: [][]string{{"x"}}}); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("Invalid ZIP: %v", err)
	}
	pres := readPart(t, zr, "ppt/presentation.xml")
	if !strings.Contains(pres, `cx="12192000"`) {
		t.Error("Configured slide width not written")
	}
}
