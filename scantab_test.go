package scantab

import (
	"archive/zip"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/scantab/model"
	"github.com/tsawler/scantab/raster"
	"github.com/tsawler/scantab/tables"
)

// tablePageImage draws a light page with a dark table outline so the deskew
// stage has a region to lock onto.
func tablePageImage() image.Image {
	g := image.NewGray(image.Rect(0, 0, 400, 300))
	for i := range g.Pix {
		g.Pix[i] = 240
	}
	border := image.Rect(40, 40, 360, 260)
	for x := border.Min.X; x < border.Max.X; x++ {
		for t := 0; t < 3; t++ {
			g.SetGray(x, border.Min.Y+t, color.Gray{Y: 10})
			g.SetGray(x, border.Max.Y-1-t, color.Gray{Y: 10})
		}
	}
	for y := border.Min.Y; y < border.Max.Y; y++ {
		for t := 0; t < 3; t++ {
			g.SetGray(border.Min.X+t, y, color.Gray{Y: 10})
			g.SetGray(border.Max.X-1-t, y, color.Gray{Y: 10})
		}
	}
	return g
}

// fakeRasterizer serves a fixed page image.
type fakeRasterizer struct {
	pages  int
	closed bool
}

func (f *fakeRasterizer) PageCount() int { return f.pages }

func (f *fakeRasterizer) RenderPage(index, dpi int) (image.Image, error) {
	return tablePageImage(), nil
}

func (f *fakeRasterizer) Close() error {
	f.closed = true
	return nil
}

// fakeDetector returns a canned detection sequence.
type fakeDetector struct {
	detections []model.Detection
	err        error
}

func (f *fakeDetector) DetectText(img image.Image) ([]model.Detection, error) {
	return f.detections, f.err
}

// detectionAt builds a detection whose bottom-left corner sits at (x, bottom).
func detectionAt(x, bottom float64, text string) model.Detection {
	return model.Detection{
		Quad: model.NewQuadFromRect(x, bottom-15, x+40, bottom),
		Text: text,
	}
}

func TestEndToEndRowReconstruction(t *testing.T) {
	// Three text runs at bottoms 100, 102, 140 reconstruct as two rows.
	detector := &fakeDetector{detections: []model.Detection{
		detectionAt(50, 100, "A"),
		detectionAt(150, 102, "B"),
		detectionAt(50, 140, "C"),
	}}

	table, err := Open("scan.pdf").
		WithRasterizer(&fakeRasterizer{pages: 1}).
		WithDetector(detector).
		Table()
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	want := [][]string{{"A", "B"}, {"C"}}
	if table.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", table.RowCount())
	}
	for i, row := range want {
		for j, cell := range row {
			if table.Rows[i][j] != cell {
				t.Errorf("Row %d cell %d: expected %q, got %q", i, j, cell, table.Rows[i][j])
			}
		}
	}
	if table.CellCount() != 3 {
		t.Errorf("Expected all 3 detections placed, got %d cells", table.CellCount())
	}
}

func TestEmptyDetectionsSurfaced(t *testing.T) {
	_, err := Open("scan.pdf").
		WithRasterizer(&fakeRasterizer{pages: 1}).
		WithDetector(&fakeDetector{}).
		Table()
	if !errors.Is(err, tables.ErrEmptyDetectionSet) {
		t.Errorf("Expected ErrEmptyDetectionSet, got: %v", err)
	}
}

func TestDetectorErrorPropagates(t *testing.T) {
	boom := errors.New("engine exploded")
	_, err := Open("scan.pdf").
		WithRasterizer(&fakeRasterizer{pages: 1}).
		WithDetector(&fakeDetector{err: boom}).
		Table()
	if !errors.Is(err, boom) {
		t.Errorf("Expected detector error to propagate, got: %v", err)
	}
}

func TestPageOutOfRange(t *testing.T) {
	_, err := Open("scan.pdf").
		WithRasterizer(&fakeRasterizer{pages: 2}).
		WithDetector(&fakeDetector{}).
		Page(5).
		Table()
	if !errors.Is(err, raster.ErrPageOutOfRange) {
		t.Errorf("Expected ErrPageOutOfRange, got: %v", err)
	}

	_, err = Open("scan.pdf").Page(-1).Table()
	if !errors.Is(err, raster.ErrPageOutOfRange) {
		t.Errorf("Expected ErrPageOutOfRange for negative index, got: %v", err)
	}
}

func TestChainingIsImmutable(t *testing.T) {
	base := Open("scan.pdf").WithRasterizer(&fakeRasterizer{pages: 1})
	tuned := base.RowGap(50).SortDetections()

	if base.options.rowGap != tables.DefaultRowGap {
		t.Error("Chaining mutated the base extractor's row gap")
	}
	if base.options.sortDetections {
		t.Error("Chaining mutated the base extractor's sort flag")
	}
	if tuned.options.rowGap != 50 || !tuned.options.sortDetections {
		t.Error("Chained options not applied to the new extractor")
	}
}

func TestCSVTerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	detector := &fakeDetector{detections: []model.Detection{
		detectionAt(10, 30, "x"),
		detectionAt(60, 31, "y,z"),
	}}

	err := Open("scan.pdf").
		WithRasterizer(&fakeRasterizer{pages: 1}).
		WithDetector(detector).
		CSV(path)
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading CSV: %v", err)
	}
	if got := string(data); got != "x,\"y,z\"\n" {
		t.Errorf("Unexpected CSV output: %q", got)
	}
}

func TestSlideTerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pptx")
	detector := &fakeDetector{detections: []model.Detection{
		detectionAt(10, 30, "head"),
		detectionAt(10, 80, "body"),
	}}

	err := Open("scan.pdf").
		WithRasterizer(&fakeRasterizer{pages: 1}).
		WithDetector(detector).
		Slide(path)
	if err != nil {
		t.Fatalf("Slide failed: %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Slide output is not a valid PPTX package: %v", err)
	}
	defer zr.Close()
	found := false
	for _, f := range zr.File {
		if f.Name == "ppt/slides/slide1.xml" {
			found = true
		}
	}
	if !found {
		t.Error("Package is missing slide1.xml")
	}
}

func TestDebugDumps(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "debug")
	detector := &fakeDetector{detections: []model.Detection{detectionAt(10, 30, "x")}}

	_, err := Open("scan.pdf").
		WithRasterizer(&fakeRasterizer{pages: 1}).
		WithDetector(detector).
		DebugDir(dir).
		Table()
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	for _, name := range []string{"extract.png", "deskew.png", "striplines.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Missing debug dump %s: %v", name, err)
		}
	}
}

func TestImageInput(t *testing.T) {
	// A pre-rendered page image skips rasterization entirely.
	path := filepath.Join(t.TempDir(), "page.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, tablePageImage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	detector := &fakeDetector{detections: []model.Detection{
		detectionAt(50, 100, "only"),
	}}
	table, err := Open(path).WithDetector(detector).Table()
	if err != nil {
		t.Fatalf("Table from image input failed: %v", err)
	}
	if table.RowCount() != 1 || table.Rows[0][0] != "only" {
		t.Errorf("Unexpected table: %v", table.Rows)
	}

	// Image input has exactly one page.
	_, err = Open(path).WithDetector(detector).Page(1).Table()
	if !errors.Is(err, raster.ErrPageOutOfRange) {
		t.Errorf("Expected ErrPageOutOfRange for page 1 of an image, got: %v", err)
	}
}

func TestMissingSource(t *testing.T) {
	_, err := Open("").WithDetector(&fakeDetector{}).Table()
	if err == nil {
		t.Error("Expected an error when no source is specified")
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(Open("scan.pdf").Page(-1).Table())
}
