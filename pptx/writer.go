package pptx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/scantab/model"
)

// ErrEmptyTable is returned when asked to render a table with no rows.
var ErrEmptyTable = errors.New("cannot render an empty table")

// Default slide dimensions in EMUs (4:3, the presentation default).
const (
	DefaultSlideWidth  = 9144000
	DefaultSlideHeight = 6858000
)

// Writer renders tables into single-slide PPTX files.
type Writer struct {
	// SlideWidth and SlideHeight are the slide dimensions in EMUs. The
	// table is stretched to fill the whole slide.
	SlideWidth  int
	SlideHeight int
}

// NewWriter creates a Writer with default slide dimensions.
func NewWriter() *Writer {
	return &Writer{
		SlideWidth:  DefaultSlideWidth,
		SlideHeight: DefaultSlideHeight,
	}
}

// Write renders the table to a PPTX file at the given path.
func (w *Writer) Write(path string, t *model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := w.WriteTo(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTo renders the table as a PPTX package to the given writer.
func (w *Writer) WriteTo(out io.Writer, t *model.Table) error {
	if t == nil || t.RowCount() == 0 {
		return ErrEmptyTable
	}

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"ppt/presentation.xml", w.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
		{"ppt/slides/slide1.xml", w.slideXML(t)},
		{"ppt/slides/_rels/slide1.xml.rels", slideRelsXML},
	}

	zw := zip.NewWriter(out)
	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			zw.Close()
			return fmt.Errorf("creating package part %s: %w", part.name, err)
		}
		if _, err := io.WriteString(pw, part.content); err != nil {
			zw.Close()
			return fmt.Errorf("writing package part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing package: %w", err)
	}
	return nil
}

// presentationXML builds ppt/presentation.xml with the configured slide size.
func (w *Writer) presentationXML() string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	fmt.Fprintf(&sb, `<p:presentation xmlns:a=%q xmlns:r=%q xmlns:p=%q>`,
		nsDrawingML, nsRelationships, nsPresentationML)
	sb.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	sb.WriteString(`<p:sldIdLst><p:sldId id="256" r:id="rId2"/></p:sldIdLst>`)
	fmt.Fprintf(&sb, `<p:sldSz cx="%d" cy="%d"/>`, w.SlideWidth, w.SlideHeight)
	fmt.Fprintf(&sb, `<p:notesSz cx="%d" cy="%d"/>`, w.SlideHeight, w.SlideWidth)
	sb.WriteString(`</p:presentation>`)
	return sb.String()
}

// slideXML builds the slide with a graphicFrame table laid out as a
// rows × maxColumns grid, padding short rows with blank trailing cells.
func (w *Writer) slideXML(t *model.Table) string {
	rows := t.RowCount()
	cols := t.MaxColumns()
	colWidth := w.SlideWidth / cols
	rowHeight := w.SlideHeight / rows

	var sb strings.Builder
	sb.WriteString(xmlHeader)
	fmt.Fprintf(&sb, `<p:sld xmlns:a=%q xmlns:r=%q xmlns:p=%q>`,
		nsDrawingML, nsRelationships, nsPresentationML)
	sb.WriteString(`<p:cSld><p:spTree>`)
	sb.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`)

	sb.WriteString(`<p:graphicFrame>`)
	sb.WriteString(`<p:nvGraphicFramePr><p:cNvPr id="2" name="Table 1"/>` +
		`<p:cNvGraphicFramePr><a:graphicFrameLocks noGrp="1"/></p:cNvGraphicFramePr><p:nvPr/></p:nvGraphicFramePr>`)
	fmt.Fprintf(&sb, `<p:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></p:xfrm>`,
		w.SlideWidth, w.SlideHeight)
	sb.WriteString(`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table">`)
	sb.WriteString(`<a:tbl><a:tblPr firstRow="1" bandRow="1"/>`)

	sb.WriteString(`<a:tblGrid>`)
	for c := 0; c < cols; c++ {
		fmt.Fprintf(&sb, `<a:gridCol w="%d"/>`, colWidth)
	}
	sb.WriteString(`</a:tblGrid>`)

	for r := 0; r < rows; r++ {
		fmt.Fprintf(&sb, `<a:tr h="%d">`, rowHeight)
		for c := 0; c < cols; c++ {
			sb.WriteString(`<a:tc><a:txBody><a:bodyPr/>`)
			cell := t.Cell(r, c)
			if cell == "" {
				sb.WriteString(`<a:p/>`)
			} else {
				sb.WriteString(`<a:p><a:r><a:t>`)
				xml.EscapeText(&sb, []byte(cell))
				sb.WriteString(`</a:t></a:r></a:p>`)
			}
			sb.WriteString(`</a:txBody><a:tcPr/></a:tc>`)
		}
		sb.WriteString(`</a:tr>`)
	}

	sb.WriteString(`</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`)
	sb.WriteString(`</p:spTree></p:cSld>`)
	sb.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	sb.WriteString(`</p:sld>`)
	return sb.String()
}
