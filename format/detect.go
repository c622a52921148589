// Package format provides input format detection for the scantab library.
package format

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document to be rasterized.
	PDF
	// PNG indicates a pre-rendered page image.
	PNG
	// JPEG indicates a pre-rendered page image.
	JPEG
	// TIFF indicates a pre-rendered page image.
	TIFF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	default:
		return "Unknown"
	}
}

// IsImage reports whether the format is a pre-rendered page image that can
// skip rasterization.
func (f Format) IsImage() bool {
	return f == PNG || f == JPEG || f == TIFF
}

// Magic numbers for content sniffing.
var (
	magicPDF   = []byte("%PDF")
	magicPNG   = []byte{0x89, 'P', 'N', 'G'}
	magicJPEG  = []byte{0xFF, 0xD8, 0xFF}
	magicTIFFL = []byte{'I', 'I', 0x2A, 0x00}
	magicTIFFB = []byte{'M', 'M', 0x00, 0x2A}
)

// Detect sniffs the format from the first bytes of content.
func Detect(head []byte) Format {
	switch {
	case bytes.HasPrefix(head, magicPDF):
		return PDF
	case bytes.HasPrefix(head, magicPNG):
		return PNG
	case bytes.HasPrefix(head, magicJPEG):
		return JPEG
	case bytes.HasPrefix(head, magicTIFFL), bytes.HasPrefix(head, magicTIFFB):
		return TIFF
	default:
		return Unknown
	}
}

// DetectFile determines the format of a file by its content, falling back
// to the extension when the file cannot be read.
func DetectFile(filename string) Format {
	f, err := os.Open(filename)
	if err != nil {
		return detectByExtension(filename)
	}
	defer f.Close()

	head := make([]byte, 8)
	n, err := io.ReadFull(f, head)
	if err != nil && n == 0 {
		return detectByExtension(filename)
	}

	if format := Detect(head[:n]); format != Unknown {
		return format
	}
	return detectByExtension(filename)
}

// detectByExtension guesses the format from the filename extension.
func detectByExtension(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	default:
		return Unknown
	}
}
