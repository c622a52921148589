//go:build ocr

// Package ocr provides text detection for scanned table images.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// The engine loads its language model once per Client; create one Client and
// reuse it rather than constructing one per image.
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/scantab/model"
)

// Client wraps Tesseract for text detection.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client with the default language (English).
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// DetectText runs word-level text detection on the image and returns one
// Detection per recognized word: an axis-aligned quadrilateral plus the
// recognized string, NFC-normalized and whitespace-trimmed. Detections with
// empty text are dropped. The sequence order is the engine's native
// iteration order and carries no spatial guarantee.
func (c *Client) DetectText(img image.Image) ([]model.Detection, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding image for detection: %w", err)
	}
	if err := c.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("%w: setting image: %v", ErrDetectionFailed, err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetectionFailed, err)
	}

	detections := make([]model.Detection, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(norm.NFC.String(box.Word))
		if text == "" {
			continue
		}
		detections = append(detections, model.Detection{
			Quad: model.NewQuadFromRect(
				float64(box.Box.Min.X), float64(box.Box.Min.Y),
				float64(box.Box.Max.X), float64(box.Box.Max.Y),
			),
			Text:       text,
			Confidence: box.Confidence,
		})
	}
	return detections, nil
}
