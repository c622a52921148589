package ocr

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/scantab/model"
)

// SaveDetections writes a detection sequence as JSON, preserving order.
// Snapshots let reconstruction be re-run repeatably without invoking the
// detection engine again; they are a cache, not part of the pipeline
// contract.
func SaveDetections(w io.Writer, detections []model.Detection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(detections); err != nil {
		return fmt.Errorf("encoding detections: %w", err)
	}
	return nil
}

// LoadDetections reads a detection sequence previously written by
// SaveDetections.
func LoadDetections(r io.Reader) ([]model.Detection, error) {
	var detections []model.Detection
	if err := json.NewDecoder(r).Decode(&detections); err != nil {
		return nil, fmt.Errorf("decoding detections: %w", err)
	}
	return detections, nil
}

// SaveDetectionsFile writes a detection snapshot to a file.
func SaveDetectionsFile(path string, detections []model.Detection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot %s: %w", path, err)
	}
	defer f.Close()
	return SaveDetections(f, detections)
}

// LoadDetectionsFile reads a detection snapshot from a file.
func LoadDetectionsFile(path string) ([]model.Detection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot %s: %w", path, err)
	}
	defer f.Close()
	return LoadDetections(f)
}
