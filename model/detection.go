package model

// Detection is a single result from the text detection engine: the
// quadrilateral locating a run of text on the page image, the recognized
// string, and the engine's confidence (0-100, engine dependent).
//
// The sequence order of detections is whatever the engine emitted; it is
// not guaranteed to be row-major or column-major.
type Detection struct {
	Quad       Quad    `json:"quad"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence,omitempty"`
}
