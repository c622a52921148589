package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// ErrDetectionFailed wraps opaque failures from the underlying detection
// engine. These are not recoverable locally; callers should surface them.
var ErrDetectionFailed = errors.New("text detection failed")
