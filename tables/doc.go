// Package tables reconstructs an ordered grid of rows from positioned text
// detections.
//
// Text runs printed on the same table row share nearly identical vertical
// baselines. The [Reconstructor] exploits that: it walks the detection
// sequence once, keeping a running baseline, and starts a new row whenever a
// detection's bottom-left Y coordinate jumps past the baseline by more than
// the configured gap. Cells land in rows in detection order; no column
// positions are computed, so the resulting rows are ragged.
package tables
