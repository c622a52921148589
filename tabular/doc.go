// Package tabular serializes reconstructed tables to delimited text and
// parses them back.
//
// The format is RFC 4180 CSV: one record per row, fields comma-separated
// with standard quoting for embedded delimiters, quotes, and newlines.
// Records may have differing field counts, since reconstructed rows are
// ragged.
package tabular
