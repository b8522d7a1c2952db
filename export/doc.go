// Package export writes render results to disk: numbered frame and mask
// PNGs, the coordinate track JSON and a printable PDF track sheet.
package export
