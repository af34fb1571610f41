// Package formatter renders fetched datasets for CLI output, either as
// JSON or as CSV with the normalized header preserved.
package formatter
