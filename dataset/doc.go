// Package dataset provides the in-memory tabular representation used by
// the fetchers.
//
// A Dataset is an ordered sequence of rows parsed from a CSV source. No
// schema is assumed ahead of time: source column names vary by publication
// year and must be normalized with NormalizeColumns before any field is
// referenced. Access to a column that does not exist after normalization
// fails with a typed *ColumnNotFoundError rather than silently producing
// empty values.
package dataset
