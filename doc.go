/*
Package ecobici retrieves the public Buenos Aires bike-share datasets
(user registry and trip-history records) published as yearly CSV and ZIP
files, normalizes column naming, and optionally derives categorical
features for downstream analysis.

It is a data-acquisition utility, not a service: every call is
synchronous, one-shot and stateless, and the result is handed back in
memory.

# Basic Usage

	cfg := config.Config.Source
	f := ecobici.NewFetcher(cfg)

	// Yearly user registry, June only, with derived columns.
	users, err := f.FetchUsers(2024, 6, true)

	// Trip records for March, projected to the fixed record shape.
	trips, err := f.FetchTrips(2024, 3)

Any failure aborts the whole call; there are no retries and no partial
results.
*/
package ecobici
