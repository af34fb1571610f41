package formatter

import "encoding/json"

// BuildJSON serializes any fetched result (a *dataset.Dataset's rows or a
// []ecobici.TripRecord) to indented JSON.
func BuildJSON(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
