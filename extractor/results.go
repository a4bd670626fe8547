package extractor

import "nonprofit-scraper/internal/types"

// Results accumulates the records of one run. Records are only ever appended or
// replaced in place, never removed, so a record's index is its identity.
type Results struct {
	records []types.OrgRecord
}

// NewResults creates an empty accumulator
func NewResults() *Results {
	return &Results{records: []types.OrgRecord{}}
}

// Append adds records to the end of the accumulated sequence
func (r *Results) Append(records ...types.OrgRecord) {
	r.records = append(r.records, records...)
}

// Len returns the number of accumulated records
func (r *Results) Len() int {
	return len(r.records)
}

// At returns the record at index i
func (r *Results) At(i int) types.OrgRecord {
	return r.records[i]
}

// Set replaces the record at index i
func (r *Results) Set(i int, record types.OrgRecord) {
	r.records[i] = record
}

// Records returns the accumulated sequence for serialization
func (r *Results) Records() []types.OrgRecord {
	return r.records
}
