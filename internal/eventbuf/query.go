package eventbuf

// Filter restricts Query results. Zero fields match everything.
type Filter struct {
	// CorrelationID, when non-empty, matches records carrying exactly this
	// correlation token.
	CorrelationID string
	// Severity, when non-empty, matches records with exactly this severity
	// (not a threshold).
	Severity Severity
}

func (f Filter) matches(r *Record) bool {
	if f.CorrelationID != "" && r.CorrelationID != f.CorrelationID {
		return false
	}
	if f.Severity != "" && r.Severity != f.Severity {
		return false
	}
	return true
}

// Query returns the stored records matching the filter, in insertion order
// (oldest first). The result is an independent snapshot of record copies; a
// record deleted after the call returns does not alter the returned slice.
// Linear scan is fine: the store never exceeds the configured count budget.
func (b *Buffer) Query(f Filter) []Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Record, 0, len(b.store.entries))
	for _, r := range b.store.entries {
		if f.matches(r) {
			out = append(out, r.clone())
		}
	}
	return out
}
