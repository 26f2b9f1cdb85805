package eventbuf

// store is the insertion-ordered bounded collection underneath Buffer. It is
// not safe for concurrent use; Buffer serializes access with its mutex.
//
// Two invariants hold after every mutating call returns:
//   - len(entries) <= maxEntries
//   - totalBytes   <= maxSizeBytes
//
// totalBytes is maintained incrementally; it is never recomputed by a full
// scan outside of tests.
type store struct {
	entries      []*Record
	byID         map[string]*Record
	totalBytes   int64
	maxEntries   int
	maxSizeBytes int64
}

func newStore(maxEntries int, maxSizeBytes int64) *store {
	if maxEntries < 0 {
		maxEntries = 0
	}
	if maxSizeBytes < 0 {
		maxSizeBytes = 0
	}
	return &store{
		byID:         make(map[string]*Record),
		maxEntries:   maxEntries,
		maxSizeBytes: maxSizeBytes,
	}
}

// append inserts the record at the newest end and re-applies both budgets.
func (s *store) append(r *Record) {
	s.entries = append(s.entries, r)
	s.byID[r.ID] = r
	s.totalBytes += int64(r.SizeBytes)
	s.evict()
}

// get returns the stored record for id, if present.
func (s *store) get(id string) (*Record, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// mutate applies updater to the record with the given id, recomputes its
// size, adjusts the running total by the delta, and re-applies the budgets
// (growth may have pushed the store over). Reports whether the id was found.
func (s *store) mutate(id string, updater func(*Record)) bool {
	r, ok := s.byID[id]
	if !ok {
		return false
	}
	oldSize := r.SizeBytes
	updater(r)
	r.SizeBytes = estimateSize(r)
	s.totalBytes += int64(r.SizeBytes - oldSize)
	s.evict()
	return true
}

// deleteByID removes the record if present and returns it. No-op otherwise.
func (s *store) deleteByID(id string) (*Record, bool) {
	r, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	delete(s.byID, id)
	for i, e := range s.entries {
		if e == r {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.totalBytes -= int64(r.SizeBytes)
	return r, true
}

// clear empties the collection and resets the running total.
func (s *store) clear() {
	s.entries = nil
	s.byID = make(map[string]*Record)
	s.totalBytes = 0
}

// setMaxEntries updates the count budget and trims immediately.
func (s *store) setMaxEntries(n int) {
	if n < 0 {
		n = 0
	}
	s.maxEntries = n
	s.evict()
}

// setMaxSizeBytes updates the byte budget and trims immediately.
func (s *store) setMaxSizeBytes(n int64) {
	if n < 0 {
		n = 0
	}
	s.maxSizeBytes = n
	s.evict()
}

// evict restores both budgets by dropping from the oldest end: first the
// count budget, then the byte budget. A single record larger than the byte
// budget empties the store entirely; that is designed behavior.
func (s *store) evict() {
	for len(s.entries) > s.maxEntries {
		s.dropOldest()
	}
	for s.totalBytes > s.maxSizeBytes && len(s.entries) > 0 {
		s.dropOldest()
	}
}

func (s *store) dropOldest() {
	r := s.entries[0]
	s.entries = s.entries[1:]
	delete(s.byID, r.ID)
	s.totalBytes -= int64(r.SizeBytes)
}
