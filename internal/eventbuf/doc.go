// Package eventbuf implements Pulse's in-process diagnostic event buffer.
//
// # Overview
//
// The buffer captures structured records from arbitrary producers and
// retains them under two independent budgets: a maximum record count and a
// maximum cumulative estimated byte size. Eviction always removes from the
// oldest end. A minimum-severity threshold drops low-priority records at
// ingestion so they never occupy buffer space, and every accepted record is
// broadcast synchronously to subscribers.
//
// API surface (internal)
//
//	b := eventbuf.New(eventbuf.Options{MaxEntries: 500, MaxSizeBytes: 256 << 10})
//
//	// Insert-only ingestion; missing fields are defaulted.
//	b.Append(eventbuf.Record{Severity: eventbuf.SeverityInfo, Message: "request sent"})
//
//	// Update-in-place ingestion for continuously refreshed measurements.
//	b.Upsert(eventbuf.Record{ID: "mem-gauge", Updating: true, Message: "heap 120 MiB"})
//	b.Upsert(eventbuf.Record{ID: "mem-gauge", Message: "heap 121 MiB"}) // mutates, no growth
//
//	// Filtered snapshot reads.
//	recs := b.Query(eventbuf.Filter{CorrelationID: "req-7"})
//
//	// Live subscription; cancel to detach.
//	cancel := b.Subscribe(func(r eventbuf.Record) { ... })
//	defer cancel()
//
//	// Blocking wait/notify for polling consumers.
//	woke := b.WaitForAppend(200 * time.Millisecond)
//	_ = woke
//
// # Failure semantics
//
// No public method returns an error or panics. The only silent non-storage
// outcomes are filtered records (below the severity threshold) and evicted
// records (over budget), both designed behavior. A panicking subscriber is
// recovered inside the notify loop, counted, and reported to the side
// diagnostic logger; remaining subscribers still run and the producer never
// sees the fault.
//
// # Concurrency
//
// A single mutex serializes every public operation; no operation suspends
// mid-mutation. Subscriber dispatch happens after the mutex is released,
// against a snapshot of the handler list, so handlers may reenter the buffer
// (e.g. a handler that itself emits a record) as ordinary independent calls.
package eventbuf
