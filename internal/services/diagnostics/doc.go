// Package diagsvc implements the diagnostics facade on top of the internal
// event buffer. It provides ingestion helpers for discrete events and
// continuously refreshed measurements, exact-match retrieval by correlation
// token, and CEL expression queries over stored records.
//
// Example:
//
//	svc := diagsvc.New(buf, logger)
//	svc.Ingest(eventbuf.Record{Severity: eventbuf.SeverityWarn, Message: "slow response", CorrelationID: "req-7"})
//	svc.IngestUpdating(eventbuf.Record{ID: "heap", Message: "heap 120 MiB"})
//
//	recs, err := svc.Query(diagsvc.QueryOptions{Expr: `severity == "warn" && message.contains("slow")`})
//	trace := svc.Trace("req-7")
package diagsvc
