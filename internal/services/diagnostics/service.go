package diagsvc

import (
	"github.com/rzbill/pulse/internal/eventbuf"
	logpkg "github.com/rzbill/pulse/pkg/log"
)

// Service is the diagnostics facade over the event buffer. It adds
// expression queries on top of the buffer's exact-match filters and gives
// producers a slightly higher-level ingestion surface.
type Service struct {
	buf    *eventbuf.Buffer
	logger logpkg.Logger
}

// New builds a Service around an existing buffer.
func New(buf *eventbuf.Buffer, logger logpkg.Logger) *Service {
	return &Service{buf: buf, logger: logger}
}

// Buffer exposes the underlying buffer for subscription and administration.
func (s *Service) Buffer() *eventbuf.Buffer { return s.buf }

// Ingest appends a discrete event record.
func (s *Service) Ingest(rec eventbuf.Record) { s.buf.Append(rec) }

// IngestUpdating upserts a continuously refreshed measurement. The record is
// marked Updating so later calls with the same id mutate it in place.
func (s *Service) IngestUpdating(rec eventbuf.Record) {
	rec.Updating = true
	s.buf.Upsert(rec)
}

// QueryOptions restricts an expression query. CorrelationID and Severity are
// exact matches applied by the buffer; Expr is an optional CEL expression
// over severity, message, source, correlation_id, ts_ms, size, args_len,
// updating, and now_ms.
type QueryOptions struct {
	CorrelationID string
	Severity      eventbuf.Severity
	Expr          string
}

// Query returns matching records in insertion order. A malformed expression
// returns a compile error; the buffer itself never errors.
func (s *Service) Query(opts QueryOptions) ([]eventbuf.Record, error) {
	filter, err := newCELFilter(opts.Expr)
	if err != nil {
		return nil, err
	}
	recs := s.buf.Query(eventbuf.Filter{
		CorrelationID: opts.CorrelationID,
		Severity:      opts.Severity,
	})
	if !filter.enabled {
		return recs, nil
	}
	out := make([]eventbuf.Record, 0, len(recs))
	for _, r := range recs {
		if filter.Eval(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Trace returns every record linked to the given correlation token, in
// original insertion order — the cross-boundary retrieval operation.
func (s *Service) Trace(correlationID string) []eventbuf.Record {
	return s.buf.Query(eventbuf.Filter{CorrelationID: correlationID})
}
