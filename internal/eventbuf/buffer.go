package eventbuf

import (
	"sync"
	"time"

	idpkg "github.com/rzbill/pulse/pkg/id"
	logpkg "github.com/rzbill/pulse/pkg/log"
)

// Default budgets applied when Options leaves them zero.
const (
	DefaultMaxEntries   = 1000
	DefaultMaxSizeBytes = 1 << 20
)

// Options configures a Buffer.
type Options struct {
	// MaxEntries caps the number of retained records. Zero selects
	// DefaultMaxEntries; negative values are clamped to zero.
	MaxEntries int
	// MaxSizeBytes caps the cumulative estimated size of retained records.
	// Zero selects DefaultMaxSizeBytes; negative values are clamped to zero.
	MaxSizeBytes int64
	// MinSeverity is the ingestion threshold. Records ranked less severe are
	// dropped. Empty/unknown selects SeverityDebug (everything passes).
	MinSeverity Severity
	// Logger is the side diagnostic sink for subscriber failures. It must not
	// be a logger whose output is itself captured into this buffer.
	Logger logpkg.Logger
	// IDPrefix overrides the generated-id prefix.
	IDPrefix string
}

// Buffer is the diagnostic event aggregator: a bounded, queryable,
// subscribable store of records. All public methods are synchronous,
// safe for concurrent use, and never return an error or panic; the only
// observable "failures" are filtered and evicted records, both by design.
//
// Notification runs after the buffer mutex is released, against a snapshot
// of the handler list, so a subscriber may call back into Append or Upsert
// as an ordinary independent operation.
type Buffer struct {
	mu          sync.Mutex
	store       *store
	minSeverity Severity
	ids         *idpkg.Generator
	hub         *hub
	notifyCh    chan struct{}
	nowMs       func() int64
}

// New constructs a Buffer. The zero Options value yields default budgets, a
// debug threshold, and no diagnostic logger.
func New(opts Options) *Buffer {
	if opts.MaxEntries == 0 {
		opts.MaxEntries = DefaultMaxEntries
	}
	if opts.MaxSizeBytes == 0 {
		opts.MaxSizeBytes = DefaultMaxSizeBytes
	}
	if !opts.MinSeverity.Valid() {
		opts.MinSeverity = SeverityDebug
	}
	return &Buffer{
		store:       newStore(opts.MaxEntries, opts.MaxSizeBytes),
		minSeverity: opts.MinSeverity,
		ids:         idpkg.NewGenerator(opts.IDPrefix),
		hub:         newHub(opts.Logger),
		notifyCh:    make(chan struct{}),
		nowMs:       func() int64 { return time.Now().UnixMilli() },
	}
}

// normalize fills defaults into a caller-supplied partial record. Must be
// called with b.mu held (id generation pairs with the store's lifecycle).
func (b *Buffer) normalize(rec *Record) {
	if rec.ID == "" {
		rec.ID = b.ids.Next()
	}
	if !rec.Severity.Valid() {
		rec.Severity = SeverityDebug
	}
	if rec.TimestampMs == 0 {
		rec.TimestampMs = b.nowMs()
	}
	rec.SizeBytes = 0
}

// Append ingests a record. Missing fields are defaulted, the severity
// threshold may drop it silently, and an accepted record triggers exactly
// one notification pass. A pre-existing record with the same id is replaced
// (removed first, then appended at the newest end) so ids stay unique.
func (b *Buffer) Append(rec Record) {
	b.mu.Lock()
	b.normalize(&rec)
	if rec.Severity.Rank() > b.minSeverity.Rank() {
		b.mu.Unlock()
		return
	}
	rec.SizeBytes = estimateSize(&rec)
	b.store.deleteByID(rec.ID)
	stored := rec.clone()
	b.store.append(&stored)
	b.wakeWaiters()
	b.mu.Unlock()

	b.hub.dispatch(rec.clone())
}

// Upsert refreshes a continuously updated record in place. If a record with
// the same id exists and is marked Updating, the incoming non-zero fields
// are merged over it (timestamp preserved unless overridden), its size is
// recomputed, budgets re-applied, and subscribers are notified with the
// merged record. Otherwise Upsert behaves exactly like Append.
func (b *Buffer) Upsert(rec Record) {
	if rec.ID == "" {
		b.Append(rec)
		return
	}
	b.mu.Lock()
	existing, ok := b.store.get(rec.ID)
	if !ok || !existing.Updating {
		b.mu.Unlock()
		b.Append(rec)
		return
	}
	// Clone only after mutate returns: the store recomputes SizeBytes once
	// the updater is done, and subscribers must see the post-merge size.
	var updated *Record
	b.store.mutate(rec.ID, func(r *Record) {
		mergeRecord(r, rec)
		updated = r
	})
	merged := updated.clone()
	b.wakeWaiters()
	b.mu.Unlock()

	b.hub.dispatch(merged)
}

// mergeRecord overlays the non-zero fields of in onto r. Timestamp and
// Updating survive unless explicitly set; see MarkFinal for clearing the
// Updating flag.
func mergeRecord(r *Record, in Record) {
	if in.Severity.Valid() {
		r.Severity = in.Severity
	}
	if in.Message != "" {
		r.Message = in.Message
	}
	if in.Args != nil {
		r.Args = append([]any(nil), in.Args...)
	}
	if in.TimestampMs != 0 {
		r.TimestampMs = in.TimestampMs
	}
	if in.Source != "" {
		r.Source = in.Source
	}
	if in.CorrelationID != "" {
		r.CorrelationID = in.CorrelationID
	}
}

// MarkFinal clears the Updating flag on the record with the given id, so a
// later Upsert with that id starts a fresh record instead of mutating this
// one. No-op if the id is absent.
func (b *Buffer) MarkFinal(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r, ok := b.store.get(id); ok {
		r.Updating = false
	}
}

// Subscribe registers a handler invoked synchronously, in registration
// order, with a copy of every accepted record. The returned func cancels
// the subscription.
func (b *Buffer) Subscribe(h Handler) func() {
	return b.hub.subscribe(h)
}

// SuppressNotifications disables subscriber dispatch; storage continues.
// Intended for isolating batches of synthetic records from live listeners.
func (b *Buffer) SuppressNotifications() { b.hub.suppress() }

// ResumeNotifications re-enables subscriber dispatch.
func (b *Buffer) ResumeNotifications() { b.hub.resume() }

// NotifyFailures returns the number of subscriber panics recovered so far.
func (b *Buffer) NotifyFailures() uint64 { return b.hub.failureCount() }

// SetMaxEntries updates the count budget and evicts synchronously.
func (b *Buffer) SetMaxEntries(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.store.setMaxEntries(n)
}

// SetMaxSizeBytes updates the byte budget and evicts synchronously.
func (b *Buffer) SetMaxSizeBytes(n int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.store.setMaxSizeBytes(n)
}

// SetMinSeverity updates the ingestion threshold. Already-stored records are
// unaffected. Unknown severities select debug.
func (b *Buffer) SetMinSeverity(s Severity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !s.Valid() {
		s = SeverityDebug
	}
	b.minSeverity = s
}

// MinSeverity returns the current ingestion threshold.
func (b *Buffer) MinSeverity() Severity {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.minSeverity
}

// CurrentSizeBytes returns the running total of stored record sizes.
func (b *Buffer) CurrentSizeBytes() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.totalBytes
}

// MaxSizeBytes returns the byte budget.
func (b *Buffer) MaxSizeBytes() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.maxSizeBytes
}

// MaxEntries returns the count budget.
func (b *Buffer) MaxEntries() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.maxEntries
}

// Len returns the number of stored records.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.store.entries)
}

// DeleteByID removes the record with the given id. No-op if absent.
func (b *Buffer) DeleteByID(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.store.deleteByID(id)
}

// Clear empties the buffer, resets the running byte total, and restarts the
// id generator (post-clear ids never collide with pre-clear ids).
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.store.clear()
	b.ids.Reset()
}

// wakeWaiters signals WaitForAppend blockers. Must be called with b.mu held.
func (b *Buffer) wakeWaiters() {
	close(b.notifyCh)
	b.notifyCh = make(chan struct{})
}

// WaitForAppend blocks until a record is accepted into the buffer or the
// timeout elapses. It returns true if woken by an accepted record, false on
// timeout. A timeout <= 0 waits indefinitely. Filtered records do not wake
// waiters.
func (b *Buffer) WaitForAppend(timeout time.Duration) bool {
	b.mu.Lock()
	ch := b.notifyCh
	b.mu.Unlock()
	if timeout <= 0 {
		<-ch
		return true
	}
	select {
	case <-ch:
		return true
	case <-time.After(timeout):
		return false
	}
}
