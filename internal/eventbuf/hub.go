package eventbuf

import (
	"sync"
	"sync/atomic"

	logpkg "github.com/rzbill/pulse/pkg/log"
)

// Handler receives a copy of every accepted record.
type Handler func(Record)

type subscription struct {
	token   uint64
	handler Handler
}

// hub is the subscriber registry. Dispatch runs against a snapshot of the
// registration list so handlers can subscribe, unsubscribe, or reenter the
// buffer while a notify pass is in flight.
type hub struct {
	mu         sync.Mutex
	subs       []subscription
	nextToken  uint64
	suppressed bool
	failures   atomic.Uint64
	logger     logpkg.Logger
}

func newHub(logger logpkg.Logger) *hub {
	return &hub{logger: logger}
}

// subscribe registers the handler at the end of the dispatch order and
// returns a cancel func that removes it.
func (h *hub) subscribe(handler Handler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextToken++
	token := h.nextToken
	h.subs = append(h.subs, subscription{token: token, handler: handler})
	return func() { h.unsubscribe(token) }
}

func (h *hub) unsubscribe(token uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, s := range h.subs {
		if s.token == token {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}

func (h *hub) suppress() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.suppressed = true
}

func (h *hub) resume() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.suppressed = false
}

// failureCount returns the number of handler panics recovered so far.
func (h *hub) failureCount() uint64 { return h.failures.Load() }

// dispatch invokes every registered handler in registration order. Each
// handler runs inside its own recover boundary: a panic is counted and
// reported to the side diagnostic logger, and the remaining handlers still
// run. When notifications are suppressed, dispatch is a no-op.
func (h *hub) dispatch(rec Record) {
	h.mu.Lock()
	if h.suppressed || len(h.subs) == 0 {
		h.mu.Unlock()
		return
	}
	snapshot := make([]subscription, len(h.subs))
	copy(snapshot, h.subs)
	h.mu.Unlock()

	for _, s := range snapshot {
		h.invoke(s, rec)
	}
}

func (h *hub) invoke(s subscription, rec Record) {
	defer func() {
		if v := recover(); v != nil {
			h.failures.Add(1)
			if h.logger != nil {
				h.logger.Error("subscriber panicked",
					logpkg.Uint64("subscription", s.token),
					logpkg.Str("record_id", rec.ID),
					logpkg.Any("panic", v),
				)
			}
		}
	}()
	s.handler(rec)
}
