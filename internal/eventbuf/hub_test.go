package eventbuf

import (
	"testing"

	logpkg "github.com/rzbill/pulse/pkg/log"
)

func quietLogger() logpkg.Logger {
	return logpkg.NewLogger(logpkg.WithOutput(logpkg.NullOutput{}))
}

func TestSubscriberPanicIsolation(t *testing.T) {
	b := newTestBuffer(Options{Logger: quietLogger()})
	calls := 0
	cancelBad := b.Subscribe(func(Record) { panic("handler fault") })
	defer cancelBad()
	cancelGood := b.Subscribe(func(Record) { calls++ })
	defer cancelGood()

	b.Append(Record{Severity: SeverityInfo, Message: "m"})
	if calls != 1 {
		t.Fatalf("expected healthy handler called once despite panic, got %d", calls)
	}
	if got := b.NotifyFailures(); got != 1 {
		t.Fatalf("expected 1 recovered failure, got %d", got)
	}
}

func TestDispatchRegistrationOrder(t *testing.T) {
	b := newTestBuffer(Options{})
	var order []string
	c1 := b.Subscribe(func(Record) { order = append(order, "first") })
	defer c1()
	c2 := b.Subscribe(func(Record) { order = append(order, "second") })
	defer c2()

	b.Append(Record{Severity: SeverityInfo, Message: "m"})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("expected registration order dispatch, got %v", order)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := newTestBuffer(Options{})
	calls := 0
	cancel := b.Subscribe(func(Record) { calls++ })
	b.Append(Record{Severity: SeverityInfo, Message: "one"})
	cancel()
	cancel() // idempotent
	b.Append(Record{Severity: SeverityInfo, Message: "two"})
	if calls != 1 {
		t.Fatalf("expected 1 delivery before cancel, got %d", calls)
	}
}

func TestSuppressNotificationsStillStores(t *testing.T) {
	b := newTestBuffer(Options{})
	calls := 0
	cancel := b.Subscribe(func(Record) { calls++ })
	defer cancel()

	b.SuppressNotifications()
	b.Append(Record{Severity: SeverityInfo, Message: "fixture"})
	if calls != 0 {
		t.Fatalf("expected no delivery while suppressed, got %d", calls)
	}
	if got := b.Len(); got != 1 {
		t.Fatalf("expected record stored while suppressed, got %d", got)
	}

	b.ResumeNotifications()
	b.Append(Record{Severity: SeverityInfo, Message: "live"})
	if calls != 1 {
		t.Fatalf("expected delivery after resume, got %d", calls)
	}
}

func TestSubscribeDuringDispatch(t *testing.T) {
	b := newTestBuffer(Options{})
	lateCalls := 0
	var cancelLate func()
	cancelOuter := b.Subscribe(func(Record) {
		if cancelLate == nil {
			cancelLate = b.Subscribe(func(Record) { lateCalls++ })
		}
	})
	defer cancelOuter()

	b.Append(Record{Severity: SeverityInfo, Message: "first"})
	if lateCalls != 0 {
		t.Fatalf("handler added mid-pass must not see the in-flight record")
	}
	b.Append(Record{Severity: SeverityInfo, Message: "second"})
	if lateCalls != 1 {
		t.Fatalf("expected late handler to see the next record, got %d", lateCalls)
	}
	cancelLate()
}
