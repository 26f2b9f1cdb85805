package capture

import (
	"context"
	"log/slog"

	"github.com/rzbill/pulse/internal/eventbuf"
)

// Attr keys lifted out of the record arguments into dedicated fields.
const (
	SourceKey        = "source"
	CorrelationIDKey = "correlation_id"
)

// SlogAdapter forwards slog records into the event buffer. It implements
// both slog.Handler (so it can back any slog.Logger directly) and Adapter
// (Install swaps the process default slog logger).
type SlogAdapter struct {
	buf   *eventbuf.Buffer
	attrs []slog.Attr
	group string
}

// NewSlogAdapter creates an adapter that appends into buf.
func NewSlogAdapter(buf *eventbuf.Buffer) *SlogAdapter {
	return &SlogAdapter{buf: buf}
}

// Install replaces the process default slog logger with one backed by this
// adapter and returns a func restoring the previous default.
func (a *SlogAdapter) Install() (uninstall func()) {
	prev := slog.Default()
	slog.SetDefault(slog.New(a))
	return func() { slog.SetDefault(prev) }
}

// Enabled implements slog.Handler. Severity filtering is the buffer's job,
// so the adapter accepts every level.
func (a *SlogAdapter) Enabled(context.Context, slog.Level) bool { return true }

// Handle implements slog.Handler: the slog record becomes a buffer record.
// "source" and "correlation_id" attrs are lifted into the matching record
// fields; remaining attrs become key/value pairs in Args.
func (a *SlogAdapter) Handle(_ context.Context, r slog.Record) error {
	rec := eventbuf.Record{
		Severity: severityFromLevel(r.Level),
		Message:  r.Message,
	}
	if !r.Time.IsZero() {
		rec.TimestampMs = r.Time.UnixMilli()
	}
	collect := func(attr slog.Attr, group string) {
		switch attr.Key {
		case SourceKey:
			rec.Source = attr.Value.String()
		case CorrelationIDKey:
			rec.CorrelationID = attr.Value.String()
		default:
			key := attr.Key
			if group != "" {
				key = group + "." + key
			}
			rec.Args = append(rec.Args, key, attr.Value.Any())
		}
	}
	// Pre-bound attrs were qualified when added; only attrs from the log call
	// itself take the current group prefix.
	for _, attr := range a.attrs {
		collect(attr, "")
	}
	r.Attrs(func(attr slog.Attr) bool {
		collect(attr, a.group)
		return true
	})
	a.buf.Append(rec)
	return nil
}

// WithAttrs implements slog.Handler. Attr keys are qualified with the group
// open at the time they are added, matching slog grouping semantics.
func (a *SlogAdapter) WithAttrs(attrs []slog.Attr) slog.Handler {
	na := *a
	if len(attrs) > 0 {
		na.attrs = append([]slog.Attr{}, a.attrs...)
		for _, attr := range attrs {
			if a.group != "" && attr.Key != SourceKey && attr.Key != CorrelationIDKey {
				attr.Key = a.group + "." + attr.Key
			}
			na.attrs = append(na.attrs, attr)
		}
	}
	return &na
}

// WithGroup implements slog.Handler. Grouped attr keys are prefixed with the
// group name.
func (a *SlogAdapter) WithGroup(name string) slog.Handler {
	na := *a
	if name != "" {
		if na.group != "" {
			na.group = na.group + "." + name
		} else {
			na.group = name
		}
	}
	return &na
}

// severityFromLevel maps slog levels onto buffer severities.
func severityFromLevel(level slog.Level) eventbuf.Severity {
	switch {
	case level <= slog.LevelDebug:
		return eventbuf.SeverityDebug
	case level < slog.LevelWarn:
		return eventbuf.SeverityInfo
	case level < slog.LevelError:
		return eventbuf.SeverityWarn
	default:
		return eventbuf.SeverityError
	}
}
