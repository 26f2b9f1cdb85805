// Package runtime wires configuration, the diagnostic logger, the event
// buffer, and the diagnostics facade into a single constructible instance.
//
// Example:
//
//	cfg := config.Default()
//	config.FromEnv(&cfg)
//	rt := runtime.Open(runtime.Options{Config: cfg})
//	rt.Diagnostics().Ingest(eventbuf.Record{Severity: eventbuf.SeverityInfo, Message: "started"})
package runtime
