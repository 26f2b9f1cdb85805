// Package capture defines the producer-adapter contract and an slog-based
// implementation: interception of a host environment's logging output,
// redirected into the event buffer's ingestion API.
//
// Example:
//
//	adapter := capture.NewSlogAdapter(buf)
//	uninstall := adapter.Install()
//	defer uninstall()
//	slog.Info("fetch complete", "source", "http", "correlation_id", "req-7")
package capture
