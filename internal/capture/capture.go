package capture

// Adapter is the producer-adapter contract: a component that intercepts a
// host environment's logging output and forwards it into the buffer's
// ingestion API. Install activates the interception and returns a func that
// restores the previous state. The buffer never depends on how interception
// is wired, only on Append/Upsert being called.
type Adapter interface {
	Install() (uninstall func())
}
