package eventbuf

// Severity classifies a record's importance. Lower rank is more severe.
type Severity string

// Severities, ordered from most to least severe.
const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warn"
	SeverityInfo  Severity = "info"
	SeverityDebug Severity = "debug"
)

// Rank returns the ordinal rank of the severity: error=0, warn=1, info=2,
// debug=3. Unknown or empty severities rank as debug.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarn:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// Valid reports whether s is one of the four known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarn, SeverityInfo, SeverityDebug:
		return true
	}
	return false
}

// Record is a single diagnostic event held by the buffer.
//
// Callers may leave any field zero; ingestion fills defaults (generated ID,
// debug severity, current timestamp). SizeBytes is computed at insertion and
// on in-place mutation; a caller-supplied value is ignored.
type Record struct {
	ID            string
	Severity      Severity
	Message       string
	Args          []any
	TimestampMs   int64
	Source        string
	CorrelationID string
	Updating      bool
	SizeBytes     int
}

// clone returns an independent copy of the record. Args values themselves are
// opaque and shared; the slice header is copied so later in-place merges do
// not alias an already-returned snapshot.
func (r Record) clone() Record {
	out := r
	if r.Args != nil {
		out.Args = append([]any(nil), r.Args...)
	}
	return out
}
