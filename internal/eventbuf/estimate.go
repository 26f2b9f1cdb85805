package eventbuf

// Size estimation constants. The estimate exists to bound memory, not to
// measure serialization: message characters are costed at two bytes each and
// every argument at a flat overhead regardless of its contents, so deeply
// nested payloads may be undercounted.
const (
	// recordOverheadBytes is the fixed cost charged to every record.
	recordOverheadBytes = 64
	// argOverheadBytes is the flat cost charged per argument value.
	argOverheadBytes = 100
)

// estimateSize computes the approximate byte cost of a record. Deterministic
// and side-effect free so it can be re-run after an in-place mutation to
// derive a size delta.
func estimateSize(r *Record) int {
	return 2*len(r.Message) + argOverheadBytes*len(r.Args) + recordOverheadBytes
}
