package id

import (
	"strconv"
	"sync"
)

// DefaultPrefix is used when NewGenerator is given an empty prefix.
const DefaultPrefix = "evt"

// Generator produces per-process unique, monotonically increasing record ids.
type Generator struct {
	mu         sync.Mutex
	prefix     string
	generation uint64
	sequence   uint64
}

// NewGenerator creates a Generator. Ids are formatted as
// "{prefix}-{generation}-{sequence}".
func NewGenerator(prefix string) *Generator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Generator{prefix: prefix}
}

// Next returns a new id. Sequences are strictly increasing within a
// generation; ids remain unique across the whole process lifetime because
// the generation component only ever grows.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sequence++
	return g.prefix + "-" + strconv.FormatUint(g.generation, 10) + "-" + strconv.FormatUint(g.sequence, 10)
}

// Reset restarts the sequence counter. The generation stamp is bumped so ids
// issued after a reset can never collide with ids issued before it.
func (g *Generator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.generation++
	g.sequence = 0
}

// Sequence returns the number of ids issued in the current generation.
func (g *Generator) Sequence() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sequence
}
