// Package id provides a resettable, per-process unique record id generator.
//
// # Format
//
// Ids are "{prefix}-{generation}-{sequence}", e.g. "evt-0-42". Sequence is
// strictly increasing within a generation, so ids sort chronologically for a
// given generation under natural numeric comparison of the components.
//
// # Reset semantics
//
// Reset restarts the sequence at zero but bumps the generation stamp, so an
// id issued after a reset can never equal one issued before it. This lets a
// buffer clear its id counter without risking collisions against records a
// caller captured earlier.
//
// Usage
//
//	g := id.NewGenerator("evt")
//	a := g.Next() // "evt-0-1"
//	g.Reset()
//	b := g.Next() // "evt-1-1"
package id
