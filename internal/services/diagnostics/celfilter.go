package diagsvc

import (
	"strings"
	"time"

	"github.com/google/cel-go/cel"

	"github.com/rzbill/pulse/internal/eventbuf"
)

// celFilter wraps a compiled CEL program and provides a common evaluator for
// expression queries. When disabled, Eval always returns true.
type celFilter struct {
	prog    cel.Program
	enabled bool
}

func newCELFilter(expr string) (celFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return celFilter{enabled: false}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("severity", cel.StringType),
		cel.Variable("message", cel.StringType),
		cel.Variable("source", cel.StringType),
		cel.Variable("correlation_id", cel.StringType),
		cel.Variable("ts_ms", cel.IntType),
		cel.Variable("size", cel.IntType),
		cel.Variable("args_len", cel.IntType),
		cel.Variable("updating", cel.BoolType),
		// Current time in ms for windowed filters
		cel.Variable("now_ms", cel.IntType),
	)
	if err != nil {
		return celFilter{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return celFilter{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return celFilter{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return celFilter{}, err
	}
	return celFilter{prog: prog, enabled: true}, nil
}

// Eval evaluates the compiled expression against a record. When disabled,
// returns true. Evaluation errors count as non-matches.
func (f celFilter) Eval(r eventbuf.Record) bool {
	if !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"severity":       string(r.Severity),
		"message":        r.Message,
		"source":         r.Source,
		"correlation_id": r.CorrelationID,
		"ts_ms":          r.TimestampMs,
		"size":           int64(r.SizeBytes),
		"args_len":       int64(len(r.Args)),
		"updating":       r.Updating,
		"now_ms":         time.Now().UnixMilli(),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
