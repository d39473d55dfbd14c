// Package attrs converts slog-style key/value lists for other sinks.
package attrs

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
)

// SpanAttributes converts a slog-style key-value slice into span attributes.
// Non-string keys are skipped; values that are not strings, ints, or bools
// are formatted with %v. A trailing key without a value is dropped.
func SpanAttributes(attrs []any) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs)/2)
	for i := 0; i+1 < len(attrs); i += 2 {
		k, ok := attrs[i].(string)
		if !ok {
			continue
		}
		switch v := attrs[i+1].(type) {
		case string:
			out = append(out, attribute.String(k, v))
		case int:
			out = append(out, attribute.Int(k, v))
		case bool:
			out = append(out, attribute.Bool(k, v))
		case fmt.Stringer:
			out = append(out, attribute.String(k, v.String()))
		default:
			out = append(out, attribute.String(k, fmt.Sprintf("%v", v)))
		}
	}
	return out
}
