package tabdl

import (
	"fmt"
	"reflect"
)

// Dedupe returns values without repeats, keeping the first occurrence of each.
// Values are compared with ==; values of non-comparable types are compared by
// their printed form.
func Dedupe(values []any) []any {
	seen := make(map[any]struct{}, len(values))
	out := make([]any, 0, len(values))
	for _, v := range values {
		key := dedupeKey(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

type printedValue string

func dedupeKey(v any) any {
	if v == nil || reflect.TypeOf(v).Comparable() {
		return v
	}
	return printedValue(fmt.Sprintf("%T:%#v", v, v))
}

// Partition splits values into consecutive batches of at most size elements.
// The batches are disjoint and together hold every value once.
func Partition[T any](values []T, size int) [][]T {
	if size <= 0 {
		size = DefaultBatchSize
	}
	batches := make([][]T, 0, (len(values)+size-1)/size)
	for start := 0; start < len(values); start += size {
		end := min(start+size, len(values))
		batches = append(batches, values[start:end:end])
	}
	return batches
}

// formatValues renders filter values the way they are sent to the server.
func formatValues(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}
