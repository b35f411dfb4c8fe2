// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge implements the recursive record merge used to layer a
// partial page configuration on top of the built-in defaults.
//
// Values inside a [Record] are whatever encoding/json produces when decoding
// into `any`: nested records, arrays, strings, numbers, booleans and nil.
// [KindOf] classifies a value into one of those variants and [DeepMerge]
// dispatches on that classification.
package merge

// Record is a mapping from string keys to arbitrary JSON-like values.
type Record = map[string]any

// Kind is the variant of a value stored in a [Record].
type Kind int

const (
	// KindNull is a nil value.
	KindNull Kind = iota
	// KindScalar is a string, number, boolean or any other non-container value.
	KindScalar
	// KindArray is a slice of values. Arrays are never merged element-wise.
	KindArray
	// KindRecord is a nested record.
	KindRecord
)

// String returns a human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindRecord:
		return "record"
	default:
		return "scalar"
	}
}

// KindOf classifies v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case map[string]any:
		return KindRecord
	case []any:
		return KindArray
	default:
		return KindScalar
	}
}

// DeepMerge returns a new record holding every key of target, with values
// taken from source according to these rules:
//   - key only in target: target value is kept;
//   - key only in source: source value is adopted as-is, even when it is a
//     record;
//   - key in both and source value is a record: the two values are merged
//     recursively (a non-record target value counts as an empty record);
//   - key in both and source value is anything else (array, scalar, nil):
//     source value replaces target value.
//
// Neither input is modified. Nested records taken over unchanged from either
// side are shared with the inputs, not copied.
//
// Cyclic records are not detected and recurse until the stack is exhausted.
func DeepMerge(target, source Record) Record {
	output := make(Record, len(target)+len(source))
	for key, value := range target {
		output[key] = value
	}

	for key, sourceValue := range source {
		targetValue, inTarget := target[key]
		if !inTarget || KindOf(sourceValue) != KindRecord {
			output[key] = sourceValue
			continue
		}

		nestedTarget, _ := targetValue.(map[string]any)
		output[key] = DeepMerge(nestedTarget, sourceValue.(map[string]any))
	}

	return output
}
