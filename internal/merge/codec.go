// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNotARecord is returned by [Parse] when the input is valid JSON whose top
// level value is not an object.
var ErrNotARecord = errors.New("top-level value is not a record")

// Parse decodes raw JSON into a [Record]. Numbers are kept as float64, the
// same representation [FromStruct] produces, so merged values compare equal
// regardless of which side they came from.
func Parse(raw string) (Record, error) {
	var value any
	decoder := json.NewDecoder(strings.NewReader(raw))
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("error decoding record: %w", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding record: trailing data after top-level value")
	}

	record, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotARecord, KindOf(value))
	}

	return record, nil
}

// FromStruct converts a JSON-tagged struct into a [Record].
func FromStruct(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding struct: %w", err)
	}

	var record Record
	if err = json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("error decoding struct as record: %w", err)
	}

	return record, nil
}

// ToStruct decodes r into the struct pointed to by v. Keys without a matching
// struct field are ignored; values of the wrong type produce an error.
func ToStruct(r Record, v any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("error encoding record: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	if err = decoder.Decode(v); err != nil {
		return fmt.Errorf("error decoding record into %T: %w", v, err)
	}

	return nil
}
