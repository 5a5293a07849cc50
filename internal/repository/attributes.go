package repository

import (
	"encoding/json"
	"fmt"

	"jobboard/internal/domain/fields"
)

// Candidate and job rows keep the loosely shaped record in a JSONB column;
// alias resolution happens when the record is turned into a domain value.

func decodeAttributes(b []byte) (fields.Record, error) {
	r := fields.Record{}
	if len(b) == 0 {
		return r, nil
	}
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("decode attributes: %w", err)
	}
	if r == nil {
		r = fields.Record{}
	}
	return r, nil
}

func encodeAttributes(r fields.Record) ([]byte, error) {
	if r == nil {
		r = fields.Record{}
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode attributes: %w", err)
	}
	return b, nil
}
