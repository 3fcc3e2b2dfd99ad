package examapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnexpectedShape reports a list response whose JSON shape is none of the
// accepted forms. It is a recoverable parse error, never a silent empty list.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// decodeList decodes a list endpoint body into dst (a pointer to a slice).
//
// The remote API is inconsistent about envelopes, so exactly three shapes are
// accepted, tried in this order:
//
//	[ ... ]              a bare JSON array
//	{"items": [ ... ]}   paginated envelope (questions, classes)
//	{"data":  [ ... ]}   alternative envelope (exams)
//
// An object carrying both keys resolves to "items". Any other shape, and any
// envelope whose carried value is not an array, yields ErrUnexpectedShape.
func decodeList(body []byte, dst any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, dst); err != nil {
			return fmt.Errorf("decoding list: %w", err)
		}
		return nil
	case '{':
		var envelope struct {
			Items json.RawMessage `json:"items"`
			Data  json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return fmt.Errorf("decoding envelope: %w", err)
		}
		inner := envelope.Items
		if inner == nil {
			inner = envelope.Data
		}
		if inner == nil {
			return fmt.Errorf("%w: object without items or data", ErrUnexpectedShape)
		}
		if inner = bytes.TrimSpace(inner); len(inner) == 0 || inner[0] != '[' {
			return fmt.Errorf("%w: envelope value is not an array", ErrUnexpectedShape)
		}
		if err := json.Unmarshal(inner, dst); err != nil {
			return fmt.Errorf("decoding envelope list: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: neither array nor object", ErrUnexpectedShape)
	}
}
