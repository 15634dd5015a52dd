package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. Events published in-process
// carry T directly; events read back from the dead-letter log carry the
// generic JSON form and are converted.
func DecodePayload[T any](payload interface{}) (T, error) {
	var out T
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("nil %T payload", v)
		}
		return *v, nil
	case nil:
		return out, fmt.Errorf("event has no payload, want %T", out)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("re-encode payload: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode payload as %T: %w", out, err)
	}
	return out, nil
}
