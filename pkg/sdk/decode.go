package sdk

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The backend is inconsistent about response envelopes: some endpoints return
// a bare array or object, others wrap it as {"events": [...]} or
// {"building": {...}}. These helpers normalize both shapes at the SDK
// boundary so callers never see the difference.

func decodeList[T any](data json.RawMessage, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to decode list: %w", err)
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode list envelope: %w", err)
	}
	raw, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("response has no %q field", key)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %q list: %w", key, err)
	}
	return items, nil
}

func decodeObject[T any](data json.RawMessage, key string) (*T, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(data), &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode object: %w", err)
	}

	raw := json.RawMessage(data)
	if inner, ok := envelope[key]; ok {
		raw = inner
	}
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to decode %q object: %w", key, err)
	}
	return &item, nil
}
