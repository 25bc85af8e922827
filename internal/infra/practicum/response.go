package practicum

import (
	"encoding/json"
	"fmt"

	"homework_notification_bot/internal/domain/homework"
)

// Statuses is the validated content of one review API response.
type Statuses struct {
	Homeworks []homework.Homework
	// CurrentDate is the server-reported fetch-window end, epoch seconds.
	// Zero when the server did not report one; the next fetch then starts
	// from "now".
	CurrentDate int64
}

// ParseResponse validates the envelope of a raw API payload and extracts the
// homework entries, reporting each envelope violation with its own error.
// Individual entries are not validated here; an unknown status surfaces
// later, at formatting time.
func ParseResponse(payload json.RawMessage) (*Statuses, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotMapping, jsonKind(payload))
	}

	rawList, ok := envelope["homeworks"]
	if !ok {
		return nil, ErrHomeworksKey
	}

	// Kind-check before decoding: JSON null unmarshals into a slice
	// without error and would read as an empty list.
	if kind := jsonKind(rawList); kind != "array" {
		return nil, fmt.Errorf("%w: %s", ErrHomeworksList, kind)
	}
	var rawItems []json.RawMessage
	if err := json.Unmarshal(rawList, &rawItems); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrHomeworksList, jsonKind(rawList))
	}

	statuses := &Statuses{}
	for i, raw := range rawItems {
		var h homework.Homework
		if err := json.Unmarshal(raw, &h); err != nil {
			return nil, fmt.Errorf("decode homework entry %d: %w", i, err)
		}
		statuses.Homeworks = append(statuses.Homeworks, h)
	}

	if rawDate, ok := envelope["current_date"]; ok {
		// A missing or mistyped current_date is tolerated: the cursor
		// stays at zero and the next fetch falls back to "now".
		_ = json.Unmarshal(rawDate, &statuses.CurrentDate)
	}
	return statuses, nil
}

// jsonKind names the top-level JSON kind of a raw value for error messages.
func jsonKind(raw json.RawMessage) string {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return "object"
		case '[':
			return "array"
		case '"':
			return "string"
		case 't', 'f':
			return "bool"
		case 'n':
			return "null"
		default:
			return "number"
		}
	}
	return "empty"
}
