package entity

import (
	"encoding/json"
	"fmt"
)

// DayList is an ordered, de-duplicated list of weekday tokens. It is the
// typed form of the JSON array persisted in the votes table; encoding and
// decoding stay at this boundary instead of spreading through services.
type DayList []string

// ParseDayList decodes a raw serialized day list. Order is preserved and
// duplicates are dropped.
func ParseDayList(raw string) (DayList, error) {
	var days []string
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return nil, fmt.Errorf("malformed day list %q: %w", raw, err)
	}

	seen := make(map[string]bool, len(days))
	out := make(DayList, 0, len(days))
	for _, d := range days {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out, nil
}

// Encode serializes the list for storage. A nil list encodes as [].
func (d DayList) Encode() string {
	if d == nil {
		d = DayList{}
	}
	b, _ := json.Marshal([]string(d))
	return string(b)
}
