package worklog

import (
	"fmt"
	"time"
)

// Timestamp is an RFC3339 wall-clock mark with second resolution.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses the persisted RFC3339 form.
func ParseTimestamp(v string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{Time: t}, nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// After compares against a plain time, truncating to seconds so the
// persisted resolution and the in-memory resolution agree.
func (t Timestamp) After(other time.Time) bool {
	return t.Truncate(time.Second).After(other.Truncate(time.Second))
}

// MarshalYAML renders the canonical RFC3339 form.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.String(), nil
}

// UnmarshalYAML parses the canonical form.
func (t *Timestamp) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	*t = parsed
	return nil
}
