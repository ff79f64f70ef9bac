package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Hack mirrors a single entry of db.json.
type Hack struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Creator     string    `json:"creator"`
	Description string    `json:"description"`
	Base        string    `json:"base"`
	Status      string    `json:"status"`
	Story       string    `json:"story"`
	Length      string    `json:"length"`
	Difficulty  string    `json:"difficulty"`
	Pokedex     []string  `json:"pokedex"`
	Features    []string  `json:"features"`
	Languages   []string  `json:"languages"`
	Cover       string    `json:"cover"`
	LastUpdate  Timestamp `json:"last_update"`
}

// ID is a hack identifier. The catalog publishes slugs, but numeric ids are
// accepted and kept in their decimal form.
type ID string

// UnmarshalJSON accepts a JSON string, number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Timestamp keeps the raw last_update value together with whether the field
// was present at all. Parsing happens at render time.
type Timestamp struct {
	Raw     string
	Present bool
	// Numeric is set when last_update was a JSON number rather than a string.
	Numeric bool
}

// UnmarshalJSON records strings and numbers verbatim; null counts as absent.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Timestamp{Raw: s, Present: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode last_update %s: %w", data, err)
	}
	*t = Timestamp{Raw: n.String(), Present: true, Numeric: true}
	return nil
}

// MarshalJSON writes the raw value back, or null when absent.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Present {
		return []byte("null"), nil
	}
	if t.Numeric {
		return json.Marshal(json.Number(t.Raw))
	}
	return json.Marshal(t.Raw)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	time.RFC1123Z,
	time.RFC1123,
	"2006",
}

// Time parses the raw value. JSON numbers are read as milliseconds since the
// Unix epoch; strings must match one of the date layouts. The second result
// is false when the value is absent or cannot be parsed.
func (t Timestamp) Time() (time.Time, bool) {
	if !t.Present {
		return time.Time{}, false
	}
	if t.Numeric {
		ms, err := strconv.ParseInt(strings.TrimSpace(t.Raw), 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).UTC(), true
	}
	return parseTime(t.Raw)
}

func parseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Catalog is the fully loaded dataset: every hack plus the display-name table.
type Catalog struct {
	Hacks []Hack
	Names Names
}
