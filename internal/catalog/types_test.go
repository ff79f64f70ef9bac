package catalog

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHackDecode_OptionalFields(t *testing.T) {
	var hack Hack
	if err := json.Unmarshal([]byte(`{"id":"a","title":"A","base":"emerald","status":"complete"}`), &hack); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if hack.Difficulty != "" || hack.Story != "" || hack.Length != "" || hack.Cover != "" {
		t.Fatalf("optional singles = %#v, want empty", hack)
	}
	if hack.Pokedex != nil || hack.Features != nil || hack.Languages != nil {
		t.Fatalf("optional arrays = %#v, want nil", hack)
	}
	if hack.LastUpdate.Present {
		t.Fatalf("LastUpdate.Present = true, want false when absent")
	}
}

func TestHackDecode_NullsAndNumericID(t *testing.T) {
	var hack Hack
	payload := `{"id":42,"title":"A","pokedex":null,"last_update":null}`
	if err := json.Unmarshal([]byte(payload), &hack); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if hack.ID != "42" {
		t.Fatalf("ID = %q, want 42", hack.ID)
	}
	if hack.Pokedex != nil {
		t.Fatalf("Pokedex = %#v, want nil", hack.Pokedex)
	}
	if hack.LastUpdate.Present {
		t.Fatalf("LastUpdate.Present = true, want false for null")
	}
}

func TestHackDecode_InvalidID(t *testing.T) {
	var hack Hack
	if err := json.Unmarshal([]byte(`{"id":{"nested":true}}`), &hack); err == nil {
		t.Fatalf("Unmarshal returned nil error, want id decode error")
	}
}

func TestTimestamp_Time(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		present bool
		numeric bool
		wantOK  bool
		want    time.Time
	}{
		{"absent", "", false, false, false, time.Time{}},
		{"empty", "", true, false, false, time.Time{}},
		{"garbage", "sometime soon", true, false, false, time.Time{}},
		{"date only", "2024-03-05", true, false, true, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2024-03-05T10:11:12Z", true, false, true, time.Date(2024, 3, 5, 10, 11, 12, 0, time.UTC)},
		{"long form", "March 5, 2024", true, false, true, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"year only", "2024", true, false, true, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"compact digits string", "20240305", true, false, false, time.Time{}},
		{"millis as string", "1709596800000", true, false, false, time.Time{}},
		{"epoch millis number", "1709596800000", true, true, true, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"fractional number", "1.5", true, true, false, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Timestamp{Raw: tc.raw, Present: tc.present, Numeric: tc.numeric}.Time()
			if ok != tc.wantOK {
				t.Fatalf("Time() ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("Time() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTimestamp_DecodesNumbers(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`1709596800000`), &ts); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if !ts.Present || !ts.Numeric || ts.Raw != "1709596800000" {
		t.Fatalf("Timestamp = %#v, want present numeric raw millis", ts)
	}
	if got, ok := ts.Time(); !ok || !got.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("Time() = %v, %v, want 2024-03-05", got, ok)
	}
	back, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(back) != "1709596800000" {
		t.Fatalf("Marshal(numeric) = %s, want bare number", back)
	}

	for _, quoted := range []string{`"20240305"`, `"1709596800000"`} {
		var s Timestamp
		if err := json.Unmarshal([]byte(quoted), &s); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", quoted, err)
		}
		if s.Numeric {
			t.Fatalf("Unmarshal(%s).Numeric = true, want false for a string", quoted)
		}
		if _, ok := s.Time(); ok {
			t.Fatalf("Unmarshal(%s).Time() parsed, want unparseable", quoted)
		}
	}

	out, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(out) != "null" {
		t.Fatalf("Marshal(absent) = %s, want null", out)
	}
}
