package logtail

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Entry is one parsed diagnostics log line.
type Entry struct {
	Time    string
	Level   string
	Message string
	Fields  []Field
	// Structured is false when the line was not a JSON log record.
	Structured bool
	Raw        string
}

// Field is one extra key/value pair of a log record.
type Field struct {
	Key   string
	Value string
}

// Palette styles the parts of a rendered entry.
type Palette struct {
	Time    lipgloss.Style
	Debug   lipgloss.Style
	Info    lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Message lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
}

// Parse decodes a zap JSON record. Lines that are not JSON objects come
// back unstructured with Raw set.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return entry
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(trimmed), &record); err != nil {
		return entry
	}
	entry.Structured = true
	entry.Time = stringValue(record["ts"])
	entry.Level = strings.ToUpper(stringValue(record["level"]))
	entry.Message = stringValue(record["msg"])

	keys := make([]string, 0, len(record))
	for key := range record {
		switch key {
		case "ts", "level", "msg":
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		entry.Fields = append(entry.Fields, Field{Key: key, Value: stringValue(record[key])})
	}
	return entry
}

// ColorizeLine renders one log line with p.
func ColorizeLine(line string, p Palette) string {
	entry := Parse(line)
	if !entry.Structured {
		return line
	}

	parts := make([]string, 0, 3+len(entry.Fields))
	if entry.Time != "" {
		parts = append(parts, p.Time.Render(entry.Time))
	}
	if entry.Level != "" {
		parts = append(parts, p.level(entry.Level).Render(entry.Level))
	}
	if entry.Message != "" {
		parts = append(parts, p.Message.Render(entry.Message))
	}
	for _, f := range entry.Fields {
		parts = append(parts, p.Key.Render(f.Key+"=")+p.Value.Render(f.Value))
	}
	return strings.Join(parts, " ")
}

// ColorizeLines renders each line with p.
func ColorizeLines(lines []string, p Palette) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ColorizeLine(line, p)
	}
	return out
}

func (p Palette) level(level string) lipgloss.Style {
	switch level {
	case "DEBUG":
		return p.Debug
	case "WARN":
		return p.Warn
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return p.Error
	default:
		return p.Info
	}
}

func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64, bool:
		return fmt.Sprint(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}
