package catalog

import (
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names maps a category ("status", "base", ...) to raw value → display label,
// as published in pretty.json. A nil Names is valid and resolves every lookup
// through FallbackLabel.
type Names map[string]map[string]string

// Label returns the configured label. Empty labels count as missing.
func (n Names) Label(category, key string) (string, bool) {
	label := n[category][key]
	return label, label != ""
}

// Format returns the display label for key, falling back to FallbackLabel.
func (n Names) Format(category, key string) string {
	if label, ok := n.Label(category, key); ok {
		return label
	}
	return FallbackLabel(key)
}

// Keys returns the raw keys configured for a category in no particular order.
func (n Names) Keys(category string) []string {
	values := n[category]
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	return keys
}

// FallbackLabel upper-cases the first character of key and turns every
// underscore into a space: "in_progress" → "In progress".
func FallbackLabel(key string) string {
	if key == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(key)
	if first == utf8.RuneError && size == 1 {
		return strings.ReplaceAll(key, "_", " ")
	}
	head := cases.Upper(language.Und).String(string(first))
	return strings.ReplaceAll(head+key[size:], "_", " ")
}

// Formatter wraps Names and records each distinct miss once in the
// diagnostics log. It is safe for concurrent use.
type Formatter struct {
	names  Names
	logger *zap.Logger

	mu     sync.Mutex
	missed map[string]struct{}
}

// NewFormatter returns a Formatter over names. A nil logger disables logging.
func NewFormatter(names Names, logger *zap.Logger) *Formatter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Formatter{
		names:  names,
		logger: logger,
		missed: make(map[string]struct{}),
	}
}

// Format implements the display-name lookup with fallback. It never fails.
func (f *Formatter) Format(category, key string) string {
	if f == nil {
		return FallbackLabel(key)
	}
	if label, ok := f.names.Label(category, key); ok {
		return label
	}
	f.noteMiss(category, key)
	return FallbackLabel(key)
}

// Misses reports how many distinct category/key pairs fell back so far.
func (f *Formatter) Misses() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.missed)
}

func (f *Formatter) noteMiss(category, key string) {
	id := category + "\x00" + key
	f.mu.Lock()
	_, seen := f.missed[id]
	if !seen {
		f.missed[id] = struct{}{}
	}
	f.mu.Unlock()
	if seen {
		return
	}
	f.logger.Debug("no display name configured",
		zap.String("category", category),
		zap.String("key", key),
	)
}
