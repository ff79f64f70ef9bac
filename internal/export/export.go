package export

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/five82/hackdex/internal/catalog"
	"github.com/five82/hackdex/internal/render"
)

// Format is an export file format.
type Format int

const (
	// FormatHTML is a standalone HTML page of cards.
	FormatHTML Format = iota
	// FormatXLSX is a workbook with one row per hack.
	FormatXLSX
)

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatXLSX:
		return "xlsx"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ErrUnsupportedFormat reports an export path with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return 0, fmt.Errorf("%w %q (want .html or .xlsx)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Document is the filtered catalog to export.
type Document struct {
	// Hacks are the filtered hacks, in catalog order.
	Hacks []catalog.Hack
	// Total is the size of the unfiltered catalog.
	Total   int
	Labeler render.Labeler
	// Filter is the criteria in query form, empty when unfiltered.
	Filter string
	// BaseURL is the catalog site root; card links are resolved against it.
	BaseURL   string
	Generated time.Time
}

// WriteHTML writes doc as a standalone page.
func WriteHTML(w io.Writer, doc Document) error {
	return render.WritePage(w, render.Page{
		BaseURL:   doc.BaseURL,
		Filter:    doc.Filter,
		Total:     doc.Total,
		Cards:     render.BuildCards(doc.Hacks, doc.Labeler),
		Generated: doc.Generated,
	})
}

// WriteFile writes doc to path in the format implied by its extension.
func WriteFile(path string, doc Document) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	return writeAtomic(path, func(w io.Writer) error {
		if format == FormatXLSX {
			return WriteXLSX(w, doc)
		}
		return WriteHTML(w, doc)
	})
}

// writeAtomic renders into a temp file next to path and renames it into place
// only when write succeeds. On failure nothing is left behind and an existing
// file at path is untouched.
func writeAtomic(path string, write func(io.Writer) error) (err error) {
	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	tmp := file.Name()
	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = write(file); err != nil {
		return err
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("chmod export: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename export: %w", err)
	}
	return nil
}

func absoluteLink(base, ref string) string {
	if base == "" {
		return ref
	}
	root, err := url.Parse(base)
	if err != nil {
		return ref
	}
	rel, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return root.ResolveReference(rel).String()
}
