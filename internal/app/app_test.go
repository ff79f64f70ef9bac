package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/five82/hackdex/internal/catalog"
	"github.com/five82/hackdex/internal/export"
	"github.com/five82/hackdex/internal/filter"
	"github.com/five82/hackdex/internal/state"
)

const (
	testDB = `[
		{"id":"crystal-clear","title":"Crystal Clear","creator":"ShockSlayer","base":"crystal","status":"complete","languages":["en"]},
		{"id":"radical-red","title":"Radical Red","creator":"soupercell","base":"fire_red","status":"in_progress"}
	]`
	testNames = `{"status":{"complete":"Completed","in_progress":"In Progress"}}`
)

func newCatalogServer(t *testing.T, hits *int32, fail bool) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		if fail {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/db.json":
			_, _ = w.Write([]byte(testDB))
		case "/pretty.json":
			_, _ = w.Write([]byte(testNames))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func writeConfig(t *testing.T, dir, baseURL string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf("base_url = %q\nrequest_timeout_seconds = 2\nlog_file = %q\n",
		baseURL, filepath.Join(dir, "logs", "hackdex.log"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRun_ExportHTML(t *testing.T) {
	dir := t.TempDir()
	server := newCatalogServer(t, nil, false)
	cfgPath := writeConfig(t, dir, server.URL)
	outPath := filepath.Join(dir, "out", "hacks.html")

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		ConfigPath: cfgPath,
		Filter:     "status=complete",
		ExportPath: outPath,
		Out:        &out,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := fmt.Sprintf("wrote 1 of 2 hacks to %s\n", outPath)
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}

	page, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(page), "Crystal Clear") || strings.Contains(string(page), "Radical Red") {
		t.Fatalf("export does not hold exactly the filtered hack:\n%s", page)
	}
	if !strings.Contains(string(page), "Completed") {
		t.Fatalf("export is missing the display name for status")
	}

	logData, err := os.ReadFile(filepath.Join(dir, "logs", "hackdex.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(logData), `"msg":"export written"`) {
		t.Fatalf("log = %q, want export entry", logData)
	}
}

func TestRun_ExportXLSX(t *testing.T) {
	dir := t.TempDir()
	server := newCatalogServer(t, nil, false)
	outPath := filepath.Join(dir, "hacks.xlsx")

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		ConfigPath: writeConfig(t, dir, server.URL),
		ExportPath: outPath,
		Out:        &out,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "wrote 2 of 2 hacks") {
		t.Fatalf("output = %q, want 2 of 2", out.String())
	}
	info, err := os.Stat(outPath)
	if err != nil || info.Size() == 0 {
		t.Fatalf("xlsx not written: %v", err)
	}
}

func TestRun_ExportRejectsFormatBeforeFetching(t *testing.T) {
	dir := t.TempDir()
	var hits int32
	server := newCatalogServer(t, &hits, false)

	err := Run(context.Background(), Options{
		ConfigPath: writeConfig(t, dir, server.URL),
		ExportPath: filepath.Join(dir, "hacks.csv"),
		Out:        &bytes.Buffer{},
	})
	if !errors.Is(err, export.ErrUnsupportedFormat) {
		t.Fatalf("Run error = %v, want ErrUnsupportedFormat", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("server hit %d times, want 0", hits)
	}
}

func TestRun_ExportLoadFailure(t *testing.T) {
	dir := t.TempDir()
	server := newCatalogServer(t, nil, true)
	outPath := filepath.Join(dir, "hacks.html")

	err := Run(context.Background(), Options{
		ConfigPath: writeConfig(t, dir, server.URL),
		ExportPath: outPath,
		Out:        &bytes.Buffer{},
	})
	if err == nil || !strings.Contains(err.Error(), "load required data") {
		t.Fatalf("Run error = %v, want load failure", err)
	}
	if !errors.Is(err, catalog.ErrStatus) {
		t.Fatalf("Run error = %v, want it to wrap ErrStatus", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Fatalf("export file exists after failed load")
	}
}

func TestRun_InvalidFilter(t *testing.T) {
	dir := t.TempDir()
	err := Run(context.Background(), Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		Filter:     "stauts=complete",
		ExportPath: filepath.Join(dir, "hacks.html"),
	})
	if !errors.Is(err, filter.ErrUnknownGroup) {
		t.Fatalf("Run error = %v, want ErrUnknownGroup", err)
	}
	if !strings.Contains(err.Error(), `did you mean "status"`) {
		t.Fatalf("Run error = %q, want a suggestion", err.Error())
	}
}

type countingFetcher struct {
	calls int32
	err   error
}

func (f *countingFetcher) FetchHacks(ctx context.Context) ([]catalog.Hack, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return []catalog.Hack{{ID: "a", Title: "A"}}, nil
}

func (f *countingFetcher) FetchNames(ctx context.Context) (catalog.Names, error) {
	return catalog.Names{}, nil
}

func TestLoader_LoadsOnce(t *testing.T) {
	fetcher := &countingFetcher{}
	loader := &Loader{Store: &state.Store{}, Fetcher: fetcher}

	first := loader.Load(context.Background())
	second := loader.Load(context.Background())

	if first.Phase != state.PhaseReady || second.Phase != state.PhaseReady {
		t.Fatalf("phases = %v, %v, want ready", first.Phase, second.Phase)
	}
	if len(second.Hacks) != 1 || second.Hacks[0].ID != "a" {
		t.Fatalf("Hacks = %#v, want [a]", second.Hacks)
	}
	if got := atomic.LoadInt32(&fetcher.calls); got != 1 {
		t.Fatalf("FetchHacks calls = %d, want 1", got)
	}
}

func TestLoader_FailureIsTerminal(t *testing.T) {
	boom := errors.New("boom")
	loader := &Loader{Store: &state.Store{}, Fetcher: &countingFetcher{err: boom}, Logger: zap.NewNop()}

	snap := loader.Load(context.Background())
	if snap.Phase != state.PhaseError {
		t.Fatalf("Phase = %v, want error", snap.Phase)
	}
	if !errors.Is(snap.Err, boom) {
		t.Fatalf("Err = %v, want boom", snap.Err)
	}
	if snap.Hacks != nil {
		t.Fatalf("Hacks = %#v, want nil on error", snap.Hacks)
	}
}

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hackdex.log")
	logger := newLogger(path)
	logger.Debug("probe", zap.Int("n", 1), zap.Duration("elapsed", 1500*time.Millisecond))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	for _, want := range []string{`"level":"debug"`, `"msg":"probe"`, `"n":1`, `"elapsed":"1.5s"`, `"ts":"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %s", line, want)
		}
	}
}

func TestNewLogger_LevelFromEnv(t *testing.T) {
	t.Setenv(logLevelEnv, "warn")
	path := filepath.Join(t.TempDir(), "hackdex.log")
	logger := newLogger(path)
	logger.Info("quiet")
	logger.Warn("loud")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "quiet") || !strings.Contains(string(data), "loud") {
		t.Fatalf("log = %q, want only the warn entry", data)
	}
}

func TestNewLogger_EmptyPathIsNop(t *testing.T) {
	if logger := newLogger(" "); logger == nil {
		t.Fatalf("newLogger returned nil")
	}
}
