package config

import (
	"archive/zip"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) []string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	stored := filepath.Join(dir, "project.yaml")
	if err := os.WriteFile(stored, []byte("grid: {rows: 1, columns: 1}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "cards")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "front_001.png"), []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("project.yaml", stored)
	r.Store("cards", sub)
	r.Store("missing", filepath.Join(dir, "absent"))
	r.StoreData("config/effective.yaml", []byte("version: 1\n"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	names := readArchive(t, conf.Destination)
	for _, want := range []string{"MANIFEST", "project.yaml", "cards/front_001.png", "config/effective.yaml"} {
		if !slices.Contains(names, want) {
			t.Errorf("report is missing %q, has %v", want, names)
		}
	}
	if slices.Contains(names, "missing") {
		t.Error("absent file must be skipped")
	}
}

func TestReport_StoreJSON(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if err := r.StoreJSON("plan.json", map[string]int{"fronts": 6, "backs": 6}); err != nil {
		t.Fatalf("StoreJSON() error = %v", err)
	}
	if err := r.StoreJSON("bad.json", make(chan int)); err == nil {
		t.Error("StoreJSON() expected error for unsupported value")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	zr, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()
	f, err := zr.Open("plan.json")
	if err != nil {
		t.Fatalf("plan.json not archived: %v", err)
	}
	defer f.Close()
	var got map[string]int
	if err := json.NewDecoder(f).Decode(&got); err != nil || got["fronts"] != 6 {
		t.Errorf("plan.json = %v, err = %v", got, err)
	}
}

func TestReport_StorePanicsOnOverwrite(t *testing.T) {
	r := &Report{items: make(map[string]item)}
	r.Store("a", "/tmp/one")
	r.Store("a", "/tmp/one")

	defer func() {
		if recover() == nil {
			t.Error("expected panic when overwriting entry")
		}
	}()
	r.Store("a", "/tmp/two")
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreJSON("a", 1); err != nil {
		t.Errorf("StoreJSON on nil report should not error, got: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Error("Name of nil report should be empty")
	}
}

func TestLoggingConfig_Prepare(t *testing.T) {
	dir := t.TempDir()
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "normal", Destination: filepath.Join(dir, "cardcut.log"), Mode: "overwrite"},
	}
	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Info("hello")
	log.Debug("hidden")
	_ = log.Sync()

	data, err := os.ReadFile(conf.FileLogger.Destination)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello") || strings.Contains(string(data), "hidden") {
		t.Errorf("unexpected log content:\n%s", data)
	}
	if _, err := os.Stat(PanicLogName(conf.FileLogger.Destination)); err != nil {
		t.Errorf("panic log not created: %v", err)
	}
}
