package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func readReport(t *testing.T, path string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer zr.Close()

	res := make(map[string]string)
	for _, f := range zr.File {
		r, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		res[f.Name] = string(data)
	}
	return res
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	conf := &ReporterConfig{Destination: filepath.Join(dir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	ini := filepath.Join(dir, "skin.ini")
	if err := os.WriteFile(ini, []byte("before"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := r.StoreCopy("skin/test-before.ini", ini); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	if err := r.StoreCopy("skin/absent.ini", filepath.Join(dir, "absent.ini")); err != nil {
		t.Fatalf("StoreCopy() for absent file error = %v", err)
	}
	if err := r.StoreCopy("skin/dir", dir); err == nil {
		t.Error("StoreCopy() must refuse directories")
	}
	if err := os.WriteFile(ini, []byte("after"), 0644); err != nil {
		t.Fatal(err)
	}
	r.Store("skin/test-after.ini", ini)
	r.Store("skin/missing.txt", filepath.Join(dir, "missing.txt"))
	r.StoreData("config/config.yaml", []byte("version: 1\n"))

	tmp := append([]string(nil), r.tmp...)
	if len(tmp) != 1 {
		t.Fatalf("expected one temporary copy, got %d", len(tmp))
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	entries := readReport(t, conf.Destination)
	for name, want := range map[string]string{
		"skin/test-before.ini": "before",
		"skin/test-after.ini":  "after",
		"config/config.yaml":   "version: 1\n",
	} {
		if got, ok := entries[name]; !ok || got != want {
			t.Errorf("report entry %s = %q (present %v), want %q", name, got, ok, want)
		}
	}
	if _, ok := entries["MANIFEST"]; !ok {
		t.Error("report has no MANIFEST")
	}
	if _, ok := entries["skin/missing.txt"]; ok {
		t.Error("absent files must not be in report")
	}
	for _, d := range tmp {
		if _, err := os.Stat(d); !os.IsNotExist(err) {
			t.Errorf("temporary directory %s was not removed", d)
		}
	}
}

func TestReportStore_Overwrite(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("a", "one")
	r.Store("a", "one")

	defer func() {
		if recover() == nil {
			t.Error("Store() with different path for the same name must panic")
		}
	}()
	r.Store("a", "two")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	r.Store("a", "b")
	r.StoreData("a", nil)
	if r.Name() != "" {
		t.Error("nil report has no name")
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
