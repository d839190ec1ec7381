package skin

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"osr/transform"
)

func write(t *testing.T, s *Sections) string {
	t.Helper()
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	return buf.String()
}

func read(t *testing.T, data, eol string) *Sections {
	t.Helper()
	s, err := ReadSections(strings.NewReader(data), eol, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("ReadSections() error = %v", err)
	}
	return s
}

func TestSections_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data string
		keys []int
	}{
		{"empty", "", nil},
		{"no mania", "[General]\r\nName: test\r\n\r\n[Colours]\nCombo1: 1,2,3", nil},
		{"trailing mania", "[General]\nName: test\n\n[Mania]\nKeys: 4\nColumnWidth: 38\n\n", []int{4}},
		{"trailing mania without newline", "[General]\n[Mania]\nKeys: 4\nColumnWidth: 38", []int{4}},
		{"adjacent mania", "[Mania]\nKeys: 4\n[Mania]\nKeys: 7\n", []int{4, 7}},
		{"mania without keys", "[Mania]\nColumnWidth: 1\n[Fonts]\nHitPrefix: x\n", nil},
		{"mania broken keys", "[General]\n[Mania]\nKeys: four\n", nil},
		{"utf8", "[General]\nName: скин ☆\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := read(t, tt.data, "\n")
			if got := s.KeyCounts(); !slices.Equal(got, tt.keys) {
				t.Fatalf("KeyCounts() = %v, want %v", got, tt.keys)
			}
			if got := write(t, s); got != tt.data {
				t.Fatalf("round trip changed content:\n got: %q\nwant: %q", got, tt.data)
			}
		})
	}
}

func TestSections_PreservedOrder(t *testing.T) {
	data := "[General]\r\nName: x\r\n\r\n[Mania]\r\nKeys: 4\r\nColumnWidth: 1\r\n\r\n[Colours]\nCombo1: 1,2,3"
	s := read(t, data, "\n")

	if got := s.Preserved(); got != "[General]\r\nName: x\r\n\r\n[Colours]\nCombo1: 1,2,3" {
		t.Fatalf("Preserved() = %q", got)
	}
	want := "[General]\r\nName: x\r\n\r\n[Colours]\nCombo1: 1,2,3\n[Mania]\r\nKeys: 4\r\nColumnWidth: 1\r\n\r\n"
	if got := write(t, s); got != want {
		t.Fatalf("WriteTo() = %q, want %q", got, want)
	}
}

func TestSections_HeaderCase(t *testing.T) {
	s := read(t, "[MANIA]\n  Keys : 5 \n", "\n")
	if got := s.KeyCounts(); !slices.Equal(got, []int{5}) {
		t.Fatalf("KeyCounts() = %v", got)
	}
}

func TestSections_Duplicate(t *testing.T) {
	s := read(t, "[Mania]\nKeys: 4\nA: 1\n[Mania]\nKeys: 7\n[Mania]\nKeys: 4\nA: 2\n", "\n")
	if got := s.KeyCounts(); !slices.Equal(got, []int{4, 7}) {
		t.Fatalf("KeyCounts() = %v", got)
	}
	got, _ := s.Get(4)
	if !slices.Equal(got, []string{"[Mania]", "Keys: 4", "A: 2"}) {
		t.Fatalf("later duplicate must win, got %q", got)
	}
}

func TestSections_Set(t *testing.T) {
	s := read(t, "[General]\n[Mania]\nKeys: 4\n[Mania]\nKeys: 7\n", "\r\n")

	s.Set(4, []string{"[Mania]", "Keys: 4", "ColumnWidth: 38"})
	s.Set(5, []string{"[Mania]", "Keys: 5"})

	if got := s.KeyCounts(); !slices.Equal(got, []int{4, 7, 5}) {
		t.Fatalf("KeyCounts() = %v", got)
	}
	want := "[General]\n[Mania]\r\nKeys: 4\r\nColumnWidth: 38\r\n[Mania]\nKeys: 7\n[Mania]\r\nKeys: 5\r\n"
	if got := write(t, s); got != want {
		t.Fatalf("WriteTo() = %q, want %q", got, want)
	}
	if _, ok := s.Get(6); ok {
		t.Fatal("Get() for absent key count must fail")
	}
}

func TestSections_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skin.ini")
	log := zaptest.NewLogger(t)

	s, err := LoadSections(path, "\n", log)
	if err != nil {
		t.Fatalf("LoadSections() for absent file error = %v", err)
	}
	if len(s.KeyCounts()) != 0 || s.Preserved() != "" {
		t.Fatal("absent file must give empty sections")
	}

	s.Set(4, []string{"[Mania]", "Keys: 4"})
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[Mania]\nKeys: 4\n" {
		t.Fatalf("saved content = %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temporary file left behind: %v", entries)
	}

	loaded, err := LoadSections(path, "\n", log)
	if err != nil {
		t.Fatalf("LoadSections() error = %v", err)
	}
	if got, _ := loaded.Get(4); !slices.Equal(got, []string{"[Mania]", "Keys: 4"}) {
		t.Fatalf("loaded section = %q", got)
	}
}

func TestSections_SaveMissingDir(t *testing.T) {
	s := NewSections("\n", zaptest.NewLogger(t))
	if err := s.Save(filepath.Join(t.TempDir(), "absent", "skin.ini")); err == nil {
		t.Fatal("expected error when directory does not exist")
	}
}

// generate runs full cycle: load skin.ini, process script, save skin.ini.
func generate(t *testing.T, root, script string) string {
	t.Helper()

	cfg := testConfig()
	ini := filepath.Join(root, cfg.Ini)
	log := zaptest.NewLogger(t)

	sections, err := LoadSections(ini, cfg.LineEnding(), log)
	if err != nil {
		t.Fatalf("LoadSections() error = %v", err)
	}
	s := New(testSkin, root, cfg, sections, &transform.Recorder{}, log)
	if err := s.Process(context.Background(), strings.NewReader(script)); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if err := s.Sections.Save(ini); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := os.ReadFile(ini)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestGenerate_Idempotent(t *testing.T) {
	root := t.TempDir()
	makeSource(t, root, "note.png", "receptor-up.png")

	initial := "[General]\nName: test\n\n[Mania]\nKeys: 7\nColumnWidth: 30,30,30,30,30,30,30\n\n[Colours]\nCombo1: 255,0,0\n"
	if err := os.WriteFile(filepath.Join(root, "skin.ini"), []byte(initial), 0644); err != nil {
		t.Fatal(err)
	}

	script := "settings yes no 16:9\ncomponent note variable\ncomponent receptor-up static\nkeys 4 36 2 120 128 abba\n"
	first := generate(t, root, script)
	second := generate(t, root, script)

	if first != second {
		t.Fatalf("second run changed skin.ini:\nfirst:  %q\nsecond: %q", first, second)
	}
	preserved := "[General]\nName: test\n\n[Colours]\nCombo1: 255,0,0\n"
	if !strings.HasPrefix(first, preserved) {
		t.Fatalf("unrelated content was not preserved: %q", first)
	}
	if !strings.Contains(first, "[Mania]\nKeys: 7\nColumnWidth: 30,30,30,30,30,30,30\n\n") {
		t.Fatalf("untouched 7 keys section lost: %q", first)
	}
	if !strings.Contains(first, "NoteImage1: test\\noteb-0\nKeyImage1: test\\receptor-up-0\n") {
		t.Fatalf("generated 4 keys section is incomplete: %q", first)
	}
}
