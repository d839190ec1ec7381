package sdl

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	script := `// layout for 4 keys

settings no yes 16:9 {
    Hit300: hit300
  ComboBurstStyle: 2
}
   // indented comment
COMPONENT Note Variable
keys 4 36 2 120 128 VVVV
`
	got, err := Parse(strings.NewReader(script))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []Statement{
		{Line: 3, Name: "settings", Args: []string{"no", "yes", "16:9", "Hit300: hit300", "ComboBurstStyle: 2"}, Block: 2},
		{Line: 8, Name: "component", Args: []string{"note", "variable"}},
		{Line: 9, Name: "keys", Args: []string{"4", "36", "2", "120", "128", "vvvv"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse() =\n%#v\nwant\n%#v", got, want)
	}
}

func TestParse_Empty(t *testing.T) {
	got, err := Parse(strings.NewReader("\n\n// nothing here\n   \n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no statements, got %d", len(got))
	}
}

func TestParse_BlockKeepsBlankLines(t *testing.T) {
	got, err := Parse(strings.NewReader("settings no no 4:3 {\nA: 1\n\nB: 2\n}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one statement, got %d", len(got))
	}
	if want := []string{"no", "no", "4:3", "A: 1", "", "B: 2"}; !reflect.DeepEqual(got[0].Args, want) {
		t.Fatalf("args = %q, want %q", got[0].Args, want)
	}
	if got[0].Block != 3 {
		t.Fatalf("block = %d, want 3", got[0].Block)
	}
}

func TestParse_UnterminatedBlock(t *testing.T) {
	script := "component note static\nsettings no no 16:9 {\nA: 1\nB: 2\n"
	got, err := Parse(strings.NewReader(script))
	if got != nil {
		t.Fatalf("expected no statements on error, got %d", len(got))
	}
	var ub *UnterminatedBlockError
	if !errors.As(err, &ub) {
		t.Fatalf("expected UnterminatedBlockError, got %v", err)
	}
	if ub.Line != 2 {
		t.Fatalf("line = %d, want 2", ub.Line)
	}
	if ub.Error() != "Missing end bracket for line 2" {
		t.Fatalf("unexpected message %q", ub.Error())
	}
}

func TestParse_LoneBracketIsCommand(t *testing.T) {
	got, err := Parse(strings.NewReader("{\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "{" || len(got[0].Args) != 0 {
		t.Fatalf("unexpected statements %#v", got)
	}
}

func TestParse_ByteOrderMark(t *testing.T) {
	t.Run("utf8", func(t *testing.T) {
		got, err := Parse(strings.NewReader("\ufeffkeys 1 2\r\n"))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if len(got) != 1 || got[0].Name != "keys" {
			t.Fatalf("unexpected statements %#v", got)
		}
		if want := []string{"1", "2"}; !reflect.DeepEqual(got[0].Args, want) {
			t.Fatalf("args = %q, want %q", got[0].Args, want)
		}
	})

	t.Run("utf16le", func(t *testing.T) {
		text := "keys 4\n"
		data := []byte{0xFF, 0xFE}
		for _, r := range text {
			data = append(data, byte(r), 0)
		}
		got, err := Parse(strings.NewReader(string(data)))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if len(got) != 1 || got[0].Name != "keys" || got[0].Args[0] != "4" {
			t.Fatalf("unexpected statements %#v", got)
		}
	})
}

func TestScanner_LineNumbersAfterBlock(t *testing.T) {
	sc := NewScanner(strings.NewReader("a {\n1\n2\n}\n\nb\n"))

	st, err := sc.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if st.Line != 1 || sc.Line() != 4 {
		t.Fatalf("first statement line %d, scanner at %d", st.Line, sc.Line())
	}

	st, err = sc.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if st.Name != "b" || st.Line != 6 {
		t.Fatalf("second statement %q at line %d, want b at 6", st.Name, st.Line)
	}

	if _, err = sc.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
