// Package sdl implements reader and command dispatcher for skin definition
// language - a small line oriented script describing skin layouts.
//
// Script consists of commands, one per line, with whitespace separated
// arguments. Lines starting with "//" are comments. If last token on the line
// is "{" following lines up to a line containing only "}" are passed to the
// command as additional arguments:
//
//	settings no yes 16:9 {
//	    Hit300: hit300
//	}
package sdl

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	CommentPrefix = "//"
	BlockOpen     = "{"
	BlockClose    = "}"
)

// Statement is a single command invocation.
type Statement struct {
	// Line is 1-based line number of the command itself.
	Line int
	// Name is command name, always lower case.
	Name string
	// Args has inline arguments (lower case) followed by block lines (as written, trimmed).
	Args []string
	// Block is number of lines taken from "{" block, 0 if there was no block.
	Block int
}

// Scanner splits script into statements. It reads input once and cannot be
// restarted.
type Scanner struct {
	in   *bufio.Scanner
	line int
}

// NewScanner returns scanner reading from r. UTF-8 input may start with BOM,
// UTF-16 input is recognized by its BOM and decoded.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		in: bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))),
	}
}

// Line returns number of lines consumed so far.
func (s *Scanner) Line() int {
	return s.line
}

func (s *Scanner) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	s.line++
	return s.in.Text(), true
}

// Next returns next statement or io.EOF when script is exhausted.
func (s *Scanner) Next() (Statement, error) {
	for {
		raw, ok := s.readLine()
		if !ok {
			if err := s.in.Err(); err != nil {
				return Statement{}, err
			}
			return Statement{}, io.EOF
		}

		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, CommentPrefix) {
			continue
		}

		fields := strings.Fields(strings.ToLower(text))
		st := Statement{Line: s.line, Name: fields[0], Args: fields[1:]}

		if len(st.Args) == 0 || st.Args[len(st.Args)-1] != BlockOpen {
			return st, nil
		}

		st.Args = st.Args[:len(st.Args)-1]
		for {
			raw, ok := s.readLine()
			if !ok {
				if err := s.in.Err(); err != nil {
					return Statement{}, err
				}
				return Statement{}, &UnterminatedBlockError{Line: st.Line}
			}
			text := strings.TrimSpace(raw)
			if text == BlockClose {
				break
			}
			st.Args = append(st.Args, text)
			st.Block++
		}
		return st, nil
	}
}

// Parse reads the whole script. Nothing is returned if script is structurally
// broken, so callers never act on a partial script.
func Parse(r io.Reader) ([]Statement, error) {
	var (
		sc  = NewScanner(r)
		res []Statement
	)
	for {
		st, err := sc.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, st)
	}
}
