package skin

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const maniaHeader = "[mania]"

// Sections is skin.ini split into content which is kept as is and [Mania]
// sections owned by generator, one per key count. All lines are stored with
// their terminators so untouched content is written back byte for byte.
type Sections struct {
	eol       string
	preserved []string
	keys      []int
	sections  map[int][]string
	log       *zap.Logger
}

// NewSections returns empty set. Generated lines will be terminated with eol.
func NewSections(eol string, log *zap.Logger) *Sections {
	return &Sections{eol: eol, sections: make(map[int][]string), log: log}
}

// splitLines splits data keeping line terminators. Last line may have none.
func splitLines(data []byte) []string {
	var lines []string
	for len(data) > 0 {
		n := bytes.IndexByte(data, '\n') + 1
		if n == 0 {
			n = len(data)
		}
		lines = append(lines, string(data[:n]))
		data = data[n:]
	}
	return lines
}

func isManiaHeader(line string) bool {
	return strings.HasPrefix(strings.ToLower(line), maniaHeader)
}

// keyCount looks for "Keys:" field in section lines.
func keyCount(lines []string) (int, bool) {
	for _, line := range lines {
		name, value, found := strings.Cut(strings.TrimSpace(line), ":")
		if !found || !strings.EqualFold(strings.TrimSpace(name), "Keys") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// ReadSections splits r into preserved content and owned sections. [Mania]
// section lasts until next section header or end of input. Sections without
// parseable key count are preserved.
func ReadSections(r io.Reader, eol string, log *zap.Logger) (*Sections, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	s := NewSections(eol, log)

	var (
		candidate []string
		inMania   bool
	)
	flush := func() {
		if !inMania {
			return
		}
		if n, ok := keyCount(candidate); ok {
			if _, exists := s.sections[n]; exists {
				s.log.Warn("Duplicate [Mania] section, later one is used", zap.Int("keys", n))
			}
			s.set(n, candidate)
		} else {
			s.preserved = append(s.preserved, candidate...)
		}
		candidate, inMania = nil, false
	}

	for _, line := range splitLines(data) {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			flush()
			if isManiaHeader(trimmed) {
				inMania = true
			}
		}
		if inMania {
			candidate = append(candidate, line)
		} else {
			s.preserved = append(s.preserved, line)
		}
	}
	flush()
	return s, nil
}

// LoadSections reads skin.ini, absent file is the same as empty one.
func LoadSections(path, eol string, log *zap.Logger) (*Sections, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("Configuration file does not exist, starting from scratch", zap.String("file", path))
		return NewSections(eol, log), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadSections(f, eol, log)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	return s, nil
}

func (s *Sections) set(keys int, lines []string) {
	if _, exists := s.sections[keys]; !exists {
		s.keys = append(s.keys, keys)
	}
	s.sections[keys] = lines
}

// Set replaces section for key count. Lines must not have terminators.
// Replaced section keeps its position.
func (s *Sections) Set(keys int, lines []string) {
	terminated := make([]string, len(lines))
	for i, line := range lines {
		terminated[i] = line + s.eol
	}
	s.set(keys, terminated)
}

// Get returns section lines for key count without terminators.
func (s *Sections) Get(keys int) ([]string, bool) {
	lines, ok := s.sections[keys]
	if !ok {
		return nil, false
	}
	res := make([]string, len(lines))
	for i, line := range lines {
		res[i] = strings.TrimRight(line, "\r\n")
	}
	return res, true
}

// KeyCounts returns key counts of owned sections in output order.
func (s *Sections) KeyCounts() []int {
	res := make([]int, len(s.keys))
	copy(res, s.keys)
	return res
}

// Preserved returns content which is not owned by generator.
func (s *Sections) Preserved() string {
	return strings.Join(s.preserved, "")
}

// WriteTo writes preserved content followed by all owned sections.
func (s *Sections) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	terminate := func() {
		if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
			buf.WriteString(s.eol)
		}
	}

	for _, line := range s.preserved {
		buf.WriteString(line)
	}
	for _, n := range s.keys {
		terminate()
		for _, line := range s.sections[n] {
			buf.WriteString(line)
		}
	}
	return buf.WriteTo(w)
}

// Save writes sections to path. Data goes to temporary file in the same
// directory which is then renamed, so path always has either old or new
// content.
func (s *Sections) Save(path string) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, os.Remove(f.Name()))
		}
	}()

	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err = f.Chmod(mode); err != nil {
		return multierr.Append(fmt.Errorf("unable to set permissions: %w", err), f.Close())
	}

	if _, err = s.WriteTo(f); err != nil {
		return multierr.Append(fmt.Errorf("unable to write %s: %w", path, err), f.Close())
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("unable to replace %s: %w", path, err)
	}
	return nil
}
