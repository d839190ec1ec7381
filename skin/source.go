package skin

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"
	"gopkg.in/ini.v1"
)

// MissingSourceError is returned when requested skin has no source
// directory.
type MissingSourceError struct {
	Skin string
	Dir  string
}

func (e *MissingSourceError) Error() string {
	if e.Skin == "" {
		return fmt.Sprintf("No skin sources found in '%s'", e.Dir)
	}
	return fmt.Sprintf("Unable to find source directory '%s' for skin '%s'", e.Dir, e.Skin)
}

// Discover returns names of skins which have source directories under root.
func Discover(root, prefix string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("unable to read skin root: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name, found := strings.CutPrefix(e.Name(), prefix+"-")
		if !found || name == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names, nil
}

// CheckSource makes sure source directory for skin exists and returns it.
func CheckSource(root, prefix, name string) (string, error) {
	dir := SourceDir(root, prefix, name)
	fi, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) || (err == nil && !fi.IsDir()) {
		return "", &MissingSourceError{Skin: name, Dir: dir}
	}
	if err != nil {
		return "", err
	}
	return dir, nil
}

// Metadata is what skin.ini [General] section tells about the skin.
type Metadata struct {
	Name    string
	Author  string
	Version string
}

// ReadMetadata loads [General] section of skin.ini. Absent file gives empty
// metadata.
func ReadMetadata(path string) (Metadata, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Metadata{}, nil
	}

	f, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveSections:     true,
		SkipUnrecognizableLines: true,
		AllowNonUniqueSections:  true,
		KeyValueDelimiters:      ":",
		IgnoreInlineComment:     true,
	}, path)
	if err != nil {
		return Metadata{}, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	sec, err := f.GetSection("general")
	if err != nil {
		return Metadata{}, nil
	}
	return Metadata{
		Name:    sec.Key("Name").String(),
		Author:  sec.Key("Author").String(),
		Version: sec.Key("Version").String(),
	}, nil
}

// LogMetadata reports skin.ini metadata, problems are only logged.
func LogMetadata(path string, log *zap.Logger) {
	md, err := ReadMetadata(path)
	if err != nil {
		log.Debug("Unable to read skin metadata", zap.String("file", path), zap.Error(err))
		return
	}
	if md == (Metadata{}) {
		return
	}
	log.Info("Skin metadata", zap.String("name", md.Name), zap.String("author", md.Author), zap.String("version", md.Version))
}
