// Package skin interprets skin scripts: it keeps declared components, drives
// image generation for every layout and assembles [Mania] sections of
// skin.ini.
package skin

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"osr/config"
	"osr/sdl"
	"osr/transform"
)

// Skin is state of a single generation run.
type Skin struct {
	Name        string
	Base        []string
	Center      bool
	ScreenRatio float64
	Sections    *Sections

	height     int
	script     string
	components []*Component
	assets     *assets
	log        *zap.Logger
}

// SourceDir returns directory with script and source images of the skin.
func SourceDir(root, prefix, name string) string {
	return filepath.Join(root, prefix+"-"+name)
}

// OutputDir returns directory generated images are written to.
func OutputDir(root, name string) string {
	return filepath.Join(root, name)
}

// New creates skin state. When sections is nil generated sections are
// collected into empty set.
func New(name, root string, cfg *config.SkinConfig, sections *Sections, tr transform.Service, log *zap.Logger) *Skin {
	log = log.Named("skin").With(zap.String("skin", name))
	if sections == nil {
		sections = NewSections(cfg.LineEnding(), log)
	}
	src := SourceDir(root, cfg.SourcePrefix, name)
	return &Skin{
		Name:        name,
		Base:        slices.Clone(cfg.Base),
		ScreenRatio: 16.0 / 9.0,
		Sections:    sections,
		height:      cfg.Height,
		script:      filepath.Join(src, cfg.Script),
		assets: &assets{
			skin:    name,
			src:     src,
			out:     OutputDir(root, name),
			tr:      tr,
			log:     log,
			sources: make(map[string][]string),
		},
		log: log,
	}
}

// Components returns declared components in declaration order.
func (s *Skin) Components() []*Component {
	return slices.Clone(s.components)
}

// Component returns declared component by name.
func (s *Skin) Component(name string) (*Component, bool) {
	for _, c := range s.components {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// declare adds component, redeclared component keeps its position.
func (s *Skin) declare(c *Component) {
	for i, old := range s.components {
		if old.Name == c.Name {
			s.log.Debug("Component redeclared", zap.String("component", c.Name), zap.Stringer("kind", c.Kind))
			s.components[i] = c
			return
		}
	}
	s.components = append(s.components, c)
}

// Process runs script from r. Whole script is read first, so malformed
// structure is reported before any command is executed.
func (s *Skin) Process(ctx context.Context, r io.Reader) error {
	sts, err := sdl.Parse(r)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.assets.out, 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	s.log.Debug("Script parsed", zap.Int("statements", len(sts)))
	return commands.Execute(ctx, s, sts)
}

// ProcessFile runs skin script from the source directory.
func (s *Skin) ProcessFile(ctx context.Context) error {
	f, err := os.Open(s.script)
	if err != nil {
		return fmt.Errorf("unable to open skin script: %w", err)
	}
	defer f.Close()

	return s.Process(ctx, f)
}

// Script returns path of the skin script.
func (s *Skin) Script() string {
	return s.script
}
