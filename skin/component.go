package skin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"osr/transform"
)

// assets is shared by all components of a skin. It knows where source images
// are, where generated images go and who produces them.
type assets struct {
	skin string
	src  string
	out  string
	tr   transform.Service
	log  *zap.Logger

	// source images per component name, directory is read once per run
	sources map[string][]string
}

// list returns source images for component name in natural order. Files
// which are not images are skipped.
func (a *assets) list(name string) ([]string, error) {
	if files, ok := a.sources[name]; ok {
		return files, nil
	}

	entries, err := os.ReadDir(a.src)
	if err != nil {
		return nil, fmt.Errorf("unable to read source directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasPrefix(e.Name(), name) {
			continue
		}
		path := filepath.Join(a.src, e.Name())
		ok, err := transform.IsSource(path)
		if err != nil {
			return nil, fmt.Errorf("unable to check source image: %w", err)
		}
		if !ok {
			a.log.Debug("Skipping file, not recognized as image", zap.String("file", path))
			continue
		}
		files = append(files, path)
	}
	sort.Sort(natural.StringSlice(files))

	if len(files) == 0 {
		a.log.Warn("No source images for component", zap.String("component", name), zap.String("dir", a.src))
	}
	a.sources[name] = files
	return files, nil
}

// Component is a named skin element. Redirect components have no images of
// their own and resolve everything through target, which is never a redirect.
type Component struct {
	Name string
	Kind ComponentKind

	b      builder
	sizes  *SizeCache
	target *Component
	assets *assets
}

func newComponent(a *assets, name string, kind ComponentKind, target *Component) *Component {
	c := &Component{Name: name, Kind: kind, b: builders[name], assets: a}
	if kind == ComponentKindRedirect {
		c.target = target.resolve()
	} else {
		c.sizes = NewSizeCache()
	}
	return c
}

// resolve returns component which owns images.
func (c *Component) resolve() *Component {
	if c.Kind == ComponentKindRedirect {
		return c.target
	}
	return c
}

// Target returns component images are taken from, for non redirects it is the
// component itself.
func (c *Component) Target() *Component {
	return c.resolve()
}

// Key returns skin.ini key referencing this component for 0-based column.
func (c *Component) Key(column int) string {
	return c.b.key(column)
}

// Size returns variant index for geometry. First time geometry is seen every
// source image of the component is transformed.
func (c *Component) Size(ctx context.Context, g transform.Geometry) (int, error) {
	o := c.resolve()

	idx, added := o.sizes.Add(g)
	if !added {
		return idx, nil
	}

	files, err := o.assets.list(o.Name)
	if err != nil {
		return 0, err
	}
	for _, file := range files {
		stem := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		req := transform.Request{
			Source:   file,
			Target:   filepath.Join(o.assets.out, stem+"-"+strconv.Itoa(idx)),
			Filter:   o.b.filter,
			Geometry: g,
		}
		if _, err := o.assets.tr.Transform(ctx, req); err != nil {
			return 0, fmt.Errorf("unable to transform %s for %s: %w", filepath.Base(file), o.Name, err)
		}
	}
	return idx, nil
}

// Variant returns skin.ini reference to images for layout symbol and
// geometry.
func (c *Component) Variant(ctx context.Context, symbol string, g transform.Geometry) (string, error) {
	o := c.resolve()

	idx, err := o.Size(ctx, g)
	if err != nil {
		return "", err
	}
	if o.Kind == ComponentKindStatic {
		return fmt.Sprintf(`%s\%s-%d`, o.assets.skin, o.Name, idx), nil
	}
	return fmt.Sprintf(`%s\%s%s-%d`, o.assets.skin, o.Name, symbol, idx), nil
}
