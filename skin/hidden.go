package skin

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// WriteHidden creates transparent 1x1 images for skin elements which should
// not be visible. Existing files are left alone.
func WriteHidden(root string, names []string, log *zap.Logger) (err error) {
	blank := imaging.New(1, 1, color.NRGBA{})
	for _, name := range names {
		path := filepath.Join(root, name)
		if _, serr := os.Stat(path); serr == nil {
			log.Debug("Hidden element already exists", zap.String("file", path))
			continue
		} else if !errors.Is(serr, os.ErrNotExist) {
			err = multierr.Append(err, serr)
			continue
		}
		if serr := imaging.Save(blank, path); serr != nil {
			err = multierr.Append(err, fmt.Errorf("unable to create %s: %w", name, serr))
			continue
		}
		log.Debug("Hidden element created", zap.String("file", path))
	}
	return err
}
