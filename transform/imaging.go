package transform

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"osr/config"
	"osr/utils/images"
)

// Imaging is Service implementation which does all pixel work in process.
type Imaging struct {
	magic       float64
	resample    imaging.ResampleFilter
	compression png.CompressionLevel
	log         *zap.Logger
}

// NewImaging creates transformation service configured by images section of
// the configuration.
func NewImaging(cfg *config.ImagesConfig, log *zap.Logger) *Imaging {
	t := &Imaging{
		magic:       cfg.Magic,
		resample:    cfg.Resample.Filter(),
		compression: png.DefaultCompression,
		log:         log.Named("transform"),
	}
	if cfg.BestCompression {
		t.compression = png.BestCompression
	}
	return t
}

// Transform decodes source once and writes both variants. 2x variant is
// produced from the same source with doubled geometry.
func (t *Imaging) Transform(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	src, err := Load(req.Source)
	if err != nil {
		return Result{}, err
	}

	res := req.Outputs()
	for _, v := range []struct {
		geom Geometry
		path string
	}{
		{req.Geometry, res.Path1x},
		{req.Geometry.Double(), res.Path2x},
	} {
		img, err := t.apply(src, req.Filter, v.geom)
		if err != nil {
			return Result{}, err
		}
		if err := imaging.Save(img, v.path, imaging.PNGCompressionLevel(t.compression)); err != nil {
			return Result{}, fmt.Errorf("unable to save image %s: %w", v.path, err)
		}
	}

	t.log.Debug("Created images",
		zap.String("source", req.Source), zap.String("target", req.Target),
		zap.Stringer("filter", req.Filter), zap.Stringer("geometry", req.Geometry))
	return res, nil
}

func (t *Imaging) apply(src image.Image, f Filter, g Geometry) (image.Image, error) {
	switch f {
	case FilterNote:
		return Note(src, g), nil
	case FilterReceptor:
		return Receptor(src, g, t.magic, t.resample), nil
	}
	return nil, fmt.Errorf("unsupported filter %s", f)
}

func isSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

// Load decodes source image. SVG sources are rasterized at their intrinsic
// size.
func Load(path string) (image.Image, error) {
	if isSVG(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		img, err := images.RasterizeSVGToImage(data, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("unable to rasterize %s: %w", path, err)
		}
		return img, nil
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", path, err)
	}
	return img, nil
}

// IsSource reports whether file could be used as source image. Decision is
// made on content, not extension, SVG being the only exception.
func IsSource(path string) (bool, error) {
	if isSVG(path) {
		return true, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// filetype needs at most 262 bytes of header
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.IsImage(head[:n]), nil
}
