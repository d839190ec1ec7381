// Package transform produces resized and padded variants of skin source
// images.
package transform

import (
	"context"
	"fmt"
)

// Geometry is layout of a single column: receptor width, spacing between
// columns and hit position, all in osu! layout units.
type Geometry struct {
	Width   int
	Spacing int
	HitPos  int
}

// Double returns geometry for @2x images.
func (g Geometry) Double() Geometry {
	return Geometry{Width: 2 * g.Width, Spacing: 2 * g.Spacing, HitPos: 2 * g.HitPos}
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d@%d", g.Width, g.Spacing, g.HitPos)
}

// Filter selects how source image is fitted into a column.
type Filter int

const (
	// FilterNote pads image horizontally so it keeps its size relative to
	// the column width including spacing.
	FilterNote Filter = iota
	// FilterReceptor scales image to receptor width and pads it for spacing
	// and hit position.
	FilterReceptor
)

func (f Filter) String() string {
	switch f {
	case FilterNote:
		return "note"
	case FilterReceptor:
		return "receptor"
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Request describes single transformation. Target is output path without
// extension.
type Request struct {
	Source   string
	Target   string
	Filter   Filter
	Geometry Geometry
}

// Result has paths of produced images.
type Result struct {
	Path1x string
	Path2x string
}

// Outputs returns paths request will produce.
func (r Request) Outputs() Result {
	return Result{Path1x: r.Target + ".png", Path2x: r.Target + "@2x.png"}
}

// Service produces 1x and 2x variants of the source image. Calls are
// synchronous.
type Service interface {
	Transform(ctx context.Context, req Request) (Result, error)
}
