package config

import "github.com/disintegration/imaging"

// Resampling filter used when receptor images are scaled.
// ENUM(nearest, linear, catmullRom, lanczos)
type ResampleFilter int

// Filter returns imaging filter for the resample mode.
func (r ResampleFilter) Filter() imaging.ResampleFilter {
	switch r {
	case ResampleFilterNearest:
		return imaging.NearestNeighbor
	case ResampleFilterLinear:
		return imaging.Linear
	case ResampleFilterCatmullRom:
		return imaging.CatmullRom
	default:
		return imaging.Lanczos
	}
}
