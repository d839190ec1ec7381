package skin

import "osr/transform"

// SizeCache assigns stable indexes to geometries in first seen order.
type SizeCache struct {
	index map[transform.Geometry]int
	order []transform.Geometry
}

func NewSizeCache() *SizeCache {
	return &SizeCache{index: make(map[transform.Geometry]int)}
}

// Lookup returns index of known geometry.
func (c *SizeCache) Lookup(g transform.Geometry) (int, bool) {
	idx, ok := c.index[g]
	return idx, ok
}

// Add returns index of geometry, assigning next one if geometry is new.
func (c *SizeCache) Add(g transform.Geometry) (idx int, added bool) {
	if idx, ok := c.index[g]; ok {
		return idx, false
	}
	idx = len(c.order)
	c.order = append(c.order, g)
	c.index[g] = idx
	return idx, true
}

func (c *SizeCache) Len() int {
	return len(c.order)
}

// Geometries returns known geometries ordered by index.
func (c *SizeCache) Geometries() []transform.Geometry {
	res := make([]transform.Geometry, len(c.order))
	copy(res, c.order)
	return res
}
