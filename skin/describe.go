package skin

import (
	"osr/utils/debug"
)

// Describe returns text dump of declared components, their sources and
// registered sizes. It goes to debug report.
func (s *Skin) Describe() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "skin %q", s.Name)
	tw.Field(1, "center", boolText(s.Center))
	tw.Line(1, "screen ratio: %.4f", s.ScreenRatio)
	tw.List(1, "base", s.Base)
	for _, c := range s.components {
		tw.Line(1, "component %s", c.Name)
		tw.Field(2, "kind", c.Kind.String())
		if c.Kind == ComponentKindRedirect {
			tw.Field(2, "target", c.target.Name)
			continue
		}
		tw.List(2, "sources", s.assets.sources[c.Name])
		for i, g := range c.sizes.Geometries() {
			tw.Line(2, "size %d: width %d spacing %d hit position %d", i, g.Width, g.Spacing, g.HitPos)
		}
	}
	return tw.String()
}

func boolText(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
