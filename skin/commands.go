package skin

import (
	"context"
	"strconv"
	"strings"

	"osr/sdl"
	"osr/transform"
)

const hideMarvelous = "Hit300g: blank"

var commands = sdl.NewRegistry(
	&sdl.Command[*Skin]{Name: "settings", MinArgs: 3, MaxArgs: sdl.Unbounded, Run: runSettings},
	&sdl.Command[*Skin]{Name: "component", MinArgs: 2, MaxArgs: 3, Run: runComponent},
	&sdl.Command[*Skin]{Name: "keys", MinArgs: 6, MaxArgs: 6, Run: runKeys},
)

// Commands returns names of script commands.
func Commands() []string {
	return commands.Names()
}

// settings hide center ratio [{ lines }]
func runSettings(_ context.Context, s *Skin, args *sdl.Args) error {
	hide, err := args.Bool(0, "hide marvelous")
	if err != nil {
		return err
	}
	center, err := args.Bool(1, "center notefield")
	if err != nil {
		return err
	}
	ratio, err := args.Ratio(2, "screen ratio")
	if err != nil {
		return err
	}

	s.Center, s.ScreenRatio = center, ratio
	if hide {
		s.Base = append(s.Base, hideMarvelous)
	}
	s.Base = append(s.Base, args.Rest(3)...)
	return nil
}

// component name kind [target]
func runComponent(_ context.Context, s *Skin, args *sdl.Args) error {
	name, err := args.OneOf(0, "name", ComponentNames)
	if err != nil {
		return err
	}
	kind, err := ParseComponentKind(args.Get(1))
	if err != nil {
		return args.Invalid("type", err)
	}

	var target *Component
	switch {
	case kind == ComponentKindRedirect:
		var ok bool
		if target, ok = s.Component(args.Get(2)); !ok {
			return args.Invalid("redirect", nil)
		}
	case args.Len() > 2:
		return args.Invalid("redirect", nil)
	}

	s.declare(newComponent(s.assets, name, kind, target))
	return nil
}

// keys n width spacing hitpos transparency layout
func runKeys(ctx context.Context, s *Skin, args *sdl.Args) error {
	keys, err := args.IntRange(0, "keys", 1, 9)
	if err != nil {
		return err
	}
	width, err := args.IntRange(1, "receptor width", 0, 100)
	if err != nil {
		return err
	}
	spacing, err := args.IntRange(2, "spacing", 0, 100)
	if err != nil {
		return err
	}
	hitpos, err := args.IntRange(3, "hit position", 0, 240)
	if err != nil {
		return err
	}
	transparency, err := args.IntRange(4, "transparency", 0, 255)
	if err != nil {
		return err
	}
	column, err := args.CheckRange(width+spacing, "receptor width + spacing", 0, 100)
	if err != nil {
		return err
	}
	layout, err := args.MinLen(5, "layout", keys)
	if err != nil {
		return err
	}

	g := transform.Geometry{Width: width, Spacing: spacing, HitPos: hitpos}

	widths := make([]string, keys)
	for i := range widths {
		widths[i] = strconv.Itoa(column)
	}

	lines := []string{
		"[Mania]",
		"Keys: " + strconv.Itoa(keys),
		"ColumnWidth: " + strings.Join(widths, ","),
		"HitPosition: " + strconv.Itoa(s.height-hitpos),
	}
	if s.Center {
		start := (float64(s.height)*s.ScreenRatio - float64(column*keys)) / 2
		lines = append(lines, "ColumnStart: "+strconv.FormatFloat(start, 'f', -1, 64))
	}
	lines = append(lines, "")
	lines = append(lines, s.Base...)
	lines = append(lines, "")

	for k := range keys {
		lines = append(lines, "Colour"+strconv.Itoa(k+1)+": 0,0,0,"+strconv.Itoa(transparency))
		for _, c := range s.components {
			ref, err := c.Variant(ctx, string(layout[k]), g)
			if err != nil {
				return err
			}
			lines = append(lines, c.Key(k)+": "+ref)
		}
		lines = append(lines, "")
	}

	s.Sections.Set(keys, lines)
	return nil
}
