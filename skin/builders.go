package skin

import (
	"fmt"

	"osr/transform"
)

// builder ties component source images to transformation filter and to the
// skin.ini key images are referenced by.
type builder struct {
	pattern string
	filter  transform.Filter
}

// key returns skin.ini key for 0-based column.
func (b builder) key(column int) string {
	return fmt.Sprintf(b.pattern, column)
}

// ComponentNames lists known components. Each name is also a prefix of
// source image file names.
var ComponentNames = []string{
	"note",
	"hold-head",
	"hold-body",
	"hold-tail",
	"receptor-up",
	"receptor-down",
}

var builders = map[string]builder{
	"note":          {"NoteImage%d", transform.FilterNote},
	"hold-head":     {"NoteImage%dH", transform.FilterNote},
	"hold-body":     {"NoteImage%dL", transform.FilterNote},
	"hold-tail":     {"NoteImage%dT", transform.FilterNote},
	"receptor-up":   {"KeyImage%d", transform.FilterReceptor},
	"receptor-down": {"KeyImage%dD", transform.FilterReceptor},
}
