package generate

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"osr/skin"
)

// selectSkin returns skin to generate. Explicitly requested skin is used as
// is, otherwise the only discovered one. When several skins are available
// user is asked to choose if input is interactive.
func selectSkin(dir, prefix, requested string, in io.Reader, out io.Writer, interactive bool) (string, error) {
	if len(requested) > 0 {
		return requested, nil
	}

	names, err := skin.Discover(dir, prefix)
	if err != nil {
		return "", err
	}
	switch {
	case len(names) == 0:
		return "", &skin.MissingSourceError{Dir: dir}
	case len(names) == 1:
		return names[0], nil
	case !interactive:
		return "", fmt.Errorf("several skins found, specify one of: %s", strings.Join(names, ", "))
	}
	return prompt(names, in, out)
}

func prompt(names []string, in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "Select a skin to use:")
	for i, name := range names {
		fmt.Fprintf(out, "%d. %s\n", i+1, name)
	}
	fmt.Fprintln(out)

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err == nil && n >= 1 && n <= len(names) {
			return names[n-1], nil
		}
	}
}
