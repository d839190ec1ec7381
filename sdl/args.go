package sdl

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Args gives commands validated access to statement arguments. Every
// validation failure is reported as InvalidArgumentError for the statement
// line.
type Args struct {
	Line   int
	Values []string
}

// Len returns number of arguments.
func (a *Args) Len() int {
	return len(a.Values)
}

// Get returns i-th argument or empty string when absent.
func (a *Args) Get(i int) string {
	if i < 0 || i >= len(a.Values) {
		return ""
	}
	return a.Values[i]
}

// Rest returns arguments starting with i-th.
func (a *Args) Rest(i int) []string {
	if i >= len(a.Values) {
		return nil
	}
	return a.Values[i:]
}

// Invalid makes error for named argument.
func (a *Args) Invalid(name string, err error) error {
	return &InvalidArgumentError{Argument: name, Line: a.Line, Err: err}
}

// Int parses i-th argument as decimal integer.
func (a *Args) Int(i int, name string) (int, error) {
	v, err := strconv.Atoi(a.Get(i))
	if err != nil {
		return 0, a.Invalid(name, err)
	}
	return v, nil
}

// IntRange parses i-th argument as integer in [lo, hi] range.
func (a *Args) IntRange(i int, name string, lo, hi int) (int, error) {
	v, err := a.Int(i, name)
	if err != nil {
		return 0, err
	}
	return a.CheckRange(v, name, lo, hi)
}

// CheckRange validates computed value as if it was an argument.
func (a *Args) CheckRange(v int, name string, lo, hi int) (int, error) {
	if v < lo || v > hi {
		return 0, a.Invalid(name, fmt.Errorf("%d is out of range [%d, %d]", v, lo, hi))
	}
	return v, nil
}

// Bool accepts "yes" and "no".
func (a *Args) Bool(i int, name string) (bool, error) {
	switch a.Get(i) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, a.Invalid(name, errors.New("expected yes or no"))
}

// MinLen returns i-th argument if it has at least n characters.
func (a *Args) MinLen(i int, name string, n int) ([]rune, error) {
	v := []rune(a.Get(i))
	if len(v) < n {
		return nil, a.Invalid(name, fmt.Errorf("expected at least %d characters, got %d", n, len(v)))
	}
	return v, nil
}

// OneOf returns i-th argument if it is one of allowed values.
func (a *Args) OneOf(i int, name string, allowed []string) (string, error) {
	v := a.Get(i)
	if !slices.Contains(allowed, v) {
		return "", a.Invalid(name, fmt.Errorf("expected one of %s", strings.Join(allowed, ", ")))
	}
	return v, nil
}

// Ratio parses "A:B" with both parts positive numbers and returns A/B.
func (a *Args) Ratio(i int, name string) (float64, error) {
	left, right, found := strings.Cut(a.Get(i), ":")
	if !found {
		return 0, a.Invalid(name, errors.New("expected A:B"))
	}
	l, err := strconv.ParseFloat(left, 64)
	if err != nil {
		return 0, a.Invalid(name, err)
	}
	r, err := strconv.ParseFloat(right, 64)
	if err != nil {
		return 0, a.Invalid(name, err)
	}
	if l <= 0 || r <= 0 {
		return 0, a.Invalid(name, errors.New("ratio parts must be positive"))
	}
	return l / r, nil
}
