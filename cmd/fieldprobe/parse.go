package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gravfield/internal/core"
	"gravfield/internal/field"
)

// ErrBadArg is returned for malformed --attractor or --cell values.
var ErrBadArg = errors.New("malformed argument")

func parseInts(arg string, n int) ([]int, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: %q needs %d comma-separated integers", ErrBadArg, arg, n)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadArg, arg, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseAttractor reads "x,y,mass" in world units.
func parseAttractor(arg string) (field.Attractor, error) {
	v, err := parseInts(arg, 3)
	if err != nil {
		return field.Attractor{}, err
	}
	if v[2] < 0 {
		return field.Attractor{}, fmt.Errorf("%w: %q: mass must not be negative", ErrBadArg, arg)
	}
	return field.Attractor{Position: core.Point{X: v[0], Y: v[1]}, Mass: v[2]}, nil
}

func parseAttractors(args []string) ([]field.Attractor, error) {
	out := make([]field.Attractor, 0, len(args))
	for _, s := range args {
		a, err := parseAttractor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// parseCell reads "gx,gy" and checks it against the layout.
func parseCell(arg string, l *field.Layout) (int, int, error) {
	v, err := parseInts(arg, 2)
	if err != nil {
		return 0, 0, err
	}
	if !l.Contains(v[0], v[1]) {
		return 0, 0, fmt.Errorf("%w: cell %q outside %dx%d grid", ErrBadArg, arg, l.Cols(), l.Rows())
	}
	return v[0], v[1], nil
}
