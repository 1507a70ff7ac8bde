package svgnorm

import (
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// NormalizeAndScale tokenizes and normalizes path data, scales every
// coordinate by scale and formats the result. The output only uses the
// M, L, C and Z commands. Path data that is not blank but yields nothing
// to draw is logged as a warning and formats to "".
func NormalizeAndScale(d string, scale float64) string {
	cmds := Normalize(Tokenize(d))
	if len(cmds) == 0 && strings.TrimSpace(d) != "" {
		Logger().Warn("path data has nothing to draw", "data", excerpt(d))
	}
	return Format(finiteOnly(Scale(ToCubics(cmds), scale)))
}

// ScalePathData is NormalizeAndScale under the name icon callers use.
func ScalePathData(d string, scale float64) string {
	return NormalizeAndScale(d, scale)
}

// Scale returns a copy of cmds with every coordinate multiplied by
// scale.
func Scale(cmds []Command, scale float64) []Command {
	t := mt.Identity()
	t.Scale(scale, scale)
	return transform(cmds, t)
}

func transform(cmds []Command, t mt.Transform) []Command {
	out := make([]Command, len(cmds))
	for i, c := range cmds {
		pts := make([]Tuple, len(c.Points))
		for j, p := range c.Points {
			x, y := t.Apply(p[0], p[1])
			pts[j] = Tuple{x, y}
		}
		out[i] = Command{Kind: c.Kind, Points: pts}
	}
	return out
}

// finiteOnly drops commands whose coordinates overflowed while scaling.
// A subpath whose MoveTo overflowed is dropped up to the next MoveTo.
func finiteOnly(cmds []Command) []Command {
	out := cmds[:0:0]
	skip := false
	for _, c := range cmds {
		if c.Kind == MoveTo {
			skip = !c.Finite()
		}
		if skip || !c.Finite() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ToCubics returns a copy of cmds with every QuadTo raised to the
// equivalent CurveTo. Degree elevation is exact.
func ToCubics(cmds []Command) []Command {
	out := make([]Command, 0, len(cmds))
	var cur, start Tuple
	for _, c := range cmds {
		switch c.Kind {
		case MoveTo:
			start = c.Points[0]
		case QuadTo:
			q, end := c.Points[0], c.Points[1]
			c = Command{Kind: CurveTo, Points: []Tuple{
				{cur[0] + 2.0/3.0*(q[0]-cur[0]), cur[1] + 2.0/3.0*(q[1]-cur[1])},
				{end[0] + 2.0/3.0*(q[0]-end[0]), end[1] + 2.0/3.0*(q[1]-end[1])},
				end,
			}}
		}
		if end, ok := c.End(); ok {
			cur = end
		} else {
			cur = start
		}
		out = append(out, c)
	}
	return out
}

// Format serializes commands as path data. Numbers are written in
// fixed-point notation with two decimals.
func Format(cmds []Command) string {
	var sb strings.Builder
	for i, c := range cmds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeCommand(&sb, c)
	}
	return sb.String()
}

func writeCommand(sb *strings.Builder, c Command) {
	sb.WriteString(c.Kind.Letter())
	for _, v := range c.Args() {
		sb.WriteByte(' ')
		sb.WriteString(formatNumber(v))
	}
}

func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// excerpt shortens path data for log output.
func excerpt(d string) string {
	const limit = 64
	d = strings.TrimSpace(d)
	if len(d) <= limit {
		return d
	}
	return d[:limit] + "..."
}
