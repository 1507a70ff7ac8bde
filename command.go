package svgnorm

import (
	"math"
	"strings"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

// CommandKind tells a path drawing library which function it has to
// call for a canonical command.
type CommandKind int

// These are the only command kinds left after normalization.
const (
	MoveTo CommandKind = iota
	LineTo
	CurveTo
	QuadTo
	Close
)

var kindLetters = [...]string{
	MoveTo:  "M",
	LineTo:  "L",
	CurveTo: "C",
	QuadTo:  "Q",
	Close:   "Z",
}

// Letter returns the uppercase path data letter of the kind.
func (k CommandKind) Letter() string {
	if k < 0 || int(k) >= len(kindLetters) {
		return "?"
	}
	return kindLetters[k]
}

func (k CommandKind) String() string {
	return k.Letter()
}

// Command is a canonical path command. Points are absolute: one for
// MoveTo and LineTo, control point and end for QuadTo, two control
// points and end for CurveTo, none for Close.
type Command struct {
	Kind   CommandKind
	Points []Tuple
}

// End returns the last point of the command. It is false for Close.
func (c Command) End() (Tuple, bool) {
	if len(c.Points) == 0 {
		return Tuple{}, false
	}
	return c.Points[len(c.Points)-1], true
}

// Args flattens the command's points into x,y pairs.
func (c Command) Args() []float64 {
	args := make([]float64, 0, 2*len(c.Points))
	for _, p := range c.Points {
		args = append(args, p[0], p[1])
	}
	return args
}

// Finite reports whether every coordinate of the command is a finite
// number.
func (c Command) Finite() bool {
	for _, p := range c.Points {
		for _, v := range p {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return false
			}
		}
	}
	return true
}

// String formats the command the way Format does.
func (c Command) String() string {
	var sb strings.Builder
	writeCommand(&sb, c)
	return sb.String()
}
