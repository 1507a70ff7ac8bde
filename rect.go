package svgnorm

import "math"

// Rect is an SVG rect element
type Rect struct {
	ID     string `xml:"id,attr"`
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Rx     string `xml:"rx,attr"`
	Ry     string `xml:"ry,attr"`
	Presentation
}

// PathData implements the PathDataProvider interface
//
// Corner radii follow the rect rules: a missing radius takes the value
// of the other one and both are clamped to half the side they round.
func (r *Rect) PathData() []string {
	x, y := parseLength(r.X), parseLength(r.Y)
	w, h := parseLength(r.Width), parseLength(r.Height)
	if r.Hidden() || w <= 0 || h <= 0 {
		return nil
	}

	rx, ry := parseLength(r.Rx), parseLength(r.Ry)
	switch {
	case r.Rx == "" && r.Ry != "":
		rx = ry
	case r.Ry == "" && r.Rx != "":
		ry = rx
	}
	rx = math.Min(math.Max(rx, 0), w/2)
	ry = math.Min(math.Max(ry, 0), h/2)

	var b pathBuilder
	if rx == 0 || ry == 0 {
		b.cmd('M', x, y).cmd('H', x+w).cmd('V', y+h).cmd('H', x).cmd('Z')
		return []string{b.String()}
	}
	b.cmd('M', x+rx, y).
		cmd('H', x+w-rx).
		cmd('A', rx, ry, 0, 0, 1, x+w, y+ry).
		cmd('V', y+h-ry).
		cmd('A', rx, ry, 0, 0, 1, x+w-rx, y+h).
		cmd('H', x+rx).
		cmd('A', rx, ry, 0, 0, 1, x, y+h-ry).
		cmd('V', y+ry).
		cmd('A', rx, ry, 0, 0, 1, x+rx, y).
		cmd('Z')
	return []string{b.String()}
}
