package svgnorm

// Circle is an SVG circle element
type Circle struct {
	ID     string `xml:"id,attr"`
	Cx     string `xml:"cx,attr"`
	Cy     string `xml:"cy,attr"`
	Radius string `xml:"r,attr"`
	Presentation
}

// PathData implements the PathDataProvider interface
func (c *Circle) PathData() []string {
	r := parseLength(c.Radius)
	return ellipseData(c.Presentation, parseLength(c.Cx), parseLength(c.Cy), r, r)
}

// Ellipse is an SVG ellipse element
type Ellipse struct {
	ID string `xml:"id,attr"`
	Cx string `xml:"cx,attr"`
	Cy string `xml:"cy,attr"`
	Rx string `xml:"rx,attr"`
	Ry string `xml:"ry,attr"`
	Presentation
}

// PathData implements the PathDataProvider interface
func (e *Ellipse) PathData() []string {
	return ellipseData(e.Presentation, parseLength(e.Cx), parseLength(e.Cy), parseLength(e.Rx), parseLength(e.Ry))
}

// ellipseData draws the ellipse as two half arcs starting at its
// leftmost point.
func ellipseData(pr Presentation, cx, cy, rx, ry float64) []string {
	if pr.Hidden() || rx <= 0 || ry <= 0 {
		return nil
	}
	var b pathBuilder
	b.cmd('M', cx-rx, cy).
		cmd('A', rx, ry, 0, 1, 0, cx+rx, cy).
		cmd('A', rx, ry, 0, 1, 0, cx-rx, cy).
		cmd('Z')
	return []string{b.String()}
}
