package svgnorm

// PolyLine
// set of connected line segments that typically form a closed shape.
type PolyLine struct {
	ID     string `xml:"id,attr"`
	Points string `xml:"points,attr"`
	Presentation
}

// PathData implements the PathDataProvider interface
func (p *PolyLine) PathData() []string {
	return pointsData(p.Presentation, p.ID, p.Points, false)
}

// Polygon is a closed PolyLine
type Polygon struct {
	ID     string `xml:"id,attr"`
	Points string `xml:"points,attr"`
	Presentation
}

// PathData implements the PathDataProvider interface
func (p *Polygon) PathData() []string {
	return pointsData(p.Presentation, p.ID, p.Points, true)
}

// Line is an SVG line element
type Line struct {
	ID string `xml:"id,attr"`
	X1 string `xml:"x1,attr"`
	Y1 string `xml:"y1,attr"`
	X2 string `xml:"x2,attr"`
	Y2 string `xml:"y2,attr"`
	Presentation
}

// PathData implements the PathDataProvider interface
func (l *Line) PathData() []string {
	if l.Hidden() {
		return nil
	}
	var b pathBuilder
	b.cmd('M', parseLength(l.X1), parseLength(l.Y1)).cmd('L', parseLength(l.X2), parseLength(l.Y2))
	return []string{b.String()}
}

// pointsData joins a points list with lines. An odd trailing coordinate
// is ignored.
func pointsData(pr Presentation, id, points string, closed bool) []string {
	if pr.Hidden() {
		return nil
	}
	nums := lexNumbers(id, points)
	if len(nums) < 2 {
		return nil
	}
	var b pathBuilder
	for i := 0; i+1 < len(nums); i += 2 {
		letter := byte('L')
		if i == 0 {
			letter = 'M'
		}
		b.cmd(letter, nums[i], nums[i+1])
	}
	if closed {
		b.cmd('Z')
	}
	return []string{b.String()}
}
