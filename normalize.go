package svgnorm

// controlPoint is the control point a following S or T may reflect. It
// is only set while the last emitted command is a CurveTo or QuadTo.
type controlPoint struct {
	kind CommandKind
	pt   Tuple
	ok   bool
}

// pathNormalizer is the cursor state of one Normalize call.
type pathNormalizer struct {
	cmds  []Command
	x, y  float64
	start Tuple
	last  controlPoint
	open  bool
}

// Normalize rewrites tokens into canonical commands: absolute MoveTo,
// LineTo, CurveTo, QuadTo and Close only. H and V become lines, S and T
// become curves with their first control point resolved, and arcs are
// approximated with cubic curves. Parameter groups that are incomplete
// are ignored, as are commands whose coordinates overflow; Normalize
// never fails. A Z before any subpath has been started is dropped.
func Normalize(tokens []Token) []Command {
	pn := &pathNormalizer{}
	for _, t := range tokens {
		pn.parseToken(t)
	}
	return pn.cmds
}

func (pn *pathNormalizer) parseToken(t Token) {
	rel := t.IsRelative()
	switch t.Command {
	case 'M', 'm':
		for i, g := range t.groups() {
			p := pn.abs(rel, g[0], g[1])
			if i == 0 {
				pn.moveTo(p)
				continue
			}
			pn.lineTo(p)
		}
	case 'L', 'l':
		for _, g := range t.groups() {
			pn.lineTo(pn.abs(rel, g[0], g[1]))
		}
	case 'H', 'h':
		for _, g := range t.groups() {
			x := g[0]
			if rel {
				x += pn.x
			}
			pn.lineTo(Tuple{x, pn.y})
		}
	case 'V', 'v':
		for _, g := range t.groups() {
			y := g[0]
			if rel {
				y += pn.y
			}
			pn.lineTo(Tuple{pn.x, y})
		}
	case 'C', 'c':
		for _, g := range t.groups() {
			c1 := pn.abs(rel, g[0], g[1])
			c2 := pn.abs(rel, g[2], g[3])
			pn.curveTo(c1, c2, pn.abs(rel, g[4], g[5]))
		}
	case 'S', 's':
		for _, g := range t.groups() {
			c1 := pn.reflect(CurveTo)
			c2 := pn.abs(rel, g[0], g[1])
			pn.curveTo(c1, c2, pn.abs(rel, g[2], g[3]))
		}
	case 'Q', 'q':
		for _, g := range t.groups() {
			c := pn.abs(rel, g[0], g[1])
			pn.quadTo(c, pn.abs(rel, g[2], g[3]))
		}
	case 'T', 't':
		for _, g := range t.groups() {
			c := pn.reflect(QuadTo)
			pn.quadTo(c, pn.abs(rel, g[0], g[1]))
		}
	case 'A', 'a':
		for _, g := range t.groups() {
			end := pn.abs(rel, g[5], g[6])
			pn.arcTo(g[0], g[1], g[2], g[3] != 0, g[4] != 0, end)
		}
	case 'Z', 'z':
		pn.close()
	}
}

// abs resolves a coordinate pair against the cursor.
func (pn *pathNormalizer) abs(rel bool, x, y float64) Tuple {
	if rel {
		return Tuple{pn.x + x, pn.y + y}
	}
	return Tuple{x, y}
}

// reflect returns the first control point of a smooth curve: the last
// control point mirrored through the cursor when the previous command
// was of the given kind, the cursor itself otherwise.
func (pn *pathNormalizer) reflect(kind CommandKind) Tuple {
	if !pn.last.ok || pn.last.kind != kind {
		return Tuple{pn.x, pn.y}
	}
	return Tuple{2*pn.x - pn.last.pt[0], 2*pn.y - pn.last.pt[1]}
}

func (pn *pathNormalizer) moveTo(p Tuple) {
	c := Command{Kind: MoveTo, Points: []Tuple{p}}
	if !c.Finite() {
		return
	}
	pn.cmds = append(pn.cmds, c)
	pn.start = p
	pn.open = true
	pn.last = controlPoint{}
	pn.x, pn.y = p[0], p[1]
}

func (pn *pathNormalizer) lineTo(p Tuple) {
	if pn.emit(Command{Kind: LineTo, Points: []Tuple{p}}) {
		pn.last = controlPoint{}
	}
}

func (pn *pathNormalizer) curveTo(c1, c2, end Tuple) {
	if pn.emit(Command{Kind: CurveTo, Points: []Tuple{c1, c2, end}}) {
		pn.last = controlPoint{kind: CurveTo, pt: c2, ok: true}
	}
}

func (pn *pathNormalizer) quadTo(c, end Tuple) {
	if pn.emit(Command{Kind: QuadTo, Points: []Tuple{c, end}}) {
		pn.last = controlPoint{kind: QuadTo, pt: c, ok: true}
	}
}

func (pn *pathNormalizer) arcTo(rx, ry, rotation float64, large, sweep bool, end Tuple) {
	cur := Tuple{pn.x, pn.y}
	if cur == end {
		return
	}
	curves := arcToCubics(cur, rx, ry, rotation, large, sweep, end)
	if len(curves) == 0 {
		pn.lineTo(end)
		return
	}
	for _, c := range curves {
		pn.curveTo(c.Points[0], c.Points[1], c.Points[2])
	}
}

// close ends the subpath and moves the cursor back to its start. A close
// right after another one closes the same, now empty, subpath again.
func (pn *pathNormalizer) close() {
	if len(pn.cmds) == 0 {
		return
	}
	pn.cmds = append(pn.cmds, Command{Kind: Close})
	pn.open = false
	pn.last = controlPoint{}
	pn.x, pn.y = pn.start[0], pn.start[1]
}

// emit appends a drawing command, opening a subpath at the cursor first
// when none is open so that every subpath starts with a MoveTo. It
// reports false, leaving the cursor alone, when the command has a
// coordinate that is not finite.
func (pn *pathNormalizer) emit(c Command) bool {
	if !c.Finite() {
		return false
	}
	if !pn.open {
		pn.moveTo(Tuple{pn.x, pn.y})
	}
	pn.cmds = append(pn.cmds, c)
	end, _ := c.End()
	pn.x, pn.y = end[0], end[1]
	return true
}
