package svgnorm

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// PathDataProvider is implemented by every icon element that can be
// expressed as path data.
type PathDataProvider interface {
	PathData() []string
}

// Presentation holds the presentation attributes that decide whether an
// element is drawn at all.
type Presentation struct {
	Style   string `xml:"style,attr"`
	Display string `xml:"display,attr"`
}

// Hidden reports whether the element is excluded from rendering by its
// display attribute or style property.
func (pr Presentation) Hidden() bool {
	if strings.TrimSpace(pr.Display) == "none" {
		return true
	}
	return splitStyle(pr.Style)["display"] == "none"
}

// Svg represents an icon document: the drawable elements of an SVG file
// in document order.
type Svg struct {
	ViewBox   [4]float64
	Width     float64
	Height    float64
	Elements  []PathDataProvider
	Name      string
	Transform *mt.Transform
	scale     float64
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID string
	Presentation
	Elements []PathDataProvider
}

// PathData implements the PathDataProvider interface
func (g *Group) PathData() []string {
	if g.Hidden() {
		return nil
	}
	var ds []string
	for _, e := range g.Elements {
		ds = append(ds, e.PathData()...)
	}
	return ds
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "style":
			g.Style = attr.Value
		case "display":
			g.Display = attr.Value
		}
	}

	elements, err := decodeElements(decoder)
	if err != nil {
		return fmt.Errorf("error decoding element of Group %q: %w", g.ID, err)
	}
	g.Elements = elements
	return nil
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "viewBox":
			if nums := lexNumbers("viewBox", attr.Value); len(nums) == 4 {
				copy(s.ViewBox[:], nums)
			}
		case "width":
			s.Width = parseLength(attr.Value)
		case "height":
			s.Height = parseLength(attr.Value)
		}
	}

	elements, err := decodeElements(decoder)
	if err != nil {
		return fmt.Errorf("error decoding element of SVG struct: %w", err)
	}
	s.Elements = elements
	return nil
}

// decodeElements reads the children of the current element up to its
// end tag. Elements that cannot be drawn as paths are skipped.
func decodeElements(decoder *xml.Decoder) ([]PathDataProvider, error) {
	var elements []PathDataProvider
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var element PathDataProvider

			switch tok.Name.Local {
			case "g":
				element = &Group{}
			case "path":
				element = &Path{}
			case "rect":
				element = &Rect{}
			case "circle":
				element = &Circle{}
			case "ellipse":
				element = &Ellipse{}
			case "line":
				element = &Line{}
			case "polyline":
				element = &PolyLine{}
			case "polygon":
				element = &Polygon{}
			default:
				Logger().Debug("skipping icon element", "element", tok.Name.Local)
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
				continue
			}

			if err := decoder.DecodeElement(element, &tok); err != nil {
				return nil, fmt.Errorf("%s: %w", tok.Name.Local, err)
			}
			elements = append(elements, element)

		case xml.EndElement:
			return elements, nil
		}
	}
}

// SetScale sets the factor applied by Normalized. A positive scale is
// used as is, a negative one is taken as a divisor and zero leaves
// coordinates unchanged.
func (s *Svg) SetScale(scale float64) {
	s.Transform = mt.NewTransform()
	switch {
	case scale > 0:
		s.scale = scale
	case scale < 0:
		s.scale = 1.0 / -scale
	default:
		s.scale = 1
	}
	s.Transform.Scale(s.scale, s.scale)
}

// Scale returns the factor applied by Normalized.
func (s *Svg) Scale() float64 {
	return s.scale
}

// PathData returns the raw path data of every drawable element.
func (s *Svg) PathData() []string {
	var ds []string
	for _, e := range s.Elements {
		ds = append(ds, e.PathData()...)
	}
	return ds
}

// Normalized returns the path data of every drawable element normalized
// to M, L, C and Z and scaled. Elements with nothing to draw are left
// out and logged.
func (s *Svg) Normalized() []string {
	if s.Transform == nil {
		s.SetScale(0)
	}
	var out []string
	for _, d := range s.PathData() {
		cmds := Normalize(Tokenize(d))
		if len(cmds) == 0 {
			Logger().Warn("icon path has nothing to draw", "icon", s.Name, "data", excerpt(d))
			continue
		}
		out = append(out, Format(finiteOnly(transform(ToCubics(cmds), *s.Transform))))
	}
	return out
}

// ScaleToFit returns the scale that fits the icon's viewBox, or its
// width and height when it has none, into a square of the given size.
func (s *Svg) ScaleToFit(size float64) float64 {
	w, h := s.ViewBox[2], s.ViewBox[3]
	if w <= 0 || h <= 0 {
		w, h = s.Width, s.Height
	}
	extent := w
	if h > extent {
		extent = h
	}
	if extent <= 0 || size <= 0 {
		return 1
	}
	return size / extent
}

// ParseSvg parses an SVG string into an SVG struct
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name, scale)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	var svg Svg
	svg.Name = name
	svg.SetScale(scale)

	if err := xml.NewDecoder(r).Decode(&svg); err != nil {
		return nil, fmt.Errorf("parsing icon %q: %w", name, err)
	}
	return &svg, nil
}
