package svgnorm

import "strings"

// Path is an SVG XML path element
type Path struct {
	ID   string `xml:"id,attr"`
	D    string `xml:"d,attr"`
	Fill string `xml:"fill,attr"`
	Presentation
}

// PathData implements the PathDataProvider interface
func (p *Path) PathData() []string {
	if p.Hidden() || strings.TrimSpace(p.D) == "" {
		return nil
	}
	return []string{p.D}
}

// Tokens returns the tokens of the path's d attribute.
func (p *Path) Tokens() []Token {
	return Tokenize(p.D)
}

// Commands returns the path's d attribute as canonical commands.
func (p *Path) Commands() []Command {
	return Normalize(p.Tokens())
}

// splitStyle splits a style attribute into its properties.
func splitStyle(style string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		props[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return props
}
