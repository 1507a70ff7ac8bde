package svgnorm

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/require"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<!-- Generator: Adobe Illustrator 15.0.2, SVG Export Plug-In . SVG Version: 6.00 Build 0)  -->
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" id="Layer_1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" x="0px" y="0px"
	 width="595.201px" height="841.922px" viewBox="0 0 595.201 841.922" enable-background="new 0 0 595.201 841.922"
	 xml:space="preserve">
<rect x="207" y="53" fill="#009FE3" width="181.667" height="85.333"/>
<text transform="matrix(1 0 0 1 232.3306 107.5952)" fill="#FFFFFF" font-family="'ArialMT'" font-size="31.9752">PODIUM</text>
</svg>`

func TestParse(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(testSvg, "test", 0)
	is.NoErr(err)
	is.NotNil(svg)
	is.Equal(svg.Normalized(), []string{"M 207.00 53.00 L 388.67 53.00 L 388.67 138.33 L 207.00 138.33 Z"})
	is.Equal(svg.Width, 595.201)
	is.Equal(svg.Height, 841.922)

	svg, err = ParseSvgFromReader(strings.NewReader(testSvg), "test", 0)
	is.NoErr(err)
	is.NotNil(svg)
	is.Equal(len(svg.Elements), 1)
}

func TestParseMalformed(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(`<svg><path d="M 0 0"`, "broken", 0)
	is.Err(err)
	is.Nil(svg)
	is.True(strings.Contains(err.Error(), `"broken"`))
}

type IconTest struct {
	Description string
	Svg         string
	Scale       float64
	Paths       []string
}

var iconTests = []IconTest{
	{
		"absolute lines",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 L100.000 0.000 100.000 100.000 L0.000 100.000 Z" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		0,
		[]string{"M 0.00 0.00 L 100.00 0.00 L 100.00 100.00 L 0.00 100.00 Z"},
	},
	{
		"relative lines",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 l100.000 0.000 100.000 100.000 l0.000 100.000 Z" fill="#000000"/></svg>`,
		0,
		[]string{"M 0.00 0.00 L 100.00 0.00 L 200.00 100.00 L 200.00 200.00 Z"},
	},
	{
		"scaled",
		`<svg><path d="M 10 10 l 20 20"/></svg>`,
		2,
		[]string{"M 20.00 20.00 L 60.00 60.00"},
	},
	{
		"negative scale divides",
		`<svg><path d="M 10 10 l 20 20"/></svg>`,
		-2,
		[]string{"M 5.00 5.00 L 15.00 15.00"},
	},
	{
		"groups in document order",
		`<svg><path d="M 1 1 L 2 2"/><g id="a"><g><path d="M 3 3 L 4 4"/></g><path d="M 5 5 L 6 6"/></g><path d="M 7 7 L 8 8"/></svg>`,
		0,
		[]string{"M 1.00 1.00 L 2.00 2.00", "M 3.00 3.00 L 4.00 4.00", "M 5.00 5.00 L 6.00 6.00", "M 7.00 7.00 L 8.00 8.00"},
	},
	{
		"hidden elements skipped",
		`<svg><g style="display: none"><path d="M 1 1 L 2 2"/></g><path display="none" d="M 3 3 L 4 4"/><path style="fill:red;display:none" d="M 5 5 L 6 6"/><path d="M 7 7 L 8 8"/></svg>`,
		0,
		[]string{"M 7.00 7.00 L 8.00 8.00"},
	},
	{
		"defs and empty paths skipped",
		`<svg><defs><path id="p" d="M 0 0 L 9 9"/></defs><path d=""/><path d="garbage"/><title>icon</title><path d="M 1 1 h 1"/></svg>`,
		0,
		[]string{"M 1.00 1.00 L 2.00 1.00"},
	},
	{
		"circle",
		`<svg><circle cx="10" cy="10" r="5"/><circle cx="1" cy="1" r="0"/></svg>`,
		0,
		[]string{"M 5.00 10.00 C 5.00 12.76 7.24 15.00 10.00 15.00 C 12.76 15.00 15.00 12.76 15.00 10.00 " +
			"C 15.00 7.24 12.76 5.00 10.00 5.00 C 7.24 5.00 5.00 7.24 5.00 10.00 Z"},
	},
	{
		"ellipse",
		`<svg><ellipse cx="0" cy="0" rx="20" ry="10"/></svg>`,
		0,
		[]string{"M -20.00 0.00 C -20.00 5.52 -11.05 10.00 0.00 10.00 C 11.05 10.00 20.00 5.52 20.00 0.00 " +
			"C 20.00 -5.52 11.05 -10.00 0.00 -10.00 C -11.05 -10.00 -20.00 -5.52 -20.00 0.00 Z"},
	},
	{
		"rect",
		`<svg><rect x="1" y="2" width="3" height="4"/><rect width="0" height="4"/></svg>`,
		0,
		[]string{"M 1.00 2.00 L 4.00 2.00 L 4.00 6.00 L 1.00 6.00 Z"},
	},
	{
		"rounded rect",
		`<svg><rect width="10" height="10" rx="2"/></svg>`,
		0,
		[]string{"M 2.00 0.00 L 8.00 0.00 C 9.10 0.00 10.00 0.90 10.00 2.00 L 10.00 8.00 C 10.00 9.10 9.10 10.00 8.00 10.00 " +
			"L 2.00 10.00 C 0.90 10.00 0.00 9.10 0.00 8.00 L 0.00 2.00 C 0.00 0.90 0.90 0.00 2.00 0.00 Z"},
	},
	{
		"line",
		`<svg><line x1="1" y1="2" x2="3" y2="4"/></svg>`,
		0,
		[]string{"M 1.00 2.00 L 3.00 4.00"},
	},
	{
		"polyline and polygon",
		`<svg><polyline points="0,0 10,0 10,10"/><polygon points="1 1 5 1 5 5 9"/></svg>`,
		0,
		[]string{"M 0.00 0.00 L 10.00 0.00 L 10.00 10.00", "M 1.00 1.00 L 5.00 1.00 L 5.00 5.00 Z"},
	},
	{
		"polygon with glued points",
		`<svg><polygon points="1e-5,-2 3-4 5,6"/><polyline points="0.5.5 1-1"/></svg>`,
		0,
		[]string{"M 0.00 -2.00 L 3.00 -4.00 L 5.00 6.00 Z", "M 0.50 0.50 L 1.00 -1.00"},
	},
}

func TestIconNormalized(t *testing.T) {
	for _, test := range iconTests {
		svg, err := ParseSvg(test.Svg, test.Description, test.Scale)
		require.NoError(t, err, test.Description)
		require.Equal(t, test.Paths, svg.Normalized(), test.Description)
	}
}

func TestIconPathData(t *testing.T) {
	svg, err := ParseSvg(`<svg><rect x="1" y="2" width="3" height="4"/><path d="m1 1 2 2"/></svg>`, "raw", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"M 1 2 H 4 V 6 H 1 Z", "m1 1 2 2"}, svg.PathData())
}

func TestScaleToFit(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(`<svg viewBox="0 0 24 12"><path d="M 24 12"/></svg>`, "fit", 0)
	is.NoErr(err)
	is.Equal(svg.ViewBox, [4]float64{0, 0, 24, 12})
	is.Equal(svg.ScaleToFit(48), 2.0)

	svg.SetScale(svg.ScaleToFit(48))
	is.Equal(svg.Scale(), 2.0)
	is.Equal(svg.Normalized(), []string{"M 48.00 24.00"})

	svg, err = ParseSvg(`<svg width="10px" height="40"/>`, "size", 0)
	is.NoErr(err)
	is.Equal(svg.ScaleToFit(20), 0.5)

	svg, err = ParseSvg(`<svg/>`, "none", 0)
	is.NoErr(err)
	is.Equal(svg.ScaleToFit(20), 1.0)
}

func TestPathCommands(t *testing.T) {
	p := &Path{D: "m 10 20 l 30 40"}
	require.Len(t, p.Tokens(), 2)
	require.Equal(t, []Command{
		{Kind: MoveTo, Points: []Tuple{{10, 20}}},
		{Kind: LineTo, Points: []Tuple{{40, 60}}},
	}, p.Commands())
}

func TestSplitStyle(t *testing.T) {
	require.Equal(t, map[string]string{"fill": "red", "display": "none"}, splitStyle(" fill: red ;display:none;;bogus"))
}
