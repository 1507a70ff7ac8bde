package svgnorm

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// maxArcSegment is the largest sweep a single cubic curve approximates.
const maxArcSegment = math.Pi / 2

// arcToCubics converts the elliptical arc from start to end into cubic
// curves, each covering at most a quarter turn. Rotation is in degrees.
// It returns nil when a radius is zero or the endpoints coincide; such
// an arc has no curvature to approximate.
func arcToCubics(start Tuple, rx, ry, rotation float64, large, sweep bool, end Tuple) []Command {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || start == end {
		return nil
	}

	phi := rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// Midpoint of the chord in the ellipse's unrotated frame.
	dx := (start[0] - end[0]) / 2
	dy := (start[1] - end[1]) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Grow radii that cannot span the endpoints.
	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx := cosPhi*cx1 - sinPhi*cy1 + (start[0]+end[0])/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (start[1]+end[1])/2

	theta := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	delta := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx) - theta
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	// The small epsilon keeps exact quarter turns from rounding up to an
	// extra segment.
	n := int(math.Ceil(math.Abs(delta)/maxArcSegment - 1e-9))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	t := 4.0 / 3.0 * math.Tan(step/4)
	if math.IsNaN(t) || math.IsInf(t, 0) || math.IsNaN(cx) || math.IsNaN(cy) {
		return nil
	}

	toDevice := mgl64.Translate3D(cx, cy, 0).
		Mul4(mgl64.HomogRotate3DZ(phi)).
		Mul4(mgl64.Scale3D(rx, ry, 1))
	apply := func(x, y float64) Tuple {
		v := toDevice.Mul4x1(mgl64.Vec4{x, y, 0, 1})
		return Tuple{v[0], v[1]}
	}

	curves := make([]Command, 0, n)
	for i := 0; i < n; i++ {
		a0 := theta + float64(i)*step
		a1 := a0 + step
		sin0, cos0 := math.Sincos(a0)
		sin1, cos1 := math.Sincos(a1)

		c1 := apply(cos0-t*sin0, sin0+t*cos0)
		c2 := apply(cos1+t*sin1, sin1-t*cos1)
		p := apply(cos1, sin1)
		if i == n-1 {
			p = end
		}
		curves = append(curves, Command{Kind: CurveTo, Points: []Tuple{c1, c2, p}})
	}
	return curves
}
