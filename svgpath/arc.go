package svgpath

import (
	"fmt"
	"math"
)

// This file implements the lowering of elliptical
// arcs into cubic Bezier curves.

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an off-axis ellipse.
const maxDx float64 = math.Pi / 8

// Arc is an elliptical arc, with the parameters of
// the SVG 'A' command. Rotation is in degrees.
type Arc struct {
	Start, End       Point
	RX, RY, Rotation float64
	LargeArc, Sweep  bool
}

func (s Arc) StartPoint() Point { return s.Start }
func (s Arc) EndPoint() Point   { return s.End }

func (s Arc) String() string {
	return fmt.Sprintf("A%g,%g %g %d,%d %s", s.RX, s.RY, s.Rotation, boolToInt(s.LargeArc), boolToInt(s.Sweep), s.End)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// AddToPath adds the Bezier approximation of the arc.
// An arc with a zero radius is a straight line, and an arc
// whose end points are equal is omitted.
func (s Arc) AddToPath(p *Path) {
	if s.Start == s.End {
		return
	}
	rx, ry := math.Abs(s.RX), math.Abs(s.RY)
	if rx == 0 || ry == 0 {
		p.AddElement(Line{Start: s.Start, End: s.End})
		return
	}
	rotX := s.Rotation * math.Pi / 180
	cx, cy := findEllipseCenter(&rx, &ry, rotX, s.Start.X, s.Start.Y, s.End.X, s.End.Y, !s.Sweep, !s.LargeArc)
	for _, c := range s.curves(rx, ry, cx, cy) {
		p.AddElement(c)
	}
}

// curves approximates the arc of center (cx, cy), with the
// (possibly scaled up) radii rx and ry.
func (s Arc) curves(rx, ry, cx, cy float64) []Element {
	rotX := s.Rotation * math.Pi / 180
	startAngle := math.Atan2(s.Start.Y-cy, s.Start.X-cx) - rotX
	endAngle := math.Atan2(s.End.Y-cy, s.End.X-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	// Approximate ellipse using cubic bezeir splines
	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	deltaEta := etaEnd - etaStart
	if arcBig != s.LargeArc {
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// This check might be needed if the center point of the elipse is
	// at the midpoint of the start and end lines.
	if deltaEta < 0 && s.Sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !s.Sweep {
		deltaEta -= math.Pi * 2
	}

	// Round up to determine number of cubic splines to approximate bezier curve
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	out := make([]Element, 0, segs)
	last := s.Start
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(rx, ry, sinTheta, cosTheta, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var pt Point
		if i == segs {
			pt = s.End // Just makes the end point exact; no roundoff error
		} else {
			pt.X, pt.Y = ellipsePointAt(rx, ry, sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, sinTheta, cosTheta, eta)
		out = append(out, NewBezier(last,
			Point{last.X + alpha*ldx, last.Y + alpha*ldy},
			Point{pt.X - alpha*dx, pt.Y - alpha*dy},
			pt))
		last, ldx, ldy = pt, dx, dy
	}
	return out
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the Ellipse if it exists. If it does not exist,
// the radius values will be increased minimally for a solution to be possible
// while preserving the ra to rb ratio.  ra and rb arguments are pointers that can be
// checked after the call to see if the values changed. This method uses coordinate transformations
// to reduce the problem to finding the center of a circle that includes the origin
// and an arbitrary point. The center of the circle is then transformed
// back to the original coordinates and returned.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit. Length of
		// span is greater than max width of ellipse, must scale *ra, *rb
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	//Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
