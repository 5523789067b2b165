package catenary

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gosag/internal/vector"
)

var (
	// ErrInvalidTension is returned when the horizontal tension cannot
	// produce a catenary (zero, negative, non-finite, or so small the
	// curve overflows).
	ErrInvalidTension = errors.New("catenary: invalid horizontal tension")

	// ErrInvalidGeometry is returned for a zero or non-finite unit weight or
	// a span with no horizontal extent.
	ErrInvalidGeometry = errors.New("catenary: invalid geometry")
)

// Catenary2D is a catenary in its own plane. The vertical axis points
// against the load.
type Catenary2D struct {
	TensionHorizontal float64 // lb
	WeightUnit        float64 // lb/ft
	SpanHorizontal    float64 // ft
	SpanVertical      float64 // ft, positive when the end support is higher
}

// NewCatenary2D validates the parameters and returns the catenary
func NewCatenary2D(tensionHorizontal, weightUnit, spanHorizontal, spanVertical float64) (Catenary2D, error) {
	c := Catenary2D{
		TensionHorizontal: tensionHorizontal,
		WeightUnit:        weightUnit,
		SpanHorizontal:    spanHorizontal,
		SpanVertical:      spanVertical,
	}

	if !(tensionHorizontal > 0) || math.IsInf(tensionHorizontal, 0) {
		return Catenary2D{}, fmt.Errorf("%w: %g", ErrInvalidTension, tensionHorizontal)
	}
	if !(weightUnit > 0) || math.IsInf(weightUnit, 0) {
		return Catenary2D{}, fmt.Errorf("%w: unit weight %g", ErrInvalidGeometry, weightUnit)
	}
	if !(spanHorizontal > 0) || math.IsInf(spanHorizontal, 0) || math.IsNaN(spanVertical) || math.IsInf(spanVertical, 0) {
		return Catenary2D{}, fmt.Errorf("%w: span %g x %g", ErrInvalidGeometry, spanHorizontal, spanVertical)
	}

	// a very slack curve overflows sinh/cosh
	if l := c.Length(); math.IsInf(l, 0) || math.IsNaN(l) || math.IsInf(c.TensionMax(), 0) {
		return Catenary2D{}, fmt.Errorf("%w: %g is degenerate for a %g span", ErrInvalidTension, tensionHorizontal, spanHorizontal)
	}

	return c, nil
}

// Constant returns the catenary constant H/w
func (c Catenary2D) Constant() float64 {
	return c.TensionHorizontal / c.WeightUnit
}

// lowPoint returns the x coordinate of the start support, measured from the
// curve's low point (negative when the low point is inside the span).
func (c Catenary2D) lowPoint() float64 {
	k := c.Constant()
	return k*math.Asinh(c.SpanVertical/(2*k*math.Sinh(c.SpanHorizontal/(2*k)))) - c.SpanHorizontal/2
}

// Length returns the curve length between the supports
func (c Catenary2D) Length() float64 {
	k := c.Constant()
	level := 2 * k * math.Sinh(c.SpanHorizontal/(2*k))
	return math.Hypot(c.SpanVertical, level)
}

// arc returns the arc position of the start support, measured from the low
// point, and the curve length.
func (c Catenary2D) arc() (start, length float64) {
	k := c.Constant()
	x0 := c.lowPoint()
	start = k * math.Sinh(x0/k)
	end := k * math.Sinh((x0+c.SpanHorizontal)/k)
	return start, end - start
}

// tensionAt returns the tension at arc position s from the low point
func (c Catenary2D) tensionAt(s float64) float64 {
	return math.Hypot(c.TensionHorizontal, c.WeightUnit*s)
}

// TensionAverage returns the average tension along the curve, sampled at
// the midpoints of points equal arc-length segments.
func (c Catenary2D) TensionAverage(points int) float64 {
	if points < 1 {
		points = 1
	}
	start, length := c.arc()

	var sum float64
	for i := 0; i < points; i++ {
		s := start + length*(float64(i)+0.5)/float64(points)
		sum += c.tensionAt(s)
	}
	return sum / float64(points)
}

// TensionMax returns the larger of the two support tensions
func (c Catenary2D) TensionMax() float64 {
	start, length := c.arc()
	return math.Max(c.tensionAt(start), c.tensionAt(start+length))
}

// Sag returns the largest distance between the chord and the curve,
// measured along the load direction.
func (c Catenary2D) Sag() float64 {
	k := c.Constant()
	x0 := c.lowPoint()
	slope := c.SpanVertical / c.SpanHorizontal

	// the curve is parallel to the chord here
	x := k * math.Asinh(slope)
	x = math.Max(x0, math.Min(x0+c.SpanHorizontal, x))

	chord := k*math.Cosh(x0/k) + slope*(x-x0)
	return chord - k*math.Cosh(x/k)
}

// PositionFraction returns the point at the given fraction of the curve
// length, relative to the start support.
func (c Catenary2D) PositionFraction(fraction float64) vector.Vector2 {
	k := c.Constant()
	x0 := c.lowPoint()
	start, length := c.arc()

	x := k * math.Asinh((start+fraction*length)/k)
	return vector.Vector2{
		X: x - x0,
		Y: k*math.Cosh(x/k) - k*math.Cosh(x0/k),
	}
}
