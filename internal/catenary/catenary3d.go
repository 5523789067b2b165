package catenary

import (
	"fmt"

	"github.com/alexiusacademia/gosag/internal/vector"
)

// Catenary3D is a catenary between two supports in line coordinates.
//
// Unit weight components are load magnitudes: Y acts transversely (wind),
// Z acts downward (gravity). The curve hangs in the plane that contains the
// resultant load and the chord between the supports.
type Catenary3D struct {
	SpacingEndpoints  vector.Vector3 // ft, end support relative to start
	TensionHorizontal float64        // lb
	WeightUnit        vector.Vector3 // lb/ft
}

// Plane reduces the 3D catenary to the 2D catenary in its loaded plane
func (c Catenary3D) Plane() (Catenary2D, error) {
	if !c.SpacingEndpoints.IsFinite() || !c.WeightUnit.IsFinite() {
		return Catenary2D{}, fmt.Errorf("%w: non-finite spacing or unit weight", ErrInvalidGeometry)
	}

	w := c.WeightUnit.Magnitude()
	if w == 0 {
		return Catenary2D{}, fmt.Errorf("%w: zero unit weight", ErrInvalidGeometry)
	}

	// unit vector opposite the resultant load
	up := vector.NewVector3(-c.WeightUnit.X, -c.WeightUnit.Y, c.WeightUnit.Z).Unit()

	v := c.SpacingEndpoints.Dot(up)
	h := c.SpacingEndpoints.Sub(up.Scale(v)).Magnitude()

	return NewCatenary2D(c.TensionHorizontal, w, h, v)
}

// Length returns the curve length between the supports
func (c Catenary3D) Length() (float64, error) {
	p, err := c.Plane()
	if err != nil {
		return 0, err
	}
	return p.Length(), nil
}

// Sag returns the sag measured along the resultant load
func (c Catenary3D) Sag() (float64, error) {
	p, err := c.Plane()
	if err != nil {
		return 0, err
	}
	return p.Sag(), nil
}

// TensionAverage returns the average tension sampled at points positions
func (c Catenary3D) TensionAverage(points int) (float64, error) {
	p, err := c.Plane()
	if err != nil {
		return 0, err
	}
	return p.TensionAverage(points), nil
}

// TensionMax returns the larger support tension
func (c Catenary3D) TensionMax() (float64, error) {
	p, err := c.Plane()
	if err != nil {
		return 0, err
	}
	return p.TensionMax(), nil
}
