package cable

import "errors"

var (
	// ErrInvalidCable is returned when a cable cannot be modeled at all
	// (non-positive area, missing polynomial).
	ErrInvalidCable = errors.New("cable: invalid cable")

	// ErrStrainOutOfRange is returned when a load cannot be bracketed by the
	// strain search range of the elongation model.
	ErrStrainOutOfRange = errors.New("cable: load outside strain range")
)
