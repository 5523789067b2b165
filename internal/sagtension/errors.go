package sagtension

import (
	"errors"
	"fmt"
)

// ErrConvergenceFailure is returned when the reload solver cannot bracket a
// root or stops before the length residual converges. The returned error is a
// *ConvergenceError carrying the diagnostics.
var ErrConvergenceFailure = errors.New("sagtension: reload did not converge")

// ConvergenceError describes a failed reload
type ConvergenceError struct {
	Reason     string
	Iterations int
	Residual   float64 // ft

	// Last bracket on the horizontal tension (lb)
	TensionLower float64
	TensionUpper float64

	// Err is the geometry or model error that stopped the solver, if any
	Err error
}

func (e *ConvergenceError) Error() string {
	msg := fmt.Sprintf("%v: %s after %d iterations (residual %.3g ft, bracket %.2f..%.2f lb)",
		ErrConvergenceFailure, e.Reason, e.Iterations, e.Residual, e.TensionLower, e.TensionUpper)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConvergenceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConvergenceFailure}
	}
	return []error{ErrConvergenceFailure, e.Err}
}
