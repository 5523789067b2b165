package sagtension

import (
	"context"
	"fmt"
	"math"

	"github.com/alexiusacademia/gosag/internal/cable"
	"github.com/alexiusacademia/gosag/internal/logging"
	"github.com/alexiusacademia/gosag/internal/vector"
)

// Reloader solves for the horizontal tension of a catenary cable after its
// state or unit weight changes. The unloaded-unstretched length of the
// original cable is conserved.
type Reloader struct {
	CatenaryCable      CatenaryCable
	StateReloaded      cable.State
	WeightUnitReloaded vector.Vector3
	Config             Config
}

// Result is a converged reload with its solver diagnostics
type Result struct {
	CatenaryCable CatenaryCable
	Iterations    int
	Residual      float64 // ft

	// Final bracket on the horizontal tension (lb)
	TensionLower float64
	TensionUpper float64
}

// LengthUnloadedUnstretched returns the length the reload conserves. The
// original cable is evaluated with the solver's PointsAverage.
func (r Reloader) LengthUnloadedUnstretched() (float64, error) {
	return r.original().LengthUnloadedUnstretched()
}

// original returns the original catenary cable sampled like every candidate
func (r Reloader) original() CatenaryCable {
	cc := r.CatenaryCable
	cc.PointsAverage = r.Config.withDefaults().PointsAverage
	return cc
}

// CatenaryCableReloaded returns the reloaded catenary cable
func (r Reloader) CatenaryCableReloaded() (CatenaryCable, error) {
	result, err := r.Reload()
	if err != nil {
		return CatenaryCable{}, err
	}
	return result.CatenaryCable, nil
}

// candidate returns the reloaded cable at a trial horizontal tension
func (r Reloader) candidate(tension float64) CatenaryCable {
	return CatenaryCable{
		Cable:             r.CatenaryCable.Cable,
		SpacingEndpoints:  r.CatenaryCable.SpacingEndpoints,
		State:             r.StateReloaded,
		WeightUnit:        r.WeightUnitReloaded,
		TensionHorizontal: tension,
		PointsAverage:     r.Config.withDefaults().PointsAverage,
	}
}

// Reload solves for the reloaded horizontal tension.
//
// The residual f(H) = L(H) - L0 between the candidate and original
// unloaded-unstretched lengths decreases with H. The solver expands a
// bracket around an initial guess until f changes sign, then refines it with
// the Illinois variant of regula falsi. It fails with a *ConvergenceError
// unless |f| falls within the length tolerance.
func (r Reloader) Reload() (*Result, error) {
	cfg := r.Config.withDefaults()
	ctx := context.Background()
	log := cfg.Logger.With(logging.String("cable", r.CatenaryCable.Cable.Name))

	log.Debug(ctx, "reloading",
		logging.Any("state", r.StateReloaded),
		logging.Any("weight_unit", r.WeightUnitReloaded))

	l0, err := r.LengthUnloadedUnstretched()
	if err != nil {
		return nil, fmt.Errorf("original catenary cable: %w", err)
	}

	model, err := cable.NewModel(r.CatenaryCable.Cable, r.StateReloaded)
	if err != nil {
		return nil, fmt.Errorf("reloaded state: %w", err)
	}

	residual := func(tension float64) (float64, error) {
		l, err := r.candidate(tension).lengthUnloadedUnstretched(model, cfg.PointsAverage)
		return l - l0, err
	}
	tolerance := cfg.Tolerance * l0

	converged := func(tension, f float64, iterations int, lower, upper float64) *Result {
		log.Debug(ctx, "reload converged",
			logging.Float("tension_horizontal", tension),
			logging.Int("iterations", iterations),
			logging.Float("residual", f))
		return &Result{
			CatenaryCable: r.candidate(tension),
			Iterations:    iterations,
			Residual:      f,
			TensionLower:  lower,
			TensionUpper:  upper,
		}
	}

	guess := r.initialGuess(cfg)
	f, err := residual(guess)
	if err != nil {
		return nil, &ConvergenceError{Reason: "initial guess failed", TensionLower: guess, TensionUpper: guess, Err: err}
	}
	if math.Abs(f) <= tolerance {
		return converged(guess, f, 0, guess, guess), nil
	}

	b, err := bracketRoot(residual, guess, f, cfg)
	if err != nil {
		log.Warn(ctx, "reload failed to bracket", logging.Err(err))
		return nil, err
	}
	log.Debug(ctx, "reload bracketed",
		logging.Float("tension_lower", b.lower),
		logging.Float("tension_upper", b.upper),
		logging.Int("iterations", b.iterations))

	// Illinois iterations; side records which end moved last
	iterations := b.iterations
	side := 0
	for iterations < cfg.IterationsMax {
		tension := b.upper - b.fUpper*(b.upper-b.lower)/(b.fUpper-b.fLower)
		if !(tension > b.lower && tension < b.upper) {
			tension = (b.lower + b.upper) / 2
		}

		f, err := residual(tension)
		iterations++
		if err != nil {
			return nil, &ConvergenceError{Reason: "residual evaluation failed", Iterations: iterations,
				TensionLower: b.lower, TensionUpper: b.upper, Err: err}
		}

		if math.Abs(f) <= tolerance {
			return converged(tension, f, iterations, b.lower, b.upper), nil
		}
		if b.upper-b.lower <= cfg.TensionTolerance {
			err := &ConvergenceError{
				Reason:       "tension bracket collapsed before length converged",
				Iterations:   iterations,
				Residual:     math.Abs(f),
				TensionLower: b.lower,
				TensionUpper: b.upper,
			}
			log.Warn(ctx, "reload failed", logging.Err(err))
			return nil, err
		}

		if f > 0 {
			b.lower, b.fLower = tension, f
			if side == 1 {
				b.fUpper /= 2
			}
			side = 1
		} else {
			b.upper, b.fUpper = tension, f
			if side == -1 {
				b.fLower /= 2
			}
			side = -1
		}
	}

	err = &ConvergenceError{
		Reason:       "iteration limit reached",
		Iterations:   iterations,
		Residual:     math.Min(math.Abs(b.fLower), math.Abs(b.fUpper)),
		TensionLower: b.lower,
		TensionUpper: b.upper,
	}
	log.Warn(ctx, "reload failed", logging.Err(err))
	return nil, err
}

// initialGuess scales the original tension by the change in unit weight
func (r Reloader) initialGuess(cfg Config) float64 {
	guess := r.CatenaryCable.TensionHorizontal
	wOld := r.CatenaryCable.WeightUnit.Magnitude()
	wNew := r.WeightUnitReloaded.Magnitude()
	if wOld > 0 && wNew > 0 {
		guess *= wNew / wOld
	}
	if !(guess > 0) || math.IsInf(guess, 0) {
		guess = cfg.TensionMin
	}
	return math.Max(cfg.TensionMin, math.Min(cfg.TensionMax, guess))
}

type bracket struct {
	lower, upper   float64
	fLower, fUpper float64
	iterations     int
}

// bracketRoot doubles or halves the tension from the guess until the
// residual changes sign, staying within the configured tension limits.
func bracketRoot(residual func(float64) (float64, error), guess, f float64, cfg Config) (bracket, error) {
	b := bracket{lower: guess, upper: guess, fLower: f, fUpper: f}

	fail := func(reason string, err error) (bracket, error) {
		return b, &ConvergenceError{
			Reason:       reason,
			Iterations:   b.iterations,
			Residual:     math.Min(math.Abs(b.fLower), math.Abs(b.fUpper)),
			TensionLower: b.lower,
			TensionUpper: b.upper,
			Err:          err,
		}
	}

	for {
		if b.iterations >= cfg.IterationsMax {
			return fail("iteration limit reached while bracketing", nil)
		}

		if f > 0 {
			// too long: the root is at a higher tension
			if b.upper >= cfg.TensionMax {
				return fail("no root below the maximum tension", nil)
			}
			b.lower, b.fLower = b.upper, b.fUpper
			b.upper = math.Min(b.upper*2, cfg.TensionMax)
			fu, err := residual(b.upper)
			b.iterations++
			if err != nil {
				return fail("residual evaluation failed", err)
			}
			b.fUpper = fu
			if fu <= 0 {
				return b, nil
			}
		} else {
			if b.lower <= cfg.TensionMin {
				return fail("no root above the minimum tension", nil)
			}
			b.upper, b.fUpper = b.lower, b.fLower
			b.lower = math.Max(b.lower/2, cfg.TensionMin)
			fl, err := residual(b.lower)
			b.iterations++
			if err != nil {
				return fail("residual evaluation failed", err)
			}
			b.fLower = fl
			if fl >= 0 {
				return b, nil
			}
		}
	}
}

// Validate checks the original catenary cable, the reloaded state and unit
// weight, and the temperatures against the model domain. It does not solve.
func (r Reloader) Validate(strict bool) (bool, []string) {
	cfg := r.Config.withDefaults()

	_, messages := r.CatenaryCable.Validate(strict)
	messages = append(messages, validateWeight("RELOADER", r.WeightUnitReloaded, strict)...)
	messages = append(messages, validateState("RELOADER", r.StateReloaded, r.CatenaryCable.Cable, strict)...)

	temperatures := []float64{r.CatenaryCable.State.Temperature, r.StateReloaded.Temperature}
	if r.CatenaryCable.State.LoadStretch > 0 {
		temperatures = append(temperatures, r.CatenaryCable.State.TemperatureStretch)
	}
	if r.StateReloaded.LoadStretch > 0 {
		temperatures = append(temperatures, r.StateReloaded.TemperatureStretch)
	}
	for _, t := range temperatures {
		if t < cfg.TemperatureMin || t > cfg.TemperatureMax {
			messages = append(messages, fmt.Sprintf("RELOADER - temperature %g outside model domain [%g, %g]",
				t, cfg.TemperatureMin, cfg.TemperatureMax))
		}
	}

	if len(messages) == 0 {
		if _, err := r.candidate(r.CatenaryCable.TensionHorizontal).Catenary().Plane(); err != nil {
			messages = append(messages, fmt.Sprintf("RELOADER - %v", err))
		}
	}

	return len(messages) == 0, messages
}
