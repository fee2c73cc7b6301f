// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"

	"github.com/agrodata/agrokit/record"
)

// BreakEven returns the production quantity q where
//
//	price·q − (fixedCost + variableCost·q) = 0
//
// by Bisection over [BracketLo, BracketHi] (default [0, 10000]).
// When the residual does not change sign in the bracket (e.g. price <=
// variable cost) it returns an error matching both ErrUnreachable and
// ErrNoSignChange.
func BreakEven(fixedCost, variableCost, price float64, opts ...Option) (float64, error) {
	cfg, err := gatherOptions(opts)
	if err != nil {
		return 0, err
	}
	residual := func(q float64) float64 {
		return price*q - (fixedCost + variableCost*q)
	}
	q, err := Bisection(residual, cfg.BracketLo, cfg.BracketHi, opts...)
	if err != nil {
		if errors.Is(err, ErrNoSignChange) {
			return 0, fmt.Errorf("%w: %w", ErrUnreachable, err)
		}
		return 0, err
	}
	return q, nil
}

// ProjectProduction estimates kilograms at each horizon day from history.
//
// With 3 or more observations it uses Cubic, with exactly 2 it uses
// Lagrange (a straight line). Each estimate is rounded to ProjectionPlaces
// decimals and floored at zero; a horizon whose estimate fails (e.g. both
// observations on the same day) reports 0.
//
// Errors: ErrInsufficientHistory for fewer than 2 observations.
func ProjectProduction(history []record.Observation, horizons []float64) ([]Projection, error) {
	if len(history) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientHistory, len(history))
	}
	days := make([]float64, len(history))
	kg := make([]float64, len(history))
	for i, o := range history {
		days[i], kg[i] = o.Day, o.Kg
	}

	interp := Lagrange
	if len(history) >= 3 {
		interp = Cubic
	}

	out := make([]Projection, 0, len(horizons))
	for _, day := range horizons {
		est, err := interp(days, kg, day)
		if err != nil || est < 0 {
			est = 0
		}
		out = append(out, Projection{Day: day, Kg: Round(est, ProjectionPlaces)})
	}
	return out, nil
}
