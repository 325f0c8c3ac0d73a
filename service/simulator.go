package service

import (
	"math"
	"math/rand/v2"
	"sort"

	"studycost-agent/domain"
)

// Simulator draws Monte Carlo samples of total program cost. Each instance
// owns its random source, so create one per estimation call (or per test,
// with a fixed seed); concurrent estimations never share generator state.
type Simulator struct {
	trials int
	rng    *rand.Rand
}

// NewSimulator creates a Simulator that consumes randomness from rng.
func NewSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{trials: TrialCount, rng: rng}
}

// NewSeededSimulator creates a Simulator with a fixed seed, for
// reproducible runs.
func NewSeededSimulator(seed uint64) *Simulator {
	return NewSimulator(rand.New(rand.NewPCG(seed, seed)))
}

// Run simulates TrialCount independent trials of total program cost and
// returns the 10th, 50th and 90th percentiles, each rounded to the nearest
// whole unit. The input must already be sanitized: non-negative, finite,
// months >= 1. Tuition and scholarship are point estimates and are never
// resampled.
func (s *Simulator) Run(input domain.EstimateInput) domain.CostRange {
	rentStd := stdFor(input.MonthlyRent, RentStdRate, RentStdFloor)
	foodStd := stdFor(input.MonthlyFood, FoodStdRate, FoodStdFloor)
	transportStd := stdFor(input.MonthlyTransport, TransportStdRate, TransportStdFloor)

	totals := make([]float64, s.trials)
	for i := range totals {
		// Un gasto real nunca es negativo
		rent := math.Max(0, s.normal(input.MonthlyRent, rentStd))
		food := math.Max(0, s.normal(input.MonthlyFood, foodStd))
		transport := math.Max(0, s.normal(input.MonthlyTransport, transportStd))

		monthly := rent + food + transport + MonthlyUtilities + MonthlyMiscellaneous
		totals[i] = monthly*float64(input.Months) + OneTimeCosts +
			input.Tuition - input.Scholarship
	}

	sort.Float64s(totals)

	return domain.CostRange{
		P10:    math.Round(percentile(totals, 10)),
		Median: math.Round(percentile(totals, 50)),
		P90:    math.Round(percentile(totals, 90)),
	}
}

// normal returns one draw from N(mean, std) via the Box–Muller transform.
// Uniform draws of exactly 0 are redrawn so the logarithm stays finite.
// std = 0 is legal and collapses the draw to mean.
func (s *Simulator) normal(mean, std float64) float64 {
	u := s.rng.Float64()
	for u == 0 {
		u = s.rng.Float64()
	}
	v := s.rng.Float64()
	for v == 0 {
		v = s.rng.Float64()
	}
	return math.Sqrt(-2*math.Log(u))*math.Cos(2*math.Pi*v)*std + mean
}

// stdFor derives the standard deviation for a monthly category:
// proportional to the estimate, with a minimum floor.
func stdFor(estimate, rate, floor float64) float64 {
	return math.Max(rate*estimate, floor)
}

// percentile selects the p-th percentile of an ascending-sorted sample by
// nearest rank: floor of the fractional index, no interpolation.
func percentile(sorted []float64, p int) float64 {
	idx := p * len(sorted) / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
