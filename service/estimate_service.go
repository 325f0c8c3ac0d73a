package service

import (
	"math"
	"math/rand/v2"

	"studycost-agent/domain"
)

type EstimateService struct {
	ai *AIService
}

// NewEstimateService creates a new EstimateService. The AI service is the
// tips collaborator; the estimate itself never depends on it.
func NewEstimateService(ai *AIService) *EstimateService {
	return &EstimateService{ai: ai}
}

// EstimateCost produces the deterministic expected breakdown and the
// simulated cost range for one input, plus budgeting tips. Each call runs
// on its own freshly seeded generator, so concurrent calls are independent.
func (s *EstimateService) EstimateCost(input domain.EstimateInput) domain.EstimateResult {
	input = sanitizeInput(input)

	sim := NewSimulator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	result := domain.EstimateResult{
		Expected: expectedBreakdown(input),
		Range:    sim.Run(input),
	}
	result.Tips = s.ai.GenerateBudgetTips(input, result)

	return result
}

// sanitizeInput enforces the estimator's hard invariant: every amount is a
// finite non-negative number and months is at least 1 (defaulting to 12).
func sanitizeInput(input domain.EstimateInput) domain.EstimateInput {
	input.Tuition = sanitizeAmount(input.Tuition)
	input.MonthlyRent = sanitizeAmount(input.MonthlyRent)
	input.MonthlyFood = sanitizeAmount(input.MonthlyFood)
	input.MonthlyTransport = sanitizeAmount(input.MonthlyTransport)
	input.Scholarship = sanitizeAmount(input.Scholarship)
	if input.Months <= 0 {
		input.Months = DefaultMonths
	}
	return input
}

func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// expectedBreakdown computes the non-random "expected" view straight from
// the point estimates. It is informational context beside the simulated
// range, not the simulation's own median.
func expectedBreakdown(input domain.EstimateInput) domain.ExpectedBreakdown {
	living := (input.MonthlyRent + input.MonthlyFood + input.MonthlyTransport +
		MonthlyUtilities + MonthlyMiscellaneous) * float64(input.Months)

	b := domain.ExpectedBreakdown{
		Tuition:     math.Round(input.Tuition),
		LivingCosts: math.Round(living),
		OneTime:     OneTimeCosts,
		Scholarship: math.Round(input.Scholarship),
	}
	b.Total = b.Tuition + b.LivingCosts + b.OneTime - b.Scholarship
	return b
}
