package service

import (
	"math"
	"testing"

	"studycost-agent/domain"
	"studycost-agent/repository"
)

func newDisabledAIService() *AIService {
	return &AIService{
		enabled: false,
		cache:   repository.NewMemoryCache(),
	}
}

func TestEstimateCost_ExpectedBreakdown(t *testing.T) {

	svc := NewEstimateService(newDisabledAIService())

	result := svc.EstimateCost(referenceInput())

	if result.Expected.LivingCosts != 17640 {
		t.Errorf("expected living costs 17640, got %.0f", result.Expected.LivingCosts)
	}
	if result.Expected.OneTime != 1500 {
		t.Errorf("expected one-time costs 1500, got %.0f", result.Expected.OneTime)
	}
	if result.Expected.Total != 34140 {
		t.Errorf("expected total 34140, got %.0f", result.Expected.Total)
	}
}

func TestEstimateCost_PercentilesOrdered(t *testing.T) {

	svc := NewEstimateService(newDisabledAIService())

	result := svc.EstimateCost(referenceInput())

	r := result.Range
	if !(r.P10 <= r.Median && r.Median <= r.P90) {
		t.Errorf("expected p10 <= median <= p90, got %+v", r)
	}
}

func TestEstimateCost_SanitizesInput(t *testing.T) {

	svc := NewEstimateService(newDisabledAIService())

	input := domain.EstimateInput{
		Tuition:     math.NaN(),
		Months:      0,
		MonthlyRent: -500,
		Scholarship: math.Inf(1),
	}

	result := svc.EstimateCost(input)

	if result.Expected.Tuition != 0 {
		t.Errorf("NaN tuition must coerce to 0, got %.0f", result.Expected.Tuition)
	}
	if result.Expected.Scholarship != 0 {
		t.Errorf("Inf scholarship must coerce to 0, got %.0f", result.Expected.Scholarship)
	}

	// meses no positivos se tratan como 12: (0+0+0+70+100)*12 = 2040
	if result.Expected.LivingCosts != 2040 {
		t.Errorf("expected living costs 2040 with defaulted months, got %.0f", result.Expected.LivingCosts)
	}

	if result.Range.P10 < 0 || result.Range.Median < 0 || result.Range.P90 < 0 {
		t.Errorf("sanitized input must never produce negative percentiles: %+v", result.Range)
	}
}

func TestEstimateCost_FallbackTipsWhenAIDisabled(t *testing.T) {

	svc := NewEstimateService(newDisabledAIService())

	result := svc.EstimateCost(referenceInput())

	static := StaticTips()
	if len(result.Tips) != len(static) {
		t.Fatalf("expected the %d static tips, got %d", len(static), len(result.Tips))
	}
	for i := range static {
		if result.Tips[i] != static[i] {
			t.Errorf("tip %d differs from static fallback", i)
		}
	}
}

func TestSanitizeInput(t *testing.T) {

	input := domain.EstimateInput{
		Tuition:          -1,
		Months:           -3,
		MonthlyRent:      math.Inf(-1),
		MonthlyFood:      250,
		MonthlyTransport: math.NaN(),
		Scholarship:      100,
	}

	got := sanitizeInput(input)

	if got.Tuition != 0 || got.MonthlyRent != 0 || got.MonthlyTransport != 0 {
		t.Errorf("invalid amounts must coerce to 0: %+v", got)
	}
	if got.MonthlyFood != 250 || got.Scholarship != 100 {
		t.Errorf("valid amounts must pass through unchanged: %+v", got)
	}
	if got.Months != DefaultMonths {
		t.Errorf("non-positive months must default to %d, got %d", DefaultMonths, got.Months)
	}
}
