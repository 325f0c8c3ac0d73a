package domain

// EstimateInput holds the point estimates for one study-abroad cost
// estimation. All monetary amounts are in a single implied currency unit.
type EstimateInput struct {
	Tuition          float64 `json:"tuition"`
	Months           int     `json:"months"`
	MonthlyRent      float64 `json:"monthlyRent"`
	MonthlyFood      float64 `json:"monthlyFood"`
	MonthlyTransport float64 `json:"monthlyTransport"`
	Scholarship      float64 `json:"scholarship"`
}

// CostRange summarizes the simulated distribution of total program cost.
// Each percentile is rounded to the nearest whole currency unit.
type CostRange struct {
	P10    float64 `json:"p10"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
}

// ExpectedBreakdown is the deterministic view computed straight from the
// point estimates, shown beside the simulated range. Its total will differ
// slightly from the simulated median once the zero-floor on draws kicks in.
type ExpectedBreakdown struct {
	Tuition     float64 `json:"tuition"`
	LivingCosts float64 `json:"livingCosts"`
	OneTime     float64 `json:"oneTime"`
	Scholarship float64 `json:"scholarship"`
	Total       float64 `json:"total"`
}

type EstimateResult struct {
	Expected ExpectedBreakdown `json:"expected"`
	Range    CostRange         `json:"range"`
	Tips     []string          `json:"tips,omitempty"`
}
