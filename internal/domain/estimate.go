package domain

// EstimateResult is the cost breakdown for a candidate system. All amounts
// are INR; SystemKw is installed capacity.
type EstimateResult struct {
	GrossCost    float64 `json:"grossCost"`
	Central      float64 `json:"central"`
	StateSubsidy float64 `json:"stateSubsidy"`
	NetCost      float64 `json:"netCost"`
	SystemKw     float64 `json:"systemKw"`
}

// CentralScheme is a capital-subsidy entry used by the cost estimator.
// MaxAmountINR of zero means the percentage applies uncapped.
type CentralScheme struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	SubsidyPercent float64 `json:"subsidyPercent"`
	MaxAmountINR   float64 `json:"maxAmountINR,omitempty"`
}

// StatePolicy captures a state's capex subsidy on top of central schemes.
type StatePolicy struct {
	CapexSubsidyPercent float64 `json:"capexSubsidyPercent"`
}
