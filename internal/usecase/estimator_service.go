package usecase

import (
	"math"

	"github.com/solarisreal/backend/internal/domain"
)

// Sizing and cost assumptions for Indian rooftop installs
const (
	defaultCostPerKwINR = 65000 // turnkey INR per installed kW
	annualYieldPerKw    = 1100  // kWh generated per kW per year
	areaPerKw           = 8.0   // usable roof sq.m per kW
	minSystemKw         = 0.5   // smallest practical rooftop install
	maxSystemKw         = 10.0  // largest residential rooftop install
	fallbackSystemKw    = 1.0   // assumed size when no sizing data given

	billOffsetFactor = 0.6 // share of the bill a sized system offsets
	savingsPerKWhINR = 6.0 // assumed INR saved per generated kWh
)

// defaultCentralSchemes is the built-in central subsidy list used when the
// estimator is configured without one.
var defaultCentralSchemes = []domain.CentralScheme{
	{
		ID:             "pm-surya-ghar",
		Name:           "PM Surya Ghar",
		SubsidyPercent: 40,
		MaxAmountINR:   200000,
	},
}

// EstimatorConfig holds configuration for the estimator service. Zero-value
// fields fall back to the built-in defaults.
type EstimatorConfig struct {
	CostPerKwINR   float64
	CentralSchemes []domain.CentralScheme
	StatePolicy    domain.StatePolicy
}

// EstimatorService sizes a candidate PV system and computes its
// subsidy-adjusted cost breakdown. Pure computation: no I/O, no state
// beyond the configured subsidy lists.
type EstimatorService struct {
	costPerKw      float64
	centralSchemes []domain.CentralScheme
	statePolicy    domain.StatePolicy
}

// NewEstimatorService creates an estimator with the given configuration
func NewEstimatorService(config EstimatorConfig) *EstimatorService {
	costPerKw := config.CostPerKwINR
	if costPerKw <= 0 {
		costPerKw = defaultCostPerKwINR
	}

	schemes := config.CentralSchemes
	if schemes == nil {
		schemes = defaultCentralSchemes
	}

	return &EstimatorService{
		costPerKw:      costPerKw,
		centralSchemes: schemes,
		statePolicy:    config.StatePolicy,
	}
}

// SystemSizeKw derives a recommended system size from the sizing channels.
// Consumption wins over roof area when both are present; zero means "no
// data for this channel". The result always lands in [0.5, 10] kW.
func SystemSizeKw(roofAreaSqm, annualConsumptionKWh float64) float64 {
	if annualConsumptionKWh > 0 {
		return clampKw(annualConsumptionKWh / annualYieldPerKw)
	}
	if roofAreaSqm > 0 {
		return clampKw(roofAreaSqm / areaPerKw)
	}
	return fallbackSystemKw
}

func clampKw(kw float64) float64 {
	return math.Max(minSystemKw, math.Min(maxSystemKw, kw))
}

// Estimate computes the cost breakdown for a sized system using the
// configured cost and subsidy lists.
func (s *EstimatorService) Estimate(systemKw float64) domain.EstimateResult {
	return EstimateSubsidy(systemKw, s.costPerKw, s.centralSchemes, s.statePolicy)
}

// EstimateSubsidy computes gross cost, the additive per-scheme central
// subsidy, the state capex subsidy, and the resulting net cost. Never
// returns an error: all numeric inputs are defaulted or clamped, and a
// nonsensical systemKw is the caller's problem.
func EstimateSubsidy(systemKw, costPerKw float64, schemes []domain.CentralScheme, statePolicy domain.StatePolicy) domain.EstimateResult {
	if costPerKw <= 0 {
		costPerKw = defaultCostPerKwINR
	}
	if schemes == nil {
		schemes = defaultCentralSchemes
	}

	grossCost := systemKw * costPerKw

	central := 0.0
	for _, scheme := range schemes {
		if scheme.SubsidyPercent <= 0 {
			continue
		}
		amount := grossCost * scheme.SubsidyPercent / 100
		if scheme.MaxAmountINR > 0 && amount > scheme.MaxAmountINR {
			amount = scheme.MaxAmountINR
		}
		central += amount
	}

	stateSubsidy := 0.0
	if statePolicy.CapexSubsidyPercent > 0 {
		stateSubsidy = grossCost * statePolicy.CapexSubsidyPercent / 100
	}

	netCost := math.Max(0, grossCost-central-stateSubsidy)

	return domain.EstimateResult{
		GrossCost:    grossCost,
		Central:      central,
		StateSubsidy: stateSubsidy,
		NetCost:      netCost,
		SystemKw:     systemKw,
	}
}

// AnnualOutputKWh projects yearly generation for a sized system.
func AnnualOutputKWh(systemKw float64) float64 {
	return systemKw * annualYieldPerKw
}

// AnnualSavingsINR projects yearly savings. A known bill figure anchors the
// projection; otherwise it is priced off projected generation.
func AnnualSavingsINR(systemKw, monthlyBillUnits float64) float64 {
	if monthlyBillUnits > 0 {
		return monthlyBillUnits * 12 * billOffsetFactor
	}
	return AnnualOutputKWh(systemKw) * savingsPerKWhINR
}
