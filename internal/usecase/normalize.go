package usecase

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/solarisreal/backend/internal/domain"
)

// stateOverrides maps common spelling variants and aliases to canonical
// lowercase state names. Unmapped input passes through lowercased/trimmed.
var stateOverrides = map[string]string{
	"nct of delhi":     "delhi",
	"new delhi":        "delhi",
	"delhi ncr":        "delhi",
	"maharastra":       "maharashtra",
	"maharastra state": "maharashtra",
	"rajastan":         "rajasthan",
	"uttar pradesh":    "uttar pradesh",
	"andhra pradesh":   "andhra pradesh",
}

// normalizeState lowercases and trims a free-text state name, then applies
// the alias table.
func normalizeState(input string) string {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return ""
	}
	if canonical, ok := stateOverrides[trimmed]; ok {
		return canonical
	}
	return trimmed
}

// normalizeConsumerSegment maps a loose segment string onto the closed set.
// Deliberately a prefix match, not an enum validation: "agri", "agriculture"
// and "agricultural" all mean the same thing to the form layer.
func normalizeConsumerSegment(segment string) domain.ConsumerSegment {
	s := strings.ToLower(segment)
	switch {
	case strings.HasPrefix(s, "agri"):
		return domain.SegmentAgricultural
	case strings.HasPrefix(s, "comm"):
		return domain.SegmentCommunity
	default:
		return domain.SegmentResidential
	}
}

// monthlyUnits derives the monthly consumption channel from a profile:
// the bill figure wins, otherwise annual consumption divided by twelve,
// otherwise unknown.
func monthlyUnits(profile *domain.SubsidyUserProfile) *float64 {
	if profile.MonthlyBillUnits != nil {
		return profile.MonthlyBillUnits
	}
	if profile.AnnualConsumptionKWh != nil {
		units := *profile.AnnualConsumptionKWh / 12
		return &units
	}
	return nil
}

// titleState capitalizes the first rune of a normalized state name for
// display in reason strings ("uttar pradesh" -> "Uttar pradesh").
func titleState(state string) string {
	if state == "" {
		return ""
	}
	r := []rune(state)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// formatUnits renders a threshold number without trailing zeros (25, 4.5).
func formatUnits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
