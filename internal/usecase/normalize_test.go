package usecase

import (
	"testing"

	"github.com/solarisreal/backend/internal/domain"
)

func TestNormalizeState(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases and trims", "  Karnataka  ", "karnataka"},
		{"maps NCT alias", "NCT of Delhi", "delhi"},
		{"maps new delhi alias", "New Delhi", "delhi"},
		{"maps delhi ncr alias", "Delhi NCR", "delhi"},
		{"fixes common misspelling", "Maharastra", "maharashtra"},
		{"fixes rajasthan misspelling", "Rajastan", "rajasthan"},
		{"unmapped input passes through", "west bengal", "west bengal"},
		{"empty input stays empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeState(tt.input); got != tt.want {
				t.Errorf("normalizeState(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeConsumerSegment(t *testing.T) {
	tests := []struct {
		input string
		want  domain.ConsumerSegment
	}{
		{"agricultural", domain.SegmentAgricultural},
		{"Agriculture", domain.SegmentAgricultural},
		{"agri-pump", domain.SegmentAgricultural},
		{"community", domain.SegmentCommunity},
		{"Commercial complex", domain.SegmentCommunity},
		{"residential", domain.SegmentResidential},
		{"homeowner", domain.SegmentResidential},
		{"", domain.SegmentResidential},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeConsumerSegment(tt.input); got != tt.want {
				t.Errorf("normalizeConsumerSegment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMonthlyUnits(t *testing.T) {
	t.Run("bill figure wins", func(t *testing.T) {
		profile := &domain.SubsidyUserProfile{
			MonthlyBillUnits:     floatPtr(250),
			AnnualConsumptionKWh: floatPtr(6000),
		}
		got := monthlyUnits(profile)
		if got == nil || *got != 250 {
			t.Errorf("monthlyUnits = %v, want 250", got)
		}
	})

	t.Run("annual consumption divides by twelve", func(t *testing.T) {
		profile := &domain.SubsidyUserProfile{AnnualConsumptionKWh: floatPtr(6000)}
		got := monthlyUnits(profile)
		if got == nil || *got != 500 {
			t.Errorf("monthlyUnits = %v, want 500", got)
		}
	})

	t.Run("nothing known yields nil", func(t *testing.T) {
		if got := monthlyUnits(&domain.SubsidyUserProfile{}); got != nil {
			t.Errorf("monthlyUnits = %v, want nil", got)
		}
	})
}

func TestTitleState(t *testing.T) {
	if got := titleState("uttar pradesh"); got != "Uttar pradesh" {
		t.Errorf("titleState = %q, want %q", got, "Uttar pradesh")
	}
	if got := titleState(""); got != "" {
		t.Errorf("titleState(\"\") = %q, want empty", got)
	}
}

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{300, "300"},
		{12.5, "12.5"},
		{0.5, "0.5"},
	}
	for _, tt := range tests {
		if got := formatUnits(tt.input); got != tt.want {
			t.Errorf("formatUnits(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
