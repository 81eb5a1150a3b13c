// Package vendors holds the static installer marketplace dataset.
package vendors

import "github.com/solarisreal/backend/internal/domain"

var solarVendors = []domain.SolarVendor{
	{
		ID:                "tata-power-solar",
		Name:              "Tata Power Solar",
		Rating:            4.7,
		BasePricePerKwINR: 70000,
		PriceRangeINR:     "₹65,000 – ₹80,000 per kW",
		Locations:         []string{"Pan-India", "Tier 1 metro service centres"},
		YearsExperience:   34,
		Highlights:        []string{"MNRE empanelled", "25-year performance warranty", "Integrated financing partners"},
		Website:           "https://www.tatapowersolar.com/",
		Contact:           "+91 1800 419 8777",
	},
	{
		ID:                "loom-solar",
		Name:              "Loom Solar",
		Rating:            4.5,
		BasePricePerKwINR: 62000,
		PriceRangeINR:     "₹58,000 – ₹72,000 per kW",
		Locations:         []string{"Pan-India virtual network", "Over 500 distributors"},
		YearsExperience:   8,
		Highlights:        []string{"Microinverter specialists", "Express installation (3–5 days)", "Online monitoring app"},
		Website:           "https://www.loomsolar.com/",
		Contact:           "+91 9711 33 1444",
	},
	{
		ID:                "vikram-solar",
		Name:              "Vikram Solar",
		Rating:            4.4,
		BasePricePerKwINR: 68000,
		PriceRangeINR:     "₹62,000 – ₹78,000 per kW",
		Locations:         []string{"Delhi NCR", "Mumbai", "Bengaluru", "Kolkata"},
		YearsExperience:   17,
		Highlights:        []string{"High-efficiency mono-PERC panels", "Strong O&M network", "Utility + rooftop portfolio"},
		Website:           "https://www.vikramsolar.com/",
		Contact:           "+91 33 6609 6000",
	},
	{
		ID:                "servokon-solar",
		Name:              "Servokon Solar",
		Rating:            4.3,
		BasePricePerKwINR: 60000,
		PriceRangeINR:     "₹55,000 – ₹68,000 per kW",
		Locations:         []string{"North India focus", "Delhi NCR", "Lucknow", "Jaipur"},
		YearsExperience:   10,
		Highlights:        []string{"Custom rooftop design", "Hybrid inverter options", "After-sales AMC plans"},
		Website:           "https://servokonsolar.com/",
	},
}

// Static is the in-process vendor catalog. It satisfies
// domain.VendorRepository.
type Static struct {
	vendors []domain.SolarVendor
}

// NewStatic returns the built-in installer catalog.
func NewStatic() *Static {
	return &Static{vendors: solarVendors}
}

// NewStaticWith wraps an externally supplied vendor list.
func NewStaticWith(list []domain.SolarVendor) *Static {
	return &Static{vendors: list}
}

// All returns the catalog in its defined order.
func (s *Static) All() []domain.SolarVendor {
	return s.vendors
}
