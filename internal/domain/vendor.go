package domain

// SolarVendor is an installer record from the static marketplace catalog.
type SolarVendor struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Rating            float64  `json:"rating"`
	BasePricePerKwINR float64  `json:"basePricePerKwINR"`
	PriceRangeINR     string   `json:"priceRangeINR"`
	Locations         []string `json:"locations"`
	YearsExperience   int      `json:"yearsExperience"`
	Highlights        []string `json:"highlights"`
	Website           string   `json:"website,omitempty"`
	Contact           string   `json:"contact,omitempty"`
}

// VendorQuote pairs a vendor with an indicative turnkey price for a sized
// system. EstimatedPriceINR is zero when no system size was supplied.
type VendorQuote struct {
	Vendor            SolarVendor `json:"vendor"`
	EstimatedPriceINR float64     `json:"estimatedPriceINR,omitempty"`
}

// VendorRepository supplies the read-only installer catalog.
type VendorRepository interface {
	All() []SolarVendor
}
