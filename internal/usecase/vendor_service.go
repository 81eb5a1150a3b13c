package usecase

import "github.com/solarisreal/backend/internal/domain"

// VendorService serves the installer marketplace: the static vendor catalog
// plus indicative turnkey quotes for a sized system.
type VendorService struct {
	vendors []domain.SolarVendor
}

// NewVendorService creates a vendor service over the given catalog
func NewVendorService(catalog domain.VendorRepository) *VendorService {
	return &VendorService{vendors: catalog.All()}
}

// AllVendors returns the full vendor catalog.
func (s *VendorService) AllVendors() []domain.SolarVendor {
	out := make([]domain.SolarVendor, len(s.vendors))
	copy(out, s.vendors)
	return out
}

// Quotes returns every vendor with an indicative turnkey price for the
// given system size. With no size (systemKw <= 0) the quotes carry the
// catalog entries alone.
func (s *VendorService) Quotes(systemKw float64) []domain.VendorQuote {
	quotes := make([]domain.VendorQuote, 0, len(s.vendors))
	for _, vendor := range s.vendors {
		quote := domain.VendorQuote{Vendor: vendor}
		if systemKw > 0 {
			quote.EstimatedPriceINR = vendor.BasePricePerKwINR * systemKw
		}
		quotes = append(quotes, quote)
	}
	return quotes
}
