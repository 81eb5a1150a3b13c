// Package catalog holds the static subsidy-scheme dataset. Swapping this
// data for a new subsidy year or another country requires no code change.
package catalog

import "github.com/solarisreal/backend/internal/domain"

func boolPtr(b bool) *bool { return &b }

// subsidySchemes is the seed catalog of central, state and CSR programmes.
// States are lowercase canonical names; tags are lowercase keywords.
var subsidySchemes = []domain.SubsidyScheme{
	{
		ID:                         "pm-surya-ghar",
		Name:                       "PM Surya Ghar: Muft Bijli Yojana",
		Administrator:              "Ministry of New and Renewable Energy",
		Coverage:                   domain.CoverageCentral,
		AllIndia:                   true,
		ConsumerSegments:           []domain.ConsumerSegment{domain.SegmentResidential},
		RequiresOwnership:          true,
		RequiresGridConnection:     boolPtr(true),
		MaxMonthlyConsumptionUnits: 300,
		SubsidyType:                "capital-subsidy",
		Benefit:                    "Up to 40% capital subsidy capped at ₹78,000 for 3 kW, plus 300 units of free electricity per month",
		ApplicationProcess:         "Apply on the national portal, pick a registered vendor, subsidy is credited after net-meter commissioning",
		ApplicationURL:             "https://pmsuryaghar.gov.in",
		Timeline:                   "Subsidy disbursed within 30 days of commissioning",
		VendorInfo:                 "Only MNRE-empanelled vendors on the portal are eligible",
		Notes:                      "Flagship residential rooftop programme; DBT direct to the applicant's bank account",
		Tags:                       []string{"residential", "rooftop", "dbt"},
	},
	{
		ID:                     "pm-kusum-b",
		Name:                   "PM-KUSUM Component B",
		Administrator:          "Ministry of New and Renewable Energy",
		Coverage:               domain.CoverageCentral,
		AllIndia:               true,
		ConsumerSegments:       []domain.ConsumerSegment{domain.SegmentAgricultural},
		RequiresGridConnection: boolPtr(false),
		SubsidyType:            "capital-subsidy",
		Benefit:                "60% subsidy on standalone solar agriculture pumps up to 7.5 HP",
		ApplicationProcess:     "Apply through the state nodal agency with land records and pump specification",
		ApplicationURL:         "https://pmkusum.mnre.gov.in",
		Timeline:               "State-level empanelment rounds, typically quarterly",
		VendorInfo:             "State-empanelled pump suppliers only",
		Notes:                  "Targets diesel pump replacement in off-grid farms",
		Tags:                   []string{"agricultural", "pump", "off-grid"},
	},
	{
		ID:                 "solar-interest-subvention",
		Name:               "Rooftop Solar Loan Interest Subvention",
		Administrator:      "Ministry of New and Renewable Energy",
		Coverage:           domain.CoverageCentral,
		AllIndia:           true,
		ConsumerSegments:   []domain.ConsumerSegment{domain.SegmentResidential, domain.SegmentCommunity},
		SubsidyType:        "interest-subvention",
		Benefit:            "Collateral-free loans up to ₹2,00,000 at subsidised interest through partner banks",
		ApplicationProcess: "Apply at a partner bank branch with the vendor quotation and portal registration",
		Timeline:           "Loan sanction in 2–4 weeks",
		Notes:              "Stackable with the PM Surya Ghar capital subsidy",
		Tags:               []string{"residential", "financing"},
	},
	{
		ID:                     "gujarat-surya-urja",
		Name:                   "Gujarat Surya Urja Rooftop Yojana",
		Administrator:          "Gujarat Energy Development Agency",
		Coverage:               domain.CoverageState,
		States:                 []string{"gujarat"},
		ConsumerSegments:       []domain.ConsumerSegment{domain.SegmentResidential},
		RequiresOwnership:      true,
		RequiresGridConnection: boolPtr(true),
		SubsidyType:            "capital-subsidy",
		Benefit:                "State top-up of 20% for systems up to 3 kW on top of the central subsidy",
		ApplicationProcess:     "Apply via the discom portal with a recent electricity bill and property papers",
		ApplicationURL:         "https://geda.gujarat.gov.in",
		Timeline:               "Net meter installed within 15 working days of feasibility approval",
		VendorInfo:             "GEDA-empanelled installers",
		Tags:                   []string{"gujarat", "residential", "rooftop"},
	},
	{
		ID:                 "up-rooftop-incentive",
		Name:               "UPNEDA Residential Rooftop Incentive",
		Administrator:      "Uttar Pradesh New and Renewable Energy Development Agency",
		Coverage:           domain.CoverageState,
		States:             []string{"uttar pradesh"},
		ConsumerSegments:   []domain.ConsumerSegment{domain.SegmentResidential},
		RequiresOwnership:  true,
		MinRoofAreaSqm:     10,
		SubsidyType:        "capital-subsidy",
		Benefit:            "₹15,000 per kW up to ₹30,000 as a state incentive",
		ApplicationProcess: "Register on the UPNEDA portal after central portal approval",
		ApplicationURL:     "https://upneda.org.in",
		Timeline:           "Incentive released after discom commissioning report",
		Tags:               []string{"uttar pradesh", "residential"},
	},
	{
		ID:                     "maharashtra-agri-pump",
		Name:                   "Mukhyamantri Saur Krishi Pump Yojana",
		Administrator:          "Maharashtra Energy Development Agency",
		Coverage:               domain.CoverageState,
		States:                 []string{"maharashtra"},
		ConsumerSegments:       []domain.ConsumerSegment{domain.SegmentAgricultural},
		RequiresGridConnection: boolPtr(false),
		SubsidyType:            "capital-subsidy",
		Benefit:                "Solar pumps at 5–10% beneficiary contribution for small landholders",
		ApplicationProcess:     "Apply online with 7/12 land extract and caste certificate where applicable",
		Timeline:               "Allotment by lottery in oversubscribed districts",
		VendorInfo:             "MEDA-approved pump vendors",
		Tags:                   []string{"maharashtra", "agricultural", "pump"},
	},
	{
		ID:                         "delhi-solar-policy",
		Name:                       "Delhi Solar Policy Generation Incentive",
		Administrator:              "Delhi Dialogue and Development Commission",
		Coverage:                   domain.CoverageState,
		States:                     []string{"delhi"},
		ConsumerSegments:           []domain.ConsumerSegment{domain.SegmentResidential, domain.SegmentCommunity},
		RequiresGridConnection:     boolPtr(true),
		MaxMonthlyConsumptionUnits: 400,
		SubsidyType:                "generation-incentive",
		Benefit:                    "₹3 per unit generation-based incentive for five years",
		ApplicationProcess:         "Apply through the discom with net-metering agreement",
		Timeline:                   "GBI credited against monthly bills",
		Notes:                      "Group housing societies can pool rooftops under community net metering",
		Tags:                       []string{"delhi", "residential", "community"},
	},
	{
		ID:                     "kerala-soura",
		Name:                   "KSEB Soura Rooftop Programme",
		Administrator:          "Kerala State Electricity Board",
		Coverage:               domain.CoverageState,
		States:                 []string{"kerala"},
		ConsumerSegments:       []domain.ConsumerSegment{domain.SegmentResidential},
		RequiresOwnership:      true,
		RequiresGridConnection: boolPtr(true),
		MinRoofAreaSqm:         12,
		SubsidyType:            "capital-subsidy",
		Benefit:                "Subsidised installation under KSEB ownership or consumer ownership models",
		ApplicationProcess:     "Register on the Soura portal; KSEB conducts the site feasibility study",
		ApplicationURL:         "https://soura.kseb.in",
		Timeline:               "Installation within 60 days of agreement",
		Tags:                   []string{"kerala", "residential"},
	},
	{
		ID:                 "rajasthan-community-solar",
		Name:               "Rajasthan Community Solar Scheme",
		Administrator:      "Rajasthan Renewable Energy Corporation",
		Coverage:           domain.CoverageState,
		States:             []string{"rajasthan"},
		ConsumerSegments:   []domain.ConsumerSegment{domain.SegmentCommunity},
		MinRoofAreaSqm:     50,
		SubsidyType:        "capital-subsidy",
		Benefit:            "Grant support for shared installations on community buildings and panchayat land",
		ApplicationProcess: "Gram panchayat or housing society applies through the district collector",
		Timeline:           "Sanction in the annual district plan cycle",
		Tags:               []string{"rajasthan", "community"},
	},
	{
		ID:                     "csr-rural-microgrid",
		Name:                   "CSR Rural Solar Microgrid Fund",
		Administrator:          "Corporate foundations consortium",
		Coverage:               domain.CoverageCSR,
		AllIndia:               true,
		ConsumerSegments:       []domain.ConsumerSegment{domain.SegmentCommunity},
		RequiresGridConnection: boolPtr(false),
		SubsidyType:            "grant",
		Benefit:                "Full capital grant for village microgrids in unelectrified hamlets",
		ApplicationProcess:     "Nomination by the district administration or a partner NGO",
		Timeline:               "Two funding rounds per year",
		Notes:                  "Prioritises hamlets without feasible grid extension",
		Tags:                   []string{"community", "rural", "off-grid"},
	},
}

// Static is the in-process scheme catalog. It satisfies
// domain.SchemeRepository and never changes after construction.
type Static struct {
	schemes []domain.SubsidyScheme
}

// NewStatic returns the built-in seed catalog.
func NewStatic() *Static {
	return &Static{schemes: subsidySchemes}
}

// NewStaticWith wraps an externally supplied scheme list, for synthetic
// catalogs in tests or per-country datasets.
func NewStaticWith(schemes []domain.SubsidyScheme) *Static {
	return &Static{schemes: schemes}
}

// All returns the catalog in its defined order.
func (s *Static) All() []domain.SubsidyScheme {
	return s.schemes
}
