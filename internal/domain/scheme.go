package domain

// Coverage is the geographic/administrative scope tag of a scheme
type Coverage string

const (
	CoverageCentral Coverage = "central"
	CoverageState   Coverage = "state"
	CoverageCSR     Coverage = "csr"
)

// ConsumerSegment classifies the end user for scheme targeting
type ConsumerSegment string

const (
	SegmentResidential  ConsumerSegment = "residential"
	SegmentAgricultural ConsumerSegment = "agricultural"
	SegmentCommunity    ConsumerSegment = "community"
)

// SubsidyScheme is a government/CSR subsidy programme record in the static
// catalog. Catalog entries are created at build time and never mutated.
type SubsidyScheme struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Administrator string   `json:"administrator"`
	Coverage      Coverage `json:"coverage"`

	// AllIndia marks pan-national coverage; when false, States lists the
	// lowercase state names the scheme applies to.
	AllIndia bool     `json:"allIndia"`
	States   []string `json:"states,omitempty"`

	ConsumerSegments []ConsumerSegment `json:"consumerSegments"`

	// Eligibility constraints. Zero means "not set" for the numeric fields,
	// matching catalog entries that omit them. RequiresGridConnection is a
	// tri-state: nil (no constraint), true (grid only), false (off-grid only).
	RequiresOwnership          bool    `json:"requiresOwnership,omitempty"`
	RequiresGridConnection     *bool   `json:"requiresGridConnection,omitempty"`
	MinRoofAreaSqm             float64 `json:"minRoofAreaSqm,omitempty"`
	MaxMonthlyConsumptionUnits float64 `json:"maxMonthlyConsumptionUnits,omitempty"`

	// Descriptive fields, never used in scoring.
	SubsidyType        string `json:"subsidyType"`
	Benefit            string `json:"benefit"`
	ApplicationProcess string `json:"applicationProcess"`
	ApplicationURL     string `json:"applicationUrl,omitempty"`
	Timeline           string `json:"timeline,omitempty"`
	VendorInfo         string `json:"vendorInfo,omitempty"`
	Notes              string `json:"notes,omitempty"`

	// Tags are free-form lowercase keywords used for small scoring bonuses.
	Tags []string `json:"tags,omitempty"`
}

// SubsidyUserProfile is built per request from form input. Optional numerics
// are pointers so an absent field is distinguishable from an explicit zero.
type SubsidyUserProfile struct {
	State                string   `json:"state"`
	ConsumerSegment      string   `json:"consumerSegment"`
	OwnsProperty         bool     `json:"ownsProperty"`
	AnnualConsumptionKWh *float64 `json:"annualConsumptionKWh,omitempty"`
	MonthlyBillUnits     *float64 `json:"monthlyBillUnits,omitempty"`
	RoofAreaSqm          *float64 `json:"roofAreaSqm,omitempty"`
	IsGridConnected      *bool    `json:"isGridConnected,omitempty"`
}

// MatchedScheme pairs a scheme with its computed score and the ordered list
// of human-readable reasons. Reason order follows rule evaluation order.
type MatchedScheme struct {
	Scheme     SubsidyScheme `json:"scheme"`
	MatchScore float64       `json:"matchScore"`
	Reasons    []string      `json:"reasons"`
}

// SchemeFilters narrows the catalog before any scoring happens. Each
// dimension is any-of within itself; dimensions combine with AND. Nil/empty
// dimensions are unconstrained.
type SchemeFilters struct {
	Coverage          []Coverage        `json:"coverage,omitempty"`
	ConsumerSegments  []ConsumerSegment `json:"consumerSegments,omitempty"`
	SubsidyTypes      []string          `json:"subsidyTypes,omitempty"`
	States            []string          `json:"states,omitempty"`
	Tags              []string          `json:"tags,omitempty"`
	RequiresOwnership *bool             `json:"requiresOwnership,omitempty"`
	GridConnection    *bool             `json:"gridConnection,omitempty"`
}

// SchemeFilterOptions lists the distinct facet values observed in a scheme
// list, for populating filter-selection UI.
type SchemeFilterOptions struct {
	Coverage         []Coverage        `json:"coverage"`
	States           []string          `json:"states"`
	ConsumerSegments []ConsumerSegment `json:"consumerSegments"`
	SubsidyTypes     []string          `json:"subsidyTypes"`
	Tags             []string          `json:"tags"`
}

// SchemeRepository supplies the read-only scheme catalog. Implementations
// must return stable data for the lifetime of the process.
type SchemeRepository interface {
	All() []SubsidyScheme
}
