package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/solarisreal/backend/internal/domain"
	"github.com/solarisreal/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	matcher   *usecase.MatcherService
	estimator *usecase.EstimatorService
	vendors   *usecase.VendorService
}

// NewHandler creates a new HTTP handler
func NewHandler(matcher *usecase.MatcherService, estimator *usecase.EstimatorService, vendors *usecase.VendorService) *Handler {
	return &Handler{
		matcher:   matcher,
		estimator: estimator,
		vendors:   vendors,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "solarisreal-backend",
		"version": "1.0.0",
	})
}

// estimateRequest carries the raw sizing numerics from the eligibility form.
// The form layer coerces non-numeric text to zero before sending.
type estimateRequest struct {
	RoofAreaSqm          float64 `json:"roofAreaSqm"`
	AnnualConsumptionKWh float64 `json:"annualConsumptionKWh"`
	MonthlyBillUnits     float64 `json:"monthlyBillUnits"`
}

// estimateResponse is the full breakdown the results screen renders.
type estimateResponse struct {
	domain.EstimateResult
	AnnualOutputKWh  float64 `json:"annualOutputKWh"`
	AnnualSavingsINR float64 `json:"annualSavingsINR"`
}

// EstimateSubsidy sizes a system from the form numerics and returns the
// subsidy-adjusted cost breakdown plus the savings projection.
func (h *Handler) EstimateSubsidy(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error(), "details": err.Error()})
		return
	}

	systemKw := usecase.SystemSizeKw(req.RoofAreaSqm, req.AnnualConsumptionKWh)
	result := h.estimator.Estimate(systemKw)

	c.JSON(http.StatusOK, estimateResponse{
		EstimateResult:   result,
		AnnualOutputKWh:  usecase.AnnualOutputKWh(systemKw),
		AnnualSavingsINR: usecase.AnnualSavingsINR(systemKw, req.MonthlyBillUnits),
	})
}

// matchRequest is the eligibility profile plus per-request matching options.
type matchRequest struct {
	State                string                `json:"state" binding:"required"`
	ConsumerSegment      string                `json:"consumerSegment"`
	OwnsProperty         bool                  `json:"ownsProperty"`
	AnnualConsumptionKWh *float64              `json:"annualConsumptionKWh"`
	MonthlyBillUnits     *float64              `json:"monthlyBillUnits"`
	RoofAreaSqm          *float64              `json:"roofAreaSqm"`
	IsGridConnected      *bool                 `json:"isGridConnected"`
	Limit                int                   `json:"limit"`
	MinimumScore         float64               `json:"minimumScore"`
	Filters              *domain.SchemeFilters `json:"filters"`
}

// MatchSchemes ranks the scheme catalog against the submitted profile.
// An empty matches list is a normal outcome, not an error.
func (h *Handler) MatchSchemes(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error(), "details": err.Error()})
		return
	}

	profile := &domain.SubsidyUserProfile{
		State:                req.State,
		ConsumerSegment:      req.ConsumerSegment,
		OwnsProperty:         req.OwnsProperty,
		AnnualConsumptionKWh: req.AnnualConsumptionKWh,
		MonthlyBillUnits:     req.MonthlyBillUnits,
		RoofAreaSqm:          req.RoofAreaSqm,
		IsGridConnected:      req.IsGridConnected,
	}

	matches := h.matcher.Match(profile, usecase.MatchOptions{
		Limit:        req.Limit,
		MinimumScore: req.MinimumScore,
		Filters:      req.Filters,
	})

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// ListSchemes returns the full static catalog for caller enumeration.
func (h *Handler) ListSchemes(c *gin.Context) {
	schemes := h.matcher.AllSchemes()
	c.JSON(http.StatusOK, gin.H{
		"schemes": schemes,
		"count":   len(schemes),
	})
}

// SchemeFilterOptions returns the distinct facet values for filter UI.
func (h *Handler) SchemeFilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.matcher.FilterOptions())
}

// FilterSchemes applies the pre-filter step without scoring.
func (h *Handler) FilterSchemes(c *gin.Context) {
	var filters domain.SchemeFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error(), "details": err.Error()})
		return
	}

	schemes := h.matcher.Filter(&filters)
	c.JSON(http.StatusOK, gin.H{
		"schemes": schemes,
		"count":   len(schemes),
	})
}

// ListVendors returns the installer catalog, quoting each vendor against
// the optional systemKw query parameter.
func (h *Handler) ListVendors(c *gin.Context) {
	systemKw := 0.0
	if raw := c.Query("systemKw"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error(), "details": "systemKw must be numeric"})
			return
		}
		systemKw = parsed
	}

	quotes := h.vendors.Quotes(systemKw)
	c.JSON(http.StatusOK, gin.H{
		"vendors": quotes,
		"count":   len(quotes),
	})
}
