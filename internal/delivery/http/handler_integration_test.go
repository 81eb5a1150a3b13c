package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/solarisreal/backend/config"
	"github.com/solarisreal/backend/internal/domain"
	"github.com/solarisreal/backend/internal/infrastructure/catalog"
	"github.com/solarisreal/backend/internal/infrastructure/vendors"
	"github.com/solarisreal/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	exitCode := m.Run()

	os.Exit(exitCode)
}

func gridRequired(b bool) *bool { return &b }

// testSchemes is a small deterministic catalog for endpoint assertions
var testSchemes = []domain.SubsidyScheme{
	{
		ID:               "national-rooftop",
		Name:             "National Rooftop Programme",
		Administrator:    "MNRE",
		Coverage:         domain.CoverageCentral,
		AllIndia:         true,
		ConsumerSegments: []domain.ConsumerSegment{domain.SegmentResidential},
		SubsidyType:      "capital-subsidy",
		Tags:             []string{"residential"},
	},
	{
		ID:                     "delhi-rooftop",
		Name:                   "Delhi Rooftop Incentive",
		Administrator:          "Delhi SNA",
		Coverage:               domain.CoverageState,
		States:                 []string{"delhi"},
		ConsumerSegments:       []domain.ConsumerSegment{domain.SegmentResidential},
		RequiresOwnership:      true,
		RequiresGridConnection: gridRequired(true),
		SubsidyType:            "generation-incentive",
		Tags:                   []string{"delhi"},
	},
	{
		ID:               "farm-pumps",
		Name:             "Farm Pump Subsidy",
		Administrator:    "MNRE",
		Coverage:         domain.CoverageCentral,
		AllIndia:         true,
		ConsumerSegments: []domain.ConsumerSegment{domain.SegmentAgricultural},
		SubsidyType:      "capital-subsidy",
		Tags:             []string{"agricultural"},
	},
}

var testVendors = []domain.SolarVendor{
	{ID: "alpha", Name: "Alpha Solar", Rating: 4.6, BasePricePerKwINR: 60000},
	{ID: "beta", Name: "Beta Energy", Rating: 4.2, BasePricePerKwINR: 72000},
}

// setupTestRouter creates a test router with real services over synthetic
// catalogs. Rate limiting is disabled so loops in tests never throttle.
func setupTestRouter() *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"*"},
		},
		RateLimit: config.RateLimitConfig{PerIP: 0},
	}

	matcher := usecase.NewMatcherService(catalog.NewStaticWith(testSchemes), usecase.MatcherConfig{})
	estimator := usecase.NewEstimatorService(usecase.EstimatorConfig{})
	vendorService := usecase.NewVendorService(vendors.NewStaticWith(testVendors))

	handler := NewHandler(matcher, estimator, vendorService)
	return SetupRouter(cfg, handler)
}

func postJSON(t *testing.T, router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req, _ := http.NewRequest("POST", path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router := setupTestRouter()
		w := getPath(t, router, "/health")

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if response["status"] != "healthy" {
			t.Errorf("status = %v, want healthy", response["status"])
		}
		if response["service"] != "solarisreal-backend" {
			t.Errorf("service = %v, want solarisreal-backend", response["service"])
		}
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		router := setupTestRouter()
		for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
			req, _ := http.NewRequest(method, "/health", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusNotFound {
				t.Errorf("Method %s: Status = %d, want %d", method, w.Code, http.StatusNotFound)
			}
		}
	})
}

func TestEstimateEndpoint(t *testing.T) {
	t.Run("sizes from consumption and returns the breakdown", func(t *testing.T) {
		router := setupTestRouter()
		w := postJSON(t, router, "/api/v1/subsidy/estimate", `{"annualConsumptionKWh":5500}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
		}

		var response estimateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if response.SystemKw != 5 {
			t.Errorf("SystemKw = %v, want 5", response.SystemKw)
		}
		if response.GrossCost != 325000 {
			t.Errorf("GrossCost = %v, want 325000", response.GrossCost)
		}
		if response.Central != 130000 {
			t.Errorf("Central = %v, want 130000", response.Central)
		}
		if response.NetCost != 195000 {
			t.Errorf("NetCost = %v, want 195000", response.NetCost)
		}
		if response.AnnualOutputKWh != 5500 {
			t.Errorf("AnnualOutputKWh = %v, want 5500", response.AnnualOutputKWh)
		}
		if response.AnnualSavingsINR != 33000 {
			t.Errorf("AnnualSavingsINR = %v, want 33000 (5500 kWh * ₹6)", response.AnnualSavingsINR)
		}
	})

	t.Run("bill figure anchors the savings projection", func(t *testing.T) {
		router := setupTestRouter()
		w := postJSON(t, router, "/api/v1/subsidy/estimate", `{"annualConsumptionKWh":5500,"monthlyBillUnits":2000}`)

		var response estimateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.AnnualSavingsINR != 14400 {
			t.Errorf("AnnualSavingsINR = %v, want 14400 (2000 * 12 * 0.6)", response.AnnualSavingsINR)
		}
	})

	t.Run("empty form falls back to a 1kW system", func(t *testing.T) {
		router := setupTestRouter()
		w := postJSON(t, router, "/api/v1/subsidy/estimate", `{}`)

		var response estimateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.SystemKw != 1 {
			t.Errorf("SystemKw = %v, want 1", response.SystemKw)
		}
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		router := setupTestRouter()
		w := postJSON(t, router, "/api/v1/subsidy/estimate", `{"roofAreaSqm":`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

type matchResponse struct {
	Matches []domain.MatchedScheme `json:"matches"`
	Count   int                    `json:"count"`
}

func TestMatchEndpoint(t *testing.T) {
	t.Run("ranks schemes for a residential owner in Delhi", func(t *testing.T) {
		router := setupTestRouter()
		w := postJSON(t, router, "/api/v1/subsidy/match",
			`{"state":"New Delhi","consumerSegment":"residential","ownsProperty":true}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
		}

		var response matchResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if response.Count != 2 {
			t.Fatalf("Count = %d, want 2", response.Count)
		}
		// delhi-rooftop: 3 + 4 + 1.5 + 1 + 0.5 = 10; national-rooftop: 3 + 2 + 0.5 = 5.5
		if response.Matches[0].Scheme.ID != "delhi-rooftop" || response.Matches[0].MatchScore != 10 {
			t.Errorf("top match = %s (%.2f), want delhi-rooftop (10.00)",
				response.Matches[0].Scheme.ID, response.Matches[0].MatchScore)
		}
		if response.Matches[1].Scheme.ID != "national-rooftop" || response.Matches[1].MatchScore != 5.5 {
			t.Errorf("second match = %s (%.2f), want national-rooftop (5.50)",
				response.Matches[1].Scheme.ID, response.Matches[1].MatchScore)
		}
	})

	t.Run("tenant never sees ownership-gated schemes", func(t *testing.T) {
		router := setupTestRouter()
		w := postJSON(t, router, "/api/v1/subsidy/match",
			`{"state":"delhi","consumerSegment":"residential","ownsProperty":false}`)

		var response matchResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		for _, match := range response.Matches {
			if match.Scheme.RequiresOwnership {
				t.Errorf("tenant received ownership-gated scheme %s", match.Scheme.ID)
			}
		}
	})

	t.Run("no eligible schemes is an empty list, not an error", func(t *testing.T) {
		router := setupTestRouter()
		w := postJSON(t, router, "/api/v1/subsidy/match",
			`{"state":"delhi","consumerSegment":"community","ownsProperty":true}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		var response matchResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Count != 0 || len(response.Matches) != 0 {
			t.Errorf("response = %+v, want empty matches", response)
		}
	})

	t.Run("limit and filters pass through to the matcher", func(t *testing.T) {
		router := setupTestRouter()
		w := postJSON(t, router, "/api/v1/subsidy/match",
			`{"state":"delhi","consumerSegment":"residential","ownsProperty":true,"limit":1,"filters":{"coverage":["central"]}}`)

		var response matchResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Count != 1 || response.Matches[0].Scheme.ID != "national-rooftop" {
			t.Errorf("response = %+v, want only national-rooftop", response)
		}
	})

	t.Run("missing state returns 400", func(t *testing.T) {
		router := setupTestRouter()
		w := postJSON(t, router, "/api/v1/subsidy/match", `{"consumerSegment":"residential"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestSchemeEndpoints(t *testing.T) {
	t.Run("lists the full catalog", func(t *testing.T) {
		router := setupTestRouter()
		w := getPath(t, router, "/api/v1/schemes")

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		var response struct {
			Schemes []domain.SubsidyScheme `json:"schemes"`
			Count   int                    `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Count != len(testSchemes) {
			t.Errorf("Count = %d, want %d", response.Count, len(testSchemes))
		}
	})

	t.Run("returns distinct filter options", func(t *testing.T) {
		router := setupTestRouter()
		w := getPath(t, router, "/api/v1/schemes/options")

		var options domain.SchemeFilterOptions
		if err := json.Unmarshal(w.Body.Bytes(), &options); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(options.Coverage) != 2 {
			t.Errorf("Coverage = %v, want central and state", options.Coverage)
		}
		if len(options.States) != 1 || options.States[0] != "delhi" {
			t.Errorf("States = %v, want [delhi]", options.States)
		}
	})

	t.Run("filters the catalog without scoring", func(t *testing.T) {
		router := setupTestRouter()
		w := postJSON(t, router, "/api/v1/schemes/filter", `{"subsidyTypes":["generation-incentive"]}`)

		var response struct {
			Schemes []domain.SubsidyScheme `json:"schemes"`
			Count   int                    `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Count != 1 || response.Schemes[0].ID != "delhi-rooftop" {
			t.Errorf("response = %+v, want only delhi-rooftop", response)
		}
	})
}

func TestVendorsEndpoint(t *testing.T) {
	t.Run("quotes vendors against the system size", func(t *testing.T) {
		router := setupTestRouter()
		w := getPath(t, router, "/api/v1/vendors?systemKw=3")

		var response struct {
			Vendors []domain.VendorQuote `json:"vendors"`
			Count   int                  `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Count != 2 {
			t.Fatalf("Count = %d, want 2", response.Count)
		}
		if response.Vendors[0].EstimatedPriceINR != 180000 {
			t.Errorf("alpha quote = %v, want 180000", response.Vendors[0].EstimatedPriceINR)
		}
	})

	t.Run("works without a system size", func(t *testing.T) {
		router := setupTestRouter()
		w := getPath(t, router, "/api/v1/vendors")
		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("rejects a non-numeric system size", func(t *testing.T) {
		router := setupTestRouter()
		w := getPath(t, router, "/api/v1/vendors?systemKw=five")
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
