package usecase

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/solarisreal/backend/internal/domain"
)

// Score contributions per rule
const (
	segmentMatchScore  = 3.0 // profile segment is targeted by the scheme
	panIndiaScore      = 2.0 // scheme covers all of India
	exactStateScore    = 4.0 // scheme lists the profile's state
	partialStateScore  = 3.0 // a scheme state appears inside the profile state
	ownershipScore     = 1.5 // ownership required and profile owns
	gridAlignedScore   = 1.0 // grid requirement aligns with profile
	offGridPenalty     = 1.0 // off-grid scheme, grid-connected profile
	roofAreaScore      = 1.0 // minimum roof area met
	consumptionScore   = 1.0 // monthly usage at or below the scheme cap
	consumptionPenalty = 2.0 // monthly usage above the scheme cap
	tagBonus           = 0.5 // scheme tag matches segment or state
)

const defaultMatchLimit = 3

// MatcherConfig holds configuration for the matcher service
type MatcherConfig struct {
	DefaultLimit       int
	EnableDebugLogging bool
}

// MatchOptions tunes a single matching run. The zero value means "top 3,
// no score floor, no pre-filters".
type MatchOptions struct {
	Limit        int
	MinimumScore float64
	Filters      *domain.SchemeFilters
}

// MatcherService ranks the static scheme catalog against a user profile.
// The catalog is injected once and treated as immutable; every call is a
// pure function over it.
type MatcherService struct {
	schemes            []domain.SubsidyScheme
	defaultLimit       int
	enableDebugLogging bool
}

// NewMatcherService creates a matcher over the given catalog
func NewMatcherService(catalog domain.SchemeRepository, config MatcherConfig) *MatcherService {
	limit := config.DefaultLimit
	if limit <= 0 {
		limit = defaultMatchLimit
	}

	return &MatcherService{
		schemes:            catalog.All(),
		defaultLimit:       limit,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Match evaluates every catalog scheme against the profile and returns the
// surviving schemes ranked by score, highest first. Ties keep catalog order.
func (s *MatcherService) Match(profile *domain.SubsidyUserProfile, opts MatchOptions) []domain.MatchedScheme {
	limit := opts.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}

	state := normalizeState(profile.State)
	segment := normalizeConsumerSegment(profile.ConsumerSegment)
	units := monthlyUnits(profile)

	if s.enableDebugLogging {
		log.Printf("[MATCH] profile state=%q segment=%s owns=%v", state, segment, profile.OwnsProperty)
	}

	results := make([]domain.MatchedScheme, 0, len(s.schemes))
	for _, scheme := range s.schemes {
		if !schemeMatchesFilters(&scheme, opts.Filters) {
			continue
		}

		score, reasons, eligible := s.scoreScheme(&scheme, profile, state, segment, units)
		if !eligible {
			continue
		}

		score = math.Round(score*100) / 100
		if score < opts.MinimumScore {
			if s.enableDebugLogging {
				log.Printf("[MATCH] %s below minimum score (%.2f < %.2f)", scheme.ID, score, opts.MinimumScore)
			}
			continue
		}

		results = append(results, domain.MatchedScheme{
			Scheme:     scheme,
			MatchScore: score,
			Reasons:    reasons,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// MatchTop is the legacy bare-limit form of Match
func (s *MatcherService) MatchTop(profile *domain.SubsidyUserProfile, limit int) []domain.MatchedScheme {
	return s.Match(profile, MatchOptions{Limit: limit})
}

// scoreScheme runs the per-scheme rule sequence. It returns the raw score,
// the reasons in evaluation order, and whether the scheme survived every
// hard gate. Disqualification is silent: no reasons are reported for it.
func (s *MatcherService) scoreScheme(
	scheme *domain.SubsidyScheme,
	profile *domain.SubsidyUserProfile,
	state string,
	segment domain.ConsumerSegment,
	units *float64,
) (float64, []string, bool) {
	var reasons []string
	score := 0.0

	// Segment gate runs before anything else: a scheme that does not target
	// the profile's segment is irrelevant, not merely low-scoring.
	if !containsSegment(scheme.ConsumerSegments, segment) {
		s.debugDisqualify(scheme.ID, "segment mismatch")
		return 0, nil, false
	}
	score += segmentMatchScore
	reasons = append(reasons, "Matches your consumer segment")

	covScore, covReason := coverageScore(scheme, state)
	score += covScore
	if covReason != "" {
		reasons = append(reasons, covReason)
	}

	if scheme.RequiresOwnership {
		if !profile.OwnsProperty {
			s.debugDisqualify(scheme.ID, "ownership required")
			return 0, nil, false
		}
		score += ownershipScore
		reasons = append(reasons, "Requires property ownership (matched)")
	}

	if scheme.RequiresGridConnection != nil {
		hasGrid := true
		if profile.IsGridConnected != nil {
			hasGrid = *profile.IsGridConnected
		}
		switch {
		case *scheme.RequiresGridConnection && !hasGrid:
			s.debugDisqualify(scheme.ID, "grid connection required")
			return 0, nil, false
		case !*scheme.RequiresGridConnection && hasGrid:
			// Off-grid scheme for a grid-connected user: keep it, but mark
			// it as less relevant rather than dropping it.
			score -= offGridPenalty
			reasons = append(reasons, "Designed for off-grid users (may be less relevant)")
		case *scheme.RequiresGridConnection:
			score += gridAlignedScore
			reasons = append(reasons, "Needs grid connection (matched)")
		default:
			score += gridAlignedScore
			reasons = append(reasons, "Suited for off-grid users")
		}
	}

	if scheme.MinRoofAreaSqm > 0 && profile.RoofAreaSqm != nil {
		if *profile.RoofAreaSqm < scheme.MinRoofAreaSqm {
			s.debugDisqualify(scheme.ID, "insufficient roof area")
			return 0, nil, false
		}
		score += roofAreaScore
		reasons = append(reasons, fmt.Sprintf("Minimum roof area requirement met (≥ %s sq.m)", formatUnits(scheme.MinRoofAreaSqm)))
	}

	if scheme.MaxMonthlyConsumptionUnits > 0 && units != nil {
		if *units <= scheme.MaxMonthlyConsumptionUnits {
			score += consumptionScore
			reasons = append(reasons, fmt.Sprintf("Eligible for low-consumption cap (≤ %s units/month)", formatUnits(scheme.MaxMonthlyConsumptionUnits)))
		} else {
			// Over the cap lowers relevance but does not exclude: discoms
			// apply these caps unevenly and the user may still qualify.
			score -= consumptionPenalty
			reasons = append(reasons, fmt.Sprintf("Monthly usage above %s units (may be ineligible)", formatUnits(scheme.MaxMonthlyConsumptionUnits)))
		}
	}

	// Silent tag alignment bonuses
	if containsString(scheme.Tags, string(segment)) {
		score += tagBonus
	}
	if state != "" && containsString(scheme.Tags, state) {
		score += tagBonus
	}

	if s.enableDebugLogging {
		log.Printf("[MATCH] %s | score=%.2f | reasons=%v", scheme.ID, score, reasons)
	}

	return score, reasons, true
}

// coverageScore scores geography without ever disqualifying. Exactly one
// branch fires: pan-India, exact state, or partial containment.
func coverageScore(scheme *domain.SubsidyScheme, state string) (float64, string) {
	if scheme.AllIndia {
		return panIndiaScore, "Pan-India coverage"
	}

	if containsString(scheme.States, state) {
		return exactStateScore, fmt.Sprintf("Covers %s", titleState(state))
	}

	// Partial match checks each scheme state as a substring of the user's
	// state string (not the other way around). Short entries can therefore
	// match loosely; downstream behavior depends on this direction.
	for _, schemeState := range scheme.States {
		if strings.Contains(state, schemeState) {
			return partialStateScore, fmt.Sprintf("Matches region (%s)", strings.Join(scheme.States, ", "))
		}
	}

	return 0, ""
}

func (s *MatcherService) debugDisqualify(schemeID, cause string) {
	if s.enableDebugLogging {
		log.Printf("[MATCH] %s disqualified: %s", schemeID, cause)
	}
}

// AllSchemes returns the full catalog, unfiltered. The slice is a copy so
// callers cannot disturb the catalog.
func (s *MatcherService) AllSchemes() []domain.SubsidyScheme {
	out := make([]domain.SubsidyScheme, len(s.schemes))
	copy(out, s.schemes)
	return out
}

// Filter applies only the pre-filter step, without scoring, and returns the
// surviving subset in catalog order.
func (s *MatcherService) Filter(filters *domain.SchemeFilters) []domain.SubsidyScheme {
	return FilterSchemes(filters, s.schemes)
}

// FilterOptions scans the catalog for the distinct facet values callers can
// filter on.
func (s *MatcherService) FilterOptions() domain.SchemeFilterOptions {
	return CollectFilterOptions(s.schemes)
}

// FilterSchemes returns the schemes satisfying every specified filter
// dimension, preserving input order. The input slice is not mutated.
func FilterSchemes(filters *domain.SchemeFilters, schemes []domain.SubsidyScheme) []domain.SubsidyScheme {
	out := make([]domain.SubsidyScheme, 0, len(schemes))
	for _, scheme := range schemes {
		if schemeMatchesFilters(&scheme, filters) {
			out = append(out, scheme)
		}
	}
	return out
}

// schemeMatchesFilters reports whether a scheme satisfies all specified
// filter dimensions. Each dimension is any-of within itself.
func schemeMatchesFilters(scheme *domain.SubsidyScheme, filters *domain.SchemeFilters) bool {
	if filters == nil {
		return true
	}

	if len(filters.Coverage) > 0 && !containsCoverage(filters.Coverage, scheme.Coverage) {
		return false
	}

	if len(filters.ConsumerSegments) > 0 {
		if !segmentsIntersect(scheme.ConsumerSegments, filters.ConsumerSegments) {
			return false
		}
	}

	if len(filters.SubsidyTypes) > 0 && !containsString(filters.SubsidyTypes, scheme.SubsidyType) {
		return false
	}

	if len(filters.States) > 0 {
		// Pan-India schemes apply everywhere, so any states filter passes.
		if !scheme.AllIndia && !stringsIntersect(scheme.States, filters.States) {
			return false
		}
	}

	if len(filters.Tags) > 0 && !stringsIntersect(scheme.Tags, filters.Tags) {
		return false
	}

	if filters.RequiresOwnership != nil && scheme.RequiresOwnership != *filters.RequiresOwnership {
		return false
	}

	if filters.GridConnection != nil {
		if scheme.RequiresGridConnection == nil || *scheme.RequiresGridConnection != *filters.GridConnection {
			return false
		}
	}

	return true
}

// CollectFilterOptions returns the distinct facet values observed in the
// given schemes, each list sorted. The input is not mutated.
func CollectFilterOptions(schemes []domain.SubsidyScheme) domain.SchemeFilterOptions {
	coverage := map[domain.Coverage]bool{}
	states := map[string]bool{}
	segments := map[domain.ConsumerSegment]bool{}
	subsidyTypes := map[string]bool{}
	tags := map[string]bool{}

	for _, scheme := range schemes {
		coverage[scheme.Coverage] = true
		for _, state := range scheme.States {
			states[state] = true
		}
		for _, segment := range scheme.ConsumerSegments {
			segments[segment] = true
		}
		if scheme.SubsidyType != "" {
			subsidyTypes[scheme.SubsidyType] = true
		}
		for _, tag := range scheme.Tags {
			tags[tag] = true
		}
	}

	options := domain.SchemeFilterOptions{
		Coverage:         sortedCoverage(coverage),
		States:           sortedStrings(states),
		ConsumerSegments: sortedSegments(segments),
		SubsidyTypes:     sortedStrings(subsidyTypes),
		Tags:             sortedStrings(tags),
	}
	return options
}

func sortedStrings(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sortedCoverage(set map[domain.Coverage]bool) []domain.Coverage {
	out := make([]domain.Coverage, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedSegments(set map[domain.ConsumerSegment]bool) []domain.ConsumerSegment {
	out := make([]domain.ConsumerSegment, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsSegment(list []domain.ConsumerSegment, v domain.ConsumerSegment) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsCoverage(list []domain.Coverage, v domain.Coverage) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func stringsIntersect(a, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
			return true
		}
	}
	return false
}

func segmentsIntersect(a, b []domain.ConsumerSegment) bool {
	for _, v := range a {
		if containsSegment(b, v) {
			return true
		}
	}
	return false
}
