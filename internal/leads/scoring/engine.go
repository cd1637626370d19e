// Package scoring computes the 0-100 qualification score for a lead.
// The engine is pure: identical inputs always produce identical output,
// and nothing here touches storage or the clock.
package scoring

import (
	"math"
	"strings"

	"leadpilot_backend/internal/leads/domain"
)

// revenueBudgetRatio estimates a budget from annual revenue when no
// explicit budget is known. Fixed heuristic, not configurable.
const revenueBudgetRatio = 0.05

// Sub-score defaults when the underlying signal is unknown.
const (
	unknownCompanySizeScore = 50.0
	unknownBudgetScore      = 30.0
	unknownAuthorityScore   = 40.0
	unknownNeedScore        = 30.0
	unknownTimelineScore    = 40.0
)

// Pain-point keyword bonus parameters.
const (
	painPointScore   = 25.0
	keywordBonus     = 10.0
	keywordBonusCap  = 30.0
	needScoreCeiling = 100.0
)

// highValueKeywords boost the need score when found in pain-point text.
var highValueKeywords = []string{
	"efficiency", "cost", "revenue", "growth", "scale",
	"competition", "manual", "time", "error",
}

// Score computes the weighted qualification score for a lead.
// The result is in [0,100] and rounded to two decimals.
func Score(lead *domain.Lead, criteria domain.ScoringCriteria) float64 {
	score := CompanySizeScore(lead.CompanySize)*criteria.CompanySizeWeight +
		BudgetScore(lead.Budget, lead.AnnualRevenue)*criteria.BudgetWeight +
		AuthorityScore(lead.DecisionMaker, lead.Title)*criteria.AuthorityWeight +
		NeedScore(lead.PainPoints)*criteria.NeedWeight +
		TimelineScore(lead.Timeline)*criteria.TimelineWeight

	return round2(clamp(score))
}

// Apply writes the computed score onto the lead and derives its status.
// Status only transitions away from new; a lead that has already been
// classified keeps its status even if a later re-score crosses a
// threshold.
func Apply(lead *domain.Lead, criteria domain.ScoringCriteria) {
	lead.QualificationScore = Score(lead, criteria)

	if lead.Status == domain.StatusNew {
		if lead.QualificationScore >= criteria.QualifiedThreshold {
			lead.Status = domain.StatusQualified
		} else {
			lead.Status = domain.StatusUnqualified
		}
	}
}

// CompanySizeScore bands the employee count. Unknown or zero size
// scores the neutral default.
func CompanySizeScore(companySize *int) float64 {
	if companySize == nil || *companySize <= 0 {
		return unknownCompanySizeScore
	}

	switch size := *companySize; {
	case size >= 1000:
		return 100
	case size >= 500:
		return 85
	case size >= 100:
		return 70
	case size >= 50:
		return 55
	case size >= 10:
		return 40
	default:
		return 25
	}
}

// BudgetScore bands the stated budget. Without a budget it estimates
// one from annual revenue, a single level deep. With neither signal it
// returns the unknown default.
func BudgetScore(budget, annualRevenue *int) float64 {
	if budget != nil && *budget > 0 {
		return budgetBand(*budget)
	}

	if annualRevenue != nil && *annualRevenue > 0 {
		estimated := int(float64(*annualRevenue) * revenueBudgetRatio)
		return budgetBand(estimated)
	}

	return unknownBudgetScore
}

func budgetBand(budget int) float64 {
	switch {
	case budget >= 100_000:
		return 100
	case budget >= 50_000:
		return 80
	case budget >= 25_000:
		return 60
	case budget >= 10_000:
		return 40
	default:
		return 20
	}
}

// Authority title categories, checked in priority order.
var (
	executiveTitles = []string{"ceo", "cto", "cfo", "cmo", "president"}
	directorTitles  = []string{"director", "vp", "vice president"}
)

// AuthorityScore rates decision-making power. A confirmed decision
// maker wins outright; otherwise the title is inspected with a
// case-insensitive substring match.
func AuthorityScore(decisionMaker bool, title string) float64 {
	if decisionMaker {
		return 100
	}

	if strings.TrimSpace(title) == "" {
		return unknownAuthorityScore
	}

	titleLower := strings.ToLower(title)

	if containsAny(titleLower, executiveTitles) {
		return 95
	}
	if containsAny(titleLower, directorTitles) {
		return 80
	}
	if strings.Contains(titleLower, "manager") {
		return 65
	}
	if strings.Contains(titleLower, "senior") {
		return 50
	}

	return 35
}

// NeedScore rates urgency from identified pain points: a base of 25
// per pain point plus a capped bonus for high-value keywords found in
// the combined pain-point text.
func NeedScore(painPoints []string) float64 {
	if len(painPoints) == 0 {
		return unknownNeedScore
	}

	base := math.Min(float64(len(painPoints))*painPointScore, needScoreCeiling)

	painText := strings.ToLower(strings.Join(painPoints, " "))
	matches := 0
	for _, keyword := range highValueKeywords {
		if strings.Contains(painText, keyword) {
			matches++
		}
	}
	bonus := math.Min(float64(matches)*keywordBonus, keywordBonusCap)

	return math.Min(base+bonus, needScoreCeiling)
}

// TimelineScore rates purchase urgency. Unset or unrecognized
// timelines score the unknown default.
func TimelineScore(timeline domain.Timeline) float64 {
	switch timeline {
	case domain.TimelineImmediate:
		return 100
	case domain.TimelineThreeMonths:
		return 80
	case domain.TimelineSixMonths:
		return 60
	case domain.TimelineNextYear:
		return 30
	default:
		return unknownTimelineScore
	}
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(score, 100))
}

func round2(score float64) float64 {
	return math.Round(score*100) / 100
}
