package domain

import (
	"fmt"
	"math"
)

// weightTolerance is the allowed drift when checking that scoring
// weights sum to 1.0.
const weightTolerance = 0.001

// Default qualification thresholds.
const (
	DefaultQualifiedThreshold = 70.0
	DefaultHotLeadThreshold   = 85.0
)

// ScoringCriteria configures the lead scoring weights and thresholds.
// The five weights must sum to 1.0 within tolerance; this keeps the
// weighted composite inside [0,100] by construction.
type ScoringCriteria struct {
	CompanySizeWeight  float64 `json:"company_size_weight"`
	BudgetWeight       float64 `json:"budget_weight"`
	AuthorityWeight    float64 `json:"authority_weight"`
	NeedWeight         float64 `json:"need_weight"`
	TimelineWeight     float64 `json:"timeline_weight"`
	QualifiedThreshold float64 `json:"qualified_threshold"`
	HotLeadThreshold   float64 `json:"hot_lead_threshold"`
}

// DefaultScoringCriteria returns the standard weight distribution.
func DefaultScoringCriteria() ScoringCriteria {
	return ScoringCriteria{
		CompanySizeWeight:  0.25,
		BudgetWeight:       0.30,
		AuthorityWeight:    0.20,
		NeedWeight:         0.15,
		TimelineWeight:     0.10,
		QualifiedThreshold: DefaultQualifiedThreshold,
		HotLeadThreshold:   DefaultHotLeadThreshold,
	}
}

// ValidateWeights checks that the five weights sum to 1.0 within tolerance.
func (c ScoringCriteria) ValidateWeights() error {
	total := c.CompanySizeWeight + c.BudgetWeight + c.AuthorityWeight +
		c.NeedWeight + c.TimelineWeight
	if math.Abs(total-1.0) >= weightTolerance {
		return fmt.Errorf("scoring weights must sum to 1.0, got %.4f", total)
	}
	return nil
}
