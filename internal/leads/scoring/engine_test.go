package scoring

import (
	"testing"

	"leadpilot_backend/internal/leads/domain"
)

func intPtr(v int) *int { return &v }

func TestCompanySizeScore(t *testing.T) {
	tests := []struct {
		name string
		size *int
		want float64
	}{
		{"unknown", nil, 50},
		{"zero treated as unknown", intPtr(0), 50},
		{"negative treated as unknown", intPtr(-5), 50},
		{"micro", intPtr(3), 25},
		{"small lower bound", intPtr(10), 40},
		{"small upper bound", intPtr(49), 40},
		{"mid lower bound", intPtr(50), 55},
		{"mid upper bound", intPtr(99), 55},
		{"large lower bound", intPtr(100), 70},
		{"large upper bound", intPtr(499), 70},
		{"very large lower bound", intPtr(500), 85},
		{"very large upper bound", intPtr(999), 85},
		{"enterprise", intPtr(1000), 100},
		{"huge enterprise", intPtr(25000), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompanySizeScore(tt.size); got != tt.want {
				t.Errorf("CompanySizeScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBudgetScore(t *testing.T) {
	tests := []struct {
		name    string
		budget  *int
		revenue *int
		want    float64
	}{
		{"no signal", nil, nil, 30},
		{"zero budget, no revenue", intPtr(0), nil, 30},
		{"tiny budget", intPtr(5000), nil, 20},
		{"budget lower band", intPtr(10000), nil, 40},
		{"budget mid band", intPtr(25000), nil, 60},
		{"budget high band", intPtr(50000), nil, 80},
		{"budget top band", intPtr(100000), nil, 100},
		{"budget just below top", intPtr(99999), nil, 80},
		{"estimated from revenue", nil, intPtr(2_000_000), 100}, // 5% = 100k
		{"estimated mid band", nil, intPtr(600_000), 60},        // 5% = 30k
		{"estimated tiny", nil, intPtr(100_000), 20},            // 5% = 5k
		{"budget beats revenue", intPtr(10000), intPtr(2_000_000), 40},
		{"zero budget falls back to revenue", intPtr(0), intPtr(2_000_000), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BudgetScore(tt.budget, tt.revenue); got != tt.want {
				t.Errorf("BudgetScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthorityScore(t *testing.T) {
	tests := []struct {
		name          string
		decisionMaker bool
		title         string
		want          float64
	}{
		{"decision maker wins outright", true, "", 100},
		{"decision maker ignores title", true, "Intern", 100},
		{"blank title", false, "", 40},
		{"whitespace title", false, "   ", 40},
		{"ceo", false, "CEO", 95},
		{"cto lowercase", false, "cto", 95},
		{"director", false, "Director of Engineering", 80},
		{"vp abbreviation", false, "VP Marketing", 80},
		{"manager", false, "Product Manager", 65},
		{"senior ic", false, "Senior Engineer", 50},
		{"plain ic", false, "Analyst", 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AuthorityScore(tt.decisionMaker, tt.title); got != tt.want {
				t.Errorf("AuthorityScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthorityScoreVicePresident(t *testing.T) {
	// "Vice President" contains the executive substring "president" and
	// the executive check runs first, so it lands in the executive band.
	if got := AuthorityScore(false, "Vice President of Sales"); got != 95 {
		t.Errorf("AuthorityScore() = %v, want 95", got)
	}
}

func TestNeedScore(t *testing.T) {
	tests := []struct {
		name       string
		painPoints []string
		want       float64
	}{
		{"no pain points", nil, 30},
		{"empty slice", []string{}, 30},
		{"one plain pain point", []string{"slow onboarding"}, 25},
		{"two plain pain points", []string{"slow onboarding", "churn"}, 50},
		{"four plain pain points", []string{"a", "b", "c", "d"}, 100},
		{"five capped at base ceiling", []string{"a", "b", "c", "d", "e"}, 100},
		{"one keyword bonus", []string{"manual data entry"}, 35},
		{"two keywords in one point", []string{"manual process wastes time"}, 45},
		{"bonus capped at 30", []string{"manual cost time error efficiency growth"}, 55},
		{"total capped at 100", []string{"manual cost", "time error", "efficiency a", "growth b"}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedScore(tt.painPoints); got != tt.want {
				t.Errorf("NeedScore(%v) = %v, want %v", tt.painPoints, got, tt.want)
			}
		})
	}
}

func TestNeedScoreOrderInvariant(t *testing.T) {
	a := NeedScore([]string{"manual process", "rising cost", "slow growth"})
	b := NeedScore([]string{"slow growth", "manual process", "rising cost"})
	if a != b {
		t.Errorf("NeedScore depends on pain point order: %v vs %v", a, b)
	}
}

func TestTimelineScore(t *testing.T) {
	tests := []struct {
		name     string
		timeline domain.Timeline
		want     float64
	}{
		{"immediate", domain.TimelineImmediate, 100},
		{"three months", domain.TimelineThreeMonths, 80},
		{"six months", domain.TimelineSixMonths, 60},
		{"next year", domain.TimelineNextYear, 30},
		{"unset", "", 40},
		{"unrecognized", "someday", 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimelineScore(tt.timeline); got != tt.want {
				t.Errorf("TimelineScore(%q) = %v, want %v", tt.timeline, got, tt.want)
			}
		})
	}
}

func TestScoreWorkedExamples(t *testing.T) {
	criteria := domain.DefaultScoringCriteria()

	tests := []struct {
		name string
		lead domain.Lead
		want float64
	}{
		{
			// 100*0.25 + 100*0.30 + 100*0.20 + 70*0.15 + 100*0.10
			name: "strong enterprise lead",
			lead: domain.Lead{
				CompanySize:   intPtr(1200),
				Budget:        intPtr(150_000),
				DecisionMaker: true,
				PainPoints:    []string{"manual reporting", "high operational cost"},
				Timeline:      domain.TimelineImmediate,
			},
			want: 95.5,
		},
		{
			// every signal unknown: 50*0.25 + 30*0.30 + 40*0.20 + 30*0.15 + 40*0.10
			name: "empty lead scores the unknown baseline",
			lead: domain.Lead{},
			want: 38.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(&tt.lead, criteria); got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	criteria := domain.DefaultScoringCriteria()
	lead := domain.Lead{
		CompanySize: intPtr(250),
		Budget:      intPtr(40_000),
		Title:       "Director of Operations",
		PainPoints:  []string{"manual workflows", "scale limits"},
		Timeline:    domain.TimelineThreeMonths,
	}

	first := Score(&lead, criteria)
	for i := 0; i < 100; i++ {
		if got := Score(&lead, criteria); got != first {
			t.Fatalf("Score not deterministic: %v then %v", first, got)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	criteria := domain.DefaultScoringCriteria()
	maxed := domain.Lead{
		CompanySize:   intPtr(10_000),
		Budget:        intPtr(1_000_000),
		DecisionMaker: true,
		PainPoints:    []string{"manual cost", "time error", "efficiency", "growth"},
		Timeline:      domain.TimelineImmediate,
	}
	if got := Score(&maxed, criteria); got != 100 {
		t.Errorf("maxed lead = %v, want 100", got)
	}
}

func TestApplyStatusTransition(t *testing.T) {
	criteria := domain.DefaultScoringCriteria()

	t.Run("new lead above threshold becomes qualified", func(t *testing.T) {
		lead := domain.Lead{
			Status:        domain.StatusNew,
			CompanySize:   intPtr(1200),
			Budget:        intPtr(150_000),
			DecisionMaker: true,
			PainPoints:    []string{"manual reporting", "high cost"},
			Timeline:      domain.TimelineImmediate,
		}
		Apply(&lead, criteria)
		if lead.Status != domain.StatusQualified {
			t.Errorf("status = %v, want %v", lead.Status, domain.StatusQualified)
		}
	})

	t.Run("new lead below threshold becomes unqualified", func(t *testing.T) {
		lead := domain.Lead{Status: domain.StatusNew}
		Apply(&lead, criteria)
		if lead.Status != domain.StatusUnqualified {
			t.Errorf("status = %v, want %v", lead.Status, domain.StatusUnqualified)
		}
	})

	t.Run("classified lead keeps its status on re-score", func(t *testing.T) {
		lead := domain.Lead{
			Status:        domain.StatusContacted,
			CompanySize:   intPtr(1200),
			Budget:        intPtr(150_000),
			DecisionMaker: true,
			Timeline:      domain.TimelineImmediate,
		}
		Apply(&lead, criteria)
		if lead.Status != domain.StatusContacted {
			t.Errorf("status = %v, want %v", lead.Status, domain.StatusContacted)
		}
	})

	t.Run("unqualified stays unqualified even above threshold", func(t *testing.T) {
		lead := domain.Lead{
			Status:        domain.StatusUnqualified,
			CompanySize:   intPtr(1200),
			Budget:        intPtr(150_000),
			DecisionMaker: true,
			Timeline:      domain.TimelineImmediate,
		}
		Apply(&lead, criteria)
		if lead.Status != domain.StatusUnqualified {
			t.Errorf("status = %v, want %v", lead.Status, domain.StatusUnqualified)
		}
	})
}

func TestApplyIdempotent(t *testing.T) {
	criteria := domain.DefaultScoringCriteria()
	lead := domain.Lead{
		Status:      domain.StatusNew,
		CompanySize: intPtr(600),
		Budget:      intPtr(60_000),
		Title:       "Engineering Manager",
		Timeline:    domain.TimelineSixMonths,
	}

	Apply(&lead, criteria)
	score, status := lead.QualificationScore, lead.Status
	Apply(&lead, criteria)
	if lead.QualificationScore != score || lead.Status != status {
		t.Errorf("Apply not idempotent: (%v,%v) then (%v,%v)",
			score, status, lead.QualificationScore, lead.Status)
	}
}
