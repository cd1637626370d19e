package domain

import "testing"

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name     string
		criteria ScoringCriteria
		wantErr  bool
	}{
		{"defaults are valid", DefaultScoringCriteria(), false},
		{
			"exact sum",
			ScoringCriteria{CompanySizeWeight: 0.2, BudgetWeight: 0.2, AuthorityWeight: 0.2, NeedWeight: 0.2, TimelineWeight: 0.2},
			false,
		},
		{
			"within tolerance",
			ScoringCriteria{CompanySizeWeight: 0.2005, BudgetWeight: 0.2, AuthorityWeight: 0.2, NeedWeight: 0.2, TimelineWeight: 0.2},
			false,
		},
		{
			"sum too low",
			ScoringCriteria{CompanySizeWeight: 0.2, BudgetWeight: 0.2, AuthorityWeight: 0.2, NeedWeight: 0.2, TimelineWeight: 0.1},
			true,
		},
		{
			"sum too high",
			ScoringCriteria{CompanySizeWeight: 0.4, BudgetWeight: 0.3, AuthorityWeight: 0.2, NeedWeight: 0.15, TimelineWeight: 0.1},
			true,
		},
		{"all zero", ScoringCriteria{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.ValidateWeights()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWeights() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLeadValidate(t *testing.T) {
	lead := Lead{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Company: "Analytical Engines"}
	if missing := lead.Validate(); len(missing) != 0 {
		t.Errorf("Validate() = %v, want empty", missing)
	}

	empty := Lead{FirstName: "  "}
	missing := empty.Validate()
	if len(missing) != 4 {
		t.Errorf("Validate() = %v, want all four required fields", missing)
	}
}

func TestLeadClone(t *testing.T) {
	size := 100
	lead := Lead{
		ID:          "l1",
		CompanySize: &size,
		PainPoints:  []string{"manual work"},
		Tags:        []string{"demo"},
	}

	clone := lead.Clone()
	clone.PainPoints[0] = "changed"
	*clone.CompanySize = 999
	clone.Tags = append(clone.Tags, "extra")

	if lead.PainPoints[0] != "manual work" {
		t.Error("Clone shares pain points slice")
	}
	if *lead.CompanySize != 100 {
		t.Error("Clone shares company size pointer")
	}
	if len(lead.Tags) != 1 {
		t.Error("Clone shares tags slice")
	}
}

func TestIsContactType(t *testing.T) {
	for _, contact := range []string{InteractionEmail, InteractionCall, InteractionMeeting} {
		if !IsContactType(contact) {
			t.Errorf("IsContactType(%q) = false, want true", contact)
		}
	}
	if IsContactType("note") {
		t.Error(`IsContactType("note") = true, want false`)
	}
}
