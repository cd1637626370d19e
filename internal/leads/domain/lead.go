// Package domain holds the lead data model and scoring configuration.
// It has no dependencies on transport or storage concerns.
package domain

import (
	"strings"
	"time"
)

// Lead is a prospective customer contact with firmographic and
// qualification data. Optional numeric fields are pointers so that
// "unknown" is distinguishable from zero.
type Lead struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Company   string
	Phone     string
	Title     string

	Source LeadSource
	Status LeadStatus

	CompanySize   *int
	AnnualRevenue *int
	Budget        *int
	DecisionMaker bool
	PainPoints    []string
	Timeline      Timeline

	QualificationScore float64
	Notes              string
	Tags               []string

	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastContacted *time.Time
	NextFollowUp  *time.Time
}

// FullName returns the lead's display name.
func (l *Lead) FullName() string {
	return l.FirstName + " " + l.LastName
}

// Validate checks the required identity fields.
// Returns the names of missing fields, empty when valid.
func (l *Lead) Validate() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"first_name", l.FirstName},
		{"last_name", l.LastName},
		{"email", l.Email},
		{"company", l.Company},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Clone returns a deep copy, detaching slices and pointer fields so
// callers cannot mutate repository state through a returned lead.
func (l *Lead) Clone() Lead {
	out := *l
	out.PainPoints = append([]string(nil), l.PainPoints...)
	out.Tags = append([]string(nil), l.Tags...)
	out.CompanySize = clonePtr(l.CompanySize)
	out.AnnualRevenue = clonePtr(l.AnnualRevenue)
	out.Budget = clonePtr(l.Budget)
	out.LastContacted = clonePtr(l.LastContacted)
	out.NextFollowUp = clonePtr(l.NextFollowUp)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Interaction is one append-only log entry of contact with a lead.
type Interaction struct {
	ID        string
	Timestamp time.Time
	Type      string
	Details   string
}

// Interaction types that count as direct contact and refresh the
// lead's last_contacted timestamp.
const (
	InteractionEmail   = "email"
	InteractionCall    = "call"
	InteractionMeeting = "meeting"
)

// IsContactType reports whether the interaction type counts as direct contact.
func IsContactType(interactionType string) bool {
	switch interactionType {
	case InteractionEmail, InteractionCall, InteractionMeeting:
		return true
	}
	return false
}
