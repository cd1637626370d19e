// Package transport defines the wire-level request and response shapes
// for the leads API. Field names are wire-stable snake_case, matching
// the exported JSON document format.
package transport

import (
	"time"

	"leadpilot_backend/internal/leads/domain"
)

// CreateLeadRequest creates a single lead.
type CreateLeadRequest struct {
	FirstName     string   `json:"first_name" validate:"required,min=1,max=100"`
	LastName      string   `json:"last_name" validate:"required,min=1,max=100"`
	Email         string   `json:"email" validate:"required,email"`
	Company       string   `json:"company" validate:"required,min=1,max=200"`
	Phone         string   `json:"phone,omitempty" validate:"omitempty,max=30"`
	Title         string   `json:"title,omitempty" validate:"omitempty,max=150"`
	LeadSource    string   `json:"lead_source,omitempty" validate:"omitempty,oneof=website linkedin email_campaign referral cold_outreach trade_show webinar other"`
	Status        string   `json:"status,omitempty" validate:"omitempty,oneof=new qualified contacted meeting_scheduled proposal_sent closed_won closed_lost unqualified"`
	CompanySize   *int     `json:"company_size,omitempty" validate:"omitempty,min=0"`
	AnnualRevenue *int     `json:"annual_revenue,omitempty" validate:"omitempty,min=0"`
	Budget        *int     `json:"budget,omitempty" validate:"omitempty,min=0"`
	DecisionMaker bool     `json:"decision_maker,omitempty"`
	PainPoints    []string `json:"pain_points,omitempty" validate:"max=20,dive,max=300"`
	Timeline      string   `json:"timeline,omitempty" validate:"omitempty,max=50"`
	Notes         string   `json:"notes,omitempty" validate:"max=4000"`
	Tags          []string `json:"tags,omitempty" validate:"max=20,dive,max=100"`
}

// UpdateLeadRequest partially updates a lead. Absent fields are left
// untouched; slice fields replace the stored value when present.
type UpdateLeadRequest struct {
	FirstName     *string   `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName      *string   `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email         *string   `json:"email,omitempty" validate:"omitempty,email"`
	Company       *string   `json:"company,omitempty" validate:"omitempty,min=1,max=200"`
	Phone         *string   `json:"phone,omitempty" validate:"omitempty,max=30"`
	Title         *string   `json:"title,omitempty" validate:"omitempty,max=150"`
	LeadSource    *string   `json:"lead_source,omitempty" validate:"omitempty,oneof=website linkedin email_campaign referral cold_outreach trade_show webinar other"`
	Status        *string   `json:"status,omitempty" validate:"omitempty,oneof=new qualified contacted meeting_scheduled proposal_sent closed_won closed_lost unqualified"`
	CompanySize   *int      `json:"company_size,omitempty" validate:"omitempty,min=0"`
	AnnualRevenue *int      `json:"annual_revenue,omitempty" validate:"omitempty,min=0"`
	Budget        *int      `json:"budget,omitempty" validate:"omitempty,min=0"`
	DecisionMaker *bool     `json:"decision_maker,omitempty"`
	PainPoints    *[]string `json:"pain_points,omitempty" validate:"omitempty,max=20,dive,max=300"`
	Timeline      *string   `json:"timeline,omitempty" validate:"omitempty,max=50"`
	Notes         *string   `json:"notes,omitempty" validate:"omitempty,max=4000"`
	Tags          *[]string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=100"`
	NextFollowUp  *time.Time `json:"next_follow_up,omitempty"`
}

// LeadResponse is the full lead snapshot returned by the API.
type LeadResponse struct {
	ID                 string     `json:"id"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	Email              string     `json:"email"`
	Company            string     `json:"company"`
	Phone              *string    `json:"phone"`
	Title              *string    `json:"title"`
	LeadSource         string     `json:"lead_source"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	CompanySize        *int       `json:"company_size"`
	AnnualRevenue      *int       `json:"annual_revenue"`
	Budget             *int       `json:"budget"`
	DecisionMaker      bool       `json:"decision_maker"`
	PainPoints         []string   `json:"pain_points"`
	Timeline           *string    `json:"timeline"`
	QualificationScore float64    `json:"qualification_score"`
	Notes              string     `json:"notes"`
	Tags               []string   `json:"tags"`
	LastContacted      *time.Time `json:"last_contacted"`
	NextFollowUp       *time.Time `json:"next_follow_up"`
}

// LeadListResponse wraps a list of leads.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Total int            `json:"total"`
}

// AddInteractionRequest logs an interaction with a lead.
type AddInteractionRequest struct {
	Type    string `json:"type" validate:"required,min=1,max=50"`
	Details string `json:"details,omitempty" validate:"max=4000"`
}

// InteractionResponse is one interaction log entry.
type InteractionResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Details   string    `json:"details"`
}

// UpdateCriteriaRequest replaces the scoring criteria and re-scores
// every lead. Weights must sum to 1.0.
type UpdateCriteriaRequest struct {
	CompanySizeWeight  float64 `json:"company_size_weight" validate:"min=0,max=1"`
	BudgetWeight       float64 `json:"budget_weight" validate:"min=0,max=1"`
	AuthorityWeight    float64 `json:"authority_weight" validate:"min=0,max=1"`
	NeedWeight         float64 `json:"need_weight" validate:"min=0,max=1"`
	TimelineWeight     float64 `json:"timeline_weight" validate:"min=0,max=1"`
	QualifiedThreshold float64 `json:"qualified_threshold" validate:"min=0,max=100"`
	HotLeadThreshold   float64 `json:"hot_lead_threshold" validate:"min=0,max=100"`
}

// Criteria converts the request to the domain type.
func (r UpdateCriteriaRequest) Criteria() domain.ScoringCriteria {
	return domain.ScoringCriteria{
		CompanySizeWeight:  r.CompanySizeWeight,
		BudgetWeight:       r.BudgetWeight,
		AuthorityWeight:    r.AuthorityWeight,
		NeedWeight:         r.NeedWeight,
		TimelineWeight:     r.TimelineWeight,
		QualifiedThreshold: r.QualifiedThreshold,
		HotLeadThreshold:   r.HotLeadThreshold,
	}
}

// PipelineSummaryResponse aggregates the pipeline. When the repository
// is empty only total_leads is present.
type PipelineSummaryResponse struct {
	TotalLeads        int            `json:"total_leads"`
	QualifiedLeads    *int           `json:"qualified_leads,omitempty"`
	HotLeads          *int           `json:"hot_leads,omitempty"`
	QualificationRate *float64       `json:"qualification_rate,omitempty"`
	AverageScore      *float64       `json:"average_score,omitempty"`
	StatusBreakdown   map[string]int `json:"status_breakdown,omitempty"`
}

// ExportDocument is the persisted/exported JSON shape.
type ExportDocument struct {
	Leads           map[string]LeadExportRecord `json:"leads"`
	ScoringCriteria domain.ScoringCriteria      `json:"scoring_criteria"`
	ExportTimestamp time.Time                   `json:"export_timestamp"`
}

// LeadExportRecord is one lead in the export document.
type LeadExportRecord struct {
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	Email              string     `json:"email"`
	Company            string     `json:"company"`
	Phone              *string    `json:"phone"`
	Title              *string    `json:"title"`
	LeadSource         string     `json:"lead_source"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	CompanySize        *int       `json:"company_size"`
	AnnualRevenue      *int       `json:"annual_revenue"`
	Budget             *int       `json:"budget"`
	DecisionMaker      bool       `json:"decision_maker"`
	PainPoints         []string   `json:"pain_points"`
	Timeline           *string    `json:"timeline"`
	QualificationScore float64    `json:"qualification_score"`
	Notes              string     `json:"notes"`
	Tags               []string   `json:"tags"`
	LastContacted      *time.Time `json:"last_contacted"`
	NextFollowUp       *time.Time `json:"next_follow_up"`
}

// LeadImportRecord is one record of a bulk ingestion batch: the export
// field set minus id and score. Source and status default to "other"
// and "new" when absent.
type LeadImportRecord struct {
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Company       string     `json:"company"`
	Phone         string     `json:"phone,omitempty"`
	Title         string     `json:"title,omitempty"`
	LeadSource    string     `json:"lead_source,omitempty"`
	Status        string     `json:"status,omitempty"`
	CompanySize   *int       `json:"company_size,omitempty"`
	AnnualRevenue *int       `json:"annual_revenue,omitempty"`
	Budget        *int       `json:"budget,omitempty"`
	DecisionMaker bool       `json:"decision_maker,omitempty"`
	PainPoints    []string   `json:"pain_points,omitempty"`
	Timeline      string     `json:"timeline,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	LastContacted *time.Time `json:"last_contacted,omitempty"`
	NextFollowUp  *time.Time `json:"next_follow_up,omitempty"`
}

// ImportError reports one skipped record of a bulk ingestion batch.
type ImportError struct {
	Index int    `json:"index"`
	Email string `json:"email,omitempty"`
	Error string `json:"error"`
}

// ImportResult summarizes a bulk ingestion batch.
type ImportResult struct {
	LeadIDs []string      `json:"lead_ids"`
	Skipped []ImportError `json:"skipped,omitempty"`
}

// GenerateRequest asks the synthetic generator for a batch of leads.
type GenerateRequest struct {
	Count int `json:"count" validate:"required,min=1,max=50"`
}

// GenerateResponse reports the generated and ingested batch.
type GenerateResponse struct {
	Requested int           `json:"requested"`
	Generated int           `json:"generated"`
	LeadIDs   []string      `json:"lead_ids"`
	Skipped   []ImportError `json:"skipped,omitempty"`
}

// ChatRequest is a natural-language question about the lead database.
type ChatRequest struct {
	Query string `json:"query" validate:"required,min=1,max=4000"`
}

// ChatResponse carries the analyzer's answer. Source is "local" when
// the query was answered without the LLM.
type ChatResponse struct {
	Answer string `json:"answer"`
	Source string `json:"source"`
}
