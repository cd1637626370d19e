package transport

import "leadpilot_backend/internal/leads/domain"

// ToLeadResponse maps a domain lead to its API shape.
func ToLeadResponse(lead domain.Lead) LeadResponse {
	return LeadResponse{
		ID:                 lead.ID,
		FirstName:          lead.FirstName,
		LastName:           lead.LastName,
		Email:              lead.Email,
		Company:            lead.Company,
		Phone:              optionalString(lead.Phone),
		Title:              optionalString(lead.Title),
		LeadSource:         string(lead.Source),
		Status:             string(lead.Status),
		CreatedAt:          lead.CreatedAt,
		UpdatedAt:          lead.UpdatedAt,
		CompanySize:        lead.CompanySize,
		AnnualRevenue:      lead.AnnualRevenue,
		Budget:             lead.Budget,
		DecisionMaker:      lead.DecisionMaker,
		PainPoints:         emptyIfNil(lead.PainPoints),
		Timeline:           optionalString(string(lead.Timeline)),
		QualificationScore: lead.QualificationScore,
		Notes:              lead.Notes,
		Tags:               emptyIfNil(lead.Tags),
		LastContacted:      lead.LastContacted,
		NextFollowUp:       lead.NextFollowUp,
	}
}

// ToLeadResponses maps a slice of domain leads, preserving order.
func ToLeadResponses(leads []domain.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		out = append(out, ToLeadResponse(lead))
	}
	return out
}

// ToExportRecord maps a domain lead to its export-document shape.
func ToExportRecord(lead domain.Lead) LeadExportRecord {
	return LeadExportRecord{
		FirstName:          lead.FirstName,
		LastName:           lead.LastName,
		Email:              lead.Email,
		Company:            lead.Company,
		Phone:              optionalString(lead.Phone),
		Title:              optionalString(lead.Title),
		LeadSource:         string(lead.Source),
		Status:             string(lead.Status),
		CreatedAt:          lead.CreatedAt,
		UpdatedAt:          lead.UpdatedAt,
		CompanySize:        lead.CompanySize,
		AnnualRevenue:      lead.AnnualRevenue,
		Budget:             lead.Budget,
		DecisionMaker:      lead.DecisionMaker,
		PainPoints:         emptyIfNil(lead.PainPoints),
		Timeline:           optionalString(string(lead.Timeline)),
		QualificationScore: lead.QualificationScore,
		Notes:              lead.Notes,
		Tags:               emptyIfNil(lead.Tags),
		LastContacted:      lead.LastContacted,
		NextFollowUp:       lead.NextFollowUp,
	}
}

// ToInteractionResponse maps an interaction log entry.
func ToInteractionResponse(interaction domain.Interaction) InteractionResponse {
	return InteractionResponse{
		ID:        interaction.ID,
		Timestamp: interaction.Timestamp,
		Type:      interaction.Type,
		Details:   interaction.Details,
	}
}

// ImportRecordFromExport converts an exported lead back into an
// ingestion record, dropping the id and score so they are reassigned
// and recomputed on import.
func ImportRecordFromExport(record LeadExportRecord) LeadImportRecord {
	createdAt := record.CreatedAt
	return LeadImportRecord{
		FirstName:     record.FirstName,
		LastName:      record.LastName,
		Email:         record.Email,
		Company:       record.Company,
		Phone:         stringValue(record.Phone),
		Title:         stringValue(record.Title),
		LeadSource:    record.LeadSource,
		Status:        record.Status,
		CompanySize:   record.CompanySize,
		AnnualRevenue: record.AnnualRevenue,
		Budget:        record.Budget,
		DecisionMaker: record.DecisionMaker,
		PainPoints:    record.PainPoints,
		Timeline:      stringValue(record.Timeline),
		Notes:         record.Notes,
		Tags:          record.Tags,
		CreatedAt:     &createdAt,
		LastContacted: record.LastContacted,
		NextFollowUp:  record.NextFollowUp,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
