package service

import (
	"context"
	"encoding/json"
	"os"
	"sort"

	"leadpilot_backend/internal/leads/domain"
	"leadpilot_backend/internal/leads/transport"
	"leadpilot_backend/platform/apperr"
)

// Export returns the full lead collection keyed by id, together with
// the active criteria and an export timestamp.
func (s *Service) Export(ctx context.Context) transport.ExportDocument {
	leads := s.store.All()
	records := make(map[string]transport.LeadExportRecord, len(leads))
	for _, lead := range leads {
		records[lead.ID] = transport.ToExportRecord(lead)
	}
	return transport.ExportDocument{
		Leads:           records,
		ScoringCriteria: s.Criteria(),
		ExportTimestamp: s.clock.Now(),
	}
}

// Import ingests a batch of lead records. Records that fail validation
// or collide on email are skipped and reported; the rest are scored
// and stored.
func (s *Service) Import(ctx context.Context, records []transport.LeadImportRecord) transport.ImportResult {
	result := transport.ImportResult{LeadIDs: []string{}}

	for i, record := range records {
		lead := s.leadFromImport(record)
		resp, err := s.insert(ctx, lead)
		if err != nil {
			if s.log != nil {
				s.log.Warn("import record skipped",
					"index", i, "email", record.Email, "error", err)
			}
			result.Skipped = append(result.Skipped, transport.ImportError{
				Index: i,
				Email: record.Email,
				Error: err.Error(),
			})
			continue
		}
		result.LeadIDs = append(result.LeadIDs, resp.ID)
	}

	return result
}

func (s *Service) leadFromImport(record transport.LeadImportRecord) domain.Lead {
	lead := domain.Lead{
		ID:            s.idgen.NewID(),
		FirstName:     record.FirstName,
		LastName:      record.LastName,
		Email:         record.Email,
		Company:       record.Company,
		Phone:         record.Phone,
		Title:         record.Title,
		Source:        domain.SourceOther,
		Status:        domain.StatusNew,
		CompanySize:   record.CompanySize,
		AnnualRevenue: record.AnnualRevenue,
		Budget:        record.Budget,
		DecisionMaker: record.DecisionMaker,
		PainPoints:    record.PainPoints,
		Timeline:      domain.Timeline(record.Timeline),
		Notes:         record.Notes,
		Tags:          record.Tags,
		LastContacted: record.LastContacted,
		NextFollowUp:  record.NextFollowUp,
	}
	if record.LeadSource != "" {
		lead.Source = domain.LeadSource(record.LeadSource)
	}
	if record.Status != "" {
		lead.Status = domain.LeadStatus(record.Status)
	}

	now := s.clock.Now()
	lead.CreatedAt = now
	if record.CreatedAt != nil {
		lead.CreatedAt = *record.CreatedAt
	}
	lead.UpdatedAt = now

	return lead
}

// ImportFromDocument restores a previously exported document: the
// criteria first (when their weights are valid), then every lead in
// original creation order so ids are reassigned deterministically.
func (s *Service) ImportFromDocument(ctx context.Context, doc transport.ExportDocument) transport.ImportResult {
	if err := doc.ScoringCriteria.ValidateWeights(); err == nil {
		s.criteriaMu.Lock()
		s.criteria = doc.ScoringCriteria
		s.criteriaMu.Unlock()
	} else if s.log != nil {
		s.log.Warn("import document carries invalid scoring criteria, keeping current",
			"error", err)
	}

	records := make([]transport.LeadImportRecord, 0, len(doc.Leads))
	for _, record := range doc.Leads {
		records = append(records, transport.ImportRecordFromExport(record))
	}
	sort.Slice(records, func(i, j int) bool {
		ri, rj := records[i], records[j]
		if ri.CreatedAt == nil || rj.CreatedAt == nil {
			return ri.Email < rj.Email
		}
		if ri.CreatedAt.Equal(*rj.CreatedAt) {
			return ri.Email < rj.Email
		}
		return ri.CreatedAt.Before(*rj.CreatedAt)
	})

	return s.Import(ctx, records)
}

// SaveToFile writes the export document to path as indented JSON.
func (s *Service) SaveToFile(ctx context.Context, path string) error {
	doc := s.Export(ctx)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "encode export document", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperr.Wrap(apperr.KindInternal, "write export document", err)
	}
	if s.log != nil {
		s.log.Info("leads saved", "path", path, "count", len(doc.Leads))
	}
	return nil
}

// LoadFromFile reads an export document from path and ingests it.
func (s *Service) LoadFromFile(ctx context.Context, path string) (transport.ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return transport.ImportResult{}, apperr.Wrap(apperr.KindBadRequest, "read export document", err)
	}
	var doc transport.ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return transport.ImportResult{}, apperr.Wrap(apperr.KindBadRequest, "decode export document", err)
	}
	result := s.ImportFromDocument(ctx, doc)
	if s.log != nil {
		s.log.Info("leads loaded", "path", path,
			"imported", len(result.LeadIDs), "skipped", len(result.Skipped))
	}
	return result, nil
}

// Snapshot returns every lead as an export record, in insertion order.
// Used by the chat analyzer to build its context prompt.
func (s *Service) Snapshot(ctx context.Context) []transport.LeadExportRecord {
	leads := s.store.All()
	records := make([]transport.LeadExportRecord, 0, len(leads))
	for _, lead := range leads {
		records = append(records, transport.ToExportRecord(lead))
	}
	return records
}
