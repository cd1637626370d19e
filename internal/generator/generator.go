// Package generator produces synthetic B2B leads with an LLM and feeds
// them into the lead pipeline.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"leadpilot_backend/internal/leads/service"
	"leadpilot_backend/internal/leads/transport"
	"leadpilot_backend/platform/ai"
	"leadpilot_backend/platform/apperr"
	"leadpilot_backend/platform/logger"
)

// MaxBatchSize caps a single generation request.
const MaxBatchSize = 50

// Service generates synthetic leads and ingests them.
type Service struct {
	completer ai.Completer
	leads     *service.Service
	log       *logger.Logger
	leadsFile string
}

// New creates the generator service.
func New(completer ai.Completer, leads *service.Service, log *logger.Logger) *Service {
	return &Service{completer: completer, leads: leads, log: log}
}

// SetLeadsFile makes Generate persist the collection to path after
// each successful batch.
func (s *Service) SetLeadsFile(path string) {
	s.leadsFile = path
}

// Generate asks the LLM for count synthetic leads and ingests the batch
// through the normal scoring pipeline.
func (s *Service) Generate(ctx context.Context, count int) (transport.GenerateResponse, error) {
	if count < 1 || count > MaxBatchSize {
		return transport.GenerateResponse{}, apperr.Validation("count must be between 1 and 50")
	}

	records, err := s.generateRecords(ctx, count)
	if err != nil {
		return transport.GenerateResponse{}, err
	}

	result := s.leads.Import(ctx, records)

	if s.leadsFile != "" && len(result.LeadIDs) > 0 {
		if err := s.leads.SaveToFile(ctx, s.leadsFile); err != nil {
			s.log.Warn("failed to persist generated leads", "path", s.leadsFile, "error", err)
		}
	}

	return transport.GenerateResponse{
		Requested: count,
		Generated: len(records),
		LeadIDs:   result.LeadIDs,
		Skipped:   result.Skipped,
	}, nil
}

func (s *Service) generateRecords(ctx context.Context, count int) ([]transport.LeadImportRecord, error) {
	start := time.Now()
	raw, err := s.completer.Complete(ctx, systemPrompt, batchPrompt(count))
	s.log.LLMCall(s.completer.Name(), "lead_generation", float64(time.Since(start).Milliseconds()), err)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return nil, apperr.Unavailable("lead generation requires a configured LLM provider")
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "lead generation failed", err)
	}

	records, err := parseBatch(raw)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "lead generation returned unusable output", err)
	}
	return records, nil
}

// batchEnvelope matches the requested response shape; some models emit
// a bare array instead, which parseBatch also accepts.
type batchEnvelope struct {
	Leads []transport.LeadImportRecord `json:"leads"`
}

func parseBatch(raw string) ([]transport.LeadImportRecord, error) {
	cleaned := stripCodeFences(raw)

	var envelope batchEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err == nil && len(envelope.Leads) > 0 {
		return envelope.Leads, nil
	}

	var records []transport.LeadImportRecord
	if err := json.Unmarshal([]byte(cleaned), &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("empty lead batch")
	}
	return records, nil
}

// stripCodeFences removes a surrounding ```json ... ``` block if the
// model wrapped its output despite instructions.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
