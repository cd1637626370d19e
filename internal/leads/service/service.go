// Package service orchestrates lead CRUD, scoring, and reporting over
// the in-memory repository.
package service

import (
	"context"
	"math"
	"strings"
	"sync"

	"leadpilot_backend/internal/events"
	"leadpilot_backend/internal/leads/domain"
	"leadpilot_backend/internal/leads/repository"
	"leadpilot_backend/internal/leads/scoring"
	"leadpilot_backend/internal/leads/transport"
	"leadpilot_backend/platform/apperr"
	"leadpilot_backend/platform/logger"
	"leadpilot_backend/platform/phone"
	"leadpilot_backend/platform/sanitize"
)

const msgLeadNotFound = "lead not found"

// Service owns the lead collection and the active scoring criteria.
type Service struct {
	store *repository.Store
	bus   events.Bus
	log   *logger.Logger
	clock domain.Clock
	idgen domain.IDGenerator

	criteriaMu sync.RWMutex
	criteria   domain.ScoringCriteria
}

// New creates the lead service with the system clock and UUID ids.
// Fails when the criteria weights do not sum to 1.0.
func New(store *repository.Store, criteria domain.ScoringCriteria, bus events.Bus, log *logger.Logger) (*Service, error) {
	return NewWithDeps(store, criteria, bus, log, domain.SystemClock{}, domain.UUIDGenerator{})
}

// NewWithDeps creates the lead service with an injected clock and id
// generator, keeping scoring and timestamps deterministic in tests.
func NewWithDeps(store *repository.Store, criteria domain.ScoringCriteria, bus events.Bus, log *logger.Logger, clock domain.Clock, idgen domain.IDGenerator) (*Service, error) {
	if err := criteria.ValidateWeights(); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid scoring criteria", err)
	}
	return &Service{
		store:    store,
		bus:      bus,
		log:      log,
		clock:    clock,
		idgen:    idgen,
		criteria: criteria,
	}, nil
}

// Criteria returns a snapshot of the active scoring criteria.
func (s *Service) Criteria() domain.ScoringCriteria {
	s.criteriaMu.RLock()
	defer s.criteriaMu.RUnlock()
	return s.criteria
}

// Add validates, scores, and stores a new lead. Returns the stored
// snapshot including its assigned id and computed score.
func (s *Service) Add(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	lead := domain.Lead{
		ID:            s.idgen.NewID(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Company:       req.Company,
		Phone:         phone.NormalizeE164(req.Phone),
		Title:         req.Title,
		Source:        domain.SourceOther,
		Status:        domain.StatusNew,
		CompanySize:   req.CompanySize,
		AnnualRevenue: req.AnnualRevenue,
		Budget:        req.Budget,
		DecisionMaker: req.DecisionMaker,
		PainPoints:    req.PainPoints,
		Timeline:      domain.Timeline(req.Timeline),
		Notes:         sanitize.Text(req.Notes),
		Tags:          req.Tags,
	}
	if req.LeadSource != "" {
		lead.Source = domain.LeadSource(req.LeadSource)
	}
	if req.Status != "" {
		lead.Status = domain.LeadStatus(req.Status)
	}

	now := s.clock.Now()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	return s.insert(ctx, lead)
}

// insert performs validation, scoring, and storage for an already
// constructed lead. Used by Add and by bulk ingestion.
func (s *Service) insert(ctx context.Context, lead domain.Lead) (transport.LeadResponse, error) {
	if missing := lead.Validate(); len(missing) > 0 {
		return transport.LeadResponse{}, apperr.Validation("lead must have first_name, last_name, email, and company").WithDetails(missing)
	}
	if !lead.Source.Valid() {
		return transport.LeadResponse{}, apperr.Validation("unknown lead_source: " + string(lead.Source))
	}
	if !lead.Status.Valid() {
		return transport.LeadResponse{}, apperr.Validation("unknown status: " + string(lead.Status))
	}

	scoring.Apply(&lead, s.Criteria())

	if err := s.store.Insert(&lead); err != nil {
		return transport.LeadResponse{}, err
	}

	if s.bus != nil {
		s.bus.Publish(ctx, events.LeadCreated{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    lead.ID,
			Email:     lead.Email,
			Company:   lead.Company,
			Score:     lead.QualificationScore,
			Status:    string(lead.Status),
		})
	}

	return transport.ToLeadResponse(lead), nil
}

// Get returns a lead by id.
func (s *Service) Get(ctx context.Context, id string) (transport.LeadResponse, error) {
	lead, ok := s.store.Get(id)
	if !ok {
		return transport.LeadResponse{}, apperr.NotFound(msgLeadNotFound)
	}
	return transport.ToLeadResponse(lead), nil
}

// Update applies a partial update. When any qualification-relevant
// field changes (company_size, annual_revenue, budget, decision_maker,
// timeline, pain_points) the lead is re-scored.
func (s *Service) Update(ctx context.Context, id string, req transport.UpdateLeadRequest) (transport.LeadResponse, error) {
	criteria := s.Criteria()

	var oldScore, newScore float64
	rescored := false

	apply := func(lead *domain.Lead) {
		if req.FirstName != nil {
			lead.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			lead.LastName = *req.LastName
		}
		if req.Email != nil {
			lead.Email = *req.Email
		}
		if req.Company != nil {
			lead.Company = *req.Company
		}
		if req.Phone != nil {
			lead.Phone = phone.NormalizeE164(*req.Phone)
		}
		if req.Title != nil {
			lead.Title = *req.Title
		}
		if req.LeadSource != nil {
			lead.Source = domain.LeadSource(*req.LeadSource)
		}
		if req.Status != nil {
			lead.Status = domain.LeadStatus(*req.Status)
		}
		if req.Notes != nil {
			lead.Notes = sanitize.Text(*req.Notes)
		}
		if req.Tags != nil {
			lead.Tags = append([]string(nil), (*req.Tags)...)
		}
		if req.NextFollowUp != nil {
			ts := *req.NextFollowUp
			lead.NextFollowUp = &ts
		}

		// Explicit trigger set: only these fields cause a re-score.
		trigger := false
		if req.CompanySize != nil {
			lead.CompanySize = req.CompanySize
			trigger = true
		}
		if req.AnnualRevenue != nil {
			lead.AnnualRevenue = req.AnnualRevenue
			trigger = true
		}
		if req.Budget != nil {
			lead.Budget = req.Budget
			trigger = true
		}
		if req.DecisionMaker != nil {
			lead.DecisionMaker = *req.DecisionMaker
			trigger = true
		}
		if req.Timeline != nil {
			lead.Timeline = domain.Timeline(*req.Timeline)
			trigger = true
		}
		if req.PainPoints != nil {
			lead.PainPoints = append([]string(nil), (*req.PainPoints)...)
			trigger = true
		}

		lead.UpdatedAt = s.clock.Now()

		if trigger {
			oldScore = lead.QualificationScore
			scoring.Apply(lead, criteria)
			newScore = lead.QualificationScore
			rescored = true
		}
	}

	if req.Email != nil {
		if err := s.store.UpdateEmail(id, *req.Email, apply); err != nil {
			return transport.LeadResponse{}, err
		}
	} else if !s.store.Update(id, apply) {
		return transport.LeadResponse{}, apperr.NotFound(msgLeadNotFound)
	}

	if rescored && oldScore != newScore && s.bus != nil {
		s.bus.Publish(ctx, events.LeadRescored{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    id,
			OldScore:  oldScore,
			NewScore:  newScore,
		})
	}

	lead, _ := s.store.Get(id)
	return transport.ToLeadResponse(lead), nil
}

// Delete removes a lead and its interaction log.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.store.Delete(id) {
		return apperr.NotFound(msgLeadNotFound)
	}
	return nil
}

// FindByEmail returns the lead with a case-insensitive email match.
func (s *Service) FindByEmail(ctx context.Context, email string) (transport.LeadResponse, error) {
	lead, ok := s.store.FindByEmail(email)
	if !ok {
		return transport.LeadResponse{}, apperr.NotFound(msgLeadNotFound)
	}
	return transport.ToLeadResponse(lead), nil
}

// List returns leads filtered by optional status and search query, in
// insertion order.
func (s *Service) List(ctx context.Context, status, search string) (transport.LeadListResponse, error) {
	var leads []domain.Lead

	switch {
	case status != "":
		st := domain.LeadStatus(status)
		if !st.Valid() {
			return transport.LeadListResponse{}, apperr.Validation("unknown status: " + status)
		}
		leads = s.store.ByStatus(st)
		if search != "" {
			leads = filterSearch(leads, search)
		}
	case search != "":
		leads = s.store.Search(search)
	default:
		leads = s.store.All()
	}

	items := transport.ToLeadResponses(leads)
	return transport.LeadListResponse{Items: items, Total: len(items)}, nil
}

func filterSearch(leads []domain.Lead, query string) []domain.Lead {
	query = strings.ToLower(query)
	var out []domain.Lead
	for _, lead := range leads {
		searchable := strings.ToLower(lead.FullName() + " " + lead.Company + " " + lead.Email)
		if strings.Contains(searchable, query) {
			out = append(out, lead)
		}
	}
	return out
}

// Qualified returns leads at or above the qualified threshold.
func (s *Service) Qualified(ctx context.Context) transport.LeadListResponse {
	threshold := s.Criteria().QualifiedThreshold
	items := transport.ToLeadResponses(s.store.Filter(func(l *domain.Lead) bool {
		return l.QualificationScore >= threshold
	}))
	return transport.LeadListResponse{Items: items, Total: len(items)}
}

// HotLeads returns leads at or above the hot-lead threshold.
func (s *Service) HotLeads(ctx context.Context) transport.LeadListResponse {
	threshold := s.Criteria().HotLeadThreshold
	items := transport.ToLeadResponses(s.store.Filter(func(l *domain.Lead) bool {
		return l.QualificationScore >= threshold
	}))
	return transport.LeadListResponse{Items: items, Total: len(items)}
}

// AddInteraction appends a timestamped interaction record. Contact
// types (email, call, meeting) also refresh last_contacted.
func (s *Service) AddInteraction(ctx context.Context, id string, req transport.AddInteractionRequest) (transport.InteractionResponse, error) {
	interaction := domain.Interaction{
		ID:        s.idgen.NewID(),
		Timestamp: s.clock.Now(),
		Type:      req.Type,
		Details:   sanitize.Text(req.Details),
	}
	if !s.store.AddInteraction(id, interaction) {
		return transport.InteractionResponse{}, apperr.NotFound(msgLeadNotFound)
	}
	return transport.ToInteractionResponse(interaction), nil
}

// Interactions returns the lead's interaction log.
func (s *Service) Interactions(ctx context.Context, id string) ([]transport.InteractionResponse, error) {
	if _, ok := s.store.Get(id); !ok {
		return nil, apperr.NotFound(msgLeadNotFound)
	}
	log := s.store.Interactions(id)
	out := make([]transport.InteractionResponse, 0, len(log))
	for _, interaction := range log {
		out = append(out, transport.ToInteractionResponse(interaction))
	}
	return out, nil
}

// UpdateCriteria replaces the scoring criteria and re-scores every
// lead. Criteria whose weights do not sum to 1.0 are rejected without
// touching any score.
func (s *Service) UpdateCriteria(ctx context.Context, req transport.UpdateCriteriaRequest) error {
	criteria := req.Criteria()
	if err := criteria.ValidateWeights(); err != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid scoring criteria", err)
	}

	s.criteriaMu.Lock()
	s.criteria = criteria
	s.store.RescoreAll(func(lead *domain.Lead) {
		scoring.Apply(lead, criteria)
	})
	count := s.store.Count()
	s.criteriaMu.Unlock()

	if s.bus != nil {
		s.bus.Publish(ctx, events.CriteriaUpdated{
			BaseEvent:     events.NewBaseEvent(),
			LeadsRescored: count,
		})
	}
	return nil
}

// Summary aggregates the pipeline. An empty repository yields a total
// of zero and nothing else.
func (s *Service) Summary(ctx context.Context) transport.PipelineSummaryResponse {
	leads := s.store.All()
	total := len(leads)
	if total == 0 {
		return transport.PipelineSummaryResponse{TotalLeads: 0}
	}

	criteria := s.Criteria()
	qualified, hot := 0, 0
	var scoreSum float64
	breakdown := make(map[string]int, len(domain.AllStatuses()))
	for _, status := range domain.AllStatuses() {
		breakdown[string(status)] = 0
	}

	for _, lead := range leads {
		scoreSum += lead.QualificationScore
		if lead.QualificationScore >= criteria.QualifiedThreshold {
			qualified++
		}
		if lead.QualificationScore >= criteria.HotLeadThreshold {
			hot++
		}
		breakdown[string(lead.Status)]++
	}

	rate := float64(qualified) / float64(total) * 100
	avg := math.Round(scoreSum/float64(total)*100) / 100

	return transport.PipelineSummaryResponse{
		TotalLeads:        total,
		QualifiedLeads:    &qualified,
		HotLeads:          &hot,
		QualificationRate: &rate,
		AverageScore:      &avg,
		StatusBreakdown:   breakdown,
	}
}
