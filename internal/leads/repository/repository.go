// Package repository implements the in-memory lead store. It owns the
// lead collection and the per-lead interaction logs; all reads return
// detached copies so callers never alias internal state.
package repository

import (
	"strings"
	"sync"

	"leadpilot_backend/internal/leads/domain"
	"leadpilot_backend/platform/apperr"
)

// Store is the in-memory lead repository. Iteration order is insertion
// order. Safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	leads        map[string]*domain.Lead
	order        []string
	interactions map[string][]domain.Interaction
}

// New creates an empty store.
func New() *Store {
	return &Store{
		leads:        make(map[string]*domain.Lead),
		interactions: make(map[string][]domain.Interaction),
	}
}

// Insert adds a lead and initializes its interaction log.
// Fails with a conflict error when the email is already present
// (case-insensitive).
func (s *Store) Insert(lead *domain.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findByEmailLocked(lead.Email); existing != nil {
		return apperr.Conflict("a lead with email " + lead.Email + " already exists")
	}

	stored := lead.Clone()
	s.leads[stored.ID] = &stored
	s.order = append(s.order, stored.ID)
	s.interactions[stored.ID] = []domain.Interaction{}
	return nil
}

// Get returns a copy of the lead, or false when the id is unknown.
func (s *Store) Get(id string) (domain.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lead, ok := s.leads[id]
	if !ok {
		return domain.Lead{}, false
	}
	return lead.Clone(), true
}

// Update applies fn to the stored lead under the write lock, making
// multi-field updates plus re-scoring atomic with respect to readers.
// Returns false when the id is unknown.
func (s *Store) Update(id string, fn func(*domain.Lead)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok {
		return false
	}
	fn(lead)
	return true
}

// UpdateEmail applies fn like Update but first checks that newEmail is
// not held by a different lead. Passing the current email is allowed.
func (s *Store) UpdateEmail(id, newEmail string, fn func(*domain.Lead)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok {
		return apperr.NotFound("lead not found")
	}
	if existing := s.findByEmailLocked(newEmail); existing != nil && existing.ID != id {
		return apperr.Conflict("a lead with email " + newEmail + " already exists")
	}
	fn(lead)
	return nil
}

// Delete removes the lead and its interaction log.
// Returns whether the lead existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.leads[id]; !ok {
		return false
	}
	delete(s.leads, id)
	delete(s.interactions, id)
	for i, storedID := range s.order {
		if storedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// FindByEmail returns the first lead with a case-insensitive email match.
func (s *Store) FindByEmail(email string) (domain.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lead := s.findByEmailLocked(email)
	if lead == nil {
		return domain.Lead{}, false
	}
	return lead.Clone(), true
}

func (s *Store) findByEmailLocked(email string) *domain.Lead {
	for _, id := range s.order {
		lead := s.leads[id]
		if strings.EqualFold(lead.Email, email) {
			return lead
		}
	}
	return nil
}

// Search returns leads whose full name, company, or email contains the
// query, case-insensitive, in insertion order.
func (s *Store) Search(query string) []domain.Lead {
	query = strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.Lead
	for _, id := range s.order {
		lead := s.leads[id]
		searchable := strings.ToLower(lead.FullName() + " " + lead.Company + " " + lead.Email)
		if strings.Contains(searchable, query) {
			results = append(results, lead.Clone())
		}
	}
	return results
}

// All returns every lead in insertion order.
func (s *Store) All() []domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]domain.Lead, 0, len(s.order))
	for _, id := range s.order {
		results = append(results, s.leads[id].Clone())
	}
	return results
}

// Filter returns leads satisfying pred, in insertion order.
func (s *Store) Filter(pred func(*domain.Lead) bool) []domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.Lead
	for _, id := range s.order {
		lead := s.leads[id]
		if pred(lead) {
			results = append(results, lead.Clone())
		}
	}
	return results
}

// ByStatus returns leads with the given status, in insertion order.
func (s *Store) ByStatus(status domain.LeadStatus) []domain.Lead {
	return s.Filter(func(l *domain.Lead) bool { return l.Status == status })
}

// Count returns the number of leads.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

// AddInteraction appends a record to the lead's interaction log.
// Contact interactions (email, call, meeting) refresh last_contacted.
// Returns false when the id is unknown.
func (s *Store) AddInteraction(id string, interaction domain.Interaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok {
		return false
	}

	s.interactions[id] = append(s.interactions[id], interaction)
	if domain.IsContactType(interaction.Type) {
		ts := interaction.Timestamp
		lead.LastContacted = &ts
	}
	return true
}

// Interactions returns a copy of the lead's interaction log.
// Unknown ids yield an empty log.
func (s *Store) Interactions(id string) []domain.Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Interaction(nil), s.interactions[id]...)
}

// RescoreAll applies fn to every lead under a single write lock, so a
// criteria replacement re-scores the whole collection atomically.
func (s *Store) RescoreAll(fn func(*domain.Lead)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		fn(s.leads[id])
	}
}
