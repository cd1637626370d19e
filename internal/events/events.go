// Package events provides domain event definitions for decoupled
// communication between modules. Infrastructure (Bus, Handler) is in
// platform/events.
package events

import (
	platformevents "leadpilot_backend/platform/events"
	"leadpilot_backend/platform/logger"
)

// Re-export platform types for convenience
type (
	Event       = platformevents.Event
	Bus         = platformevents.Bus
	Handler     = platformevents.Handler
	HandlerFunc = platformevents.HandlerFunc
	BaseEvent   = platformevents.BaseEvent
	InMemoryBus = platformevents.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = platformevents.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}

// LeadCreated is published when a lead is added and scored.
type LeadCreated struct {
	BaseEvent
	LeadID  string  `json:"leadId"`
	Email   string  `json:"email"`
	Company string  `json:"company"`
	Score   float64 `json:"score"`
	Status  string  `json:"status"`
}

// EventName identifies the event type.
func (e LeadCreated) EventName() string { return "leads.created" }

// LeadRescored is published when an update to qualification data
// changes a lead's score.
type LeadRescored struct {
	BaseEvent
	LeadID   string  `json:"leadId"`
	OldScore float64 `json:"oldScore"`
	NewScore float64 `json:"newScore"`
}

// EventName identifies the event type.
func (e LeadRescored) EventName() string { return "leads.rescored" }

// CriteriaUpdated is published when the scoring criteria are replaced
// and the whole collection has been re-scored.
type CriteriaUpdated struct {
	BaseEvent
	LeadsRescored int `json:"leadsRescored"`
}

// EventName identifies the event type.
func (e CriteriaUpdated) EventName() string { return "leads.criteria.updated" }
