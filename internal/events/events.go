// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"leadscore_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// =============================================================================
// Tenant Domain Events
// =============================================================================

// TenantDeleted is published after a tenant and its leads are removed.
type TenantDeleted struct {
	BaseEvent
	TenantID uuid.UUID `json:"tenantId"`
	Name     string    `json:"name"`
}

func (e TenantDeleted) EventName() string { return "tenants.tenant.deleted" }

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCreated is published when a new lead is captured and scored.
type LeadCreated struct {
	BaseEvent
	LeadID   uuid.UUID  `json:"leadId"`
	TenantID *uuid.UUID `json:"tenantId,omitempty"`
	Email    string     `json:"email"`
	Company  string     `json:"company"`
	Score    int        `json:"score"`
}

func (e LeadCreated) EventName() string { return "leads.lead.created" }

// LeadRescored is published when an update changed a lead's stored score.
type LeadRescored struct {
	BaseEvent
	LeadID   uuid.UUID `json:"leadId"`
	OldScore int       `json:"oldScore"`
	NewScore int       `json:"newScore"`
}

func (e LeadRescored) EventName() string { return "leads.lead.rescored" }
