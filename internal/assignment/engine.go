// Package assignment implements the lead assignment rule engine: rule
// selection, round-robin and weighted distribution, fallback chains and
// the audit trail behind every decision.
package assignment

import (
	"math/rand"
	"time"

	"dealership-crm-backend/internal/logger"
	"dealership-crm-backend/internal/repository"

	"github.com/google/uuid"
)

// DefaultMaxFallbackDepth caps fallback chain traversal. Cycles are
// rejected when rules are saved; the cap guards against direct data
// edits that bypass validation.
const DefaultMaxFallbackDepth = 5

// Status is the terminal state of an assignment attempt. Only storage
// failures surface as errors; everything here is a valid outcome.
type Status string

const (
	// StatusAssigned means the lead was committed to an assignee.
	StatusAssigned Status = "assigned"
	// StatusSkippedAlreadyAssigned means the compare-and-set write lost
	// the race: another path assigned the lead first.
	StatusSkippedAlreadyAssigned Status = "skipped_already_assigned"
	// StatusNoMatch means no active rule matched the lead's source and
	// the current time.
	StatusNoMatch Status = "no_match"
	// StatusFallbackManual means the chain ended at a rule flagged
	// fallback_to_manual; the lead awaits manual triage.
	StatusFallbackManual Status = "fallback_manual"
	// StatusUnassigned means a rule matched but no assignee could be
	// produced and no fallback applied.
	StatusUnassigned Status = "unassigned"
)

// Outcome describes what the engine decided for one lead.
type Outcome struct {
	LeadID     uuid.UUID  `json:"lead_id"`
	Status     Status     `json:"status"`
	AssignedTo *uuid.UUID `json:"assigned_to,omitempty"`
	RuleID     *uuid.UUID `json:"rule_id,omitempty"`
	Remarks    string     `json:"remarks,omitempty"`
}

// BatchFailure records a single lead's failure inside a batch operation.
type BatchFailure struct {
	LeadID uuid.UUID `json:"lead_id"`
	Reason string    `json:"reason"`
}

// BatchResult is the per-lead result set of a manual or bulk operation.
// One lead failing never aborts the rest of the batch.
type BatchResult struct {
	Succeeded []uuid.UUID    `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
}

// RuleStats summarizes the committed automatic assignments of a rule.
type RuleStats struct {
	RuleID          uuid.UUID           `json:"rule_id"`
	AssignmentCount int64               `json:"assignment_count"`
	PerMemberCounts map[uuid.UUID]int64 `json:"per_member_counts"`
}

// Engine orchestrates rule selection, distribution strategy and the
// conditional lead write. It holds no in-process locks: the lead
// compare-and-set and the row-locked cursor transaction are the only
// serialization primitives.
type Engine struct {
	rules   repository.AssignmentRuleRepositoryInterface
	members repository.RuleMemberRepositoryInterface
	cursors repository.RotationCursorRepositoryInterface
	leads   repository.LeadRepositoryInterface
	logs    repository.AssignmentLogRepositoryInterface

	maxFallbackDepth int
	randFloat        func() float64
	now              func() time.Time
	log              *logger.Logger
}

// Option customizes engine construction.
type Option func(*Engine)

// WithMaxFallbackDepth overrides the fallback traversal cap.
func WithMaxFallbackDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxFallbackDepth = depth
		}
	}
}

// WithRandFloat injects the random source for percentage draws. Tests
// pass a seeded or fixed function to make draws reproducible.
func WithRandFloat(f func() float64) Option {
	return func(e *Engine) { e.randFloat = f }
}

// WithClock injects the time source used for rule window matching.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an assignment engine over the given repositories.
func NewEngine(
	rules repository.AssignmentRuleRepositoryInterface,
	members repository.RuleMemberRepositoryInterface,
	cursors repository.RotationCursorRepositoryInterface,
	leads repository.LeadRepositoryInterface,
	logs repository.AssignmentLogRepositoryInterface,
	opts ...Option,
) *Engine {
	e := &Engine{
		rules:            rules,
		members:          members,
		cursors:          cursors,
		leads:            leads,
		logs:             logs,
		maxFallbackDepth: DefaultMaxFallbackDepth,
		randFloat:        rand.Float64,
		now:              time.Now,
		log:              logger.New().WithField("component", "assignment-engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
