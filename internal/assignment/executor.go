package assignment

import (
	"errors"
	"fmt"
	"sync"

	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Remarks recorded on audit log entries. These are stable strings: the
// log is the system of record for why a lead ended up where it did.
const (
	remarkNoMatchingRule        = "no_matching_rule"
	remarkSkippedAssigned       = "skipped_already_assigned"
	remarkFallbackToManual      = "fallback_to_manual"
	remarkNoActiveMembers       = "no_active_members"
	remarkFallbackDepthExceeded = "fallback_depth_exceeded"
	remarkFallbackCycle         = "fallback_cycle_detected"
	remarkFallbackRuleMissing   = "fallback_rule_missing"
	remarkFallbackRuleInactive  = "fallback_rule_inactive"
	remarkFallbackFilterMiss    = "fallback_filters_not_matched"
	remarkFallbackFromPrefix    = "fallback_from:"
)

// AutoAssign runs the full assignment state machine for one lead: select
// a rule, pick an assignee, commit through the compare-and-set write, or
// walk the fallback chain when the matched rule has no active members.
// Every terminal state appends an audit log entry.
func (e *Engine) AutoAssign(leadID, sourceID uuid.UUID) (*Outcome, error) {
	now := e.now()

	rule, err := e.SelectRule(sourceID, now)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		if err := e.appendLog(leadID, nil, nil, nil, remarkNoMatchingRule); err != nil {
			return nil, err
		}
		return &Outcome{LeadID: leadID, Status: StatusNoMatch, Remarks: remarkNoMatchingRule}, nil
	}

	originalRuleID := rule.ID
	visited := make(map[uuid.UUID]bool)

	// Why the chain walk stopped without an assignee. Falling out of the
	// loop by exhausting depth keeps the default.
	endRemark := remarkFallbackDepthExceeded

	for depth := 0; depth <= e.maxFallbackDepth; depth++ {
		if visited[rule.ID] {
			// Cycle that slipped past save-time validation.
			endRemark = remarkFallbackCycle
			break
		}
		visited[rule.ID] = true

		members, err := e.members.GetActiveByRuleID(rule.ID)
		if err != nil {
			return nil, fmt.Errorf("load rule members: %w", err)
		}

		if len(members) > 0 {
			userID, err := e.pickAssignee(rule, members)
			if err != nil {
				return nil, err
			}
			return e.commit(leadID, rule.ID, originalRuleID, userID)
		}

		if rule.FallbackRuleID != nil {
			next, err := e.rules.GetByID(*rule.FallbackRuleID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					endRemark = remarkFallbackRuleMissing
					break
				}
				return nil, fmt.Errorf("load fallback rule: %w", err)
			}
			if !next.IsActive {
				endRemark = remarkFallbackRuleInactive
				break
			}
			// An explicitly configured fallback bypasses the target
			// rule's own source/time filters unless the rule opts out.
			if !next.Config.BypassFilters() && ((next.SourceID != nil && *next.SourceID != sourceID) || !ruleWindowContains(next, now)) {
				endRemark = remarkFallbackFilterMiss
				break
			}
			rule = next
			continue
		}

		if rule.FallbackToManual {
			ruleID := rule.ID
			if err := e.appendLog(leadID, nil, &ruleID, nil, remarkFallbackToManual); err != nil {
				return nil, err
			}
			return &Outcome{LeadID: leadID, Status: StatusFallbackManual, RuleID: &ruleID, Remarks: remarkFallbackToManual}, nil
		}

		ruleID := rule.ID
		if err := e.appendLog(leadID, nil, &ruleID, nil, remarkNoActiveMembers); err != nil {
			return nil, err
		}
		return &Outcome{LeadID: leadID, Status: StatusUnassigned, RuleID: &ruleID, Remarks: remarkNoActiveMembers}, nil
	}

	ruleID := rule.ID
	if err := e.appendLog(leadID, nil, &ruleID, nil, endRemark); err != nil {
		return nil, err
	}
	e.log.WithField("lead_id", leadID).WithField("rule_id", ruleID).WithField("reason", endRemark).
		Warn("fallback chain ended without producing an assignee")
	return &Outcome{LeadID: leadID, Status: StatusUnassigned, RuleID: &ruleID, Remarks: endRemark}, nil
}

// pickAssignee applies the rule's distribution strategy to the active
// member pool and returns the chosen user.
func (e *Engine) pickAssignee(rule *models.AssignmentRule, members []models.RuleMember) (uuid.UUID, error) {
	switch rule.RuleType {
	case models.RuleTypeRoundRobin:
		var chosen uuid.UUID
		err := e.cursors.Advance(rule.ID, func(lastMemberID *uuid.UUID) (uuid.UUID, error) {
			member := pickRoundRobin(members, lastMemberID)
			chosen = member.UserID
			return member.ID, nil
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("advance rotation cursor: %w", err)
		}
		return chosen, nil

	case models.RuleTypeWeighted:
		if e.weightedMode(rule, members) == models.WeightedModeWeight {
			counts, err := e.logs.CountAssignedByRulePerUser(rule.ID)
			if err != nil {
				return uuid.Nil, fmt.Errorf("load assignment counts: %w", err)
			}
			return pickWeightedDeterministic(members, counts).UserID, nil
		}
		return pickWeightedPercentage(members, e.randFloat).UserID, nil

	default:
		return uuid.Nil, fmt.Errorf("unknown rule type %q", rule.RuleType)
	}
}

// weightedMode resolves the sub-mode of a weighted rule. The config is
// authoritative; rules saved before the mode field existed are inferred
// from which share field their members carry.
func (e *Engine) weightedMode(rule *models.AssignmentRule, members []models.RuleMember) models.WeightedMode {
	if rule.Config.Mode.IsValid() {
		return rule.Config.Mode
	}
	for i := range members {
		if members[i].Weight != nil {
			return models.WeightedModeWeight
		}
	}
	return models.WeightedModePercentage
}

// commit performs the conditional write and logs the result. ruleID is
// the rule that produced the assignee; when it differs from
// originalRuleID the remarks record the chain origin, so fallback
// assignments stay attributable to both rules.
func (e *Engine) commit(leadID, ruleID, originalRuleID uuid.UUID, userID uuid.UUID) (*Outcome, error) {
	won, err := e.leads.AssignIfUnassigned(leadID, userID)
	if err != nil {
		return nil, fmt.Errorf("assign lead: %w", err)
	}

	remarks := ""
	if ruleID != originalRuleID {
		remarks = remarkFallbackFromPrefix + originalRuleID.String()
	}

	if !won {
		logRemarks := remarkSkippedAssigned
		if remarks != "" {
			logRemarks = remarks + "," + logRemarks
		}
		if err := e.appendLog(leadID, nil, &ruleID, nil, logRemarks); err != nil {
			return nil, err
		}
		return &Outcome{LeadID: leadID, Status: StatusSkippedAlreadyAssigned, RuleID: &ruleID, Remarks: remarkSkippedAssigned}, nil
	}

	if err := e.appendLog(leadID, &userID, &ruleID, nil, remarks); err != nil {
		return nil, err
	}
	e.log.WithFields(map[string]interface{}{
		"lead_id": leadID,
		"rule_id": ruleID,
		"user_id": userID,
	}).Info("lead auto-assigned")
	return &Outcome{LeadID: leadID, Status: StatusAssigned, AssignedTo: &userID, RuleID: &ruleID, Remarks: remarks}, nil
}

// appendLog writes an auto-assignment audit entry.
func (e *Engine) appendLog(leadID uuid.UUID, assignedTo, ruleID, actorID *uuid.UUID, remarks string) error {
	entry := &models.AssignmentLog{
		LeadID:      leadID,
		AssignedTo:  assignedTo,
		Action:      models.ActionAutoAssignment,
		RuleID:      ruleID,
		ActorUserID: actorID,
		Remarks:     remarks,
	}
	if err := e.logs.Create(entry); err != nil {
		return fmt.Errorf("append assignment log: %w", err)
	}
	return nil
}

// ManualAssign unconditionally assigns each lead to the given user and
// logs a manual_assignment entry. Manual assignment always overrides any
// prior assignee. Failures are isolated per lead.
func (e *Engine) ManualAssign(actorID uuid.UUID, leadIDs []uuid.UUID, assignedTo uuid.UUID, remarks string) *BatchResult {
	result := &BatchResult{Succeeded: []uuid.UUID{}, Failed: []BatchFailure{}}

	for _, leadID := range leadIDs {
		if err := e.leads.Assign(leadID, assignedTo); err != nil {
			reason := "persistence failure: " + err.Error()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				reason = "lead not found"
			}
			result.Failed = append(result.Failed, BatchFailure{LeadID: leadID, Reason: reason})
			continue
		}

		entry := &models.AssignmentLog{
			LeadID:      leadID,
			AssignedTo:  &assignedTo,
			Action:      models.ActionManualAssignment,
			ActorUserID: &actorID,
			Remarks:     remarks,
		}
		if err := e.logs.Create(entry); err != nil {
			result.Failed = append(result.Failed, BatchFailure{LeadID: leadID, Reason: "append assignment log: " + err.Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, leadID)
	}

	e.log.WithFields(map[string]interface{}{
		"actor":     actorID,
		"succeeded": len(result.Succeeded),
		"failed":    len(result.Failed),
	}).Info("manual assignment batch completed")
	return result
}

// BulkAssignBySource resolves the unassigned leads of a source and
// assigns them: to an explicit user via the manual path when assignedTo
// is set, otherwise per-lead rule evaluation via the auto path. The auto
// path runs in a bounded worker pool; each lead is an independent unit of
// work protected by its own compare-and-set.
func (e *Engine) BulkAssignBySource(actorID, sourceID uuid.UUID, assignedTo *uuid.UUID, remarks string, workers int) (*BatchResult, error) {
	leads, err := e.leads.GetUnassignedBySource(sourceID)
	if err != nil {
		return nil, fmt.Errorf("load unassigned leads: %w", err)
	}

	if assignedTo != nil {
		ids := make([]uuid.UUID, len(leads))
		for i, lead := range leads {
			ids[i] = lead.ID
		}
		return e.ManualAssign(actorID, ids, *assignedTo, remarks), nil
	}

	if workers < 1 {
		workers = 1
	}

	result := &BatchResult{Succeeded: []uuid.UUID{}, Failed: []BatchFailure{}}
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for _, lead := range leads {
		wg.Add(1)
		sem <- struct{}{}
		go func(leadID uuid.UUID) {
			defer wg.Done()
			defer func() { <-sem }()

			outcome, err := e.AutoAssign(leadID, sourceID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				result.Failed = append(result.Failed, BatchFailure{LeadID: leadID, Reason: err.Error()})
			case outcome.Status == StatusAssigned:
				result.Succeeded = append(result.Succeeded, leadID)
			default:
				result.Failed = append(result.Failed, BatchFailure{LeadID: leadID, Reason: string(outcome.Status)})
			}
		}(lead.ID)
	}
	wg.Wait()

	return result, nil
}

// Stats derives a rule's assignment totals from the audit log.
func (e *Engine) Stats(ruleID uuid.UUID) (*RuleStats, error) {
	total, err := e.logs.CountAssignedByRule(ruleID)
	if err != nil {
		return nil, fmt.Errorf("count rule assignments: %w", err)
	}
	perMember, err := e.logs.CountAssignedByRulePerUser(ruleID)
	if err != nil {
		return nil, fmt.Errorf("count per-member assignments: %w", err)
	}
	return &RuleStats{RuleID: ruleID, AssignmentCount: total, PerMemberCounts: perMember}, nil
}
