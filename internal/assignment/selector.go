package assignment

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// SelectRule finds the single best-matching active rule for a source at
// the given time, or nil when no candidate qualifies. Selection is fully
// deterministic: identical inputs always resolve to the same rule, which
// is what makes historical assignments explainable.
func (e *Engine) SelectRule(sourceID uuid.UUID, now time.Time) (*models.AssignmentRule, error) {
	candidates, err := e.rules.GetCandidates(sourceID)
	if err != nil {
		return nil, fmt.Errorf("load candidate rules: %w", err)
	}
	return selectBest(candidates, now), nil
}

// selectBest filters candidates by their activation window and orders the
// survivors: source-specific before source-agnostic, then highest
// priority, then lowest id as the stable tie-break.
func selectBest(candidates []models.AssignmentRule, now time.Time) *models.AssignmentRule {
	matching := make([]models.AssignmentRule, 0, len(candidates))
	for _, rule := range candidates {
		if ruleWindowContains(&rule, now) {
			matching = append(matching, rule)
		}
	}
	if len(matching) == 0 {
		return nil
	}

	sort.Slice(matching, func(i, j int) bool {
		a, b := &matching[i], &matching[j]
		if (a.SourceID != nil) != (b.SourceID != nil) {
			return a.SourceID != nil
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.ID.String() < b.ID.String()
	})
	return &matching[0]
}

// ruleWindowContains reports whether the rule's time-of-day window and
// weekday set admit the given instant. Unset bounds are unbounded; an
// empty day list means every day.
func ruleWindowContains(rule *models.AssignmentRule, now time.Time) bool {
	if len(rule.ActiveDays) > 0 && !rule.ActiveDays.Contains(int(now.Weekday())) {
		return false
	}

	minutes := now.Hour()*60 + now.Minute()
	if rule.ActiveFrom != nil {
		from, ok := parseClock(*rule.ActiveFrom)
		if ok && minutes < from {
			return false
		}
	}
	if rule.ActiveTo != nil {
		to, ok := parseClock(*rule.ActiveTo)
		if ok && minutes > to {
			return false
		}
	}
	return true
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// ValidClock reports whether s is a well-formed "HH:MM" time-of-day.
// Exposed for rule validation at save time.
func ValidClock(s string) bool {
	_, ok := parseClock(s)
	return ok
}
