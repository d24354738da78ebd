package assignment

import (
	"sort"

	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// The strategies are pure functions over an in-memory member slice.
// Callers pass active members only; all three return nil for an empty
// pool. Rotation order is member id ascending throughout.

// sortMembers puts members into rotation order.
func sortMembers(members []models.RuleMember) []models.RuleMember {
	sorted := make([]models.RuleMember, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID.String() < sorted[j].ID.String()
	})
	return sorted
}

// pickRoundRobin selects the member circularly after the cursor's member.
// When the cursor is nil or points at a member no longer in the pool
// (deactivated or deleted), the first member in rotation order is chosen,
// which restarts the rotation cleanly instead of erroring.
func pickRoundRobin(members []models.RuleMember, lastMemberID *uuid.UUID) *models.RuleMember {
	if len(members) == 0 {
		return nil
	}
	ordered := sortMembers(members)

	if lastMemberID == nil {
		return &ordered[0]
	}
	for i := range ordered {
		if ordered[i].ID == *lastMemberID {
			return &ordered[(i+1)%len(ordered)]
		}
	}
	return &ordered[0]
}

// pickWeightedPercentage draws a member with probability proportional to
// its percentage. Percentages are treated as unnormalized weights and
// divided by their actual sum, so memberships that do not add up to 100
// still distribute sensibly. randFloat must return a value in [0, 1).
func pickWeightedPercentage(members []models.RuleMember, randFloat func() float64) *models.RuleMember {
	if len(members) == 0 {
		return nil
	}
	ordered := sortMembers(members)

	var total float64
	for i := range ordered {
		if ordered[i].Percentage != nil {
			total += *ordered[i].Percentage
		}
	}
	if total <= 0 {
		return &ordered[0]
	}

	target := randFloat() * total
	var cumulative float64
	for i := range ordered {
		if ordered[i].Percentage == nil {
			continue
		}
		cumulative += *ordered[i].Percentage
		if target < cumulative {
			return &ordered[i]
		}
	}
	// Floating-point edge: target landed on the total.
	return &ordered[len(ordered)-1]
}

// pickWeightedDeterministic selects the member with the smallest
// assignments-given to weight ratio, breaking ties by member id
// ascending. Repeated over time this converges to weight-proportional
// counts without randomness. counts maps user id to the member's
// committed automatic assignments under this rule.
func pickWeightedDeterministic(members []models.RuleMember, counts map[uuid.UUID]int64) *models.RuleMember {
	if len(members) == 0 {
		return nil
	}
	ordered := sortMembers(members)

	var best *models.RuleMember
	var bestRatio float64
	for i := range ordered {
		weight := 1
		if ordered[i].Weight != nil && *ordered[i].Weight > 0 {
			weight = *ordered[i].Weight
		}
		ratio := float64(counts[ordered[i].UserID]) / float64(weight)
		if best == nil || ratio < bestRatio {
			best = &ordered[i]
			bestRatio = ratio
		}
	}
	return best
}
