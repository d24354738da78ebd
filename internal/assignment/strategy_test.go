package assignment

import (
	"math/rand"
	"sort"
	"testing"

	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeMember(percentage *float64, weight *int) models.RuleMember {
	return models.RuleMember{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		RuleID:     uuid.New(),
		UserID:     uuid.New(),
		Percentage: percentage,
		Weight:     weight,
		IsActive:   true,
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func rotationOrder(members []models.RuleMember) []models.RuleMember {
	ordered := make([]models.RuleMember, len(members))
	copy(ordered, members)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ID.String() < ordered[j].ID.String()
	})
	return ordered
}

func TestPickRoundRobin_EmptyPool(t *testing.T) {
	assert.Nil(t, pickRoundRobin(nil, nil))
	assert.Nil(t, pickRoundRobin([]models.RuleMember{}, nil))
}

func TestPickRoundRobin_NilCursorStartsAtFirst(t *testing.T) {
	members := []models.RuleMember{makeMember(nil, nil), makeMember(nil, nil), makeMember(nil, nil)}
	ordered := rotationOrder(members)

	picked := pickRoundRobin(members, nil)
	require.NotNil(t, picked)
	assert.Equal(t, ordered[0].ID, picked.ID)
}

func TestPickRoundRobin_CyclesFairlyOverPool(t *testing.T) {
	members := []models.RuleMember{makeMember(nil, nil), makeMember(nil, nil), makeMember(nil, nil)}
	ordered := rotationOrder(members)

	counts := map[uuid.UUID]int{}
	var last *uuid.UUID
	for i := 0; i < 9; i++ {
		picked := pickRoundRobin(members, last)
		require.NotNil(t, picked)
		counts[picked.UserID]++
		id := picked.ID
		last = &id
	}

	// Nine picks over three members: exactly three each.
	for _, m := range ordered {
		assert.Equal(t, 3, counts[m.UserID])
	}
}

func TestPickRoundRobin_CursorWrapsAround(t *testing.T) {
	members := []models.RuleMember{makeMember(nil, nil), makeMember(nil, nil)}
	ordered := rotationOrder(members)

	lastID := ordered[1].ID
	picked := pickRoundRobin(members, &lastID)
	require.NotNil(t, picked)
	assert.Equal(t, ordered[0].ID, picked.ID)
}

func TestPickRoundRobin_CursorOnRemovedMemberRestartsRotation(t *testing.T) {
	members := []models.RuleMember{makeMember(nil, nil), makeMember(nil, nil), makeMember(nil, nil)}
	ordered := rotationOrder(members)

	// Cursor points at a member that was deactivated or deleted since the
	// previous pick.
	gone := uuid.New()
	picked := pickRoundRobin(members, &gone)
	require.NotNil(t, picked)
	assert.Equal(t, ordered[0].ID, picked.ID)
}

func TestPickWeightedPercentage_EmptyPool(t *testing.T) {
	assert.Nil(t, pickWeightedPercentage(nil, func() float64 { return 0.5 }))
}

func TestPickWeightedPercentage_DrawLandsProportionally(t *testing.T) {
	members := []models.RuleMember{
		makeMember(floatPtr(70), nil),
		makeMember(floatPtr(30), nil),
	}
	ordered := rotationOrder(members)

	// Cumulative bands in rotation order. A draw inside the first member's
	// band picks it, past the band picks the second.
	firstShare := *ordered[0].Percentage / 100

	picked := pickWeightedPercentage(members, func() float64 { return firstShare - 0.01 })
	require.NotNil(t, picked)
	assert.Equal(t, ordered[0].ID, picked.ID)

	picked = pickWeightedPercentage(members, func() float64 { return firstShare + 0.01 })
	require.NotNil(t, picked)
	assert.Equal(t, ordered[1].ID, picked.ID)
}

func TestPickWeightedPercentage_NormalizesByActualSum(t *testing.T) {
	// Shares summing to 50 still distribute: each member owns half the range.
	members := []models.RuleMember{
		makeMember(floatPtr(25), nil),
		makeMember(floatPtr(25), nil),
	}
	ordered := rotationOrder(members)

	picked := pickWeightedPercentage(members, func() float64 { return 0.49 })
	require.NotNil(t, picked)
	assert.Equal(t, ordered[0].ID, picked.ID)

	picked = pickWeightedPercentage(members, func() float64 { return 0.51 })
	require.NotNil(t, picked)
	assert.Equal(t, ordered[1].ID, picked.ID)
}

func TestPickWeightedPercentage_ConvergesOverManyDraws(t *testing.T) {
	members := []models.RuleMember{
		makeMember(floatPtr(70), nil),
		makeMember(floatPtr(30), nil),
	}

	rng := rand.New(rand.NewSource(1))
	const draws = 10000

	counts := map[uuid.UUID]int{}
	for i := 0; i < draws; i++ {
		picked := pickWeightedPercentage(members, rng.Float64)
		require.NotNil(t, picked)
		counts[picked.ID]++
	}

	// With a fixed seed the empirical split is stable; 2% absolute
	// tolerance keeps the assertion well clear of sampling noise.
	firstShare := float64(counts[members[0].ID]) / draws
	assert.InDelta(t, 0.70, firstShare, 0.02)
	assert.InDelta(t, 0.30, float64(counts[members[1].ID])/draws, 0.02)
}

func TestPickWeightedPercentage_ZeroTotalFallsBackToFirst(t *testing.T) {
	members := []models.RuleMember{makeMember(nil, nil), makeMember(nil, nil)}
	ordered := rotationOrder(members)

	picked := pickWeightedPercentage(members, func() float64 { return 0.9 })
	require.NotNil(t, picked)
	assert.Equal(t, ordered[0].ID, picked.ID)
}

func TestPickWeightedDeterministic_EmptyPool(t *testing.T) {
	assert.Nil(t, pickWeightedDeterministic(nil, map[uuid.UUID]int64{}))
}

func TestPickWeightedDeterministic_ConvergesToWeightRatio(t *testing.T) {
	heavy := makeMember(nil, intPtr(2))
	light := makeMember(nil, intPtr(1))
	members := []models.RuleMember{heavy, light}

	counts := map[uuid.UUID]int64{}
	for i := 0; i < 9; i++ {
		picked := pickWeightedDeterministic(members, counts)
		require.NotNil(t, picked)
		counts[picked.UserID]++
	}

	// Weights 2:1 over nine picks converge to 6:3.
	assert.Equal(t, int64(6), counts[heavy.UserID])
	assert.Equal(t, int64(3), counts[light.UserID])
}

func TestPickWeightedDeterministic_TieBreaksByMemberID(t *testing.T) {
	members := []models.RuleMember{
		makeMember(nil, intPtr(1)),
		makeMember(nil, intPtr(1)),
	}
	ordered := rotationOrder(members)

	picked := pickWeightedDeterministic(members, map[uuid.UUID]int64{})
	require.NotNil(t, picked)
	assert.Equal(t, ordered[0].ID, picked.ID)
}

func TestPickWeightedDeterministic_MissingWeightDefaultsToOne(t *testing.T) {
	weightless := makeMember(nil, nil)
	weighted := makeMember(nil, intPtr(3))
	members := []models.RuleMember{weightless, weighted}

	counts := map[uuid.UUID]int64{
		weightless.UserID: 1,
		weighted.UserID:   1,
	}

	// Ratios: 1/1 vs 1/3; the weighted member wins.
	picked := pickWeightedDeterministic(members, counts)
	require.NotNil(t, picked)
	assert.Equal(t, weighted.UserID, picked.UserID)
}
