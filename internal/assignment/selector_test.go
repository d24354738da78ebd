package assignment

import (
	"testing"
	"time"

	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func makeRule(sourceID *uuid.UUID, priority int) models.AssignmentRule {
	return models.AssignmentRule{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "rule",
		SourceID:  sourceID,
		RuleType:  models.RuleTypeRoundRobin,
		Priority:  priority,
		IsActive:  true,
	}
}

// tuesdayNoon is a fixed instant for window tests: Tuesday 12:00.
var tuesdayNoon = time.Date(2025, 7, 8, 12, 0, 0, 0, time.UTC)

func TestSelectBest_NoCandidates(t *testing.T) {
	assert.Nil(t, selectBest(nil, tuesdayNoon))
	assert.Nil(t, selectBest([]models.AssignmentRule{}, tuesdayNoon))
}

func TestSelectBest_SourceSpecificBeatsCatchAll(t *testing.T) {
	sourceID := uuid.New()
	specific := makeRule(&sourceID, 0)
	catchAll := makeRule(nil, 100)

	best := selectBest([]models.AssignmentRule{catchAll, specific}, tuesdayNoon)
	require.NotNil(t, best)
	// Source binding outranks priority.
	assert.Equal(t, specific.ID, best.ID)
}

func TestSelectBest_HigherPriorityWins(t *testing.T) {
	sourceID := uuid.New()
	low := makeRule(&sourceID, 1)
	high := makeRule(&sourceID, 10)

	best := selectBest([]models.AssignmentRule{low, high}, tuesdayNoon)
	require.NotNil(t, best)
	assert.Equal(t, high.ID, best.ID)
}

func TestSelectBest_EqualPriorityTieBreaksByLowestID(t *testing.T) {
	sourceID := uuid.New()
	a := makeRule(&sourceID, 5)
	b := makeRule(&sourceID, 5)

	expected := a
	if b.ID.String() < a.ID.String() {
		expected = b
	}

	best := selectBest([]models.AssignmentRule{a, b}, tuesdayNoon)
	require.NotNil(t, best)
	assert.Equal(t, expected.ID, best.ID)

	// Same inputs in reverse order resolve identically.
	best = selectBest([]models.AssignmentRule{b, a}, tuesdayNoon)
	require.NotNil(t, best)
	assert.Equal(t, expected.ID, best.ID)
}

func TestSelectBest_FiltersByTimeWindow(t *testing.T) {
	sourceID := uuid.New()
	night := makeRule(&sourceID, 10)
	night.ActiveFrom = strPtr("18:00")
	night.ActiveTo = strPtr("23:00")
	day := makeRule(&sourceID, 1)
	day.ActiveFrom = strPtr("09:00")
	day.ActiveTo = strPtr("17:00")

	best := selectBest([]models.AssignmentRule{night, day}, tuesdayNoon)
	require.NotNil(t, best)
	assert.Equal(t, day.ID, best.ID)
}

func TestSelectBest_FiltersByWeekday(t *testing.T) {
	sourceID := uuid.New()
	weekendOnly := makeRule(&sourceID, 10)
	weekendOnly.ActiveDays = models.DayList{0, 6}
	weekdays := makeRule(&sourceID, 1)
	weekdays.ActiveDays = models.DayList{1, 2, 3, 4, 5}

	best := selectBest([]models.AssignmentRule{weekendOnly, weekdays}, tuesdayNoon)
	require.NotNil(t, best)
	assert.Equal(t, weekdays.ID, best.ID)
}

func TestSelectBest_AllFilteredOut(t *testing.T) {
	sourceID := uuid.New()
	rule := makeRule(&sourceID, 0)
	rule.ActiveFrom = strPtr("00:00")
	rule.ActiveTo = strPtr("06:00")

	assert.Nil(t, selectBest([]models.AssignmentRule{rule}, tuesdayNoon))
}

func TestRuleWindowContains(t *testing.T) {
	tests := []struct {
		name     string
		from, to *string
		days     models.DayList
		want     bool
	}{
		{name: "unbounded", want: true},
		{name: "inside window", from: strPtr("09:00"), to: strPtr("17:00"), want: true},
		{name: "before window", from: strPtr("13:00"), to: strPtr("17:00"), want: false},
		{name: "after window", from: strPtr("06:00"), to: strPtr("11:59"), want: false},
		{name: "boundary start", from: strPtr("12:00"), want: true},
		{name: "boundary end", to: strPtr("12:00"), want: true},
		{name: "open start", to: strPtr("17:00"), want: true},
		{name: "open end", from: strPtr("09:00"), want: true},
		{name: "matching weekday", days: models.DayList{2}, want: true},
		{name: "other weekday", days: models.DayList{0, 6}, want: false},
		{name: "empty day list means every day", days: models.DayList{}, want: true},
		{name: "malformed bound is ignored", from: strPtr("25:99"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := makeRule(nil, 0)
			rule.ActiveFrom = tt.from
			rule.ActiveTo = tt.to
			rule.ActiveDays = tt.days
			assert.Equal(t, tt.want, ruleWindowContains(&rule, tuesdayNoon))
		})
	}
}

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "7:05"}
	for _, s := range valid {
		assert.True(t, ValidClock(s), s)
	}

	invalid := []string{"", "24:00", "12:60", "12", "12:", "ab:cd", "12:00:00 extra"}
	for _, s := range invalid {
		assert.False(t, ValidClock(s), s)
	}
}
