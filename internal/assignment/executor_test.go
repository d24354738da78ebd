package assignment_test

import (
	"errors"
	"sort"
	"testing"

	"dealership-crm-backend/internal/assignment"
	"dealership-crm-backend/internal/database/models"
	"dealership-crm-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type EngineTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRules   *mocks.MockAssignmentRuleRepositoryInterface
	mockMembers *mocks.MockRuleMemberRepositoryInterface
	mockCursors *mocks.MockRotationCursorRepositoryInterface
	mockLeads   *mocks.MockLeadRepositoryInterface
	mockLogs    *mocks.MockAssignmentLogRepositoryInterface
}

func (suite *EngineTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRules = mocks.NewMockAssignmentRuleRepositoryInterface(suite.ctrl)
	suite.mockMembers = mocks.NewMockRuleMemberRepositoryInterface(suite.ctrl)
	suite.mockCursors = mocks.NewMockRotationCursorRepositoryInterface(suite.ctrl)
	suite.mockLeads = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.mockLogs = mocks.NewMockAssignmentLogRepositoryInterface(suite.ctrl)
}

func (suite *EngineTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EngineTestSuite) newEngine(opts ...assignment.Option) *assignment.Engine {
	return assignment.NewEngine(
		suite.mockRules,
		suite.mockMembers,
		suite.mockCursors,
		suite.mockLeads,
		suite.mockLogs,
		opts...,
	)
}

func (suite *EngineTestSuite) newRoundRobinRule(sourceID *uuid.UUID) *models.AssignmentRule {
	return &models.AssignmentRule{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "showroom walk-ins",
		SourceID:  sourceID,
		RuleType:  models.RuleTypeRoundRobin,
		IsActive:  true,
	}
}

func (suite *EngineTestSuite) newMembers(ruleID uuid.UUID, n int) []models.RuleMember {
	members := make([]models.RuleMember, n)
	for i := range members {
		members[i] = models.RuleMember{
			BaseModel: models.BaseModel{ID: uuid.New()},
			RuleID:    ruleID,
			UserID:    uuid.New(),
			IsActive:  true,
		}
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].ID.String() < members[j].ID.String()
	})
	return members
}

// expectCursorAdvance wires the cursor mock to run the pick closure with
// the given previous member id, the way the real row-locked transaction
// does.
func (suite *EngineTestSuite) expectCursorAdvance(ruleID uuid.UUID, lastMemberID *uuid.UUID) {
	suite.mockCursors.EXPECT().Advance(ruleID, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, pick func(*uuid.UUID) (uuid.UUID, error)) error {
			_, err := pick(lastMemberID)
			return err
		},
	)
}

func (suite *EngineTestSuite) TestAutoAssign_NoMatchingRule() {
	leadID := uuid.New()
	sourceID := uuid.New()

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{}, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		assert.Equal(suite.T(), leadID, entry.LeadID)
		assert.Nil(suite.T(), entry.AssignedTo)
		assert.Nil(suite.T(), entry.RuleID)
		assert.Equal(suite.T(), models.ActionAutoAssignment, entry.Action)
		assert.Equal(suite.T(), "no_matching_rule", entry.Remarks)
		return nil
	})

	outcome, err := suite.newEngine().AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignment.StatusNoMatch, outcome.Status)
	assert.Nil(suite.T(), outcome.AssignedTo)
}

func (suite *EngineTestSuite) TestAutoAssign_RoundRobin_AssignsNextMember() {
	leadID := uuid.New()
	sourceID := uuid.New()
	rule := suite.newRoundRobinRule(&sourceID)
	members := suite.newMembers(rule.ID, 3)

	// Cursor points at the first member; the second is due.
	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*rule}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(rule.ID).Return(members, nil)
	suite.expectCursorAdvance(rule.ID, &members[0].ID)
	suite.mockLeads.EXPECT().AssignIfUnassigned(leadID, members[1].UserID).Return(true, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		assert.Equal(suite.T(), members[1].UserID, *entry.AssignedTo)
		assert.Equal(suite.T(), rule.ID, *entry.RuleID)
		assert.Empty(suite.T(), entry.Remarks)
		return nil
	})

	outcome, err := suite.newEngine().AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignment.StatusAssigned, outcome.Status)
	assert.Equal(suite.T(), members[1].UserID, *outcome.AssignedTo)
	assert.Equal(suite.T(), rule.ID, *outcome.RuleID)
}

func (suite *EngineTestSuite) TestAutoAssign_LostRace_SkipsAlreadyAssigned() {
	leadID := uuid.New()
	sourceID := uuid.New()
	rule := suite.newRoundRobinRule(&sourceID)
	members := suite.newMembers(rule.ID, 1)

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*rule}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(rule.ID).Return(members, nil)
	suite.expectCursorAdvance(rule.ID, nil)
	suite.mockLeads.EXPECT().AssignIfUnassigned(leadID, members[0].UserID).Return(false, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		assert.Nil(suite.T(), entry.AssignedTo)
		assert.Equal(suite.T(), "skipped_already_assigned", entry.Remarks)
		return nil
	})

	outcome, err := suite.newEngine().AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignment.StatusSkippedAlreadyAssigned, outcome.Status)
	assert.Nil(suite.T(), outcome.AssignedTo)
}

func (suite *EngineTestSuite) TestAutoAssign_WeightedPercentage_DrawPicksBand() {
	leadID := uuid.New()
	sourceID := uuid.New()
	seventy, thirty := 70.0, 30.0

	rule := &models.AssignmentRule{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "meta leads split",
		SourceID:  &sourceID,
		RuleType:  models.RuleTypeWeighted,
		IsActive:  true,
		Config:    models.RuleConfig{Mode: models.WeightedModePercentage},
	}
	members := suite.newMembers(rule.ID, 2)
	members[0].Percentage = &seventy
	members[1].Percentage = &thirty

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*rule}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(rule.ID).Return(members, nil)
	// Draw lands past the first member's 70% band.
	suite.mockLeads.EXPECT().AssignIfUnassigned(leadID, members[1].UserID).Return(true, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).Return(nil)

	engine := suite.newEngine(assignment.WithRandFloat(func() float64 { return 0.85 }))
	outcome, err := engine.AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignment.StatusAssigned, outcome.Status)
	assert.Equal(suite.T(), members[1].UserID, *outcome.AssignedTo)
}

func (suite *EngineTestSuite) TestAutoAssign_WeightedDeterministic_PicksFurthestBehind() {
	leadID := uuid.New()
	sourceID := uuid.New()
	two, one := 2, 1

	rule := &models.AssignmentRule{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "portal leads split",
		SourceID:  &sourceID,
		RuleType:  models.RuleTypeWeighted,
		IsActive:  true,
		Config:    models.RuleConfig{Mode: models.WeightedModeWeight},
	}
	members := suite.newMembers(rule.ID, 2)
	members[0].Weight = &two
	members[1].Weight = &one

	// Counts 2:1 make the ratios 1.0 each; the tie breaks to the first
	// member in rotation order.
	counts := map[uuid.UUID]int64{
		members[0].UserID: 2,
		members[1].UserID: 1,
	}

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*rule}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(rule.ID).Return(members, nil)
	suite.mockLogs.EXPECT().CountAssignedByRulePerUser(rule.ID).Return(counts, nil)
	suite.mockLeads.EXPECT().AssignIfUnassigned(leadID, members[0].UserID).Return(true, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).Return(nil)

	outcome, err := suite.newEngine().AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), members[0].UserID, *outcome.AssignedTo)
}

func (suite *EngineTestSuite) TestAutoAssign_FallbackChain_AttributesBothRules() {
	leadID := uuid.New()
	sourceID := uuid.New()

	fallback := suite.newRoundRobinRule(nil)
	primary := suite.newRoundRobinRule(&sourceID)
	primary.FallbackRuleID = &fallback.ID
	fallbackMembers := suite.newMembers(fallback.ID, 1)

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*primary}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(primary.ID).Return([]models.RuleMember{}, nil)
	suite.mockRules.EXPECT().GetByID(fallback.ID).Return(fallback, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(fallback.ID).Return(fallbackMembers, nil)
	suite.expectCursorAdvance(fallback.ID, nil)
	suite.mockLeads.EXPECT().AssignIfUnassigned(leadID, fallbackMembers[0].UserID).Return(true, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		// The log credits the rule that produced the assignee and
		// records where the chain started.
		assert.Equal(suite.T(), fallback.ID, *entry.RuleID)
		assert.Equal(suite.T(), "fallback_from:"+primary.ID.String(), entry.Remarks)
		return nil
	})

	outcome, err := suite.newEngine().AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignment.StatusAssigned, outcome.Status)
	assert.Equal(suite.T(), fallback.ID, *outcome.RuleID)
	assert.Equal(suite.T(), fallbackMembers[0].UserID, *outcome.AssignedTo)
}

func (suite *EngineTestSuite) TestAutoAssign_FallbackDepthCap() {
	leadID := uuid.New()
	sourceID := uuid.New()

	third := suite.newRoundRobinRule(nil)
	second := suite.newRoundRobinRule(nil)
	second.FallbackRuleID = &third.ID
	first := suite.newRoundRobinRule(&sourceID)
	first.FallbackRuleID = &second.ID

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*first}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(first.ID).Return([]models.RuleMember{}, nil)
	suite.mockRules.EXPECT().GetByID(second.ID).Return(second, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(second.ID).Return([]models.RuleMember{}, nil)
	suite.mockRules.EXPECT().GetByID(third.ID).Return(third, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		assert.Equal(suite.T(), "fallback_depth_exceeded", entry.Remarks)
		return nil
	})

	engine := suite.newEngine(assignment.WithMaxFallbackDepth(1))
	outcome, err := engine.AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignment.StatusUnassigned, outcome.Status)
	assert.Nil(suite.T(), outcome.AssignedTo)
}

func (suite *EngineTestSuite) TestAutoAssign_FallbackToManual() {
	leadID := uuid.New()
	sourceID := uuid.New()
	rule := suite.newRoundRobinRule(&sourceID)
	rule.FallbackToManual = true

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*rule}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(rule.ID).Return([]models.RuleMember{}, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		assert.Nil(suite.T(), entry.AssignedTo)
		assert.Equal(suite.T(), rule.ID, *entry.RuleID)
		assert.Equal(suite.T(), "fallback_to_manual", entry.Remarks)
		return nil
	})

	outcome, err := suite.newEngine().AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignment.StatusFallbackManual, outcome.Status)
	assert.Nil(suite.T(), outcome.AssignedTo)
}

func (suite *EngineTestSuite) TestAutoAssign_NoActiveMembersNoFallback() {
	leadID := uuid.New()
	sourceID := uuid.New()
	rule := suite.newRoundRobinRule(&sourceID)

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*rule}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(rule.ID).Return([]models.RuleMember{}, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		assert.Equal(suite.T(), "no_active_members", entry.Remarks)
		return nil
	})

	outcome, err := suite.newEngine().AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignment.StatusUnassigned, outcome.Status)
}

func (suite *EngineTestSuite) TestAutoAssign_InactiveFallbackEndsChain() {
	leadID := uuid.New()
	sourceID := uuid.New()

	fallback := suite.newRoundRobinRule(nil)
	fallback.IsActive = false
	primary := suite.newRoundRobinRule(&sourceID)
	primary.FallbackRuleID = &fallback.ID

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*primary}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(primary.ID).Return([]models.RuleMember{}, nil)
	suite.mockRules.EXPECT().GetByID(fallback.ID).Return(fallback, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		assert.Equal(suite.T(), "fallback_rule_inactive", entry.Remarks)
		return nil
	})

	outcome, err := suite.newEngine().AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignment.StatusUnassigned, outcome.Status)
	assert.Equal(suite.T(), "fallback_rule_inactive", outcome.Remarks)
}

func (suite *EngineTestSuite) TestAutoAssign_MissingFallbackEndsChain() {
	leadID := uuid.New()
	sourceID := uuid.New()

	deletedID := uuid.New()
	primary := suite.newRoundRobinRule(&sourceID)
	primary.FallbackRuleID = &deletedID

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*primary}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(primary.ID).Return([]models.RuleMember{}, nil)
	suite.mockRules.EXPECT().GetByID(deletedID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		assert.Equal(suite.T(), "fallback_rule_missing", entry.Remarks)
		return nil
	})

	outcome, err := suite.newEngine().AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignment.StatusUnassigned, outcome.Status)
	assert.Equal(suite.T(), "fallback_rule_missing", outcome.Remarks)
}

func (suite *EngineTestSuite) TestAutoAssign_FallbackCycleEndsChain() {
	leadID := uuid.New()
	sourceID := uuid.New()

	second := suite.newRoundRobinRule(nil)
	first := suite.newRoundRobinRule(&sourceID)
	first.FallbackRuleID = &second.ID
	second.FallbackRuleID = &first.ID

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*first}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(first.ID).Return([]models.RuleMember{}, nil)
	suite.mockRules.EXPECT().GetByID(second.ID).Return(second, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(second.ID).Return([]models.RuleMember{}, nil)
	suite.mockRules.EXPECT().GetByID(first.ID).Return(first, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		assert.Equal(suite.T(), "fallback_cycle_detected", entry.Remarks)
		return nil
	})

	outcome, err := suite.newEngine().AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignment.StatusUnassigned, outcome.Status)
	assert.Equal(suite.T(), "fallback_cycle_detected", outcome.Remarks)
}

func (suite *EngineTestSuite) TestAutoAssign_FallbackFilterMismatchEndsChain() {
	leadID := uuid.New()
	sourceID := uuid.New()
	otherSourceID := uuid.New()

	bypass := false
	fallback := suite.newRoundRobinRule(&otherSourceID)
	fallback.Config.FallbackBypassFilters = &bypass
	primary := suite.newRoundRobinRule(&sourceID)
	primary.FallbackRuleID = &fallback.ID

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*primary}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(primary.ID).Return([]models.RuleMember{}, nil)
	suite.mockRules.EXPECT().GetByID(fallback.ID).Return(fallback, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		assert.Equal(suite.T(), "fallback_filters_not_matched", entry.Remarks)
		return nil
	})

	outcome, err := suite.newEngine().AutoAssign(leadID, sourceID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignment.StatusUnassigned, outcome.Status)
	assert.Equal(suite.T(), "fallback_filters_not_matched", outcome.Remarks)
}

func (suite *EngineTestSuite) TestManualAssign_IsolatesPerLeadFailures() {
	actorID := uuid.New()
	assignee := uuid.New()
	goodLead := uuid.New()
	missingLead := uuid.New()

	suite.mockLeads.EXPECT().Assign(goodLead, assignee).Return(nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		assert.Equal(suite.T(), models.ActionManualAssignment, entry.Action)
		assert.Equal(suite.T(), assignee, *entry.AssignedTo)
		assert.Equal(suite.T(), actorID, *entry.ActorUserID)
		assert.Equal(suite.T(), "walk-in follow up", entry.Remarks)
		return nil
	})
	suite.mockLeads.EXPECT().Assign(missingLead, assignee).Return(gorm.ErrRecordNotFound)

	result := suite.newEngine().ManualAssign(actorID, []uuid.UUID{goodLead, missingLead}, assignee, "walk-in follow up")

	require.Len(suite.T(), result.Succeeded, 1)
	assert.Equal(suite.T(), goodLead, result.Succeeded[0])
	require.Len(suite.T(), result.Failed, 1)
	assert.Equal(suite.T(), missingLead, result.Failed[0].LeadID)
	assert.Equal(suite.T(), "lead not found", result.Failed[0].Reason)
}

func (suite *EngineTestSuite) TestBulkAssignBySource_ExplicitAssigneeUsesManualPath() {
	actorID := uuid.New()
	sourceID := uuid.New()
	assignee := uuid.New()
	leads := []models.Lead{
		{BaseModel: models.BaseModel{ID: uuid.New()}, SourceID: sourceID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, SourceID: sourceID},
	}

	suite.mockLeads.EXPECT().GetUnassignedBySource(sourceID).Return(leads, nil)
	suite.mockLeads.EXPECT().Assign(leads[0].ID, assignee).Return(nil)
	suite.mockLeads.EXPECT().Assign(leads[1].ID, assignee).Return(nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	result, err := suite.newEngine().BulkAssignBySource(actorID, sourceID, &assignee, "", 2)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Succeeded, 2)
	assert.Empty(suite.T(), result.Failed)
}

func (suite *EngineTestSuite) TestBulkAssignBySource_AutoPathReportsPerLeadOutcome() {
	actorID := uuid.New()
	sourceID := uuid.New()
	rule := suite.newRoundRobinRule(&sourceID)
	members := suite.newMembers(rule.ID, 1)
	leads := []models.Lead{
		{BaseModel: models.BaseModel{ID: uuid.New()}, SourceID: sourceID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, SourceID: sourceID},
	}

	suite.mockLeads.EXPECT().GetUnassignedBySource(sourceID).Return(leads, nil)
	suite.mockRules.EXPECT().GetCandidates(sourceID).Return([]models.AssignmentRule{*rule}, nil).Times(2)
	suite.mockMembers.EXPECT().GetActiveByRuleID(rule.ID).Return(members, nil).Times(2)
	suite.mockCursors.EXPECT().Advance(rule.ID, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, pick func(*uuid.UUID) (uuid.UUID, error)) error {
			_, err := pick(nil)
			return err
		},
	).Times(2)
	// One lead wins its compare-and-set, the other was assigned elsewhere
	// mid-batch.
	suite.mockLeads.EXPECT().AssignIfUnassigned(leads[0].ID, members[0].UserID).Return(true, nil)
	suite.mockLeads.EXPECT().AssignIfUnassigned(leads[1].ID, members[0].UserID).Return(false, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	result, err := suite.newEngine().BulkAssignBySource(actorID, sourceID, nil, "", 1)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), result.Succeeded, 1)
	assert.Equal(suite.T(), leads[0].ID, result.Succeeded[0])
	require.Len(suite.T(), result.Failed, 1)
	assert.Equal(suite.T(), leads[1].ID, result.Failed[0].LeadID)
	assert.Equal(suite.T(), "skipped_already_assigned", result.Failed[0].Reason)
}

func (suite *EngineTestSuite) TestStats_AggregatesFromAuditLog() {
	ruleID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()

	suite.mockLogs.EXPECT().CountAssignedByRule(ruleID).Return(int64(5), nil)
	suite.mockLogs.EXPECT().CountAssignedByRulePerUser(ruleID).Return(map[uuid.UUID]int64{userA: 3, userB: 2}, nil)

	stats, err := suite.newEngine().Stats(ruleID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5), stats.AssignmentCount)
	assert.Equal(suite.T(), int64(3), stats.PerMemberCounts[userA])
	assert.Equal(suite.T(), int64(2), stats.PerMemberCounts[userB])
}

func (suite *EngineTestSuite) TestAutoAssign_RuleLookupError() {
	leadID := uuid.New()
	sourceID := uuid.New()

	suite.mockRules.EXPECT().GetCandidates(sourceID).Return(nil, errors.New("db down"))

	outcome, err := suite.newEngine().AutoAssign(leadID, sourceID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), outcome)
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
