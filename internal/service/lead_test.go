package service_test

import (
	"testing"

	"dealership-crm-backend/internal/assignment"
	"dealership-crm-backend/internal/database/models"
	apperrors "dealership-crm-backend/internal/errors"
	"dealership-crm-backend/internal/mocks"
	"dealership-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type LeadServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockLeads   *mocks.MockLeadRepositoryInterface
	mockSources *mocks.MockSourceRepositoryInterface
	mockUsers   *mocks.MockUserRepositoryInterface
	mockRules   *mocks.MockAssignmentRuleRepositoryInterface
	mockMembers *mocks.MockRuleMemberRepositoryInterface
	mockCursors *mocks.MockRotationCursorRepositoryInterface
	mockLogs    *mocks.MockAssignmentLogRepositoryInterface
	leadService *service.LeadService
}

func (suite *LeadServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLeads = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.mockSources = mocks.NewMockSourceRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRules = mocks.NewMockAssignmentRuleRepositoryInterface(suite.ctrl)
	suite.mockMembers = mocks.NewMockRuleMemberRepositoryInterface(suite.ctrl)
	suite.mockCursors = mocks.NewMockRotationCursorRepositoryInterface(suite.ctrl)
	suite.mockLogs = mocks.NewMockAssignmentLogRepositoryInterface(suite.ctrl)

	engine := assignment.NewEngine(suite.mockRules, suite.mockMembers, suite.mockCursors, suite.mockLeads, suite.mockLogs)
	suite.leadService = service.NewLeadService(
		suite.mockLeads,
		suite.mockSources,
		suite.mockUsers,
		suite.mockLogs,
		engine,
		validator.New(),
		2,
	)
}

func (suite *LeadServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeadServiceTestSuite) activeSource() *models.Source {
	return &models.Source{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       "meta-leadgen",
		SourceType: models.SourceTypeMeta,
		IsActive:   true,
	}
}

func (suite *LeadServiceTestSuite) TestCreateLead_SkipAutoAssign() {
	source := suite.activeSource()

	suite.mockSources.EXPECT().GetByID(source.ID).Return(source, nil)
	suite.mockLeads.EXPECT().Create(gomock.Any()).DoAndReturn(func(lead *models.Lead) error {
		lead.ID = uuid.New()
		assert.Equal(suite.T(), models.LeadStatusNew, lead.Status)
		assert.Nil(suite.T(), lead.AssignedTo)
		return nil
	})
	suite.mockSources.EXPECT().IncrementLeadCounts(source.ID).Return(nil)

	resp, err := suite.leadService.CreateLead(&service.CreateLeadRequest{
		CustomerName:   "Arun Varma",
		PhoneNumber:    "9876543210",
		SourceID:       source.ID,
		SkipAutoAssign: true,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Arun Varma", resp.CustomerName)
	assert.Nil(suite.T(), resp.AssignedTo)
	assert.Nil(suite.T(), resp.Assignment)
}

func (suite *LeadServiceTestSuite) TestCreateLead_AutoAssignsOnCreate() {
	source := suite.activeSource()
	rule := &models.AssignmentRule{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "meta round robin",
		SourceID:  &source.ID,
		RuleType:  models.RuleTypeRoundRobin,
		IsActive:  true,
	}
	member := models.RuleMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		RuleID:    rule.ID,
		UserID:    uuid.New(),
		IsActive:  true,
	}

	suite.mockSources.EXPECT().GetByID(source.ID).Return(source, nil)
	suite.mockLeads.EXPECT().Create(gomock.Any()).DoAndReturn(func(lead *models.Lead) error {
		lead.ID = uuid.New()
		return nil
	})
	suite.mockSources.EXPECT().IncrementLeadCounts(source.ID).Return(nil)
	suite.mockRules.EXPECT().GetCandidates(source.ID).Return([]models.AssignmentRule{*rule}, nil)
	suite.mockMembers.EXPECT().GetActiveByRuleID(rule.ID).Return([]models.RuleMember{member}, nil)
	suite.mockCursors.EXPECT().Advance(rule.ID, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, pick func(*uuid.UUID) (uuid.UUID, error)) error {
			_, err := pick(nil)
			return err
		},
	)
	suite.mockLeads.EXPECT().AssignIfUnassigned(gomock.Any(), member.UserID).Return(true, nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.leadService.CreateLead(&service.CreateLeadRequest{
		CustomerName: "Meera Pillai",
		SourceID:     source.ID,
	})

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), resp.Assignment)
	assert.Equal(suite.T(), assignment.StatusAssigned, resp.Assignment.Status)
	assert.Equal(suite.T(), member.UserID, *resp.AssignedTo)
}

func (suite *LeadServiceTestSuite) TestCreateLead_DeduplicatesByExternalID() {
	source := suite.activeSource()
	existing := &models.Lead{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		SourceID:   source.ID,
		ExternalID: "fb-lead-4411",
	}

	suite.mockSources.EXPECT().GetByID(source.ID).Return(source, nil)
	suite.mockLeads.EXPECT().GetByExternalID(source.ID, "fb-lead-4411").Return(existing, nil)

	resp, err := suite.leadService.CreateLead(&service.CreateLeadRequest{
		CustomerName: "Arun Varma",
		SourceID:     source.ID,
		ExternalID:   "fb-lead-4411",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadExists)
}

func (suite *LeadServiceTestSuite) TestCreateLead_SourceNotFound() {
	sourceID := uuid.New()
	suite.mockSources.EXPECT().GetByID(sourceID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.leadService.CreateLead(&service.CreateLeadRequest{
		CustomerName: "Arun Varma",
		SourceID:     sourceID,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSourceNotFound)
}

func (suite *LeadServiceTestSuite) TestCreateLead_SourceInactive() {
	source := suite.activeSource()
	source.IsActive = false

	suite.mockSources.EXPECT().GetByID(source.ID).Return(source, nil)

	resp, err := suite.leadService.CreateLead(&service.CreateLeadRequest{
		CustomerName: "Arun Varma",
		SourceID:     source.ID,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSourceInactive)
}

func (suite *LeadServiceTestSuite) TestCreateLead_ValidationFailure() {
	resp, err := suite.leadService.CreateLead(&service.CreateLeadRequest{
		SourceID: uuid.New(),
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *LeadServiceTestSuite) TestListLeads_FilterByAssignee() {
	assigneeID := uuid.New()
	source := suite.activeSource()
	leads := []models.Lead{
		{
			BaseModel:    models.BaseModel{ID: uuid.New()},
			SourceID:     source.ID,
			CustomerName: "Ravi Menon",
			AssignedTo:   &assigneeID,
			Status:       models.LeadStatusContacted,
		},
	}

	suite.mockLeads.EXPECT().GetByAssignee(assigneeID, 20, 0).Return(leads, int64(1), nil)

	resp, err := suite.leadService.ListLeads(nil, &assigneeID, 20, 0)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	require.Len(suite.T(), resp.Leads, 1)
	assert.Equal(suite.T(), assigneeID, *resp.Leads[0].AssignedTo)
}

func (suite *LeadServiceTestSuite) TestUpdateStatus_InvalidStatus() {
	err := suite.leadService.UpdateStatus(uuid.New(), models.LeadStatus("parked"))

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *LeadServiceTestSuite) TestUpdateStatus_LeadNotFound() {
	leadID := uuid.New()
	suite.mockLeads.EXPECT().UpdateStatus(leadID, models.LeadStatusContacted).Return(gorm.ErrRecordNotFound)

	err := suite.leadService.UpdateStatus(leadID, models.LeadStatusContacted)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadNotFound)
}

func (suite *LeadServiceTestSuite) TestTriggerAutoAssign_LeadNotFound() {
	leadID := uuid.New()
	suite.mockLeads.EXPECT().GetByID(leadID).Return(nil, gorm.ErrRecordNotFound)

	outcome, err := suite.leadService.TriggerAutoAssign(leadID)

	assert.Nil(suite.T(), outcome)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadNotFound)
}

func (suite *LeadServiceTestSuite) TestManualAssign_Success() {
	actorID := uuid.New()
	leadID := uuid.New()
	assignee := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Priya Nair",
		Role:      models.UserRoleCRE,
		IsActive:  true,
	}

	suite.mockUsers.EXPECT().GetByID(assignee.ID).Return(assignee, nil)
	suite.mockLeads.EXPECT().Assign(leadID, assignee.ID).Return(nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AssignmentLog) error {
		assert.Equal(suite.T(), models.ActionManualAssignment, entry.Action)
		assert.Equal(suite.T(), actorID, *entry.ActorUserID)
		return nil
	})

	result, err := suite.leadService.ManualAssign(actorID, &service.ManualAssignRequest{
		LeadIDs:    []uuid.UUID{leadID},
		AssignedTo: assignee.ID,
	})

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Succeeded, 1)
	assert.Empty(suite.T(), result.Failed)
}

func (suite *LeadServiceTestSuite) TestManualAssign_InactiveAssignee() {
	assignee := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Former Employee",
		Role:      models.UserRoleCRE,
		IsActive:  false,
	}

	suite.mockUsers.EXPECT().GetByID(assignee.ID).Return(assignee, nil)

	result, err := suite.leadService.ManualAssign(uuid.New(), &service.ManualAssignRequest{
		LeadIDs:    []uuid.UUID{uuid.New()},
		AssignedTo: assignee.ID,
	})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssigneeNotAssignable)
}

func (suite *LeadServiceTestSuite) TestManualAssign_AssigneeNotFound() {
	assigneeID := uuid.New()
	suite.mockUsers.EXPECT().GetByID(assigneeID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.leadService.ManualAssign(uuid.New(), &service.ManualAssignRequest{
		LeadIDs:    []uuid.UUID{uuid.New()},
		AssignedTo: assigneeID,
	})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *LeadServiceTestSuite) TestBulkAssignBySource_SourceNotFound() {
	sourceID := uuid.New()
	suite.mockSources.EXPECT().GetByID(sourceID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.leadService.BulkAssignBySource(uuid.New(), &service.BulkAssignBySourceRequest{
		SourceID: sourceID,
	})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSourceNotFound)
}

func (suite *LeadServiceTestSuite) TestBulkAssignBySource_ExplicitAssignee() {
	actorID := uuid.New()
	source := suite.activeSource()
	assignee := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Priya Nair",
		Role:      models.UserRoleCRE,
		IsActive:  true,
	}
	leads := []models.Lead{
		{BaseModel: models.BaseModel{ID: uuid.New()}, SourceID: source.ID},
	}

	suite.mockSources.EXPECT().GetByID(source.ID).Return(source, nil)
	suite.mockUsers.EXPECT().GetByID(assignee.ID).Return(assignee, nil)
	suite.mockLeads.EXPECT().GetUnassignedBySource(source.ID).Return(leads, nil)
	suite.mockLeads.EXPECT().Assign(leads[0].ID, assignee.ID).Return(nil)
	suite.mockLogs.EXPECT().Create(gomock.Any()).Return(nil)

	result, err := suite.leadService.BulkAssignBySource(actorID, &service.BulkAssignBySourceRequest{
		SourceID:   source.ID,
		AssignedTo: &assignee.ID,
	})

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Succeeded, 1)
}

func (suite *LeadServiceTestSuite) TestGetLogs_LeadNotFound() {
	leadID := uuid.New()
	suite.mockLeads.EXPECT().GetByID(leadID).Return(nil, gorm.ErrRecordNotFound)

	logs, total, err := suite.leadService.GetLogs(leadID, 50, 0)

	assert.Nil(suite.T(), logs)
	assert.Zero(suite.T(), total)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadNotFound)
}

func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}
