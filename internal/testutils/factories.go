package testutils

import (
	"time"

	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// BranchFactory provides methods to create test Branch data
type BranchFactory struct{}

// NewBranchFactory creates a new BranchFactory
func NewBranchFactory() *BranchFactory {
	return &BranchFactory{}
}

// Create creates a test Branch with default values
func (f *BranchFactory) Create() *models.Branch {
	return &models.Branch{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Branch " + uuid.New().String()[:6],
		City:     "Pune",
		Address:  "123 Showroom Road",
		IsActive: true,
	}
}

// WithName sets a custom name for the branch
func (f *BranchFactory) WithName(name string) *models.Branch {
	branch := f.Create()
	branch.Name = name
	return branch
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The default role is
// cre so the user is a valid assignment target.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName: "Test CRE",
		// Unique email derived from the ID to avoid index conflicts
		Email:        "cre-" + id.String()[:8] + "@test.com",
		PhoneNumber:  "+91-9800000000",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         models.UserRoleCRE,
		IsActive:     true,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithBranch sets the branch ID for the user
func (f *UserFactory) WithBranch(branchID uuid.UUID) *models.User {
	user := f.Create()
	user.BranchID = &branchID
	return user
}

// Inactive creates a deactivated user
func (f *UserFactory) Inactive() *models.User {
	user := f.Create()
	user.IsActive = false
	return user
}

// SourceFactory provides methods to create test Source data
type SourceFactory struct{}

// NewSourceFactory creates a new SourceFactory
func NewSourceFactory() *SourceFactory {
	return &SourceFactory{}
}

// Create creates a test Source with default values
func (f *SourceFactory) Create() *models.Source {
	id := uuid.New()
	return &models.Source{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Test Source " + id.String()[:6],
		SourceType: models.SourceTypeWebsite,
		IsActive:   true,
	}
}

// WithType sets a custom source type
func (f *SourceFactory) WithType(sourceType models.SourceType) *models.Source {
	source := f.Create()
	source.SourceType = sourceType
	return source
}

// Inactive creates a deactivated source
func (f *SourceFactory) Inactive() *models.Source {
	source := f.Create()
	source.IsActive = false
	return source
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values. SourceID must be set
// to an existing source before persisting.
func (f *LeadFactory) Create() *models.Lead {
	return &models.Lead{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CustomerName: "Test Customer",
		PhoneNumber:  "+91-9811111111",
		Email:        "customer@test.com",
		VehicleModel: "Compact SUV",
		SourceID:     uuid.New(),
		Status:       models.LeadStatusNew,
	}
}

// WithSource sets the source ID for the lead
func (f *LeadFactory) WithSource(sourceID uuid.UUID) *models.Lead {
	lead := f.Create()
	lead.SourceID = sourceID
	return lead
}

// WithExternalID sets the upstream identifier for ingested leads
func (f *LeadFactory) WithExternalID(sourceID uuid.UUID, externalID string) *models.Lead {
	lead := f.WithSource(sourceID)
	lead.ExternalID = externalID
	return lead
}

// Assigned creates a lead already assigned to a user
func (f *LeadFactory) Assigned(sourceID, userID uuid.UUID) *models.Lead {
	lead := f.WithSource(sourceID)
	lead.AssignedTo = &userID
	return lead
}

// RuleFactory provides methods to create test AssignmentRule data
type RuleFactory struct{}

// NewRuleFactory creates a new RuleFactory
func NewRuleFactory() *RuleFactory {
	return &RuleFactory{}
}

// Create creates a round-robin rule with default values
func (f *RuleFactory) Create() *models.AssignmentRule {
	id := uuid.New()
	return &models.AssignmentRule{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Rule " + id.String()[:6],
		RuleType: models.RuleTypeRoundRobin,
		Priority: 0,
		IsActive: true,
	}
}

// WithSource binds the rule to a specific source
func (f *RuleFactory) WithSource(sourceID uuid.UUID) *models.AssignmentRule {
	rule := f.Create()
	rule.SourceID = &sourceID
	return rule
}

// WithPriority sets the rule priority
func (f *RuleFactory) WithPriority(priority int) *models.AssignmentRule {
	rule := f.Create()
	rule.Priority = priority
	return rule
}

// Weighted creates a weighted rule in the given mode
func (f *RuleFactory) Weighted(mode models.WeightedMode) *models.AssignmentRule {
	rule := f.Create()
	rule.RuleType = models.RuleTypeWeighted
	rule.Config = models.RuleConfig{Mode: mode}
	return rule
}

// WithWindow bounds the rule to a time-of-day window
func (f *RuleFactory) WithWindow(from, to string) *models.AssignmentRule {
	rule := f.Create()
	rule.ActiveFrom = &from
	rule.ActiveTo = &to
	return rule
}

// MemberFactory provides methods to create test RuleMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a rule member without a share, for round-robin rules
func (f *MemberFactory) Create(ruleID, userID uuid.UUID) *models.RuleMember {
	return &models.RuleMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RuleID:   ruleID,
		UserID:   userID,
		IsActive: true,
	}
}

// WithPercentage creates a member with a percentage share
func (f *MemberFactory) WithPercentage(ruleID, userID uuid.UUID, percentage float64) *models.RuleMember {
	member := f.Create(ruleID, userID)
	member.Percentage = &percentage
	return member
}

// WithWeight creates a member with a deterministic weight share
func (f *MemberFactory) WithWeight(ruleID, userID uuid.UUID, weight int) *models.RuleMember {
	member := f.Create(ruleID, userID)
	member.Weight = &weight
	return member
}

// LogFactory provides methods to create test AssignmentLog data
type LogFactory struct{}

// NewLogFactory creates a new LogFactory
func NewLogFactory() *LogFactory {
	return &LogFactory{}
}

// AutoAssigned creates an auto-assignment log entry
func (f *LogFactory) AutoAssigned(leadID, ruleID, userID uuid.UUID) *models.AssignmentLog {
	return &models.AssignmentLog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeadID:     leadID,
		AssignedTo: &userID,
		Action:     models.ActionAutoAssignment,
		RuleID:     &ruleID,
	}
}

// Manual creates a manual assignment log entry
func (f *LogFactory) Manual(leadID, actorID, userID uuid.UUID) *models.AssignmentLog {
	return &models.AssignmentLog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeadID:      leadID,
		AssignedTo:  &userID,
		Action:      models.ActionManualAssignment,
		ActorUserID: &actorID,
	}
}
