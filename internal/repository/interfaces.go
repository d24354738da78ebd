package repository

import (
	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByBranchID(branchID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// BranchRepositoryInterface defines the interface for branch repository operations
type BranchRepositoryInterface interface {
	Create(branch *models.Branch) error
	GetByID(id uuid.UUID) (*models.Branch, error)
	GetByName(name string) (*models.Branch, error)
	GetAll(limit, offset int) ([]models.Branch, int64, error)
	Update(branch *models.Branch) error
	Delete(id uuid.UUID) error
}

// SourceRepositoryInterface defines the interface for source repository operations
type SourceRepositoryInterface interface {
	Create(source *models.Source) error
	GetByID(id uuid.UUID) (*models.Source, error)
	GetByName(name string) (*models.Source, error)
	GetAll(limit, offset int) ([]models.Source, int64, error)
	Update(source *models.Source) error
	Delete(id uuid.UUID) error
	IncrementLeadCounts(id uuid.UUID) error
	ResetTodaysCounts() error
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	GetByExternalID(sourceID uuid.UUID, externalID string) (*models.Lead, error)
	GetAll(limit, offset int) ([]models.Lead, int64, error)
	GetBySourceID(sourceID uuid.UUID, limit, offset int) ([]models.Lead, int64, error)
	GetByAssignee(userID uuid.UUID, limit, offset int) ([]models.Lead, int64, error)
	GetUnassignedBySource(sourceID uuid.UUID) ([]models.Lead, error)
	AssignIfUnassigned(id uuid.UUID, userID uuid.UUID) (bool, error)
	Assign(id uuid.UUID, userID uuid.UUID) error
	UpdateStatus(id uuid.UUID, status models.LeadStatus) error
	Update(lead *models.Lead) error
}

// AssignmentRuleRepositoryInterface defines the interface for assignment rule repository operations
type AssignmentRuleRepositoryInterface interface {
	Create(rule *models.AssignmentRule) error
	GetByID(id uuid.UUID) (*models.AssignmentRule, error)
	GetAll(limit, offset int) ([]models.AssignmentRule, int64, error)
	GetCandidates(sourceID uuid.UUID) ([]models.AssignmentRule, error)
	CountReferencingFallback(id uuid.UUID) (int64, error)
	Update(rule *models.AssignmentRule) error
	Delete(id uuid.UUID) error
}

// RuleMemberRepositoryInterface defines the interface for rule member repository operations
type RuleMemberRepositoryInterface interface {
	Create(member *models.RuleMember) error
	GetByID(id uuid.UUID) (*models.RuleMember, error)
	GetByRuleID(ruleID uuid.UUID) ([]models.RuleMember, error)
	GetActiveByRuleID(ruleID uuid.UUID) ([]models.RuleMember, error)
	GetByRuleAndUser(ruleID, userID uuid.UUID) (*models.RuleMember, error)
	Update(member *models.RuleMember) error
	Delete(id uuid.UUID) error
}

// RotationCursorRepositoryInterface defines the interface for rotation cursor repository operations
type RotationCursorRepositoryInterface interface {
	GetByRuleID(ruleID uuid.UUID) (*models.RotationCursor, error)
	Advance(ruleID uuid.UUID, pick func(lastMemberID *uuid.UUID) (uuid.UUID, error)) error
	DeleteByRuleID(ruleID uuid.UUID) error
}

// AssignmentLogRepositoryInterface defines the interface for assignment log repository operations
type AssignmentLogRepositoryInterface interface {
	Create(entry *models.AssignmentLog) error
	GetByLeadID(leadID uuid.UUID, limit, offset int) ([]models.AssignmentLog, int64, error)
	GetByRuleID(ruleID uuid.UUID, limit, offset int) ([]models.AssignmentLog, int64, error)
	CountAssignedByRule(ruleID uuid.UUID) (int64, error)
	CountAssignedByRulePerUser(ruleID uuid.UUID) (map[uuid.UUID]int64, error)
}
