package service

import (
	"errors"
	"fmt"

	"dealership-crm-backend/internal/assignment"
	"dealership-crm-backend/internal/database/models"
	apperrors "dealership-crm-backend/internal/errors"
	"dealership-crm-backend/internal/logger"
	"dealership-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fallbackWalkLimit bounds the save-time cycle walk. Longer chains than
// this are rejected outright; the engine separately caps traversal at
// evaluation time.
const fallbackWalkLimit = 25

// RuleService handles business logic for assignment rules and their
// members. All rule-configuration invariants are enforced here, at save
// time, so the engine never has to reject a rule mid-evaluation.
type RuleService struct {
	ruleRepo   repository.AssignmentRuleRepositoryInterface
	memberRepo repository.RuleMemberRepositoryInterface
	cursorRepo repository.RotationCursorRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	sourceRepo repository.SourceRepositoryInterface
	logRepo    repository.AssignmentLogRepositoryInterface
	engine     *assignment.Engine
	validator  *validator.Validate
	log        *logger.Logger
}

// NewRuleService creates a new rule service
func NewRuleService(
	ruleRepo repository.AssignmentRuleRepositoryInterface,
	memberRepo repository.RuleMemberRepositoryInterface,
	cursorRepo repository.RotationCursorRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	sourceRepo repository.SourceRepositoryInterface,
	logRepo repository.AssignmentLogRepositoryInterface,
	engine *assignment.Engine,
	validator *validator.Validate,
) *RuleService {
	return &RuleService{
		ruleRepo:   ruleRepo,
		memberRepo: memberRepo,
		cursorRepo: cursorRepo,
		userRepo:   userRepo,
		sourceRepo: sourceRepo,
		logRepo:    logRepo,
		engine:     engine,
		validator:  validator,
		log:        logger.New().WithField("service", "rule"),
	}
}

// CreateRuleRequest represents the request to create an assignment rule
type CreateRuleRequest struct {
	Name             string             `json:"name" validate:"required,min=1,max=100"`
	SourceID         *uuid.UUID         `json:"source_id,omitempty"`
	RuleType         models.RuleType    `json:"rule_type" validate:"required"`
	Priority         int                `json:"priority"`
	IsActive         *bool              `json:"is_active,omitempty"`
	Config           *models.RuleConfig `json:"config,omitempty"`
	ActiveFrom       *string            `json:"active_from,omitempty"`
	ActiveTo         *string            `json:"active_to,omitempty"`
	ActiveDays       []int              `json:"active_days,omitempty"`
	FallbackRuleID   *uuid.UUID         `json:"fallback_rule_id,omitempty"`
	FallbackToManual *bool              `json:"fallback_to_manual,omitempty"`
}

// UpdateRuleRequest represents the request to update an assignment rule
type UpdateRuleRequest struct {
	Name             *string            `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	SourceID         *uuid.UUID         `json:"source_id,omitempty"`
	ClearSource      bool               `json:"clear_source,omitempty"`
	Priority         *int               `json:"priority,omitempty"`
	IsActive         *bool              `json:"is_active,omitempty"`
	Config           *models.RuleConfig `json:"config,omitempty"`
	ActiveFrom       *string            `json:"active_from,omitempty"`
	ActiveTo         *string            `json:"active_to,omitempty"`
	ActiveDays       []int              `json:"active_days,omitempty"`
	FallbackRuleID   *uuid.UUID         `json:"fallback_rule_id,omitempty"`
	ClearFallback    bool               `json:"clear_fallback,omitempty"`
	FallbackToManual *bool              `json:"fallback_to_manual,omitempty"`
}

// AddMemberRequest represents the request to enroll a CRE in a rule
type AddMemberRequest struct {
	UserID     uuid.UUID `json:"user_id" validate:"required"`
	Percentage *float64  `json:"percentage,omitempty"`
	Weight     *int      `json:"weight,omitempty"`
	IsActive   *bool     `json:"is_active,omitempty"`
}

// UpdateMemberRequest represents the request to update a rule member
type UpdateMemberRequest struct {
	Percentage *float64 `json:"percentage,omitempty"`
	Weight     *int     `json:"weight,omitempty"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

// RuleResponse represents an assignment rule with its members
type RuleResponse struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"name"`
	SourceID         *uuid.UUID         `json:"source_id,omitempty"`
	RuleType         models.RuleType    `json:"rule_type"`
	Priority         int                `json:"priority"`
	IsActive         bool               `json:"is_active"`
	Config           models.RuleConfig  `json:"config"`
	ActiveFrom       *string            `json:"active_from,omitempty"`
	ActiveTo         *string            `json:"active_to,omitempty"`
	ActiveDays       []int              `json:"active_days"`
	FallbackRuleID   *uuid.UUID         `json:"fallback_rule_id,omitempty"`
	FallbackToManual bool               `json:"fallback_to_manual"`
	Members          []RuleMemberDetail `json:"members,omitempty"`
	CreatedAt        string             `json:"created_at"`
	UpdatedAt        string             `json:"updated_at"`
}

// RuleMemberDetail represents a member inside a rule response
type RuleMemberDetail struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Percentage *float64  `json:"percentage,omitempty"`
	Weight     *int      `json:"weight,omitempty"`
	IsActive   bool      `json:"is_active"`
}

// RuleListResponse represents a paginated list of assignment rules
type RuleListResponse struct {
	Rules    []RuleResponse `json:"rules"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreateRule creates a new assignment rule after validating every
// configuration invariant: rule type, time window, weekday set, weighted
// mode and fallback chain acyclicity.
func (s *RuleService) CreateRule(req *CreateRuleRequest) (*RuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.RuleType.IsValid() {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("invalid rule type %q", req.RuleType))
	}

	if err := s.validateWindow(req.ActiveFrom, req.ActiveTo); err != nil {
		return nil, err
	}
	if err := validateActiveDays(req.ActiveDays); err != nil {
		return nil, err
	}

	config := models.RuleConfig{}
	if req.Config != nil {
		config = *req.Config
	}
	if req.RuleType == models.RuleTypeWeighted && req.Config != nil && config.Mode != "" && !config.Mode.IsValid() {
		return nil, apperrors.ErrInvalidWeightedConfig
	}

	if req.SourceID != nil {
		if _, err := s.sourceRepo.GetByID(*req.SourceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSourceNotFound
			}
			return nil, fmt.Errorf("failed to verify source: %w", err)
		}
	}

	if req.FallbackRuleID != nil {
		if err := s.validateFallbackChain(uuid.Nil, *req.FallbackRuleID); err != nil {
			return nil, err
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	fallbackToManual := false
	if req.FallbackToManual != nil {
		fallbackToManual = *req.FallbackToManual
	}

	rule := &models.AssignmentRule{
		Name:             req.Name,
		SourceID:         req.SourceID,
		RuleType:         req.RuleType,
		Priority:         req.Priority,
		IsActive:         isActive,
		Config:           config,
		ActiveFrom:       req.ActiveFrom,
		ActiveTo:         req.ActiveTo,
		ActiveDays:       models.DayList(req.ActiveDays),
		FallbackRuleID:   req.FallbackRuleID,
		FallbackToManual: fallbackToManual,
	}

	if err := s.ruleRepo.Create(rule); err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}

	s.log.WithField("rule_id", rule.ID).Info("assignment rule created")
	return s.toRuleResponse(rule, nil), nil
}

// GetRule retrieves a rule with its members
func (s *RuleService) GetRule(id uuid.UUID) (*RuleResponse, error) {
	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	members, err := s.memberRepo.GetByRuleID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rule members: %w", err)
	}

	return s.toRuleResponse(rule, members), nil
}

// ListRules retrieves all rules with pagination
func (s *RuleService) ListRules(limit, offset int) (*RuleListResponse, error) {
	rules, total, err := s.ruleRepo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}

	responses := make([]RuleResponse, len(rules))
	for i := range rules {
		responses[i] = *s.toRuleResponse(&rules[i], nil)
	}

	page := 1
	if limit > 0 {
		page = offset/limit + 1
	}
	return &RuleListResponse{Rules: responses, Total: total, Page: page, PageSize: limit}, nil
}

// UpdateRule applies a partial update, re-validating the configuration
// invariants that the change touches.
func (s *RuleService) UpdateRule(id uuid.UUID, req *UpdateRuleRequest) (*RuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.ClearSource {
		rule.SourceID = nil
	} else if req.SourceID != nil {
		if _, err := s.sourceRepo.GetByID(*req.SourceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSourceNotFound
			}
			return nil, fmt.Errorf("failed to verify source: %w", err)
		}
		rule.SourceID = req.SourceID
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if req.Config != nil {
		if rule.RuleType == models.RuleTypeWeighted && req.Config.Mode != "" {
			if !req.Config.Mode.IsValid() {
				return nil, apperrors.ErrInvalidWeightedConfig
			}
			// A mode change must agree with the shares the existing
			// members already carry.
			members, err := s.memberRepo.GetByRuleID(id)
			if err != nil {
				return nil, fmt.Errorf("failed to get rule members: %w", err)
			}
			for i := range members {
				if !shareMatchesMode(req.Config.Mode, members[i].Percentage, members[i].Weight) {
					return nil, apperrors.ErrMixedMemberModes
				}
			}
		}
		rule.Config = *req.Config
	}
	if req.ActiveFrom != nil {
		rule.ActiveFrom = req.ActiveFrom
	}
	if req.ActiveTo != nil {
		rule.ActiveTo = req.ActiveTo
	}
	if err := s.validateWindow(rule.ActiveFrom, rule.ActiveTo); err != nil {
		return nil, err
	}
	if req.ActiveDays != nil {
		if err := validateActiveDays(req.ActiveDays); err != nil {
			return nil, err
		}
		rule.ActiveDays = models.DayList(req.ActiveDays)
	}
	if req.ClearFallback {
		rule.FallbackRuleID = nil
	} else if req.FallbackRuleID != nil {
		if err := s.validateFallbackChain(rule.ID, *req.FallbackRuleID); err != nil {
			return nil, err
		}
		rule.FallbackRuleID = req.FallbackRuleID
	}
	if req.FallbackToManual != nil {
		rule.FallbackToManual = *req.FallbackToManual
	}

	if err := s.ruleRepo.Update(rule); err != nil {
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}

	members, err := s.memberRepo.GetByRuleID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rule members: %w", err)
	}
	return s.toRuleResponse(rule, members), nil
}

// DeleteRule removes a rule, its members and its rotation cursor. A rule
// still referenced as another rule's fallback cannot be deleted: the
// referrer must be repointed or cleared first.
func (s *RuleService) DeleteRule(id uuid.UUID) error {
	if _, err := s.ruleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRuleNotFound
		}
		return fmt.Errorf("failed to get rule: %w", err)
	}

	referencing, err := s.ruleRepo.CountReferencingFallback(id)
	if err != nil {
		return fmt.Errorf("failed to check fallback references: %w", err)
	}
	if referencing > 0 {
		return apperrors.ErrRuleReferencedAsFallback
	}

	if err := s.ruleRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	if err := s.cursorRepo.DeleteByRuleID(id); err != nil {
		return fmt.Errorf("failed to delete rotation cursor: %w", err)
	}

	s.log.WithField("rule_id", id).Info("assignment rule deleted")
	return nil
}

// AddMember enrolls a user in a rule's distribution pool. The user must
// be an active assignable agent; the member's share mode must not mix
// with the rule's existing membership.
func (s *RuleService) AddMember(ruleID uuid.UUID, req *AddMemberRequest) (*RuleMemberDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rule, err := s.ruleRepo.GetByID(ruleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	if err := s.validateShares(rule, req.Percentage, req.Weight); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if !user.IsActive || (user.Role != models.UserRoleCRE && user.Role != models.UserRoleTeamLead) {
		return nil, apperrors.ErrMemberUserNotAssignable
	}

	if _, err := s.memberRepo.GetByRuleAndUser(ruleID, req.UserID); err == nil {
		return nil, apperrors.ErrMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing member: %w", err)
	}

	mode, err := s.membershipMode(ruleID, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if mode != "" && !shareMatchesMode(mode, req.Percentage, req.Weight) {
		return nil, apperrors.ErrMixedMemberModes
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	member := &models.RuleMember{
		RuleID:     ruleID,
		UserID:     req.UserID,
		Percentage: req.Percentage,
		Weight:     req.Weight,
		IsActive:   isActive,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create rule member: %w", err)
	}

	s.warnOnPercentageSum(ruleID)
	return toMemberDetail(member), nil
}

// UpdateMember applies a partial update to a rule member
func (s *RuleService) UpdateMember(ruleID, memberID uuid.UUID, req *UpdateMemberRequest) (*RuleMemberDetail, error) {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleMemberNotFound
		}
		return nil, fmt.Errorf("failed to get rule member: %w", err)
	}
	if member.RuleID != ruleID {
		return nil, apperrors.ErrRuleMemberNotFound
	}

	rule, err := s.ruleRepo.GetByID(ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	if req.Percentage != nil || req.Weight != nil {
		percentage := member.Percentage
		weight := member.Weight
		if req.Percentage != nil {
			percentage = req.Percentage
			weight = nil
		}
		if req.Weight != nil {
			weight = req.Weight
			percentage = nil
		}
		if err := s.validateShares(rule, percentage, weight); err != nil {
			return nil, err
		}
		// The new share must stay in the mode established by the other
		// members, same as on add.
		mode, err := s.membershipMode(ruleID, member.ID)
		if err != nil {
			return nil, err
		}
		if mode != "" && !shareMatchesMode(mode, percentage, weight) {
			return nil, apperrors.ErrMixedMemberModes
		}
		member.Percentage = percentage
		member.Weight = weight
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update rule member: %w", err)
	}

	s.warnOnPercentageSum(ruleID)
	return toMemberDetail(member), nil
}

// RemoveMember deletes a member from a rule. Historical assignment logs
// are untouched.
func (s *RuleService) RemoveMember(ruleID, memberID uuid.UUID) error {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRuleMemberNotFound
		}
		return fmt.Errorf("failed to get rule member: %w", err)
	}
	if member.RuleID != ruleID {
		return apperrors.ErrRuleMemberNotFound
	}
	return s.memberRepo.Delete(memberID)
}

// GetStats derives assignment totals for a rule from the audit log
func (s *RuleService) GetStats(ruleID uuid.UUID) (*assignment.RuleStats, error) {
	if _, err := s.ruleRepo.GetByID(ruleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}
	return s.engine.Stats(ruleID)
}

// GetLogs retrieves the audit entries produced by a rule
func (s *RuleService) GetLogs(ruleID uuid.UUID, limit, offset int) ([]models.AssignmentLog, int64, error) {
	if _, err := s.ruleRepo.GetByID(ruleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperrors.ErrRuleNotFound
		}
		return nil, 0, fmt.Errorf("failed to get rule: %w", err)
	}
	return s.logRepo.GetByRuleID(ruleID, limit, offset)
}

// validateFallbackChain rejects self-references and cycles. ruleID is the
// rule being configured (uuid.Nil on create); target is the proposed
// fallback. The walk follows existing fallback pointers and fails if it
// ever returns to ruleID or revisits a rule.
func (s *RuleService) validateFallbackChain(ruleID, target uuid.UUID) error {
	if target == ruleID {
		return apperrors.ErrFallbackSelfReference
	}

	visited := map[uuid.UUID]bool{}
	if ruleID != uuid.Nil {
		visited[ruleID] = true
	}

	current := target
	for i := 0; i < fallbackWalkLimit; i++ {
		if visited[current] {
			return apperrors.ErrFallbackCycle
		}
		visited[current] = true

		rule, err := s.ruleRepo.GetByID(current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRuleNotFound
			}
			return fmt.Errorf("failed to walk fallback chain: %w", err)
		}
		if rule.FallbackRuleID == nil {
			return nil
		}
		current = *rule.FallbackRuleID
	}
	return apperrors.ErrFallbackCycle
}

// validateShares checks share fields against the rule type: weighted
// members carry exactly one of percentage/weight within valid ranges;
// round-robin members carry neither.
func (s *RuleService) validateShares(rule *models.AssignmentRule, percentage *float64, weight *int) error {
	if rule.RuleType == models.RuleTypeRoundRobin {
		if percentage != nil || weight != nil {
			return apperrors.NewConfigurationError("round-robin members carry no percentage or weight")
		}
		return nil
	}

	if percentage == nil && weight == nil {
		return apperrors.NewConfigurationError("weighted members require a percentage or a weight")
	}
	if percentage != nil && weight != nil {
		return apperrors.ErrMixedMemberModes
	}
	if percentage != nil && (*percentage <= 0 || *percentage > 100) {
		return apperrors.ErrInvalidPercentage
	}
	if weight != nil && *weight <= 0 {
		return apperrors.ErrInvalidWeight
	}
	if rule.Config.Mode == models.WeightedModePercentage && percentage == nil {
		return apperrors.ErrMixedMemberModes
	}
	if rule.Config.Mode == models.WeightedModeWeight && weight == nil {
		return apperrors.ErrMixedMemberModes
	}
	return nil
}

// membershipMode reports the share mode already established by a rule's
// members: "percentage", "weight", or "" when the pool is empty or
// round-robin. exclude skips one member, for update paths where that
// member's own share is about to change.
func (s *RuleService) membershipMode(ruleID, exclude uuid.UUID) (models.WeightedMode, error) {
	members, err := s.memberRepo.GetByRuleID(ruleID)
	if err != nil {
		return "", fmt.Errorf("failed to get rule members: %w", err)
	}
	for i := range members {
		if members[i].ID == exclude {
			continue
		}
		if members[i].Percentage != nil {
			return models.WeightedModePercentage, nil
		}
		if members[i].Weight != nil {
			return models.WeightedModeWeight, nil
		}
	}
	return "", nil
}

func shareMatchesMode(mode models.WeightedMode, percentage *float64, weight *int) bool {
	switch mode {
	case models.WeightedModePercentage:
		return percentage != nil
	case models.WeightedModeWeight:
		return weight != nil
	}
	return true
}

// warnOnPercentageSum logs when active percentages exceed 100. The
// engine normalizes at draw time, so this is informational only.
func (s *RuleService) warnOnPercentageSum(ruleID uuid.UUID) {
	members, err := s.memberRepo.GetActiveByRuleID(ruleID)
	if err != nil {
		return
	}
	var sum float64
	for i := range members {
		if members[i].Percentage != nil {
			sum += *members[i].Percentage
		}
	}
	if sum > 100 {
		s.log.WithField("rule_id", ruleID).WithField("sum", sum).
			Warn("active member percentages exceed 100; draws normalize by the actual sum")
	}
}

func (s *RuleService) validateWindow(from, to *string) error {
	if from != nil && !assignment.ValidClock(*from) {
		return apperrors.ErrInvalidTimeWindow
	}
	if to != nil && !assignment.ValidClock(*to) {
		return apperrors.ErrInvalidTimeWindow
	}
	return nil
}

func validateActiveDays(days []int) error {
	for _, day := range days {
		if day < 0 || day > 6 {
			return apperrors.ErrInvalidActiveDays
		}
	}
	return nil
}

func toMemberDetail(member *models.RuleMember) *RuleMemberDetail {
	return &RuleMemberDetail{
		ID:         member.ID,
		UserID:     member.UserID,
		Percentage: member.Percentage,
		Weight:     member.Weight,
		IsActive:   member.IsActive,
	}
}

func (s *RuleService) toRuleResponse(rule *models.AssignmentRule, members []models.RuleMember) *RuleResponse {
	resp := &RuleResponse{
		ID:               rule.ID,
		Name:             rule.Name,
		SourceID:         rule.SourceID,
		RuleType:         rule.RuleType,
		Priority:         rule.Priority,
		IsActive:         rule.IsActive,
		Config:           rule.Config,
		ActiveFrom:       rule.ActiveFrom,
		ActiveTo:         rule.ActiveTo,
		ActiveDays:       rule.ActiveDays,
		FallbackRuleID:   rule.FallbackRuleID,
		FallbackToManual: rule.FallbackToManual,
		CreatedAt:        rule.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        rule.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if resp.ActiveDays == nil {
		resp.ActiveDays = []int{}
	}
	for i := range members {
		resp.Members = append(resp.Members, *toMemberDetail(&members[i]))
	}
	return resp
}
