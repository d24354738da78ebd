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

// LeadService handles business logic for leads: creation with source
// counter bookkeeping and automatic assignment, manual and bulk
// assignment, and audit log reads.
type LeadService struct {
	leadRepo   repository.LeadRepositoryInterface
	sourceRepo repository.SourceRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	logRepo    repository.AssignmentLogRepositoryInterface
	engine     *assignment.Engine
	validator  *validator.Validate
	// bulkWorkers bounds concurrency of auto-path bulk operations.
	bulkWorkers int
	log         *logger.Logger
}

// NewLeadService creates a new lead service
func NewLeadService(
	leadRepo repository.LeadRepositoryInterface,
	sourceRepo repository.SourceRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	logRepo repository.AssignmentLogRepositoryInterface,
	engine *assignment.Engine,
	validator *validator.Validate,
	bulkWorkers int,
) *LeadService {
	if bulkWorkers < 1 {
		bulkWorkers = 1
	}
	return &LeadService{
		leadRepo:    leadRepo,
		sourceRepo:  sourceRepo,
		userRepo:    userRepo,
		logRepo:     logRepo,
		engine:      engine,
		validator:   validator,
		bulkWorkers: bulkWorkers,
		log:         logger.New().WithField("service", "lead"),
	}
}

// CreateLeadRequest represents the request to create a lead
type CreateLeadRequest struct {
	CustomerName string     `json:"customer_name" validate:"required,min=1,max=100"`
	PhoneNumber  string     `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Email        string     `json:"email,omitempty" validate:"omitempty,email"`
	VehicleModel string     `json:"vehicle_model,omitempty" validate:"omitempty,max=100"`
	SourceID     uuid.UUID  `json:"source_id" validate:"required"`
	BranchID     *uuid.UUID `json:"branch_id,omitempty"`
	ExternalID   string     `json:"external_id,omitempty" validate:"omitempty,max=100"`
	Remarks      string     `json:"remarks,omitempty"`
	// SkipAutoAssign leaves the lead unassigned for manual triage.
	SkipAutoAssign bool `json:"skip_auto_assign,omitempty"`
}

// ManualAssignRequest represents the request to manually assign leads
type ManualAssignRequest struct {
	LeadIDs    []uuid.UUID `json:"lead_ids" validate:"required,min=1"`
	AssignedTo uuid.UUID   `json:"assigned_to" validate:"required"`
	Remarks    string      `json:"remarks,omitempty"`
}

// BulkAssignBySourceRequest represents the request to assign every
// unassigned lead of a source. With AssignedTo set the manual path is
// used; without it each lead goes through rule evaluation.
type BulkAssignBySourceRequest struct {
	SourceID   uuid.UUID  `json:"source_id" validate:"required"`
	AssignedTo *uuid.UUID `json:"assigned_to,omitempty"`
	Remarks    string     `json:"remarks,omitempty"`
}

// LeadResponse represents a lead in API responses, with the outcome of
// the assignment attempt when the lead was just created.
type LeadResponse struct {
	ID           uuid.UUID           `json:"id"`
	CustomerName string              `json:"customer_name"`
	PhoneNumber  string              `json:"phone_number,omitempty"`
	Email        string              `json:"email,omitempty"`
	VehicleModel string              `json:"vehicle_model,omitempty"`
	SourceID     uuid.UUID           `json:"source_id"`
	BranchID     *uuid.UUID          `json:"branch_id,omitempty"`
	AssignedTo   *uuid.UUID          `json:"assigned_to,omitempty"`
	Status       models.LeadStatus   `json:"status"`
	ExternalID   string              `json:"external_id,omitempty"`
	Remarks      string              `json:"remarks,omitempty"`
	Assignment   *assignment.Outcome `json:"assignment,omitempty"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Leads    []LeadResponse `json:"leads"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreateLead creates a lead, bumps the source counters and runs the
// assignment engine synchronously. Ingested leads carrying an external
// id are deduplicated per source: re-submitting one returns the existing
// lead instead of creating a duplicate.
func (s *LeadService) CreateLead(req *CreateLeadRequest) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	source, err := s.sourceRepo.GetByID(req.SourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSourceNotFound
		}
		return nil, fmt.Errorf("failed to verify source: %w", err)
	}
	if !source.IsActive {
		return nil, apperrors.ErrSourceInactive
	}

	if req.ExternalID != "" {
		_, err := s.leadRepo.GetByExternalID(req.SourceID, req.ExternalID)
		if err == nil {
			return nil, apperrors.ErrLeadExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing lead: %w", err)
		}
	}

	lead := &models.Lead{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		VehicleModel: req.VehicleModel,
		SourceID:     req.SourceID,
		BranchID:     req.BranchID,
		Status:       models.LeadStatusNew,
		ExternalID:   req.ExternalID,
		Remarks:      req.Remarks,
	}
	if err := s.leadRepo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	if err := s.sourceRepo.IncrementLeadCounts(req.SourceID); err != nil {
		// The lead exists; counter drift is logged, not fatal.
		s.log.WithField("source_id", req.SourceID).WithField("error", err.Error()).
			Warn("failed to increment source lead counters")
	}

	var outcome *assignment.Outcome
	if !req.SkipAutoAssign {
		outcome, err = s.engine.AutoAssign(lead.ID, lead.SourceID)
		if err != nil {
			return nil, fmt.Errorf("auto assignment failed: %w", err)
		}
		if outcome.AssignedTo != nil {
			lead.AssignedTo = outcome.AssignedTo
		}
	}

	return s.toLeadResponse(lead, outcome), nil
}

// GetLead retrieves a lead by ID
func (s *LeadService) GetLead(id uuid.UUID) (*LeadResponse, error) {
	lead, err := s.leadRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return s.toLeadResponse(lead, nil), nil
}

// ListLeads retrieves leads with pagination, optionally filtered by
// source or by current assignee
func (s *LeadService) ListLeads(sourceID, assignedTo *uuid.UUID, limit, offset int) (*LeadListResponse, error) {
	var leads []models.Lead
	var total int64
	var err error

	switch {
	case assignedTo != nil:
		leads, total, err = s.leadRepo.GetByAssignee(*assignedTo, limit, offset)
	case sourceID != nil:
		leads, total, err = s.leadRepo.GetBySourceID(*sourceID, limit, offset)
	default:
		leads, total, err = s.leadRepo.GetAll(limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	responses := make([]LeadResponse, len(leads))
	for i := range leads {
		responses[i] = *s.toLeadResponse(&leads[i], nil)
	}

	page := 1
	if limit > 0 {
		page = offset/limit + 1
	}
	return &LeadListResponse{Leads: responses, Total: total, Page: page, PageSize: limit}, nil
}

// UpdateStatus moves a lead through the sales pipeline
func (s *LeadService) UpdateStatus(id uuid.UUID, status models.LeadStatus) error {
	if !status.IsValid() {
		return apperrors.ErrInvalidStatus
	}
	if err := s.leadRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeadNotFound
		}
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	return nil
}

// TriggerAutoAssign re-runs rule evaluation for one lead. Diagnostic
// path: the compare-and-set inside the engine keeps an already-assigned
// lead untouched.
func (s *LeadService) TriggerAutoAssign(leadID uuid.UUID) (*assignment.Outcome, error) {
	lead, err := s.leadRepo.GetByID(leadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return s.engine.AutoAssign(lead.ID, lead.SourceID)
}

// ManualAssign assigns a batch of leads to one user. The assignee must
// be an active assignable agent; per-lead failures never abort the batch.
func (s *LeadService) ManualAssign(actorID uuid.UUID, req *ManualAssignRequest) (*assignment.BatchResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	assignee, err := s.userRepo.GetByID(req.AssignedTo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify assignee: %w", err)
	}
	if !assignee.IsActive {
		return nil, apperrors.ErrAssigneeNotAssignable
	}

	return s.engine.ManualAssign(actorID, req.LeadIDs, req.AssignedTo, req.Remarks), nil
}

// BulkAssignBySource assigns every unassigned lead of a source, by
// explicit assignee or by per-lead rule evaluation.
func (s *LeadService) BulkAssignBySource(actorID uuid.UUID, req *BulkAssignBySourceRequest) (*assignment.BatchResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.sourceRepo.GetByID(req.SourceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSourceNotFound
		}
		return nil, fmt.Errorf("failed to verify source: %w", err)
	}

	if req.AssignedTo != nil {
		assignee, err := s.userRepo.GetByID(*req.AssignedTo)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to verify assignee: %w", err)
		}
		if !assignee.IsActive {
			return nil, apperrors.ErrAssigneeNotAssignable
		}
	}

	return s.engine.BulkAssignBySource(actorID, req.SourceID, req.AssignedTo, req.Remarks, s.bulkWorkers)
}

// GetLogs retrieves the assignment history of a lead
func (s *LeadService) GetLogs(leadID uuid.UUID, limit, offset int) ([]models.AssignmentLog, int64, error) {
	if _, err := s.leadRepo.GetByID(leadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperrors.ErrLeadNotFound
		}
		return nil, 0, fmt.Errorf("failed to get lead: %w", err)
	}
	return s.logRepo.GetByLeadID(leadID, limit, offset)
}

func (s *LeadService) toLeadResponse(lead *models.Lead, outcome *assignment.Outcome) *LeadResponse {
	return &LeadResponse{
		ID:           lead.ID,
		CustomerName: lead.CustomerName,
		PhoneNumber:  lead.PhoneNumber,
		Email:        lead.Email,
		VehicleModel: lead.VehicleModel,
		SourceID:     lead.SourceID,
		BranchID:     lead.BranchID,
		AssignedTo:   lead.AssignedTo,
		Status:       lead.Status,
		ExternalID:   lead.ExternalID,
		Remarks:      lead.Remarks,
		Assignment:   outcome,
		CreatedAt:    lead.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    lead.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
