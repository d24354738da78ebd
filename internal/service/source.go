package service

import (
	"errors"
	"fmt"

	"dealership-crm-backend/internal/database/models"
	apperrors "dealership-crm-backend/internal/errors"
	"dealership-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SourceService handles business logic for lead sources
type SourceService struct {
	sourceRepo repository.SourceRepositoryInterface
	validator  *validator.Validate
}

// NewSourceService creates a new source service
func NewSourceService(sourceRepo repository.SourceRepositoryInterface, validator *validator.Validate) *SourceService {
	return &SourceService{sourceRepo: sourceRepo, validator: validator}
}

// CreateSourceRequest represents the request to create a source
type CreateSourceRequest struct {
	Name       string            `json:"name" validate:"required,min=1,max=100"`
	SourceType models.SourceType `json:"source_type" validate:"required"`
}

// UpdateSourceRequest represents the request to update a source
type UpdateSourceRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// CreateSource creates a new source
func (s *SourceService) CreateSource(req *CreateSourceRequest) (*models.Source, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.SourceType.IsValid() {
		return nil, apperrors.NewValidationError("source_type", fmt.Sprintf("invalid source type %q", req.SourceType))
	}

	if _, err := s.sourceRepo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrSourceExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing source: %w", err)
	}

	source := &models.Source{
		Name:       req.Name,
		SourceType: req.SourceType,
		IsActive:   true,
	}
	if err := s.sourceRepo.Create(source); err != nil {
		return nil, fmt.Errorf("failed to create source: %w", err)
	}
	return source, nil
}

// GetSource retrieves a source by ID
func (s *SourceService) GetSource(id uuid.UUID) (*models.Source, error) {
	source, err := s.sourceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSourceNotFound
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}
	return source, nil
}

// ListSources retrieves sources with pagination
func (s *SourceService) ListSources(limit, offset int) ([]models.Source, int64, error) {
	return s.sourceRepo.GetAll(limit, offset)
}

// UpdateSource applies a partial update to a source
func (s *SourceService) UpdateSource(id uuid.UUID, req *UpdateSourceRequest) (*models.Source, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	source, err := s.sourceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSourceNotFound
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	if req.Name != nil {
		source.Name = *req.Name
	}
	if req.IsActive != nil {
		source.IsActive = *req.IsActive
	}

	if err := s.sourceRepo.Update(source); err != nil {
		return nil, fmt.Errorf("failed to update source: %w", err)
	}
	return source, nil
}

// DeleteSource removes a source
func (s *SourceService) DeleteSource(id uuid.UUID) error {
	if _, err := s.sourceRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSourceNotFound
		}
		return fmt.Errorf("failed to get source: %w", err)
	}
	return s.sourceRepo.Delete(id)
}

// ResetTodaysCounts zeroes every source's daily counter. Called by the
// ingestion side at the start of each day.
func (s *SourceService) ResetTodaysCounts() error {
	return s.sourceRepo.ResetTodaysCounts()
}
