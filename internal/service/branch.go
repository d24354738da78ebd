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

// BranchService handles business logic for dealership branches
type BranchService struct {
	branchRepo repository.BranchRepositoryInterface
	validator  *validator.Validate
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo repository.BranchRepositoryInterface, validator *validator.Validate) *BranchService {
	return &BranchService{branchRepo: branchRepo, validator: validator}
}

// CreateBranchRequest represents the request to create a branch
type CreateBranchRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	City    string `json:"city,omitempty" validate:"omitempty,max=100"`
	Address string `json:"address,omitempty" validate:"omitempty,max=255"`
}

// UpdateBranchRequest represents the request to update a branch
type UpdateBranchRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	City     *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=255"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// CreateBranch creates a new branch
func (s *BranchService) CreateBranch(req *CreateBranchRequest) (*models.Branch, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.branchRepo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrBranchExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing branch: %w", err)
	}

	branch := &models.Branch{
		Name:     req.Name,
		City:     req.City,
		Address:  req.Address,
		IsActive: true,
	}
	if err := s.branchRepo.Create(branch); err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}
	return branch, nil
}

// GetBranch retrieves a branch by ID
func (s *BranchService) GetBranch(id uuid.UUID) (*models.Branch, error) {
	branch, err := s.branchRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}
	return branch, nil
}

// ListBranches retrieves branches with pagination
func (s *BranchService) ListBranches(limit, offset int) ([]models.Branch, int64, error) {
	return s.branchRepo.GetAll(limit, offset)
}

// UpdateBranch applies a partial update to a branch
func (s *BranchService) UpdateBranch(id uuid.UUID, req *UpdateBranchRequest) (*models.Branch, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	branch, err := s.branchRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.City != nil {
		branch.City = *req.City
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}

	if err := s.branchRepo.Update(branch); err != nil {
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}
	return branch, nil
}

// DeleteBranch removes a branch
func (s *BranchService) DeleteBranch(id uuid.UUID) error {
	if _, err := s.branchRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBranchNotFound
		}
		return fmt.Errorf("failed to get branch: %w", err)
	}
	return s.branchRepo.Delete(id)
}
