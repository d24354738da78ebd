package service

import (
	"errors"
	"fmt"

	"dealership-crm-backend/internal/database/models"
	apperrors "dealership-crm-backend/internal/errors"
	"dealership-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	userRepo   repository.UserRepositoryInterface
	branchRepo repository.BranchRepositoryInterface
	validator  *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepositoryInterface, branchRepo repository.BranchRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		userRepo:   userRepo,
		branchRepo: branchRepo,
		validator:  validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	FullName    string           `json:"full_name" validate:"required,min=1,max=100"`
	Email       string           `json:"email" validate:"required,email"`
	PhoneNumber string           `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Password    string           `json:"password" validate:"required,min=8"`
	Role        *models.UserRole `json:"role,omitempty"`
	BranchID    *uuid.UUID       `json:"branch_id,omitempty"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	FullName    *string          `json:"full_name,omitempty" validate:"omitempty,min=1,max=100"`
	PhoneNumber *string          `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Password    *string          `json:"password,omitempty" validate:"omitempty,min=8"`
	Role        *models.UserRole `json:"role,omitempty"`
	BranchID    *uuid.UUID       `json:"branch_id,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID       `json:"id"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	Role        models.UserRole `json:"role"`
	BranchID    *uuid.UUID      `json:"branch_id,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   string          `json:"created_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreateUser creates a new user with a hashed password
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.UserRoleCRE
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.NewValidationError("role", fmt.Sprintf("invalid role %q", *req.Role))
		}
		role = *req.Role
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(*req.BranchID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBranchNotFound
			}
			return nil, fmt.Errorf("failed to verify branch: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		Role:         role,
		BranchID:     req.BranchID,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(user), nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// ListUsers retrieves users with pagination, optionally filtered by branch
func (s *UserService) ListUsers(branchID *uuid.UUID, limit, offset int) (*UserListResponse, error) {
	var users []models.User
	var total int64
	var err error

	if branchID != nil {
		users, total, err = s.userRepo.GetByBranchID(*branchID, limit, offset)
	} else {
		users, total, err = s.userRepo.GetAll(limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}

	page := 1
	if limit > 0 {
		page = offset/limit + 1
	}
	return &UserListResponse{Users: responses, Total: total, Page: page, PageSize: limit}, nil
}

// UpdateUser applies a partial update to a user
func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.NewValidationError("role", fmt.Sprintf("invalid role %q", *req.Role))
		}
		user.Role = *req.Role
	}
	if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(*req.BranchID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBranchNotFound
			}
			return nil, fmt.Errorf("failed to verify branch: %w", err)
		}
		user.BranchID = req.BranchID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(user), nil
}

// DeleteUser removes a user
func (s *UserService) DeleteUser(id uuid.UUID) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	return s.userRepo.Delete(id)
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		BranchID:    user.BranchID,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
