package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "dealership-crm-backend/internal/errors"
	"dealership-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BranchHandler handles HTTP requests for branch operations
type BranchHandler struct {
	branchService *service.BranchService
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchService *service.BranchService) *BranchHandler {
	return &BranchHandler{
		branchService: branchService,
	}
}

// CreateBranch handles POST /branches
// @Summary Create a new branch
// @Description Create a dealership branch
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body service.CreateBranchRequest true "Branch data"
// @Success 201 {object} models.Branch "Successfully created branch"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Branch with this name already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /branches [post]
func (h *BranchHandler) CreateBranch(c *gin.Context) {
	var req service.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	branch, err := h.branchService.CreateBranch(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBranchExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, branch)
}

// GetBranch handles GET /branches/:id
// @Summary Get branch by ID
// @Description Get a specific branch by its UUID
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Success 200 {object} models.Branch "Successfully retrieved branch"
// @Failure 400 {object} map[string]interface{} "Invalid branch ID"
// @Failure 404 {object} map[string]interface{} "Branch not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /branches/{id} [get]
func (h *BranchHandler) GetBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid branch ID"})
		return
	}

	branch, err := h.branchService.GetBranch(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, branch)
}

// ListBranches handles GET /branches
// @Summary List all branches
// @Description Get all branches with pagination
// @Tags branches
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved branches"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /branches [get]
func (h *BranchHandler) ListBranches(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	branches, total, err := h.branchService.ListBranches(pageSize, (page-1)*pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branches":  branches,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateBranch handles PUT /branches/:id
// @Summary Update a branch
// @Description Update a branch's details
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Param branch body service.UpdateBranchRequest true "Branch data"
// @Success 200 {object} models.Branch "Successfully updated branch"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Branch not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /branches/{id} [put]
func (h *BranchHandler) UpdateBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid branch ID"})
		return
	}

	var req service.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	branch, err := h.branchService.UpdateBranch(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, branch)
}

// DeleteBranch handles DELETE /branches/:id
// @Summary Delete a branch
// @Description Delete a dealership branch
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted branch"
// @Failure 400 {object} map[string]interface{} "Invalid branch ID"
// @Failure 404 {object} map[string]interface{} "Branch not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /branches/{id} [delete]
func (h *BranchHandler) DeleteBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid branch ID"})
		return
	}

	if err := h.branchService.DeleteBranch(id); err != nil {
		if errors.Is(err, apperrors.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "branch deleted"})
}
