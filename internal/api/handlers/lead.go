package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dealership-crm-backend/internal/auth"
	"dealership-crm-backend/internal/database/models"
	apperrors "dealership-crm-backend/internal/errors"
	"dealership-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadHandler handles HTTP requests for lead operations
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// CreateLead handles POST /leads
// @Summary Create a new lead
// @Description Create a lead and run automatic assignment against the active rules
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead data"
// @Success 201 {object} service.LeadResponse "Successfully created lead"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Source not found"
// @Failure 409 {object} map[string]interface{} "Duplicate external lead"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.CreateLead(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrLeadExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrSourceInactive) || isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// GetLead handles GET /leads/:id
// @Summary Get lead by ID
// @Description Get a specific lead by its UUID
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {object} service.LeadResponse "Successfully retrieved lead"
// @Failure 400 {object} map[string]interface{} "Invalid lead ID"
// @Failure 404 {object} map[string]interface{} "Lead not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead ID"})
		return
	}

	lead, err := h.leadService.GetLead(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// ListLeads handles GET /leads (optional source_id / assigned_to parameters)
// @Summary List all leads
// @Description Get all leads with optional source or assignee filtering and pagination
// @Tags leads
// @Accept json
// @Produce json
// @Param source_id query string false "Source ID (UUID) to filter leads"
// @Param assigned_to query string false "User ID (UUID) to filter leads by current assignee"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.LeadListResponse "Successfully retrieved leads"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	var sourceID *uuid.UUID
	if sourceIDStr := c.Query("source_id"); sourceIDStr != "" {
		id, err := uuid.Parse(sourceIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source ID"})
			return
		}
		sourceID = &id
	}

	var assignedTo *uuid.UUID
	if assignedToStr := c.Query("assigned_to"); assignedToStr != "" {
		id, err := uuid.Parse(assignedToStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignee ID"})
			return
		}
		assignedTo = &id
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	leads, err := h.leadService.ListLeads(sourceID, assignedTo, pageSize, (page-1)*pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leads)
}

// UpdateStatusRequest represents the request to update a lead's status
type UpdateStatusRequest struct {
	Status models.LeadStatus `json:"status" binding:"required"`
}

// UpdateLeadStatus handles PATCH /leads/:id/status
// @Summary Update lead status
// @Description Move a lead through the sales pipeline
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} map[string]interface{} "Status updated"
// @Failure 400 {object} map[string]interface{} "Invalid lead ID or status"
// @Failure 404 {object} map[string]interface{} "Lead not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leads/{id}/status [patch]
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.leadService.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, apperrors.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// TriggerAutoAssign handles POST /leads/:id/auto-assign
// @Summary Re-run automatic assignment for a lead
// @Description Evaluate assignment rules for one lead; an already assigned lead is left untouched
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {object} assignment.Outcome "Assignment outcome"
// @Failure 400 {object} map[string]interface{} "Invalid lead ID"
// @Failure 404 {object} map[string]interface{} "Lead not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leads/{id}/auto-assign [post]
func (h *LeadHandler) TriggerAutoAssign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead ID"})
		return
	}

	outcome, err := h.leadService.TriggerAutoAssign(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// ManualAssign handles POST /leads/assign
// @Summary Manually assign leads
// @Description Assign a batch of leads to one user, overriding any rule outcome
// @Tags leads
// @Accept json
// @Produce json
// @Param assignment body service.ManualAssignRequest true "Assignment data"
// @Success 200 {object} assignment.BatchResult "Batch result"
// @Failure 400 {object} map[string]interface{} "Invalid request body or assignee not assignable"
// @Failure 404 {object} map[string]interface{} "Assignee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leads/assign [post]
func (h *LeadHandler) ManualAssign(c *gin.Context) {
	actorID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.ManualAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.leadService.ManualAssign(actorID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrAssigneeNotAssignable) || isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// BulkAssignBySource handles POST /leads/assign/by-source
// @Summary Bulk assign unassigned leads of a source
// @Description Assign every unassigned lead of a source, to an explicit user or through rule evaluation
// @Tags leads
// @Accept json
// @Produce json
// @Param assignment body service.BulkAssignBySourceRequest true "Bulk assignment data"
// @Success 200 {object} assignment.BatchResult "Batch result"
// @Failure 400 {object} map[string]interface{} "Invalid request body or assignee not assignable"
// @Failure 404 {object} map[string]interface{} "Source or assignee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leads/assign/by-source [post]
func (h *LeadHandler) BulkAssignBySource(c *gin.Context) {
	actorID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.BulkAssignBySourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.leadService.BulkAssignBySource(actorID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceNotFound) || errors.Is(err, apperrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrAssigneeNotAssignable) || isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLeadLogs handles GET /leads/:id/logs
// @Summary Get assignment history of a lead
// @Description Get the immutable assignment log entries for a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved logs"
// @Failure 400 {object} map[string]interface{} "Invalid lead ID"
// @Failure 404 {object} map[string]interface{} "Lead not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leads/{id}/logs [get]
func (h *LeadHandler) GetLeadLogs(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead ID"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	logs, total, err := h.leadService.GetLogs(id, pageSize, (page-1)*pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":      logs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
