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

// RuleHandler handles HTTP requests for assignment rule operations
type RuleHandler struct {
	ruleService *service.RuleService
}

// NewRuleHandler creates a new rule handler
func NewRuleHandler(ruleService *service.RuleService) *RuleHandler {
	return &RuleHandler{
		ruleService: ruleService,
	}
}

// CreateRule handles POST /assignment-rules
// @Summary Create a new assignment rule
// @Description Create an assignment rule with distribution type, filters and fallback configuration
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param rule body service.CreateRuleRequest true "Rule data"
// @Success 201 {object} service.RuleResponse "Successfully created rule"
// @Failure 400 {object} map[string]interface{} "Invalid request body or configuration"
// @Failure 404 {object} map[string]interface{} "Source or fallback rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignment-rules [post]
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req service.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.ruleService.CreateRule(&req)
	if err != nil {
		h.respondRuleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// GetRule handles GET /assignment-rules/:id
// @Summary Get assignment rule by ID
// @Description Get a specific assignment rule with its members
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 200 {object} service.RuleResponse "Successfully retrieved rule"
// @Failure 400 {object} map[string]interface{} "Invalid rule ID"
// @Failure 404 {object} map[string]interface{} "Rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignment-rules/{id} [get]
func (h *RuleHandler) GetRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	rule, err := h.ruleService.GetRule(id)
	if err != nil {
		h.respondRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rule)
}

// ListRules handles GET /assignment-rules
// @Summary List all assignment rules
// @Description Get all assignment rules with pagination
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.RuleListResponse "Successfully retrieved rules"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignment-rules [get]
func (h *RuleHandler) ListRules(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	rules, err := h.ruleService.ListRules(pageSize, (page-1)*pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rules)
}

// UpdateRule handles PUT /assignment-rules/:id
// @Summary Update an assignment rule
// @Description Update an assignment rule's configuration
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param rule body service.UpdateRuleRequest true "Rule data"
// @Success 200 {object} service.RuleResponse "Successfully updated rule"
// @Failure 400 {object} map[string]interface{} "Invalid request body or configuration"
// @Failure 404 {object} map[string]interface{} "Rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignment-rules/{id} [put]
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	var req service.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.ruleService.UpdateRule(id, &req)
	if err != nil {
		h.respondRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rule)
}

// DeleteRule handles DELETE /assignment-rules/:id
// @Summary Delete an assignment rule
// @Description Delete an assignment rule, its members and its rotation cursor
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted rule"
// @Failure 400 {object} map[string]interface{} "Invalid rule ID"
// @Failure 404 {object} map[string]interface{} "Rule not found"
// @Failure 409 {object} map[string]interface{} "Rule is referenced as a fallback"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignment-rules/{id} [delete]
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	if err := h.ruleService.DeleteRule(id); err != nil {
		if errors.Is(err, apperrors.ErrRuleReferencedAsFallback) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.respondRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rule deleted"})
}

// AddMember handles POST /assignment-rules/:id/members
// @Summary Enroll a user in an assignment rule
// @Description Add a user to the rule's distribution pool with an optional percentage or weight share
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} service.RuleMemberDetail "Successfully added member"
// @Failure 400 {object} map[string]interface{} "Invalid request body or share configuration"
// @Failure 404 {object} map[string]interface{} "Rule or user not found"
// @Failure 409 {object} map[string]interface{} "User already enrolled"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignment-rules/{id}/members [post]
func (h *RuleHandler) AddMember(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.ruleService.AddMember(ruleID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.respondRuleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// UpdateMember handles PUT /assignment-rules/:id/members/:memberId
// @Summary Update a rule member
// @Description Update a member's share or active state
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param memberId path string true "Member ID (UUID)"
// @Param member body service.UpdateMemberRequest true "Member data"
// @Success 200 {object} service.RuleMemberDetail "Successfully updated member"
// @Failure 400 {object} map[string]interface{} "Invalid request body or share configuration"
// @Failure 404 {object} map[string]interface{} "Rule or member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignment-rules/{id}/members/{memberId} [put]
func (h *RuleHandler) UpdateMember(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}
	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	var req service.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.ruleService.UpdateMember(ruleID, memberID, &req)
	if err != nil {
		h.respondRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /assignment-rules/:id/members/:memberId
// @Summary Remove a rule member
// @Description Remove a user from the rule's distribution pool
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param memberId path string true "Member ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully removed member"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Rule or member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignment-rules/{id}/members/{memberId} [delete]
func (h *RuleHandler) RemoveMember(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}
	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	if err := h.ruleService.RemoveMember(ruleID, memberID); err != nil {
		h.respondRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "member removed"})
}

// GetRuleStats handles GET /assignment-rules/:id/stats
// @Summary Get distribution statistics for a rule
// @Description Get per-user automatic assignment counts for a rule
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 200 {object} assignment.RuleStats "Successfully retrieved statistics"
// @Failure 400 {object} map[string]interface{} "Invalid rule ID"
// @Failure 404 {object} map[string]interface{} "Rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignment-rules/{id}/stats [get]
func (h *RuleHandler) GetRuleStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	stats, err := h.ruleService.GetStats(id)
	if err != nil {
		h.respondRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetRuleLogs handles GET /assignment-rules/:id/logs
// @Summary Get assignment log entries produced by a rule
// @Description Get the immutable assignment log entries attributed to a rule
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved logs"
// @Failure 400 {object} map[string]interface{} "Invalid rule ID"
// @Failure 404 {object} map[string]interface{} "Rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assignment-rules/{id}/logs [get]
func (h *RuleHandler) GetRuleLogs(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
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

	logs, total, err := h.ruleService.GetLogs(id, pageSize, (page-1)*pageSize)
	if err != nil {
		h.respondRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":      logs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// respondRuleError maps rule service errors to HTTP responses
func (h *RuleHandler) respondRuleError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err), isValidationErr(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
