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

// SourceHandler handles HTTP requests for lead source operations
type SourceHandler struct {
	sourceService *service.SourceService
}

// NewSourceHandler creates a new source handler
func NewSourceHandler(sourceService *service.SourceService) *SourceHandler {
	return &SourceHandler{
		sourceService: sourceService,
	}
}

// CreateSource handles POST /sources
// @Summary Create a new lead source
// @Description Create a lead source (Meta campaign, call provider, walk-in, website)
// @Tags sources
// @Accept json
// @Produce json
// @Param source body service.CreateSourceRequest true "Source data"
// @Success 201 {object} models.Source "Successfully created source"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Source with this name already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sources [post]
func (h *SourceHandler) CreateSource(c *gin.Context) {
	var req service.CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source, err := h.sourceService.CreateSource(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceExists) {
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

	c.JSON(http.StatusCreated, source)
}

// GetSource handles GET /sources/:id
// @Summary Get source by ID
// @Description Get a specific lead source by its UUID
// @Tags sources
// @Accept json
// @Produce json
// @Param id path string true "Source ID (UUID)"
// @Success 200 {object} models.Source "Successfully retrieved source"
// @Failure 400 {object} map[string]interface{} "Invalid source ID"
// @Failure 404 {object} map[string]interface{} "Source not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sources/{id} [get]
func (h *SourceHandler) GetSource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source ID"})
		return
	}

	source, err := h.sourceService.GetSource(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, source)
}

// ListSources handles GET /sources
// @Summary List all sources
// @Description Get all lead sources with pagination
// @Tags sources
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved sources"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sources [get]
func (h *SourceHandler) ListSources(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	sources, total, err := h.sourceService.ListSources(pageSize, (page-1)*pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sources":   sources,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateSource handles PUT /sources/:id
// @Summary Update a source
// @Description Update a lead source's details or active state
// @Tags sources
// @Accept json
// @Produce json
// @Param id path string true "Source ID (UUID)"
// @Param source body service.UpdateSourceRequest true "Source data"
// @Success 200 {object} models.Source "Successfully updated source"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Source not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sources/{id} [put]
func (h *SourceHandler) UpdateSource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source ID"})
		return
	}

	var req service.UpdateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source, err := h.sourceService.UpdateSource(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceNotFound) {
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

	c.JSON(http.StatusOK, source)
}

// DeleteSource handles DELETE /sources/:id
// @Summary Delete a source
// @Description Delete a lead source
// @Tags sources
// @Accept json
// @Produce json
// @Param id path string true "Source ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted source"
// @Failure 400 {object} map[string]interface{} "Invalid source ID"
// @Failure 404 {object} map[string]interface{} "Source not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sources/{id} [delete]
func (h *SourceHandler) DeleteSource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source ID"})
		return
	}

	if err := h.sourceService.DeleteSource(id); err != nil {
		if errors.Is(err, apperrors.ErrSourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "source deleted"})
}

// ResetTodaysCounts handles POST /sources/reset-daily-counts
// @Summary Reset daily lead counters
// @Description Zero the todays_leads_count of every source, typically invoked at midnight
// @Tags sources
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Counters reset"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sources/reset-daily-counts [post]
func (h *SourceHandler) ResetTodaysCounts(c *gin.Context) {
	if err := h.sourceService.ResetTodaysCounts(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "daily counters reset"})
}
