package handlers

import (
	"errors"
	"net/http"

	"pipetrak-backend/internal/auth"
	apperrors "pipetrak-backend/internal/errors"
	"pipetrak-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComponentHandler handles HTTP requests for component operations
type ComponentHandler struct {
	componentService *service.ComponentService
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService *service.ComponentService) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
	}
}

// CreateComponent handles POST /components
// @Summary Create a component
// @Description Create one component with milestones snapshotted from its type's template
// @Tags components
// @Accept json
// @Produce json
// @Param component body service.CreateComponentRequest true "Component data"
// @Success 201 {object} models.Component "Successfully created component"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	var req service.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, err := h.componentService.Create(&req, auth.Actor(c))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) || apperrors.IsFormat(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, component)
}

// GetComponent handles GET /components/:id
// @Summary Get component by UUID
// @Description Get a component with its milestone instances
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component UUID"
// @Success 200 {object} models.Component "Successfully retrieved component"
// @Failure 400 {object} ErrorResponse "Invalid component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component ID"})
		return
	}

	component, err := h.componentService.Get(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrComponentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, component)
}

// GetComponentsByProject handles GET /projects/:id/components
// @Summary List components in a project
// @Description List a project's components with pagination
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Components with total count"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/components [get]
func (h *ComponentHandler) GetComponentsByProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	limit, offset := pagination(c)
	components, total, err := h.componentService.ListByProject(projectID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"components": components,
		"total":      total,
		"limit":      limit,
		"offset":     offset,
	})
}

// GetComponentsByDrawing handles GET /drawings/:id/components
// @Summary List components on a drawing
// @Description List every component instance on one drawing
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Drawing ID (UUID)"
// @Success 200 {object} map[string]interface{} "Components on the drawing"
// @Failure 400 {object} ErrorResponse "Invalid drawing ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /drawings/{id}/components [get]
func (h *ComponentHandler) GetComponentsByDrawing(c *gin.Context) {
	drawingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid drawing ID"})
		return
	}

	components, err := h.componentService.ListByDrawing(drawingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"components": components})
}

// UpdateComponent handles PATCH /components/:id
// @Summary Update component attributes
// @Description Apply a partial update to a component's descriptive fields
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component UUID"
// @Param component body service.UpdateComponentRequest true "Fields to update"
// @Success 200 {object} models.Component "Successfully updated component"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /components/{id} [patch]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component ID"})
		return
	}

	var req service.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, err := h.componentService.UpdateAttributes(id, &req, auth.Actor(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrComponentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, component)
}

// DeleteComponent handles DELETE /components/:id
// @Summary Delete component
// @Description Delete a component and its milestone instances
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component UUID"
// @Success 204 "Successfully deleted component"
// @Failure 400 {object} ErrorResponse "Invalid component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /components/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component ID"})
		return
	}

	if err := h.componentService.Delete(id, auth.Actor(c)); err != nil {
		if errors.Is(err, apperrors.ErrComponentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateMilestone handles PATCH /components/:id/milestones/:name
// @Summary Update a milestone
// @Description Mutate one milestone and synchronously recalculate the component's completion percent
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component UUID"
// @Param name path string true "Milestone name"
// @Param milestone body service.MilestoneUpdateRequest true "Milestone mutation"
// @Success 200 {object} models.Component "Component with recalculated progress"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Component or milestone not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /components/{id}/milestones/{name} [patch]
func (h *ComponentHandler) UpdateMilestone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component ID"})
		return
	}
	milestoneName := c.Param("name")

	var req service.MilestoneUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, err := h.componentService.UpdateMilestone(id, milestoneName, &req, auth.Actor(c))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidWorkflowType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, component)
}
