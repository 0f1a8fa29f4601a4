package handlers

import (
	"net/http"
	"strconv"

	"pipetrak-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivityHandler handles HTTP requests for activity feeds
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// GetProjectActivity handles GET /projects/:id/activity
// @Summary Project activity feed
// @Description Human-readable feed projected from the project's audit log, newest first
// @Tags activity
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param entity_type query string false "Filter to one entity type"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Activity items with total count"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/activity [get]
func (h *ActivityHandler) GetProjectActivity(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	limit, offset := pagination(c)
	var items []service.ActivityItem
	var total int64
	if entityType := c.Query("entity_type"); entityType != "" {
		items, total, err = h.activityService.EntityFeed(projectID, entityType, limit, offset)
	} else {
		items, total, err = h.activityService.ProjectFeed(projectID, limit, offset)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activity": items,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetRecentWelds handles GET /projects/:id/welds/recent
// @Summary Recent weld completions
// @Description Weld log projected from completed field weld milestones, newest first
// @Tags activity
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param limit query int false "Number of entries" default(25)
// @Success 200 {object} map[string]interface{} "Weld feed items"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/welds/recent [get]
func (h *ActivityHandler) GetRecentWelds(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "25"))
	if err != nil || limit <= 0 {
		limit = 25
	}

	items, err := h.activityService.RecentWelds(projectID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"welds": items})
}
