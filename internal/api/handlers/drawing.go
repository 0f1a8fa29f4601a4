package handlers

import (
	"net/http"

	"pipetrak-backend/internal/repository"
	"pipetrak-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DrawingHandler handles HTTP requests for drawings
type DrawingHandler struct {
	drawingRepo repository.DrawingRepositoryInterface
}

// NewDrawingHandler creates a new drawing handler
func NewDrawingHandler(drawingRepo repository.DrawingRepositoryInterface) *DrawingHandler {
	return &DrawingHandler{drawingRepo: drawingRepo}
}

// GetProjectDrawings handles GET /projects/:id/drawings
// @Summary List a project's drawings
// @Description List drawings with pagination
// @Tags drawings
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Drawings with total count"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/drawings [get]
func (h *DrawingHandler) GetProjectDrawings(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	limit, offset := pagination(c)
	drawings, total, err := h.drawingRepo.GetByProjectID(projectID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"drawings": drawings,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// NormalizeDrawingsRequest is a batch of raw drawing labels to preview.
type NormalizeDrawingsRequest struct {
	Labels []string `json:"labels" binding:"required"`
}

// NormalizeDrawings handles POST /tools/drawings/normalize
// @Summary Preview drawing normalization
// @Description Convert raw drawing labels to canonical sheet notation without persisting anything
// @Tags drawings
// @Accept json
// @Produce json
// @Param labels body NormalizeDrawingsRequest true "Raw drawing labels"
// @Success 200 {object} map[string]interface{} "Normalized labels with flags"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /tools/drawings/normalize [post]
func (h *DrawingHandler) NormalizeDrawings(c *gin.Context) {
	var req NormalizeDrawingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"drawings": service.NormalizeDrawingBatch(req.Labels)})
}
