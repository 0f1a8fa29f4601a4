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

// ImportHandler handles HTTP requests for bulk imports
type ImportHandler struct {
	importService *service.ImportService
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// RunImport handles POST /projects/:id/imports
// @Summary Run a bulk import
// @Description Import a batch of parsed spreadsheet rows with a confirmed column mapping
// @Tags imports
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param import body service.ImportRequest true "Import batch"
// @Success 200 {object} service.ImportSummary "Batch summary with per-row outcomes"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Reconciliation conflict"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/imports [post]
func (h *ImportHandler) RunImport(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req service.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ProjectID = projectID

	summary, err := h.importService.RunImport(&req, auth.Actor(c))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsReconciliationConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrEmptyImportBatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetImportJob handles GET /imports/:id
// @Summary Get an import job
// @Description Get an import job with its per-row outcomes
// @Tags imports
// @Accept json
// @Produce json
// @Param id path string true "Import job ID (UUID)"
// @Success 200 {object} models.ImportJob "Import job with row results"
// @Failure 400 {object} ErrorResponse "Invalid job ID"
// @Failure 404 {object} ErrorResponse "Import job not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /imports/{id} [get]
func (h *ImportHandler) GetImportJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid import job ID"})
		return
	}

	job, err := h.importService.GetJob(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrImportJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListImportJobs handles GET /projects/:id/imports
// @Summary List a project's import jobs
// @Description List import jobs for a project, newest first
// @Tags imports
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Import jobs with total count"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/imports [get]
func (h *ImportHandler) ListImportJobs(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	limit, offset := pagination(c)
	jobs, total, err := h.importService.ListJobs(projectID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":   jobs,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}
