package handlers

import (
	"net/http"

	"pipetrak-backend/internal/database/models"
	apperrors "pipetrak-backend/internal/errors"
	"pipetrak-backend/internal/repository"
	"pipetrak-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TemplateHandler handles HTTP requests for milestone templates
type TemplateHandler struct {
	templateRepo repository.MilestoneTemplateRepositoryInterface
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateRepo repository.MilestoneTemplateRepositoryInterface) *TemplateHandler {
	return &TemplateHandler{templateRepo: templateRepo}
}

// GetProjectTemplates handles GET /projects/:id/templates
// @Summary List a project's milestone templates
// @Description List the rules-of-credit templates provisioned for a project
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} map[string]interface{} "Templates"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/templates [get]
func (h *TemplateHandler) GetProjectTemplates(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	templates, err := h.templateRepo.GetByProjectID(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// GetTemplateForType handles GET /templates/by-type/:type
// @Summary Resolve the template for a component type
// @Description Get the template name, workflow type and milestone definitions bound to a component type
// @Tags templates
// @Accept json
// @Produce json
// @Param type path string true "Component type"
// @Success 200 {object} service.TemplateInfo "Template binding"
// @Failure 400 {object} ErrorResponse "Unknown component type"
// @Security BearerAuth
// @Router /templates/by-type/{type} [get]
func (h *TemplateHandler) GetTemplateForType(c *gin.Context) {
	componentType := models.ComponentType(c.Param("type"))
	if !componentType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.NewValidationError("type", "unknown component type").Error()})
		return
	}

	info, err := service.GetTemplateInfo(componentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, info)
}
