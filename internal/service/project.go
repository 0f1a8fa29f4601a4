package service

import (
	"errors"

	"pipetrak-backend/internal/database/models"
	apperrors "pipetrak-backend/internal/errors"
	"pipetrak-backend/internal/logger"
	"pipetrak-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles project lifecycle. Creating a project provisions
// the standard milestone template set so imports can resolve templates
// immediately.
type ProjectService struct {
	projectRepo repository.ProjectRepositoryInterface
	templates   *TemplateService
	validator   *validator.Validate
	log         *logger.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repository.ProjectRepositoryInterface, templates *TemplateService, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		templates:   templates,
		validator:   validator,
		log:         logger.New(),
	}
}

// CreateProjectRequest is the payload for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	JobNumber   string `json:"job_number" validate:"max=50"`
	Client      string `json:"client" validate:"max=100"`
}

// Create creates a project and provisions its milestone templates
func (s *ProjectService) Create(req *CreateProjectRequest, actor string) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	existing, err := s.projectRepo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewPersistenceError("project lookup", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProjectExists
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		JobNumber:   req.JobNumber,
		Client:      req.Client,
		Status:      models.ProjectStatusActive,
	}
	project.CreatedBy = actor

	if err := s.projectRepo.Create(project); err != nil {
		return nil, apperrors.NewPersistenceError("project create", err)
	}

	if err := s.templates.ProvisionProject(project.ID, actor); err != nil {
		return nil, err
	}

	s.log.WithField("project_id", project.ID).Infof("created project %s", project.Name)
	return project, nil
}

// Get retrieves a project by ID
func (s *ProjectService) Get(id uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.NewPersistenceError("project lookup", err)
	}
	return project, nil
}

// List retrieves projects with pagination
func (s *ProjectService) List(limit, offset int) ([]models.Project, int64, error) {
	if limit <= 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	return s.projectRepo.GetAll(limit, offset)
}

// UpdateProjectRequest is the payload for a partial project update
type UpdateProjectRequest struct {
	Name        *string               `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string               `json:"description,omitempty" validate:"omitempty,max=500"`
	JobNumber   *string               `json:"job_number,omitempty" validate:"omitempty,max=50"`
	Client      *string               `json:"client,omitempty" validate:"omitempty,max=100"`
	Status      *models.ProjectStatus `json:"status,omitempty"`
}

// Update applies a partial update to a project
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest, actor string) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.JobNumber != nil {
		project.JobNumber = *req.JobNumber
	}
	if req.Client != nil {
		project.Client = *req.Client
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		project.Status = *req.Status
	}
	project.UpdatedBy = actor

	if err := s.projectRepo.Update(project); err != nil {
		return nil, apperrors.NewPersistenceError("project update", err)
	}
	return project, nil
}

// Delete removes a project and everything under it
func (s *ProjectService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(id); err != nil {
		return apperrors.NewPersistenceError("project delete", err)
	}
	return nil
}
