package repository

import (
	"pipetrak-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByName(name string) (*models.Project, error)
	GetAll(limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// DrawingRepositoryInterface defines the interface for drawing repository operations
type DrawingRepositoryInterface interface {
	Create(drawing *models.Drawing) error
	GetByID(id uuid.UUID) (*models.Drawing, error)
	GetByNumber(projectID uuid.UUID, number string) (*models.Drawing, error)
	GetOrCreate(drawing *models.Drawing) (*models.Drawing, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.Drawing, int64, error)
	Update(drawing *models.Drawing) error
	Delete(id uuid.UUID) error
}

// ComponentRepositoryInterface defines the interface for component repository operations
type ComponentRepositoryInterface interface {
	CreateWithMilestones(component *models.Component, milestones []models.MilestoneInstance) error
	GetByID(id uuid.UUID) (*models.Component, error)
	GetWithMilestones(id uuid.UUID) (*models.Component, error)
	GetByNaturalKey(projectID uuid.UUID, componentID string, drawingID uuid.UUID, instanceNumber int) (*models.Component, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.Component, int64, error)
	GetByDrawingID(drawingID uuid.UUID) ([]models.Component, error)
	ListComponentIDs(projectID uuid.UUID) ([]string, error)
	Update(component *models.Component) error
	SaveProgress(component *models.Component, instance *models.MilestoneInstance) error
	Delete(id uuid.UUID) error
}

// MilestoneTemplateRepositoryInterface defines the interface for milestone template repository operations
type MilestoneTemplateRepositoryInterface interface {
	CreateWithMilestones(template *models.MilestoneTemplate, milestones []models.TemplateMilestone) error
	GetByID(id uuid.UUID) (*models.MilestoneTemplate, error)
	GetByName(projectID uuid.UUID, name string) (*models.MilestoneTemplate, error)
	GetByNameWithMilestones(projectID uuid.UUID, name string) (*models.MilestoneTemplate, error)
	GetByProjectID(projectID uuid.UUID) ([]models.MilestoneTemplate, error)
}

// MilestoneInstanceRepositoryInterface defines the interface for milestone instance repository operations
type MilestoneInstanceRepositoryInterface interface {
	GetByComponentUUID(componentUUID uuid.UUID) ([]models.MilestoneInstance, error)
	GetByName(componentUUID uuid.UUID, name string) (*models.MilestoneInstance, error)
	ListCompletedByEntityType(projectID uuid.UUID, componentType models.ComponentType, limit int) ([]models.MilestoneInstance, error)
}

// ImportJobRepositoryInterface defines the interface for import job repository operations
type ImportJobRepositoryInterface interface {
	Create(job *models.ImportJob) error
	GetByID(id uuid.UUID) (*models.ImportJob, error)
	GetWithRowResults(id uuid.UUID) (*models.ImportJob, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.ImportJob, int64, error)
	Update(job *models.ImportJob) error
	AddRowResults(results []models.ImportRowResult) error
}

// AuditRepositoryInterface is the append-only audit sink: entries are
// written once and only ever read back, never updated or deleted.
type AuditRepositoryInterface interface {
	Create(entry *models.AuditEntry) error
	ListByProject(projectID uuid.UUID, limit, offset int) ([]models.AuditEntry, int64, error)
	ListByEntityType(projectID uuid.UUID, entityType string, limit, offset int) ([]models.AuditEntry, int64, error)
}

// UnitOfWork runs a function against a transaction-scoped repository set.
// The import orchestrator uses it for whole-batch rollback.
type UnitOfWork interface {
	Do(fn func(repos *Repositories) error) error
}

// Repositories bundles every repository over one shared gorm handle,
// either the root connection or a transaction.
type Repositories struct {
	Projects   ProjectRepositoryInterface
	Drawings   DrawingRepositoryInterface
	Components ComponentRepositoryInterface
	Templates  MilestoneTemplateRepositoryInterface
	Instances  MilestoneInstanceRepositoryInterface
	ImportJobs ImportJobRepositoryInterface
	Audit      AuditRepositoryInterface
}
