package testutils

import (
	"fmt"
	"time"

	"pipetrak-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique suffix so suites can create several projects without
		// tripping the name index.
		Name:      "Test Project " + id.String()[:8],
		JobNumber: "J-1001",
		Client:    "Test Client",
		Location:  "Test Site",
		Status:    models.ProjectStatusActive,
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// WithStatus sets a custom status for the project
func (f *ProjectFactory) WithStatus(status models.ProjectStatus) *models.Project {
	project := f.Create()
	project.Status = status
	return project
}

// DrawingFactory provides methods to create test Drawing data
type DrawingFactory struct{}

// NewDrawingFactory creates a new DrawingFactory
func NewDrawingFactory() *DrawingFactory {
	return &DrawingFactory{}
}

// Create creates a test Drawing with default values
func (f *DrawingFactory) Create() *models.Drawing {
	return &models.Drawing{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: uuid.New(),
		Number:    "P-35F11 01of01",
		Base:      "P-35F11",
		Sheet:     1,
		Sheets:    1,
		Title:     "Test Isometric",
	}
}

// WithProject sets the project ID for the drawing
func (f *DrawingFactory) WithProject(projectID uuid.UUID) *models.Drawing {
	drawing := f.Create()
	drawing.ProjectID = projectID
	return drawing
}

// WithNumber sets a custom canonical number for the drawing
func (f *DrawingFactory) WithNumber(base string, sheet, sheets int) *models.Drawing {
	drawing := f.Create()
	drawing.Base = base
	drawing.Sheet = sheet
	drawing.Sheets = sheets
	drawing.Number = fmt.Sprintf("%s %02dof%02d", base, sheet, sheets)
	return drawing
}

// TemplateFactory provides methods to create test MilestoneTemplate data
type TemplateFactory struct{}

// NewTemplateFactory creates a new TemplateFactory
func NewTemplateFactory() *TemplateFactory {
	return &TemplateFactory{}
}

// Create creates a two-milestone discrete template with 40/60 weights
func (f *TemplateFactory) Create() *models.MilestoneTemplate {
	id := uuid.New()
	return &models.MilestoneTemplate{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:   uuid.New(),
		Name:        "TEST",
		Description: "Two-step template for tests",
		Milestones: []models.TemplateMilestone{
			{TemplateID: id, Name: "Receive", Weight: 40, SortOrder: 1},
			{TemplateID: id, Name: "Install", Weight: 60, SortOrder: 2},
		},
	}
}

// WithProject sets the project ID for the template and its milestones
func (f *TemplateFactory) WithProject(projectID uuid.UUID) *models.MilestoneTemplate {
	template := f.Create()
	template.ProjectID = projectID
	return template
}

// WithName sets a custom name for the template
func (f *TemplateFactory) WithName(name string) *models.MilestoneTemplate {
	template := f.Create()
	template.Name = name
	return template
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a test Component with default values
func (f *ComponentFactory) Create() *models.Component {
	return &models.Component{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:               uuid.New(),
		DrawingID:               uuid.New(),
		ComponentID:             "VALVE001",
		ComponentType:           models.ComponentTypeValve,
		WorkflowType:            models.WorkflowTypeDiscrete,
		TemplateID:              uuid.New(),
		InstanceNumber:          1,
		TotalInstancesOnDrawing: 1,
		Description:             "Test gate valve",
		Status:                  models.ComponentStatusNotStarted,
	}
}

// OnDrawing sets project, drawing and template references together, the
// shape repository tests need for a persisted row.
func (f *ComponentFactory) OnDrawing(projectID, drawingID, templateID uuid.UUID) *models.Component {
	component := f.Create()
	component.ProjectID = projectID
	component.DrawingID = drawingID
	component.TemplateID = templateID
	return component
}

// WithComponentID sets a custom component ID
func (f *ComponentFactory) WithComponentID(componentID string) *models.Component {
	component := f.Create()
	component.ComponentID = componentID
	return component
}

// WithInstance sets the instance position among drawing siblings
func (f *ComponentFactory) WithInstance(number, total int) *models.Component {
	component := f.Create()
	component.InstanceNumber = number
	component.TotalInstancesOnDrawing = total
	return component
}

// AuditFactory provides methods to create test AuditEntry data
type AuditFactory struct{}

// NewAuditFactory creates a new AuditFactory
func NewAuditFactory() *AuditFactory {
	return &AuditFactory{}
}

// Create creates a test AuditEntry with default values
func (f *AuditFactory) Create() *models.AuditEntry {
	return &models.AuditEntry{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		ProjectID:  uuid.New(),
		Actor:      "alice.smith@example.com",
		Action:     models.AuditActionCreate,
		EntityType: "valve",
		EntityID:   uuid.New(),
		Target:     "VALVE001 (1 of 1)",
	}
}

// WithProject sets the project ID for the audit entry
func (f *AuditFactory) WithProject(projectID uuid.UUID) *models.AuditEntry {
	entry := f.Create()
	entry.ProjectID = projectID
	return entry
}

// WithAction sets a custom action for the audit entry
func (f *AuditFactory) WithAction(action models.AuditAction) *models.AuditEntry {
	entry := f.Create()
	entry.Action = action
	return entry
}

// FactorySet provides access to all factories
type FactorySet struct {
	Project   *ProjectFactory
	Drawing   *DrawingFactory
	Template  *TemplateFactory
	Component *ComponentFactory
	Audit     *AuditFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:   NewProjectFactory(),
		Drawing:   NewDrawingFactory(),
		Template:  NewTemplateFactory(),
		Component: NewComponentFactory(),
		Audit:     NewAuditFactory(),
	}
}

// CreateProjectHierarchy wires a project, one drawing, one template and one
// component referencing each other, ready to persist in that order.
func (fs *FactorySet) CreateProjectHierarchy() (*models.Project, *models.Drawing, *models.MilestoneTemplate, *models.Component) {
	project := fs.Project.Create()
	drawing := fs.Drawing.WithProject(project.ID)
	template := fs.Template.WithProject(project.ID)
	component := fs.Component.OnDrawing(project.ID, drawing.ID, template.ID)
	return project, drawing, template, component
}
