package service

import (
	"errors"
	"fmt"
	"math"
	"os"

	apperrors "pipetrak-backend/internal/errors"

	"pipetrak-backend/internal/database/models"
	"pipetrak-backend/internal/logger"
	"pipetrak-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Template names provisioned for every project
const (
	TemplateFull       = "FULL"
	TemplateReduced    = "REDUCED"
	TemplateThreaded   = "THREADED"
	TemplateInsulation = "INSULATION"
	TemplatePaint      = "PAINT"
)

// MilestoneDef is one weighted step of a template definition.
// Order is 1-based, unique and contiguous within a template.
type MilestoneDef struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
	Order  int     `yaml:"order"`
}

// TypeWorkflow binds a component type to its template and workflow style.
type TypeWorkflow struct {
	TemplateName string
	WorkflowType models.WorkflowType
}

// TemplateInfo is the exposed view of a template for one component type.
type TemplateInfo struct {
	Name         string              `json:"name"`
	WorkflowType models.WorkflowType `json:"workflow_type"`
	Milestones   []MilestoneDef      `json:"milestones"`
}

var templateDefinitions = map[string][]MilestoneDef{
	TemplateFull: {
		{Name: "Receive", Weight: 5, Order: 1},
		{Name: "Erect", Weight: 30, Order: 2},
		{Name: "Connect", Weight: 30, Order: 3},
		{Name: "Support", Weight: 15, Order: 4},
		{Name: "Punch", Weight: 5, Order: 5},
		{Name: "Test", Weight: 10, Order: 6},
		{Name: "Restore", Weight: 5, Order: 7},
	},
	TemplateReduced: {
		{Name: "Receive", Weight: 10, Order: 1},
		{Name: "Install", Weight: 60, Order: 2},
		{Name: "Punch", Weight: 10, Order: 3},
		{Name: "Test", Weight: 15, Order: 4},
		{Name: "Restore", Weight: 5, Order: 5},
	},
	TemplateThreaded: {
		{Name: "Fabricate", Weight: 25, Order: 1},
		{Name: "Erect", Weight: 25, Order: 2},
		{Name: "Connect", Weight: 30, Order: 3},
		{Name: "Punch", Weight: 5, Order: 4},
		{Name: "Test", Weight: 15, Order: 5},
	},
	TemplateInsulation: {
		{Name: "Insulate", Weight: 60, Order: 1},
		{Name: "Metal Out", Weight: 40, Order: 2},
	},
	TemplatePaint: {
		{Name: "Primer", Weight: 40, Order: 1},
		{Name: "Finish Coat", Weight: 60, Order: 2},
	},
}

// typeWorkflows is the static ComponentType -> (template, workflow) mapping.
// ValidateRegistry checks it covers every ComponentType at startup.
var typeWorkflows = map[models.ComponentType]TypeWorkflow{
	models.ComponentTypeSpool:         {TemplateFull, models.WorkflowTypeDiscrete},
	models.ComponentTypePipingFootage: {TemplateFull, models.WorkflowTypeQuantity},
	models.ComponentTypeValve:         {TemplateReduced, models.WorkflowTypeDiscrete},
	models.ComponentTypeGasket:        {TemplateReduced, models.WorkflowTypeDiscrete},
	models.ComponentTypeSupport:       {TemplateReduced, models.WorkflowTypeDiscrete},
	models.ComponentTypeInstrument:    {TemplateReduced, models.WorkflowTypeDiscrete},
	models.ComponentTypeFieldWeld:     {TemplateReduced, models.WorkflowTypeDiscrete},
	models.ComponentTypeFitting:       {TemplateReduced, models.WorkflowTypeDiscrete},
	models.ComponentTypeFlange:        {TemplateReduced, models.WorkflowTypeDiscrete},
	models.ComponentTypeOther:         {TemplateReduced, models.WorkflowTypeDiscrete},
	models.ComponentTypeThreadedPipe:  {TemplateThreaded, models.WorkflowTypePercentage},
	models.ComponentTypeInsulation:    {TemplateInsulation, models.WorkflowTypePercentage},
	models.ComponentTypePaint:         {TemplatePaint, models.WorkflowTypePercentage},
}

const weightSumTolerance = 0.01

// ValidateRegistry checks the static definitions at startup: every
// ComponentType has a workflow entry, every referenced template exists,
// and every definition passes the weight-sum and order rules.
func ValidateRegistry() error {
	for _, componentType := range models.AllComponentTypes {
		binding, ok := typeWorkflows[componentType]
		if !ok {
			return fmt.Errorf("component type %q has no template/workflow binding", componentType)
		}
		if _, ok := templateDefinitions[binding.TemplateName]; !ok {
			return fmt.Errorf("component type %q references unknown template %q", componentType, binding.TemplateName)
		}
		if !binding.WorkflowType.IsValid() {
			return fmt.Errorf("component type %q has invalid workflow type %q", componentType, binding.WorkflowType)
		}
	}
	for name, defs := range templateDefinitions {
		if err := validateDefinition(name, defs); err != nil {
			return err
		}
	}
	return nil
}

// validateDefinition enforces the template invariants: weights sum to
// 100 +/- 0.01 and order values are unique, contiguous and 1-based.
func validateDefinition(name string, defs []MilestoneDef) error {
	if len(defs) == 0 {
		return apperrors.NewValidationError(name, "template has no milestones")
	}

	var sum float64
	seen := make(map[int]bool, len(defs))
	for _, def := range defs {
		if def.Weight < 0 || def.Weight > 100 {
			return apperrors.NewValidationError(name, fmt.Sprintf("milestone %q weight %.2f out of range", def.Name, def.Weight))
		}
		sum += def.Weight
		if seen[def.Order] {
			return apperrors.NewValidationError(name, fmt.Sprintf("duplicate milestone order %d", def.Order))
		}
		seen[def.Order] = true
	}
	for order := 1; order <= len(defs); order++ {
		if !seen[order] {
			return apperrors.NewValidationError(name, fmt.Sprintf("milestone orders are not contiguous, missing %d", order))
		}
	}
	if math.Abs(sum-100) > weightSumTolerance {
		return apperrors.NewValidationError(name, fmt.Sprintf("weights sum to %.2f, expected 100", sum))
	}
	return nil
}

// LoadTemplateOverrides replaces built-in definitions with deployment
// specific weights from a yaml file. Overridden definitions go through the
// same validation as the built-ins.
func LoadTemplateOverrides(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read template overrides: %w", err)
	}

	overrides := make(map[string][]MilestoneDef)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse template overrides: %w", err)
	}

	for name, defs := range overrides {
		if _, ok := templateDefinitions[name]; !ok {
			return apperrors.NewValidationError(name, "override names unknown template")
		}
		if err := validateDefinition(name, defs); err != nil {
			return err
		}
	}
	for name, defs := range overrides {
		templateDefinitions[name] = defs
	}
	return nil
}

// TemplateService provisions and resolves milestone templates per project
type TemplateService struct {
	templateRepo repository.MilestoneTemplateRepositoryInterface
	log          *logger.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.MilestoneTemplateRepositoryInterface) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		log:          logger.New(),
	}
}

// GetTemplateInfo returns the template name, workflow type and milestone
// definitions for a component type. The registry is validated for
// exhaustiveness at startup, so the lookup cannot miss for a valid type.
func GetTemplateInfo(componentType models.ComponentType) (TemplateInfo, error) {
	binding, ok := typeWorkflows[componentType]
	if !ok {
		return TemplateInfo{}, fmt.Errorf("component type %q has no template binding", componentType)
	}
	defs := templateDefinitions[binding.TemplateName]
	milestones := make([]MilestoneDef, len(defs))
	copy(milestones, defs)
	return TemplateInfo{
		Name:         binding.TemplateName,
		WorkflowType: binding.WorkflowType,
		Milestones:   milestones,
	}, nil
}

// ProvisionProject creates the named templates for a project. Provisioning
// is idempotent: templates that already exist are left untouched and the
// call succeeds, which lets startup seeding re-run safely. A validation
// failure leaves no partial template behind.
func (s *TemplateService) ProvisionProject(projectID uuid.UUID, actor string) error {
	for name, defs := range templateDefinitions {
		if err := validateDefinition(name, defs); err != nil {
			return err
		}
	}

	for _, name := range []string{TemplateFull, TemplateReduced, TemplateThreaded, TemplateInsulation, TemplatePaint} {
		existing, err := s.templateRepo.GetByName(projectID, name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewPersistenceError("template lookup", err)
		}
		if existing != nil {
			continue
		}

		defs := templateDefinitions[name]
		template := &models.MilestoneTemplate{
			ProjectID:   projectID,
			Name:        name,
			Description: fmt.Sprintf("%s rules-of-credit template", name),
		}
		template.CreatedBy = actor
		milestones := make([]models.TemplateMilestone, len(defs))
		for i, def := range defs {
			milestones[i] = models.TemplateMilestone{
				Name:      def.Name,
				Weight:    def.Weight,
				SortOrder: def.Order,
			}
		}

		// Template and its milestones are created in one transaction so a
		// failure cannot leave a partial template.
		if err := s.templateRepo.CreateWithMilestones(template, milestones); err != nil {
			return apperrors.NewPersistenceError("template create", err)
		}
		s.log.WithField("project_id", projectID).Infof("provisioned template %s", name)
	}
	return nil
}

// GetProjectTemplate resolves the stored template record backing a
// component type for a project.
func (s *TemplateService) GetProjectTemplate(projectID uuid.UUID, componentType models.ComponentType) (*models.MilestoneTemplate, TypeWorkflow, error) {
	binding, ok := typeWorkflows[componentType]
	if !ok {
		return nil, TypeWorkflow{}, fmt.Errorf("component type %q has no template binding", componentType)
	}
	template, err := s.templateRepo.GetByNameWithMilestones(projectID, binding.TemplateName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, TypeWorkflow{}, apperrors.ErrMilestoneTemplateNotFound
		}
		return nil, TypeWorkflow{}, apperrors.NewPersistenceError("template lookup", err)
	}
	return template, binding, nil
}
