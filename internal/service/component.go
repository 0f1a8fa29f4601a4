package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pipetrak-backend/internal/database/models"
	apperrors "pipetrak-backend/internal/errors"
	"pipetrak-backend/internal/logger"
	"pipetrak-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentService handles component lifecycle and milestone progress.
// Milestone mutations recalculate the cached completion percent
// synchronously before the write is committed, so a read issued right
// after an update always sees the recalculated value.
type ComponentService struct {
	componentRepo repository.ComponentRepositoryInterface
	instanceRepo  repository.MilestoneInstanceRepositoryInterface
	drawingRepo   repository.DrawingRepositoryInterface
	auditRepo     repository.AuditRepositoryInterface
	templates     *TemplateService
	validator     *validator.Validate
	log           *logger.Logger
}

// NewComponentService creates a new component service
func NewComponentService(
	componentRepo repository.ComponentRepositoryInterface,
	instanceRepo repository.MilestoneInstanceRepositoryInterface,
	drawingRepo repository.DrawingRepositoryInterface,
	auditRepo repository.AuditRepositoryInterface,
	templates *TemplateService,
	validator *validator.Validate,
) *ComponentService {
	return &ComponentService{
		componentRepo: componentRepo,
		instanceRepo:  instanceRepo,
		drawingRepo:   drawingRepo,
		auditRepo:     auditRepo,
		templates:     templates,
		validator:     validator,
		log:           logger.New(),
	}
}

// CreateComponentRequest is a manual single-component creation, outside
// the bulk import path.
type CreateComponentRequest struct {
	ProjectID     uuid.UUID            `json:"project_id" validate:"required"`
	DrawingNumber string               `json:"drawing_number" validate:"required"`
	ComponentID   string               `json:"component_id"`
	ComponentType models.ComponentType `json:"component_type"`
	TypeField     string               `json:"type_field"`
	Description   string               `json:"description" validate:"max=250"`
	Spec          string               `json:"spec"`
	Size          string               `json:"size"`
	Material      string               `json:"material"`
	Area          string               `json:"area"`
	System        string               `json:"system"`
	TestPackage   string               `json:"test_package"`
	QuantityTotal *float64             `json:"quantity_total,omitempty"`
}

// Create adds one component with milestones snapshotted from the project
// template for its type. The instance number continues the sibling
// sequence already on the drawing.
func (s *ComponentService) Create(req *CreateComponentRequest, actor string) (*models.Component, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	componentType := req.ComponentType
	if componentType == "" || !componentType.IsValid() {
		componentType = ClassifyType(req.TypeField, req.Description)
	}

	template, binding, err := s.templates.GetProjectTemplate(req.ProjectID, componentType)
	if err != nil {
		return nil, err
	}

	canonical, err := NormalizeDrawing(req.DrawingNumber)
	if err != nil {
		return nil, err
	}
	record := &models.Drawing{ProjectID: req.ProjectID, Number: canonical, Base: canonical, Sheet: 1, Sheets: 1}
	if parsed, perr := ParseDrawingNumber(canonical); perr == nil {
		record.Base = parsed.Base
		record.Sheet = parsed.Sheet
		record.Sheets = parsed.Total
	}
	drawing, err := s.drawingRepo.GetOrCreate(record)
	if err != nil {
		return nil, apperrors.NewPersistenceError("drawing resolve", err)
	}

	componentID := req.ComponentID
	if componentID == "" {
		existingIDs, err := s.componentRepo.ListComponentIDs(req.ProjectID)
		if err != nil {
			return nil, apperrors.NewPersistenceError("component id listing", err)
		}
		componentID = NewIDGenerator(existingIDs).Next(componentType)
	}

	instanceNumber, total, err := s.nextInstanceNumber(drawing.ID, componentID)
	if err != nil {
		return nil, err
	}

	component := &models.Component{
		ProjectID:               req.ProjectID,
		DrawingID:               drawing.ID,
		ComponentID:             componentID,
		ComponentType:           componentType,
		WorkflowType:            binding.WorkflowType,
		TemplateID:              template.ID,
		InstanceNumber:          instanceNumber,
		TotalInstancesOnDrawing: total,
		Description:             req.Description,
		Spec:                    req.Spec,
		Size:                    req.Size,
		Material:                req.Material,
		Area:                    req.Area,
		System:                  req.System,
		TestPackage:             req.TestPackage,
		Status:                  models.ComponentStatusNotStarted,
	}
	component.CreatedBy = actor

	instances := make([]models.MilestoneInstance, len(template.Milestones))
	for i, milestone := range template.Milestones {
		instances[i] = models.MilestoneInstance{
			Name:          milestone.Name,
			SortOrder:     milestone.SortOrder,
			Weight:        milestone.Weight,
			QuantityTotal: req.QuantityTotal,
		}
		instances[i].CreatedBy = actor
	}

	if err := s.componentRepo.CreateWithMilestones(component, instances); err != nil {
		return nil, apperrors.NewPersistenceError("component create", err)
	}
	s.appendAudit(component, models.AuditActionCreate, actor, nil)
	return component, nil
}

// nextInstanceNumber finds the lowest unused instance number among the
// component's siblings on a drawing and the resulting sibling count.
func (s *ComponentService) nextInstanceNumber(drawingID uuid.UUID, componentID string) (int, int, error) {
	siblings, err := s.componentRepo.GetByDrawingID(drawingID)
	if err != nil {
		return 0, 0, apperrors.NewPersistenceError("sibling lookup", err)
	}
	taken := make(map[int]bool)
	highest := 0
	count := 0
	for _, sibling := range siblings {
		if sibling.ComponentID != componentID {
			continue
		}
		taken[sibling.InstanceNumber] = true
		count++
		if sibling.InstanceNumber > highest {
			highest = sibling.InstanceNumber
		}
	}
	next := 1
	for taken[next] {
		next++
	}
	total := count + 1
	if highest >= next && highest > total {
		total = highest
	}
	if next > total {
		total = next
	}
	return next, total, nil
}

// Get retrieves a component by its UUID
func (s *ComponentService) Get(id uuid.UUID) (*models.Component, error) {
	component, err := s.componentRepo.GetWithMilestones(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, apperrors.NewPersistenceError("component lookup", err)
	}
	return component, nil
}

// ListByProject retrieves a project's components with pagination
func (s *ComponentService) ListByProject(projectID uuid.UUID, limit, offset int) ([]models.Component, int64, error) {
	if limit <= 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	return s.componentRepo.GetByProjectID(projectID, limit, offset)
}

// ListByDrawing retrieves every component on one drawing
func (s *ComponentService) ListByDrawing(drawingID uuid.UUID) ([]models.Component, error) {
	return s.componentRepo.GetByDrawingID(drawingID)
}

// UpdateAttributes updates a component's descriptive fields. Identity and
// progress fields are never touched here.
type UpdateComponentRequest struct {
	Description *string `json:"description,omitempty"`
	Spec        *string `json:"spec,omitempty"`
	Size        *string `json:"size,omitempty"`
	Material    *string `json:"material,omitempty"`
	Area        *string `json:"area,omitempty"`
	System      *string `json:"system,omitempty"`
	TestPackage *string `json:"test_package,omitempty"`
}

// UpdateAttributes applies a partial update to a component's descriptive fields
func (s *ComponentService) UpdateAttributes(id uuid.UUID, req *UpdateComponentRequest, actor string) (*models.Component, error) {
	component, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		component.Description = *req.Description
	}
	if req.Spec != nil {
		component.Spec = *req.Spec
	}
	if req.Size != nil {
		component.Size = *req.Size
	}
	if req.Material != nil {
		component.Material = *req.Material
	}
	if req.Area != nil {
		component.Area = *req.Area
	}
	if req.System != nil {
		component.System = *req.System
	}
	if req.TestPackage != nil {
		component.TestPackage = *req.TestPackage
	}
	component.UpdatedBy = actor

	if err := s.componentRepo.Update(component); err != nil {
		return nil, apperrors.NewPersistenceError("component update", err)
	}
	s.appendAudit(component, models.AuditActionUpdate, actor, nil)
	return component, nil
}

// Delete removes a component and its milestone instances
func (s *ComponentService) Delete(id uuid.UUID, actor string) error {
	component, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.componentRepo.Delete(id); err != nil {
		return apperrors.NewPersistenceError("component delete", err)
	}
	s.appendAudit(component, models.AuditActionDelete, actor, nil)
	return nil
}

// MilestoneUpdateRequest is one milestone mutation. Only the field for
// the component's workflow type is honored: Completed for discrete,
// PercentComplete for percentage, QuantityDone for quantity.
type MilestoneUpdateRequest struct {
	Completed       *bool    `json:"completed,omitempty"`
	PercentComplete *float64 `json:"percent_complete,omitempty" validate:"omitempty,gte=0,lte=100"`
	QuantityDone    *float64 `json:"quantity_done,omitempty" validate:"omitempty,gte=0"`
}

// UpdateMilestone applies one milestone mutation, recalculates the
// component's completion percent from the full milestone set, and saves
// both in one transaction.
func (s *ComponentService) UpdateMilestone(componentUUID uuid.UUID, milestoneName string, req *MilestoneUpdateRequest, actor string) (*models.Component, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	component, err := s.Get(componentUUID)
	if err != nil {
		return nil, err
	}

	instances, err := s.instanceRepo.GetByComponentUUID(componentUUID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("milestone lookup", err)
	}

	var target *models.MilestoneInstance
	for i := range instances {
		if instances[i].Name == milestoneName {
			target = &instances[i]
			break
		}
	}
	if target == nil {
		return nil, apperrors.ErrMilestoneNotFound
	}

	wasComplete := milestoneComplete(component.WorkflowType, target)
	if err := applyMilestoneUpdate(component.WorkflowType, target, req, actor); err != nil {
		return nil, err
	}
	nowComplete := milestoneComplete(component.WorkflowType, target)

	result := Recalculate(component.WorkflowType, instances)
	component.CompletionPercent = result.CompletionPercent
	component.Status = result.Status
	component.UpdatedBy = actor

	if err := s.componentRepo.SaveProgress(component, target); err != nil {
		return nil, apperrors.NewPersistenceError("progress save", err)
	}

	if !wasComplete && nowComplete {
		s.appendAudit(component, models.AuditActionCompleteMilestone, actor, map[string]interface{}{
			"milestone": target.Name,
		})
	}

	s.log.WithFields(map[string]interface{}{
		"component": component.DisplayID(),
		"milestone": target.Name,
		"percent":   component.CompletionPercent,
	}).Debug("milestone updated")
	return component, nil
}

// applyMilestoneUpdate mutates one instance according to the workflow
// type, rejecting fields that belong to a different workflow.
func applyMilestoneUpdate(workflowType models.WorkflowType, instance *models.MilestoneInstance, req *MilestoneUpdateRequest, actor string) error {
	now := time.Now()
	switch workflowType {
	case models.WorkflowTypeDiscrete:
		if req.Completed == nil {
			return apperrors.NewValidationError("completed", "discrete milestones take a completed flag")
		}
		instance.Completed = *req.Completed
		if *req.Completed {
			instance.PercentComplete = 100
			instance.CompletedAt = &now
			instance.CompletedBy = actor
		} else {
			instance.PercentComplete = 0
			instance.CompletedAt = nil
			instance.CompletedBy = ""
		}
	case models.WorkflowTypePercentage:
		if req.PercentComplete == nil {
			return apperrors.NewValidationError("percent_complete", "percentage milestones take a percent value")
		}
		instance.PercentComplete = *req.PercentComplete
		instance.Completed = *req.PercentComplete >= 100
		if instance.Completed {
			instance.CompletedAt = &now
			instance.CompletedBy = actor
		} else {
			instance.CompletedAt = nil
			instance.CompletedBy = ""
		}
	case models.WorkflowTypeQuantity:
		if req.QuantityDone == nil {
			return apperrors.NewValidationError("quantity_done", "quantity milestones take an installed quantity")
		}
		if instance.QuantityTotal != nil && *req.QuantityDone > *instance.QuantityTotal {
			return apperrors.NewValidationError("quantity_done",
				fmt.Sprintf("installed quantity %.2f exceeds total %.2f", *req.QuantityDone, *instance.QuantityTotal))
		}
		instance.QuantityDone = *req.QuantityDone
		instance.Completed = instance.QuantityTotal != nil && *instance.QuantityTotal > 0 && *req.QuantityDone >= *instance.QuantityTotal
		if instance.Completed {
			instance.CompletedAt = &now
			instance.CompletedBy = actor
		} else {
			instance.CompletedAt = nil
			instance.CompletedBy = ""
		}
	default:
		return apperrors.ErrInvalidWorkflowType
	}
	return nil
}

func milestoneComplete(workflowType models.WorkflowType, instance *models.MilestoneInstance) bool {
	switch workflowType {
	case models.WorkflowTypePercentage:
		return instance.PercentComplete >= 100
	case models.WorkflowTypeQuantity:
		return instance.QuantityTotal != nil && *instance.QuantityTotal > 0 && instance.QuantityDone >= *instance.QuantityTotal
	default:
		return instance.Completed
	}
}

// appendAudit writes one audit entry; a failed append is logged, not
// propagated.
func (s *ComponentService) appendAudit(component *models.Component, action models.AuditAction, actor string, extra map[string]interface{}) {
	payload := map[string]interface{}{
		"component_id":    component.ComponentID,
		"instance_number": component.InstanceNumber,
	}
	for k, v := range extra {
		payload[k] = v
	}
	diff, _ := json.Marshal(payload)
	entry := &models.AuditEntry{
		ProjectID:  component.ProjectID,
		Actor:      actor,
		EntityType: string(component.ComponentType),
		EntityID:   component.ID,
		Action:     action,
		Target:     component.DisplayID(),
		Diff:       diff,
		CreatedAt:  time.Now(),
	}
	if err := s.auditRepo.Create(entry); err != nil {
		s.log.WithField("target", entry.Target).Warnf("audit append failed: %v", err)
	}
}
