package service_test

import (
	"testing"
	"time"

	"pipetrak-backend/internal/database/models"
	apperrors "pipetrak-backend/internal/errors"
	"pipetrak-backend/internal/mocks"
	"pipetrak-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type componentMocks struct {
	components *mocks.MockComponentRepositoryInterface
	instances  *mocks.MockMilestoneInstanceRepositoryInterface
	drawings   *mocks.MockDrawingRepositoryInterface
	templates  *mocks.MockMilestoneTemplateRepositoryInterface
	audit      *mocks.MockAuditRepositoryInterface
	svc        *service.ComponentService
}

func newComponentMocks(ctrl *gomock.Controller) *componentMocks {
	m := &componentMocks{
		components: mocks.NewMockComponentRepositoryInterface(ctrl),
		instances:  mocks.NewMockMilestoneInstanceRepositoryInterface(ctrl),
		drawings:   mocks.NewMockDrawingRepositoryInterface(ctrl),
		templates:  mocks.NewMockMilestoneTemplateRepositoryInterface(ctrl),
		audit:      mocks.NewMockAuditRepositoryInterface(ctrl),
	}
	m.svc = service.NewComponentService(
		m.components,
		m.instances,
		m.drawings,
		m.audit,
		service.NewTemplateService(m.templates),
		validator.New(),
	)
	return m
}

func discreteComponent(id uuid.UUID) *models.Component {
	c := &models.Component{
		ProjectID:               uuid.New(),
		ComponentID:             "VALVE001",
		ComponentType:           models.ComponentTypeValve,
		WorkflowType:            models.WorkflowTypeDiscrete,
		InstanceNumber:          1,
		TotalInstancesOnDrawing: 1,
		Status:                  models.ComponentStatusNotStarted,
	}
	c.ID = id
	return c
}

func TestUpdateMilestone_RecalculatesFromSnapshotWeights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newComponentMocks(ctrl)
	componentUUID := uuid.New()
	component := discreteComponent(componentUUID)

	// Weights live on the instances, in template order. Completing only
	// the order-1 milestone must credit exactly its own weight.
	instances := []models.MilestoneInstance{
		{Name: "Receive", SortOrder: 1, Weight: 40},
		{Name: "Install", SortOrder: 2, Weight: 60},
	}

	m.components.EXPECT().GetWithMilestones(componentUUID).Return(component, nil)
	m.instances.EXPECT().GetByComponentUUID(componentUUID).Return(instances, nil)
	m.components.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c *models.Component, instance *models.MilestoneInstance) error {
			assert.Equal(t, "Receive", instance.Name)
			assert.True(t, instance.Completed)
			return nil
		})
	m.audit.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.AuditEntry) error {
		assert.Equal(t, models.AuditActionCompleteMilestone, e.Action)
		return nil
	})

	completed := true
	updated, err := m.svc.UpdateMilestone(componentUUID, "Receive", &service.MilestoneUpdateRequest{Completed: &completed}, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, 40.0, updated.CompletionPercent)
	assert.Equal(t, models.ComponentStatusInProgress, updated.Status)
}

func TestUpdateMilestone_UnknownName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newComponentMocks(ctrl)
	componentUUID := uuid.New()

	m.components.EXPECT().GetWithMilestones(componentUUID).Return(discreteComponent(componentUUID), nil)
	m.instances.EXPECT().GetByComponentUUID(componentUUID).
		Return([]models.MilestoneInstance{{Name: "Receive", Weight: 100}}, nil)

	completed := true
	_, err := m.svc.UpdateMilestone(componentUUID, "Fabricate", &service.MilestoneUpdateRequest{Completed: &completed}, "alice@example.com")
	assert.ErrorIs(t, err, apperrors.ErrMilestoneNotFound)
}

func TestUpdateMilestone_RejectsWrongWorkflowField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newComponentMocks(ctrl)
	componentUUID := uuid.New()

	m.components.EXPECT().GetWithMilestones(componentUUID).Return(discreteComponent(componentUUID), nil)
	m.instances.EXPECT().GetByComponentUUID(componentUUID).
		Return([]models.MilestoneInstance{{Name: "Receive", Weight: 100}}, nil)

	// A percent value against a discrete workflow is a validation error.
	percent := 50.0
	_, err := m.svc.UpdateMilestone(componentUUID, "Receive", &service.MilestoneUpdateRequest{PercentComplete: &percent}, "alice@example.com")
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateMilestone_QuantityOverTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newComponentMocks(ctrl)
	componentUUID := uuid.New()
	component := discreteComponent(componentUUID)
	component.WorkflowType = models.WorkflowTypeQuantity

	total := 200.0
	m.components.EXPECT().GetWithMilestones(componentUUID).Return(component, nil)
	m.instances.EXPECT().GetByComponentUUID(componentUUID).
		Return([]models.MilestoneInstance{{Name: "Erect", Weight: 100, QuantityTotal: &total}}, nil)

	done := 250.0
	_, err := m.svc.UpdateMilestone(componentUUID, "Erect", &service.MilestoneUpdateRequest{QuantityDone: &done}, "alice@example.com")
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateMilestone_QuantityProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newComponentMocks(ctrl)
	componentUUID := uuid.New()
	component := discreteComponent(componentUUID)
	component.WorkflowType = models.WorkflowTypeQuantity

	total := 200.0
	instances := []models.MilestoneInstance{
		{Name: "Erect", SortOrder: 1, Weight: 40, QuantityTotal: &total},
		{Name: "Test", SortOrder: 2, Weight: 60, QuantityTotal: &total},
	}
	m.components.EXPECT().GetWithMilestones(componentUUID).Return(component, nil)
	m.instances.EXPECT().GetByComponentUUID(componentUUID).Return(instances, nil)
	m.components.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).Return(nil)

	// 50 of 200 installed on a weight-40 milestone: 25% of 40 = 10 overall.
	done := 50.0
	updated, err := m.svc.UpdateMilestone(componentUUID, "Erect", &service.MilestoneUpdateRequest{QuantityDone: &done}, "alice@example.com")

	require.NoError(t, err)
	assert.InDelta(t, 10.0, updated.CompletionPercent, 0.001)
}

func TestUpdateMilestone_QuantityDropClearsCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newComponentMocks(ctrl)
	componentUUID := uuid.New()
	component := discreteComponent(componentUUID)
	component.WorkflowType = models.WorkflowTypeQuantity

	// Fully installed, then a count correction brings it back under total:
	// the completion stamp must go away with the completion flag.
	total := 200.0
	completedAt := time.Now().Add(-time.Hour)
	instances := []models.MilestoneInstance{{
		Name:          "Erect",
		SortOrder:     1,
		Weight:        100,
		QuantityDone:  200,
		QuantityTotal: &total,
		Completed:     true,
		CompletedAt:   &completedAt,
		CompletedBy:   "bob@example.com",
	}}
	m.components.EXPECT().GetWithMilestones(componentUUID).Return(component, nil)
	m.instances.EXPECT().GetByComponentUUID(componentUUID).Return(instances, nil)
	var saved *models.MilestoneInstance
	m.components.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c *models.Component, instance *models.MilestoneInstance) error {
			saved = instance
			return nil
		})

	done := 150.0
	updated, err := m.svc.UpdateMilestone(componentUUID, "Erect", &service.MilestoneUpdateRequest{QuantityDone: &done}, "alice@example.com")

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.False(t, saved.Completed)
	assert.Nil(t, saved.CompletedAt)
	assert.Empty(t, saved.CompletedBy)
	assert.InDelta(t, 75.0, updated.CompletionPercent, 0.001)
	assert.Equal(t, models.ComponentStatusInProgress, updated.Status)
}

func TestCreateComponent_ContinuesSiblingSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newComponentMocks(ctrl)
	projectID := uuid.New()
	drawingID := uuid.New()

	template := reducedTemplate(projectID)
	m.templates.EXPECT().GetByNameWithMilestones(projectID, service.TemplateReduced).Return(template, nil)
	m.drawings.EXPECT().GetOrCreate(gomock.Any()).DoAndReturn(func(d *models.Drawing) (*models.Drawing, error) {
		assert.Equal(t, "P-35F11 01of02", d.Number)
		d.ID = drawingID
		return d, nil
	})
	m.components.EXPECT().GetByDrawingID(drawingID).Return([]models.Component{
		{ComponentID: "VALVE001", InstanceNumber: 1},
		{ComponentID: "VALVE001", InstanceNumber: 2},
		{ComponentID: "GSKT-0001", InstanceNumber: 1},
	}, nil)
	m.components.EXPECT().CreateWithMilestones(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c *models.Component, instances []models.MilestoneInstance) error {
			assert.Equal(t, 3, c.InstanceNumber)
			assert.Equal(t, 3, c.TotalInstancesOnDrawing)
			assert.Len(t, instances, 5)
			return nil
		})
	m.audit.EXPECT().Create(gomock.Any()).Return(nil)

	component, err := m.svc.Create(&service.CreateComponentRequest{
		ProjectID:     projectID,
		DrawingNumber: "P-35F11 (1/2)",
		ComponentID:   "VALVE001",
		TypeField:     "Gate Valve",
	}, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, models.ComponentTypeValve, component.ComponentType)
	assert.Equal(t, "VALVE001 (3 of 3)", component.DisplayID())
}

func TestCreateComponent_GeneratesIDWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newComponentMocks(ctrl)
	projectID := uuid.New()
	drawingID := uuid.New()

	template := reducedTemplate(projectID)
	m.templates.EXPECT().GetByNameWithMilestones(projectID, service.TemplateReduced).Return(template, nil)
	m.drawings.EXPECT().GetOrCreate(gomock.Any()).DoAndReturn(func(d *models.Drawing) (*models.Drawing, error) {
		d.ID = drawingID
		return d, nil
	})
	m.components.EXPECT().ListComponentIDs(projectID).Return([]string{"VALVE-0001", "VALVE-0003"}, nil)
	m.components.EXPECT().GetByDrawingID(drawingID).Return(nil, nil)
	m.components.EXPECT().CreateWithMilestones(gomock.Any(), gomock.Any()).Return(nil)
	m.audit.EXPECT().Create(gomock.Any()).Return(nil)

	component, err := m.svc.Create(&service.CreateComponentRequest{
		ProjectID:     projectID,
		DrawingNumber: "P-35F11",
		TypeField:     "Gate Valve",
	}, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "VALVE-0004", component.ComponentID)
}

func TestGetComponent_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newComponentMocks(ctrl)
	id := uuid.New()
	m.components.EXPECT().GetWithMilestones(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := m.svc.Get(id)
	assert.ErrorIs(t, err, apperrors.ErrComponentNotFound)
}
