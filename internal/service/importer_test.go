package service_test

import (
	"testing"

	"pipetrak-backend/internal/database/models"
	apperrors "pipetrak-backend/internal/errors"
	"pipetrak-backend/internal/mocks"
	"pipetrak-backend/internal/repository"
	"pipetrak-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type importMocks struct {
	projects   *mocks.MockProjectRepositoryInterface
	drawings   *mocks.MockDrawingRepositoryInterface
	components *mocks.MockComponentRepositoryInterface
	templates  *mocks.MockMilestoneTemplateRepositoryInterface
	jobs       *mocks.MockImportJobRepositoryInterface
	audit      *mocks.MockAuditRepositoryInterface
	repos      *repository.Repositories
	uow        *mocks.MockUnitOfWork
}

func newImportMocks(ctrl *gomock.Controller) *importMocks {
	m := &importMocks{
		projects:   mocks.NewMockProjectRepositoryInterface(ctrl),
		drawings:   mocks.NewMockDrawingRepositoryInterface(ctrl),
		components: mocks.NewMockComponentRepositoryInterface(ctrl),
		templates:  mocks.NewMockMilestoneTemplateRepositoryInterface(ctrl),
		jobs:       mocks.NewMockImportJobRepositoryInterface(ctrl),
		audit:      mocks.NewMockAuditRepositoryInterface(ctrl),
		uow:        mocks.NewMockUnitOfWork(ctrl),
	}
	m.repos = &repository.Repositories{
		Projects:   m.projects,
		Drawings:   m.drawings,
		Components: m.components,
		Templates:  m.templates,
		Instances:  mocks.NewMockMilestoneInstanceRepositoryInterface(ctrl),
		ImportJobs: m.jobs,
		Audit:      m.audit,
	}
	return m
}

// expectJobLifecycle wires the bookkeeping calls every batch makes.
func (m *importMocks) expectJobLifecycle(projectID uuid.UUID) {
	m.projects.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
	m.jobs.EXPECT().Create(gomock.Any()).DoAndReturn(func(job *models.ImportJob) error {
		job.ID = uuid.New()
		return nil
	})
	m.jobs.EXPECT().Update(gomock.Any()).Return(nil).AnyTimes()
	m.jobs.EXPECT().AddRowResults(gomock.Any()).Return(nil).AnyTimes()
}

func reducedTemplate(projectID uuid.UUID) *models.MilestoneTemplate {
	template := &models.MilestoneTemplate{
		ProjectID: projectID,
		Name:      service.TemplateReduced,
		Milestones: []models.TemplateMilestone{
			{Name: "Receive", Weight: 10, SortOrder: 1},
			{Name: "Install", Weight: 60, SortOrder: 2},
			{Name: "Punch", Weight: 10, SortOrder: 3},
			{Name: "Test", Weight: 15, SortOrder: 4},
			{Name: "Restore", Weight: 5, SortOrder: 5},
		},
	}
	template.ID = uuid.New()
	return template
}

func valveRow(rowNumber int) service.ImportRow {
	return service.ImportRow{
		RowNumber: rowNumber,
		Values: map[string]string{
			"CMDTY CODE": "VALVE001",
			"DWG":        "P-35F11 (1/2)",
			"TYPE":       "Gate Valve",
		},
	}
}

func valveMapping() service.ColumnMapping {
	return service.ColumnMapping{
		ComponentID: "CMDTY CODE",
		Drawing:     "DWG",
		Type:        "TYPE",
	}
}

func TestRunImport_NumbersSiblingInstances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newImportMocks(ctrl)
	projectID := uuid.New()
	drawingID := uuid.New()

	m.expectJobLifecycle(projectID)
	m.components.EXPECT().ListComponentIDs(projectID).Return(nil, nil)
	m.templates.EXPECT().GetByNameWithMilestones(projectID, service.TemplateReduced).
		Return(reducedTemplate(projectID), nil).Times(3)
	m.drawings.EXPECT().GetOrCreate(gomock.Any()).DoAndReturn(func(d *models.Drawing) (*models.Drawing, error) {
		d.ID = drawingID
		return d, nil
	}).Times(3)
	m.components.EXPECT().GetByNaturalKey(projectID, "VALVE001", drawingID, gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).Times(3)

	var created []*models.Component
	m.components.EXPECT().CreateWithMilestones(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c *models.Component, instances []models.MilestoneInstance) error {
			require.Len(t, instances, 5)
			assert.Equal(t, 60.0, instances[1].Weight)
			created = append(created, c)
			return nil
		}).Times(3)
	m.audit.EXPECT().Create(gomock.Any()).Return(nil).Times(3)

	svc := service.NewImportService(m.repos, m.uow, validator.New())
	summary, err := svc.RunImport(&service.ImportRequest{
		ProjectID: projectID,
		Filename:  "takeoff.xlsx",
		Mapping:   valveMapping(),
		Rows:      []service.ImportRow{valveRow(1), valveRow(2), valveRow(3)},
	}, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, models.ImportJobStatusCompleted, summary.Status)
	assert.Equal(t, 3, summary.Created)
	assert.Empty(t, summary.Errors)

	require.Len(t, created, 3)
	for i, c := range created {
		assert.Equal(t, "VALVE001", c.ComponentID)
		assert.Equal(t, i+1, c.InstanceNumber)
		assert.Equal(t, 3, c.TotalInstancesOnDrawing)
		assert.Equal(t, "P-35F11 01of02", summary.Rows[i].DrawingNumber)
	}
	assert.Equal(t, "VALVE001 (2 of 3)", summary.Rows[1].DisplayID)
}

func TestRunImport_SkipDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newImportMocks(ctrl)
	projectID := uuid.New()
	drawingID := uuid.New()

	m.expectJobLifecycle(projectID)
	m.components.EXPECT().ListComponentIDs(projectID).Return([]string{"VALVE001"}, nil)
	m.templates.EXPECT().GetByNameWithMilestones(projectID, service.TemplateReduced).
		Return(reducedTemplate(projectID), nil)
	m.drawings.EXPECT().GetOrCreate(gomock.Any()).DoAndReturn(func(d *models.Drawing) (*models.Drawing, error) {
		d.ID = drawingID
		return d, nil
	})
	existing := &models.Component{ComponentID: "VALVE001", InstanceNumber: 1}
	m.components.EXPECT().GetByNaturalKey(projectID, "VALVE001", drawingID, 1).Return(existing, nil)

	svc := service.NewImportService(m.repos, m.uow, validator.New())
	summary, err := svc.RunImport(&service.ImportRequest{
		ProjectID: projectID,
		Mapping:   valveMapping(),
		Rows:      []service.ImportRow{valveRow(1)},
		Options:   service.ImportOptions{SkipDuplicates: true},
	}, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Zero(t, summary.Created)
	assert.Equal(t, models.RowOutcomeSkipped, summary.Rows[0].Outcome)
}

func TestRunImport_UpdateExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newImportMocks(ctrl)
	projectID := uuid.New()
	drawingID := uuid.New()

	m.expectJobLifecycle(projectID)
	m.components.EXPECT().ListComponentIDs(projectID).Return([]string{"VALVE001"}, nil)
	m.templates.EXPECT().GetByNameWithMilestones(projectID, service.TemplateReduced).
		Return(reducedTemplate(projectID), nil)
	m.drawings.EXPECT().GetOrCreate(gomock.Any()).DoAndReturn(func(d *models.Drawing) (*models.Drawing, error) {
		d.ID = drawingID
		return d, nil
	})
	existing := &models.Component{ProjectID: projectID, ComponentID: "VALVE001", InstanceNumber: 1}
	m.components.EXPECT().GetByNaturalKey(projectID, "VALVE001", drawingID, 1).Return(existing, nil)
	m.components.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *models.Component) error {
		assert.Equal(t, "alice@example.com", c.UpdatedBy)
		return nil
	})
	m.audit.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.AuditEntry) error {
		assert.Equal(t, models.AuditActionUpdate, e.Action)
		assert.Equal(t, string(models.ComponentTypeValve), e.EntityType)
		return nil
	})

	svc := service.NewImportService(m.repos, m.uow, validator.New())
	summary, err := svc.RunImport(&service.ImportRequest{
		ProjectID: projectID,
		Mapping:   valveMapping(),
		Rows:      []service.ImportRow{valveRow(1)},
		Options:   service.ImportOptions{UpdateExisting: true},
	}, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)
}

func TestRunImport_DuplicateWithoutFlagsIsRowError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newImportMocks(ctrl)
	projectID := uuid.New()
	drawingID := uuid.New()

	m.expectJobLifecycle(projectID)
	m.components.EXPECT().ListComponentIDs(projectID).Return(nil, nil)
	m.templates.EXPECT().GetByNameWithMilestones(projectID, service.TemplateReduced).
		Return(reducedTemplate(projectID), nil)
	m.drawings.EXPECT().GetOrCreate(gomock.Any()).DoAndReturn(func(d *models.Drawing) (*models.Drawing, error) {
		d.ID = drawingID
		return d, nil
	})
	m.components.EXPECT().GetByNaturalKey(projectID, "VALVE001", drawingID, 1).
		Return(&models.Component{}, nil)

	svc := service.NewImportService(m.repos, m.uow, validator.New())
	summary, err := svc.RunImport(&service.ImportRequest{
		ProjectID: projectID,
		Mapping:   valveMapping(),
		Rows:      []service.ImportRow{valveRow(1)},
	}, "alice@example.com")

	require.NoError(t, err)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, models.RowOutcomeError, summary.Rows[0].Outcome)
	assert.Contains(t, summary.Rows[0].Message, "already exists")
}

func TestRunImport_ValidateOnlyWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newImportMocks(ctrl)
	projectID := uuid.New()

	m.expectJobLifecycle(projectID)
	m.components.EXPECT().ListComponentIDs(projectID).Return(nil, nil)
	m.templates.EXPECT().GetByNameWithMilestones(projectID, service.TemplateReduced).
		Return(reducedTemplate(projectID), nil).Times(2)
	// A dry run resolves drawings read-only: a drawing the project does
	// not have yet would be created on commit, so the lookup misses and
	// no drawing, component or audit row is ever written.
	m.drawings.EXPECT().GetByNumber(projectID, "P-35F11 01of02").
		Return(nil, gorm.ErrRecordNotFound).Times(2)
	m.drawings.EXPECT().GetOrCreate(gomock.Any()).Times(0)
	m.components.EXPECT().CreateWithMilestones(gomock.Any(), gomock.Any()).Times(0)
	m.audit.EXPECT().Create(gomock.Any()).Times(0)

	svc := service.NewImportService(m.repos, m.uow, validator.New())
	summary, err := svc.RunImport(&service.ImportRequest{
		ProjectID: projectID,
		Mapping:   valveMapping(),
		Rows:      []service.ImportRow{valveRow(1), valveRow(2)},
		Options:   service.ImportOptions{ValidateOnly: true},
	}, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, "VALVE001 (1 of 2)", summary.Rows[0].DisplayID)
}

func TestRunImport_ValidateOnlyReportsDuplicatesAgainstExistingDrawing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newImportMocks(ctrl)
	projectID := uuid.New()
	drawingID := uuid.New()

	m.expectJobLifecycle(projectID)
	m.components.EXPECT().ListComponentIDs(projectID).Return([]string{"VALVE001"}, nil)
	m.templates.EXPECT().GetByNameWithMilestones(projectID, service.TemplateReduced).
		Return(reducedTemplate(projectID), nil)
	existingDrawing := &models.Drawing{ProjectID: projectID, Number: "P-35F11 01of02"}
	existingDrawing.ID = drawingID
	m.drawings.EXPECT().GetByNumber(projectID, "P-35F11 01of02").Return(existingDrawing, nil)
	m.drawings.EXPECT().GetOrCreate(gomock.Any()).Times(0)
	m.components.EXPECT().GetByNaturalKey(projectID, "VALVE001", drawingID, 1).
		Return(&models.Component{}, nil)

	svc := service.NewImportService(m.repos, m.uow, validator.New())
	summary, err := svc.RunImport(&service.ImportRequest{
		ProjectID: projectID,
		Mapping:   valveMapping(),
		Rows:      []service.ImportRow{valveRow(1)},
		Options:   service.ImportOptions{ValidateOnly: true},
	}, "alice@example.com")

	require.NoError(t, err)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0].Message, "already exists")
}

func TestRunImport_RollbackOnErrorFailsWholeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newImportMocks(ctrl)
	projectID := uuid.New()
	drawingID := uuid.New()

	// Job bookkeeping wired by hand: a rolled-back batch still persists
	// its per-row outcomes and error count through the root repositories.
	m.projects.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
	m.jobs.EXPECT().Create(gomock.Any()).DoAndReturn(func(job *models.ImportJob) error {
		job.ID = uuid.New()
		return nil
	})
	var lastJob models.ImportJob
	m.jobs.EXPECT().Update(gomock.Any()).DoAndReturn(func(job *models.ImportJob) error {
		lastJob = *job
		return nil
	}).AnyTimes()
	var persisted []models.ImportRowResult
	m.jobs.EXPECT().AddRowResults(gomock.Any()).DoAndReturn(func(results []models.ImportRowResult) error {
		persisted = results
		return nil
	})
	m.components.EXPECT().ListComponentIDs(projectID).Return(nil, nil)

	// The transactional repository set: first create succeeds, second fails,
	// and the unit of work surfaces the rollback.
	m.templates.EXPECT().GetByNameWithMilestones(projectID, service.TemplateReduced).
		Return(reducedTemplate(projectID), nil).Times(2)
	m.drawings.EXPECT().GetOrCreate(gomock.Any()).DoAndReturn(func(d *models.Drawing) (*models.Drawing, error) {
		d.ID = drawingID
		return d, nil
	}).Times(2)
	m.components.EXPECT().GetByNaturalKey(projectID, "VALVE001", drawingID, gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).Times(2)
	first := m.components.EXPECT().CreateWithMilestones(gomock.Any(), gomock.Any()).Return(nil)
	m.components.EXPECT().CreateWithMilestones(gomock.Any(), gomock.Any()).
		Return(assert.AnError).After(first)
	m.audit.EXPECT().Create(gomock.Any()).Return(nil)

	m.uow.EXPECT().Do(gomock.Any()).DoAndReturn(func(fn func(*repository.Repositories) error) error {
		return fn(m.repos)
	})

	svc := service.NewImportService(m.repos, m.uow, validator.New())
	_, err := svc.RunImport(&service.ImportRequest{
		ProjectID: projectID,
		Mapping:   valveMapping(),
		Rows:      []service.ImportRow{valveRow(1), valveRow(2)},
		Options:   service.ImportOptions{RollbackOnError: true},
	}, "alice@example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rolled back")

	// Both rows survive as error results: the one that failed with its own
	// cause, and the one whose create was undone by the rollback.
	require.Len(t, persisted, 2)
	assert.Equal(t, 1, persisted[0].RowNumber)
	assert.Equal(t, models.RowOutcomeError, persisted[0].Outcome)
	assert.Equal(t, "batch rolled back", persisted[0].Message)
	assert.Equal(t, 2, persisted[1].RowNumber)
	assert.Equal(t, models.RowOutcomeError, persisted[1].Outcome)

	assert.Equal(t, models.ImportJobStatusFailed, lastJob.Status)
	assert.Equal(t, 2, lastJob.ErrorCount)
	require.NotNil(t, lastJob.FinishedAt)
}

func TestRunImport_ConflictUnderRollbackPersistsRowErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newImportMocks(ctrl)
	projectID := uuid.New()

	m.projects.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
	m.jobs.EXPECT().Create(gomock.Any()).DoAndReturn(func(job *models.ImportJob) error {
		job.ID = uuid.New()
		return nil
	})
	var lastJob models.ImportJob
	m.jobs.EXPECT().Update(gomock.Any()).DoAndReturn(func(job *models.ImportJob) error {
		lastJob = *job
		return nil
	}).AnyTimes()
	var persisted []models.ImportRowResult
	m.jobs.EXPECT().AddRowResults(gomock.Any()).DoAndReturn(func(results []models.ImportRowResult) error {
		persisted = results
		return nil
	})
	m.components.EXPECT().ListComponentIDs(projectID).Return(nil, nil)

	mapping := valveMapping()
	mapping.InstanceNumber = "INST NO"
	row := func(rowNumber int) service.ImportRow {
		return service.ImportRow{
			RowNumber: rowNumber,
			Values: map[string]string{
				"CMDTY CODE": "VALVE001",
				"DWG":        "P-35F11 (1/2)",
				"TYPE":       "Gate Valve",
				"INST NO":    "2",
			},
		}
	}

	svc := service.NewImportService(m.repos, m.uow, validator.New())
	_, err := svc.RunImport(&service.ImportRequest{
		ProjectID: projectID,
		Mapping:   mapping,
		Rows:      []service.ImportRow{row(1), row(2)},
		Options:   service.ImportOptions{RollbackOnError: true},
	}, "alice@example.com")

	require.Error(t, err)
	require.Len(t, persisted, 2)
	for i, result := range persisted {
		assert.Equal(t, i+1, result.RowNumber)
		assert.Equal(t, models.RowOutcomeError, result.Outcome)
		assert.Contains(t, result.Message, "reconciliation conflict")
	}
	assert.Equal(t, models.ImportJobStatusFailed, lastJob.Status)
	assert.Equal(t, 2, lastJob.ErrorCount)
}

func TestRunImport_ExplicitConflictMarksRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newImportMocks(ctrl)
	projectID := uuid.New()
	drawingID := uuid.New()

	m.expectJobLifecycle(projectID)
	m.components.EXPECT().ListComponentIDs(projectID).Return(nil, nil)
	m.templates.EXPECT().GetByNameWithMilestones(projectID, service.TemplateReduced).
		Return(reducedTemplate(projectID), nil)
	m.drawings.EXPECT().GetOrCreate(gomock.Any()).DoAndReturn(func(d *models.Drawing) (*models.Drawing, error) {
		d.ID = drawingID
		return d, nil
	})
	m.components.EXPECT().GetByNaturalKey(projectID, "VALVE002", drawingID, 1).
		Return(nil, gorm.ErrRecordNotFound)
	m.components.EXPECT().CreateWithMilestones(gomock.Any(), gomock.Any()).Return(nil)
	m.audit.EXPECT().Create(gomock.Any()).Return(nil)

	mapping := valveMapping()
	mapping.InstanceNumber = "INST NO"
	conflicting := func(rowNumber int) service.ImportRow {
		return service.ImportRow{
			RowNumber: rowNumber,
			Values: map[string]string{
				"CMDTY CODE": "VALVE001",
				"DWG":        "P-35F11 (1/2)",
				"TYPE":       "Gate Valve",
				"INST NO":    "2",
			},
		}
	}
	clean := service.ImportRow{
		RowNumber: 3,
		Values: map[string]string{
			"CMDTY CODE": "VALVE002",
			"DWG":        "P-35F11 (1/2)",
			"TYPE":       "Gate Valve",
		},
	}

	svc := service.NewImportService(m.repos, m.uow, validator.New())
	summary, err := svc.RunImport(&service.ImportRequest{
		ProjectID: projectID,
		Mapping:   mapping,
		Rows:      []service.ImportRow{conflicting(1), conflicting(2), clean},
	}, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	require.Len(t, summary.Errors, 2)
	assert.Contains(t, summary.Errors[0].Message, "reconciliation conflict")
}

func TestRunImport_MissingDrawingIsRowError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newImportMocks(ctrl)
	projectID := uuid.New()

	m.expectJobLifecycle(projectID)
	m.components.EXPECT().ListComponentIDs(projectID).Return(nil, nil)

	svc := service.NewImportService(m.repos, m.uow, validator.New())
	summary, err := svc.RunImport(&service.ImportRequest{
		ProjectID: projectID,
		Mapping:   valveMapping(),
		Rows: []service.ImportRow{{
			RowNumber: 1,
			Values:    map[string]string{"CMDTY CODE": "VALVE001", "TYPE": "Gate Valve"},
		}},
	}, "alice@example.com")

	require.NoError(t, err)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0].Message, "drawing number is required")
}

func TestRunImport_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newImportMocks(ctrl)
	svc := service.NewImportService(m.repos, m.uow, validator.New())

	_, err := svc.RunImport(&service.ImportRequest{
		ProjectID: uuid.New(),
		Mapping:   valveMapping(),
		Rows:      []service.ImportRow{},
	}, "alice@example.com")

	assert.ErrorIs(t, err, apperrors.ErrEmptyImportBatch)
}
