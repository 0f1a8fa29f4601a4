package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"pipetrak-backend/internal/database/models"
	apperrors "pipetrak-backend/internal/errors"
	"pipetrak-backend/internal/logger"
	"pipetrak-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportRow is one already-parsed spreadsheet record: an ordered
// header -> value map. File-byte parsing happens upstream; this service
// never sees raw file content.
type ImportRow struct {
	RowNumber int               `json:"row_number" validate:"gte=1"`
	Values    map[string]string `json:"values" validate:"required"`
}

// ColumnMapping is the user-confirmed mapping from logical fields to
// spreadsheet headers. Only Drawing is mandatory; a missing ComponentID
// column means every id gets generated.
type ColumnMapping struct {
	ComponentID    string `json:"component_id"`
	Drawing        string `json:"drawing" validate:"required"`
	Type           string `json:"type"`
	Description    string `json:"description"`
	InstanceNumber string `json:"instance_number"`
	Spec           string `json:"spec"`
	Size           string `json:"size"`
	Material       string `json:"material"`
	Area           string `json:"area"`
	System         string `json:"system"`
	TestPackage    string `json:"test_package"`
	QuantityTotal  string `json:"quantity_total"`
}

// ImportOptions control persistence behavior for a batch.
type ImportOptions struct {
	ValidateOnly    bool `json:"validate_only"`
	SkipDuplicates  bool `json:"skip_duplicates"`
	UpdateExisting  bool `json:"update_existing"`
	RollbackOnError bool `json:"rollback_on_error"`
}

// ImportRequest is one bulk import batch.
type ImportRequest struct {
	ProjectID uuid.UUID     `json:"project_id" validate:"required"`
	Filename  string        `json:"filename"`
	Mapping   ColumnMapping `json:"mapping"`
	Rows      []ImportRow   `json:"rows"`
	Options   ImportOptions `json:"options"`
}

// RowOutcomeView is the per-row verdict returned to the caller.
type RowOutcomeView struct {
	RowNumber      int               `json:"row_number"`
	ComponentID    string            `json:"component_id,omitempty"`
	DrawingNumber  string            `json:"drawing_number,omitempty"`
	InstanceNumber int               `json:"instance_number,omitempty"`
	DisplayID      string            `json:"display_id,omitempty"`
	Outcome        models.RowOutcome `json:"outcome"`
	Message        string            `json:"message,omitempty"`
}

// ImportSummary is the batch-level result.
type ImportSummary struct {
	JobID   uuid.UUID              `json:"job_id"`
	Status  models.ImportJobStatus `json:"status"`
	Created int                    `json:"created"`
	Updated int                    `json:"updated"`
	Skipped int                    `json:"skipped"`
	Errors  []RowOutcomeView       `json:"errors"`
	Rows    []RowOutcomeView       `json:"rows"`
}

// parsedRow is an ImportRow after the column mapping, classification and
// drawing normalization have been applied.
type parsedRow struct {
	row            ImportRow
	componentID    string
	drawingRaw     string
	drawingNumber  string
	drawingFlagged bool
	componentType  models.ComponentType
	description    string
	explicitNumber int
	spec           string
	size           string
	material       string
	area           string
	system         string
	testPackage    string
	quantityTotal  *float64
	err            error // row-level validation failure
}

// ImportService drives the per-batch import state machine. Batches are
// fully buffered: instance numbering needs the whole batch before any row
// is committed, so rows are never streamed into the store.
type ImportService struct {
	repos     *repository.Repositories
	uow       repository.UnitOfWork
	validator *validator.Validate
	log       *logger.Logger

	// Imports are serialized per project: concurrent batches would race
	// on sibling groups and per-type id sequences. One process is assumed
	// to own a project's imports; scaling out needs a database advisory
	// lock in its place.
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewImportService creates a new import service
func NewImportService(repos *repository.Repositories, uow repository.UnitOfWork, validator *validator.Validate) *ImportService {
	return &ImportService{
		repos:     repos,
		uow:       uow,
		validator: validator,
		log:       logger.New(),
		locks:     make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *ImportService) projectLock(projectID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.locks[projectID]; !ok {
		s.locks[projectID] = &sync.Mutex{}
	}
	return s.locks[projectID]
}

// RunImport executes one batch end to end:
// pending -> parsing -> validating -> committing -> completed/failed.
// Per-row outcomes are tracked independently of the job state; only
// RollbackOnError promotes a row failure to a batch failure.
func (s *ImportService) RunImport(req *ImportRequest, actor string) (*ImportSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if len(req.Rows) == 0 {
		return nil, apperrors.ErrEmptyImportBatch
	}
	if _, err := s.repos.Projects.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.NewPersistenceError("project lookup", err)
	}

	lock := s.projectLock(req.ProjectID)
	lock.Lock()
	defer lock.Unlock()

	job := &models.ImportJob{
		ProjectID:       req.ProjectID,
		Filename:        req.Filename,
		Status:          models.ImportJobStatusPending,
		ValidateOnly:    req.Options.ValidateOnly,
		SkipDuplicates:  req.Options.SkipDuplicates,
		UpdateExisting:  req.Options.UpdateExisting,
		RollbackOnError: req.Options.RollbackOnError,
		TotalRows:       len(req.Rows),
	}
	job.CreatedBy = actor
	if err := s.repos.ImportJobs.Create(job); err != nil {
		return nil, apperrors.NewPersistenceError("import job create", err)
	}

	summary, err := s.run(job, req, actor)
	if err != nil {
		s.failJob(job, err)
		return nil, err
	}
	return summary, nil
}

func (s *ImportService) run(job *models.ImportJob, req *ImportRequest, actor string) (*ImportSummary, error) {
	now := time.Now()
	job.StartedAt = &now

	// Parsing: apply the confirmed column mapping, classify types and
	// normalize drawing labels. Both are best-effort and never fail a
	// row on their own.
	s.setStatus(job, models.ImportJobStatusParsing)
	parsed := make([]parsedRow, len(req.Rows))
	for i, row := range req.Rows {
		parsed[i] = s.parseRow(row, &req.Mapping)
	}

	// Validating: required fields, then whole-batch reconciliation.
	s.setStatus(job, models.ImportJobStatusValidating)
	existingIDs, err := s.repos.Components.ListComponentIDs(req.ProjectID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("component id listing", err)
	}
	reconciled, err := s.reconcile(parsed, existingIDs, req.Options.RollbackOnError)
	if err != nil {
		s.recordFailedRows(job, failedOutcomes(parsed, err))
		return nil, err
	}

	// Committing: persist per-row decisions, or report only.
	s.setStatus(job, models.ImportJobStatusCommitting)
	outcomes := make([]RowOutcomeView, len(parsed))

	if req.Options.RollbackOnError && !req.Options.ValidateOnly {
		// The whole batch shares one transaction; the first row failure
		// rolls back everything.
		err := s.uow.Do(func(repos *repository.Repositories) error {
			for i := range parsed {
				outcomes[i] = s.commitRow(repos, req, &parsed[i], reconciled[i], actor)
				if outcomes[i].Outcome == models.RowOutcomeError {
					return fmt.Errorf("row %d: %s", outcomes[i].RowNumber, outcomes[i].Message)
				}
			}
			return nil
		})
		if err != nil {
			// The transaction is gone but the job's per-row outcomes are
			// bookkeeping, persisted through the root repositories so a
			// failed batch still reports what went wrong on every row.
			for i := range outcomes {
				if outcomes[i].RowNumber == 0 {
					outcomes[i].RowNumber = parsed[i].row.RowNumber
				}
				if outcomes[i].Outcome != models.RowOutcomeError {
					outcomes[i].Outcome = models.RowOutcomeError
					outcomes[i].Message = "batch rolled back"
				}
			}
			s.recordFailedRows(job, outcomes)
			return nil, fmt.Errorf("batch rolled back: %w", err)
		}
	} else {
		for i := range parsed {
			outcomes[i] = s.commitRow(s.repos, req, &parsed[i], reconciled[i], actor)
		}
	}

	return s.finishJob(job, outcomes)
}

// parseRow applies the column mapping and the total classification and
// normalization steps to one row.
func (s *ImportService) parseRow(row ImportRow, mapping *ColumnMapping) parsedRow {
	value := func(header string) string {
		if header == "" {
			return ""
		}
		return strings.TrimSpace(row.Values[header])
	}

	p := parsedRow{
		row:         row,
		componentID: value(mapping.ComponentID),
		drawingRaw:  value(mapping.Drawing),
		description: value(mapping.Description),
		spec:        value(mapping.Spec),
		size:        value(mapping.Size),
		material:    value(mapping.Material),
		area:        value(mapping.Area),
		system:      value(mapping.System),
		testPackage: value(mapping.TestPackage),
	}

	p.componentType = ClassifyType(value(mapping.Type), p.description)

	if raw := value(mapping.InstanceNumber); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.explicitNumber = n
		}
	}
	if raw := value(mapping.QuantityTotal); raw != "" {
		if q, err := strconv.ParseFloat(raw, 64); err == nil && q > 0 {
			p.quantityTotal = &q
		}
	}

	if p.drawingRaw == "" {
		p.err = apperrors.NewValidationError("drawing", "drawing number is required")
		return p
	}

	canonical, err := NormalizeDrawing(p.drawingRaw)
	if err != nil {
		// Normalization never fails a row: fall back to the original
		// label, flagged for review.
		p.drawingNumber = p.drawingRaw
		p.drawingFlagged = true
	} else {
		p.drawingNumber = canonical
	}
	return p
}

// reconcile runs whole-batch instance numbering over the rows that passed
// validation. A reconciliation conflict fails the batch under
// rollbackOnError; otherwise the conflicting rows become row errors and
// the rest of the batch proceeds.
func (s *ImportService) reconcile(parsed []parsedRow, existingIDs []string, failFast bool) ([]*ReconciledRow, error) {
	for {
		rows := make([]ReconcileRow, 0, len(parsed))
		indices := make([]int, 0, len(parsed))
		for i := range parsed {
			if parsed[i].err != nil {
				continue
			}
			rows = append(rows, ReconcileRow{
				RowNumber:      parsed[i].row.RowNumber,
				ComponentID:    parsed[i].componentID,
				DrawingNumber:  parsed[i].drawingNumber,
				ComponentType:  parsed[i].componentType,
				ExplicitNumber: parsed[i].explicitNumber,
			})
			indices = append(indices, i)
		}

		results, err := ReconcileBatch(rows, existingIDs)
		if err != nil {
			var conflict *apperrors.ReconciliationConflictError
			if errors.As(err, &conflict) && !failFast {
				// Attach the conflict to the rows that claimed the same
				// number and re-run reconciliation without them.
				for i := range parsed {
					if parsed[i].err == nil &&
						parsed[i].componentID == conflict.ComponentID &&
						parsed[i].drawingNumber == conflict.DrawingNumber &&
						parsed[i].explicitNumber == conflict.InstanceNumber {
						parsed[i].err = conflict
					}
				}
				continue
			}
			return nil, err
		}

		reconciled := make([]*ReconciledRow, len(parsed))
		for pos, i := range indices {
			reconciled[i] = &results[pos]
		}
		return reconciled, nil
	}
}

// commitRow persists the decision for one row and returns its outcome.
func (s *ImportService) commitRow(repos *repository.Repositories, req *ImportRequest, p *parsedRow, rec *ReconciledRow, actor string) RowOutcomeView {
	view := RowOutcomeView{RowNumber: p.row.RowNumber, DrawingNumber: p.drawingNumber}
	if p.err != nil {
		view.Outcome = models.RowOutcomeError
		view.Message = p.err.Error()
		return view
	}

	view.ComponentID = rec.ComponentID
	view.InstanceNumber = rec.InstanceNumber
	view.DisplayID = rec.DisplayID
	if p.drawingFlagged {
		view.Message = "drawing label not in sheet notation, kept as-is"
	}

	template, binding, err := s.templateFor(repos, req.ProjectID, p.componentType)
	if err != nil {
		view.Outcome = models.RowOutcomeError
		view.Message = err.Error()
		return view
	}

	drawing, existing, err := s.resolveComponent(repos, req.ProjectID, p, rec, req.Options.ValidateOnly)
	if err != nil {
		view.Outcome = models.RowOutcomeError
		view.Message = err.Error()
		return view
	}

	switch {
	case existing != nil && req.Options.SkipDuplicates:
		view.Outcome = models.RowOutcomeSkipped
		view.Message = "duplicate, skipped"
	case existing != nil && req.Options.UpdateExisting:
		view.Outcome = models.RowOutcomeUpdated
		if !req.Options.ValidateOnly {
			if err := s.updateComponent(repos, existing, p, rec, actor); err != nil {
				view.Outcome = models.RowOutcomeError
				view.Message = err.Error()
			}
		}
	case existing != nil:
		view.Outcome = models.RowOutcomeError
		view.Message = apperrors.ErrComponentExists.Error()
	default:
		view.Outcome = models.RowOutcomeCreated
		if !req.Options.ValidateOnly {
			if err := s.createComponent(repos, req.ProjectID, drawing, template, binding, p, rec, actor); err != nil {
				view.Outcome = models.RowOutcomeError
				view.Message = err.Error()
			}
		}
	}
	return view
}

func (s *ImportService) templateFor(repos *repository.Repositories, projectID uuid.UUID, componentType models.ComponentType) (*models.MilestoneTemplate, TypeWorkflow, error) {
	binding, ok := typeWorkflows[componentType]
	if !ok {
		return nil, TypeWorkflow{}, fmt.Errorf("component type %q has no template binding", componentType)
	}
	template, err := repos.Templates.GetByNameWithMilestones(projectID, binding.TemplateName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, TypeWorkflow{}, apperrors.ErrMilestoneTemplateNotFound
		}
		return nil, TypeWorkflow{}, apperrors.NewPersistenceError("template lookup", err)
	}
	return template, binding, nil
}

// resolveComponent gets or creates the drawing record and looks up a
// component already occupying the row's natural key. A dry run resolves
// the drawing read-only: a drawing that does not exist yet would be
// created on commit, so there is nothing to collide with and no row is
// written.
func (s *ImportService) resolveComponent(repos *repository.Repositories, projectID uuid.UUID, p *parsedRow, rec *ReconciledRow, dryRun bool) (*models.Drawing, *models.Component, error) {
	var drawing *models.Drawing
	if dryRun {
		found, err := repos.Drawings.GetByNumber(projectID, p.drawingNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, nil
			}
			return nil, nil, apperrors.NewPersistenceError("drawing lookup", err)
		}
		drawing = found
	} else {
		record := &models.Drawing{
			ProjectID: projectID,
			Number:    p.drawingNumber,
			Base:      p.drawingNumber,
			Sheet:     1,
			Sheets:    1,
		}
		if parsedDrawing, err := ParseDrawingNumber(p.drawingNumber); err == nil {
			record.Base = parsedDrawing.Base
			record.Sheet = parsedDrawing.Sheet
			record.Sheets = parsedDrawing.Total
		}
		created, err := repos.Drawings.GetOrCreate(record)
		if err != nil {
			return nil, nil, apperrors.NewPersistenceError("drawing resolve", err)
		}
		drawing = created
	}

	existing, err := repos.Components.GetByNaturalKey(projectID, rec.ComponentID, drawing.ID, rec.InstanceNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return drawing, nil, nil
		}
		return nil, nil, apperrors.NewPersistenceError("component lookup", err)
	}
	return drawing, existing, nil
}

// createComponent persists a new component with milestone instances
// snapshotted from the template: an explicit weight copy per instance,
// never a live template reference.
func (s *ImportService) createComponent(repos *repository.Repositories, projectID uuid.UUID, drawing *models.Drawing, template *models.MilestoneTemplate, binding TypeWorkflow, p *parsedRow, rec *ReconciledRow, actor string) error {
	component := &models.Component{
		ProjectID:               projectID,
		DrawingID:               drawing.ID,
		ComponentID:             rec.ComponentID,
		ComponentType:           p.componentType,
		WorkflowType:            binding.WorkflowType,
		TemplateID:              template.ID,
		InstanceNumber:          rec.InstanceNumber,
		TotalInstancesOnDrawing: rec.TotalInstancesOnDrawing,
		Description:             p.description,
		Spec:                    p.spec,
		Size:                    p.size,
		Material:                p.material,
		Area:                    p.area,
		System:                  p.system,
		TestPackage:             p.testPackage,
		CompletionPercent:       0,
		Status:                  models.ComponentStatusNotStarted,
	}
	component.CreatedBy = actor

	instances := make([]models.MilestoneInstance, len(template.Milestones))
	for i, milestone := range template.Milestones {
		instances[i] = models.MilestoneInstance{
			Name:          milestone.Name,
			SortOrder:     milestone.SortOrder,
			Weight:        milestone.Weight,
			QuantityTotal: p.quantityTotal,
		}
		instances[i].CreatedBy = actor
	}

	if err := repos.Components.CreateWithMilestones(component, instances); err != nil {
		return apperrors.NewPersistenceError("component create", err)
	}
	return s.audit(repos, projectID, component, models.AuditActionCreate, actor)
}

func (s *ImportService) updateComponent(repos *repository.Repositories, existing *models.Component, p *parsedRow, rec *ReconciledRow, actor string) error {
	existing.Description = p.description
	existing.Spec = p.spec
	existing.Size = p.size
	existing.Material = p.material
	existing.Area = p.area
	existing.System = p.system
	existing.TestPackage = p.testPackage
	existing.TotalInstancesOnDrawing = rec.TotalInstancesOnDrawing
	existing.UpdatedBy = actor

	if err := repos.Components.Update(existing); err != nil {
		return apperrors.NewPersistenceError("component update", err)
	}
	return s.audit(repos, existing.ProjectID, existing, models.AuditActionUpdate, actor)
}

// audit emits exactly one entry per successful create/update.
func (s *ImportService) audit(repos *repository.Repositories, projectID uuid.UUID, component *models.Component, action models.AuditAction, actor string) error {
	diff, _ := json.Marshal(map[string]interface{}{
		"component_id":    component.ComponentID,
		"instance_number": component.InstanceNumber,
		"component_type":  component.ComponentType,
	})
	entry := &models.AuditEntry{
		ProjectID:  projectID,
		Actor:      actor,
		EntityType: string(component.ComponentType),
		EntityID:   component.ID,
		Action:     action,
		Target:     component.DisplayID(),
		Diff:       diff,
		CreatedAt:  time.Now(),
	}
	if err := repos.Audit.Create(entry); err != nil {
		return apperrors.NewPersistenceError("audit append", err)
	}
	return nil
}

func (s *ImportService) setStatus(job *models.ImportJob, status models.ImportJobStatus) {
	job.Status = status
	if err := s.repos.ImportJobs.Update(job); err != nil {
		s.log.WithField("job_id", job.ID).Warnf("failed to persist job status %s: %v", status, err)
	}
}

// failedOutcomes marks every row as an error when the batch dies before
// committing. Rows that already carry their own failure keep it; the
// rest report the batch-level cause.
func failedOutcomes(parsed []parsedRow, cause error) []RowOutcomeView {
	outcomes := make([]RowOutcomeView, len(parsed))
	for i := range parsed {
		outcomes[i] = RowOutcomeView{
			RowNumber:     parsed[i].row.RowNumber,
			ComponentID:   parsed[i].componentID,
			DrawingNumber: parsed[i].drawingNumber,
			Outcome:       models.RowOutcomeError,
			Message:       cause.Error(),
		}
		if parsed[i].err != nil {
			outcomes[i].Message = parsed[i].err.Error()
		}
	}
	return outcomes
}

// recordFailedRows persists per-row outcomes for a batch that is about
// to fail. The job itself fails, but its rows stay queryable.
func (s *ImportService) recordFailedRows(job *models.ImportJob, outcomes []RowOutcomeView) {
	if err := s.repos.ImportJobs.AddRowResults(rowResultsFor(job.ID, outcomes)); err != nil {
		s.log.WithField("job_id", job.ID).Warnf("failed to persist row results: %v", err)
	}
	job.ErrorCount = 0
	for _, outcome := range outcomes {
		if outcome.Outcome == models.RowOutcomeError {
			job.ErrorCount++
		}
	}
}

func rowResultsFor(jobID uuid.UUID, outcomes []RowOutcomeView) []models.ImportRowResult {
	rowResults := make([]models.ImportRowResult, len(outcomes))
	for i, outcome := range outcomes {
		rowResults[i] = models.ImportRowResult{
			JobID:          jobID,
			RowNumber:      outcome.RowNumber,
			ComponentID:    outcome.ComponentID,
			DrawingNumber:  outcome.DrawingNumber,
			InstanceNumber: outcome.InstanceNumber,
			DisplayID:      outcome.DisplayID,
			Outcome:        outcome.Outcome,
			Message:        outcome.Message,
		}
	}
	return rowResults
}

func (s *ImportService) failJob(job *models.ImportJob, cause error) {
	now := time.Now()
	job.Status = models.ImportJobStatusFailed
	job.FinishedAt = &now
	if err := s.repos.ImportJobs.Update(job); err != nil {
		s.log.WithField("job_id", job.ID).Warnf("failed to mark job failed: %v", err)
	}
	s.log.WithField("job_id", job.ID).Errorf("import failed: %v", cause)
}

func (s *ImportService) finishJob(job *models.ImportJob, outcomes []RowOutcomeView) (*ImportSummary, error) {
	summary := &ImportSummary{JobID: job.ID, Rows: outcomes}
	for _, outcome := range outcomes {
		switch outcome.Outcome {
		case models.RowOutcomeCreated:
			summary.Created++
		case models.RowOutcomeUpdated:
			summary.Updated++
		case models.RowOutcomeSkipped:
			summary.Skipped++
		case models.RowOutcomeError:
			summary.Errors = append(summary.Errors, outcome)
		}
	}

	if err := s.repos.ImportJobs.AddRowResults(rowResultsFor(job.ID, outcomes)); err != nil {
		return nil, apperrors.NewPersistenceError("row results append", err)
	}

	now := time.Now()
	job.Status = models.ImportJobStatusCompleted
	job.FinishedAt = &now
	job.CreatedCount = summary.Created
	job.UpdatedCount = summary.Updated
	job.SkippedCount = summary.Skipped
	job.ErrorCount = len(summary.Errors)
	if err := s.repos.ImportJobs.Update(job); err != nil {
		return nil, apperrors.NewPersistenceError("import job update", err)
	}
	summary.Status = job.Status

	s.log.WithFields(map[string]interface{}{
		"job_id":  job.ID,
		"created": summary.Created,
		"updated": summary.Updated,
		"skipped": summary.Skipped,
		"errors":  len(summary.Errors),
	}).Info("import finished")
	return summary, nil
}

// GetJob returns an import job with its per-row outcomes.
func (s *ImportService) GetJob(id uuid.UUID) (*models.ImportJob, error) {
	job, err := s.repos.ImportJobs.GetWithRowResults(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrImportJobNotFound
		}
		return nil, apperrors.NewPersistenceError("import job lookup", err)
	}
	return job, nil
}

// ListJobs returns a project's import jobs, newest first.
func (s *ImportService) ListJobs(projectID uuid.UUID, limit, offset int) ([]models.ImportJob, int64, error) {
	return s.repos.ImportJobs.GetByProjectID(projectID, limit, offset)
}
