package models

// ComponentType classifies a physical piping component
type ComponentType string

const (
	ComponentTypeSpool         ComponentType = "spool"
	ComponentTypeValve         ComponentType = "valve"
	ComponentTypeGasket        ComponentType = "gasket"
	ComponentTypeSupport       ComponentType = "support"
	ComponentTypeInstrument    ComponentType = "instrument"
	ComponentTypeFieldWeld     ComponentType = "field_weld"
	ComponentTypeFitting       ComponentType = "fitting"
	ComponentTypeFlange        ComponentType = "flange"
	ComponentTypeThreadedPipe  ComponentType = "threaded_pipe"
	ComponentTypeInsulation    ComponentType = "insulation"
	ComponentTypePaint         ComponentType = "paint"
	ComponentTypePipingFootage ComponentType = "piping_footage"
	ComponentTypeOther         ComponentType = "other"
)

// AllComponentTypes lists every ComponentType; the template registry checks
// its workflow mapping against this list at startup.
var AllComponentTypes = []ComponentType{
	ComponentTypeSpool,
	ComponentTypeValve,
	ComponentTypeGasket,
	ComponentTypeSupport,
	ComponentTypeInstrument,
	ComponentTypeFieldWeld,
	ComponentTypeFitting,
	ComponentTypeFlange,
	ComponentTypeThreadedPipe,
	ComponentTypeInsulation,
	ComponentTypePaint,
	ComponentTypePipingFootage,
	ComponentTypeOther,
}

// IsValid checks if the ComponentType is valid
func (t ComponentType) IsValid() bool {
	for _, known := range AllComponentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// WorkflowType governs how milestone progress is measured and aggregated
type WorkflowType string

const (
	WorkflowTypeDiscrete   WorkflowType = "milestone_discrete"
	WorkflowTypePercentage WorkflowType = "milestone_percentage"
	WorkflowTypeQuantity   WorkflowType = "milestone_quantity"
)

// IsValid checks if the WorkflowType is valid
func (w WorkflowType) IsValid() bool {
	switch w {
	case WorkflowTypeDiscrete, WorkflowTypePercentage, WorkflowTypeQuantity:
		return true
	}
	return false
}

// ComponentStatus is derived from completion percent, never stored independently
type ComponentStatus string

const (
	ComponentStatusNotStarted ComponentStatus = "not_started"
	ComponentStatusInProgress ComponentStatus = "in_progress"
	ComponentStatusCompleted  ComponentStatus = "completed"
)

// IsValid checks if the ComponentStatus is valid
func (s ComponentStatus) IsValid() bool {
	switch s {
	case ComponentStatusNotStarted, ComponentStatusInProgress, ComponentStatusCompleted:
		return true
	}
	return false
}

// ImportJobStatus tracks the per-batch import state machine
type ImportJobStatus string

const (
	ImportJobStatusPending    ImportJobStatus = "pending"
	ImportJobStatusParsing    ImportJobStatus = "parsing"
	ImportJobStatusValidating ImportJobStatus = "validating"
	ImportJobStatusCommitting ImportJobStatus = "committing"
	ImportJobStatusCompleted  ImportJobStatus = "completed"
	ImportJobStatusFailed     ImportJobStatus = "failed"
)

// IsValid checks if the ImportJobStatus is valid
func (s ImportJobStatus) IsValid() bool {
	switch s {
	case ImportJobStatusPending, ImportJobStatusParsing, ImportJobStatusValidating,
		ImportJobStatusCommitting, ImportJobStatusCompleted, ImportJobStatusFailed:
		return true
	}
	return false
}

// RowOutcome records what happened to a single import row
type RowOutcome string

const (
	RowOutcomeCreated RowOutcome = "created"
	RowOutcomeUpdated RowOutcome = "updated"
	RowOutcomeSkipped RowOutcome = "skipped"
	RowOutcomeError   RowOutcome = "error"
)

// IsValid checks if the RowOutcome is valid
func (o RowOutcome) IsValid() bool {
	switch o {
	case RowOutcomeCreated, RowOutcomeUpdated, RowOutcomeSkipped, RowOutcomeError:
		return true
	}
	return false
}

// AuditAction describes the kind of mutation an AuditEntry records
type AuditAction string

const (
	AuditActionCreate            AuditAction = "CREATE"
	AuditActionUpdate            AuditAction = "UPDATE"
	AuditActionDelete            AuditAction = "DELETE"
	AuditActionCompleteMilestone AuditAction = "COMPLETE_MILESTONE"
)

// IsValid checks if the AuditAction is valid
func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionCompleteMilestone:
		return true
	}
	return false
}
