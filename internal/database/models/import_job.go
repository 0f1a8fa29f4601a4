package models

import (
	"time"

	"github.com/google/uuid"
)

// ImportJob tracks one bulk import batch through the state machine
// pending -> parsing -> validating -> committing -> completed/failed.
// Row-level outcomes live in ImportRowResult independently of job state.
type ImportJob struct {
	BaseModel
	ProjectID uuid.UUID       `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Filename  string          `json:"filename" gorm:"size:250"`
	Status    ImportJobStatus `json:"status" gorm:"type:varchar(50);not null;default:'pending'"`

	ValidateOnly    bool `json:"validate_only" gorm:"not null;default:false"`
	SkipDuplicates  bool `json:"skip_duplicates" gorm:"not null;default:false"`
	UpdateExisting  bool `json:"update_existing" gorm:"not null;default:false"`
	RollbackOnError bool `json:"rollback_on_error" gorm:"not null;default:false"`

	TotalRows    int        `json:"total_rows" gorm:"not null;default:0"`
	CreatedCount int        `json:"created_count" gorm:"not null;default:0"`
	UpdatedCount int        `json:"updated_count" gorm:"not null;default:0"`
	SkippedCount int        `json:"skipped_count" gorm:"not null;default:0"`
	ErrorCount   int        `json:"error_count" gorm:"not null;default:0"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`

	// Relationships
	Project    Project           `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	RowResults []ImportRowResult `json:"row_results,omitempty" gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ImportJob
func (ImportJob) TableName() string {
	return "import_jobs"
}

// ImportRowResult records the per-row outcome of an import batch.
type ImportRowResult struct {
	BaseModel
	JobID          uuid.UUID  `json:"job_id" gorm:"type:uuid;not null;index" validate:"required"`
	RowNumber      int        `json:"row_number" gorm:"not null" validate:"gte=1"`
	ComponentID    string     `json:"component_id" gorm:"size:100"`
	DrawingNumber  string     `json:"drawing_number" gorm:"size:100"`
	InstanceNumber int        `json:"instance_number"`
	DisplayID      string     `json:"display_id" gorm:"size:150"`
	Outcome        RowOutcome `json:"outcome" gorm:"type:varchar(20);not null"`
	Message        string     `json:"message" gorm:"size:500"`
}

// TableName returns the table name for ImportRowResult
func (ImportRowResult) TableName() string {
	return "import_row_results"
}
