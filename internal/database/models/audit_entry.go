package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditEntry is an immutable, append-only record of one entity mutation.
// It is the only source for activity feeds; the repository layer exposes
// no update or delete for this table.
type AuditEntry struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProjectID  uuid.UUID       `json:"project_id" gorm:"type:uuid;not null;index"`
	Actor      string          `json:"actor" gorm:"not null;size:100"`
	EntityType string          `json:"entity_type" gorm:"not null;size:50;index"`
	EntityID   uuid.UUID       `json:"entity_id" gorm:"type:uuid;not null;index"`
	Action     AuditAction     `json:"action" gorm:"type:varchar(30);not null"`
	Target     string          `json:"target" gorm:"size:250"`
	Diff       json.RawMessage `json:"diff" gorm:"type:jsonb"`
	CreatedAt  time.Time       `json:"created_at" gorm:"index"`
}

// TableName returns the table name for AuditEntry
func (AuditEntry) TableName() string {
	return "audit_entries"
}
