package models

import (
	"time"

	"github.com/google/uuid"
)

// MilestoneInstance is one milestone on one component. Weight is a copy
// taken from the template at component creation, never a live reference;
// progress math reads the weight stored here so it can never be shifted
// against the template's array by a 1-based/0-based order mix-up.
type MilestoneInstance struct {
	BaseModel
	ComponentUUID uuid.UUID `json:"component_uuid" gorm:"type:uuid;not null;index;uniqueIndex:idx_instance_milestone,composite:name" validate:"required"`
	Name          string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_instance_milestone" validate:"required,max=100"`
	SortOrder     int       `json:"sort_order" gorm:"not null" validate:"gte=1"`
	Weight        float64   `json:"weight" gorm:"not null" validate:"gte=0,lte=100"`

	// Workflow-specific state; only the fields for the component's
	// workflow type are meaningful.
	Completed       bool     `json:"completed" gorm:"not null;default:false"`
	PercentComplete float64  `json:"percent_complete" gorm:"not null;default:0" validate:"gte=0,lte=100"`
	QuantityTotal   *float64 `json:"quantity_total,omitempty"`
	QuantityDone    float64  `json:"quantity_done" gorm:"not null;default:0" validate:"gte=0"`

	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CompletedBy string     `json:"completed_by" gorm:"size:40"`

	// Relationships
	Component Component `json:"component,omitempty" gorm:"foreignKey:ComponentUUID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MilestoneInstance
func (MilestoneInstance) TableName() string {
	return "milestone_instances"
}
