package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Component represents one physical occurrence of a piping component on a
// drawing. Uniqueness is (project, component_id, drawing, instance_number);
// sibling instances share a ComponentID and are told apart by
// InstanceNumber, assigned by import reconciliation.
type Component struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	DrawingID   uuid.UUID `json:"drawing_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_component_instance,composite:component_id" validate:"required"`
	ComponentID string    `json:"component_id" gorm:"not null;size:100;uniqueIndex:idx_component_instance,composite:drawing_id" validate:"required,max=100"`

	ComponentType ComponentType `json:"component_type" gorm:"type:varchar(50);not null" validate:"required"`
	WorkflowType  WorkflowType  `json:"workflow_type" gorm:"type:varchar(50);not null" validate:"required"`
	TemplateID    uuid.UUID     `json:"template_id" gorm:"type:uuid;not null" validate:"required"`

	InstanceNumber          int `json:"instance_number" gorm:"not null;default:1;uniqueIndex:idx_component_instance" validate:"gte=1"`
	TotalInstancesOnDrawing int `json:"total_instances_on_drawing" gorm:"not null;default:1" validate:"gte=1"`

	Description string          `json:"description" gorm:"size:250"`
	Spec        string          `json:"spec" gorm:"size:100"`
	Size        string          `json:"size" gorm:"size:50"`
	Material    string          `json:"material" gorm:"size:100"`
	Area        string          `json:"area" gorm:"size:100"`
	System      string          `json:"system" gorm:"size:100"`
	TestPackage string          `json:"test_package" gorm:"size:100"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Derived and cached; recomputed synchronously on every milestone mutation.
	CompletionPercent float64         `json:"completion_percent" gorm:"not null;default:0"`
	Status            ComponentStatus `json:"status" gorm:"type:varchar(50);not null;default:'not_started'"`

	// Relationships
	Project            Project             `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Drawing            Drawing             `json:"drawing,omitempty" gorm:"foreignKey:DrawingID;constraint:OnDelete:CASCADE"`
	Template           MilestoneTemplate   `json:"template,omitempty" gorm:"foreignKey:TemplateID"`
	MilestoneInstances []MilestoneInstance `json:"milestone_instances,omitempty" gorm:"foreignKey:ComponentUUID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}

// DisplayID returns the human-facing label combining the component id with
// its instance position among siblings on the same drawing.
func (c *Component) DisplayID() string {
	return fmt.Sprintf("%s (%d of %d)", c.ComponentID, c.InstanceNumber, c.TotalInstancesOnDrawing)
}
