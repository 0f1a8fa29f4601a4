package models

import "github.com/google/uuid"

// MilestoneTemplate is a named, ordered list of weighted milestones
// provisioned once per project. Templates are read-only after creation;
// components snapshot the weights into their own milestone instances, so a
// later template edit can never change historical completion math.
type MilestoneTemplate struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"uniqueIndex:idx_project_template_name,composite:project_id;not null;size:50" validate:"required,max=50"`
	Description string    `json:"description" gorm:"size:200"`

	// Relationships
	Project    Project             `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Milestones []TemplateMilestone `json:"milestones,omitempty" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MilestoneTemplate
func (MilestoneTemplate) TableName() string {
	return "milestone_templates"
}

// TemplateMilestone is one weighted step of a MilestoneTemplate.
// SortOrder is 1-based, unique and contiguous within a template; weights
// sum to 100 across the template.
type TemplateMilestone struct {
	BaseModel
	TemplateID uuid.UUID `json:"template_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name       string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Weight     float64   `json:"weight" gorm:"not null" validate:"gte=0,lte=100"`
	SortOrder  int       `json:"sort_order" gorm:"not null" validate:"gte=1"`
}

// TableName returns the table name for TemplateMilestone
func (TemplateMilestone) TableName() string {
	return "template_milestones"
}
