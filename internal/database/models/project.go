package models

import "encoding/json"

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project represents one construction job; components, drawings, milestone
// templates and import jobs are all scoped to a project.
type Project struct {
	BaseModel
	Name        string          `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,min=1,max=200"`
	JobNumber   string          `json:"job_number" gorm:"size:50"`
	Client      string          `json:"client" gorm:"size:200"`
	Location    string          `json:"location" gorm:"size:200"`
	Description string          `json:"description" gorm:"type:text"`
	Status      ProjectStatus   `json:"status" gorm:"type:varchar(50);default:'active'" validate:"required"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Drawings           []Drawing           `json:"drawings,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Components         []Component         `json:"components,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	MilestoneTemplates []MilestoneTemplate `json:"milestone_templates,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
