package models

import "github.com/google/uuid"

// Drawing represents one sheet of an isometric or P&ID drawing. Number is
// always stored in canonical sheet-numbered form "<base> NNofMM"; Base may
// repeat across sheets of the same multi-sheet drawing.
type Drawing struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Number    string    `json:"number" gorm:"uniqueIndex:idx_project_drawing_number,composite:project_id;not null;size:100" validate:"required,max=100"`
	Base      string    `json:"base" gorm:"size:100;index"`
	Sheet     int       `json:"sheet" gorm:"default:1"`
	Sheets    int       `json:"sheets" gorm:"default:1"`
	Title     string    `json:"title" gorm:"size:250"`
	Revision  string    `json:"revision" gorm:"size:20"`

	// Relationships
	Project    Project     `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Components []Component `json:"components,omitempty" gorm:"foreignKey:DrawingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Drawing
func (Drawing) TableName() string {
	return "drawings"
}
