package repository

import (
	"pipetrak-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DrawingRepository handles database operations for drawings
type DrawingRepository struct {
	db *gorm.DB
}

// NewDrawingRepository creates a new drawing repository
func NewDrawingRepository(db *gorm.DB) *DrawingRepository {
	return &DrawingRepository{db: db}
}

// Create creates a new drawing
func (r *DrawingRepository) Create(drawing *models.Drawing) error {
	return r.db.Create(drawing).Error
}

// GetByID retrieves a drawing by ID
func (r *DrawingRepository) GetByID(id uuid.UUID) (*models.Drawing, error) {
	var drawing models.Drawing
	err := r.db.First(&drawing, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &drawing, nil
}

// GetByNumber retrieves a drawing by its canonical number within a project
func (r *DrawingRepository) GetByNumber(projectID uuid.UUID, number string) (*models.Drawing, error) {
	var drawing models.Drawing
	err := r.db.First(&drawing, "project_id = ? AND number = ?", projectID, number).Error
	if err != nil {
		return nil, err
	}
	return &drawing, nil
}

// GetOrCreate returns the drawing with the given project and number,
// creating it from the passed record if it does not exist yet.
func (r *DrawingRepository) GetOrCreate(drawing *models.Drawing) (*models.Drawing, error) {
	var existing models.Drawing
	err := r.db.Where("project_id = ? AND number = ?", drawing.ProjectID, drawing.Number).
		Attrs(*drawing).FirstOrCreate(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// GetByProjectID retrieves all drawings for a project with pagination
func (r *DrawingRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.Drawing, int64, error) {
	var drawings []models.Drawing
	var total int64

	if err := r.db.Model(&models.Drawing{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("project_id = ?", projectID).Order("number").Limit(limit).Offset(offset).Find(&drawings).Error
	if err != nil {
		return nil, 0, err
	}

	return drawings, total, nil
}

// Update updates a drawing
func (r *DrawingRepository) Update(drawing *models.Drawing) error {
	return r.db.Save(drawing).Error
}

// Delete deletes a drawing
func (r *DrawingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Drawing{}, "id = ?", id).Error
}
