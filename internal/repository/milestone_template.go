package repository

import (
	"pipetrak-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MilestoneTemplateRepository handles database operations for milestone templates
type MilestoneTemplateRepository struct {
	db *gorm.DB
}

// NewMilestoneTemplateRepository creates a new milestone template repository
func NewMilestoneTemplateRepository(db *gorm.DB) *MilestoneTemplateRepository {
	return &MilestoneTemplateRepository{db: db}
}

// CreateWithMilestones creates a template and its milestones in one
// transaction; a validation or storage failure leaves no partial template.
func (r *MilestoneTemplateRepository) CreateWithMilestones(template *models.MilestoneTemplate, milestones []models.TemplateMilestone) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(template).Error; err != nil {
			return err
		}
		for i := range milestones {
			milestones[i].TemplateID = template.ID
		}
		if len(milestones) > 0 {
			if err := tx.Create(&milestones).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a template by ID
func (r *MilestoneTemplateRepository) GetByID(id uuid.UUID) (*models.MilestoneTemplate, error) {
	var template models.MilestoneTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetByName retrieves a template by name within a project
func (r *MilestoneTemplateRepository) GetByName(projectID uuid.UUID, name string) (*models.MilestoneTemplate, error) {
	var template models.MilestoneTemplate
	err := r.db.First(&template, "project_id = ? AND name = ?", projectID, name).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetByNameWithMilestones retrieves a template with its milestones in order
func (r *MilestoneTemplateRepository) GetByNameWithMilestones(projectID uuid.UUID, name string) (*models.MilestoneTemplate, error) {
	var template models.MilestoneTemplate
	err := r.db.Preload("Milestones", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order")
	}).First(&template, "project_id = ? AND name = ?", projectID, name).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetByProjectID retrieves all templates for a project
func (r *MilestoneTemplateRepository) GetByProjectID(projectID uuid.UUID) ([]models.MilestoneTemplate, error) {
	var templates []models.MilestoneTemplate
	err := r.db.Preload("Milestones", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order")
	}).Where("project_id = ?", projectID).Order("name").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}
