package repository

import (
	"pipetrak-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentRepository handles database operations for components and their
// milestone instances
type ComponentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// CreateWithMilestones creates a component together with its snapshotted
// milestone instances in one transaction. A component is never persisted
// with a partial milestone set.
func (r *ComponentRepository) CreateWithMilestones(component *models.Component, milestones []models.MilestoneInstance) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(component).Error; err != nil {
			return err
		}
		for i := range milestones {
			milestones[i].ComponentUUID = component.ID
		}
		if len(milestones) > 0 {
			if err := tx.Create(&milestones).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a component by ID
func (r *ComponentRepository) GetByID(id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetWithMilestones retrieves a component with its milestone instances in
// template order
func (r *ComponentRepository) GetWithMilestones(id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.Preload("MilestoneInstances", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order")
	}).First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetByNaturalKey retrieves a component by its uniqueness key
// (project, component id, drawing, instance number)
func (r *ComponentRepository) GetByNaturalKey(projectID uuid.UUID, componentID string, drawingID uuid.UUID, instanceNumber int) (*models.Component, error) {
	var component models.Component
	err := r.db.First(&component,
		"project_id = ? AND component_id = ? AND drawing_id = ? AND instance_number = ?",
		projectID, componentID, drawingID, instanceNumber).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetByProjectID retrieves all components for a project with pagination
func (r *ComponentRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.Component, int64, error) {
	var components []models.Component
	var total int64

	if err := r.db.Model(&models.Component{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("project_id = ?", projectID).
		Order("component_id, instance_number").
		Limit(limit).Offset(offset).Find(&components).Error
	if err != nil {
		return nil, 0, err
	}

	return components, total, nil
}

// GetByDrawingID retrieves all components on a drawing
func (r *ComponentRepository) GetByDrawingID(drawingID uuid.UUID) ([]models.Component, error) {
	var components []models.Component
	err := r.db.Where("drawing_id = ?", drawingID).
		Order("component_id, instance_number").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// ListComponentIDs returns the distinct component ids in a project; the id
// generator seeds its per-type sequences from them.
func (r *ComponentRepository) ListComponentIDs(projectID uuid.UUID) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Component{}).
		Where("project_id = ?", projectID).
		Distinct().Pluck("component_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Update updates a component
func (r *ComponentRepository) Update(component *models.Component) error {
	return r.db.Save(component).Error
}

// SaveProgress persists a mutated milestone instance together with the
// component's recomputed completion percent and status in one
// transaction, so the stored percent can never disagree with the stored
// milestone state.
func (r *ComponentRepository) SaveProgress(component *models.Component, instance *models.MilestoneInstance) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(instance).Error; err != nil {
			return err
		}
		return tx.Model(component).
			Select("completion_percent", "status", "updated_at", "updated_by").
			Updates(map[string]interface{}{
				"completion_percent": component.CompletionPercent,
				"status":             component.Status,
				"updated_at":         component.UpdatedAt,
				"updated_by":         component.UpdatedBy,
			}).Error
	})
}

// Delete deletes a component
func (r *ComponentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Component{}, "id = ?", id).Error
}
