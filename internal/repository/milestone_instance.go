package repository

import (
	"pipetrak-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MilestoneInstanceRepository handles read operations for milestone
// instances. Mutations always go through ComponentRepository.SaveProgress
// so the component's cached completion percent stays in step.
type MilestoneInstanceRepository struct {
	db *gorm.DB
}

// NewMilestoneInstanceRepository creates a new milestone instance repository
func NewMilestoneInstanceRepository(db *gorm.DB) *MilestoneInstanceRepository {
	return &MilestoneInstanceRepository{db: db}
}

// GetByComponentUUID retrieves a component's milestone instances in template order
func (r *MilestoneInstanceRepository) GetByComponentUUID(componentUUID uuid.UUID) ([]models.MilestoneInstance, error) {
	var instances []models.MilestoneInstance
	err := r.db.Where("component_uuid = ?", componentUUID).Order("sort_order").Find(&instances).Error
	if err != nil {
		return nil, err
	}
	return instances, nil
}

// GetByName retrieves one milestone instance by name on a component
func (r *MilestoneInstanceRepository) GetByName(componentUUID uuid.UUID, name string) (*models.MilestoneInstance, error) {
	var instance models.MilestoneInstance
	err := r.db.First(&instance, "component_uuid = ? AND name = ?", componentUUID, name).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// ListCompletedByEntityType returns recently completed milestones for
// components of one type, newest first; the weld activity feed projects
// from this stream.
func (r *MilestoneInstanceRepository) ListCompletedByEntityType(projectID uuid.UUID, componentType models.ComponentType, limit int) ([]models.MilestoneInstance, error) {
	var instances []models.MilestoneInstance
	err := r.db.
		Joins("JOIN components ON components.id = milestone_instances.component_uuid").
		Where("components.project_id = ? AND components.component_type = ? AND milestone_instances.completed_at IS NOT NULL",
			projectID, componentType).
		Order("milestone_instances.completed_at DESC").
		Limit(limit).
		Preload("Component").
		Find(&instances).Error
	if err != nil {
		return nil, err
	}
	return instances, nil
}
