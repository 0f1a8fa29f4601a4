package repository

import (
	"pipetrak-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditRepository is the append-only sink for the mutation log. It
// deliberately exposes no update or delete: entries are written once and
// activity feeds are read-only projections over them.
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create appends one audit entry
func (r *AuditRepository) Create(entry *models.AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.Create(entry).Error
}

// ListByProject retrieves audit entries for a project, newest first
func (r *AuditRepository) ListByProject(projectID uuid.UUID, limit, offset int) ([]models.AuditEntry, int64, error) {
	var entries []models.AuditEntry
	var total int64

	if err := r.db.Model(&models.AuditEntry{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListByEntityType retrieves audit entries for one entity type in a
// project, newest first
func (r *AuditRepository) ListByEntityType(projectID uuid.UUID, entityType string, limit, offset int) ([]models.AuditEntry, int64, error) {
	var entries []models.AuditEntry
	var total int64

	query := r.db.Model(&models.AuditEntry{}).
		Where("project_id = ? AND entity_type = ?", projectID, entityType)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("project_id = ? AND entity_type = ?", projectID, entityType).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
