package repository

import (
	"pipetrak-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportJobRepository handles database operations for import jobs
type ImportJobRepository struct {
	db *gorm.DB
}

// NewImportJobRepository creates a new import job repository
func NewImportJobRepository(db *gorm.DB) *ImportJobRepository {
	return &ImportJobRepository{db: db}
}

// Create creates a new import job
func (r *ImportJobRepository) Create(job *models.ImportJob) error {
	return r.db.Create(job).Error
}

// GetByID retrieves an import job by ID
func (r *ImportJobRepository) GetByID(id uuid.UUID) (*models.ImportJob, error) {
	var job models.ImportJob
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetWithRowResults retrieves an import job with its per-row outcomes
func (r *ImportJobRepository) GetWithRowResults(id uuid.UUID) (*models.ImportJob, error) {
	var job models.ImportJob
	err := r.db.Preload("RowResults", func(db *gorm.DB) *gorm.DB {
		return db.Order("row_number")
	}).First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByProjectID retrieves import jobs for a project, newest first
func (r *ImportJobRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.ImportJob, int64, error) {
	var jobs []models.ImportJob
	var total int64

	if err := r.db.Model(&models.ImportJob{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// Update updates an import job
func (r *ImportJobRepository) Update(job *models.ImportJob) error {
	return r.db.Save(job).Error
}

// AddRowResults appends per-row outcome records for a job
func (r *ImportJobRepository) AddRowResults(results []models.ImportRowResult) error {
	if len(results) == 0 {
		return nil
	}
	return r.db.Create(&results).Error
}
