package repository

import "gorm.io/gorm"

// NewRepositories builds the full repository set over one gorm handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Projects:   NewProjectRepository(db),
		Drawings:   NewDrawingRepository(db),
		Components: NewComponentRepository(db),
		Templates:  NewMilestoneTemplateRepository(db),
		Instances:  NewMilestoneInstanceRepository(db),
		ImportJobs: NewImportJobRepository(db),
		Audit:      NewAuditRepository(db),
	}
}

// GormUnitOfWork runs work inside a database transaction with a
// transaction-scoped repository set.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new unit of work over the root connection
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Do executes fn inside one transaction; an error rolls everything back.
func (u *GormUnitOfWork) Do(fn func(repos *Repositories) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
