//go:build integration
// +build integration

package repository

import (
	"testing"

	"pipetrak-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnitOfWork_RollsBackOnError verifies that writes made through the
// transaction-scoped repositories disappear when the function errors.
func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	base.CleanTestDB()
	defer base.CleanTestDB()

	factories := testutils.NewFactorySet()
	project := factories.Project.Create()
	require.NoError(t, NewProjectRepository(base.DB).Create(project))

	uow := NewGormUnitOfWork(base.DB)
	err := uow.Do(func(repos *Repositories) error {
		drawing := factories.Drawing.WithProject(project.ID)
		if err := repos.Drawings.Create(drawing); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	_, total, listErr := NewDrawingRepository(base.DB).GetByProjectID(project.ID, 10, 0)
	require.NoError(t, listErr)
	assert.Zero(t, total)
}

// TestUnitOfWork_CommitsOnSuccess verifies the happy path persists.
func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	base.CleanTestDB()
	defer base.CleanTestDB()

	factories := testutils.NewFactorySet()
	project := factories.Project.Create()
	require.NoError(t, NewProjectRepository(base.DB).Create(project))

	uow := NewGormUnitOfWork(base.DB)
	err := uow.Do(func(repos *Repositories) error {
		return repos.Drawings.Create(factories.Drawing.WithProject(project.ID))
	})
	require.NoError(t, err)

	drawings, total, err := NewDrawingRepository(base.DB).GetByProjectID(project.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "P-35F11 01of01", drawings[0].Number)
}
