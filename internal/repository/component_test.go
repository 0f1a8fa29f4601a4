//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"pipetrak-backend/internal/database/models"
	"pipetrak-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ComponentRepositoryTestSuite tests the ComponentRepository
type ComponentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ComponentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ComponentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewComponentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ComponentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ComponentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ComponentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedHierarchy persists a project, drawing and template for components to
// reference
func (suite *ComponentRepositoryTestSuite) seedHierarchy() (*models.Project, *models.Drawing, *models.MilestoneTemplate) {
	project := suite.factories.Project.Create()
	suite.Require().NoError(NewProjectRepository(suite.baseTestSuite.DB).Create(project))

	drawing := suite.factories.Drawing.WithProject(project.ID)
	suite.Require().NoError(NewDrawingRepository(suite.baseTestSuite.DB).Create(drawing))

	template := suite.factories.Template.WithProject(project.ID)
	milestones := template.Milestones
	template.Milestones = nil
	suite.Require().NoError(NewMilestoneTemplateRepository(suite.baseTestSuite.DB).CreateWithMilestones(template, milestones))

	return project, drawing, template
}

// TestCreateWithMilestones tests creating a component with snapshot instances
func (suite *ComponentRepositoryTestSuite) TestCreateWithMilestones() {
	project, drawing, template := suite.seedHierarchy()

	component := suite.factories.Component.OnDrawing(project.ID, drawing.ID, template.ID)
	err := suite.repo.CreateWithMilestones(component, []models.MilestoneInstance{
		{Name: "Receive", SortOrder: 1, Weight: 40},
		{Name: "Install", SortOrder: 2, Weight: 60},
	})
	suite.NoError(err)

	retrieved, err := suite.repo.GetWithMilestones(component.ID)
	suite.NoError(err)
	suite.Len(retrieved.MilestoneInstances, 2)
	suite.Equal("Receive", retrieved.MilestoneInstances[0].Name)
	suite.Equal("Install", retrieved.MilestoneInstances[1].Name)
	suite.InDelta(40.0, retrieved.MilestoneInstances[0].Weight, 0.001)
	suite.Equal(component.ID, retrieved.MilestoneInstances[0].ComponentUUID)
}

// TestCreateDuplicateInstance tests the uniqueness of the instance key
func (suite *ComponentRepositoryTestSuite) TestCreateDuplicateInstance() {
	project, drawing, template := suite.seedHierarchy()

	first := suite.factories.Component.OnDrawing(project.ID, drawing.ID, template.ID)
	suite.NoError(suite.repo.CreateWithMilestones(first, nil))

	// Same component id, drawing and instance number must be rejected.
	dup := suite.factories.Component.OnDrawing(project.ID, drawing.ID, template.ID)
	dup.ComponentID = first.ComponentID
	dup.InstanceNumber = first.InstanceNumber
	suite.Error(suite.repo.CreateWithMilestones(dup, nil))

	// A higher instance number on the same drawing is a sibling, not a
	// duplicate.
	sibling := suite.factories.Component.OnDrawing(project.ID, drawing.ID, template.ID)
	sibling.ComponentID = first.ComponentID
	sibling.InstanceNumber = 2
	suite.NoError(suite.repo.CreateWithMilestones(sibling, nil))
}

// TestGetByNaturalKey tests lookup by the full instance key
func (suite *ComponentRepositoryTestSuite) TestGetByNaturalKey() {
	project, drawing, template := suite.seedHierarchy()

	component := suite.factories.Component.OnDrawing(project.ID, drawing.ID, template.ID)
	component.InstanceNumber = 2
	component.TotalInstancesOnDrawing = 3
	suite.NoError(suite.repo.CreateWithMilestones(component, nil))

	retrieved, err := suite.repo.GetByNaturalKey(project.ID, component.ComponentID, drawing.ID, 2)
	suite.NoError(err)
	suite.Equal(component.ID, retrieved.ID)
	suite.Equal("VALVE001 (2 of 3)", retrieved.DisplayID())

	_, err = suite.repo.GetByNaturalKey(project.ID, component.ComponentID, drawing.ID, 9)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListComponentIDs tests distinct id listing for sequence seeding
func (suite *ComponentRepositoryTestSuite) TestListComponentIDs() {
	project, drawing, template := suite.seedHierarchy()

	for i, id := range []string{"VALVE-0001", "VALVE-0001", "GSKT-0002"} {
		component := suite.factories.Component.OnDrawing(project.ID, drawing.ID, template.ID)
		component.ComponentID = id
		component.InstanceNumber = i + 1
		suite.NoError(suite.repo.CreateWithMilestones(component, nil))
	}

	ids, err := suite.repo.ListComponentIDs(project.ID)
	suite.NoError(err)
	suite.Len(ids, 2)
	suite.ElementsMatch([]string{"VALVE-0001", "GSKT-0002"}, ids)
}

// TestSaveProgress tests the milestone-plus-percent write staying consistent
func (suite *ComponentRepositoryTestSuite) TestSaveProgress() {
	project, drawing, template := suite.seedHierarchy()

	component := suite.factories.Component.OnDrawing(project.ID, drawing.ID, template.ID)
	suite.NoError(suite.repo.CreateWithMilestones(component, []models.MilestoneInstance{
		{Name: "Receive", SortOrder: 1, Weight: 40},
		{Name: "Install", SortOrder: 2, Weight: 60},
	}))

	retrieved, err := suite.repo.GetWithMilestones(component.ID)
	suite.Require().NoError(err)

	instance := retrieved.MilestoneInstances[0]
	now := time.Now()
	instance.Completed = true
	instance.CompletedAt = &now
	instance.CompletedBy = "alice.smith@example.com"
	retrieved.CompletionPercent = 40
	retrieved.Status = models.ComponentStatusInProgress

	suite.NoError(suite.repo.SaveProgress(retrieved, &instance))

	reloaded, err := suite.repo.GetWithMilestones(component.ID)
	suite.NoError(err)
	suite.InDelta(40.0, reloaded.CompletionPercent, 0.001)
	suite.Equal(models.ComponentStatusInProgress, reloaded.Status)
	suite.True(reloaded.MilestoneInstances[0].Completed)
	suite.NotNil(reloaded.MilestoneInstances[0].CompletedAt)
}

// TestGetByDrawingID tests sibling ordering on a drawing
func (suite *ComponentRepositoryTestSuite) TestGetByDrawingID() {
	project, drawing, template := suite.seedHierarchy()

	for _, n := range []int{3, 1, 2} {
		component := suite.factories.Component.OnDrawing(project.ID, drawing.ID, template.ID)
		component.InstanceNumber = n
		component.TotalInstancesOnDrawing = 3
		suite.NoError(suite.repo.CreateWithMilestones(component, nil))
	}

	components, err := suite.repo.GetByDrawingID(drawing.ID)
	suite.NoError(err)
	suite.Len(components, 3)
	suite.Equal(1, components[0].InstanceNumber)
	suite.Equal(3, components[2].InstanceNumber)
}

// TestDelete tests deletion and the resulting not-found read
func (suite *ComponentRepositoryTestSuite) TestDelete() {
	project, drawing, template := suite.seedHierarchy()

	component := suite.factories.Component.OnDrawing(project.ID, drawing.ID, template.ID)
	suite.NoError(suite.repo.CreateWithMilestones(component, nil))

	suite.NoError(suite.repo.Delete(component.ID))

	_, err := suite.repo.GetByID(component.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestComponentRepositoryTestSuite runs the test suite
func TestComponentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentRepositoryTestSuite))
}
