//go:build integration
// +build integration

package repository

import (
	"testing"

	"pipetrak-backend/internal/database/models"
	"pipetrak-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// DrawingRepositoryTestSuite tests the DrawingRepository
type DrawingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DrawingRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *DrawingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewDrawingRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *DrawingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DrawingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *DrawingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *DrawingRepositoryTestSuite) seedProject() *models.Project {
	project := suite.factories.Project.Create()
	suite.Require().NoError(NewProjectRepository(suite.baseTestSuite.DB).Create(project))
	return project
}

// TestGetOrCreate tests that repeated calls converge on one row
func (suite *DrawingRepositoryTestSuite) TestGetOrCreate() {
	project := suite.seedProject()

	first, err := suite.repo.GetOrCreate(suite.factories.Drawing.WithProject(project.ID))
	suite.NoError(err)
	suite.NotNil(first)

	again := suite.factories.Drawing.WithProject(project.ID)
	second, err := suite.repo.GetOrCreate(again)
	suite.NoError(err)
	suite.Equal(first.ID, second.ID)

	_, total, err := suite.repo.GetByProjectID(project.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

// TestGetOrCreate_SheetsAreDistinct tests that sheets of one base drawing
// stay separate rows
func (suite *DrawingRepositoryTestSuite) TestGetOrCreate_SheetsAreDistinct() {
	project := suite.seedProject()

	sheet1 := suite.factories.Drawing.WithNumber("P-94011_2", 1, 3)
	sheet1.ProjectID = project.ID
	sheet2 := suite.factories.Drawing.WithNumber("P-94011_2", 2, 3)
	sheet2.ProjectID = project.ID

	first, err := suite.repo.GetOrCreate(sheet1)
	suite.NoError(err)
	second, err := suite.repo.GetOrCreate(sheet2)
	suite.NoError(err)

	suite.NotEqual(first.ID, second.ID)
	suite.Equal("P-94011_2 01of03", first.Number)
	suite.Equal("P-94011_2 02of03", second.Number)
	suite.Equal(first.Base, second.Base)
}

// TestGetByNumber tests canonical number lookup within a project
func (suite *DrawingRepositoryTestSuite) TestGetByNumber() {
	project := suite.seedProject()

	drawing := suite.factories.Drawing.WithProject(project.ID)
	suite.NoError(suite.repo.Create(drawing))

	retrieved, err := suite.repo.GetByNumber(project.ID, drawing.Number)
	suite.NoError(err)
	suite.Equal(drawing.ID, retrieved.ID)

	// The same number in another project does not resolve.
	other := suite.seedProject()
	_, err = suite.repo.GetByNumber(other.ID, drawing.Number)
	suite.Error(err)
}

// TestDrawingRepositoryTestSuite runs the test suite
func TestDrawingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DrawingRepositoryTestSuite))
}
