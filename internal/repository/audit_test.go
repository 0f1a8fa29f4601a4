//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"pipetrak-backend/internal/database/models"
	"pipetrak-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// AuditRepositoryTestSuite tests the AuditRepository
type AuditRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AuditRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AuditRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAuditRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AuditRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AuditRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AuditRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AuditRepositoryTestSuite) seedProject() *models.Project {
	project := suite.factories.Project.Create()
	suite.Require().NoError(NewProjectRepository(suite.baseTestSuite.DB).Create(project))
	return project
}

// TestListByProject tests newest-first paging over the log
func (suite *AuditRepositoryTestSuite) TestListByProject() {
	project := suite.seedProject()

	base := time.Now().Add(-time.Hour)
	for i, target := range []string{"VALVE001 (1 of 2)", "VALVE001 (2 of 2)", "FW-0001 (1 of 1)"} {
		entry := suite.factories.Audit.WithProject(project.ID)
		entry.Target = target
		entry.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		suite.NoError(suite.repo.Create(entry))
	}

	entries, total, err := suite.repo.ListByProject(project.ID, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(entries, 2)
	suite.Equal("FW-0001 (1 of 1)", entries[0].Target)
	suite.Equal("VALVE001 (2 of 2)", entries[1].Target)
}

// TestListByEntityType tests filtering the log by entity type
func (suite *AuditRepositoryTestSuite) TestListByEntityType() {
	project := suite.seedProject()

	valve := suite.factories.Audit.WithProject(project.ID)
	valve.EntityType = "valve"
	suite.NoError(suite.repo.Create(valve))

	weld := suite.factories.Audit.WithProject(project.ID)
	weld.EntityType = "field_weld"
	suite.NoError(suite.repo.Create(weld))

	entries, total, err := suite.repo.ListByEntityType(project.ID, "field_weld", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(entries, 1)
	suite.Equal("field_weld", entries[0].EntityType)
}

// TestAuditRepositoryTestSuite runs the test suite
func TestAuditRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AuditRepositoryTestSuite))
}
