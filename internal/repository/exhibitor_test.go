package repository

import (
	"testing"
	"time"

	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ExhibitorRepositoryTestSuite tests the ExhibitorRepository
type ExhibitorRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ExhibitorRepository
	shiftRepo     *ShiftRepository
	factories     *testutils.FactorySet

	team *models.Team
}

// SetupSuite runs before all tests in the suite
func (suite *ExhibitorRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewExhibitorRepository(suite.baseTestSuite.DB)
	suite.shiftRepo = NewShiftRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ExhibitorRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ExhibitorRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.team = suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.team).Error)
}

// TearDownTest runs after each test
func (suite *ExhibitorRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestDeleteUnassigned tests deleting an exhibitor with no assignments
func (suite *ExhibitorRepositoryTestSuite) TestDeleteUnassigned() {
	exhibitor := suite.factories.Exhibitor.Create(suite.team.ID)
	suite.NoError(suite.repo.Create(exhibitor))

	err := suite.repo.Delete(suite.team.ID, exhibitor.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(suite.team.ID, exhibitor.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteAssignedRejected tests that deletion is blocked while shifts reference the exhibitor
func (suite *ExhibitorRepositoryTestSuite) TestDeleteAssignedRejected() {
	exhibitor := suite.factories.Exhibitor.Create(suite.team.ID)
	suite.NoError(suite.repo.Create(exhibitor))

	place := suite.factories.Place.Create(suite.team.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(place).Error)
	shift := suite.factories.Shift.Create(suite.team.ID, place.ID, time.Now().AddDate(0, 0, 1), "10:00-12:00")
	suite.NoError(suite.shiftRepo.Create(shift))

	suite.NoError(suite.shiftRepo.AssignExhibitor(suite.team.ID, shift.ID, exhibitor.ID))

	err := suite.repo.Delete(suite.team.ID, exhibitor.ID)
	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrExhibitorInUse)

	// Still present
	found, err := suite.repo.GetByID(suite.team.ID, exhibitor.ID)
	suite.NoError(err)
	suite.Equal(exhibitor.ID, found.ID)

	// Unassigning frees the exhibitor for deletion
	suite.NoError(suite.shiftRepo.UnassignExhibitor(suite.team.ID, shift.ID, exhibitor.ID))
	suite.NoError(suite.repo.Delete(suite.team.ID, exhibitor.ID))
}

// Run the test suite
func TestExhibitorRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ExhibitorRepositoryTestSuite))
}
