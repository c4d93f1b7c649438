package repository

import (
	"testing"
	"time"

	"turnos-backend/internal/database/models"
	"turnos-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	shiftRepo     *ShiftRepository
	factories     *testutils.FactorySet

	team  *models.Team
	place *models.Place
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.shiftRepo = NewShiftRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a team with a capacity-2 place
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.team = suite.factories.Team.Create()
	err := suite.baseTestSuite.DB.Create(suite.team).Error
	suite.NoError(err)

	suite.place = suite.factories.Place.WithCapacity(suite.team.ID, 2)
	err = suite.baseTestSuite.DB.Create(suite.place).Error
	suite.NoError(err)
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create(suite.team.ID)
	err := suite.baseTestSuite.DB.Create(user).Error
	suite.NoError(err)
	return user
}

func (suite *UserRepositoryTestSuite) createShift(timeRange string) *models.Shift {
	shift := suite.factories.Shift.Create(suite.team.ID, suite.place.ID, time.Now().AddDate(0, 0, 1), timeRange)
	err := suite.shiftRepo.Create(shift)
	suite.NoError(err)
	return shift
}

// TestDeleteUnassigned tests deleting a user with no assignments
func (suite *UserRepositoryTestSuite) TestDeleteUnassigned() {
	user := suite.createUser()

	err := suite.repo.Delete(suite.team.ID, user.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(suite.team.ID, user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteReleasesShiftSeats tests that deleting an assigned user frees
// their seats and the shift state follows the remaining count
func (suite *UserRepositoryTestSuite) TestDeleteReleasesShiftSeats() {
	shift := suite.createShift("09:00-11:00")
	u1 := suite.createUser()
	u2 := suite.createUser()

	_, err := suite.shiftRepo.AssignVolunteer(suite.team.ID, shift.ID, u1.ID)
	suite.NoError(err)
	updated, err := suite.shiftRepo.AssignVolunteer(suite.team.ID, shift.ID, u2.ID)
	suite.NoError(err)
	suite.Equal(models.ShiftStateFull, updated.State)

	err = suite.repo.Delete(suite.team.ID, u1.ID)
	suite.NoError(err)

	var rows int64
	err = suite.baseTestSuite.DB.Table("shift_volunteers").Where("shift_id = ?", shift.ID).Count(&rows).Error
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	found, err := suite.shiftRepo.GetByID(suite.team.ID, shift.ID)
	suite.NoError(err)
	suite.Equal(models.ShiftStateOccupied, found.State)

	// The freed seat is usable again
	u3 := suite.createUser()
	refilled, err := suite.shiftRepo.AssignVolunteer(suite.team.ID, shift.ID, u3.ID)
	suite.NoError(err)
	suite.Equal(models.ShiftStateFull, refilled.State)
}

// TestDeleteSoleVolunteerFreesShift tests the full three-state walk down
func (suite *UserRepositoryTestSuite) TestDeleteSoleVolunteerFreesShift() {
	shift := suite.createShift("09:00-11:00")
	user := suite.createUser()

	_, err := suite.shiftRepo.AssignVolunteer(suite.team.ID, shift.ID, user.ID)
	suite.NoError(err)

	err = suite.repo.Delete(suite.team.ID, user.ID)
	suite.NoError(err)

	found, err := suite.shiftRepo.GetByID(suite.team.ID, shift.ID)
	suite.NoError(err)
	suite.Equal(models.ShiftStateFree, found.State)
}

// TestDeleteRemovesNotificationRows tests that config and ledger rows go
// with the user
func (suite *UserRepositoryTestSuite) TestDeleteRemovesNotificationRows() {
	shift := suite.createShift("09:00-11:00")
	user := suite.createUser()

	_, err := suite.shiftRepo.AssignVolunteer(suite.team.ID, shift.ID, user.ID)
	suite.NoError(err)

	config := &models.NotificationConfig{
		UserID: user.ID, OneWeek: true, OneDay: false, OneHour: true, Active: true,
	}
	suite.NoError(NewNotificationConfigRepository(suite.baseTestSuite.DB).Upsert(config))

	ledger := NewSentNotificationRepository(suite.baseTestSuite.DB)
	suite.NoError(ledger.RecordAttempt(&models.SentNotification{
		ShiftID: shift.ID, UserID: user.ID, OffsetKind: models.OffsetOneDay,
		SentAt: time.Now(), Success: true,
	}))

	err = suite.repo.Delete(suite.team.ID, user.ID)
	suite.NoError(err)

	var configs, sent int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.NotificationConfig{}).Where("user_id = ?", user.ID).Count(&configs).Error)
	suite.NoError(suite.baseTestSuite.DB.Model(&models.SentNotification{}).Where("user_id = ?", user.ID).Count(&sent).Error)
	suite.Zero(configs)
	suite.Zero(sent)
}

// TestDeleteMissing tests deleting a user that does not exist
func (suite *UserRepositoryTestSuite) TestDeleteMissing() {
	user := suite.factories.User.Create(suite.team.ID)

	err := suite.repo.Delete(suite.team.ID, user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
