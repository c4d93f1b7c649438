package service

import (
	"testing"
	"time"

	"turnos-backend/internal/auth"
	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/repository"
	"turnos-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// ShiftServiceTestSuite tests the ShiftService against a real store
type ShiftServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *ShiftService
	factories     *testutils.FactorySet

	team  *models.Team
	place *models.Place
	admin auth.Principal
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	suite.service = NewShiftService(
		repository.NewShiftRepository(db),
		repository.NewPlaceRepository(db),
		repository.NewUserRepository(db),
		validator.New(),
	)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds a team and a place, and an admin principal of that team
func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	suite.team = suite.factories.Team.Create()
	suite.NoError(db.Create(suite.team).Error)

	suite.place = suite.factories.Place.WithCapacity(suite.team.ID, 3)
	suite.NoError(db.Create(suite.place).Error)

	adminUser := suite.factories.User.WithRole(suite.team.ID, models.RoleAdmin)
	suite.NoError(db.Create(adminUser).Error)
	suite.admin = auth.Principal{UserID: adminUser.ID, Role: models.RoleAdmin, TeamID: suite.team.ID}
}

// TearDownTest runs after each test
func (suite *ShiftServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a shift through the service
func (suite *ShiftServiceTestSuite) TestCreate() {
	shift, err := suite.service.Create(suite.admin, &CreateShiftRequest{
		PlaceID:   suite.place.ID,
		Date:      time.Now().AddDate(0, 0, 1),
		TimeRange: "09:00-11:00",
	})
	suite.NoError(err)
	suite.Equal(suite.team.ID, shift.TeamID)
	suite.Equal(models.ShiftStateFree, shift.State)
}

// TestCreateInvalidTimeRange tests that a malformed range is rejected
func (suite *ShiftServiceTestSuite) TestCreateInvalidTimeRange() {
	_, err := suite.service.Create(suite.admin, &CreateShiftRequest{
		PlaceID:   suite.place.ID,
		Date:      time.Now().AddDate(0, 0, 1),
		TimeRange: "9-11",
	})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestGenerateWeekly tests that a weekly pattern covers the seven days from the start
func (suite *ShiftServiceTestSuite) TestGenerateWeekly() {
	result, err := suite.service.Generate(suite.admin, &GeneratePattern{
		Mode:            "weekly",
		PlaceID:         suite.place.ID,
		StartDate:       time.Now().AddDate(0, 0, 1),
		StartTime:       "09:00",
		EndTime:         "13:00",
		IntervalMinutes: 120,
	})
	suite.NoError(err)
	// 2 slots per day, 7 days
	suite.Equal(14, result.Created)
	suite.Equal(0, result.Skipped)
}

// TestGenerateSkipsExisting tests that a re-run counts existing slots as skipped
func (suite *ShiftServiceTestSuite) TestGenerateSkipsExisting() {
	pattern := &GeneratePattern{
		Mode:            "weekly",
		PlaceID:         suite.place.ID,
		StartDate:       time.Now().AddDate(0, 0, 1),
		StartTime:       "09:00",
		EndTime:         "11:00",
		IntervalMinutes: 120,
	}

	first, err := suite.service.Generate(suite.admin, pattern)
	suite.NoError(err)
	suite.Equal(7, first.Created)

	second, err := suite.service.Generate(suite.admin, pattern)
	suite.NoError(err)
	suite.Equal(0, second.Created)
	suite.Equal(7, second.Skipped)
}

// TestGenerateMonthly tests an explicit date range
func (suite *ShiftServiceTestSuite) TestGenerateMonthly() {
	start := time.Now().AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 9)
	result, err := suite.service.Generate(suite.admin, &GeneratePattern{
		Mode:            "monthly",
		PlaceID:         suite.place.ID,
		StartDate:       start,
		EndDate:         &end,
		StartTime:       "10:00",
		EndTime:         "12:00",
		IntervalMinutes: 60,
	})
	suite.NoError(err)
	// 2 slots per day, 10 days inclusive
	suite.Equal(20, result.Created)
}

// TestGenerateMonthlyMissingEnd tests that monthly requires an end date
func (suite *ShiftServiceTestSuite) TestGenerateMonthlyMissingEnd() {
	_, err := suite.service.Generate(suite.admin, &GeneratePattern{
		Mode:            "monthly",
		PlaceID:         suite.place.ID,
		StartDate:       time.Now(),
		StartTime:       "10:00",
		EndTime:         "12:00",
		IntervalMinutes: 60,
	})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestGenerateNoSlotFits tests that an interval longer than the window is rejected
func (suite *ShiftServiceTestSuite) TestGenerateNoSlotFits() {
	_, err := suite.service.Generate(suite.admin, &GeneratePattern{
		Mode:            "weekly",
		PlaceID:         suite.place.ID,
		StartDate:       time.Now(),
		StartTime:       "09:00",
		EndTime:         "10:00",
		IntervalMinutes: 120,
	})
	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidGeneratePattern)
}

// TestCrossTeamPinned tests that a non-superAdmin stays in their own team
func (suite *ShiftServiceTestSuite) TestCrossTeamPinned() {
	other := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)

	shift, err := suite.service.Create(suite.admin, &CreateShiftRequest{
		PlaceID:   suite.place.ID,
		Date:      time.Now().AddDate(0, 0, 1),
		TimeRange: "15:00-17:00",
		TeamID:    &other.ID,
	})
	suite.NoError(err)
	suite.Equal(suite.team.ID, shift.TeamID)
}

// Run the test suite
func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
