package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"turnos-backend/internal/database/models"
	"turnos-backend/internal/mocks"
	"turnos-backend/internal/repository"
	"turnos-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// NotificationServiceTestSuite tests the reminder engine with a controlled
// clock and a mocked mail sender.
type NotificationServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	ctrl       *gomock.Controller
	mockMailer *mocks.MockMailer
	service    *NotificationService

	shiftRepo *repository.ShiftRepository
	ledger    *repository.SentNotificationRepository

	team  *models.Team
	place *models.Place
}

// SetupSuite runs before all tests in the suite
func (suite *NotificationServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	suite.shiftRepo = repository.NewShiftRepository(db)
	suite.ledger = repository.NewSentNotificationRepository(db)
}

// TearDownSuite runs after all tests in the suite
func (suite *NotificationServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest wires a fresh mock mailer and seeds a team with a place
func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMailer = mocks.NewMockMailer(suite.ctrl)
	suite.service = NewNotificationService(
		suite.shiftRepo,
		suite.ledger,
		repository.NewNotificationConfigRepository(suite.baseTestSuite.DB),
		suite.mockMailer,
		30*time.Minute,
		5*time.Second,
	)

	db := suite.baseTestSuite.DB
	suite.team = suite.factories.Team.Create()
	suite.NoError(db.Create(suite.team).Error)
	suite.place = suite.factories.Place.Create(suite.team.ID)
	suite.NoError(db.Create(suite.place).Error)
}

// TearDownTest runs after each test
func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
	suite.baseTestSuite.TearDownTest()
}

// seedShift creates a shift starting at 12:00 on the given day with one
// assigned volunteer, and returns both.
func (suite *NotificationServiceTestSuite) seedShift(day time.Time) (*models.Shift, *models.User) {
	shift := suite.factories.Shift.Create(suite.team.ID, suite.place.ID, day, "12:00-14:00")
	suite.NoError(suite.shiftRepo.Create(shift))

	user := suite.factories.User.Create(suite.team.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	_, err := suite.shiftRepo.AssignVolunteer(suite.team.ID, shift.ID, user.ID)
	suite.NoError(err)
	return shift, user
}

// TestRunSendsDueReminder tests the one-day window end to end
func (suite *NotificationServiceTestSuite) TestRunSendsDueReminder() {
	day := time.Now().AddDate(0, 0, 3)
	shift, user := suite.seedShift(day)

	now := shift.StartInstant().Add(-24 * time.Hour).Add(10 * time.Minute)
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), *user.Email, gomock.Any(), models.OffsetOneDay).
		Return(nil)

	summary, err := suite.service.Run(context.Background(), now)
	suite.NoError(err)
	suite.Equal(1, summary.Sent)
	suite.Equal(0, summary.Failed)

	sent, err := suite.ledger.HasBeenSent(shift.ID, user.ID, models.OffsetOneDay)
	suite.NoError(err)
	suite.True(sent)
}

// TestRunDedup tests that a second tick in the same window sends nothing
func (suite *NotificationServiceTestSuite) TestRunDedup() {
	day := time.Now().AddDate(0, 0, 3)
	shift, user := suite.seedShift(day)

	now := shift.StartInstant().Add(-24 * time.Hour).Add(5 * time.Minute)
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), *user.Email, gomock.Any(), models.OffsetOneDay).
		Return(nil).
		Times(1)

	summary, err := suite.service.Run(context.Background(), now)
	suite.NoError(err)
	suite.Equal(1, summary.Sent)

	// Same window, later tick: the ledger row blocks a resend
	summary, err = suite.service.Run(context.Background(), now.Add(10*time.Minute))
	suite.NoError(err)
	suite.Equal(0, summary.Sent)
	suite.Equal(1, summary.Skipped)

	entries, err := suite.ledger.GetByShiftID(shift.ID)
	suite.NoError(err)
	suite.Len(entries, 1)
}

// TestRunOutsideWindow tests the window bounds around the one-day offset
func (suite *NotificationServiceTestSuite) TestRunOutsideWindow() {
	day := time.Now().AddDate(0, 0, 3)
	shift, _ := suite.seedShift(day)
	trigger := shift.StartInstant().Add(-24 * time.Hour)

	// No Send expectation: none of these instants is inside a window
	for _, now := range []time.Time{
		trigger.Add(-time.Minute),      // before the offset instant
		trigger.Add(31 * time.Minute),  // past the tolerance
		shift.StartInstant(),           // shift already started
		shift.StartInstant().Add(time.Hour),
	} {
		summary, err := suite.service.Run(context.Background(), now)
		suite.NoError(err)
		suite.Equal(0, summary.Sent, "no send expected at %s", now)
	}
}

// TestRunRespectsConfig tests that a disabled offset is skipped while an
// enabled one still fires.
func (suite *NotificationServiceTestSuite) TestRunRespectsConfig() {
	day := time.Now().AddDate(0, 0, 10)
	shift, user := suite.seedShift(day)

	config := &models.NotificationConfig{UserID: user.ID, OneWeek: true, OneDay: false, OneHour: true, Active: true}
	suite.NoError(suite.baseTestSuite.DB.Create(config).Error)

	// One-day window: disabled, nothing sent
	summary, err := suite.service.Run(context.Background(), shift.StartInstant().Add(-24*time.Hour).Add(5*time.Minute))
	suite.NoError(err)
	suite.Equal(0, summary.Sent)
	suite.Equal(1, summary.Skipped)

	// One-week window: enabled
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), *user.Email, gomock.Any(), models.OffsetOneWeek).
		Return(nil)
	summary, err = suite.service.Run(context.Background(), shift.StartInstant().Add(-7*24*time.Hour).Add(5*time.Minute))
	suite.NoError(err)
	suite.Equal(1, summary.Sent)

	entries, err := suite.ledger.GetByShiftID(shift.ID)
	suite.NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(models.OffsetOneWeek, entries[0].OffsetKind)
}

// TestRunInactiveConfig tests that a deactivated config silences every offset
func (suite *NotificationServiceTestSuite) TestRunInactiveConfig() {
	day := time.Now().AddDate(0, 0, 3)
	shift, user := suite.seedShift(day)

	config := &models.NotificationConfig{UserID: user.ID, OneWeek: true, OneDay: true, OneHour: true, Active: false}
	suite.NoError(suite.baseTestSuite.DB.Create(config).Error)

	summary, err := suite.service.Run(context.Background(), shift.StartInstant().Add(-24*time.Hour).Add(5*time.Minute))
	suite.NoError(err)
	suite.Equal(0, summary.Sent)
	suite.Equal(1, summary.Skipped)
}

// TestRunNoEmail tests that a volunteer without an email is skipped
func (suite *NotificationServiceTestSuite) TestRunNoEmail() {
	day := time.Now().AddDate(0, 0, 3)
	shift := suite.factories.Shift.Create(suite.team.ID, suite.place.ID, day, "12:00-14:00")
	suite.NoError(suite.shiftRepo.Create(shift))

	user := suite.factories.User.WithoutEmail(suite.team.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	_, err := suite.shiftRepo.AssignVolunteer(suite.team.ID, shift.ID, user.ID)
	suite.NoError(err)

	summary, err := suite.service.Run(context.Background(), shift.StartInstant().Add(-24*time.Hour).Add(5*time.Minute))
	suite.NoError(err)
	suite.Equal(0, summary.Sent)
	suite.Equal(1, summary.Skipped)
}

// TestRunFailureIsolated tests that one failing send is recorded and does not
// stop the other volunteers of the same shift.
func (suite *NotificationServiceTestSuite) TestRunFailureIsolated() {
	day := time.Now().AddDate(0, 0, 3)
	shift, u1 := suite.seedShift(day)

	u2 := suite.factories.User.Create(suite.team.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(u2).Error)
	_, err := suite.shiftRepo.AssignVolunteer(suite.team.ID, shift.ID, u2.ID)
	suite.NoError(err)

	suite.mockMailer.EXPECT().
		Send(gomock.Any(), *u1.Email, gomock.Any(), models.OffsetOneDay).
		Return(errors.New("smtp connection refused"))
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), *u2.Email, gomock.Any(), models.OffsetOneDay).
		Return(nil)

	summary, err := suite.service.Run(context.Background(), shift.StartInstant().Add(-24*time.Hour).Add(5*time.Minute))
	suite.NoError(err)
	suite.Equal(1, summary.Sent)
	suite.Equal(1, summary.Failed)

	// The failure occupies the ledger key: no automatic retry
	entries, err := suite.ledger.GetByShiftID(shift.ID)
	suite.NoError(err)
	suite.Len(entries, 2)

	summary, err = suite.service.Run(context.Background(), shift.StartInstant().Add(-24*time.Hour).Add(6*time.Minute))
	suite.NoError(err)
	suite.Equal(0, summary.Sent)
	suite.Equal(0, summary.Failed)
}

// Run the test suite
func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
