package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"turnos-backend/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// BaseTestSuite carries an isolated in-memory database per suite. SQLite
// keeps the suites self-contained; TranslateError makes unique-index
// violations surface as gorm.ErrDuplicatedKey like they do on Postgres.
type BaseTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

// SetupTestSuite opens a fresh in-memory database with the full schema.
// Call this from SetupSuite in your tests before using the DB.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	// cache=shared keeps the database alive across pooled connections
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(database.AllModels()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return &BaseTestSuite{DB: db}
}

// Suite lifecycle hooks
func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite closes the suite database
func (s *BaseTestSuite) TeardownTestSuite() {
	if s.DB == nil {
		return
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// CleanTestDB empties known tables if they exist. Safe even if schema changes.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := []string{
		"sent_notifications",
		"notification_configs",
		"shift_volunteers",
		"shift_exhibitors",
		"shifts",
		"exhibitors",
		"users",
		"places",
		"teams",
	}
	m := s.DB.Migrator()
	for _, t := range tables {
		if m.HasTable(t) {
			s.DB.Exec(`DELETE FROM "` + t + `";`)
		}
	}
}
