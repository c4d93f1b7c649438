package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"turnos-backend/internal/config"
	"turnos-backend/internal/database"
	"turnos-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name   string `yaml:"name"`
	Active bool   `yaml:"active"`
}

type PlaceData struct {
	Name           string   `yaml:"name"`
	TeamName       string   `yaml:"team_name"`
	Address        string   `yaml:"address,omitempty"`
	Latitude       *float64 `yaml:"latitude,omitempty"`
	Longitude      *float64 `yaml:"longitude,omitempty"`
	Capacity       *int     `yaml:"capacity,omitempty"`
	ExhibitorCount *int     `yaml:"exhibitor_count,omitempty"`
	Active         bool     `yaml:"active"`
}

type UserData struct {
	Name          string  `yaml:"name"`
	TeamName      string  `yaml:"team_name"`
	Email         *string `yaml:"email,omitempty"`
	Role          string  `yaml:"role"`
	HasCar        *bool   `yaml:"has_car,omitempty"`
	MonthlyTarget *int    `yaml:"monthly_target,omitempty"`
}

type ExhibitorData struct {
	Name        string `yaml:"name"`
	TeamName    string `yaml:"team_name"`
	Description string `yaml:"description,omitempty"`
	Active      bool   `yaml:"active"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PlacesFile struct {
	Places []PlaceData `yaml:"places"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ExhibitorsFile struct {
	Exhibitors []ExhibitorData `yaml:"exhibitors"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var teamsFile TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &teamsFile); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	var placesFile PlacesFile
	if err := readYAML(filepath.Join(dataDir, "places.yaml"), &placesFile); err != nil {
		return fmt.Errorf("failed to load places: %w", err)
	}
	var usersFile UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var exhibitorsFile ExhibitorsFile
	if err := readYAML(filepath.Join(dataDir, "exhibitors.yaml"), &exhibitorsFile); err != nil {
		return fmt.Errorf("failed to load exhibitors: %w", err)
	}

	// Teams first, everything else hangs off them by name
	teamsByName := make(map[string]*models.Team)
	for _, t := range teamsFile.Teams {
		team := &models.Team{Name: t.Name, Active: t.Active}
		if err := upsertTeam(db, team); err != nil {
			return fmt.Errorf("failed to upsert team %q: %w", t.Name, err)
		}
		teamsByName[t.Name] = team
		log.Printf("Loaded team: %s", t.Name)
	}

	for _, p := range placesFile.Places {
		team, ok := teamsByName[p.TeamName]
		if !ok {
			return fmt.Errorf("place %q references unknown team %q", p.Name, p.TeamName)
		}
		place := &models.Place{
			TeamID:         team.ID,
			Name:           p.Name,
			Address:        p.Address,
			Latitude:       p.Latitude,
			Longitude:      p.Longitude,
			Capacity:       p.Capacity,
			ExhibitorCount: p.ExhibitorCount,
			Active:         p.Active,
		}
		if err := upsertPlace(db, place); err != nil {
			return fmt.Errorf("failed to upsert place %q: %w", p.Name, err)
		}
		log.Printf("Loaded place: %s (%s)", p.Name, p.TeamName)
	}

	for _, u := range usersFile.Users {
		team, ok := teamsByName[u.TeamName]
		if !ok {
			return fmt.Errorf("user %q references unknown team %q", u.Name, u.TeamName)
		}
		role := models.Role(u.Role)
		if !role.IsValid() {
			return fmt.Errorf("user %q has invalid role %q", u.Name, u.Role)
		}
		user := &models.User{
			TeamID:        team.ID,
			Name:          u.Name,
			Email:         u.Email,
			Role:          role,
			HasCar:        u.HasCar,
			MonthlyTarget: u.MonthlyTarget,
		}
		if err := upsertUser(db, user); err != nil {
			return fmt.Errorf("failed to upsert user %q: %w", u.Name, err)
		}
		log.Printf("Loaded user: %s (%s)", u.Name, u.Role)
	}

	for _, e := range exhibitorsFile.Exhibitors {
		team, ok := teamsByName[e.TeamName]
		if !ok {
			return fmt.Errorf("exhibitor %q references unknown team %q", e.Name, e.TeamName)
		}
		exhibitor := &models.Exhibitor{
			TeamID:      team.ID,
			Name:        e.Name,
			Description: e.Description,
			Active:      e.Active,
		}
		if err := upsertExhibitor(db, exhibitor); err != nil {
			return fmt.Errorf("failed to upsert exhibitor %q: %w", e.Name, err)
		}
		log.Printf("Loaded exhibitor: %s (%s)", e.Name, e.TeamName)
	}

	return nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func upsertTeam(db *gorm.DB, team *models.Team) error {
	var existing models.Team
	err := db.Where("name = ?", team.Name).First(&existing).Error
	if err == nil {
		existing.Active = team.Active
		*team = existing
		return db.Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.Create(team).Error
}

func upsertPlace(db *gorm.DB, place *models.Place) error {
	var existing models.Place
	err := db.Where("team_id = ? AND name = ?", place.TeamID, place.Name).First(&existing).Error
	if err == nil {
		place.ID = existing.ID
		place.CreatedAt = existing.CreatedAt
		return db.Save(place).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.Create(place).Error
}

func upsertUser(db *gorm.DB, user *models.User) error {
	var existing models.User
	err := db.Where("team_id = ? AND name = ?", user.TeamID, user.Name).First(&existing).Error
	if err == nil {
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
		return db.Save(user).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.Create(user).Error
}

func upsertExhibitor(db *gorm.DB, exhibitor *models.Exhibitor) error {
	var existing models.Exhibitor
	err := db.Where("team_id = ? AND name = ?", exhibitor.TeamID, exhibitor.Name).First(&existing).Error
	if err == nil {
		exhibitor.ID = existing.ID
		exhibitor.CreatedAt = existing.CreatedAt
		return db.Save(exhibitor).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.Create(exhibitor).Error
}
