//go:build integration

package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"anoa.com/usherhire/internal/bootstrap"
	"anoa.com/usherhire/internal/entity"
	authRepo "anoa.com/usherhire/internal/modules/auth/repository"
	"anoa.com/usherhire/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenPostgres connects to the database named by TEST_DB_* variables, migrates
// it and empties every table. The test is skipped when TEST_DB_HOST is unset.
func OpenPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set")
	}

	opts := database.Options{
		Host:     os.Getenv("TEST_DB_HOST"),
		Port:     env("TEST_DB_PORT", "5432"),
		User:     env("TEST_DB_USER", "postgres"),
		Password: os.Getenv("TEST_DB_PASSWORD"),
		Name:     env("TEST_DB_NAME", "usher_hire_test"),
	}
	db, err := gorm.Open(postgres.Open(opts.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, bootstrap.Migrate(db))
	require.NoError(t, db.Exec("TRUNCATE reviews, bookings, events, usher_profiles, profiles, users CASCADE").Error)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateAccount inserts a user with its profile and, for ushers, usher profile.
func CreateAccount(t *testing.T, db *gorm.DB, email string, userType entity.UserType) *entity.Profile {
	t.Helper()
	user := &entity.User{Email: email, PasswordHash: "x"}
	profile := &entity.Profile{UserType: userType, FullName: email, Email: email}

	var usher *entity.UsherProfile
	if userType == entity.UserTypeUsher {
		usher = entity.NewUsherProfile(user.ID)
	}
	require.NoError(t, authRepo.NewUserRepository(db).CreateAccount(context.Background(), user, profile, usher))
	return profile
}

func CreateEvent(t *testing.T, db *gorm.DB, plannerID uuid.UUID, status entity.EventStatus, date time.Time) *entity.Event {
	t.Helper()
	event := &entity.Event{
		PlannerID:    plannerID,
		Title:        "Gala",
		VenueAddress: "1 Main St",
		EventDate:    entity.DateOf(date),
		StartTime:    "18:00",
		EndTime:      "23:00",
		UshersNeeded: 2,
		PayRate:      100,
		Status:       status,
	}
	require.NoError(t, db.Omit("Planner").Create(event).Error)
	return event
}

func CreateBooking(t *testing.T, db *gorm.DB, eventID, usherID uuid.UUID, status entity.BookingStatus) *entity.Booking {
	t.Helper()
	booking := &entity.Booking{
		EventID:   eventID,
		UsherID:   usherID,
		Status:    status,
		AppliedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Omit("Event", "Usher").Create(booking).Error)
	return booking
}
