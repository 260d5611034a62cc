package bootstrap

import (
	"errors"
	"log"
	"time"

	"anoa.com/usherhire/internal/entity"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const seedPassword = "password123"

type seedAccount struct {
	Email    string
	FullName string
	Phone    string
	Type     entity.UserType
}

var seedAccounts = []seedAccount{
	{Email: "planner@usherhire.dev", FullName: "Demo Planner", Phone: "+1 555 0100", Type: entity.UserTypePlanner},
	{Email: "usher@usherhire.dev", FullName: "Demo Usher", Phone: "+1 555 0101", Type: entity.UserTypeUsher},
}

// SeedDemoData creates a planner, an usher and one published event for local
// development. Existing accounts are left untouched.
func SeedDemoData(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var planner *entity.Profile
	for _, account := range seedAccounts {
		profile, created, err := seedAccountIfMissing(db, account, string(hash))
		if err != nil {
			return err
		}
		if created {
			log.Printf("[seed] created %s account %s", account.Type, account.Email)
		}
		if profile.IsPlanner() {
			planner = profile
		}
	}

	if planner == nil {
		return nil
	}
	return seedEventIfMissing(db, planner.ID)
}

func seedAccountIfMissing(db *gorm.DB, account seedAccount, passwordHash string) (*entity.Profile, bool, error) {
	var existing entity.Profile
	err := db.Where("email = ?", account.Email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user := entity.User{Email: account.Email, PasswordHash: passwordHash}
	profile := entity.Profile{
		UserType: account.Type,
		FullName: account.FullName,
		Email:    account.Email,
		Phone:    stringPtr(account.Phone),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile.ID = user.ID
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		if account.Type != entity.UserTypeUsher {
			return nil
		}

		usher := entity.NewUsherProfile(user.ID)
		usher.ExperienceYears = 3
		usher.Skills = datatypes.JSONSlice[string]{"Guest registration", "Crowd control", "VIP seating"}
		usher.Bio = stringPtr("Friendly usher with conference and wedding experience.")
		return tx.Create(usher).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &profile, true, nil
}

func seedEventIfMissing(db *gorm.DB, plannerID uuid.UUID) error {
	var count int64
	if err := db.Model(&entity.Event{}).Where("planner_id = ?", plannerID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	event := entity.Event{
		PlannerID:    plannerID,
		Title:        "Annual Tech Conference",
		Description:  stringPtr("Two-hall conference, registration desk and session doors."),
		VenueAddress: "1 Convention Plaza",
		EventDate:    entity.DateOf(time.Now().AddDate(0, 0, 14)),
		StartTime:    "08:00",
		EndTime:      "17:00",
		UshersNeeded: 6,
		PayRate:      150,
		Status:       entity.EventPublished,
		DressCode:    stringPtr("Business formal, all black"),
	}
	if err := db.Create(&event).Error; err != nil {
		return err
	}

	log.Printf("[seed] created event %q", event.Title)
	return nil
}

func stringPtr(s string) *string {
	return &s
}
