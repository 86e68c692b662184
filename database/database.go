// File: /database/database.go
package database

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"showroom-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Lead tables reference bikes by slug text only; keep it that way
		// so historical leads survive bike deletion.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Bike{},
		&models.Offer{},
		&models.TestRideRequest{},
		&models.ContactInquiry{},
		&models.ServiceBooking{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Catalog listing order: featured first, then name
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bikes_featured_name ON bikes(is_featured DESC, name)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for bikes: %v\n", err)
	}

	// Offer listing order and the currently-active window query
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_offers_active_from ON offers(is_active DESC, valid_from DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for offers: %v\n", err)
	}

	// Lead listings are always newest-first
	for _, table := range []string{"test_ride_requests", "contact_inquiries", "service_bookings"} {
		stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_created ON %s(created_at DESC)", table, table)
		if err := db.Exec(stmt).Error; err != nil {
			fmt.Printf("Warning: Could not create index for %s: %v\n", table, err)
		}
	}

	return nil
}

// SeedAdmin creates the initial staff account when the admin table is
// empty. A blank password skips seeding so production boots never get a
// default credential.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.AdminUser{
		ID:       uuid.New().String(),
		Name:     "Showroom Admin",
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	fmt.Printf("Seeded admin account %s\n", email)
	return nil
}
