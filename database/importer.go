// File: /database/importer.go
package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"showroom-api/models"
)

type bikeFeed struct {
	Bikes []models.BikeView `json:"bikes"`
}

// ImportBikes bulk-loads a feed-shaped JSON document, upserting rows keyed
// by slug. Imported bikes are always activated. Returns created and
// updated counts.
func ImportBikes(db *gorm.DB, path string) (created, updated int, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var feed bikeFeed
	if err := json.Unmarshal(raw, &feed); err != nil {
		return 0, 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, view := range feed.Bikes {
		if view.Slug == "" {
			fmt.Printf("Skipping bike without slug: %s\n", view.Name)
			continue
		}

		var bike models.Bike
		findErr := db.Where("slug = ?", view.Slug).First(&bike).Error
		switch {
		case findErr == nil:
			applyView(&bike, view)
			if err := db.Save(&bike).Error; err != nil {
				return created, updated, fmt.Errorf("failed to update bike %s: %w", view.Slug, err)
			}
			updated++
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			bike = models.Bike{ID: uuid.New().String(), Slug: view.Slug}
			applyView(&bike, view)
			if err := db.Create(&bike).Error; err != nil {
				return created, updated, fmt.Errorf("failed to create bike %s: %w", view.Slug, err)
			}
			created++
		default:
			return created, updated, fmt.Errorf("failed to look up bike %s: %w", view.Slug, findErr)
		}
	}

	return created, updated, nil
}

// applyView maps the public feed shape back onto stored columns, joining
// the array fields into the delimited-text form the catalog keeps.
func applyView(bike *models.Bike, view models.BikeView) {
	cc := view.Engine.CC
	exShowroom := view.Price.ExShowroom
	onRoad := view.Price.OnRoad

	bike.Name = view.Name
	bike.Family = view.Family
	bike.IsFeatured = view.IsFeatured
	bike.HeroImage = view.HeroImage
	bike.EngineCC = &cc
	bike.CCCategory = view.Engine.CCCategory
	bike.Power = view.Engine.Power
	bike.Torque = view.Engine.Torque
	bike.Cooling = view.Engine.Cooling
	bike.Transmission = view.Engine.Transmission
	bike.Mileage = view.Performance.Mileage
	bike.TopSpeed = view.Performance.TopSpeed
	bike.PerformanceSummary = view.Performance.Summary
	bike.FrontBrake = view.Chassis.FrontBrake
	bike.RearBrake = view.Chassis.RearBrake
	bike.Suspension = view.Chassis.Suspension
	bike.Weight = view.Chassis.Weight
	bike.SeatHeight = view.Chassis.SeatHeight
	bike.Colors = strings.Join(view.Colors, ", ")
	bike.Features = strings.Join(view.Features, ", ")
	bike.GalleryImages = strings.Join(view.Gallery, ", ")
	bike.ExShowroomPrice = &exShowroom
	bike.OnRoadPrice = &onRoad
	bike.EMI = view.Price.EMI
	bike.IsActive = true
}
