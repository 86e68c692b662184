// File: /database/importer_test.go
package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"showroom-api/models"
)

func setupImportDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "import_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Bike{}))
	return db
}

func writeFeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bikes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleFeed = `{
  "bikes": [
    {
      "slug": "hunter-350",
      "name": "Hunter 350",
      "family": "Hunter",
      "isFeatured": true,
      "engine": {"cc": 349.34, "ccCategory": "350cc"},
      "performance": {"mileage": "36 kmpl"},
      "chassis": {"frontBrake": "300mm disc"},
      "colors": ["Rebel Red", "Dapper Grey"],
      "price": {"exShowroom": 149900, "onRoad": 172000, "emi": "3,199/month"},
      "features": ["Dual-channel ABS", "LED DRL"],
      "gallery": ["assets/images/hunter-1.webp", "assets/images/hunter-2.webp"]
    },
    {
      "name": "No Slug Bike"
    }
  ]
}`

func TestImportCreatesBikesKeyedBySlug(t *testing.T) {
	db := setupImportDB(t)
	path := writeFeed(t, sampleFeed)

	created, updated, err := ImportBikes(db, path)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 0, updated)

	var bike models.Bike
	require.NoError(t, db.Where("slug = ?", "hunter-350").First(&bike).Error)
	assert.Equal(t, "Hunter 350", bike.Name)
	assert.True(t, bike.IsFeatured)
	assert.True(t, bike.IsActive)
	require.NotNil(t, bike.EngineCC)
	assert.Equal(t, 349.34, *bike.EngineCC)

	// Array fields round-trip through the delimited-text storage form
	assert.Equal(t, []string{"Rebel Red", "Dapper Grey"}, bike.ColorsList())
	assert.Equal(t, []string{"Dual-channel ABS", "LED DRL"}, bike.FeaturesList())
	assert.Equal(t, []string{"assets/images/hunter-1.webp", "assets/images/hunter-2.webp"}, bike.GalleryList())
}

func TestImportSkipsEntriesWithoutSlug(t *testing.T) {
	db := setupImportDB(t)
	path := writeFeed(t, sampleFeed)

	_, _, err := ImportBikes(db, path)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Bike{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestImportUpdatesExistingAndReactivates(t *testing.T) {
	db := setupImportDB(t)

	existing := models.Bike{
		ID:       uuid.New().String(),
		Slug:     "hunter-350",
		Name:     "Old Hunter",
		IsActive: false,
	}
	require.NoError(t, db.Create(&existing).Error)

	path := writeFeed(t, sampleFeed)
	created, updated, err := ImportBikes(db, path)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 1, updated)

	var bike models.Bike
	require.NoError(t, db.Where("slug = ?", "hunter-350").First(&bike).Error)
	assert.Equal(t, existing.ID, bike.ID)
	assert.Equal(t, "Hunter 350", bike.Name)
	assert.True(t, bike.IsActive, "imported rows default to active")
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	db := setupImportDB(t)
	path := writeFeed(t, "{not json")

	_, _, err := ImportBikes(db, path)
	assert.Error(t, err)
}

func TestImportMissingFile(t *testing.T) {
	db := setupImportDB(t)

	_, _, err := ImportBikes(db, filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
