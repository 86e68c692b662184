// File: /controllers/helpers_test.go
package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"showroom-api/config"
	"showroom-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "showroom_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.AdminUser{},
		&models.Bike{},
		&models.Offer{},
		&models.TestRideRequest{},
		&models.ContactInquiry{},
		&models.ServiceBooking{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		BookingPage: "/book-test-ride",
		ContactPage: "/contact",
		ServicePage: "/service",
	}
}

func createBike(t *testing.T, db *gorm.DB, slug, name string, active, featured bool) models.Bike {
	t.Helper()

	bike := models.Bike{
		ID:         uuid.New().String(),
		Slug:       slug,
		Name:       name,
		IsActive:   active,
		IsFeatured: featured,
	}
	require.NoError(t, db.Create(&bike).Error)
	if !active {
		// The column's gorm default:true overrides a zero-value insert, so
		// persist the flag explicitly.
		require.NoError(t, db.Model(&bike).Update("is_active", false).Error)
	}
	return bike
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// flashLocation parses the redirect target of a form submission into the
// page path and its status/msg flash values.
func flashLocation(t *testing.T, w *httptest.ResponseRecorder) (page, status, msg string) {
	t.Helper()

	loc := w.Header().Get("Location")
	require.NotEmpty(t, loc, "expected a redirect Location header")

	parsed, err := url.Parse(loc)
	require.NoError(t, err)
	return parsed.Path, parsed.Query().Get("status"), parsed.Query().Get("msg")
}

func fptr(v float64) *float64 {
	return &v
}
