// File: /controllers/catalog_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"showroom-api/models"
)

type CatalogController struct {
	db *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{db: db}
}

// GetBikesJSON serves the public bikes feed. The shape is a public data
// contract consumed by the front end, so it stays {"bikes": [...]} with
// the projected view of every active bike in catalog order.
func (cc *CatalogController) GetBikesJSON(c *gin.Context) {
	bikes, err := cc.activeBikes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bikes"})
		return
	}

	views := make([]models.BikeView, 0, len(bikes))
	for i := range bikes {
		views = append(views, bikes[i].ToView())
	}

	c.JSON(http.StatusOK, gin.H{"bikes": views})
}

// GetBike serves the detail projection for one slug. Inactive bikes are
// invisible here: they 404 exactly like unknown slugs.
func (cc *CatalogController) GetBike(c *gin.Context) {
	slug := c.Param("slug")

	var bike models.Bike
	err := cc.db.Where("slug = ? AND is_active = ?", slug, true).First(&bike).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bike"})
		return
	}

	c.JSON(http.StatusOK, bike.ToView())
}

// GetBikeChoices lists slug/name pairs of active bikes for the form
// dropdowns, ordered by name.
func (cc *CatalogController) GetBikeChoices(c *gin.Context) {
	var bikes []models.Bike
	if err := cc.db.Where("is_active = ?", true).Order("name").Find(&bikes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bikes"})
		return
	}

	choices := make([]models.BikeChoice, 0, len(bikes))
	for i := range bikes {
		choices = append(choices, models.BikeChoice{Slug: bikes[i].Slug, Name: bikes[i].Name})
	}

	c.JSON(http.StatusOK, gin.H{"bikes": choices})
}

func (cc *CatalogController) activeBikes() ([]models.Bike, error) {
	var bikes []models.Bike
	err := cc.db.Where("is_active = ?", true).
		Order("is_featured DESC, name").
		Find(&bikes).Error
	return bikes, err
}

// ActiveSlugSet returns the slugs of all active bikes, recomputed on every
// call so lead validation always sees the latest catalog writes.
func ActiveSlugSet(db *gorm.DB) (map[string]bool, error) {
	var slugs []string
	if err := db.Model(&models.Bike{}).Where("is_active = ?", true).Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		set[slug] = true
	}
	return set, nil
}
