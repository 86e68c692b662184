// File: /controllers/offer_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"showroom-api/models"
)

type OfferController struct {
	db *gorm.DB
}

func NewOfferController(db *gorm.DB) *OfferController {
	return &OfferController{db: db}
}

// GetActiveOffers lists offers that are both flagged active and inside
// their validity window today. The is_active flag and the date range are
// independent checks; an active flag with an expired window is excluded.
func (oc *OfferController) GetActiveOffers(c *gin.Context) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var offers []models.Offer
	err := oc.db.Preload("Bike").
		Where("is_active = ? AND valid_from < ? AND valid_until >= ?", true, endOfDay, startOfDay).
		Order("valid_from DESC").
		Find(&offers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch offers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}
