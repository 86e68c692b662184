// File: /controllers/admin_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"showroom-api/models"
	"showroom-api/utils"
)

// AdminController backs the staff console: full CRUD on bikes and offers,
// read-only listings of the three lead tables. Lead records have no
// update or delete path here; they are append-only.
type AdminController struct {
	db *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

type BikeRequest struct {
	Slug       string `json:"slug"`
	Name       string `json:"name" binding:"required"`
	Family     string `json:"family"`
	IsFeatured bool   `json:"is_featured"`
	HeroImage  string `json:"hero_image"`

	EngineCC     *float64 `json:"engine_cc"`
	CCCategory   string   `json:"cc_category"`
	Power        string   `json:"power"`
	Torque       string   `json:"torque"`
	Cooling      string   `json:"cooling"`
	Transmission string   `json:"transmission"`

	Mileage            string `json:"mileage"`
	TopSpeed           string `json:"top_speed"`
	PerformanceSummary string `json:"performance_summary"`

	FrontBrake string `json:"front_brake"`
	RearBrake  string `json:"rear_brake"`
	Suspension string `json:"suspension"`
	Weight     string `json:"weight"`
	SeatHeight string `json:"seat_height"`

	Colors        string `json:"colors"`
	Features      string `json:"features"`
	GalleryImages string `json:"gallery_images"`

	ExShowroomPrice *float64 `json:"ex_showroom_price"`
	OnRoadPrice     *float64 `json:"on_road_price"`
	EMI             string   `json:"emi"`

	IsActive *bool `json:"is_active"`
}

// GetBikes lists the full catalog for the console, including inactive
// rows, with search and the filters staff use.
func (ac *AdminController) GetBikes(c *gin.Context) {
	query := ac.db.Model(&models.Bike{})

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR family LIKE ? OR slug LIKE ? OR cc_category LIKE ?", like, like, like, like)
	}
	if family := c.Query("family"); family != "" {
		query = query.Where("family = ?", family)
	}
	if category := c.Query("cc_category"); category != "" {
		query = query.Where("cc_category = ?", category)
	}
	if v := c.Query("is_active"); v != "" {
		active, _ := strconv.ParseBool(v)
		query = query.Where("is_active = ?", active)
	}
	if v := c.Query("is_featured"); v != "" {
		featured, _ := strconv.ParseBool(v)
		query = query.Where("is_featured = ?", featured)
	}

	var bikes []models.Bike
	if err := query.Order("is_featured DESC, name").Find(&bikes).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bikes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bikes": bikes})
}

func (ac *AdminController) GetBikeByID(c *gin.Context) {
	var bike models.Bike
	if err := ac.db.First(&bike, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Bike not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bike")
		return
	}
	c.JSON(http.StatusOK, bike)
}

// CreateBike adds a catalog entry. Slug is derived from the name when not
// supplied.
func (ac *AdminController) CreateBike(c *gin.Context) {
	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	bike := models.Bike{
		ID:                 uuid.New().String(),
		Slug:               slug,
		Name:               req.Name,
		Family:             req.Family,
		IsFeatured:         req.IsFeatured,
		HeroImage:          req.HeroImage,
		EngineCC:           req.EngineCC,
		CCCategory:         req.CCCategory,
		Power:              req.Power,
		Torque:             req.Torque,
		Cooling:            req.Cooling,
		Transmission:       req.Transmission,
		Mileage:            req.Mileage,
		TopSpeed:           req.TopSpeed,
		PerformanceSummary: req.PerformanceSummary,
		FrontBrake:         req.FrontBrake,
		RearBrake:          req.RearBrake,
		Suspension:         req.Suspension,
		Weight:             req.Weight,
		SeatHeight:         req.SeatHeight,
		Colors:             req.Colors,
		Features:           req.Features,
		GalleryImages:      req.GalleryImages,
		ExShowroomPrice:    req.ExShowroomPrice,
		OnRoadPrice:        req.OnRoadPrice,
		EMI:                req.EMI,
		IsActive:           true,
	}
	if req.IsActive != nil {
		bike.IsActive = *req.IsActive
	}

	if err := ac.db.Create(&bike).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create bike")
		return
	}

	utils.SendCreated(c, "Bike created successfully", bike)
}

// UpdateBike rewrites a catalog entry. The slug is kept unless explicitly
// changed; renaming a slug orphans any leads that reference it, which is
// accepted.
func (ac *AdminController) UpdateBike(c *gin.Context) {
	var bike models.Bike
	if err := ac.db.First(&bike, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Bike not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bike")
		return
	}

	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":                req.Name,
		"family":              req.Family,
		"is_featured":         req.IsFeatured,
		"hero_image":          req.HeroImage,
		"engine_cc":           req.EngineCC,
		"cc_category":         req.CCCategory,
		"power":               req.Power,
		"torque":              req.Torque,
		"cooling":             req.Cooling,
		"transmission":        req.Transmission,
		"mileage":             req.Mileage,
		"top_speed":           req.TopSpeed,
		"performance_summary": req.PerformanceSummary,
		"front_brake":         req.FrontBrake,
		"rear_brake":          req.RearBrake,
		"suspension":          req.Suspension,
		"weight":              req.Weight,
		"seat_height":         req.SeatHeight,
		"colors":              req.Colors,
		"features":            req.Features,
		"gallery_images":      req.GalleryImages,
		"ex_showroom_price":   req.ExShowroomPrice,
		"on_road_price":       req.OnRoadPrice,
		"emi":                 req.EMI,
	}
	if req.Slug != "" {
		updates["slug"] = req.Slug
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := ac.db.Model(&bike).Updates(updates).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update bike")
		return
	}

	utils.SendSuccess(c, "Bike updated successfully", nil)
}

func (ac *AdminController) DeleteBike(c *gin.Context) {
	var bike models.Bike
	if err := ac.db.First(&bike, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Bike not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bike")
		return
	}

	// Leads referencing this bike keep their slug string and survive.
	if err := ac.db.Delete(&bike).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete bike")
		return
	}

	utils.SendSuccess(c, "Bike deleted successfully", nil)
}

type OfferRequest struct {
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description"`
	BikeID             *string  `json:"bike_id"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	DiscountAmount     *float64 `json:"discount_amount"`
	ValidFrom          string   `json:"valid_from" binding:"required"`
	ValidUntil         string   `json:"valid_until" binding:"required"`
	IsActive           *bool    `json:"is_active"`
	Image              string   `json:"image"`
}

// GetOffers lists all offers for the console, active first then newest
// window first.
func (ac *AdminController) GetOffers(c *gin.Context) {
	query := ac.db.Model(&models.Offer{}).Preload("Bike")

	if v := c.Query("is_active"); v != "" {
		active, _ := strconv.ParseBool(v)
		query = query.Where("is_active = ?", active)
	}

	var offers []models.Offer
	if err := query.Order("is_active DESC, valid_from DESC").Find(&offers).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch offers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

func (ac *AdminController) CreateOffer(c *gin.Context) {
	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validFrom, err := time.Parse(dateLayout, req.ValidFrom)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "valid_from must be YYYY-MM-DD")
		return
	}
	validUntil, err := time.Parse(dateLayout, req.ValidUntil)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "valid_until must be YYYY-MM-DD")
		return
	}

	offer := models.Offer{
		ID:                 uuid.New().String(),
		Title:              req.Title,
		Description:        req.Description,
		BikeID:             req.BikeID,
		DiscountPercentage: req.DiscountPercentage,
		DiscountAmount:     req.DiscountAmount,
		ValidFrom:          validFrom,
		ValidUntil:         validUntil,
		IsActive:           true,
		Image:              req.Image,
	}
	if req.IsActive != nil {
		offer.IsActive = *req.IsActive
	}

	if err := ac.db.Create(&offer).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create offer")
		return
	}

	utils.SendCreated(c, "Offer created successfully", offer)
}

func (ac *AdminController) UpdateOffer(c *gin.Context) {
	var offer models.Offer
	if err := ac.db.First(&offer, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Offer not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch offer")
		return
	}

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validFrom, err := time.Parse(dateLayout, req.ValidFrom)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "valid_from must be YYYY-MM-DD")
		return
	}
	validUntil, err := time.Parse(dateLayout, req.ValidUntil)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "valid_until must be YYYY-MM-DD")
		return
	}

	updates := map[string]interface{}{
		"title":               req.Title,
		"description":         req.Description,
		"bike_id":             req.BikeID,
		"discount_percentage": req.DiscountPercentage,
		"discount_amount":     req.DiscountAmount,
		"valid_from":          validFrom,
		"valid_until":         validUntil,
		"image":               req.Image,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := ac.db.Model(&offer).Updates(updates).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update offer")
		return
	}

	utils.SendSuccess(c, "Offer updated successfully", nil)
}

func (ac *AdminController) DeleteOffer(c *gin.Context) {
	var offer models.Offer
	if err := ac.db.First(&offer, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Offer not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch offer")
		return
	}

	if err := ac.db.Delete(&offer).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete offer")
		return
	}

	utils.SendSuccess(c, "Offer deleted successfully", nil)
}

// GetTestRideRequests lists test-ride leads, newest first.
func (ac *AdminController) GetTestRideRequests(c *gin.Context) {
	query := ac.db.Model(&models.TestRideRequest{})

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR email LIKE ? OR bike_slug LIKE ?", like, like, like, like)
	}
	if slug := c.Query("bike_slug"); slug != "" {
		query = query.Where("bike_slug = ?", slug)
	}
	if date := c.Query("preferred_date"); date != "" {
		query = query.Where("preferred_date = ?", date)
	}

	var requests []models.TestRideRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch test ride requests")
		return
	}

	c.JSON(http.StatusOK, gin.H{"test_ride_requests": requests})
}

// GetContactInquiries lists contact leads, newest first.
func (ac *AdminController) GetContactInquiries(c *gin.Context) {
	query := ac.db.Model(&models.ContactInquiry{})

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR email LIKE ? OR bike_slug LIKE ? OR message LIKE ?", like, like, like, like, like)
	}
	if slug := c.Query("bike_slug"); slug != "" {
		query = query.Where("bike_slug = ?", slug)
	}

	var inquiries []models.ContactInquiry
	if err := query.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch contact inquiries")
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact_inquiries": inquiries})
}

// GetServiceBookings lists service leads, newest first.
func (ac *AdminController) GetServiceBookings(c *gin.Context) {
	query := ac.db.Model(&models.ServiceBooking{})

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR bike_slug LIKE ? OR notes LIKE ?", like, like, like, like)
	}
	if slug := c.Query("bike_slug"); slug != "" {
		query = query.Where("bike_slug = ?", slug)
	}
	if date := c.Query("preferred_date"); date != "" {
		query = query.Where("preferred_date = ?", date)
	}

	var bookings []models.ServiceBooking
	if err := query.Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch service bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"service_bookings": bookings})
}
