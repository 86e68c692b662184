// File: /controllers/lead_controller.go
package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"showroom-api/config"
	"showroom-api/models"
	"showroom-api/services"
	"showroom-api/utils"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// LeadController handles the three public lead-capture forms. Each
// submission either persists exactly one record and redirects with a
// success flash, or rejects with a specific error flash and writes
// nothing. Duplicate submissions are allowed; deduplicating leads is a
// staff concern, not a data-integrity one.
type LeadController struct {
	db    *gorm.DB
	cfg   *config.Config
	email *services.EmailService
}

func NewLeadController(db *gorm.DB, cfg *config.Config, email *services.EmailService) *LeadController {
	return &LeadController{db: db, cfg: cfg, email: email}
}

// BookingPageRedirect handles non-POST hits on the test-ride endpoint.
func (lc *LeadController) BookingPageRedirect(c *gin.Context) {
	utils.RedirectToPage(c, lc.cfg.BookingPage)
}

// ContactPageRedirect handles non-POST hits on the contact endpoint.
func (lc *LeadController) ContactPageRedirect(c *gin.Context) {
	utils.RedirectToPage(c, lc.cfg.ContactPage)
}

// ServicePageRedirect handles non-POST hits on the service endpoint.
func (lc *LeadController) ServicePageRedirect(c *gin.Context) {
	utils.RedirectToPage(c, lc.cfg.ServicePage)
}

// SubmitTestRide validates and stores a test-ride booking. The bike
// reference is checked against the active catalog first; then the date and
// time must parse. First failure rejects the whole submission.
func (lc *LeadController) SubmitTestRide(c *gin.Context) {
	bikeSlug := c.PostForm("model")

	activeSlugs, err := ActiveSlugSet(lc.db)
	if err != nil {
		utils.RedirectWithFlash(c, lc.cfg.BookingPage, "error", "Something went wrong. Please try again.")
		return
	}
	if !activeSlugs[bikeSlug] {
		utils.RedirectWithFlash(c, lc.cfg.BookingPage, "error", "Please select a valid bike model.")
		return
	}

	preferredDate, dateErr := time.Parse(dateLayout, c.PostForm("date"))
	preferredTime, timeErr := time.Parse(timeLayout, c.PostForm("time"))
	if dateErr != nil || timeErr != nil {
		utils.RedirectWithFlash(c, lc.cfg.BookingPage, "error", "Please provide a valid date and time for your test ride request.")
		return
	}

	request := models.TestRideRequest{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(c.PostForm("name")),
		Email:         strings.TrimSpace(c.PostForm("email")),
		Phone:         strings.TrimSpace(c.PostForm("phone")),
		BikeSlug:      bikeSlug,
		PreferredDate: preferredDate,
		PreferredTime: preferredTime.Format(timeLayout),
		Notes:         strings.TrimSpace(c.PostForm("notes")),
	}

	if err := lc.db.Create(&request).Error; err != nil {
		utils.RedirectWithFlash(c, lc.cfg.BookingPage, "error", "Something went wrong. Please try again.")
		return
	}

	lc.notify("New test ride request", fmt.Sprintf(
		"%s (%s) requested a test ride on %s at %s for %s.",
		request.Name, request.Phone, request.PreferredDate.Format(dateLayout), request.PreferredTime, request.BikeSlug,
	))

	utils.RedirectWithFlash(c, lc.cfg.BookingPage, "success", "Thank you! Our team will call you to confirm your test ride slot shortly.")
}

// SubmitContact validates and stores a contact inquiry. The bike
// reference is the one optional case: empty passes, non-empty must match
// an active bike.
func (lc *LeadController) SubmitContact(c *gin.Context) {
	bikeSlug := strings.TrimSpace(c.PostForm("model"))

	if bikeSlug != "" {
		activeSlugs, err := ActiveSlugSet(lc.db)
		if err != nil {
			utils.RedirectWithFlash(c, lc.cfg.ContactPage, "error", "Something went wrong. Please try again.")
			return
		}
		if !activeSlugs[bikeSlug] {
			utils.RedirectWithFlash(c, lc.cfg.ContactPage, "error", "Please choose a valid bike model.")
			return
		}
	}

	inquiry := models.ContactInquiry{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(c.PostForm("name")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Phone:    strings.TrimSpace(c.PostForm("phone")),
		BikeSlug: bikeSlug,
		Message:  strings.TrimSpace(c.PostForm("message")),
	}

	if err := lc.db.Create(&inquiry).Error; err != nil {
		utils.RedirectWithFlash(c, lc.cfg.ContactPage, "error", "Something went wrong. Please try again.")
		return
	}

	lc.notify("New contact inquiry", fmt.Sprintf(
		"%s (%s) sent an inquiry: %s",
		inquiry.Name, inquiry.Phone, inquiry.Message,
	))

	utils.RedirectWithFlash(c, lc.cfg.ContactPage, "success", "Thanks for reaching out! Our showroom team will contact you shortly.")
}

// SubmitService validates and stores a service booking.
func (lc *LeadController) SubmitService(c *gin.Context) {
	bikeSlug := c.PostForm("model")

	activeSlugs, err := ActiveSlugSet(lc.db)
	if err != nil {
		utils.RedirectWithFlash(c, lc.cfg.ServicePage, "error", "Something went wrong. Please try again.")
		return
	}
	if !activeSlugs[bikeSlug] {
		utils.RedirectWithFlash(c, lc.cfg.ServicePage, "error", "Please select a valid bike model for the service booking.")
		return
	}

	preferredDate, err := time.Parse(dateLayout, c.PostForm("date"))
	if err != nil {
		utils.RedirectWithFlash(c, lc.cfg.ServicePage, "error", "Please choose a valid date for the service visit.")
		return
	}

	booking := models.ServiceBooking{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(c.PostForm("name")),
		Phone:         strings.TrimSpace(c.PostForm("phone")),
		BikeSlug:      bikeSlug,
		PreferredDate: preferredDate,
		Notes:         strings.TrimSpace(c.PostForm("notes")),
	}

	if err := lc.db.Create(&booking).Error; err != nil {
		utils.RedirectWithFlash(c, lc.cfg.ServicePage, "error", "Something went wrong. Please try again.")
		return
	}

	lc.notify("New service booking", fmt.Sprintf(
		"%s (%s) booked a service visit on %s for %s.",
		booking.Name, booking.Phone, booking.PreferredDate.Format(dateLayout), booking.BikeSlug,
	))

	utils.RedirectWithFlash(c, lc.cfg.ServicePage, "success", "Service slot request saved. Our advisors will confirm your appointment soon.")
}

// notify emails showroom staff about a new lead, best effort. The lead is
// already persisted; a mail failure must not fail the request.
func (lc *LeadController) notify(subject, body string) {
	if lc.email == nil || !lc.email.Enabled() {
		return
	}
	go lc.email.NotifyStaff(subject, body)
}
