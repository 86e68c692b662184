// File: /models/offer.go
package models

import (
	"time"
)

// Offer is a promotional discount, optionally tied to one bike. A nil
// BikeID means a storewide offer. Percentage and amount are independent;
// staff may set either or both.
type Offer struct {
	ID                 string    `json:"id" gorm:"primaryKey;size:191"`
	Title              string    `json:"title" gorm:"not null;size:200"`
	Description        string    `json:"description" gorm:"type:text"`
	BikeID             *string   `json:"bike_id" gorm:"size:191;index"`
	DiscountPercentage *float64  `json:"discount_percentage" gorm:"type:decimal(5,2)"`
	DiscountAmount     *float64  `json:"discount_amount" gorm:"type:decimal(10,2)"`
	ValidFrom          time.Time `json:"valid_from" gorm:"not null"`
	ValidUntil         time.Time `json:"valid_until" gorm:"not null"`
	IsActive           bool      `json:"is_active" gorm:"default:true"`
	Image              string    `json:"image" gorm:"size:200"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Bike *Bike `json:"bike,omitempty" gorm:"foreignKey:BikeID"`
}

// CurrentlyActive reports whether the offer is live on the given day.
// Both the flag and the inclusive date window must hold.
func (o *Offer) CurrentlyActive(today time.Time) bool {
	day := dateOnly(today)
	return o.IsActive && !dateOnly(o.ValidFrom).After(day) && !dateOnly(o.ValidUntil).Before(day)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
