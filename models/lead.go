// File: /models/lead.go
package models

import (
	"time"
)

// Lead records are append-only: the application creates them from validated
// form submissions and never updates or deletes them. BikeSlug is a plain
// string on purpose — no foreign key — so leads outlive catalog changes.

type TestRideRequest struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	Name          string    `json:"name" gorm:"not null;size:120"`
	Email         string    `json:"email" gorm:"size:254"`
	Phone         string    `json:"phone" gorm:"size:20"`
	BikeSlug      string    `json:"bike_slug" gorm:"not null;size:80;index"`
	PreferredDate time.Time `json:"preferred_date" gorm:"type:date"`
	PreferredTime string    `json:"preferred_time" gorm:"size:5"`
	Notes         string    `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
}

type ContactInquiry struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:120"`
	Email     string    `json:"email" gorm:"size:254"`
	Phone     string    `json:"phone" gorm:"size:20"`
	BikeSlug  string    `json:"bike_slug" gorm:"size:80;index"`
	Message   string    `json:"message" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceBooking struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	Name          string    `json:"name" gorm:"not null;size:120"`
	Phone         string    `json:"phone" gorm:"size:20"`
	BikeSlug      string    `json:"bike_slug" gorm:"not null;size:80;index"`
	PreferredDate time.Time `json:"preferred_date" gorm:"type:date"`
	Notes         string    `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
}
