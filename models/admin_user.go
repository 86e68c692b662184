// File: /models/admin_user.go
package models

import (
	"time"
)

// AdminUser is a staff account for the admin API. Password holds a bcrypt
// hash and is never serialized.
type AdminUser struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"size:120"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:254"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
