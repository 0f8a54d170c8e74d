package models

import "time"

// User is a person that can take or teach courses. Course membership lives
// in the enrollments table and is queried from both sides.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	NetID     string    `gorm:"size:64;not null;column:netid" json:"netid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
