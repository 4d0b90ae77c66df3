package model

import "time"

// BaseModel handles the integer surrogate key and audit timestamps.
// Product ids are plain auto-increment integers so they round-trip
// through the CSV export/import `id` column.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
