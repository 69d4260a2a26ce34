package model

import (
	"time"

	"gorm.io/datatypes"
)

// Course difficulty levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course represents a sellable online course
type Course struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Price       int64                       `gorm:"not null" json:"price"` // price in cents
	ImageURL    string                      `json:"image_url"`
	Level       string                      `gorm:"type:varchar(20);not null" json:"level"` // Beginner, Intermediate, Advanced
	Duration    string                      `gorm:"type:varchar(50)" json:"duration"`
	Features    datatypes.JSONSlice[string] `json:"features"`
	Instructor  string                      `gorm:"not null" json:"instructor"`
	Students    int                         `gorm:"default:0" json:"students"`
	VideoURL    string                      `json:"video_url"`
	PDFURL      string                      `json:"pdf_url"`

	// Relationships
	Purchases []Purchase `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

// CourseUpdate is a partial update: only non-nil fields are applied.
type CourseUpdate struct {
	Title       *string
	Description *string
	Price       *int64
	ImageURL    *string
	Level       *string
	Duration    *string
	Features    *[]string
	Instructor  *string
	Students    *int
	VideoURL    *string
	PDFURL      *string
}
