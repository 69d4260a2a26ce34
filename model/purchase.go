package model

import (
	"time"
)

// PurchaseStatus is the lifecycle state of a checkout attempt
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusFailed    PurchaseStatus = "failed"
)

// CanTransitionTo reports whether the status may move to next. The only
// legal transitions are pending -> completed and pending -> failed;
// completed and failed are terminal.
func (s PurchaseStatus) CanTransitionTo(next PurchaseStatus) bool {
	if s != PurchaseStatusPending {
		return false
	}
	return next == PurchaseStatusCompleted || next == PurchaseStatusFailed
}

// Purchase represents one checkout attempt for a course. The Stripe
// checkout session id correlates the asynchronous webhook callback with
// the pending row; its unique index is what makes webhook delivery
// idempotent.
type Purchase struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	CourseID        uint           `gorm:"not null;index" json:"course_id"`
	StripeSessionID *string        `gorm:"type:varchar(255);uniqueIndex" json:"stripe_session_id"`
	Amount          int64          `gorm:"not null" json:"amount"` // amount in cents at purchase time
	Status          PurchaseStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
}
