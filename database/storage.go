package database

import (
	"errors"
	"time"

	"github.com/coursemint/api/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert hits a unique index, such as
// two signups racing on the same email.
var ErrDuplicate = errors.New("duplicate record")

// Storage is the single data-access abstraction for the API. One method
// per entity operation; GORMStore is the only concrete implementation.
type Storage interface {
	// User methods
	GetUser(id uint) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	CreateUser(user *model.User) error
	DeleteUser(id uint) error

	// Course methods
	GetAllCourses() ([]model.Course, error)
	GetCourse(id uint) (*model.Course, error)
	CreateCourse(course *model.Course) error
	UpdateCourse(id uint, updates model.CourseUpdate) (*model.Course, error)
	DeleteCourse(id uint) error

	// Purchase methods
	GetUserPurchases(userID uint) ([]model.Purchase, error)
	CreatePurchase(purchase *model.Purchase) error
	GetPurchaseByStripeSession(sessionID string) (*model.Purchase, error)
	// FinalizePurchaseBySession moves the purchase matching the Stripe
	// session id from pending to the given terminal status. It reports
	// whether a row was actually updated, so replayed webhook deliveries
	// come back false instead of double-applying.
	FinalizePurchaseBySession(sessionID string, status model.PurchaseStatus) (bool, error)
	ExpireStalePurchases(olderThan time.Time) (int64, error)

	// Admin methods
	IsUserAdmin(userID uint) (bool, error)
	CreateAdmin(admin *model.Admin) error
	GetUserAdmin(userID uint) (*model.Admin, error)

	HealthCheck() error
	Close() error
}
