package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/coursemint/api/config"
	"github.com/coursemint/api/model"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GORMStore implements Storage on top of a GORM PostgreSQL connection.
type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Println("Unable to connect to PostgreSQL with GORM:", err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// NewGORMStore wraps an existing connection. Used by the seeder and tests.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{db: db}
}

// Init runs AutoMigrate for all models
func (s *GORMStore) Init() error {
	return s.db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Purchase{},
		&model.Admin{},
	)
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// DB exposes the underlying connection for wiring code (cron, seeder).
func (s *GORMStore) DB() *gorm.DB {
	return s.db
}

// ---------------------------------------------------------------------
// User methods

func (s *GORMStore) GetUser(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (s *GORMStore) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (s *GORMStore) CreateUser(user *model.User) error {
	// Concurrent signups can race past the handler's existence check;
	// the unique index on email is the real guard.
	return mapError(s.db.Create(user).Error)
}

func (s *GORMStore) DeleteUser(id uint) error {
	res := s.db.Delete(&model.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------
// Course methods

func (s *GORMStore) GetAllCourses() ([]model.Course, error) {
	var courses []model.Course
	err := s.db.Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (s *GORMStore) GetCourse(id uint) (*model.Course, error) {
	var course model.Course
	if err := s.db.First(&course, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &course, nil
}

func (s *GORMStore) CreateCourse(course *model.Course) error {
	return s.db.Create(course).Error
}

func (s *GORMStore) UpdateCourse(id uint, updates model.CourseUpdate) (*model.Course, error) {
	var course model.Course
	if err := s.db.First(&course, id).Error; err != nil {
		return nil, mapError(err)
	}

	if updates.Title != nil {
		course.Title = *updates.Title
	}
	if updates.Description != nil {
		course.Description = *updates.Description
	}
	if updates.Price != nil {
		course.Price = *updates.Price
	}
	if updates.ImageURL != nil {
		course.ImageURL = *updates.ImageURL
	}
	if updates.Level != nil {
		course.Level = *updates.Level
	}
	if updates.Duration != nil {
		course.Duration = *updates.Duration
	}
	if updates.Features != nil {
		course.Features = datatypes.NewJSONSlice(*updates.Features)
	}
	if updates.Instructor != nil {
		course.Instructor = *updates.Instructor
	}
	if updates.Students != nil {
		course.Students = *updates.Students
	}
	if updates.VideoURL != nil {
		course.VideoURL = *updates.VideoURL
	}
	if updates.PDFURL != nil {
		course.PDFURL = *updates.PDFURL
	}

	if err := s.db.Save(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *GORMStore) DeleteCourse(id uint) error {
	res := s.db.Delete(&model.Course{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------
// Purchase methods

func (s *GORMStore) GetUserPurchases(userID uint) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := s.db.Preload("Course").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}

func (s *GORMStore) CreatePurchase(purchase *model.Purchase) error {
	return mapError(s.db.Create(purchase).Error)
}

func (s *GORMStore) GetPurchaseByStripeSession(sessionID string) (*model.Purchase, error) {
	var purchase model.Purchase
	if err := s.db.Where("stripe_session_id = ?", sessionID).First(&purchase).Error; err != nil {
		return nil, mapError(err)
	}
	return &purchase, nil
}

func (s *GORMStore) FinalizePurchaseBySession(sessionID string, status model.PurchaseStatus) (bool, error) {
	if !model.PurchaseStatusPending.CanTransitionTo(status) {
		return false, fmt.Errorf("illegal purchase status transition to %q", status)
	}
	// The status guard in the WHERE clause keeps replayed deliveries from
	// touching a purchase that already reached a terminal state.
	res := s.db.Model(&model.Purchase{}).
		Where("stripe_session_id = ? AND status = ?", sessionID, model.PurchaseStatusPending).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GORMStore) ExpireStalePurchases(olderThan time.Time) (int64, error) {
	res := s.db.Model(&model.Purchase{}).
		Where("status = ? AND created_at < ?", model.PurchaseStatusPending, olderThan).
		Update("status", model.PurchaseStatusFailed)
	return res.RowsAffected, res.Error
}

// ---------------------------------------------------------------------
// Admin methods

func (s *GORMStore) IsUserAdmin(userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&model.Admin{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (s *GORMStore) CreateAdmin(admin *model.Admin) error {
	return s.db.Create(admin).Error
}

func (s *GORMStore) GetUserAdmin(userID uint) (*model.Admin, error) {
	var admin model.Admin
	if err := s.db.Where("user_id = ?", userID).First(&admin).Error; err != nil {
		return nil, mapError(err)
	}
	return &admin, nil
}

func mapError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
