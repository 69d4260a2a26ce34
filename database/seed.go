package database

import (
	"fmt"
	"log"

	"github.com/coursemint/api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedCourses(); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	log.Println("Database seeding completed successfully")
	return nil
}

// SeedCourses inserts the sample catalog. Skipped when any course exists.
func (s *Seeder) SeedCourses() error {
	var count int64
	if err := s.db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Courses already exist, skipping seed...")
		return nil
	}

	courses := []model.Course{
		{
			Title:       "ChatGPT Mastery",
			Description: "Master the art of prompt engineering and unlock ChatGPT's full potential for business, writing, and creative tasks.",
			Price:       9700,
			ImageURL:    "/placeholder.svg",
			Level:       model.LevelBeginner,
			Duration:    "4 hours",
			Features: datatypes.NewJSONSlice([]string{
				"Advanced prompt engineering techniques",
				"Business automation workflows",
				"Creative writing masterclass",
				"50+ real-world examples",
				"Downloadable prompt library",
			}),
			Instructor: "Sarah Johnson",
			Students:   1247,
		},
		{
			Title:       "Midjourney Pro",
			Description: "Create stunning AI art and professional designs with advanced Midjourney techniques and commercial applications.",
			Price:       12700,
			ImageURL:    "/placeholder.svg",
			Level:       model.LevelIntermediate,
			Duration:    "6 hours",
			Features: datatypes.NewJSONSlice([]string{
				"Advanced parameter mastery",
				"Style reference techniques",
				"Commercial licensing guide",
				"Brand identity creation",
				"Portfolio building strategies",
			}),
			Instructor: "Mike Chen",
			Students:   892,
		},
		{
			Title:       "AI Automation Toolkit",
			Description: "Build powerful automation workflows combining multiple AI tools to streamline your business processes.",
			Price:       19700,
			ImageURL:    "/placeholder.svg",
			Level:       model.LevelAdvanced,
			Duration:    "8 hours",
			Features: datatypes.NewJSONSlice([]string{
				"Multi-tool integration workflows",
				"No-code automation platforms",
				"API connections and webhooks",
				"ROI optimization strategies",
				"Custom workflow templates",
			}),
			Instructor: "David Rodriguez",
			Students:   634,
		},
	}

	if err := s.db.Create(&courses).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d courses", len(courses))
	return nil
}
